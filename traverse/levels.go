package traverse

import "fmt"

// queueItem pairs an entry with its path and depth.
type queueItem struct {
	path  string
	depth int
	value any
}

// levelWalker encapsulates mutable breadth-first state.
type levelWalker struct {
	opts  Options
	queue []queueItem
	res   *LevelResult
}

// Levels visits every entry below root breadth-first: all top-level
// entries, then all entries at depth 2, and so on. Keys Walk cannot name are
// skipped the same way and listed in Unaddressable.
// Returns the partial result together with any context or hook error.
func Levels(root any, opts ...Option) (*LevelResult, error) {
	if root == nil {
		return nil, ErrNilRoot
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	w := &levelWalker{
		opts: o,
		res: &LevelResult{
			Order:  []string{},
			Depth:  make(map[string]int),
			Parent: make(map[string]string),
		},
	}
	w.enqueueChildren(queueItem{path: "", depth: 0, value: root})

	return w.res, w.loop()
}

// loop processes the queue until empty, error, or cancellation.
func (w *levelWalker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.path)
		if err := w.opts.OnVisit(item.path, item.depth, item.value); err != nil {
			return fmt.Errorf("traverse: OnVisit hook for %q: %w", item.path, err)
		}
		w.enqueueChildren(item)
	}

	return nil
}

// enqueueChildren queues the children of item that pass MaxDepth and Filter.
func (w *levelWalker) enqueueChildren(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	children, hidden := entries(item.value)
	w.res.Unaddressable = hide(w.res.Unaddressable, item.path, hidden)
	for _, e := range children {
		path := join(item.path, e.key)
		if !w.opts.Filter(path, e.value) {
			w.res.Skipped++
			continue
		}
		w.res.Depth[path] = next
		w.res.Parent[path] = item.path
		w.opts.OnEnqueue(path, next)
		w.queue = append(w.queue, queueItem{path: path, depth: next, value: e.value})
	}
}
