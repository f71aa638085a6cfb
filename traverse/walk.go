package traverse

import "fmt"

// walker encapsulates state during a depth-first walk.
type walker struct {
	opts Options
	res  *WalkResult
}

// Walk visits every entry below root depth-first, pre-order. root is
// typically a dotarr.Map; a []any root is walked by index and a leaf root
// has no entries. Map keys that are empty or contain a dot would make paths
// collide, so they and their sub-trees are not visited; they are listed in
// Unaddressable. Use dotarr.Convert first to expand dotted keys.
// Returns the partial result together with any context or hook error.
func Walk(root any, opts ...Option) (*WalkResult, error) {
	if root == nil {
		return nil, ErrNilRoot
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	w := &walker{
		opts: o,
		res: &WalkResult{
			Order:  []string{},
			Depth:  make(map[string]int),
			Parent: make(map[string]string),
			Leaves: []string{},
		},
	}
	top, hidden := entries(root)
	w.res.Unaddressable = hide(w.res.Unaddressable, "", hidden)
	for _, e := range top {
		if err = w.traverse(e, "", 1); err != nil {
			return w.res, err
		}
	}

	return w.res, nil
}

// traverse visits e under parent at depth and recurses into its children.
func (w *walker) traverse(e entry, parent string, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	if w.opts.MaxDepth > 0 && depth > w.opts.MaxDepth {
		return nil
	}

	path := join(parent, e.key)
	if !w.opts.Filter(path, e.value) {
		w.res.Skipped++

		return nil
	}

	w.res.Order = append(w.res.Order, path)
	w.res.Depth[path] = depth
	w.res.Parent[path] = parent

	if err := w.opts.OnVisit(path, depth, e.value); err != nil {
		return fmt.Errorf("traverse: OnVisit hook for %q: %w", path, err)
	}

	children, hidden := entries(e.value)
	w.res.Unaddressable = hide(w.res.Unaddressable, path, hidden)
	if len(children) == 0 && len(hidden) == 0 {
		w.res.Leaves = append(w.res.Leaves, path)
	}
	for _, c := range children {
		if err := w.traverse(c, path, depth+1); err != nil {
			return err
		}
	}

	if err := w.opts.OnExit(path, depth, e.value); err != nil {
		return fmt.Errorf("traverse: OnExit hook for %q: %w", path, err)
	}

	return nil
}
