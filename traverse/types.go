package traverse

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrNilRoot is returned when Walk or Levels receive a nil root.
	ErrNilRoot = errors.New("traverse: root is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("traverse: invalid option supplied")

	// ErrNotVisited is returned by PathTo for paths outside the result.
	ErrNotVisited = errors.New("traverse: path not visited")
)

// Option configures Walk and Levels via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the hooks and limits of a traversal.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called by Levels when an entry is queued.
	OnEnqueue func(path string, depth int)

	// OnVisit is called when an entry is visited. Returning an error
	// aborts the traversal.
	OnVisit func(path string, depth int, v any) error

	// OnExit is called by Walk after an entry's subtree has been visited.
	OnExit func(path string, depth int, v any) error

	// MaxDepth, if > 0, skips entries deeper than MaxDepth. 0 is no limit.
	MaxDepth int

	// Filter skips an entry, and everything below it, when it returns false.
	Filter func(path string, v any) bool

	err error
}

// DefaultOptions returns Options with a background context, no-op hooks,
// no depth limit and no filtering.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(string, int) {},
		OnVisit:   func(string, int, any) error { return nil },
		OnExit:    func(string, int, any) error { return nil },
		MaxDepth:  0,
		Filter:    func(string, any) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback run when Levels queues an entry.
func WithOnEnqueue(fn func(path string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback run on visit; an error stops the walk.
func WithOnVisit(fn func(path string, depth int, v any) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnExit registers a post-order callback for Walk.
func WithOnExit(fn func(path string, depth int, v any) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExit = fn
		}
	}
}

// WithMaxDepth limits the walk to entries at most d segments deep.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)

			return
		}
		o.MaxDepth = d
	}
}

// WithFilter skips entries for which fn returns false.
func WithFilter(fn func(path string, v any) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.Filter = fn
		}
	}
}

// buildOptions applies opts over DefaultOptions.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// WalkResult holds the outcome of Walk:
//   - Order: entry paths in pre-order.
//   - Depth: path → number of segments.
//   - Parent: path → parent path ("" for top-level entries).
//   - Leaves: paths whose value has no children, in visit order.
//   - Skipped: entries rejected by the filter.
//   - Unaddressable: paths of map keys that are empty or contain a dot,
//     which were not visited.
type WalkResult struct {
	Order         []string
	Depth         map[string]int
	Parent        map[string]string
	Leaves        []string
	Skipped       int
	Unaddressable []string
}

// LevelResult holds the outcome of Levels. Order is sorted by depth.
type LevelResult struct {
	Order         []string
	Depth         map[string]int
	Parent        map[string]string
	Skipped       int
	Unaddressable []string
}

// Layer returns the paths visited at depth d, in visit order.
func (r *LevelResult) Layer(d int) []string {
	out := []string{}
	for _, p := range r.Order {
		if r.Depth[p] == d {
			out = append(out, p)
		}
	}

	return out
}

// PathTo returns the chain of paths from the top-level entry down to dest.
func (r *LevelResult) PathTo(dest string) ([]string, error) {
	return pathTo(r.Parent, dest)
}

// PathTo returns the chain of paths from the top-level entry down to dest.
func (r *WalkResult) PathTo(dest string) ([]string, error) {
	return pathTo(r.Parent, dest)
}

func pathTo(parent map[string]string, dest string) ([]string, error) {
	if _, ok := parent[dest]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotVisited, dest)
	}
	// build reversed chain
	chain := []string{}
	for cur := dest; cur != ""; cur = parent[cur] {
		chain = append(chain, cur)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}

	return chain, nil
}
