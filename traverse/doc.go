// Package traverse provides higher-order traversal over nested maps: a
// key/value transform over one level (Map), a depth-first walk (Walk) and a
// breadth-first walk (Levels) over a whole tree of dotarr.Map and []any.
//
// What
//
//   - Map applies an optional key callback and an optional value callback
//     to every entry of a map in a single pass and returns a new map.
//   - Walk visits every entry depth-first in pre-order, with an OnVisit
//     hook on the way down and an OnExit hook on the way up. It returns a
//     WalkResult with visit Order, Depth and Parent of every dot path and
//     the list of Leaves.
//   - Levels visits every entry breadth-first, one depth at a time, with
//     OnEnqueue and OnVisit hooks. It returns a LevelResult.
//
// Paths
//
//	Entries are named by their dot path from the root ("a.b.0.c"). The root
//	itself has the empty path and is never reported. Top-level entries have
//	depth 1. Map keys are visited in ascending order and list elements by
//	index, so both walks are deterministic. Map keys that are empty or
//	contain a dot cannot be named by a path: they are not visited and are
//	listed in Unaddressable instead.
//
// Complexity (N = number of entries in the tree)
//
//   - Time:   O(N log k) where k is the widest map (keys are sorted).
//   - Memory: O(N) for the result maps; Walk also uses O(depth) stack.
//
// Usage
//
//	res, err := traverse.Walk(tree,
//	    traverse.WithContext(ctx),
//	    traverse.WithMaxDepth(3),
//	    traverse.WithFilter(func(path string, v any) bool { return path != "secrets" }),
//	    traverse.WithOnVisit(func(path string, depth int, v any) error { return nil }),
//	)
//
// Options
//
//   - DefaultOptions(): background context, no-op hooks, no depth limit, no filtering.
//   - WithContext(ctx):   cancellation; the walk returns ctx.Err().
//   - WithMaxDepth(d):    skip entries deeper than d (>0); 0 means no limit.
//   - WithFilter(fn):     skip an entry and its whole subtree when fn is false.
//   - WithOnEnqueue(fn):  Levels only, called when an entry is queued.
//   - WithOnVisit(fn):    called when an entry is visited; an error aborts.
//   - WithOnExit(fn):     Walk only, called after an entry's subtree.
//
// Errors
//
//   - ErrNilRoot          if the root is nil.
//   - ErrOptionViolation  for an invalid option (negative MaxDepth).
//   - ErrNotVisited       from PathTo for a path the walk never reached.
//   - context errors and wrapped hook or callback errors.
package traverse
