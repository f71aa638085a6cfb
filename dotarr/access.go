package dotarr

import (
	"maps"
	"slices"
	"strconv"
)

// GetPath walks root along p and returns the value found, or def as soon as
// a segment is absent or the current value is not a container. An empty
// Path returns root itself. Sub-trees are returned as stored, not copied.
// Complexity: O(len(p)).
func GetPath(root any, p Path, def any) any {
	node := root
	for _, seg := range p {
		next, ok := child(node, seg)
		if !ok {
			return def
		}
		node = next
	}

	return node
}

// HasPath reports whether every segment of p resolves to a present key.
// Presence is independent of the stored value: nil, "" and 0 all count.
// The empty Path is never present.
// Complexity: O(len(p)).
func HasPath(root any, p Path) bool {
	if len(p) == 0 {
		return false
	}
	node := root
	for _, seg := range p {
		next, ok := child(node, seg)
		if !ok {
			return false
		}
		node = next
	}

	return true
}

// MatchPath returns the progressively longer dot-joined prefixes of p that
// resolve in root, stopping at the first one that does not. The result is
// empty (never nil) when even the first segment is missing.
// Complexity: O(len(p)²) for the joins, O(len(p)) lookups.
func MatchPath(root any, p Path) []string {
	out := make([]string, 0, len(p))
	node := root
	for i, seg := range p {
		next, ok := child(node, seg)
		if !ok {
			break
		}
		out = append(out, p[:i+1].String())
		node = next
	}

	return out
}

// SetPath assigns v at p inside root, creating intermediate Maps as needed.
//
// An intermediate segment that is missing or holds a leaf value is replaced
// by a fresh empty Map; the leaf is lost. An intermediate []any is indexed
// in place when seg is an index in [0, len], and promoted to a Map keyed by
// its indices otherwise. The last segment is overwritten unconditionally.
//
// The empty Path replaces the contents of root with v's entries when v is a
// Map and does nothing otherwise. A nil root is left untouched; Set reports
// it as ErrNilRoot.
// Complexity: O(len(p)) plus O(len) for a list promotion.
func SetPath(root Map, p Path, v any) {
	if root == nil {
		return
	}
	if len(p) == 0 {
		if m, ok := v.(Map); ok {
			clear(root)
			maps.Copy(root, m)
		}

		return
	}
	setIn(root, p, v)
}

// DeletePath removes the value at p. It walks like SetPath but never creates
// structure: if any intermediate segment is absent or not a container it
// returns false and leaves root unchanged. Removing the last element of a
// []any truncates it; removing any other element promotes the list to a Map
// keyed by the remaining indices, so no other key changes meaning.
// Complexity: O(len(p)) plus O(len) for a list element.
func DeletePath(root Map, p Path) bool {
	if root == nil || len(p) == 0 {
		return false
	}
	_, removed := deleteIn(root, p)

	return removed
}

// setIn assigns v at p below node and returns the node to store in the
// parent (a []any may grow or be promoted, which changes its identity).
func setIn(node any, p Path, v any) any {
	seg := p[0]
	if len(p) == 1 {
		return assign(node, seg, v)
	}
	next, ok := child(node, seg)
	if !ok || !isContainer(next) {
		next = Map{}
	}

	return assign(node, seg, setIn(next, p[1:], v))
}

// deleteIn removes p below node and returns the node to store in the parent.
func deleteIn(node any, p Path) (any, bool) {
	seg := p[0]
	if len(p) == 1 {
		switch n := node.(type) {
		case Map:
			if _, ok := n[seg]; !ok {
				return node, false
			}
			delete(n, seg)

			return n, true
		case []any:
			i, ok := index(seg, len(n))
			if !ok {
				return node, false
			}

			if i == len(n)-1 {
				return slices.Clip(n[:i]), true
			}
			m := promote(n)
			delete(m, seg)

			return m, true
		}

		return node, false
	}

	next, ok := child(node, seg)
	if !ok || !isContainer(next) {
		return node, false
	}
	next, removed := deleteIn(next, p[1:])
	if !removed {
		return node, false
	}

	return assign(node, seg, next), true
}

// child looks seg up in node. ok is false when node is not a container or
// seg is not present in it.
func child(node any, seg string) (any, bool) {
	switch n := node.(type) {
	case Map:
		v, ok := n[seg]

		return v, ok
	case []any:
		i, ok := index(seg, len(n))
		if !ok {
			return nil, false
		}

		return n[i], true
	}

	return nil, false
}

// assign stores v under seg in a container node and returns the node the
// parent must keep. node is always a Map or []any here.
func assign(node any, seg string, v any) any {
	switch n := node.(type) {
	case Map:
		n[seg] = v

		return n
	case []any:
		if i, ok := index(seg, len(n)); ok {
			n[i] = v

			return n
		}
		if _, ok := index(seg, len(n)+1); ok {
			return append(n, v)
		}
		promoted := promote(n)
		promoted[seg] = v

		return promoted
	}

	return Map{seg: v}
}

// promote converts a list into a Map keyed by decimal indices.
func promote(list []any) Map {
	m := make(Map, len(list)+1)
	for i, v := range list {
		m[strconv.Itoa(i)] = v
	}

	return m
}

// index parses seg as a canonical decimal index below n.
func index(seg string, n int) (int, bool) {
	i, err := strconv.Atoi(seg)
	if err != nil || i < 0 || i >= n {
		return 0, false
	}
	// Reject "+1", "01" and friends so that map-like keys never alias indices.
	if strconv.Itoa(i) != seg {
		return 0, false
	}

	return i, true
}

// isContainer reports whether v is one of the recognised container kinds.
func isContainer(v any) bool {
	switch v.(type) {
	case Map, []any:
		return true
	}

	return false
}
