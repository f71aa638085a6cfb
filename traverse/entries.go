package traverse

import (
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/primext/dotarr"
)

// entry is one child of a container.
type entry struct {
	key   string
	value any
}

// entries lists the children of node: Map keys ascending, list elements by
// index. Leaves have no children. Map keys that cannot appear in a dot path
// (empty, or containing the separator) are returned in hidden instead.
func entries(node any) (out []entry, hidden []string) {
	switch n := node.(type) {
	case dotarr.Map:
		keys := make([]string, 0, len(n))
		for k := range n {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		out = make([]entry, 0, len(keys))
		for _, k := range keys {
			if k == "" || strings.Contains(k, dotarr.Separator) {
				hidden = append(hidden, k)
				continue
			}
			out = append(out, entry{key: k, value: n[k]})
		}

		return out, hidden
	case []any:
		out = make([]entry, len(n))
		for i, v := range n {
			out[i] = entry{key: strconv.Itoa(i), value: v}
		}

		return out, nil
	}

	return nil, nil
}

// hide records the keys of parent that Walk and Levels cannot name.
func hide(dst []string, parent string, keys []string) []string {
	for _, k := range keys {
		dst = append(dst, join(parent, k))
	}

	return dst
}

// join appends key to a parent path.
func join(parent, key string) string {
	if parent == "" {
		return key
	}

	return parent + dotarr.Separator + key
}
