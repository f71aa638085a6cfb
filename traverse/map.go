package traverse

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/primext/dotarr"
)

// KeyFunc computes the new key of an entry.
type KeyFunc func(key string, v any) (string, error)

// ValueFunc computes the new value of an entry. It always receives the
// original key.
type ValueFunc func(key string, v any) (any, error)

// Map returns a new map built from m by passing every entry through keyFn
// and valueFn. A nil callback leaves that half of the entry unchanged.
// Entries are processed in ascending key order, so when keyFn maps two keys
// to the same result the lexically later source key wins. m is not modified
// and is only walked one level deep.
// Complexity: O(n log n).
func Map(m dotarr.Map, keyFn KeyFunc, valueFn ValueFunc) (dotarr.Map, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	out := make(dotarr.Map, len(m))
	for _, k := range keys {
		nk, nv := k, m[k]
		var err error
		if keyFn != nil {
			if nk, err = keyFn(k, m[k]); err != nil {
				return nil, fmt.Errorf("traverse: key callback for %q: %w", k, err)
			}
		}
		if valueFn != nil {
			if nv, err = valueFn(k, m[k]); err != nil {
				return nil, fmt.Errorf("traverse: value callback for %q: %w", k, err)
			}
		}
		out[nk] = nv
	}

	return out, nil
}
