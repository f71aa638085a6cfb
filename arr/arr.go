package arr

import (
	"reflect"

	"github.com/spf13/cast"

	"github.com/katalvlaran/primext/dotarr"
)

// Get returns the value at the dotted key or def when it does not resolve.
func Get(root any, key string, def any) any {
	return dotarr.GetPath(root, path(key), def)
}

// Set assigns v at the dotted key, creating intermediate maps as needed.
func Set(root Map, key string, v any) error {
	if root == nil {
		return ErrNilRoot
	}
	dotarr.SetPath(root, path(key), v)

	return nil
}

// Has reports whether every key is present. No keys means false.
func Has(root any, keys ...string) bool {
	if len(keys) == 0 {
		return false
	}
	for _, k := range keys {
		if !dotarr.HasPath(root, path(k)) {
			return false
		}
	}

	return true
}

// HasAny reports whether at least one key is present.
func HasAny(root any, keys ...string) bool {
	for _, k := range keys {
		if dotarr.HasPath(root, path(k)) {
			return true
		}
	}

	return false
}

// Forget removes every key and returns how many were actually removed.
func Forget(root Map, keys ...string) int {
	n := 0
	for _, k := range keys {
		if dotarr.DeletePath(root, path(k)) {
			n++
		}
	}

	return n
}

// Only returns a new Map holding just the given dotted keys, nested the same
// way as in root. Missing keys are skipped. Values are shared, not copied.
func Only(root Map, keys ...string) Map {
	out := Map{}
	for _, k := range keys {
		p := path(k)
		if dotarr.HasPath(root, p) {
			dotarr.SetPath(out, p, dotarr.GetPath(root, p, nil))
		}
	}

	return out
}

// Except returns a deep copy of root without the given dotted keys.
func Except(root Map, keys ...string) Map {
	out := dotarr.Clone(root)
	Forget(out, keys...)

	return out
}

// Pluck collects the value at valueKey from every item, in order. Items that
// do not hold valueKey contribute nil.
func Pluck(items []Map, valueKey string) []any {
	p := path(valueKey)
	out := make([]any, len(items))
	for i, it := range items {
		out[i] = dotarr.GetPath(it, p, nil)
	}

	return out
}

// PluckBy is Pluck keyed by the string form of each item's labelKey value.
// Items whose label is missing or not convertible to a string are skipped;
// duplicate labels keep the last item.
func PluckBy(items []Map, valueKey, labelKey string) map[string]any {
	vp, lp := path(valueKey), path(labelKey)
	out := make(map[string]any, len(items))
	for _, it := range items {
		if !dotarr.HasPath(it, lp) {
			continue
		}
		label, err := cast.ToStringE(dotarr.GetPath(it, lp, nil))
		if err != nil {
			continue
		}
		out[label] = dotarr.GetPath(it, vp, nil)
	}

	return out
}

// Accessible reports whether v can be indexed: any map, slice or array.
func Accessible(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}

// IsList reports whether v is a []any, or a Map whose keys are exactly
// "0".."n-1". An empty Map is a list.
func IsList(v any) bool {
	switch n := v.(type) {
	case []any:
		return true
	case Map:
		for i := range len(n) {
			if _, ok := n[cast.ToString(i)]; !ok {
				return false
			}
		}

		return true
	default:
		return false
	}
}

// IsAssoc reports whether v is a Map that is not a list.
func IsAssoc(v any) bool {
	_, ok := v.(Map)

	return ok && !IsList(v)
}

// Wrap returns v as a []any: nil becomes an empty list, a []any is returned
// as is, any other slice or array is copied element-wise, and everything
// else becomes a one-element list.
func Wrap(v any) []any {
	switch n := v.(type) {
	case nil:
		return []any{}
	case []any:
		return n
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return []any{v}
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}

	return out
}

// path splits a string key; string keys never fail to split.
func path(key string) dotarr.Path {
	p, _ := dotarr.Split(key)

	return p
}
