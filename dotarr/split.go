package dotarr

import (
	"fmt"
	"strconv"
	"strings"
)

// Split turns a single key into its Path.
//
// Accepted keys: string, any signed or unsigned integer kind, a Path (used
// as-is) and nil (the empty Path). Empty segments are dropped, so "a..b"
// splits to [a b] and "" to the empty Path. Sequences are rejected here;
// use Parse for keys that may be batches.
func Split(key any) (Path, error) {
	if p, ok := key.(Path); ok {
		return p, nil
	}
	label, ok := scalarLabel(key)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrInvalidKeyType, key)
	}

	return splitLabel(label), nil
}

// Parse classifies key as a scalar or a sequence and splits every element.
//
// Scalars (see Split) produce one Item with Batch=false. []string, []int,
// []any and []Path produce one Item per element with Batch=true, each Item
// labelled with the element's string form. An element of []any that is not
// a scalar fails the whole key with ErrInvalidKeyType.
// Complexity: O(total key length).
func Parse(key any) (Parsed, error) {
	switch k := key.(type) {
	case Path:
		return Parsed{Items: []Item{{Label: k.String(), Path: k}}}, nil
	case []string:
		items := make([]Item, 0, len(k))
		for _, s := range k {
			items = append(items, Item{Label: s, Path: splitLabel(s)})
		}

		return Parsed{Batch: true, Items: items}, nil
	case []int:
		items := make([]Item, 0, len(k))
		for _, n := range k {
			s := strconv.Itoa(n)
			items = append(items, Item{Label: s, Path: Path{s}})
		}

		return Parsed{Batch: true, Items: items}, nil
	case []Path:
		items := make([]Item, 0, len(k))
		for _, p := range k {
			items = append(items, Item{Label: p.String(), Path: p})
		}

		return Parsed{Batch: true, Items: items}, nil
	case []any:
		items := make([]Item, 0, len(k))
		for i, el := range k {
			label, ok := scalarLabel(el)
			if !ok {
				return Parsed{}, fmt.Errorf("%w: element %d is %T", ErrInvalidKeyType, i, el)
			}
			items = append(items, Item{Label: label, Path: splitLabel(label)})
		}

		return Parsed{Batch: true, Items: items}, nil
	}

	label, ok := scalarLabel(key)
	if !ok {
		return Parsed{}, fmt.Errorf("%w: %T", ErrInvalidKeyType, key)
	}

	return Parsed{Items: []Item{{Label: label, Path: splitLabel(label)}}}, nil
}

// splitLabel splits s on Separator and drops empty segments.
func splitLabel(s string) Path {
	if s == "" {
		return Path{}
	}
	// Fast path: no separator at all.
	if !strings.Contains(s, Separator) {
		return Path{s}
	}
	raw := strings.Split(s, Separator)
	p := make(Path, 0, len(raw))
	for _, seg := range raw {
		if seg != "" {
			p = append(p, seg)
		}
	}

	return p
}

// scalarLabel returns the string form of a scalar key.
func scalarLabel(key any) (string, bool) {
	switch k := key.(type) {
	case nil:
		return "", true
	case string:
		return k, true
	case int:
		return strconv.Itoa(k), true
	case int8:
		return strconv.FormatInt(int64(k), 10), true
	case int16:
		return strconv.FormatInt(int64(k), 10), true
	case int32:
		return strconv.FormatInt(int64(k), 10), true
	case int64:
		return strconv.FormatInt(k, 10), true
	case uint:
		return strconv.FormatUint(uint64(k), 10), true
	case uint8:
		return strconv.FormatUint(uint64(k), 10), true
	case uint16:
		return strconv.FormatUint(uint64(k), 10), true
	case uint32:
		return strconv.FormatUint(uint64(k), 10), true
	case uint64:
		return strconv.FormatUint(k, 10), true
	}

	return "", false
}
