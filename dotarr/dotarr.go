package dotarr

// Get returns the value at key, or def when the path does not resolve.
//
// A scalar key returns the single value. A sequence key is dispatched to
// GetMany and the returned value is its map[string]any, one entry per key.
// Errors: ErrInvalidKeyType only.
func Get(root any, key any, def any) (any, error) {
	parsed, err := Parse(key)
	if err != nil {
		return nil, err
	}
	if parsed.Batch {
		return getItems(root, parsed.Items, def), nil
	}

	return GetPath(root, parsed.Items[0].Path, def), nil
}

// Set assigns value at key, mutating root in place (see SetPath for the
// coercion rules).
//
// key may also be:
//   - a sequence of keys: value is assigned to each key, left to right;
//   - a []Pair: each pair is applied in order and value is ignored;
//   - a Map of dotted keys to values: applied deepest first, value ignored.
//
// Errors: ErrNilRoot, ErrInvalidKeyType.
func Set(root Map, key any, value any) error {
	if root == nil {
		return ErrNilRoot
	}
	switch k := key.(type) {
	case []Pair:
		return SetMany(root, k...)
	case Map:
		return SetMany(root, orderedPairs(k)...)
	}

	parsed, err := Parse(key)
	if err != nil {
		return err
	}
	for _, it := range parsed.Items {
		SetPath(root, it.Path, value)
	}

	return nil
}

// Delete removes key from root. For a sequence it removes every key left to
// right and reports whether all of them were present.
// Errors: ErrInvalidKeyType only; a nil root simply reports false.
func Delete(root Map, key any) (bool, error) {
	parsed, err := Parse(key)
	if err != nil {
		return false, err
	}
	all := len(parsed.Items) > 0
	for _, it := range parsed.Items {
		if !DeletePath(root, it.Path) {
			all = false
		}
	}

	return all, nil
}

// Has reports key presence. For a sequence it reports whether every key is
// present; an empty sequence is never present.
// Errors: ErrInvalidKeyType only.
func Has(root any, key any) (bool, error) {
	parsed, err := Parse(key)
	if err != nil {
		return false, err
	}
	if len(parsed.Items) == 0 {
		return false, nil
	}
	for _, it := range parsed.Items {
		if !HasPath(root, it.Path) {
			return false, nil
		}
	}

	return true, nil
}

// KeyMatches returns the resolvable prefixes of key (see MatchPath). For a
// sequence it returns the union of every key's prefixes in first-seen order.
// Errors: ErrInvalidKeyType only.
func KeyMatches(root any, key any) ([]string, error) {
	parsed, err := Parse(key)
	if err != nil {
		return nil, err
	}
	if !parsed.Batch {
		return MatchPath(root, parsed.Items[0].Path), nil
	}

	out := make([]string, 0, len(parsed.Items))
	seen := make(map[string]struct{}, len(parsed.Items))
	for _, it := range parsed.Items {
		for _, prefix := range MatchPath(root, it.Path) {
			if _, dup := seen[prefix]; dup {
				continue
			}
			seen[prefix] = struct{}{}
			out = append(out, prefix)
		}
	}

	return out, nil
}
