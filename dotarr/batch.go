package dotarr

// GetMany resolves every key independently and returns label → value, with
// def substituted for each key that does not resolve. A scalar key yields a
// single-entry map.
// Errors: ErrInvalidKeyType only.
func GetMany(root any, keys any, def any) (map[string]any, error) {
	parsed, err := Parse(keys)
	if err != nil {
		return nil, err
	}

	return getItems(root, parsed.Items, def), nil
}

// HasMany returns label → presence for every key. Keys with the same label
// address the same path and share one entry.
// Errors: ErrInvalidKeyType only.
func HasMany(root any, keys any) (map[string]bool, error) {
	parsed, err := Parse(keys)
	if err != nil {
		return nil, err
	}
	out := make(map[string]bool, len(parsed.Items))
	for _, it := range parsed.Items {
		out[it.Label] = HasPath(root, it.Path)
	}

	return out, nil
}

// HasAny reports whether at least one key is present.
// Errors: ErrInvalidKeyType only.
func HasAny(root any, keys any) (bool, error) {
	parsed, err := Parse(keys)
	if err != nil {
		return false, err
	}
	for _, it := range parsed.Items {
		if HasPath(root, it.Path) {
			return true, nil
		}
	}

	return false, nil
}

// DeleteMany removes keys left to right and returns label → removed. A key
// may fail because an earlier key already removed its parent. Keys with the
// same label (1 and "1", or a repeated key) share one entry, which is true
// when any of them removed something.
// Errors: ErrInvalidKeyType only.
func DeleteMany(root Map, keys any) (map[string]bool, error) {
	parsed, err := Parse(keys)
	if err != nil {
		return nil, err
	}
	out := make(map[string]bool, len(parsed.Items))
	for _, it := range parsed.Items {
		removed := DeletePath(root, it.Path)
		out[it.Label] = out[it.Label] || removed
	}

	return out, nil
}

// KeyMatchesMany returns label → resolvable prefixes for every key.
// Errors: ErrInvalidKeyType only.
func KeyMatchesMany(root any, keys any) (map[string][]string, error) {
	parsed, err := Parse(keys)
	if err != nil {
		return nil, err
	}
	out := make(map[string][]string, len(parsed.Items))
	for _, it := range parsed.Items {
		out[it.Label] = MatchPath(root, it.Path)
	}

	return out, nil
}

// SetMany applies pairs strictly left to right, so a later pair sees (and
// may overwrite) structure created by an earlier one. A pair whose key is a
// sequence assigns its value to each key of the sequence. Keys are all
// validated before anything is written.
// Errors: ErrNilRoot, ErrInvalidKeyType.
func SetMany(root Map, pairs ...Pair) error {
	if root == nil {
		return ErrNilRoot
	}
	parsed := make([]Parsed, len(pairs))
	for i, pair := range pairs {
		p, err := Parse(pair.Key)
		if err != nil {
			return err
		}
		parsed[i] = p
	}
	for i, p := range parsed {
		for _, it := range p.Items {
			SetPath(root, it.Path, pairs[i].Value)
		}
	}

	return nil
}

// getItems resolves each item against root.
func getItems(root any, items []Item, def any) map[string]any {
	out := make(map[string]any, len(items))
	for _, it := range items {
		out[it.Label] = GetPath(root, it.Path, def)
	}

	return out
}
