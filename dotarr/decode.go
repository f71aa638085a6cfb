package dotarr

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// Decode copies the sub-tree at key into out, a pointer to a struct, map or
// scalar. Struct fields are matched through their `json` tags (falling back
// to case-insensitive field names) and scalar types are weakly converted, so
// "8080" decodes into an int field.
//
// Unlike Get, Decode is strict: a path that does not resolve returns
// ErrPathNotFound. An empty key decodes the whole root.
// Errors: ErrInvalidKeyType, ErrPathNotFound, or a wrapped decoder error.
func Decode(root any, key any, out any) error {
	p, err := Split(key)
	if err != nil {
		return err
	}
	if len(p) > 0 && !HasPath(root, p) {
		return fmt.Errorf("%w: %q", ErrPathNotFound, p.String())
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return fmt.Errorf("dotarr: decoder for %q: %w", p.String(), err)
	}
	if err = dec.Decode(GetPath(root, p, nil)); err != nil {
		return fmt.Errorf("dotarr: decode %q: %w", p.String(), err)
	}

	return nil
}
