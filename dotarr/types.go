// Package dotarr defines the container, path and key types shared by the
// accessor, the batch dispatcher and the converters, plus sentinel errors.
package dotarr

import (
	"errors"
	"strings"
)

// Separator delimits segments in a dot-notated key.
const Separator = "."

// Sentinel errors for dot-path operations.
var (
	// ErrInvalidKeyType is returned when a key is neither a string, an integer,
	// a Path, nor a sequence of strings/integers.
	ErrInvalidKeyType = errors.New("dotarr: invalid key type")

	// ErrNilRoot is returned when a mutating operation receives a nil root Map.
	ErrNilRoot = errors.New("dotarr: root map is nil")

	// ErrPathNotFound is returned by Decode when the requested path is absent.
	ErrPathNotFound = errors.New("dotarr: path not found")
)

// Map is one level of a nested map. It is an alias, so values produced by
// encoding/json, yaml.v3 and friends are Maps without conversion.
type Map = map[string]any

// Path is an ordered sequence of non-empty segments. An empty Path means
// "no key".
type Path []string

// String joins the segments with Separator.
func (p Path) String() string {
	return strings.Join(p, Separator)
}

// Item is one parsed key: the original key's label and its Path.
type Item struct {
	// Label identifies the key in batch results (its string form).
	Label string

	// Path holds the split segments.
	Path Path
}

// Parsed is the outcome of Parse. Batch reports whether the key was a
// sequence; a scalar key always yields exactly one Item.
type Parsed struct {
	Batch bool
	Items []Item
}

// Pair is a single ordered key/value assignment used by SetMany and
// ConvertOrdered.
type Pair struct {
	Key   any
	Value any
}
