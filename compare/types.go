package compare

import (
	"errors"
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// ErrIncomparable is returned by Loose for values with no defined order.
var ErrIncomparable = errors.New("compare: values are not comparable")

// Option adjusts Equal and Diff.
type Option func(*Options)

// Options collects go-cmp options.
type Options struct {
	cmp []cmp.Option
}

// DefaultOptions returns an exact comparison that also looks into
// unexported struct fields. Types with an Equal method are compared with it.
func DefaultOptions() Options {
	return Options{cmp: []cmp.Option{
		cmp.Exporter(func(reflect.Type) bool { return true }),
	}}
}

func buildOptions(opts []Option) []cmp.Option {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o.cmp
}
