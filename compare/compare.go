package compare

import (
	"fmt"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/spf13/cast"
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/primext/num"
)

// Compare returns -1, 0 or 1 as a is less than, equal to or greater than b.
func Compare[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Min returns the least argument; the first wins on ties.
func Min[T constraints.Ordered](first T, rest ...T) T {
	for _, v := range rest {
		if v < first {
			first = v
		}
	}

	return first
}

// Max returns the greatest argument; the first wins on ties.
func Max[T constraints.Ordered](first T, rest ...T) T {
	for _, v := range rest {
		if v > first {
			first = v
		}
	}

	return first
}

// Loose compares two dynamically typed scalars.
// Errors: ErrIncomparable for containers, or nil against non-nil.
func Loose(a, b any) (int, error) {
	switch {
	case a == nil && b == nil:
		return 0, nil
	case a == nil || b == nil:
		return 0, fmt.Errorf("%w: %T and %T", ErrIncomparable, a, b)
	}

	if x, ok := a.(bool); ok {
		if y, ok := b.(bool); ok {
			return Compare(boolRank(x), boolRank(y)), nil
		}
	}
	if num.IsNumeric(a) && num.IsNumeric(b) {
		x, errA := cast.ToFloat64E(strings.TrimSpace(cast.ToString(a)))
		y, errB := cast.ToFloat64E(strings.TrimSpace(cast.ToString(b)))
		if errA == nil && errB == nil {
			return Compare(x, y), nil
		}
	}
	if isScalar(a) && isScalar(b) {
		return strings.Compare(cast.ToString(a), cast.ToString(b)), nil
	}

	return 0, fmt.Errorf("%w: %T and %T", ErrIncomparable, a, b)
}

// Equal reports deep equality of a and b.
func Equal(a, b any, opts ...Option) bool {
	return cmp.Equal(a, b, buildOptions(opts)...)
}

// Diff returns a human-readable report of the differences between want and
// got, or "" when they are equal.
func Diff(want, got any, opts ...Option) string {
	return cmp.Diff(want, got, buildOptions(opts)...)
}

// WithEquateEmpty treats nil and empty maps and slices as equal.
func WithEquateEmpty() Option {
	return func(o *Options) {
		o.cmp = append(o.cmp, cmpopts.EquateEmpty())
	}
}

// WithEquateApprox treats floats as equal within the relative fraction or
// the absolute margin.
func WithEquateApprox(fraction, margin float64) Option {
	return func(o *Options) {
		o.cmp = append(o.cmp, cmpopts.EquateApprox(fraction, margin))
	}
}

func boolRank(b bool) int {
	if b {
		return 1
	}

	return 0
}

func isScalar(v any) bool {
	switch v.(type) {
	case string, bool:
		return true
	}

	return num.IsNum(v)
}
