package bignum

import (
	"errors"
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// Sentinel errors.
var (
	ErrInvalidNumber   = errors.New("bignum: invalid number")
	ErrDivisionByZero  = errors.New("bignum: division by zero")
	ErrOptionViolation = errors.New("bignum: invalid option supplied")
)

// DefaultPrecision is the number of significant digits of a BigFloat when
// no WithPrecision option is given (IEEE 754 decimal128).
const DefaultPrecision uint32 = 34

// Number is implemented by BigInt and BigFloat.
type Number interface {
	// Decimal returns a copy of the value as an apd.Decimal.
	Decimal() *apd.Decimal
	String() string
}

// Option configures the arithmetic context of a BigFloat.
type Option func(*Options)

// Options holds the precision and rounding used by BigFloat arithmetic.
type Options struct {
	// Precision is the number of significant digits kept by each operation.
	Precision uint32

	// Rounding is applied when a result has more digits than Precision.
	Rounding apd.Rounder

	err error
}

// DefaultOptions returns DefaultPrecision digits with half-up rounding.
func DefaultOptions() Options {
	return Options{
		Precision: DefaultPrecision,
		Rounding:  apd.RoundHalfUp,
	}
}

// WithPrecision sets the number of significant digits. Zero is rejected
// with ErrOptionViolation because division needs a finite precision.
func WithPrecision(p uint32) Option {
	return func(o *Options) {
		if p == 0 {
			o.err = fmt.Errorf("%w: precision must be positive", ErrOptionViolation)

			return
		}
		o.Precision = p
	}
}

// WithRounding sets the rounding mode, e.g. apd.RoundHalfEven.
func WithRounding(r apd.Rounder) Option {
	return func(o *Options) {
		o.Rounding = r
	}
}

// newContext builds the apd context for opts.
func newContext(opts []Option) (*apd.Context, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	ctx := apd.BaseContext.WithPrecision(o.Precision)
	ctx.Rounding = o.Rounding

	return ctx, nil
}
