package bignum

import (
	"fmt"
	"math"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// BigFloat is an immutable decimal number carrying its own precision and
// rounding. The zero value is 0 with DefaultOptions.
type BigFloat struct {
	d   *apd.Decimal
	ctx *apd.Context
}

// ParseFloat parses a decimal such as "-12.5" or "1e-7".
func ParseFloat(s string, opts ...Option) (BigFloat, error) {
	ctx, err := newContext(opts)
	if err != nil {
		return BigFloat{}, err
	}
	d, _, err := apd.NewFromString(strings.TrimSpace(s))
	if err != nil || d.Form != apd.Finite {
		return BigFloat{}, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}

	return BigFloat{d: d, ctx: ctx}, nil
}

// NewFloat converts f exactly (its shortest decimal form). NaN and
// infinities are rejected.
func NewFloat(f float64, opts ...Option) (BigFloat, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return BigFloat{}, fmt.Errorf("%w: %v", ErrInvalidNumber, f)
	}
	ctx, err := newContext(opts)
	if err != nil {
		return BigFloat{}, err
	}
	d, err := new(apd.Decimal).SetFloat64(f)
	if err != nil {
		return BigFloat{}, fmt.Errorf("%w: %v", ErrInvalidNumber, err)
	}

	return BigFloat{d: d, ctx: ctx}, nil
}

// FromInt converts b exactly.
func FromInt(b BigInt, opts ...Option) (BigFloat, error) {
	ctx, err := newContext(opts)
	if err != nil {
		return BigFloat{}, err
	}

	return BigFloat{d: b.Decimal(), ctx: ctx}, nil
}

func (a BigFloat) val() *apd.Decimal {
	if a.d == nil {
		return new(apd.Decimal)
	}

	return a.d
}

func (a BigFloat) context() *apd.Context {
	if a.ctx == nil {
		ctx, _ := newContext(nil)

		return ctx
	}

	return a.ctx
}

type unaryOp func(ctx *apd.Context, d, x *apd.Decimal) (apd.Condition, error)

type binaryOp func(ctx *apd.Context, d, x, y *apd.Decimal) (apd.Condition, error)

func (a BigFloat) unary(name string, op unaryOp) (BigFloat, error) {
	ctx := a.context()
	d := new(apd.Decimal)
	if _, err := op(ctx, d, a.val()); err != nil {
		return BigFloat{}, fmt.Errorf("bignum: %s: %w", name, err)
	}

	return BigFloat{d: d, ctx: ctx}, nil
}

func (a BigFloat) binary(name string, b Number, op binaryOp) (BigFloat, error) {
	ctx := a.context()
	d := new(apd.Decimal)
	if _, err := op(ctx, d, a.val(), b.Decimal()); err != nil {
		return BigFloat{}, fmt.Errorf("bignum: %s: %w", name, err)
	}

	return BigFloat{d: d, ctx: ctx}, nil
}

// Add returns a + b.
func (a BigFloat) Add(b Number) (BigFloat, error) {
	return a.binary("add", b, (*apd.Context).Add)
}

// Sub returns a - b.
func (a BigFloat) Sub(b Number) (BigFloat, error) {
	return a.binary("sub", b, (*apd.Context).Sub)
}

// Mul returns a * b.
func (a BigFloat) Mul(b Number) (BigFloat, error) {
	return a.binary("mul", b, (*apd.Context).Mul)
}

// Quo returns a / b rounded to a's precision.
func (a BigFloat) Quo(b Number) (BigFloat, error) {
	if b.Decimal().IsZero() {
		return BigFloat{}, ErrDivisionByZero
	}

	return a.binary("quo", b, (*apd.Context).Quo)
}

// Pow returns a raised to b. Non-integral exponents need a positive base.
func (a BigFloat) Pow(b Number) (BigFloat, error) {
	return a.binary("pow", b, (*apd.Context).Pow)
}

// Sqrt returns the square root of a, which must not be negative.
func (a BigFloat) Sqrt() (BigFloat, error) {
	return a.unary("sqrt", (*apd.Context).Sqrt)
}

// Abs returns |a|.
func (a BigFloat) Abs() (BigFloat, error) {
	return a.unary("abs", (*apd.Context).Abs)
}

// Neg returns -a.
func (a BigFloat) Neg() (BigFloat, error) {
	return a.unary("neg", (*apd.Context).Neg)
}

// Floor returns the greatest integer not above a.
func (a BigFloat) Floor() (BigFloat, error) {
	return a.unary("floor", (*apd.Context).Floor)
}

// Ceil returns the least integer not below a.
func (a BigFloat) Ceil() (BigFloat, error) {
	return a.unary("ceil", (*apd.Context).Ceil)
}

// Round returns a with exactly scale digits after the decimal point, using
// a's rounding mode. A negative scale rounds to tens, hundreds and so on.
func (a BigFloat) Round(scale int32) (BigFloat, error) {
	return a.unary("round", func(ctx *apd.Context, d, x *apd.Decimal) (apd.Condition, error) {
		return ctx.Quantize(d, x, -scale)
	})
}

// Cmp compares a and any Number.
func (a BigFloat) Cmp(b Number) int { return a.val().Cmp(b.Decimal()) }

// Equal reports whether a and b are numerically equal; 1.0 equals 1.
func (a BigFloat) Equal(b Number) bool { return a.Cmp(b) == 0 }

// Sign returns -1, 0 or 1.
func (a BigFloat) Sign() int { return a.val().Sign() }

// IsZero reports a == 0.
func (a BigFloat) IsZero() bool { return a.val().IsZero() }

// Precision returns the number of significant digits of a's context.
func (a BigFloat) Precision() uint32 { return a.context().Precision }

// Float64 returns the nearest float64.
func (a BigFloat) Float64() (float64, error) { return a.val().Float64() }

// String returns a in plain notation, never with an exponent.
func (a BigFloat) String() string { return a.val().Text('f') }

// Decimal returns a copy of a.
func (a BigFloat) Decimal() *apd.Decimal { return new(apd.Decimal).Set(a.val()) }
