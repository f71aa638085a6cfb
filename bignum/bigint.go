package bignum

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// BigInt is an immutable integer of arbitrary size. The zero value is 0.
type BigInt struct {
	v *apd.BigInt
}

// NewInt returns x as a BigInt.
func NewInt(x int64) BigInt {
	return BigInt{v: apd.NewBigInt(x)}
}

// ParseInt parses a base-10 integer with an optional sign. Surrounding
// whitespace is ignored.
func ParseInt(s string) (BigInt, error) {
	v, ok := new(apd.BigInt).SetString(strings.TrimSpace(s), 10)
	if !ok {
		return BigInt{}, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}

	return BigInt{v: v}, nil
}

func (a BigInt) val() *apd.BigInt {
	if a.v == nil {
		return new(apd.BigInt)
	}

	return a.v
}

// Add returns a + b.
func (a BigInt) Add(b BigInt) BigInt {
	return BigInt{v: new(apd.BigInt).Add(a.val(), b.val())}
}

// Sub returns a - b.
func (a BigInt) Sub(b BigInt) BigInt {
	return BigInt{v: new(apd.BigInt).Sub(a.val(), b.val())}
}

// Mul returns a * b.
func (a BigInt) Mul(b BigInt) BigInt {
	return BigInt{v: new(apd.BigInt).Mul(a.val(), b.val())}
}

// Quo returns a / b truncated toward zero.
func (a BigInt) Quo(b BigInt) (BigInt, error) {
	if b.IsZero() {
		return BigInt{}, ErrDivisionByZero
	}

	return BigInt{v: new(apd.BigInt).Quo(a.val(), b.val())}, nil
}

// Rem returns a % b with the sign of a.
func (a BigInt) Rem(b BigInt) (BigInt, error) {
	if b.IsZero() {
		return BigInt{}, ErrDivisionByZero
	}

	return BigInt{v: new(apd.BigInt).Rem(a.val(), b.val())}, nil
}

// Pow returns a raised to n by repeated squaring.
// Complexity: O(log n) multiplications.
func (a BigInt) Pow(n uint64) BigInt {
	result := apd.NewBigInt(1)
	base := new(apd.BigInt).Set(a.val())
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			result.Mul(result, base)
		}
		if n > 1 {
			base.Mul(base, base)
		}
	}

	return BigInt{v: result}
}

// Abs returns |a|.
func (a BigInt) Abs() BigInt {
	return BigInt{v: new(apd.BigInt).Abs(a.val())}
}

// Neg returns -a.
func (a BigInt) Neg() BigInt {
	return BigInt{v: new(apd.BigInt).Neg(a.val())}
}

// Cmp returns -1, 0 or 1 as a is less than, equal to or greater than b.
func (a BigInt) Cmp(b BigInt) int { return a.val().Cmp(b.val()) }

// Equal reports a == b.
func (a BigInt) Equal(b BigInt) bool { return a.Cmp(b) == 0 }

// Sign returns -1, 0 or 1.
func (a BigInt) Sign() int { return a.val().Sign() }

// IsZero reports a == 0.
func (a BigInt) IsZero() bool { return a.Sign() == 0 }

// Int64 returns a as int64 and whether it fits.
func (a BigInt) Int64() (int64, bool) {
	v := a.val()
	if !v.IsInt64() {
		return 0, false
	}

	return v.Int64(), true
}

// String returns the base-10 representation.
func (a BigInt) String() string { return a.val().String() }

// Decimal returns a as an apd.Decimal with exponent 0.
func (a BigInt) Decimal() *apd.Decimal {
	return apd.NewWithBigInt(new(apd.BigInt).Set(a.val()), 0)
}
