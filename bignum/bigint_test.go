package bignum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/primext/bignum"
)

func mustInt(t *testing.T, s string) bignum.BigInt {
	t.Helper()
	v, err := bignum.ParseInt(s)
	require.NoError(t, err)

	return v
}

// TestBigInt_Arithmetic works beyond the int64 range.
func TestBigInt_Arithmetic(t *testing.T) {
	t.Parallel()

	a := mustInt(t, "123456789012345678901234567890")
	two := bignum.NewInt(2)

	assert.Equal(t, "246913578024691357802469135780", a.Mul(two).String())
	assert.Equal(t, "123456789012345678901234567892", a.Add(two).String())
	assert.Equal(t, "123456789012345678901234567888", a.Sub(two).String())
	assert.Equal(t, "1267650600228229401496703205376", two.Pow(100).String())
	assert.Equal(t, "1", a.Pow(0).String())
	assert.Equal(t, a.String(), a.Pow(1).String())
	assert.Equal(t, "-27", bignum.NewInt(-3).Pow(3).String())
	assert.Equal(t, "-5", bignum.NewInt(5).Neg().String())
	assert.Equal(t, "5", bignum.NewInt(-5).Abs().String())
}

// TestBigInt_Division truncates toward zero and rejects zero divisors.
func TestBigInt_Division(t *testing.T) {
	t.Parallel()

	q, err := bignum.NewInt(-7).Quo(bignum.NewInt(2))
	require.NoError(t, err)
	assert.Equal(t, "-3", q.String())

	r, err := bignum.NewInt(-7).Rem(bignum.NewInt(2))
	require.NoError(t, err)
	assert.Equal(t, "-1", r.String())

	_, err = bignum.NewInt(1).Quo(bignum.BigInt{})
	assert.ErrorIs(t, err, bignum.ErrDivisionByZero)
	_, err = bignum.NewInt(1).Rem(bignum.NewInt(0))
	assert.ErrorIs(t, err, bignum.ErrDivisionByZero)
}

// TestBigInt_Inspection covers comparison and conversion.
func TestBigInt_Inspection(t *testing.T) {
	t.Parallel()

	big := mustInt(t, "99999999999999999999")
	assert.Equal(t, 1, big.Cmp(bignum.NewInt(1)))
	assert.Equal(t, -1, big.Neg().Sign())
	assert.True(t, bignum.BigInt{}.IsZero())
	assert.Equal(t, "0", bignum.BigInt{}.String())

	_, ok := big.Int64()
	assert.False(t, ok)
	n, ok := bignum.NewInt(-42).Int64()
	assert.True(t, ok)
	assert.Equal(t, int64(-42), n)

	v, err := bignum.ParseInt(" +17 ")
	require.NoError(t, err)
	assert.Equal(t, "17", v.String())
}

// TestParseInt_Invalid rejects non-integers.
func TestParseInt_Invalid(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", "1.5", "abc", "1e3", "--1"} {
		_, err := bignum.ParseInt(s)
		assert.ErrorIs(t, err, bignum.ErrInvalidNumber, "%q", s)
	}
}
