package bignum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/primext/bignum"
)

// TestCompareMinMax works across BigInt and BigFloat.
func TestCompareMinMax(t *testing.T) {
	t.Parallel()

	one, half := bignum.NewInt(1), mustFloat(t, "0.5")
	big := mustInt(t, "100000000000000000000")

	assert.Equal(t, 1, bignum.Compare(one, half))
	assert.Equal(t, 0, bignum.Compare(one, mustFloat(t, "1.000")))
	assert.Equal(t, big, bignum.Max(one, half, big))
	assert.Equal(t, half, bignum.Min(one, half, big))
	assert.Equal(t, one, bignum.Max(one), "single argument")
}

// TestSum adds mixed numbers exactly.
func TestSum(t *testing.T) {
	t.Parallel()

	s, err := bignum.Sum(bignum.NewInt(1), mustFloat(t, "2.5"), mustFloat(t, "-0.25"))
	require.NoError(t, err)
	assert.Equal(t, "3.25", s.String())

	wide, err := bignum.Sum(
		mustInt(t, "1234567890123456789012345678901234567890"),
		bignum.NewInt(1),
	)
	require.NoError(t, err)
	assert.Equal(t, "1234567890123456789012345678901234567891", wide.String(), "no rounding past 34 digits")

	mixed, err := bignum.Sum(mustInt(t, "10000000000000000000000000000000000000000"), mustFloat(t, "0.0000000001"))
	require.NoError(t, err)
	assert.Equal(t, "10000000000000000000000000000000000000000.0000000001", mixed.String())

	zero, err := bignum.Sum()
	require.NoError(t, err)
	assert.True(t, zero.IsZero())
}

// TestInRange uses inclusive bounds.
func TestInRange(t *testing.T) {
	t.Parallel()

	lo, hi := bignum.NewInt(0), bignum.NewInt(10)
	assert.True(t, bignum.InRange(mustFloat(t, "9.99"), lo, hi))
	assert.True(t, bignum.InRange(hi, lo, hi))
	assert.False(t, bignum.InRange(mustFloat(t, "10.01"), lo, hi))
}

// TestParse picks the narrowest representation.
func TestParse(t *testing.T) {
	t.Parallel()

	n, err := bignum.Parse("42")
	require.NoError(t, err)
	assert.IsType(t, bignum.BigInt{}, n)

	n, err = bignum.Parse("4.2")
	require.NoError(t, err)
	assert.IsType(t, bignum.BigFloat{}, n)
	assert.Equal(t, "4.2", n.String())

	_, err = bignum.Parse("x")
	assert.ErrorIs(t, err, bignum.ErrInvalidNumber)
}
