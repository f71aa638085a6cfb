package compare_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/primext/bignum"
	"github.com/katalvlaran/primext/compare"
	"github.com/katalvlaran/primext/dotarr"
)

// TestCompareMinMax covers the ordered generics.
func TestCompareMinMax(t *testing.T) {
	t.Parallel()

	assert.Equal(t, -1, compare.Compare(1, 2))
	assert.Equal(t, 0, compare.Compare("a", "a"))
	assert.Equal(t, 1, compare.Compare(2.5, -1.0))
	assert.Equal(t, 1, compare.Min(3, 1, 2))
	assert.Equal(t, "c", compare.Max("a", "c", "b"))
	assert.Equal(t, 7, compare.Max(7))
}

// TestLoose_Numeric compares numbers and numeric strings by value.
func TestLoose_Numeric(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b any
		want int
	}{
		{"10", 9.5, 1},
		{2, "2.0", 0},
		{int8(-1), uint(0), -1},
		{" 3 ", "12", -1},
	}
	for _, tt := range tests {
		got, err := compare.Loose(tt.a, tt.b)
		require.NoError(t, err, "%#v vs %#v", tt.a, tt.b)
		assert.Equal(t, tt.want, got, "%#v vs %#v", tt.a, tt.b)
	}
}

// TestLoose_Other covers bools, strings and failures.
func TestLoose_Other(t *testing.T) {
	t.Parallel()

	got, err := compare.Loose(false, true)
	require.NoError(t, err)
	assert.Equal(t, -1, got)

	got, err = compare.Loose("apple", "banana")
	require.NoError(t, err)
	assert.Equal(t, -1, got)

	got, err = compare.Loose("abc", 5)
	require.NoError(t, err)
	assert.Equal(t, 1, got, "mixed kinds fall back to string order")

	got, err = compare.Loose(nil, nil)
	require.NoError(t, err)
	assert.Zero(t, got)

	got, err = compare.Loose("NaN", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, got, "NaN is not numeric, so it compares as a string")

	_, err = compare.Loose(nil, 1)
	assert.ErrorIs(t, err, compare.ErrIncomparable)
	_, err = compare.Loose(dotarr.Map{}, 1)
	assert.ErrorIs(t, err, compare.ErrIncomparable)
	_, err = compare.Loose([]any{1}, []any{1})
	assert.ErrorIs(t, err, compare.ErrIncomparable)
}

// TestEqualDiff checks nested trees with and without options.
func TestEqualDiff(t *testing.T) {
	t.Parallel()

	a := dotarr.Map{"a": dotarr.Map{"b": []any{1, 2}}, "c": nil}
	b := dotarr.Map{"a": dotarr.Map{"b": []any{1, 2}}, "c": nil}
	assert.True(t, compare.Equal(a, b))
	assert.Empty(t, compare.Diff(a, b))

	b["a"].(dotarr.Map)["b"] = []any{1, 3}
	assert.False(t, compare.Equal(a, b))
	assert.Contains(t, compare.Diff(a, b), "3")

	assert.False(t, compare.Equal(dotarr.Map{"x": []any{}}, dotarr.Map{"x": []any(nil)}))
	assert.True(t, compare.Equal(dotarr.Map{"x": []any{}}, dotarr.Map{"x": []any(nil)}, compare.WithEquateEmpty()))

	assert.False(t, compare.Equal(0.1+0.2, 0.3))
	assert.True(t, compare.Equal(0.1+0.2, 0.3, compare.WithEquateApprox(0, 1e-9)))
}

type point struct {
	x, y int
	Tag  string
}

// TestEqual_Structs accepts unexported fields and Equal methods.
func TestEqual_Structs(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		assert.True(t, compare.Equal(point{1, 2, "a"}, point{1, 2, "a"}))
		assert.False(t, compare.Equal(point{1, 2, "a"}, point{1, 3, "a"}))
		assert.Contains(t, compare.Diff(point{x: 1}, point{x: 2}), "x")
	})

	assert.True(t, compare.Equal(bignum.NewInt(1), bignum.NewInt(1)))
	assert.False(t, compare.Equal(bignum.NewInt(1), bignum.NewInt(2)))

	one, err := bignum.ParseFloat("1.0")
	require.NoError(t, err)
	other, err := bignum.ParseFloat("1")
	require.NoError(t, err)
	assert.True(t, compare.Equal(one, other))
	assert.True(t, compare.Equal(
		dotarr.Map{"n": bignum.NewInt(7)},
		dotarr.Map{"n": bignum.NewInt(7)},
	))
}
