package num_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/primext/num"
)

// TestKindPredicates classifies values by Go kind only.
func TestKindPredicates(t *testing.T) {
	t.Parallel()

	type myInt int

	for _, v := range []any{1, int8(-1), uint64(math.MaxUint64), myInt(4)} {
		assert.True(t, num.IsInt(v), "%#v", v)
		assert.False(t, num.IsFloat(v), "%#v", v)
		assert.True(t, num.IsNum(v), "%#v", v)
	}
	for _, v := range []any{1.5, float32(2)} {
		assert.True(t, num.IsFloat(v), "%#v", v)
		assert.False(t, num.IsInt(v), "%#v", v)
	}
	for _, v := range []any{nil, "1", true, []int{1}} {
		assert.False(t, num.IsNum(v), "%#v", v)
	}
}

// TestIsNumeric accepts numeric strings on top of numbers.
func TestIsNumeric(t *testing.T) {
	t.Parallel()

	for _, v := range []any{3, 2.5, "42", " -1.5 ", "1e3"} {
		assert.True(t, num.IsNumeric(v), "%#v", v)
	}
	for _, v := range []any{"", "  ", "abc", "1.2.3", true, nil, "NaN", "nan", "Inf", "-Inf", "Infinity", "1e400"} {
		assert.False(t, num.IsNumeric(v), "%#v", v)
	}
}

// TestBoolPredicates distinguishes strict bools from boolish spellings.
func TestBoolPredicates(t *testing.T) {
	t.Parallel()

	assert.True(t, num.IsBool(false))
	assert.False(t, num.IsBool("true"))

	for _, v := range []any{true, "YES", "off", " On ", "0", 1, uint8(0), "n"} {
		assert.True(t, num.IsBoolish(v), "%#v", v)
	}
	for _, v := range []any{"maybe", 2, -1, 1.0, nil, ""} {
		assert.False(t, num.IsBoolish(v), "%#v", v)
	}
}

// TestAll applies a predicate to every element.
func TestAll(t *testing.T) {
	t.Parallel()

	assert.True(t, num.All([]any{1, 2, int64(3)}, num.IsInt))
	assert.False(t, num.All([]any{1, "2"}, num.IsInt))
	assert.True(t, num.All([]any{1, "2"}, num.IsNumeric))
	assert.True(t, num.All(nil, num.IsInt))
}
