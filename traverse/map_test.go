package traverse_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/primext/dotarr"
	"github.com/katalvlaran/primext/traverse"
)

// TestMap_BothCallbacks rewrites keys and values in one pass.
func TestMap_BothCallbacks(t *testing.T) {
	t.Parallel()

	in := dotarr.Map{"a": 1, "b": 2}
	got, err := traverse.Map(in,
		func(k string, _ any) (string, error) { return strings.ToUpper(k), nil },
		func(k string, v any) (any, error) { return k + "=" + string(rune('0'+v.(int))), nil },
	)
	require.NoError(t, err)
	assert.Equal(t, dotarr.Map{"A": "a=1", "B": "b=2"}, got)
	assert.Equal(t, dotarr.Map{"a": 1, "b": 2}, in, "input untouched")
}

// TestMap_NilCallbacks behaves as identity on the missing half.
func TestMap_NilCallbacks(t *testing.T) {
	t.Parallel()

	in := dotarr.Map{"a": 1}
	got, err := traverse.Map(in, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, in, got)

	got, err = traverse.Map(in, nil, func(_ string, v any) (any, error) { return v.(int) * 10, nil })
	require.NoError(t, err)
	assert.Equal(t, dotarr.Map{"a": 10}, got)

	got, err = traverse.Map(nil, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

// TestMap_KeyCollision keeps the lexically later source key.
func TestMap_KeyCollision(t *testing.T) {
	t.Parallel()

	got, err := traverse.Map(dotarr.Map{"x1": "first", "x2": "second"},
		func(string, any) (string, error) { return "x", nil }, nil)
	require.NoError(t, err)
	assert.Equal(t, dotarr.Map{"x": "second"}, got)
}

// TestMap_CallbackError aborts and wraps the callback error.
func TestMap_CallbackError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	_, err := traverse.Map(dotarr.Map{"a": 1},
		func(string, any) (string, error) { return "", boom }, nil)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), `"a"`)

	_, err = traverse.Map(dotarr.Map{"a": 1}, nil,
		func(string, any) (any, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)
}
