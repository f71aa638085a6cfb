package arr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/primext/arr"
)

func sample() arr.Map {
	return arr.Map{
		"user": arr.Map{"name": "ada", "role": arr.Map{"id": 1, "title": "admin"}},
		"tags": []any{"x", "y"},
	}
}

// TestGetSet exercises the string-keyed facade.
func TestGetSet(t *testing.T) {
	t.Parallel()
	m := sample()

	assert.Equal(t, "admin", arr.Get(m, "user.role.title", nil))
	assert.Equal(t, "y", arr.Get(m, "tags.1", nil))
	assert.Equal(t, "none", arr.Get(m, "user.email", "none"))

	require.NoError(t, arr.Set(m, "user.email", "ada@example.com"))
	assert.Equal(t, "ada@example.com", arr.Get(m, "user.email", nil))
	assert.ErrorIs(t, arr.Set(nil, "a", 1), arr.ErrNilRoot)
}

// TestHasForget checks the all/any presence rules and removal counts.
func TestHasForget(t *testing.T) {
	t.Parallel()
	m := sample()

	assert.True(t, arr.Has(m, "user.name", "tags.0"))
	assert.False(t, arr.Has(m, "user.name", "user.email"))
	assert.False(t, arr.Has(m))
	assert.True(t, arr.HasAny(m, "nope", "user.role.id"))
	assert.False(t, arr.HasAny(m, "nope"))

	assert.Equal(t, 2, arr.Forget(m, "user.role.id", "tags", "missing"))
	assert.Equal(t, arr.Map{"user": arr.Map{"name": "ada", "role": arr.Map{"title": "admin"}}}, m)
	assert.Zero(t, arr.Forget(nil, "a"))
}

// TestOnlyExcept keeps or drops dotted keys without touching the source.
func TestOnlyExcept(t *testing.T) {
	t.Parallel()
	m := sample()

	assert.Equal(t,
		arr.Map{"user": arr.Map{"role": arr.Map{"title": "admin"}}, "tags": []any{"x", "y"}},
		arr.Only(m, "user.role.title", "tags", "missing"))

	assert.Equal(t,
		arr.Map{"user": arr.Map{"role": arr.Map{"id": 1, "title": "admin"}}, "tags": []any{"x", "y"}},
		arr.Except(m, "user.name"))
	assert.Equal(t, sample(), m)
}

// TestPluck collects values positionally or by label.
func TestPluck(t *testing.T) {
	t.Parallel()

	items := []arr.Map{
		{"id": 1, "meta": arr.Map{"name": "a"}},
		{"id": 2, "meta": arr.Map{"name": "b"}},
		{"meta": arr.Map{"name": "c"}},
	}
	assert.Equal(t, []any{"a", "b", "c"}, arr.Pluck(items, "meta.name"))
	assert.Equal(t, []any{1, 2, nil}, arr.Pluck(items, "id"))
	assert.Equal(t, map[string]any{"1": "a", "2": "b"}, arr.PluckBy(items, "meta.name", "id"))
}

// TestAccessibleAndShape covers the container predicates.
func TestAccessibleAndShape(t *testing.T) {
	t.Parallel()

	assert.True(t, arr.Accessible(arr.Map{}))
	assert.True(t, arr.Accessible([]int{1}))
	assert.True(t, arr.Accessible([2]string{}))
	assert.False(t, arr.Accessible("abc"))
	assert.False(t, arr.Accessible(nil))

	assert.True(t, arr.IsList([]any{1}))
	assert.True(t, arr.IsList(arr.Map{"0": "a", "1": "b"}))
	assert.True(t, arr.IsList(arr.Map{}))
	assert.False(t, arr.IsList(arr.Map{"1": "b"}))
	assert.False(t, arr.IsList("x"))

	assert.True(t, arr.IsAssoc(arr.Map{"a": 1}))
	assert.False(t, arr.IsAssoc(arr.Map{"0": 1}))
	assert.False(t, arr.IsAssoc([]any{}))
}

// TestWrap normalises any value into a list.
func TestWrap(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []any{}, arr.Wrap(nil))
	assert.Equal(t, []any{1, 2}, arr.Wrap([]any{1, 2}))
	assert.Equal(t, []any{"a", "b"}, arr.Wrap([]string{"a", "b"}))
	assert.Equal(t, []any{"a"}, arr.Wrap("a"))
	assert.Equal(t, []any{arr.Map{"k": 1}}, arr.Wrap(arr.Map{"k": 1}))
}
