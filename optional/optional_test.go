package optional

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSomeAndNone(t *testing.T) {
	t.Parallel()

	some := Some(42)
	assert.True(t, some.NonEmpty())
	assert.False(t, some.Empty())

	val, ok := some.Get()
	assert.True(t, ok)
	assert.Equal(t, 42, val)

	none := None[int]()
	assert.True(t, none.Empty())

	val, ok = none.Get()
	assert.False(t, ok)
	assert.Equal(t, 0, val)

	var zero Value[string]
	assert.True(t, zero.Empty())
}

func TestOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Some(3), Of(3, true))
	assert.True(t, Of(3, false).Empty())
}

func TestGetOrElse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "x", Some("x").GetOrElse("y"))
	assert.Equal(t, "y", None[string]().GetOrElse("y"))
}

func TestGetOrPanic(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, Some(1).GetOrPanic())
	assert.Panics(t, func() {
		None[int]().GetOrPanic()
	})
}

func TestAll(t *testing.T) {
	t.Parallel()

	var seen []int
	for v := range Some(9).All() {
		seen = append(seen, v)
	}

	for v := range None[int]().All() {
		seen = append(seen, v)
	}

	assert.Equal(t, []int{9}, seen)
}

func TestEquals(t *testing.T) {
	t.Parallel()

	eq := func(a, b int) bool { return a == b }

	assert.True(t, Some(1).Equals(Some(1), eq))
	assert.False(t, Some(1).Equals(Some(2), eq))
	assert.False(t, Some(1).Equals(None[int](), eq))
	assert.True(t, None[int]().Equals(None[int](), eq))
}

func TestStringAndMap(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Some(5)", Some(5).String())
	assert.Equal(t, "None", None[int]().String())

	doubled := Map(Some(5), func(v int) int { return v * 2 })
	assert.Equal(t, Some(10), doubled)
	assert.True(t, Map(None[int](), func(v int) int { return v * 2 }).Empty())
}
