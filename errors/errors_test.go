package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	errOne = errors.New("one") //nolint:err113
	errTwo = errors.New("two") //nolint:err113
)

func TestCollection(t *testing.T) {
	t.Parallel()

	t.Run("zero value has no error", func(t *testing.T) {
		t.Parallel()

		var c Collection

		assert.Equal(t, 0, c.Len())
		assert.Empty(t, c.Errors())
		require.NoError(t, c.Err())
	})

	t.Run("nil is ignored", func(t *testing.T) {
		t.Parallel()

		var c Collection
		c.Add(nil)

		assert.Equal(t, 0, c.Len())
		require.NoError(t, c.Err())
	})

	t.Run("single error is returned unwrapped", func(t *testing.T) {
		t.Parallel()

		var c Collection
		c.Add(errOne)

		assert.Same(t, errOne, c.Err()) //nolint:testifylint
	})

	t.Run("formatted errors keep their sentinel", func(t *testing.T) {
		t.Parallel()

		var c Collection
		c.Addf("%w (entry %d)", errOne, 3)

		require.ErrorIs(t, c.Err(), errOne)
		assert.Equal(t, "one (entry 3)", c.Err().Error())
	})

	t.Run("several errors are joined in order", func(t *testing.T) {
		t.Parallel()

		var c Collection
		c.Add(errOne)
		c.Add(nil)
		c.Addf("field %q: %w", "name", errTwo)

		err := c.Err()
		require.ErrorIs(t, err, errOne)
		require.ErrorIs(t, err, errTwo)
		assert.Equal(t, "one\nfield \"name\": two", err.Error())

		errs := c.Errors()
		require.Len(t, errs, 2)
		errs[0] = nil
		assert.Same(t, errOne, c.Errors()[0], "Errors returns a copy") //nolint:testifylint
	})
}
