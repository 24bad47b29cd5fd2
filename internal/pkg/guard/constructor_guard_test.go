package guard_test

import (
	"errors"
	"testing"

	"foodadmin/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample shows the intended embedding pattern on a
// command-like object.
func TestConstructorGuardUsageExample(t *testing.T) {
	type cancellationNote struct {
		text  string
		guard guard.ConstructorGuard
	}

	var errNoteNotConstructed = errors.New("cancellationNote must be created via its constructor")

	newNote := func(text string) (cancellationNote, error) {
		if text == "" {
			return cancellationNote{}, errors.New("text is required")
		}
		return cancellationNote{text: text, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		note, err := newNote("out of stock, refund issued")

		require.NoError(t, err)
		require.NoError(t, note.guard.Validate(errNoteNotConstructed))
		assert.Equal(t, "out of stock, refund issued", note.text)
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		var note cancellationNote // zero value

		err := note.guard.Validate(errNoteNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errNoteNotConstructed, err)
	})
}
