package guard_test

import (
	"errors"
	"testing"

	"storefront/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("constructed_guard_passes_validation", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates embedding the guard in a
// value object so zero-value instances are rejected.
func TestConstructorGuardUsageExample(t *testing.T) {
	type reference struct {
		code  string
		guard guard.ConstructorGuard
	}

	errNotConstructed := errors.New("reference must be created via newReference")

	newReference := func(code string) (reference, error) {
		if code == "" {
			return reference{}, errors.New("code is required")
		}
		return reference{code: code, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_value_is_valid", func(t *testing.T) {
		ref, err := newReference("ORD-12345678")

		require.NoError(t, err)
		require.NoError(t, ref.guard.Validate(errNotConstructed))
	})

	t.Run("zero_value_is_rejected", func(t *testing.T) {
		var ref reference

		err := ref.guard.Validate(errNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errNotConstructed, err)
	})
}
