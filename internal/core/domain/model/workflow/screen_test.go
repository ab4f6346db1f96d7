package workflow_test

import (
	"testing"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/workflow"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScreen(t *testing.T) {
	t.Run("should create screen", func(t *testing.T) {
		id := kernel.NewUUID()

		s, err := workflow.NewScreen(id, "  Purchase requests ")

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.True(t, s.ID().IsEqual(id))
		assert.Equal(t, "Purchase requests", s.Name())
	})

	t.Run("should join all validation errors", func(t *testing.T) {
		s, err := workflow.NewScreen(kernel.UUID{}, " ")

		require.Error(t, err)
		assert.Nil(t, s)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.ErrorIs(t, err, workflow.ErrScreenNameIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestScreen_Validate(t *testing.T) {
	var nilScreen *workflow.Screen
	var zero workflow.Screen

	assert.Equal(t, workflow.ErrScreenIsNotConstructed, nilScreen.Validate())
	assert.Equal(t, workflow.ErrScreenIsNotConstructed, zero.Validate())
}
