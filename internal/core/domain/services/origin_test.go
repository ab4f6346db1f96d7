package services_test

import (
	"testing"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOriginKeys(t *testing.T) {
	step := kernel.NewUUID()
	o := orderAt(t, step)

	assert.True(t, services.CurrentStepOrigin(o).IsEqual(step))
	assert.True(t, services.OrderIDOrigin(o).IsEqual(o.ID()))
}

func TestParseOriginKey(t *testing.T) {
	o := orderAt(t, kernel.NewUUID())

	for _, name := range []string{"", services.OriginKeyStep} {
		key, err := services.ParseOriginKey(name)
		require.NoError(t, err)
		assert.True(t, key(o).IsEqual(o.StepID()))
	}

	key, err := services.ParseOriginKey(services.OriginKeyOrderID)
	require.NoError(t, err)
	assert.True(t, key(o).IsEqual(o.ID()))

	_, err = services.ParseOriginKey("screen")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
