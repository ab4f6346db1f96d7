package kernel_test

import (
	"encoding/json"
	"slices"
	"testing"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validUUID = "550e8400-e29b-41d4-a716-446655440000"

func TestNewUUID(t *testing.T) {
	t.Run("should create a valid UUID", func(t *testing.T) {
		id := kernel.NewUUID()

		assert.NoError(t, id.Validate())
		assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", id.String())
	})

	t.Run("should create unique UUIDs", func(t *testing.T) {
		id1 := kernel.NewUUID()
		id2 := kernel.NewUUID()

		assert.False(t, id1.IsEqual(id2))
	})
}

func TestUUIDFromString(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "canonical", input: validUUID},
		{name: "braces", input: "{550e8400-e29b-41d4-a716-446655440000}"},
		{name: "urn prefix", input: "urn:uuid:550e8400-e29b-41d4-a716-446655440000"},
		{name: "no hyphens", input: "550e8400e29b41d4a716446655440000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := kernel.UUIDFromString(tt.input)

			require.NoError(t, err)
			assert.Equal(t, validUUID, id.String())
		})
	}

	t.Run("should reject malformed input", func(t *testing.T) {
		_, err := kernel.UUIDFromString("step-1")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid UUID format")
	})

	t.Run("should reject nil UUID", func(t *testing.T) {
		_, err := kernel.UUIDFromString("00000000-0000-0000-0000-000000000000")

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestMustUUID(t *testing.T) {
	assert.Equal(t, validUUID, kernel.MustUUID(validUUID).String())
	assert.Panics(t, func() { kernel.MustUUID("nope") })
}

func TestUUIDsFromStrings(t *testing.T) {
	t.Run("should parse every element", func(t *testing.T) {
		ids, err := kernel.UUIDsFromStrings([]string{validUUID, "6ba7b810-9dad-11d1-80b4-00c04fd430c8"})

		require.NoError(t, err)
		require.Len(t, ids, 2)
		assert.Equal(t, validUUID, ids[0].String())
	})

	t.Run("should report the failing element", func(t *testing.T) {
		_, err := kernel.UUIDsFromStrings([]string{validUUID, "bad"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "element 1")
	})
}

func TestUUID_Validate(t *testing.T) {
	var zero kernel.UUID

	assert.ErrorIs(t, zero.Validate(), kernel.ErrUUIDIsNotConstructed)
	assert.NoError(t, kernel.NewUUID().Validate())
}

func TestUUID_Compare(t *testing.T) {
	a := kernel.MustUUID("00000000-0000-0000-0000-000000000001")
	b := kernel.MustUUID("00000000-0000-0000-0000-000000000002")

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))

	ids := []kernel.UUID{b, a}
	slices.SortFunc(ids, kernel.UUID.Compare)
	assert.True(t, ids[0].IsEqual(a))
}

func TestUUID_JSON(t *testing.T) {
	type body struct {
		StepID kernel.UUID `json:"stepId"`
	}

	t.Run("should round trip through JSON", func(t *testing.T) {
		in := body{StepID: kernel.MustUUID(validUUID)}

		raw, err := json.Marshal(in)
		require.NoError(t, err)
		assert.JSONEq(t, `{"stepId":"`+validUUID+`"}`, string(raw))

		var out body
		require.NoError(t, json.Unmarshal(raw, &out))
		assert.True(t, in.StepID.IsEqual(out.StepID))
	})

	t.Run("should reject malformed JSON value", func(t *testing.T) {
		var out body
		assert.Error(t, json.Unmarshal([]byte(`{"stepId":"x"}`), &out))
	})
}

func TestFromUUID(t *testing.T) {
	raw := uuid.MustParse(validUUID)

	id, err := kernel.FromUUID(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, id.UUID())

	_, err = kernel.FromUUID(uuid.Nil)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestUUID_UUID(t *testing.T) {
	id := kernel.MustUUID(validUUID)
	assert.Equal(t, validUUID, id.UUID().String())
}
