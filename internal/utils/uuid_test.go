package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateUUID(t *testing.T) {
	t.Run("Generates parseable UUID", func(t *testing.T) {
		id := GenerateUUID()
		parsed, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(4), parsed.Version())
	})

	t.Run("Generates unique UUIDs", func(t *testing.T) {
		ids := make(map[string]bool)
		iterations := 100

		for i := 0; i < iterations; i++ {
			id := GenerateUUID()
			assert.False(t, ids[id], "GenerateUUID() should not generate duplicate UUID: %s", id)
			ids[id] = true
		}

		assert.Len(t, ids, iterations)
	})
}
