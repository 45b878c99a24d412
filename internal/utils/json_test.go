package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

func TestDecodeStrict(t *testing.T) {
	t.Run("decodes valid data", func(t *testing.T) {
		var s sample
		require.NoError(t, DecodeStrict([]byte(`{"name":"finance","value":0.25}`), &s))
		assert.Equal(t, "finance", s.Name)
		assert.Equal(t, 0.25, s.Value)
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		var s sample
		err := DecodeStrict([]byte(`{"name":"x","weight":1}`), &s)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown field")
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		var s sample
		assert.Error(t, DecodeStrict([]byte(`{"name":`), &s))
	})
}
