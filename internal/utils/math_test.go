package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PropForecast_Go/internal/domain"
)

func TestWeightedAverage(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		weights  []float64
		expected float64
	}{
		{
			name:     "equal weights average the values",
			values:   []float64{1, 0},
			weights:  []float64{1, 1},
			expected: 0.5,
		},
		{
			name:     "weights need not sum to one",
			values:   []float64{0.8, 0.2},
			weights:  []float64{3, 1},
			expected: 0.65,
		},
		{
			name:     "zero weight entry is ignored",
			values:   []float64{0.9, 0.1},
			weights:  []float64{1, 0},
			expected: 0.9,
		},
		{
			name:     "single value",
			values:   []float64{0.42},
			weights:  []float64{0.25},
			expected: 0.42,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := WeightedAverage(tt.values, tt.weights)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-12)
		})
	}
}

func TestWeightedAverage_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		values  []float64
		weights []float64
	}{
		{name: "length mismatch", values: []float64{1, 2}, weights: []float64{1}},
		{name: "zero total weight", values: []float64{1, 2}, weights: []float64{0, 0}},
		{name: "empty input", values: nil, weights: nil},
		{name: "negative weight", values: []float64{1, 2}, weights: []float64{1, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := WeightedAverage(tt.values, tt.weights)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.3, Clamp(0.1, 0.3, 0.85))
	assert.Equal(t, 0.85, Clamp(0.95, 0.3, 0.85))
	assert.Equal(t, 0.5, Clamp(0.5, 0.3, 0.85))
	assert.Equal(t, 0.0, Clamp01(-2))
	assert.Equal(t, 1.0, Clamp01(1.0000001))
}

func TestRoundMetric(t *testing.T) {
	// 0.6 + 0.3 + 0.1 accumulates to 0.9999999999999999 at runtime
	base, overlap, recency := 0.6, 0.3, 0.1
	sum := base + overlap + recency
	assert.NotEqual(t, 1.0, sum)
	assert.Equal(t, 1.0, RoundMetric(sum))
	assert.Equal(t, 0.1235, RoundMetric(0.12345678))
	assert.Equal(t, -2.0, RoundMetric(-1.99999999))
}

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.InDelta(t, 2.0, Mean([]float64{1, 2, 3}), 1e-12)
}
