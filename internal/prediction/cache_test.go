package prediction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PropForecast_Go/internal/domain"
)

func TestPredictionCache(t *testing.T) {
	c := newPredictionCache(2, time.Minute)
	p := &domain.Prediction{PropositionID: "2024-1", WeightsVersion: "v1", Probability: 0.61}

	_, ok := c.Get("2024-1", "v1")
	assert.False(t, ok)

	c.Set(p)
	got, ok := c.Get("2024-1", "v1")
	require.True(t, ok)
	assert.Equal(t, 0.61, got.Probability)

	// another weights version is a different entry
	_, ok = c.Get("2024-1", "v2")
	assert.False(t, ok)

	// callers get a copy
	got.Probability = 0.1
	again, _ := c.Get("2024-1", "v1")
	assert.Equal(t, 0.61, again.Probability)

	c.Invalidate("2024-1", "v1")
	_, ok = c.Get("2024-1", "v1")
	assert.False(t, ok)
}

func TestPredictionCache_SlicesAreNotShared(t *testing.T) {
	c := newPredictionCache(2, time.Minute)
	p := &domain.Prediction{
		PropositionID:         "2024-1",
		WeightsVersion:        "v1",
		Factors:               []domain.Factor{{Name: domain.FactorFinance, Value: 0.7, HasRealData: true}},
		HistoricalComparisons: []domain.HistoricalComparison{{PropositionID: "2020-15", Similarity: 0.8}},
	}
	c.Set(p)

	// the caller keeps mutating what it cached
	p.Factors[0].Value = 0

	got, ok := c.Get("2024-1", "v1")
	require.True(t, ok)
	got.Factors[0].Value = 0.1
	got.HistoricalComparisons[0].Similarity = 0

	again, ok := c.Get("2024-1", "v1")
	require.True(t, ok)
	assert.Equal(t, 0.7, again.Factors[0].Value)
	assert.Equal(t, 0.8, again.HistoricalComparisons[0].Similarity)
}

func TestPredictionCache_SchemaVersionMismatch(t *testing.T) {
	c := newPredictionCache(4, time.Minute)
	c.lru.Add(cacheKey("2024-1", "v1"), &cachedPrediction{Version: "0.9", Prediction: domain.Prediction{PropositionID: "2024-1"}})

	_, ok := c.Get("2024-1", "v1")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestPredictionCache_Defaults(t *testing.T) {
	c := newPredictionCache(0, 0)
	for i := 0; i < DefaultCacheSize+5; i++ {
		c.Set(&domain.Prediction{PropositionID: domain.FormatPropositionID(2000, i+1), WeightsVersion: "v"})
	}
	assert.Equal(t, DefaultCacheSize, c.Len())
}
