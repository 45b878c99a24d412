package prediction

import (
	"slices"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/PropForecast_Go/internal/domain"
)

// cachedPrediction wraps a prediction with version metadata for cache invalidation
type cachedPrediction struct {
	Version    string
	Prediction domain.Prediction
	CachedAt   time.Time
}

// predictionCache is an in-memory LRU of generated predictions keyed by
// proposition and weights version, so a weight change never serves stale output
type predictionCache struct {
	lru *expirable.LRU[string, *cachedPrediction]
}

func newPredictionCache(size int, ttl time.Duration) *predictionCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &predictionCache{
		lru: expirable.NewLRU[string, *cachedPrediction](size, nil, ttl),
	}
}

func cacheKey(propositionID, weightsVersion string) string {
	return propositionID + "@" + weightsVersion
}

// Get returns a copy of the cached prediction that shares no slices with the
// cache. Entries written under another schema version are dropped.
func (c *predictionCache) Get(propositionID, weightsVersion string) (*domain.Prediction, bool) {
	key := cacheKey(propositionID, weightsVersion)
	entry, found := c.lru.Get(key)
	if !found {
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(key)
		return nil, false
	}
	return clonePrediction(&entry.Prediction), true
}

func (c *predictionCache) Set(p *domain.Prediction) {
	c.lru.Add(cacheKey(p.PropositionID, p.WeightsVersion), &cachedPrediction{
		Version:    CacheSchemaVersion,
		Prediction: *clonePrediction(p),
		CachedAt:   time.Now(),
	})
}

func (c *predictionCache) Invalidate(propositionID, weightsVersion string) {
	c.lru.Remove(cacheKey(propositionID, weightsVersion))
}

func (c *predictionCache) Len() int {
	return c.lru.Len()
}

func clonePrediction(p *domain.Prediction) *domain.Prediction {
	c := *p
	c.Factors = slices.Clone(p.Factors)
	c.HistoricalComparisons = slices.Clone(p.HistoricalComparisons)
	return &c
}
