package similarity

import (
	"context"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/PropForecast_Go/internal/domain"
	"github.com/osse101/PropForecast_Go/internal/logger"
	"github.com/osse101/PropForecast_Go/internal/metrics"
)

// HistorySource provides the propositions decided in a given year
type HistorySource interface {
	ListPropositionsByYear(ctx context.Context, year int) ([]domain.Proposition, error)
}

// PoolFetcher assembles a historical pool from several years at once.
// A year that fails to load contributes nothing rather than failing the pool.
type PoolFetcher struct {
	source      HistorySource
	concurrency int
}

// NewPoolFetcher creates a fetcher running at most concurrency fetches at a
// time, capped at MaxConcurrentFetches
func NewPoolFetcher(source HistorySource, concurrency int) *PoolFetcher {
	if concurrency <= 0 || concurrency > MaxConcurrentFetches {
		concurrency = MaxConcurrentFetches
	}
	return &PoolFetcher{source: source, concurrency: concurrency}
}

// Fetch loads every year and concatenates the results in year order
func (f *PoolFetcher) Fetch(ctx context.Context, years []int) []domain.Proposition {
	log := logger.FromContext(ctx)
	results := make([][]domain.Proposition, len(years))

	var g errgroup.Group
	g.SetLimit(f.concurrency)

	for i, year := range years {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				f.recordFailure(ctx, year, err)
				return nil
			}
			props, err := f.source.ListPropositionsByYear(ctx, year)
			if err != nil {
				f.recordFailure(ctx, year, err)
				return nil
			}
			results[i] = props
			return nil
		})
	}

	// workers never return errors; failures degrade to empty slices
	_ = g.Wait()

	var pool []domain.Proposition
	for _, props := range results {
		pool = append(pool, props...)
	}

	metrics.HistoryPoolSize.Set(float64(len(pool)))
	log.Debug(LogMsgPoolAssembled, "years", len(years), "propositions", len(pool))
	return pool
}

func (f *PoolFetcher) recordFailure(ctx context.Context, year int, err error) {
	metrics.HistoryFetchFailures.WithLabelValues(strconv.Itoa(year)).Inc()
	logger.FromContext(ctx).Warn(LogMsgHistoryFetchFailed, "year", year, "error", err)
}

// LookbackYears returns the years from year-lookback through year, ascending
func LookbackYears(year, lookback int) []int {
	if lookback < 0 {
		lookback = 0
	}
	years := make([]int, 0, lookback+1)
	for y := year - lookback; y <= year; y++ {
		years = append(years, y)
	}
	return years
}
