package similarity

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PropForecast_Go/internal/domain"
	"github.com/osse101/PropForecast_Go/internal/testing/leaktest"
)

// slowSource serves one proposition per year and tracks peak concurrency
type slowSource struct {
	delay    time.Duration
	failYear map[int]bool

	inFlight atomic.Int32
	peak     atomic.Int32

	mu    sync.Mutex
	calls []int
}

func (s *slowSource) ListPropositionsByYear(ctx context.Context, year int) ([]domain.Proposition, error) {
	n := s.inFlight.Add(1)
	defer s.inFlight.Add(-1)
	for {
		p := s.peak.Load()
		if n <= p || s.peak.CompareAndSwap(p, n) {
			break
		}
	}

	s.mu.Lock()
	s.calls = append(s.calls, year)
	s.mu.Unlock()

	time.Sleep(s.delay)
	if s.failYear[year] {
		return nil, errors.New("upstream unavailable")
	}
	return []domain.Proposition{{ID: domain.FormatPropositionID(year, 1), Year: year, Number: 1}}, nil
}

func TestPoolFetcher_BoundedAndOrdered(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)
	defer checker.Check(2)

	source := &slowSource{delay: 10 * time.Millisecond, failYear: map[int]bool{2015: true}}
	fetcher := NewPoolFetcher(source, 8)

	years := LookbackYears(2024, 11)
	pool := fetcher.Fetch(context.Background(), years)

	assert.LessOrEqual(t, source.peak.Load(), int32(MaxConcurrentFetches))
	assert.Len(t, source.calls, len(years))

	require.Len(t, pool, len(years)-1)
	for i := 1; i < len(pool); i++ {
		assert.Less(t, pool[i-1].Year, pool[i].Year, "pool must be in year order")
	}
	for _, p := range pool {
		assert.NotEqual(t, 2015, p.Year)
	}
}

func TestPoolFetcher_AllYearsFail(t *testing.T) {
	source := &slowSource{failYear: map[int]bool{2023: true, 2024: true}}
	pool := NewPoolFetcher(source, 2).Fetch(context.Background(), []int{2023, 2024})
	assert.Empty(t, pool)
}

func TestPoolFetcher_CancelledContext(t *testing.T) {
	source := &slowSource{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pool := NewPoolFetcher(source, 4).Fetch(ctx, []int{2020, 2021, 2022})
	assert.Empty(t, pool)
	assert.Empty(t, source.calls)
}

func TestNewPoolFetcher_Concurrency(t *testing.T) {
	assert.Equal(t, MaxConcurrentFetches, NewPoolFetcher(nil, 0).concurrency)
	assert.Equal(t, MaxConcurrentFetches, NewPoolFetcher(nil, 12).concurrency)
	assert.Equal(t, 2, NewPoolFetcher(nil, 2).concurrency)
}

func TestLookbackYears(t *testing.T) {
	assert.Equal(t, []int{2022, 2023, 2024}, LookbackYears(2024, 2))
	assert.Equal(t, []int{2024}, LookbackYears(2024, 0))
	assert.Equal(t, []int{2024}, LookbackYears(2024, -3))
}
