package similarity

import (
	"context"
	"fmt"

	"github.com/osse101/PropForecast_Go/internal/domain"
	"github.com/osse101/PropForecast_Go/internal/logger"
	"github.com/osse101/PropForecast_Go/internal/repository"
)

// Service defines the interface for historical similarity lookups
type Service interface {
	// FindSimilar ranks past propositions against the one with the given ID
	FindSimilar(ctx context.Context, id string, opts Options) ([]domain.HistoricalComparison, error)

	// Compare ranks the historical pool against an already-loaded target
	Compare(ctx context.Context, target domain.Proposition, opts Options) []domain.HistoricalComparison
}

type service struct {
	repo     repository.Proposition
	fetcher  *PoolFetcher
	lookback int
}

// NewService creates a similarity service that searches lookback years of history
func NewService(repo repository.Proposition, fetchConcurrency, lookback int) Service {
	if lookback <= 0 {
		lookback = DefaultLookbackYears
	}
	return &service{
		repo:     repo,
		fetcher:  NewPoolFetcher(repo, fetchConcurrency),
		lookback: lookback,
	}
}

func (s *service) FindSimilar(ctx context.Context, id string, opts Options) ([]domain.HistoricalComparison, error) {
	if _, _, err := domain.ParsePropositionID(id); err != nil {
		return nil, err
	}

	target, err := s.repo.GetProposition(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load proposition %s: %w", id, err)
	}

	return s.Compare(ctx, *target, opts), nil
}

func (s *service) Compare(ctx context.Context, target domain.Proposition, opts Options) []domain.HistoricalComparison {
	pool := s.fetcher.Fetch(ctx, LookbackYears(target.Year, s.lookback))
	comparisons := FindSimilar(target, pool, opts)

	logger.FromContext(ctx).Debug(LogMsgSimilarFound,
		logger.AttrKeyPropositionID, target.ID,
		"pool_size", len(pool),
		"matches", len(comparisons))
	return comparisons
}
