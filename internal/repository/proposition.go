package repository

import (
	"context"

	"github.com/osse101/PropForecast_Go/internal/domain"
)

// Proposition defines storage for ballot propositions and their campaign data
type Proposition interface {
	// GetProposition returns domain.ErrPropositionNotFound when the ID is unknown
	GetProposition(ctx context.Context, id string) (*domain.Proposition, error)

	// ListPropositionsByYear returns every proposition on a year's ballots, ordered by number
	ListPropositionsByYear(ctx context.Context, year int) ([]domain.Proposition, error)

	SaveProposition(ctx context.Context, p *domain.Proposition) error

	CampaignData
}

// CampaignData defines storage for the optional per-proposition inputs.
// Missing records return domain.ErrNoData.
type CampaignData interface {
	GetFinance(ctx context.Context, propositionID string) (*domain.Finance, error)
	GetBallotAnalysis(ctx context.Context, propositionID string) (*domain.BallotAnalysis, error)
	GetEndorsements(ctx context.Context, propositionID string) ([]domain.Endorsement, error)

	SaveFinance(ctx context.Context, f *domain.Finance) error
	SaveBallotAnalysis(ctx context.Context, propositionID string, b *domain.BallotAnalysis) error

	// ReplaceEndorsements swaps the full endorsement list atomically
	ReplaceEndorsements(ctx context.Context, propositionID string, endorsements []domain.Endorsement) error
}
