package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/PropForecast_Go/internal/domain"
)

// PropositionRepository is a mock implementation of repository.Proposition
type PropositionRepository struct {
	mock.Mock
}

func (m *PropositionRepository) GetProposition(ctx context.Context, id string) (*domain.Proposition, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Proposition), args.Error(1)
}

func (m *PropositionRepository) ListPropositionsByYear(ctx context.Context, year int) ([]domain.Proposition, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Proposition), args.Error(1)
}

func (m *PropositionRepository) SaveProposition(ctx context.Context, p *domain.Proposition) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *PropositionRepository) GetFinance(ctx context.Context, propositionID string) (*domain.Finance, error) {
	args := m.Called(ctx, propositionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Finance), args.Error(1)
}

func (m *PropositionRepository) GetBallotAnalysis(ctx context.Context, propositionID string) (*domain.BallotAnalysis, error) {
	args := m.Called(ctx, propositionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BallotAnalysis), args.Error(1)
}

func (m *PropositionRepository) GetEndorsements(ctx context.Context, propositionID string) ([]domain.Endorsement, error) {
	args := m.Called(ctx, propositionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Endorsement), args.Error(1)
}

func (m *PropositionRepository) SaveFinance(ctx context.Context, f *domain.Finance) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *PropositionRepository) SaveBallotAnalysis(ctx context.Context, propositionID string, b *domain.BallotAnalysis) error {
	args := m.Called(ctx, propositionID, b)
	return args.Error(0)
}

func (m *PropositionRepository) ReplaceEndorsements(ctx context.Context, propositionID string, endorsements []domain.Endorsement) error {
	args := m.Called(ctx, propositionID, endorsements)
	return args.Error(0)
}
