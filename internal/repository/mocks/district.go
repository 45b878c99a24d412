package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/PropForecast_Go/internal/domain"
	"github.com/osse101/PropForecast_Go/internal/repository"
)

// DistrictRepository is a mock implementation of repository.District
type DistrictRepository struct {
	mock.Mock
}

func (m *DistrictRepository) ListDistricts(ctx context.Context, filter repository.DistrictFilter) ([]domain.District, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.District), args.Error(1)
}

func (m *DistrictRepository) GetDistrict(ctx context.Context, id string) (*domain.District, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.District), args.Error(1)
}

func (m *DistrictRepository) SaveDistrict(ctx context.Context, d *domain.District) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *DistrictRepository) GetElectorateProfile(ctx context.Context, year int) (*domain.Demographics, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Demographics), args.Error(1)
}

func (m *DistrictRepository) SaveElectorateProfile(ctx context.Context, year int, d *domain.Demographics) error {
	args := m.Called(ctx, year, d)
	return args.Error(0)
}
