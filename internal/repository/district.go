package repository

import (
	"context"

	"github.com/osse101/PropForecast_Go/internal/domain"
)

// District defines storage for districts and statewide electorate profiles
type District interface {
	// ListDistricts returns districts ordered by ID; a nil filter type returns all
	ListDistricts(ctx context.Context, filter DistrictFilter) ([]domain.District, error)

	// GetDistrict returns domain.ErrDistrictNotFound when the ID is unknown
	GetDistrict(ctx context.Context, id string) (*domain.District, error)

	SaveDistrict(ctx context.Context, d *domain.District) error

	// GetElectorateProfile returns the statewide demographics for an election year,
	// or domain.ErrNoData when none has been recorded
	GetElectorateProfile(ctx context.Context, year int) (*domain.Demographics, error)

	SaveElectorateProfile(ctx context.Context, year int, d *domain.Demographics) error
}

// DistrictFilter narrows ListDistricts
type DistrictFilter struct {
	Type *domain.DistrictType
}
