package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/PropForecast_Go/internal/domain"
	"github.com/osse101/PropForecast_Go/internal/repository"
)

// Electorate profiles outside this range are rejected on save
const (
	MinElectorateYear = 1900
	MaxElectorateYear = 2200
)

// DistrictRepository implements repository.District for PostgreSQL
type DistrictRepository struct {
	db *pgxpool.Pool
}

var _ repository.District = (*DistrictRepository)(nil)

// NewDistrictRepository creates a new DistrictRepository
func NewDistrictRepository(db *pgxpool.Pool) *DistrictRepository {
	return &DistrictRepository{db: db}
}

const districtColumns = `id, name, type, counties, population, registered_voters, demographics`

func scanDistrict(row pgx.Row) (domain.District, error) {
	var d domain.District
	err := row.Scan(&d.ID, &d.Name, &d.Type, &d.Counties, &d.Population, &d.RegisteredVoters, &d.Demographics)
	return d, err
}

// ListDistricts returns districts ordered by ID, optionally restricted to one type
func (r *DistrictRepository) ListDistricts(ctx context.Context, filter repository.DistrictFilter) ([]domain.District, error) {
	var districtType *string
	if filter.Type != nil {
		t := string(*filter.Type)
		districtType = &t
	}

	rows, err := r.db.Query(ctx, `
		SELECT `+districtColumns+` FROM districts
		WHERE $1::text IS NULL OR type = $1
		ORDER BY id`, districtType)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListDistricts, err)
	}
	districts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.District, error) {
		return scanDistrict(row)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListDistricts, err)
	}
	return districts, nil
}

// GetDistrict returns a single district by ID
func (r *DistrictRepository) GetDistrict(ctx context.Context, id string) (*domain.District, error) {
	d, err := scanDistrict(r.db.QueryRow(ctx, `SELECT `+districtColumns+` FROM districts WHERE id = $1`, id))
	if err != nil {
		return nil, translateError(err, ErrMsgFailedToGetDistrict, domain.ErrDistrictNotFound)
	}
	return &d, nil
}

// SaveDistrict inserts or replaces a district
func (r *DistrictRepository) SaveDistrict(ctx context.Context, d *domain.District) error {
	if d.ID == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgDistrictIDRequired)
	}
	counties := d.Counties
	if counties == nil {
		counties = []string{}
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO districts (id, name, type, counties, population, registered_voters, demographics)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			type = EXCLUDED.type,
			counties = EXCLUDED.counties,
			population = EXCLUDED.population,
			registered_voters = EXCLUDED.registered_voters,
			demographics = EXCLUDED.demographics
	`, d.ID, d.Name, string(d.Type), counties, d.Population, d.RegisteredVoters, d.Demographics)
	if err != nil {
		return translateError(err, ErrMsgFailedToSaveDistrict, domain.ErrDistrictNotFound)
	}
	return nil
}

// GetElectorateProfile returns the statewide demographics for an election year, or domain.ErrNoData
func (r *DistrictRepository) GetElectorateProfile(ctx context.Context, year int) (*domain.Demographics, error) {
	var d domain.Demographics
	err := r.db.QueryRow(ctx, `SELECT demographics FROM electorate_profiles WHERE year = $1`, year).Scan(&d)
	if err != nil {
		return nil, translateError(err, ErrMsgFailedToGetElectorate, domain.ErrNoData)
	}
	return &d, nil
}

// SaveElectorateProfile inserts or replaces the statewide demographics for a year
func (r *DistrictRepository) SaveElectorateProfile(ctx context.Context, year int, d *domain.Demographics) error {
	if year < MinElectorateYear || year > MaxElectorateYear {
		return fmt.Errorf("%w: %s: %d", domain.ErrInvalidInput, ErrMsgElectorateYearOutOfRange, year)
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO electorate_profiles (year, demographics) VALUES ($1, $2)
		ON CONFLICT (year) DO UPDATE SET demographics = EXCLUDED.demographics
	`, year, d)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveElectorate, err)
	}
	return nil
}
