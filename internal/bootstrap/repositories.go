package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/PropForecast_Go/internal/database/postgres"
	"github.com/osse101/PropForecast_Go/internal/repository"
)

// Repositories holds all repository implementations used by the application.
type Repositories struct {
	Propositions repository.Proposition
	Districts    repository.District
}

// InitializeRepositories creates the Postgres-backed repositories
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Propositions: postgres.NewPropositionRepository(dbPool),
		Districts:    postgres.NewDistrictRepository(dbPool),
	}
}
