package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/PropForecast_Go/internal/domain"
	"github.com/osse101/PropForecast_Go/internal/validation"
)

// SeedSchemaPath validates fixture files loaded by the devtool seed command
const SeedSchemaPath = "configs/schemas/seed.schema.json"

// SeedData is a fixture bundle of propositions, districts and electorate profiles
type SeedData struct {
	ElectorateProfiles []SeedElectorate  `json:"electorate_profiles"`
	Districts          []domain.District `json:"districts"`
	Propositions       []SeedProposition `json:"propositions"`
}

// SeedElectorate is the statewide profile for one election year
type SeedElectorate struct {
	Year         int                 `json:"year"`
	Demographics domain.Demographics `json:"demographics"`
}

// SeedProposition is a proposition with its optional campaign data
type SeedProposition struct {
	Proposition    domain.Proposition     `json:"proposition"`
	Finance        *domain.Finance        `json:"finance,omitempty"`
	BallotAnalysis *domain.BallotAnalysis `json:"ballot_analysis,omitempty"`
	Endorsements   []domain.Endorsement   `json:"endorsements,omitempty"`
}

// SeedResult counts the records written by ApplySeed
type SeedResult struct {
	Propositions       int
	Districts          int
	ElectorateProfiles int
}

// LoadSeed reads and schema-validates a fixture file
func LoadSeed(path string, schemas validation.SchemaValidator) (*SeedData, error) {
	var data SeedData
	if err := schemas.Decode(path, SeedSchemaPath, &data); err != nil {
		return nil, fmt.Errorf("failed to load seed data: %w", err)
	}
	return &data, nil
}

// ApplySeed upserts the fixture bundle through the repositories. It stops at
// the first failing record.
func ApplySeed(ctx context.Context, repos *Repositories, data *SeedData) (SeedResult, error) {
	var res SeedResult

	for _, e := range data.ElectorateProfiles {
		if err := repos.Districts.SaveElectorateProfile(ctx, e.Year, &e.Demographics); err != nil {
			return res, fmt.Errorf("electorate profile %d: %w", e.Year, err)
		}
		res.ElectorateProfiles++
	}

	for i := range data.Districts {
		d := &data.Districts[i]
		if err := repos.Districts.SaveDistrict(ctx, d); err != nil {
			return res, fmt.Errorf("district %s: %w", d.ID, err)
		}
		res.Districts++
	}

	for i := range data.Propositions {
		sp := &data.Propositions[i]
		if err := seedProposition(ctx, repos, sp); err != nil {
			return res, fmt.Errorf("proposition %s: %w", sp.Proposition.ID, err)
		}
		res.Propositions++
	}

	slog.Info("Seed data applied",
		"propositions", res.Propositions,
		"districts", res.Districts,
		"electorate_profiles", res.ElectorateProfiles)
	return res, nil
}

func seedProposition(ctx context.Context, repos *Repositories, sp *SeedProposition) error {
	p := &sp.Proposition
	if p.ID == "" {
		p.ID = domain.FormatPropositionID(p.Year, p.Number)
	}
	if err := repos.Propositions.SaveProposition(ctx, p); err != nil {
		return err
	}

	if sp.Finance != nil {
		sp.Finance.PropositionID = p.ID
		if err := repos.Propositions.SaveFinance(ctx, sp.Finance); err != nil {
			return err
		}
	}
	if sp.BallotAnalysis != nil {
		if err := repos.Propositions.SaveBallotAnalysis(ctx, p.ID, sp.BallotAnalysis); err != nil {
			return err
		}
	}
	if len(sp.Endorsements) > 0 {
		if err := repos.Propositions.ReplaceEndorsements(ctx, p.ID, sp.Endorsements); err != nil {
			return err
		}
	}
	return nil
}
