package bootstrap

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PropForecast_Go/internal/domain"
	"github.com/osse101/PropForecast_Go/internal/repository/mocks"
	"github.com/osse101/PropForecast_Go/internal/validation"
)

func TestLoadSeed_ShippedSample(t *testing.T) {
	data, err := LoadSeed("../../configs/seed/sample.json", validation.NewSchemaValidator())
	require.NoError(t, err)

	assert.Len(t, data.ElectorateProfiles, 1)
	assert.Len(t, data.Districts, 4)
	require.Len(t, data.Propositions, 3)

	current := data.Propositions[2]
	assert.Equal(t, 33, current.Proposition.Number)
	require.NotNil(t, current.Finance)
	assert.Equal(t, "48500000", current.Finance.TotalSupport.String())
	assert.Len(t, current.Endorsements, 3)
}

func TestApplySeed(t *testing.T) {
	props := new(mocks.PropositionRepository)
	districts := new(mocks.DistrictRepository)
	repos := &Repositories{Propositions: props, Districts: districts}

	data := &SeedData{
		ElectorateProfiles: []SeedElectorate{{Year: 2024}},
		Districts:          []domain.District{{ID: "CA-12", Type: domain.DistrictCongressional}},
		Propositions: []SeedProposition{
			{Proposition: domain.Proposition{Year: 2020, Number: 21}},
			{
				Proposition:    domain.Proposition{Year: 2024, Number: 33},
				Finance:        &domain.Finance{},
				BallotAnalysis: &domain.BallotAnalysis{Readability: 40},
				Endorsements:   []domain.Endorsement{{Name: "Party", Position: domain.PositionSupport}},
			},
		},
	}

	districts.On("SaveElectorateProfile", mock.Anything, 2024, mock.Anything).Return(nil)
	districts.On("SaveDistrict", mock.Anything, mock.Anything).Return(nil)
	props.On("SaveProposition", mock.Anything, mock.MatchedBy(func(p *domain.Proposition) bool { return p.ID == "2020-21" })).Return(nil)
	props.On("SaveProposition", mock.Anything, mock.MatchedBy(func(p *domain.Proposition) bool { return p.ID == "2024-33" })).Return(nil)
	props.On("SaveFinance", mock.Anything, mock.MatchedBy(func(f *domain.Finance) bool { return f.PropositionID == "2024-33" })).Return(nil)
	props.On("SaveBallotAnalysis", mock.Anything, "2024-33", mock.Anything).Return(nil)
	props.On("ReplaceEndorsements", mock.Anything, "2024-33", mock.Anything).Return(nil)

	res, err := ApplySeed(context.Background(), repos, data)

	require.NoError(t, err)
	assert.Equal(t, SeedResult{Propositions: 2, Districts: 1, ElectorateProfiles: 1}, res)
	props.AssertExpectations(t)
	districts.AssertExpectations(t)
}

func TestApplySeed_StopsOnError(t *testing.T) {
	props := new(mocks.PropositionRepository)
	districts := new(mocks.DistrictRepository)
	repos := &Repositories{Propositions: props, Districts: districts}

	data := &SeedData{
		Propositions: []SeedProposition{
			{Proposition: domain.Proposition{ID: "2024-1", Year: 2024, Number: 1}},
			{Proposition: domain.Proposition{ID: "2024-2", Year: 2024, Number: 2}},
		},
	}
	props.On("SaveProposition", mock.Anything, mock.Anything).Return(domain.ErrInvalidInput).Once()

	res, err := ApplySeed(context.Background(), repos, data)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Contains(t, err.Error(), "2024-1")
	assert.Equal(t, 0, res.Propositions)
	props.AssertNumberOfCalls(t, "SaveProposition", 1)
}
