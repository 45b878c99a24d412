package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PropForecast_Go/internal/domain"
	"github.com/osse101/PropForecast_Go/internal/validation"
)

const (
	presetsPath   = "../../configs/presets.json"
	presetsSchema = "configs/schemas/presets.schema.json"
)

func contested() domain.ScenarioPreset {
	return domain.ScenarioPreset{
		Name:        "contested",
		Description: "Both campaigns spend heavily",
		Patch: domain.ScenarioPatch{
			SupportFundingMultiplier:    ptr(1.5),
			OppositionFundingMultiplier: ptr(1.5),
			OppositionIntensity:         ptr(domain.OppositionIntense),
		},
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(contested()))
	require.NoError(t, r.Register(domain.ScenarioPreset{Name: "high_turnout", Patch: domain.ScenarioPatch{TurnoutMultiplier: ptr(1.3)}}))

	p, ok := r.Get("contested")
	require.True(t, ok)
	assert.Equal(t, "Both campaigns spend heavily", p.Description)

	_, ok = r.Get("landslide")
	assert.False(t, ok)

	list := r.List()
	require.Len(t, list, 2)
	assert.Equal(t, "contested", list[0].Name)
	assert.Equal(t, "high_turnout", list[1].Name)
}

func TestRegistry_RegisterRejects(t *testing.T) {
	r := NewRegistry()

	err := r.Register(domain.ScenarioPreset{Name: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = r.Register(domain.ScenarioPreset{Name: "absurd", Patch: domain.ScenarioPatch{SupportFundingMultiplier: ptr(12.0)}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	var perr *ParameterError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "preset", perr.Parameter)
	assert.Equal(t, []string{"SupportFundingMultiplier"}, perr.Levers())
	assert.Empty(t, r.List())
}

func TestRegistry_Apply(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(contested()))

	t.Run("no preset", func(t *testing.T) {
		params, err := r.Apply("", domain.ScenarioPatch{})
		require.NoError(t, err)
		assert.Equal(t, domain.IdentityParameters(), params)
	})

	t.Run("preset then overrides", func(t *testing.T) {
		params, err := r.Apply("contested", domain.ScenarioPatch{SupportFundingMultiplier: ptr(2.0)})
		require.NoError(t, err)
		assert.Equal(t, 2.0, params.Funding.SupportMultiplier)
		assert.Equal(t, 1.5, params.Funding.OppositionMultiplier)
		require.NotNil(t, params.Opposition)
		assert.Equal(t, domain.OppositionIntense, params.Opposition.Intensity)
		assert.Equal(t, 1.0, params.Turnout.Overall)
	})

	t.Run("unknown preset", func(t *testing.T) {
		_, err := r.Apply("landslide", domain.ScenarioPatch{})
		assert.ErrorIs(t, err, domain.ErrPresetNotFound)
	})
}

func TestRegistry_Load(t *testing.T) {
	r := NewRegistry()
	n, err := r.Load(presetsPath, presetsSchema, validation.NewSchemaValidator())
	require.NoError(t, err)
	assert.Equal(t, 9, n)

	p, ok := r.Get("high_turnout")
	require.True(t, ok)
	require.NotNil(t, p.Patch.TurnoutMultiplier)
	assert.Equal(t, 1.3, *p.Patch.TurnoutMultiplier)

	params, err := r.Apply("unopposed", domain.ScenarioPatch{})
	require.NoError(t, err)
	assert.Equal(t, 0.0, params.Funding.OppositionMultiplier)
	require.NotNil(t, params.Opposition)
	assert.Equal(t, domain.OppositionNone, params.Opposition.Intensity)
}

func TestRegistry_LoadMissingFile(t *testing.T) {
	_, err := NewRegistry().Load("does-not-exist.json", presetsSchema, validation.NewSchemaValidator())
	assert.Error(t, err)
}
