package scenario

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/osse101/PropForecast_Go/internal/domain"
	"github.com/osse101/PropForecast_Go/internal/validation"
)

// Registry manages named scenario presets
type Registry struct {
	mu      sync.RWMutex
	presets map[string]domain.ScenarioPreset
}

// NewRegistry creates an empty preset registry
func NewRegistry() *Registry {
	return &Registry{
		presets: make(map[string]domain.ScenarioPreset),
	}
}

// Register adds a preset, replacing any preset with the same name
func (r *Registry) Register(preset domain.ScenarioPreset) error {
	if strings.TrimSpace(preset.Name) == "" {
		return Reject("preset", "name is required")
	}
	if err := validate.Struct(preset.Patch); err != nil {
		return RejectWithCause("preset", fmt.Sprintf("preset %q has invalid parameters", preset.Name), err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.presets[preset.Name] = preset
	return nil
}

// Get retrieves a preset by name
func (r *Registry) Get(name string) (domain.ScenarioPreset, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.presets[name]
	return p, ok
}

// List returns every preset ordered by name
func (r *Registry) List() []domain.ScenarioPreset {
	r.mu.RLock()
	defer r.mu.RUnlock()

	presets := make([]domain.ScenarioPreset, 0, len(r.presets))
	for _, p := range r.presets {
		presets = append(presets, p)
	}
	slices.SortFunc(presets, func(a, b domain.ScenarioPreset) int {
		return strings.Compare(a.Name, b.Name)
	})
	return presets
}

// Apply resolves a parameter bundle: identity, then the named preset, then
// the caller's overrides. An empty preset name skips the preset layer.
func (r *Registry) Apply(presetName string, overrides domain.ScenarioPatch) (domain.ScenarioParameters, error) {
	params := domain.IdentityParameters()
	if presetName != "" {
		preset, ok := r.Get(presetName)
		if !ok {
			return domain.ScenarioParameters{}, fmt.Errorf("%w: %s", domain.ErrPresetNotFound, presetName)
		}
		params = params.Apply(preset.Patch)
	}
	return params.Apply(overrides), nil
}

// Load reads presets from a JSON file validated against schemaPath and
// registers them. It returns the number of presets registered.
func (r *Registry) Load(path, schemaPath string, schemas validation.SchemaValidator) (int, error) {
	var presets []domain.ScenarioPreset
	if err := schemas.Decode(path, schemaPath, &presets); err != nil {
		return 0, fmt.Errorf("failed to load presets from %s: %w", path, err)
	}
	for _, p := range presets {
		if err := r.Register(p); err != nil {
			return 0, err
		}
	}
	return len(presets), nil
}
