package prediction

import (
	"fmt"
	"math"

	"github.com/osse101/PropForecast_Go/internal/domain"
	"github.com/osse101/PropForecast_Go/internal/validation"
)

// Weights is a named, versioned set of factor weights.
// Weights need not sum to 1; the model renormalizes over the factors present.
type Weights struct {
	Version      string  `json:"version"`
	Finance      float64 `json:"finance"`
	Demographics float64 `json:"demographics"`
	Wording      float64 `json:"wording"`
	Timing       float64 `json:"timing"`
	Opposition   float64 `json:"opposition"`
	Historical   float64 `json:"historical_similarity"`
}

// DefaultWeights returns the canonical weight set
func DefaultWeights() Weights {
	return Weights{
		Version:      DefaultWeightsVersion,
		Finance:      0.25,
		Demographics: 0.20,
		Wording:      0.15,
		Timing:       0.10,
		Opposition:   0.10,
		Historical:   0.20,
	}
}

// For returns the weight of the named factor, 0 for unknown names
func (w Weights) For(name string) float64 {
	switch name {
	case domain.FactorFinance:
		return w.Finance
	case domain.FactorDemographics:
		return w.Demographics
	case domain.FactorWording:
		return w.Wording
	case domain.FactorTiming:
		return w.Timing
	case domain.FactorOpposition:
		return w.Opposition
	case domain.FactorHistorical:
		return w.Historical
	default:
		return 0
	}
}

func (w Weights) all() []float64 {
	return []float64{w.Finance, w.Demographics, w.Wording, w.Timing, w.Opposition, w.Historical}
}

// Validate rejects unversioned, negative, non-finite or all-zero weight sets
func (w Weights) Validate() error {
	if w.Version == "" {
		return fmt.Errorf("%w: weights version is required", domain.ErrInvalidInput)
	}
	var total float64
	for _, v := range w.all() {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: weight %v in version %s", domain.ErrInvalidInput, v, w.Version)
		}
		total += v
	}
	if total == 0 {
		return fmt.Errorf("%w: weights version %s are all zero", domain.ErrInvalidInput, w.Version)
	}
	return nil
}

// LoadWeights reads a weights file validated against schemaPath.
// An empty path yields DefaultWeights.
func LoadWeights(path, schemaPath string, schemas validation.SchemaValidator) (Weights, error) {
	if path == "" {
		return DefaultWeights(), nil
	}

	var w Weights
	if err := schemas.Decode(path, schemaPath, &w); err != nil {
		return Weights{}, fmt.Errorf("failed to load weights: %w", err)
	}
	if err := w.Validate(); err != nil {
		return Weights{}, err
	}
	return w, nil
}
