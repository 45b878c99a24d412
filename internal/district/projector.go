package district

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/PropForecast_Go/internal/domain"
)

// Projector fans district projections out over a bounded set of workers
type Projector struct {
	workers int
}

// NewProjector creates a projector running at most workers projections at once
func NewProjector(workers int) *Projector {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Projector{workers: workers}
}

// Analyze projects every district and aggregates the results. District order
// in the output matches the input regardless of completion order.
func (p *Projector) Analyze(ctx context.Context, prop domain.Proposition, districts []domain.District) (*domain.PropositionImpact, error) {
	impacts := make([]domain.DistrictImpact, len(districts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i, d := range districts {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			impacts[i] = ProjectDistrict(d)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("district projection for %s interrupted: %w", prop.ID, err)
	}

	return &domain.PropositionImpact{
		PropositionID: prop.ID,
		Statewide:     Statewide(impacts),
		Districts:     impacts,
		Summary:       Summarize(prop.Number, impacts),
		Regions:       AggregateByRegion(impacts),
	}, nil
}
