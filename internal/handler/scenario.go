package handler

import (
	"net/http"

	"github.com/osse101/PropForecast_Go/internal/scenario"
)

// ScenarioHandlers serves what-if simulations
type ScenarioHandlers struct {
	service scenario.Service
}

// NewScenarioHandlers creates a new scenario handlers instance
func NewScenarioHandlers(service scenario.Service) *ScenarioHandlers {
	return &ScenarioHandlers{service: service}
}

// HandleSimulate re-runs a proposition's prediction under overridden parameters
// @Summary Simulate a what-if scenario
// @Description Applies an optional preset then the request parameters and compares the adjusted prediction with the baseline
// @Tags scenario
// @Accept json
// @Produce json
// @Param id path string true "Proposition ID (<year>-<number>)"
// @Param request body scenario.Request true "Scenario definition"
// @Success 201 {object} Envelope{data=domain.ScenarioResults}
// @Failure 400 {object} Envelope
// @Failure 404 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /api/v1/propositions/{id}/scenarios [post]
func (h *ScenarioHandlers) HandleSimulate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := propositionIDParam(w, r)
		if !ok {
			return
		}

		var req scenario.Request
		if err := DecodeAndValidateRequest(r, w, &req, OpSimulateScenario); err != nil {
			return
		}

		results, err := h.service.Simulate(r.Context(), id, req)
		if err != nil {
			respondServiceError(w, r, OpSimulateScenario, err)
			return
		}
		respondData(w, r, http.StatusCreated, results)
	}
}

// HandleListPresets lists the registered scenario presets
// @Summary List scenario presets
// @Tags scenario
// @Produce json
// @Success 200 {object} Envelope{data=[]domain.ScenarioPreset}
// @Router /api/v1/scenarios/presets [get]
func (h *ScenarioHandlers) HandleListPresets() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondList(w, r, h.service.Presets())
	}
}
