package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/PropForecast_Go/internal/district"
	"github.com/osse101/PropForecast_Go/internal/domain"
)

// ImpactHandlers serves district-level impact projections
type ImpactHandlers struct {
	service district.Service
}

// NewImpactHandlers creates a new impact handlers instance
func NewImpactHandlers(service district.Service) *ImpactHandlers {
	return &ImpactHandlers{service: service}
}

// HandleGetImpact projects a proposition's effect on every district
// @Summary Project district partisan impact
// @Tags impact
// @Produce json
// @Param id path string true "Proposition ID (<year>-<number>)"
// @Param district_type query string false "Restrict to one district type" Enums(congressional, state_senate, state_assembly, county, city)
// @Success 200 {object} Envelope{data=domain.PropositionImpact}
// @Failure 400 {object} Envelope
// @Failure 404 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /api/v1/propositions/{id}/impact [get]
func (h *ImpactHandlers) HandleGetImpact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := propositionIDParam(w, r)
		if !ok {
			return
		}
		filter, ok := districtFilterParam(w, r)
		if !ok {
			return
		}

		impact, err := h.service.AnalyzePropositionImpact(r.Context(), id, filter)
		if err != nil {
			respondServiceError(w, r, OpAnalyzeImpact, err)
			return
		}
		respondData(w, r, http.StatusOK, impact)
	}
}

// HandleGetRegionalImpact returns only the per-region averages
// @Summary Project regional partisan impact
// @Tags impact
// @Produce json
// @Param id path string true "Proposition ID (<year>-<number>)"
// @Param district_type query string false "Restrict to one district type" Enums(congressional, state_senate, state_assembly, county, city)
// @Param region query string false "Return a single region (case-insensitive)"
// @Success 200 {object} Envelope{data=[]domain.RegionalImpact}
// @Failure 400 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /api/v1/propositions/{id}/impact/regions [get]
func (h *ImpactHandlers) HandleGetRegionalImpact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := propositionIDParam(w, r)
		if !ok {
			return
		}
		filter, ok := districtFilterParam(w, r)
		if !ok {
			return
		}
		region := GetOptionalQueryParam(r, "region", "")
		if region != "" {
			if region, ok = district.CanonicalRegion(region); !ok {
				respondError(w, r, http.StatusBadRequest, CodeInvalidInput, fmt.Sprintf(ErrMsgInvalidQueryParam, "region"))
				return
			}
		}

		impact, err := h.service.AnalyzePropositionImpact(r.Context(), id, filter)
		if err != nil {
			respondServiceError(w, r, OpRegionalImpact, err)
			return
		}
		if region == "" {
			respondList(w, r, impact.Regions)
			return
		}
		regions := make([]domain.RegionalImpact, 0, 1)
		for _, ri := range impact.Regions {
			if ri.Region == region {
				regions = append(regions, ri)
			}
		}
		respondList(w, r, regions)
	}
}

// HandleGetDistrictImpact projects a proposition's effect on one district
// @Summary Project a single district's partisan impact
// @Tags impact
// @Produce json
// @Param id path string true "Proposition ID (<year>-<number>)"
// @Param districtID path string true "District ID"
// @Success 200 {object} Envelope{data=domain.DistrictImpact}
// @Failure 400 {object} Envelope
// @Failure 404 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /api/v1/propositions/{id}/impact/districts/{districtID} [get]
func (h *ImpactHandlers) HandleGetDistrictImpact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := propositionIDParam(w, r)
		if !ok {
			return
		}

		impact, err := h.service.AnalyzeDistrictImpact(r.Context(), id, chi.URLParam(r, "districtID"))
		if err != nil {
			respondServiceError(w, r, OpDistrictImpact, err)
			return
		}
		respondData(w, r, http.StatusOK, impact)
	}
}
