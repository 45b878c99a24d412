package handler

import (
	"net/http"

	"github.com/osse101/PropForecast_Go/internal/logger"
	"github.com/osse101/PropForecast_Go/internal/prediction"
	"github.com/osse101/PropForecast_Go/internal/similarity"
)

// PredictionHandlers serves predictions and historical comparisons
type PredictionHandlers struct {
	predictions prediction.Service
	similar     similarity.Service
}

// NewPredictionHandlers creates a new prediction handlers instance
func NewPredictionHandlers(predictions prediction.Service, similar similarity.Service) *PredictionHandlers {
	return &PredictionHandlers{
		predictions: predictions,
		similar:     similar,
	}
}

// HandleGetPrediction scores a proposition
// @Summary Predict a proposition outcome
// @Description Combines finance, demographic, wording, timing, opposition and historical factors into a passage probability
// @Tags prediction
// @Produce json
// @Param id path string true "Proposition ID (<year>-<number>)"
// @Param refresh query bool false "Discard any cached prediction and score again"
// @Success 200 {object} Envelope{data=domain.Prediction}
// @Failure 400 {object} Envelope
// @Failure 404 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /api/v1/propositions/{id}/prediction [get]
func (h *PredictionHandlers) HandleGetPrediction() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := propositionIDParam(w, r)
		if !ok {
			return
		}

		refresh, ok := queryBool(w, r, "refresh", false)
		if !ok {
			return
		}

		generate := h.predictions.GeneratePrediction
		if refresh {
			generate = h.predictions.RefreshPrediction
		}
		pred, err := generate(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, OpGetPrediction, err)
			return
		}

		logger.FromContext(r.Context()).Debug("Prediction served",
			logger.AttrKeyPropositionID, id,
			"probability", pred.Probability,
			"data_quality", pred.DataQuality)
		respondData(w, r, http.StatusOK, pred)
	}
}

// HandleGetSimilar ranks historical propositions against one
// @Summary Find similar historical propositions
// @Tags prediction
// @Produce json
// @Param id path string true "Proposition ID (<year>-<number>)"
// @Param limit query int false "Maximum matches (0-50)" default(5)
// @Param min_similarity query number false "Minimum similarity score (0-1)" default(0.2)
// @Success 200 {object} Envelope{data=[]domain.HistoricalComparison}
// @Failure 400 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /api/v1/propositions/{id}/similar [get]
func (h *PredictionHandlers) HandleGetSimilar() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := propositionIDParam(w, r)
		if !ok {
			return
		}

		opts := similarity.DefaultOptions()
		if opts.Limit, ok = queryInt(w, r, "limit", opts.Limit); !ok {
			return
		}
		if opts.MinSimilarity, ok = queryFloat(w, r, "min_similarity", opts.MinSimilarity); !ok {
			return
		}
		if err := GetValidator().ValidateStruct(opts); err != nil {
			respondJSON(w, http.StatusBadRequest, Envelope{
				Error: &APIError{
					Code:    CodeInvalidInput,
					Message: ErrMsgInvalidRequestSummary,
					Fields:  FormatValidationError(err),
				},
				Meta: metaFor(r),
			})
			return
		}

		matches, err := h.similar.FindSimilar(r.Context(), id, opts)
		if err != nil {
			respondServiceError(w, r, OpFindSimilar, err)
			return
		}
		respondList(w, r, matches)
	}
}
