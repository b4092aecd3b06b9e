package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/MikeSquared-Agency/Ranker/internal/hermes"
	"github.com/MikeSquared-Agency/Ranker/internal/metrics"
	"github.com/MikeSquared-Agency/Ranker/internal/scoring"
	"github.com/MikeSquared-Agency/Ranker/internal/store"
)

type RankHandler struct {
	store         store.Store
	hermes        hermes.Client
	weights       scoring.WeightSet
	paretoEnabled bool
	logger        *slog.Logger
}

func NewRankHandler(s store.Store, h hermes.Client, weights scoring.WeightSet, paretoEnabled bool, logger *slog.Logger) *RankHandler {
	return &RankHandler{store: s, hermes: h, weights: weights, paretoEnabled: paretoEnabled, logger: logger}
}

// RankRequest is a complete snapshot of the form input. Criteria may be
// omitted to use the configured weights; a criterion without a direction
// takes the catalog direction.
type RankRequest struct {
	Criteria     []scoring.Criterion   `json:"criteria,omitempty"`
	Alternatives []scoring.Alternative `json:"alternatives"`
}

func (h *RankHandler) criteria(in []scoring.Criterion) []scoring.Criterion {
	if len(in) == 0 {
		return h.weights.Criteria()
	}
	out := make([]scoring.Criterion, len(in))
	for i, c := range in {
		if c.Direction == "" {
			c.Direction = c.ID.DefaultDirection()
		}
		out[i] = c
	}
	return out
}

// Rank runs SAW over the request and records the calculation.
// POST /api/v1/rank
func (h *RankHandler) Rank(w http.ResponseWriter, r *http.Request) {
	var req RankRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	criteria := h.criteria(req.Criteria)

	start := time.Now()
	ev, err := scoring.Evaluate(criteria, req.Alternatives)
	if err != nil {
		kind := scoring.ErrorKind(err)
		metrics.RecordRejection(kind, time.Since(start))
		h.logger.Info("calculation rejected", "kind", kind, "error", err, "alternatives", len(req.Alternatives))
		h.publish(hermes.SubjectCalculationRejected, hermes.CalculationRejectedEvent{
			Kind:         kind,
			Error:        err.Error(),
			Alternatives: len(req.Alternatives),
		})
		writeEngineError(w, err)
		return
	}
	metrics.RecordSuccess(len(ev.Results), time.Since(start))

	calc := &store.Calculation{
		Criteria:   criteria,
		Evaluation: ev,
		Summary:    scoring.Summarize(ev.Results),
	}
	if h.paretoEnabled {
		calc.Frontier = scoring.FrontierIDs(scoring.ComputeFrontier(ev.Normalized))
	}

	if err := h.store.SaveCalculation(r.Context(), calc); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	h.logger.Info("calculation completed",
		"calculation_id", calc.ID,
		"alternatives", calc.Summary.Count,
		"best", calc.Summary.BestID,
		"best_score", calc.Summary.BestScore,
	)
	h.publish(hermes.SubjectCalculationCompleted(calc.ID.String()), hermes.CalculationCompletedEvent{
		CalculationID: calc.ID.String(),
		BestID:        calc.Summary.BestID,
		BestName:      calc.Summary.BestName,
		BestScore:     calc.Summary.BestScore,
		Alternatives:  calc.Summary.Count,
		Frontier:      calc.Frontier,
		CompletedAt:   calc.CreatedAt,
	})

	writeJSON(w, http.StatusCreated, calc)
}

type ReadinessResponse struct {
	scoring.Readiness
	Ready bool `json:"ready"`
}

// Readiness reports how close a draft input is to being rankable.
// POST /api/v1/readiness
func (h *RankHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	var req RankRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	rd := scoring.CheckReadiness(h.criteria(req.Criteria), req.Alternatives)
	writeJSON(w, http.StatusOK, ReadinessResponse{Readiness: rd, Ready: rd.Ready()})
}

type NormalizeRequest struct {
	Criteria []scoring.Criterion `json:"criteria"`
}

type NormalizeResponse struct {
	Criteria    []scoring.Criterion `json:"criteria"`
	PreviousSum float64             `json:"previous_sum"`
	Sum         float64             `json:"sum"`
}

// NormalizeWeights rescales the submitted weights to sum to 1.0.
// POST /api/v1/weights/normalize
func (h *RankHandler) NormalizeWeights(w http.ResponseWriter, r *http.Request) {
	var req NormalizeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	criteria := h.criteria(req.Criteria)
	normalized, err := scoring.NormalizeWeights(criteria)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	resp := NormalizeResponse{
		Criteria:    normalized,
		PreviousSum: scoring.WeightSum(criteria),
		Sum:         scoring.WeightSum(normalized),
	}
	weights := make(map[string]float64, len(normalized))
	for _, c := range normalized {
		weights[string(c.ID)] = c.Weight
	}
	h.publish(hermes.SubjectWeightsNormalized, hermes.WeightsNormalizedEvent{
		PreviousSum: resp.PreviousSum,
		Weights:     weights,
	})

	writeJSON(w, http.StatusOK, resp)
}

func (h *RankHandler) publish(subject string, data interface{}) {
	if h.hermes == nil {
		return
	}
	if err := h.hermes.Publish(subject, data); err != nil {
		h.logger.Warn("failed to publish event", "subject", subject, "error", err)
	}
}
