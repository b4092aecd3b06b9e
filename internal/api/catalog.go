package api

import (
	"net/http"

	"github.com/MikeSquared-Agency/Ranker/internal/config"
	"github.com/MikeSquared-Agency/Ranker/internal/scoring"
)

type CatalogHandler struct {
	weights scoring.WeightSet
	venues  []config.VenueConfig
}

func NewCatalogHandler(weights scoring.WeightSet, venues []config.VenueConfig) *CatalogHandler {
	return &CatalogHandler{weights: weights, venues: venues}
}

type CriterionView struct {
	scoring.CriterionInfo
	DefaultWeight float64 `json:"default_weight"`
}

// Criteria lists the criterion catalog with the configured weights.
// GET /api/v1/criteria
func (h *CatalogHandler) Criteria(w http.ResponseWriter, r *http.Request) {
	weights := make(map[scoring.CriterionID]float64)
	for _, c := range h.weights.Criteria() {
		weights[c.ID] = c.Weight
	}
	catalog := scoring.Catalog()
	out := make([]CriterionView, len(catalog))
	for i, info := range catalog {
		out[i] = CriterionView{CriterionInfo: info, DefaultWeight: weights[info.ID]}
	}
	writeJSON(w, http.StatusOK, out)
}

// Venues returns blank alternatives for the configured venues, ready to be
// filled in and posted to /rank.
// GET /api/v1/venues
func (h *CatalogHandler) Venues(w http.ResponseWriter, r *http.Request) {
	out := make([]scoring.Alternative, len(h.venues))
	for i, v := range h.venues {
		out[i] = scoring.NewAlternative(v.ID, v.Name, scoring.ValueSet{})
	}
	writeJSON(w, http.StatusOK, out)
}
