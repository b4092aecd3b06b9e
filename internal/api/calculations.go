package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/Ranker/internal/store"
)

type CalculationsHandler struct {
	store store.Store
}

func NewCalculationsHandler(s store.Store) *CalculationsHandler {
	return &CalculationsHandler{store: s}
}

// List returns recent calculations, newest first.
// GET /api/v1/calculations?limit=N
func (h *CalculationsHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid limit"})
			return
		}
		limit = n
	}

	calcs, err := h.store.ListCalculations(r.Context(), limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if calcs == nil {
		calcs = []*store.Calculation{}
	}
	writeJSON(w, http.StatusOK, calcs)
}

// Get returns one calculation.
// GET /api/v1/calculations/{id}
func (h *CalculationsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid calculation id"})
		return
	}

	calc, err := h.store.GetCalculation(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if calc == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "calculation not found"})
		return
	}
	writeJSON(w, http.StatusOK, calc)
}
