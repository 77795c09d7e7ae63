package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/SandiaExe/LogicaDifusa/internal/store"
)

type ExplainHandler struct {
	store store.Store
}

func NewExplainHandler(s store.Store) *ExplainHandler {
	return &ExplainHandler{store: s}
}

// Explain returns the rule firing breakdown for a stored projection.
// GET /api/v1/projections/{id}/explain
func (h *ExplainHandler) Explain(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid projection id"})
		return
	}

	p, err := h.store.GetProjection(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if p == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "projection not found"})
		return
	}

	resp := map[string]interface{}{
		"projection_id": p.ID,
		"inputs": map[string]float64{
			"attractiveness": p.Attractiveness,
			"availability":   p.Availability,
		},
		"undefined": p.Undefined,
	}
	if !p.Undefined {
		resp["success_percent"] = p.SuccessPercent
		resp["band"] = p.Band
		resp["message"] = p.Message
	}
	if p.RuleStrengths != nil {
		resp["rule_strengths"] = p.RuleStrengths
	}

	writeJSON(w, http.StatusOK, resp)
}
