package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/SandiaExe/LogicaDifusa/internal/events"
	"github.com/SandiaExe/LogicaDifusa/internal/fuzzy"
	"github.com/SandiaExe/LogicaDifusa/internal/store"
	"github.com/SandiaExe/LogicaDifusa/internal/venture"
)

type ProjectionsHandler struct {
	store     store.Store
	events    events.Client
	projector *venture.Projector
	logger    *slog.Logger
}

func NewProjectionsHandler(s store.Store, ec events.Client, p *venture.Projector, logger *slog.Logger) *ProjectionsHandler {
	return &ProjectionsHandler{store: s, events: ec, projector: p, logger: logger}
}

type CreateProjectionRequest struct {
	Attractiveness *float64 `json:"attractiveness"`
	Availability   *float64 `json:"availability"`
	Investment     *float64 `json:"investment"`
}

// Create handles POST /api/v1/projections.
func (h *ProjectionsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProjectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.Attractiveness == nil || req.Availability == nil || req.Investment == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "attractiveness, availability and investment required"})
		return
	}

	rec := &store.Projection{
		ClientID:       r.Header.Get("X-Client-ID"),
		Attractiveness: *req.Attractiveness,
		Availability:   *req.Availability,
		Investment:     *req.Investment,
	}

	out, err := h.projector.Project(rec.Attractiveness, rec.Availability, rec.Investment)
	if errors.Is(err, fuzzy.ErrUndefinedDefuzzification) {
		rec.Undefined = true
		if err := h.store.SaveProjection(r.Context(), rec); err != nil {
			h.logger.Error("failed to persist undefined projection", "error", err)
		}
		projectionFailures.WithLabelValues("undefined_defuzzification").Inc()
		h.publish(events.SubjectProjectionUndefined(rec.ID.String()), events.ProjectionUndefinedEvent{
			ProjectionID:   rec.ID.String(),
			ClientID:       rec.ClientID,
			Attractiveness: rec.Attractiveness,
			Availability:   rec.Availability,
		})
		writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"error":      "no rule fired for the given inputs, projection undefined",
			"projection": rec,
		})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	rec.SuccessPercent = &out.SuccessPercent
	rec.Band = out.Band.Label
	rec.Message = out.Band.Message
	rec.Tone = out.Band.Tone
	rec.ReturnFactor = &out.ReturnFactor
	rec.ProjectedReturn = &out.ProjectedReturn
	rec.NetGain = &out.NetGain
	rec.RuleStrengths = make(map[string]float64, len(out.RuleStrengths))
	for _, rs := range out.RuleStrengths {
		rec.RuleStrengths[rs.Label] = rs.Strength
	}

	if err := h.store.SaveProjection(r.Context(), rec); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	projectionsTotal.WithLabelValues(rec.Band).Inc()
	successPercent.Observe(out.SuccessPercent)
	h.publish(events.SubjectProjectionComputed(rec.ID.String()), events.ProjectionComputedEvent{
		ProjectionID:    rec.ID.String(),
		ClientID:        rec.ClientID,
		Attractiveness:  rec.Attractiveness,
		Availability:    rec.Availability,
		Investment:      rec.Investment,
		SuccessPercent:  out.SuccessPercent,
		Band:            rec.Band,
		ProjectedReturn: out.ProjectedReturn,
		NetGain:         out.NetGain,
	})

	writeJSON(w, http.StatusCreated, rec)
}

// List handles GET /api/v1/projections.
func (h *ProjectionsHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := store.ProjectionFilter{
		Band:     r.URL.Query().Get("band"),
		ClientID: r.URL.Query().Get("client"),
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			filter.Limit = n
		}
	}

	projections, err := h.store.ListProjections(r.Context(), filter)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if projections == nil {
		projections = []*store.Projection{}
	}
	writeJSON(w, http.StatusOK, projections)
}

// Get handles GET /api/v1/projections/{id}.
func (h *ProjectionsHandler) Get(w http.ResponseWriter, r *http.Request) {
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
	writeJSON(w, http.StatusOK, p)
}

func (h *ProjectionsHandler) publish(subject string, data interface{}) {
	if h.events == nil {
		return
	}
	if err := h.events.Publish(subject, data); err != nil {
		h.logger.Warn("failed to publish event", "subject", subject, "error", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
