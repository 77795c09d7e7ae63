package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/SandiaExe/LogicaDifusa/internal/store"
	"github.com/SandiaExe/LogicaDifusa/internal/venture"
)

// Mocks
type mockStore struct {
	projections map[uuid.UUID]*store.Projection
	saveErr     error
}

func newMockStore() *mockStore {
	return &mockStore{projections: make(map[uuid.UUID]*store.Projection)}
}

func (m *mockStore) SaveProjection(_ context.Context, p *store.Projection) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	p.ID = uuid.New()
	p.CreatedAt = time.Now()
	m.projections[p.ID] = p
	return nil
}

func (m *mockStore) GetProjection(_ context.Context, id uuid.UUID) (*store.Projection, error) {
	return m.projections[id], nil
}

func (m *mockStore) ListProjections(_ context.Context, filter store.ProjectionFilter) ([]*store.Projection, error) {
	var out []*store.Projection
	for _, p := range m.projections {
		if filter.Band != "" && p.Band != filter.Band {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (m *mockStore) GetStats(_ context.Context) (*store.ProjectionStats, error) {
	return &store.ProjectionStats{Total: len(m.projections)}, nil
}

func (m *mockStore) Close() error { return nil }

type mockEvents struct {
	published []string
}

func (m *mockEvents) Publish(subject string, _ interface{}) error {
	m.published = append(m.published, subject)
	return nil
}
func (m *mockEvents) Close() {}

func setupTestRouter(t *testing.T) (http.Handler, *mockStore, *mockEvents) {
	t.Helper()
	ms := newMockStore()
	me := &mockEvents{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	projector, err := venture.NewProjector()
	if err != nil {
		t.Fatalf("NewProjector: %v", err)
	}
	router := NewRouter(ms, me, projector, "test-token", logger)
	return router, ms, me
}

func TestCreateProjection(t *testing.T) {
	router, ms, me := setupTestRouter(t)

	body := `{"attractiveness":9.5,"availability":95,"investment":1000}`
	req := httptest.NewRequest("POST", "/api/v1/projections", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Client-ID", "analyst-1")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var p store.Projection
	json.NewDecoder(w.Body).Decode(&p)
	if p.SuccessPercent == nil || *p.SuccessPercent < 75 {
		t.Errorf("expected success >= 75, got %v", p.SuccessPercent)
	}
	if p.Band != "High" {
		t.Errorf("expected band High, got %q", p.Band)
	}
	if p.ClientID != "analyst-1" {
		t.Errorf("expected client recorded, got %q", p.ClientID)
	}
	if p.NetGain == nil || *p.NetGain <= 0 {
		t.Errorf("expected positive net gain, got %v", p.NetGain)
	}
	if len(ms.projections) != 1 {
		t.Errorf("expected 1 stored projection, got %d", len(ms.projections))
	}
	if len(me.published) != 1 {
		t.Errorf("expected 1 published event, got %d", len(me.published))
	}
}

func TestCreateProjectionMissingFields(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	body := `{"attractiveness":5}`
	req := httptest.NewRequest("POST", "/api/v1/projections", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestCreateProjectionBadBody(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	req := httptest.NewRequest("POST", "/api/v1/projections", bytes.NewBufferString("{not json"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestGetProjectionNotFound(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	req := httptest.NewRequest("GET", "/api/v1/projections/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestGetProjectionInvalidID(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	req := httptest.NewRequest("GET", "/api/v1/projections/not-a-uuid", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestListProjections(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	body := `{"attractiveness":1,"availability":1,"investment":100}`
	req := httptest.NewRequest("POST", "/api/v1/projections", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	req = httptest.NewRequest("GET", "/api/v1/projections?band=Low", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var list []*store.Projection
	json.NewDecoder(w.Body).Decode(&list)
	if len(list) != 1 {
		t.Errorf("expected 1 Low projection, got %d", len(list))
	}
}

func TestStatsRequiresAdminToken(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	req := httptest.NewRequest("GET", "/api/v1/stats", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestStatsWithToken(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	req := httptest.NewRequest("GET", "/api/v1/stats", nil)
	req.Header.Set("Authorization", "Bearer test-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := NewMetricsRouter()
	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}
