package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	intconfig "backoffice/internal/config"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	h "backoffice/internal/http/handlers"
	"backoffice/internal/repositories"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type fakeTrips map[int64]models.Trip

func (f fakeTrips) GetByID(_ context.Context, id int64) (models.Trip, error) {
	t, ok := f[id]
	if !ok {
		return models.Trip{}, domain.NotFoundError{Resource: "trip"}
	}
	return t, nil
}

func (f fakeTrips) List(_ context.Context, _ repositories.TripFilter) ([]models.Trip, error) {
	out := []models.Trip{}
	for _, t := range f {
		out = append(out, t)
	}
	return out, nil
}

type fakePassengers map[int64]models.Passenger

func (f fakePassengers) GetByID(_ context.Context, id int64) (models.Passenger, error) {
	p, ok := f[id]
	if !ok {
		return models.Passenger{}, domain.NotFoundError{Resource: "passenger"}
	}
	return p, nil
}

func (f fakePassengers) ListByTrip(_ context.Context, tripID int64) ([]models.Passenger, error) {
	out := []models.Passenger{}
	for id := int64(1); id <= int64(len(f))+10; id++ {
		if p, ok := f[id]; ok && p.TripID == tripID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f fakePassengers) Update(_ context.Context, p models.Passenger) error {
	f[p.ID] = p
	return nil
}

type fakeDocuments map[string]models.Document

func (f fakeDocuments) Create(_ context.Context, doc models.Document) error {
	f[doc.ID] = doc
	return nil
}

func (f fakeDocuments) GetByID(_ context.Context, id string) (models.Document, error) {
	d, ok := f[id]
	if !ok {
		return models.Document{}, domain.NotFoundError{Resource: "document"}
	}
	return d, nil
}

type fakeUsers map[string]models.User

func (f fakeUsers) FindByLogin(_ context.Context, login string) (models.User, error) {
	u, ok := f[login]
	if !ok {
		return models.User{}, domain.NotFoundError{Resource: "user"}
	}
	return u, nil
}

const testSecret = "test-secret"

func setupRouter(t *testing.T) (*gin.Engine, fakePassengers, fakeDocuments) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	passengers := fakePassengers{
		1: {ID: 1, TripID: 1, FullName: "Ana", SeatNumber: models.IntPtr(5), GroupColor: models.GroupRed},
		2: {ID: 2, TripID: 1, FullName: "Bruno"},
		3: {ID: 3, TripID: 1, FullName: "Caio", IsLapChild: true, PrincipalID: models.Int64Ptr(1)},
	}
	docs := fakeDocuments{}
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}

	h.Trips = fakeTrips{1: {ID: 1, Name: "Gramado", Destination: "Gramado", VehicleModel: models.VehicleDoubleDeck, Capacity: 57}}
	h.Passengers = passengers
	h.Documents = docs
	h.Users = fakeUsers{
		"admin": {ID: 1, Username: "admin", PasswordHash: string(hash), Role: "admin", Status: "active"},
		"guest": {ID: 2, Username: "guest", PasswordHash: string(hash), Role: "viewer", Status: "active"},
	}

	r := NewRouter(intconfig.Env{JWTSecret: testSecret, CORSOrigins: []string{"http://localhost:3000"}})
	return r, passengers, docs
}

func doRequest(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r *gin.Engine, user string) string {
	t.Helper()
	w := doRequest(r, http.MethodPost, "/api/auth/login", "", gin.H{"login": user, "password": "s3cret"})
	if w.Code != http.StatusOK {
		t.Fatalf("login %s: status %d body %s", user, w.Code, w.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || resp.Token == "" {
		t.Fatalf("login response without token: %s", w.Body.String())
	}
	return resp.Token
}

func TestLoginRejectsBadPassword(t *testing.T) {
	r, _, _ := setupRouter(t)
	w := doRequest(r, http.MethodPost, "/api/auth/login", "", gin.H{"login": "admin", "password": "nope"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	w = doRequest(r, http.MethodPost, "/api/auth/login", "", gin.H{"login": "ghost", "password": "s3cret"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown user, got %d", w.Code)
	}
}

func TestSeatMapEndpoint(t *testing.T) {
	r, _, _ := setupRouter(t)
	w := doRequest(r, http.MethodGet, "/api/trips/1/seat-map?q=ana&selected=%235", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d body %s", w.Code, w.Body.String())
	}
	var m struct {
		Occupied    int               `json:"occupied"`
		Free        int               `json:"free"`
		Unassigned  []json.RawMessage `json:"unassigned"`
		LapChildren []json.RawMessage `json:"lap_children"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if m.Occupied != 1 || m.Free != 56 || len(m.Unassigned) != 1 || len(m.LapChildren) != 1 {
		t.Fatalf("unexpected seat map %+v", m)
	}

	if w := doRequest(r, http.MethodGet, "/api/trips/99/seat-map", "", nil); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for missing trip, got %d", w.Code)
	}
	if w := doRequest(r, http.MethodGet, "/api/trips/abc/seat-map", "", nil); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad id, got %d", w.Code)
	}
}

func TestAssignAndReleaseEndpoints(t *testing.T) {
	r, passengers, _ := setupRouter(t)

	if w := doRequest(r, http.MethodPut, "/api/trips/1/passengers/2/seat", "", gin.H{"seat_number": 48}); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}
	guest := login(t, r, "guest")
	if w := doRequest(r, http.MethodPut, "/api/trips/1/passengers/2/seat", guest, gin.H{"seat_number": 48}); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for viewer, got %d", w.Code)
	}

	token := login(t, r, "admin")
	w := doRequest(r, http.MethodPut, "/api/trips/1/passengers/2/seat", token, gin.H{"seat_number": 48})
	if w.Code != http.StatusOK {
		t.Fatalf("assign: status %d body %s", w.Code, w.Body.String())
	}
	if p := passengers[2]; p.Seat() != 48 || p.FloorLabel != "lower floor" {
		t.Fatalf("assignment not stored: %+v", p)
	}

	w = doRequest(r, http.MethodPut, "/api/trips/1/passengers/2/seat", token, gin.H{"seat_number": 5})
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 on occupied seat, got %d", w.Code)
	}
	w = doRequest(r, http.MethodPut, "/api/trips/1/passengers/2/seat", token, gin.H{"seat_number": 99})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 out of layout, got %d", w.Code)
	}

	w = doRequest(r, http.MethodDelete, "/api/trips/1/passengers/2/seat", token, nil)
	if w.Code != http.StatusPreconditionRequired {
		t.Fatalf("expected 428 without confirmation, got %d", w.Code)
	}
	w = doRequest(r, http.MethodDelete, "/api/trips/1/passengers/2/seat?confirm=true", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("release: status %d body %s", w.Code, w.Body.String())
	}
	if passengers[2].HasSeat() {
		t.Fatalf("seat not released")
	}
}

func TestManifestEndpoints(t *testing.T) {
	r, _, docs := setupRouter(t)

	w := doRequest(r, http.MethodGet, "/api/trips/1/manifest", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("manifest: status %d", w.Code)
	}
	var m models.Manifest
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(m.Rows) != 3 || m.Rows[0].Passenger.FullName != "Ana" {
		t.Fatalf("unexpected manifest rows %+v", m.Rows)
	}

	w = doRequest(r, http.MethodGet, "/api/trips/1/manifest.pdf", "", nil)
	if w.Code != http.StatusOK || w.Header().Get("Content-Type") != "application/pdf" {
		t.Fatalf("pdf: status %d type %s", w.Code, w.Header().Get("Content-Type"))
	}
	if !strings.Contains(w.Header().Get("Content-Disposition"), "MANIFEST_Gramado_") {
		t.Fatalf("unexpected disposition %s", w.Header().Get("Content-Disposition"))
	}

	token := login(t, r, "admin")
	w = doRequest(r, http.MethodPost, "/api/trips/1/manifest/documents", token, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("store: status %d body %s", w.Code, w.Body.String())
	}
	if len(docs) != 1 {
		t.Fatalf("document not stored")
	}
	for id := range docs {
		w = doRequest(r, http.MethodGet, "/api/documents/"+id, "", nil)
		if w.Code != http.StatusOK || !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
			t.Fatalf("document download: status %d", w.Code)
		}
	}
}

func TestMetricsAndHealth(t *testing.T) {
	r, _, _ := setupRouter(t)
	if w := doRequest(r, http.MethodGet, "/api/health", "", nil); w.Code != http.StatusOK {
		t.Fatalf("health: %d", w.Code)
	}
	doRequest(r, http.MethodGet, "/api/trips/1/manifest", "", nil)
	w := doRequest(r, http.MethodGet, "/metrics", "", nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "backoffice_manifests_generated_total") {
		t.Fatalf("metrics endpoint missing manifest counter")
	}
	if w := doRequest(r, http.MethodGet, "/api/nope", "", nil); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	r, _, _ := setupRouter(t)
	token, err := h.IssueToken([]byte(testSecret), models.User{ID: 1, Role: "admin"}, time.Now().Add(-24*time.Hour))
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	w := doRequest(r, http.MethodPut, "/api/trips/1/passengers/2/seat", token, gin.H{"seat_number": 10})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired token, got %d", w.Code)
	}
}

func TestListTrips(t *testing.T) {
	r, _, _ := setupRouter(t)
	w := doRequest(r, http.MethodGet, "/api/trips", "", nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"seats":57`) {
		t.Fatalf("trips: status %d body %s", w.Code, w.Body.String())
	}
	if w := doRequest(r, http.MethodGet, "/api/trips?from=14-03-2026", "", nil); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad date, got %d", w.Code)
	}
}
