package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/carteira/internal/server/services"
)

func TestHandleHealth_AllUp(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	defer db.Close()
	mock.ExpectQuery("SELECT 1").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

	external := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer external.Close()

	cfg := testConfig()
	cfg.HealthCheckURL = external.URL
	rm := &fakeRepoManager{}
	s := NewServer(cfg, discardLogger(),
		services.NewAuthService(db, rm, cfg),
		services.NewDocumentsService(db, rm),
		services.NewTransitService(db, rm),
		services.NewChatbotService(),
		services.NewHealthService(db, cfg),
	)

	req := httptest.NewRequest(http.MethodGet, "/health/", nil)
	rec := doRequest(t, s, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body healthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("body decode error: %v", err)
	}
	if body.Database != "up" || body.ExternalAPI != "up" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestHandleHealth_DependenciesDown(t *testing.T) {
	// testConfig points the external probe at an unroutable address and the
	// sqlmock has no SELECT 1 expectation, so both probes fail.
	s, _ := newTestServer(t, &fakeRepoManager{})

	req := httptest.NewRequest(http.MethodGet, "/health/", nil)
	rec := doRequest(t, s, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body healthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("body decode error: %v", err)
	}
	if body.Database != "down" || body.ExternalAPI != "down" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestHandleHealth_NoAuthRequired(t *testing.T) {
	s, _ := newTestServer(t, &fakeRepoManager{})

	req := httptest.NewRequest(http.MethodGet, "/health/", nil)
	rec := doRequest(t, s, req)

	if rec.Code == http.StatusUnauthorized {
		t.Fatal("health probe must not require a session")
	}
}
