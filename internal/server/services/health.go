package services

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/dmitrijs2005/carteira/internal/server/config"
)

// HealthStatus reports the reachability of the server's dependencies.
type HealthStatus struct {
	Database    bool
	ExternalAPI bool
}

// HealthService probes the database and a configured external endpoint.
type HealthService struct {
	db     *sql.DB
	client *http.Client
	url    string
}

// NewHealthService constructs a HealthService. The HTTP client timeout bounds
// the external probe so a hung dependency cannot stall the health endpoint.
func NewHealthService(db *sql.DB, cfg *config.Config) *HealthService {
	return &HealthService{
		db:     db,
		client: &http.Client{Timeout: cfg.RequestTimeout},
		url:    cfg.HealthCheckURL,
	}
}

// Check runs both probes and never returns an error; failures show up as
// "down" in the result.
func (s *HealthService) Check(ctx context.Context) HealthStatus {
	return HealthStatus{
		Database:    s.checkDatabase(ctx),
		ExternalAPI: s.checkExternal(ctx),
	}
}

func (s *HealthService) checkDatabase(ctx context.Context) bool {
	var one int
	if err := s.db.QueryRowContext(ctx, "SELECT 1").Scan(&one); err != nil {
		return false
	}
	return one == 1
}

func (s *HealthService) checkExternal(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return false
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}
