package httpapi

import "net/http"

type healthResponse struct {
	Database    string `json:"database"`
	ExternalAPI string `json:"external_api"`
}

// handleHealth probes the database and the external endpoint. The route is
// unauthenticated so orchestration can poll it.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := s.health.Check(r.Context())

	s.writeJSON(w, http.StatusOK, healthResponse{
		Database:    upOrDown(status.Database),
		ExternalAPI: upOrDown(status.ExternalAPI),
	})
}

func upOrDown(up bool) string {
	if up {
		return "up"
	}
	return "down"
}
