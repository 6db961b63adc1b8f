// Package httpapi exposes the wallet over HTTP/JSON: registration and login,
// identity documents, the transit balance, the chatbot and a health probe.
// Authenticated routes read the session JWT from the access_token cookie.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/carteira/internal/logging"
	"github.com/dmitrijs2005/carteira/internal/server/config"
	"github.com/dmitrijs2005/carteira/internal/server/services"
)

const shutdownTimeout = 5 * time.Second

// Server is the public HTTP endpoint of the wallet.
type Server struct {
	cfg    *config.Config
	logger logging.Logger

	auth      *services.AuthService
	documents *services.DocumentsService
	transit   *services.TransitService
	chatbot   *services.ChatbotService
	health    *services.HealthService

	jwtSecret []byte
}

// NewServer wires the HTTP surface to the service layer.
func NewServer(cfg *config.Config, logger logging.Logger,
	auth *services.AuthService, documents *services.DocumentsService,
	transit *services.TransitService, chatbot *services.ChatbotService,
	health *services.HealthService) *Server {

	return &Server{
		cfg:       cfg,
		logger:    logger.With("module", "httpapi"),
		auth:      auth,
		documents: documents,
		transit:   transit,
		chatbot:   chatbot,
		health:    health,
		jwtSecret: []byte(cfg.SecretKey),
	}
}

// routes builds the request mux. Everything except registration, login and
// the health probe sits behind the session resolver.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/{$}", s.handleRegister)
	mux.HandleFunc("POST /auth/token", s.handleLogin)
	mux.HandleFunc("GET /health/{$}", s.handleHealth)

	mux.Handle("GET /documents/{$}", s.requireAuth(s.handleGetAllDocuments))
	mux.Handle("GET /documents/{kind}", s.requireAuth(s.handleGetDocument))
	mux.Handle("POST /documents/{kind}", s.requireAuth(s.handleUploadDocument))

	mux.Handle("GET /transport/balance", s.requireAuth(s.handleBalance))
	mux.Handle("POST /transport/add_balance", s.requireAuth(s.handleAddBalance))

	mux.Handle("POST /chatbot/{$}", s.requireAuth(s.handleChatbot))

	return mux
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.EndpointAddrHTTP,
		Handler: s.routes(),
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "http server listening", "addr", s.cfg.EndpointAddrHTTP)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info(ctx, "http server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
