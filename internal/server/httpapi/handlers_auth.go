package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dmitrijs2005/carteira/internal/common"
)

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// handleRegister creates a new user account from a JSON body.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, common.ErrorValidation, "Corpo da requisição inválido.")
		return
	}

	ctx, cancel := s.requestContext(r)
	defer cancel()

	user, err := s.auth.Register(ctx, req.Username, req.Password)
	if err != nil {
		s.writeError(w, err, "")
		return
	}

	s.logger.Info(ctx, "user registered", "user_id", user.ID)
	s.writeJSON(w, http.StatusCreated, messageResponse{Message: "Usuário criado com sucesso."})
}

// handleLogin checks form-encoded credentials, sets the session cookie and
// returns the token in the body as well.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.writeError(w, common.ErrorValidation, "Corpo da requisição inválido.")
		return
	}

	ctx, cancel := s.requestContext(r)
	defer cancel()

	token, err := s.auth.Login(ctx, r.PostFormValue("username"), r.PostFormValue("password"))
	if err != nil {
		s.writeError(w, err, "")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     common.AccessTokenCookieName,
		Value:    common.BearerPrefix + token,
		Path:     "/",
		MaxAge:   int(s.auth.TokenTTL().Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	s.writeJSON(w, http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

// requestContext bounds the storage work done for one request.
func (s *Server) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), s.cfg.RequestTimeout)
}
