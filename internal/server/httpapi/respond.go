package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/carteira/internal/common"
)

// errorResponse is the JSON error envelope: {"detail": "..."}.
type errorResponse struct {
	Detail string `json:"detail"`
}

// messageResponse is the JSON confirmation envelope: {"message": "..."}.
type messageResponse struct {
	Message string `json:"message"`
}

// writeJSON renders v with the given status code.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error(context.Background(), "response encode error", "error", err.Error())
	}
}

// writeError maps a sentinel error to an HTTP status and renders the error
// envelope. A non-empty detail overrides the default message, letting
// handlers keep the per-resource wording of the error.
func (s *Server) writeError(w http.ResponseWriter, err error, detail string) {
	status := http.StatusInternalServerError
	fallback := "Erro interno."

	switch {
	case errors.Is(err, common.ErrorValidation):
		status = http.StatusUnprocessableEntity
		fallback = err.Error()
	case errors.Is(err, common.ErrorAlreadyExists):
		status = http.StatusConflict
		fallback = "Usuário já existe."
	case errors.Is(err, common.ErrorInvalidCredentials):
		status = http.StatusUnauthorized
		fallback = "Usuário ou senha inválidos."
	case errors.Is(err, common.ErrorUnauthenticated):
		status = http.StatusUnauthorized
		fallback = "Credenciais inválidas."
	case errors.Is(err, common.ErrorNotFound):
		status = http.StatusNotFound
		fallback = "Não encontrado."
	case errors.Is(err, common.ErrorUnavailable):
		status = http.StatusServiceUnavailable
		fallback = "Serviço indisponível."
	}

	if detail == "" {
		detail = fallback
	}
	s.writeJSON(w, status, errorResponse{Detail: detail})
}
