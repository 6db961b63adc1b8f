package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrijs2005/carteira/internal/common"
	"github.com/dmitrijs2005/carteira/internal/server/models"
)

type addBalanceRequest struct {
	Amount string `json:"amount"`
}

// handleBalance reports the current transit balance.
func (s *Server) handleBalance(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFrom(r.Context())
	if !ok {
		s.writeError(w, common.ErrorUnauthenticated, "")
		return
	}

	ctx, cancel := s.requestContext(r)
	defer cancel()

	balance, err := s.transit.Balance(ctx, identity.UserID)
	if err != nil {
		s.writeError(w, err, "Nenhum saldo encontrado para o usuário.")
		return
	}

	s.writeJSON(w, http.StatusOK, messageResponse{Message: "Saldo atual: R$ " + balance.String()})
}

// handleAddBalance credits the account with the amount from the JSON body.
// The amount travels as a decimal string so the value stays exact.
func (s *Server) handleAddBalance(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFrom(r.Context())
	if !ok {
		s.writeError(w, common.ErrorUnauthenticated, "")
		return
	}

	var req addBalanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, common.ErrorValidation, "Corpo da requisição inválido.")
		return
	}

	amount, err := models.ParseAmount(req.Amount)
	if err != nil {
		s.writeError(w, err, "Valor inválido.")
		return
	}

	ctx, cancel := s.requestContext(r)
	defer cancel()

	account, err := s.transit.TopUp(ctx, identity.UserID, amount)
	if err != nil {
		s.writeError(w, err, "")
		return
	}

	s.logger.Info(ctx, "balance topped up", "user_id", identity.UserID, "balance", account.Balance.String())
	s.writeJSON(w, http.StatusCreated, messageResponse{Message: "Saldo atualizado com sucesso!"})
}
