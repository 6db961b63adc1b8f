package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrijs2005/carteira/internal/common"
	"github.com/dmitrijs2005/carteira/internal/server/services"
)

type chatbotRequest struct {
	Question string `json:"question"`
}

type chatbotReply struct {
	Response string `json:"response"`
}

// handleChatbot routes a free-form question to the matching wallet lookup.
// Document and balance questions reuse the direct endpoint handlers so the
// payloads and error details stay identical.
func (s *Server) handleChatbot(w http.ResponseWriter, r *http.Request) {
	var req chatbotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, common.ErrorValidation, "Corpo da requisição inválido.")
		return
	}

	route := s.chatbot.Route(req.Question)

	switch route.Action {
	case services.ActionAllDocuments:
		s.handleGetAllDocuments(w, r)
	case services.ActionDocument:
		r.SetPathValue("kind", string(route.Kind))
		s.handleGetDocument(w, r)
	case services.ActionBalance:
		s.handleBalance(w, r)
	default:
		s.writeJSON(w, http.StatusOK, chatbotReply{Response: route.Reply})
	}
}
