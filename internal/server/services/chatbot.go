package services

import (
	"strings"

	"github.com/dmitrijs2005/carteira/internal/server/models"
)

// ChatbotAction tells the caller which wallet operation a question maps to.
type ChatbotAction int

const (
	// ActionReply carries a canned text answer, no data lookup.
	ActionReply ChatbotAction = iota
	// ActionAllDocuments asks for every linked document.
	ActionAllDocuments
	// ActionDocument asks for one document kind (see Route.Kind).
	ActionDocument
	// ActionBalance asks for the transit balance.
	ActionBalance
)

// ChatbotRoute is the outcome of routing one question.
type ChatbotRoute struct {
	Action ChatbotAction
	Reply  string
	Kind   models.DocumentKind
}

// ChatbotService maps free-form questions onto wallet operations by keyword.
// It only routes; the caller performs the lookup so chatbot answers carry
// exactly the same payloads and errors as the direct endpoints.
type ChatbotService struct{}

// NewChatbotService constructs a ChatbotService.
func NewChatbotService() *ChatbotService {
	return &ChatbotService{}
}

const (
	replyGreeting = "Olá! Como posso ajudar você hoje?"
	replyFarewell = "Tchau! Tenha um ótimo dia!"
	replyFallback = "Desculpe, não entendi sua pergunta. Pode reformular?"
)

// Route matches the question case-insensitively against known keywords.
// Earlier branches win, so a question mentioning both a greeting and a
// document gets the greeting.
func (s *ChatbotService) Route(question string) ChatbotRoute {
	q := strings.ToLower(question)

	switch {
	case strings.Contains(q, "ola"):
		return ChatbotRoute{Action: ActionReply, Reply: replyGreeting}
	case strings.Contains(q, "tchau"):
		return ChatbotRoute{Action: ActionReply, Reply: replyFarewell}
	case containsAny(q, "document", "doc", "documento"):
		return ChatbotRoute{Action: ActionAllDocuments}
	case containsAny(q, "cpf", "c.p.f"):
		return ChatbotRoute{Action: ActionDocument, Kind: models.KindCPF}
	case containsAny(q, "rg", "r.g", "identidade"):
		return ChatbotRoute{Action: ActionDocument, Kind: models.KindRG}
	case containsAny(q, "vacina", "vacinação", "vaccination"):
		return ChatbotRoute{Action: ActionDocument, Kind: models.KindVaccinationCard}
	case containsAny(q, "cnh", "carteira de motorista"):
		return ChatbotRoute{Action: ActionDocument, Kind: models.KindCNH}
	case containsAny(q, "saldo", "balance"):
		return ChatbotRoute{Action: ActionBalance}
	default:
		return ChatbotRoute{Action: ActionReply, Reply: replyFallback}
	}
}

func containsAny(s string, keywords ...string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
