package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/carteira/internal/common"
	"github.com/dmitrijs2005/carteira/internal/server/models"
)

const dateLayout = "2006-01-02"

type documentRequest struct {
	Number     string `json:"number"`
	Name       string `json:"name"`
	IssuedBy   string `json:"issued_by"`
	IssuedDate string `json:"issued_date"`

	UF             string `json:"uf"`
	ExpirationDate string `json:"expiration_date"`
	Category       string `json:"category"`

	BirthDate string `json:"birth_date"`
	Gender    string `json:"gender"`
}

type documentResponse struct {
	Kind       string `json:"kind"`
	Number     string `json:"number"`
	Name       string `json:"name"`
	IssuedBy   string `json:"issued_by,omitempty"`
	IssuedDate string `json:"issued_date"`

	UF             string `json:"uf,omitempty"`
	ExpirationDate string `json:"expiration_date,omitempty"`
	Category       string `json:"category,omitempty"`

	BirthDate string `json:"birth_date,omitempty"`
	Gender    string `json:"gender,omitempty"`
}

type documentSetResponse struct {
	CPF             *documentResponse `json:"cpf"`
	RG              *documentResponse `json:"rg"`
	CNH             *documentResponse `json:"cnh"`
	VaccinationCard *documentResponse `json:"vaccination_card"`
}

var documentCreatedMessages = map[models.DocumentKind]string{
	models.KindCPF:             "CPF criado e associado aos documentos com sucesso.",
	models.KindRG:              "RG criado e associado aos documentos com sucesso.",
	models.KindCNH:             "CNH criada e associada aos documentos com sucesso.",
	models.KindVaccinationCard: "Carteira de vacinação criada e associada aos documentos com sucesso.",
}

var documentNotFoundDetails = map[models.DocumentKind]string{
	models.KindCPF:             "Nenhum CPF encontrado para o usuário.",
	models.KindRG:              "Nenhum RG encontrado para o usuário.",
	models.KindCNH:             "Nenhuma CNH encontrada para o usuário.",
	models.KindVaccinationCard: "Nenhuma carteira de vacinação encontrada para o usuário.",
}

// handleGetAllDocuments returns every linked document, nulls where a kind is
// unset. A user with nothing linked gets a 404.
func (s *Server) handleGetAllDocuments(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFrom(r.Context())
	if !ok {
		s.writeError(w, common.ErrorUnauthenticated, "")
		return
	}

	ctx, cancel := s.requestContext(r)
	defer cancel()

	set, err := s.documents.GetAll(ctx, identity.UserID)
	if err != nil {
		s.writeError(w, err, "Nenhum documento encontrado para o usuário.")
		return
	}

	s.writeJSON(w, http.StatusOK, documentSetResponse{
		CPF:             toDocumentResponse(set.CPF),
		RG:              toDocumentResponse(set.RG),
		CNH:             toDocumentResponse(set.CNH),
		VaccinationCard: toDocumentResponse(set.VaccinationCard),
	})
}

// handleGetDocument returns one document kind from the path.
func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFrom(r.Context())
	if !ok {
		s.writeError(w, common.ErrorUnauthenticated, "")
		return
	}

	kind, err := models.ParseDocumentKind(r.PathValue("kind"))
	if err != nil {
		s.writeError(w, err, "Tipo de documento desconhecido.")
		return
	}

	ctx, cancel := s.requestContext(r)
	defer cancel()

	doc, err := s.documents.Get(ctx, identity.UserID, kind)
	if err != nil {
		s.writeError(w, err, documentNotFoundDetails[kind])
		return
	}

	s.writeJSON(w, http.StatusOK, toDocumentResponse(doc))
}

// handleUploadDocument stores a new document of the path kind and makes it
// the current one, replacing any previous version.
func (s *Server) handleUploadDocument(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFrom(r.Context())
	if !ok {
		s.writeError(w, common.ErrorUnauthenticated, "")
		return
	}

	kind, err := models.ParseDocumentKind(r.PathValue("kind"))
	if err != nil {
		s.writeError(w, err, "Tipo de documento desconhecido.")
		return
	}

	var req documentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, common.ErrorValidation, "Corpo da requisição inválido.")
		return
	}

	doc, err := req.toDocument(kind)
	if err != nil {
		s.writeError(w, err, "")
		return
	}

	ctx, cancel := s.requestContext(r)
	defer cancel()

	if err := s.documents.Attach(ctx, identity.UserID, doc); err != nil {
		s.writeError(w, err, "")
		return
	}

	s.logger.Info(ctx, "document attached", "user_id", identity.UserID, "kind", string(kind))
	s.writeJSON(w, http.StatusCreated, messageResponse{Message: documentCreatedMessages[kind]})
}

func (r *documentRequest) toDocument(kind models.DocumentKind) (*models.Document, error) {
	doc := &models.Document{
		Kind:     kind,
		Number:   r.Number,
		Name:     r.Name,
		IssuedBy: r.IssuedBy,
	}

	var err error
	if doc.IssuedDate, err = parseDate(r.IssuedDate, "issued_date"); err != nil {
		return nil, err
	}

	switch kind {
	case models.KindCNH:
		doc.UF = r.UF
		doc.Category = r.Category
		if doc.ExpirationDate, err = parseOptionalDate(r.ExpirationDate, "expiration_date"); err != nil {
			return nil, err
		}
	case models.KindVaccinationCard:
		doc.IssuedBy = ""
		doc.Gender = r.Gender
		if doc.BirthDate, err = parseOptionalDate(r.BirthDate, "birth_date"); err != nil {
			return nil, err
		}
		if doc.ExpirationDate, err = parseOptionalDate(r.ExpirationDate, "expiration_date"); err != nil {
			return nil, err
		}
	}

	return doc, nil
}

func parseDate(s, field string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: %s is required", common.ErrorValidation, field)
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be formatted as YYYY-MM-DD", common.ErrorValidation, field)
	}
	return t, nil
}

func parseOptionalDate(s, field string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := parseDate(s, field)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func toDocumentResponse(doc *models.Document) *documentResponse {
	if doc == nil {
		return nil
	}

	resp := &documentResponse{
		Kind:       string(doc.Kind),
		Number:     doc.Number,
		Name:       doc.Name,
		IssuedBy:   doc.IssuedBy,
		IssuedDate: doc.IssuedDate.Format(dateLayout),
		UF:         doc.UF,
		Category:   doc.Category,
		Gender:     doc.Gender,
	}
	if doc.ExpirationDate != nil {
		resp.ExpirationDate = doc.ExpirationDate.Format(dateLayout)
	}
	if doc.BirthDate != nil {
		resp.BirthDate = doc.BirthDate.Format(dateLayout)
	}
	return resp
}
