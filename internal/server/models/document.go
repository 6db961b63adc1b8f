package models

import (
	"time"

	"github.com/dmitrijs2005/carteira/internal/common"
)

// DocumentKind identifies one of the four supported identity documents.
type DocumentKind string

const (
	KindCPF             DocumentKind = "cpf"
	KindRG              DocumentKind = "rg"
	KindCNH             DocumentKind = "cnh"
	KindVaccinationCard DocumentKind = "vaccination_card"
)

// ParseDocumentKind maps a URL path segment to a DocumentKind.
func ParseDocumentKind(s string) (DocumentKind, error) {
	switch DocumentKind(s) {
	case KindCPF, KindRG, KindCNH, KindVaccinationCard:
		return DocumentKind(s), nil
	}
	return "", common.ErrorValidation
}

// Document is a single identity document record. The base fields apply to all
// kinds; UF/ExpirationDate/Category are CNH-only, BirthDate/Gender are
// vaccination-card-only (which also drops IssuedBy).
type Document struct {
	ID         int64
	Kind       DocumentKind
	Number     string
	Name       string
	IssuedBy   string
	IssuedDate time.Time

	UF             string
	ExpirationDate *time.Time
	Category       string

	BirthDate *time.Time
	Gender    string
}

// DocumentSet is the per-user view over the linkage row: at most one document
// of each kind, nil where no document is linked.
type DocumentSet struct {
	CPF             *Document
	RG              *Document
	CNH             *Document
	VaccinationCard *Document
}

// Empty reports whether no document of any kind is linked.
func (s *DocumentSet) Empty() bool {
	return s.CPF == nil && s.RG == nil && s.CNH == nil && s.VaccinationCard == nil
}

// ByKind returns the document of the given kind, nil when unset.
func (s *DocumentSet) ByKind(kind DocumentKind) *Document {
	switch kind {
	case KindCPF:
		return s.CPF
	case KindRG:
		return s.RG
	case KindCNH:
		return s.CNH
	case KindVaccinationCard:
		return s.VaccinationCard
	}
	return nil
}
