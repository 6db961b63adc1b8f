package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/carteira/internal/common"
	"github.com/dmitrijs2005/carteira/internal/dbx"
	"github.com/dmitrijs2005/carteira/internal/server/models"
	"github.com/dmitrijs2005/carteira/internal/server/repositories/repomanager"
)

// DocumentsService stores identity documents and keeps the per-user linkage
// row pointing at the current version of each kind.
type DocumentsService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewDocumentsService constructs a DocumentsService.
func NewDocumentsService(db *sql.DB, m repomanager.RepositoryManager) *DocumentsService {
	return &DocumentsService{db: db, repomanager: m}
}

// Attach stores doc and makes it the user's current document of its kind.
// A previously linked document of the same kind is replaced and its row is
// removed, all inside one transaction so readers never observe a half-swapped
// state.
func (s *DocumentsService) Attach(ctx context.Context, userID int64, doc *models.Document) error {
	if err := validateDocument(doc); err != nil {
		return err
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Documents(tx)

		inserted, err := repo.Insert(ctx, doc)
		if err != nil {
			return err
		}

		oldID, err := repo.LinkedID(ctx, userID, doc.Kind)
		if err != nil {
			return err
		}

		if err := repo.UpsertLink(ctx, userID, doc.Kind, inserted.ID); err != nil {
			return err
		}

		if oldID != 0 {
			if err := repo.Delete(ctx, doc.Kind, oldID); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return common.ErrorUnavailable
	}

	return nil
}

// Get returns the user's current document of the given kind.
func (s *DocumentsService) Get(ctx context.Context, userID int64, kind models.DocumentKind) (*models.Document, error) {
	repo := s.repomanager.Documents(s.db)

	doc, err := repo.Get(ctx, userID, kind)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, common.ErrorUnavailable
	}
	return doc, nil
}

// GetAll returns every document linked to the user. A user with no linkage
// row, or a linkage row with every kind unset, gets common.ErrorNotFound.
func (s *DocumentsService) GetAll(ctx context.Context, userID int64) (*models.DocumentSet, error) {
	repo := s.repomanager.Documents(s.db)

	set, err := repo.GetSet(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, common.ErrorUnavailable
	}
	if set.Empty() {
		return nil, common.ErrorNotFound
	}
	return set, nil
}

func validateDocument(doc *models.Document) error {
	if _, err := models.ParseDocumentKind(string(doc.Kind)); err != nil {
		return err
	}
	if doc.Number == "" {
		return fmt.Errorf("%w: document number is required", common.ErrorValidation)
	}
	if doc.Name == "" {
		return fmt.Errorf("%w: holder name is required", common.ErrorValidation)
	}
	if doc.IssuedDate.IsZero() {
		return fmt.Errorf("%w: issued date is required", common.ErrorValidation)
	}

	switch doc.Kind {
	case models.KindCNH:
		if doc.UF == "" {
			return fmt.Errorf("%w: uf is required", common.ErrorValidation)
		}
		if doc.Category == "" {
			return fmt.Errorf("%w: category is required", common.ErrorValidation)
		}
		if doc.ExpirationDate == nil {
			return fmt.Errorf("%w: expiration_date is required", common.ErrorValidation)
		}
	case models.KindVaccinationCard:
		if doc.Gender == "" {
			return fmt.Errorf("%w: gender is required", common.ErrorValidation)
		}
		if doc.BirthDate == nil {
			return fmt.Errorf("%w: birth_date is required", common.ErrorValidation)
		}
		if doc.ExpirationDate == nil {
			return fmt.Errorf("%w: expiration_date is required", common.ErrorValidation)
		}
	}

	return nil
}
