package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/carteira/internal/common"
	"github.com/dmitrijs2005/carteira/internal/dbx"
	"github.com/dmitrijs2005/carteira/internal/server/models"
	"github.com/dmitrijs2005/carteira/internal/server/repositories/repomanager"
)

// TransitService manages the per-user transit fare balance.
type TransitService struct {
	db          dbx.DBTX
	repomanager repomanager.RepositoryManager
}

// NewTransitService constructs a TransitService.
func NewTransitService(db dbx.DBTX, m repomanager.RepositoryManager) *TransitService {
	return &TransitService{db: db, repomanager: m}
}

// TopUp adds amount to the user's balance, creating the account on first use.
// Zero amounts are rejected; negative ones never parse in the first place.
func (s *TransitService) TopUp(ctx context.Context, userID int64, amount models.Amount) (*models.TransitAccount, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", common.ErrorValidation)
	}

	repo := s.repomanager.Transit(s.db)
	account, err := repo.TopUp(ctx, userID, amount)
	if err != nil {
		return nil, common.ErrorUnavailable
	}
	return account, nil
}

// Balance returns the user's current balance. Users who never topped up get
// common.ErrorNotFound.
func (s *TransitService) Balance(ctx context.Context, userID int64) (models.Amount, error) {
	repo := s.repomanager.Transit(s.db)

	account, err := repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return 0, err
		}
		return 0, common.ErrorUnavailable
	}
	return account.Balance, nil
}
