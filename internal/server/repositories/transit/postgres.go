package transit

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/carteira/internal/common"
	"github.com/dmitrijs2005/carteira/internal/dbx"
	"github.com/dmitrijs2005/carteira/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// TopUp adds amount to the user's balance, creating the account when it does
// not exist yet. The increment happens inside the database so concurrent
// top-ups never lose money. Amounts travel as decimal strings to keep the
// NUMERIC column exact.
func (r *PostgresRepository) TopUp(ctx context.Context, userID int64, amount models.Amount) (*models.TransitAccount, error) {

	query :=
		`INSERT INTO transit_accounts (user_id, balance, last_transaction_at)
		 VALUES ($1, $2, now())
		 ON CONFLICT (user_id) DO UPDATE
		 SET balance = transit_accounts.balance + EXCLUDED.balance,
		     last_transaction_at = now()
		 RETURNING id, balance::text, last_transaction_at
		 `

	account := &models.TransitAccount{UserID: userID}
	var balance string

	err := r.db.QueryRowContext(ctx, query, userID, amount.String()).
		Scan(&account.ID, &balance, &account.LastTransactionAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	account.Balance, err = models.ParseAmount(balance)
	if err != nil {
		return nil, fmt.Errorf("unexpected balance value %q: %w", balance, err)
	}

	return account, nil
}

// Get returns the user's account, or common.ErrorNotFound when the user has
// never topped up.
func (r *PostgresRepository) Get(ctx context.Context, userID int64) (*models.TransitAccount, error) {
	query :=
		`SELECT id, balance::text, last_transaction_at FROM transit_accounts
		 WHERE user_id = $1
		 `

	account := &models.TransitAccount{UserID: userID}
	var balance string

	err := r.db.QueryRowContext(ctx, query, userID).
		Scan(&account.ID, &balance, &account.LastTransactionAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	account.Balance, err = models.ParseAmount(balance)
	if err != nil {
		return nil, fmt.Errorf("unexpected balance value %q: %w", balance, err)
	}

	return account, nil
}
