package transit

import (
	"context"

	"github.com/dmitrijs2005/carteira/internal/server/models"
)

// Repository persists per-user transit fare accounts. TopUp creates the
// account on first use.
type Repository interface {
	TopUp(ctx context.Context, userID int64, amount models.Amount) (*models.TransitAccount, error)
	Get(ctx context.Context, userID int64) (*models.TransitAccount, error)
}
