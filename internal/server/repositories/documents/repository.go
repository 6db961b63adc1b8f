package documents

import (
	"context"

	"github.com/dmitrijs2005/carteira/internal/server/models"
)

// Repository persists document kind rows and the per-user linkage row.
// Insert/LinkedID/UpsertLink/Delete are meant to run on one transactional
// handle so that attaching a document is atomic; Get and GetSet are plain
// reads.
type Repository interface {
	Insert(ctx context.Context, doc *models.Document) (*models.Document, error)
	LinkedID(ctx context.Context, userID int64, kind models.DocumentKind) (int64, error)
	UpsertLink(ctx context.Context, userID int64, kind models.DocumentKind, docID int64) error
	Delete(ctx context.Context, kind models.DocumentKind, id int64) error
	Get(ctx context.Context, userID int64, kind models.DocumentKind) (*models.Document, error)
	GetSet(ctx context.Context, userID int64) (*models.DocumentSet, error)
}
