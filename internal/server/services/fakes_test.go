package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/carteira/internal/dbx"
	"github.com/dmitrijs2005/carteira/internal/server/models"
	documentsrepo "github.com/dmitrijs2005/carteira/internal/server/repositories/documents"
	transitrepo "github.com/dmitrijs2005/carteira/internal/server/repositories/transit"
	usersrepo "github.com/dmitrijs2005/carteira/internal/server/repositories/users"
)

// --- shared fakes for service tests ---

type fakeUsersRepo struct {
	createOut *models.User
	createErr error

	getOut *models.User
	getErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}

func (f *fakeUsersRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

type fakeDocumentsRepo struct {
	insertOut *models.Document
	insertErr error

	linkedID  int64
	linkedErr error

	upsertErr   error
	upsertedID  int64
	upsertCalls int

	deleteErr   error
	deletedID   int64
	deleteCalls int

	getOut *models.Document
	getErr error

	setOut *models.DocumentSet
	setErr error
}

func (f *fakeDocumentsRepo) Insert(ctx context.Context, doc *models.Document) (*models.Document, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	return f.insertOut, nil
}

func (f *fakeDocumentsRepo) LinkedID(ctx context.Context, userID int64, kind models.DocumentKind) (int64, error) {
	if f.linkedErr != nil {
		return 0, f.linkedErr
	}
	return f.linkedID, nil
}

func (f *fakeDocumentsRepo) UpsertLink(ctx context.Context, userID int64, kind models.DocumentKind, docID int64) error {
	f.upsertCalls++
	f.upsertedID = docID
	return f.upsertErr
}

func (f *fakeDocumentsRepo) Delete(ctx context.Context, kind models.DocumentKind, id int64) error {
	f.deleteCalls++
	f.deletedID = id
	return f.deleteErr
}

func (f *fakeDocumentsRepo) Get(ctx context.Context, userID int64, kind models.DocumentKind) (*models.Document, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeDocumentsRepo) GetSet(ctx context.Context, userID int64) (*models.DocumentSet, error) {
	if f.setErr != nil {
		return nil, f.setErr
	}
	return f.setOut, nil
}

type fakeTransitRepo struct {
	topUpOut *models.TransitAccount
	topUpErr error

	getOut *models.TransitAccount
	getErr error
}

func (f *fakeTransitRepo) TopUp(ctx context.Context, userID int64, amount models.Amount) (*models.TransitAccount, error) {
	if f.topUpErr != nil {
		return nil, f.topUpErr
	}
	return f.topUpOut, nil
}

func (f *fakeTransitRepo) Get(ctx context.Context, userID int64) (*models.TransitAccount, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

type fakeRepoManager struct {
	u  *fakeUsersRepo
	d  *fakeDocumentsRepo
	tr *fakeTransitRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error        { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository             { return m.u }
func (m *fakeRepoManager) Documents(db dbx.DBTX) documentsrepo.Repository     { return m.d }
func (m *fakeRepoManager) Transit(db dbx.DBTX) transitrepo.Repository         { return m.tr }
