package httpapi

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/carteira/internal/common"
	"github.com/dmitrijs2005/carteira/internal/dbx"
	"github.com/dmitrijs2005/carteira/internal/logging"
	"github.com/dmitrijs2005/carteira/internal/server/auth"
	"github.com/dmitrijs2005/carteira/internal/server/config"
	"github.com/dmitrijs2005/carteira/internal/server/models"
	documentsrepo "github.com/dmitrijs2005/carteira/internal/server/repositories/documents"
	transitrepo "github.com/dmitrijs2005/carteira/internal/server/repositories/transit"
	usersrepo "github.com/dmitrijs2005/carteira/internal/server/repositories/users"
	"github.com/dmitrijs2005/carteira/internal/server/services"
)

const testSecret = "test-secret"

// --- repository fakes ---

type fakeUsersRepo struct {
	createOut *models.User
	createErr error
	getOut    *models.User
	getErr    error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	u.ID = 1
	return u, nil
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
	getOut    *models.Document
	getErr    error
	setOut    *models.DocumentSet
	setErr    error

	deletedID int64
}

func (f *fakeDocumentsRepo) Insert(ctx context.Context, doc *models.Document) (*models.Document, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	if f.insertOut != nil {
		return f.insertOut, nil
	}
	doc.ID = 1
	return doc, nil
}

func (f *fakeDocumentsRepo) LinkedID(ctx context.Context, userID int64, kind models.DocumentKind) (int64, error) {
	return f.linkedID, nil
}

func (f *fakeDocumentsRepo) UpsertLink(ctx context.Context, userID int64, kind models.DocumentKind, docID int64) error {
	return nil
}

func (f *fakeDocumentsRepo) Delete(ctx context.Context, kind models.DocumentKind, id int64) error {
	f.deletedID = id
	return nil
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
	getOut   *models.TransitAccount
	getErr   error
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

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error    { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository         { return m.u }
func (m *fakeRepoManager) Documents(db dbx.DBTX) documentsrepo.Repository { return m.d }
func (m *fakeRepoManager) Transit(db dbx.DBTX) transitrepo.Repository     { return m.tr }

// --- server construction ---

func testConfig() *config.Config {
	return &config.Config{
		EndpointAddrHTTP:            ":0",
		SecretKey:                   testSecret,
		AccessTokenValidityDuration: 20 * time.Minute,
		HealthCheckURL:              "http://127.0.0.1:1",
		RequestTimeout:              2 * time.Second,
	}
}

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewJSONHandler(io.Discard, nil)))
}

// newTestServer wires a Server over fake repositories and a sqlmock database.
// The sqlmock handle backs transactions and the health probe.
func newTestServer(t *testing.T, rm *fakeRepoManager) (*Server, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	cfg := testConfig()
	return NewServer(cfg, discardLogger(),
		services.NewAuthService(db, rm, cfg),
		services.NewDocumentsService(db, rm),
		services.NewTransitService(db, rm),
		services.NewChatbotService(),
		services.NewHealthService(db, cfg),
	), mock
}

// sessionCookie mints a valid token for the given identity, shaped exactly
// like the cookie handleLogin sets.
func sessionCookie(t *testing.T, username string, userID int64) *http.Cookie {
	t.Helper()

	token, err := auth.GenerateToken(username, userID, []byte(testSecret), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	return &http.Cookie{Name: common.AccessTokenCookieName, Value: common.BearerPrefix + token}
}

func doRequest(t *testing.T, s *Server, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)
	return rec
}
