package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/carteira/internal/common"
	"github.com/dmitrijs2005/carteira/internal/server/auth"
	"github.com/dmitrijs2005/carteira/internal/server/config"
	"github.com/dmitrijs2005/carteira/internal/server/models"
	"github.com/dmitrijs2005/carteira/internal/server/passwords"
	"github.com/dmitrijs2005/carteira/internal/server/repositories/repomanager"
)

func newAuthService(t *testing.T, rm repomanager.RepositoryManager) *AuthService {
	t.Helper()
	cfg := &config.Config{
		SecretKey:                   "k",
		AccessTokenValidityDuration: time.Hour,
	}
	return NewAuthService(nil, rm, cfg)
}

func TestRegister_Success(t *testing.T) {
	rm := &fakeRepoManager{u: &fakeUsersRepo{
		createOut: &models.User{ID: 1, Username: "alice"},
	}}
	s := newAuthService(t, rm)

	user, err := s.Register(context.Background(), "alice", "secret1")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if user.ID != 1 || user.Username != "alice" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestRegister_PasswordLength(t *testing.T) {
	s := newAuthService(t, &fakeRepoManager{u: &fakeUsersRepo{}})

	for _, password := range []string{"", "short", strings.Repeat("x", 31)} {
		_, err := s.Register(context.Background(), "alice", password)
		if !errors.Is(err, common.ErrorValidation) {
			t.Fatalf("password %q: want common.ErrorValidation, got %v", password, err)
		}
	}
}

func TestRegister_EmptyUsername(t *testing.T) {
	s := newAuthService(t, &fakeRepoManager{u: &fakeUsersRepo{}})

	_, err := s.Register(context.Background(), "", "secret1")
	if !errors.Is(err, common.ErrorValidation) {
		t.Fatalf("want common.ErrorValidation, got %v", err)
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	rm := &fakeRepoManager{u: &fakeUsersRepo{createErr: common.ErrorAlreadyExists}}
	s := newAuthService(t, rm)

	_, err := s.Register(context.Background(), "alice", "secret1")
	if !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("want common.ErrorAlreadyExists, got %v", err)
	}
}

func TestRegister_RepoFailure(t *testing.T) {
	rm := &fakeRepoManager{u: &fakeUsersRepo{createErr: errors.New("db down")}}
	s := newAuthService(t, rm)

	_, err := s.Register(context.Background(), "alice", "secret1")
	if !errors.Is(err, common.ErrorUnavailable) {
		t.Fatalf("want common.ErrorUnavailable, got %v", err)
	}
}

func TestLogin_Success(t *testing.T) {
	hash, err := passwords.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	rm := &fakeRepoManager{u: &fakeUsersRepo{
		getOut: &models.User{ID: 42, Username: "alice", PasswordHash: hash},
	}}
	s := newAuthService(t, rm)

	token, err := s.Login(context.Background(), "alice", "secret1")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	username, userID, err := auth.GetIdentityFromToken(token, []byte("k"))
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if username != "alice" || userID != 42 {
		t.Fatalf("unexpected identity: %s/%d", username, userID)
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	rm := &fakeRepoManager{u: &fakeUsersRepo{getErr: common.ErrorNotFound}}
	s := newAuthService(t, rm)

	_, err := s.Login(context.Background(), "ghost", "secret1")
	if !errors.Is(err, common.ErrorInvalidCredentials) {
		t.Fatalf("want common.ErrorInvalidCredentials, got %v", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := passwords.Hash("other-password")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	rm := &fakeRepoManager{u: &fakeUsersRepo{
		getOut: &models.User{ID: 42, Username: "alice", PasswordHash: hash},
	}}
	s := newAuthService(t, rm)

	_, err = s.Login(context.Background(), "alice", "secret1")
	if !errors.Is(err, common.ErrorInvalidCredentials) {
		t.Fatalf("want common.ErrorInvalidCredentials, got %v", err)
	}
}

func TestLogin_RepoFailure(t *testing.T) {
	rm := &fakeRepoManager{u: &fakeUsersRepo{getErr: errors.New("db down")}}
	s := newAuthService(t, rm)

	_, err := s.Login(context.Background(), "alice", "secret1")
	if !errors.Is(err, common.ErrorUnavailable) {
		t.Fatalf("want common.ErrorUnavailable, got %v", err)
	}
}
