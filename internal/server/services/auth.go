// Package services contains server-side business logic. This file implements
// AuthService, which handles registration and credential checks and mints
// the session JWT.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/carteira/internal/common"
	"github.com/dmitrijs2005/carteira/internal/dbx"
	"github.com/dmitrijs2005/carteira/internal/server/auth"
	"github.com/dmitrijs2005/carteira/internal/server/config"
	"github.com/dmitrijs2005/carteira/internal/server/models"
	"github.com/dmitrijs2005/carteira/internal/server/passwords"
	"github.com/dmitrijs2005/carteira/internal/server/repositories/repomanager"
)

const (
	minPasswordLength = 6
	maxPasswordLength = 30
	maxUsernameLength = 50
)

// AuthService provides authentication-related operations:
// - Register: create users with a bcrypt password hash
// - Login: verify credentials and mint a session token
type AuthService struct {
	db                          dbx.DBTX
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

// NewAuthService constructs an AuthService using repositories and server config.
func NewAuthService(db dbx.DBTX, m repomanager.RepositoryManager, cfg *config.Config) *AuthService {
	return &AuthService{
		db:                          db,
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// Register creates a new user. Credentials are validated before storage is
// touched; a taken username surfaces as common.ErrorAlreadyExists.
func (s *AuthService) Register(ctx context.Context, username, password string) (*models.User, error) {
	if err := validateCredentials(username, password); err != nil {
		return nil, err
	}

	hash, err := passwords.Hash(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.Create(ctx, &models.User{Username: username, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, err
		}
		return nil, common.ErrorUnavailable
	}

	return user, nil
}

// Login verifies the username/password pair and returns a signed session
// token. Unknown username and wrong password both come back as
// common.ErrorInvalidCredentials so callers cannot probe for accounts.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorInvalidCredentials
		}
		return "", common.ErrorUnavailable
	}

	if !passwords.Verify(password, user.PasswordHash) {
		return "", common.ErrorInvalidCredentials
	}

	token, err := auth.GenerateToken(user.Username, user.ID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}

// TokenTTL exposes the configured session lifetime, used by the HTTP layer
// to set the cookie Max-Age.
func (s *AuthService) TokenTTL() time.Duration {
	return s.accessTokenValidityDuration
}

func validateCredentials(username, password string) error {
	if username == "" || len(username) > maxUsernameLength {
		return fmt.Errorf("%w: username must be between 1 and %d characters", common.ErrorValidation, maxUsernameLength)
	}
	if len(password) < minPasswordLength || len(password) > maxPasswordLength {
		return fmt.Errorf("%w: password must be between %d and %d characters", common.ErrorValidation, minPasswordLength, maxPasswordLength)
	}
	return nil
}
