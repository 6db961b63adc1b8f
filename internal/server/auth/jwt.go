// Package auth issues and verifies the signed identity tokens used by the
// wallet API. Tokens are compact HS256 JWTs carrying the username (sub),
// the numeric user id (uid) and an absolute expiry.
package auth

import (
	"time"

	"github.com/dmitrijs2005/carteira/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the claim set embedded in every access token: the registered
// claims (sub, exp, jti) plus the numeric user id.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"uid"`
}

// GenerateToken mints a signed access token for the given user. The subject
// claim holds the username, uid holds the user id, and the expiry is
// now + validityDuration. The signature covers the full claim set, so any
// mutation invalidates the token.
func GenerateToken(username string, userID int64, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
			ID:        uuid.NewString(),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetIdentityFromToken verifies tokenString and returns the username and user
// id it carries. Every failure mode (bad signature, garbage input, missing
// claims, expiry) maps to common.ErrInvalidToken: callers must not be able to
// tell an expired token from a tampered one.
func GetIdentityFromToken(tokenString string, secretKey []byte) (string, int64, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", 0, common.ErrInvalidToken
	}

	if !token.Valid {
		return "", 0, common.ErrInvalidToken
	}

	if claims.Subject == "" || claims.UserID == 0 {
		return "", 0, common.ErrInvalidToken
	}

	return claims.Subject, claims.UserID, nil
}
