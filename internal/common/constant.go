// Package common contains shared constants and sentinel errors used across
// carteira components.
package common

// AccessTokenCookieName is the HTTP cookie that carries the access token.
const AccessTokenCookieName = "access_token"

// BearerPrefix prepends the raw token in the cookie value. It must be
// stripped before verification.
const BearerPrefix = "Bearer "
