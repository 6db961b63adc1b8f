package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/carteira/internal/common"
	"github.com/dmitrijs2005/carteira/internal/server/auth"
	"github.com/dmitrijs2005/carteira/internal/server/models"
)

type contextKey int

const identityKey contextKey = iota

// requireAuth resolves the session cookie into an Identity and stores it in
// the request context. Missing cookie, missing Bearer prefix and bad or
// expired tokens all produce the same 401 so a caller cannot tell them apart.
func (s *Server) requireAuth(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(common.AccessTokenCookieName)
		if err != nil {
			s.writeError(w, common.ErrorUnauthenticated, "")
			return
		}

		value, found := strings.CutPrefix(cookie.Value, common.BearerPrefix)
		if !found {
			s.writeError(w, common.ErrorUnauthenticated, "")
			return
		}

		username, userID, err := auth.GetIdentityFromToken(value, s.jwtSecret)
		if err != nil {
			s.writeError(w, common.ErrorUnauthenticated, "")
			return
		}

		identity := models.Identity{Username: username, UserID: userID}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), identityKey, identity)))
	})
}

// identityFrom returns the Identity placed in the context by requireAuth.
func identityFrom(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(models.Identity)
	return identity, ok
}
