package middlewares

import (
	"context"
	"medirecord-service/internal/app/services/shared/jwtmanager"
	"medirecord-service/internal/pkg/constvars"
	"medirecord-service/internal/pkg/exceptions"
	"medirecord-service/internal/pkg/utils"
	"net/http"
	"strings"
	"time"
)

// Authenticate rejects the request before any handler logic runs unless it
// carries a valid bearer token. On success the decoded claims are attached to
// the request context for downstream handlers and role guards.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		scheme, token, found := strings.Cut(authHeader, " ")
		token = strings.TrimSpace(token)
		if !found || token == "" || !strings.EqualFold(scheme, constvars.AuthSchemeBearer) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrAuthHeaderMalformed(nil))
			return
		}

		claims, err := m.JWTManager.Validate(token, time.Now())
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_CLAIMS_KEY, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole demands an exact role match. Stacks after Authenticate; a valid
// token with the wrong role is Forbidden, not Unauthenticated.
func (m *Middlewares) RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := SessionClaimsFromContext(r.Context())
			if !ok {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
				return
			}
			if claims.Role != role {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrRoleForbidden(nil, role))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func SessionClaimsFromContext(ctx context.Context) (*jwtmanager.SessionClaims, bool) {
	claims, ok := ctx.Value(constvars.CONTEXT_SESSION_CLAIMS_KEY).(*jwtmanager.SessionClaims)
	return claims, ok
}
