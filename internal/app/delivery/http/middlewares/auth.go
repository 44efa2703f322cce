package middlewares

import (
	"context"
	"net/http"
	"simrs-service/internal/pkg/constvars"
	"simrs-service/internal/pkg/exceptions"
	"simrs-service/internal/pkg/utils"
	"strings"
)

// Authenticate verifies the signed role claim and stashes role and actor name
// into the request context. Role resolution itself happens in the upstream
// authentication service; we only trust its signature.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		role, actorName, err := utils.ParseRoleJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalid(err))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.ContextKeyRole, role)
		ctx = context.WithValue(ctx, constvars.ContextKeyActorName, actorName)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRoles gates a route to the named department roles. Admin passes
// everywhere.
func (m *Middlewares) RequireRoles(roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(roles)+1)
	for _, role := range roles {
		allowed[role] = true
	}
	allowed[constvars.RoleAdmin] = true

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, _ := r.Context().Value(constvars.ContextKeyRole).(string)
			if !allowed[role] {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotAuthorized(nil))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
