package middleware

import (
	"context"
	"net/http"
	"strings"

	"liquidador/internal/domain/auth"
	"liquidador/internal/transport/http/api"
)

type ctxKey string

const ctxKeyAdmin ctxKey = "admin"

type AdminContext struct {
	Username string
	Role     string
}

// Auth parses a bearer token when present and stores the admin identity
// in the request context. Requests without a valid token pass through
// anonymously; RequireAdmin does the gating.
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := auth.ParseToken(secret, parts[1])
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyAdmin, AdminContext{
				Username: claims.Username,
				Role:     claims.Role,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetAdmin(ctx context.Context) (AdminContext, bool) {
	admin, ok := ctx.Value(ctxKeyAdmin).(AdminContext)
	return admin, ok
}

// RequireAdmin guards the mutating administration endpoints.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		admin, ok := GetAdmin(r.Context())
		if !ok {
			api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", GetRequestID(r.Context()))
			return
		}
		if admin.Role != auth.RoleAdmin {
			api.Fail(w, http.StatusForbidden, "forbidden", "admin access required", GetRequestID(r.Context()))
			return
		}
		next.ServeHTTP(w, r)
	})
}
