package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/airscope/airscope/internal/api/models"
	"github.com/airscope/airscope/internal/auth"
)

// subjectKey is the context key for the authenticated token subject.
type subjectKey struct{}

const bearerPrefix = "Bearer "

// AdminAuth guards a route group with admin bearer tokens. When tokens has
// no signing key every request is refused with 503, so an unconfigured
// deployment never exposes the admin routes.
func AdminAuth(tokens *auth.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if tokens == nil || !tokens.Enabled() {
				writeProblem(w, r, models.NewServiceUnavailable(GetRequestID(r.Context()), "admin endpoints are disabled"))
				return
			}

			header := r.Header.Get("Authorization")
			if header == "" {
				writeUnauthorized(w, r, "missing authorization header")
				return
			}
			if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
				writeUnauthorized(w, r, "invalid authorization header format")
				return
			}
			token := strings.TrimSpace(header[len(bearerPrefix):])
			if token == "" {
				writeUnauthorized(w, r, "missing bearer token")
				return
			}

			claims, err := tokens.Validate(token)
			if err != nil {
				switch {
				case errors.Is(err, auth.ErrForbiddenRole):
					writeProblem(w, r, models.NewForbidden(GetRequestID(r.Context()), "token lacks the admin role"))
				case errors.Is(err, auth.ErrTokenExpired):
					writeUnauthorized(w, r, "token has expired")
				default:
					writeUnauthorized(w, r, "invalid token")
				}
				return
			}

			ctx := context.WithValue(r.Context(), subjectKey{}, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// writeUnauthorized writes a 401 problem. The response package imports this
// one, so problems are written directly here.
func writeUnauthorized(w http.ResponseWriter, r *http.Request, detail string) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="airscope-admin"`)
	writeProblem(w, r, models.NewUnauthorized(GetRequestID(r.Context()), detail))
}

func writeProblem(w http.ResponseWriter, r *http.Request, p *models.Problem) {
	p.WithInstance(r.URL.Path).Write(w)
}

// GetSubject returns the authenticated token subject, or "" outside
// AdminAuth.
func GetSubject(ctx context.Context) string {
	if s, ok := ctx.Value(subjectKey{}).(string); ok {
		return s
	}
	return ""
}
