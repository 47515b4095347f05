package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/ecolinkdev/ecolink-back/api/responses"
	pkgauth "github.com/ecolinkdev/ecolink-back/pkg/auth"
	"github.com/ecolinkdev/ecolink-back/pkg/config"
	pkgerrors "github.com/ecolinkdev/ecolink-back/pkg/errors"
	"github.com/ecolinkdev/ecolink-back/pkg/logger"
)

// Auth validates a bearer token and seeds the request context with the
// claims. Missing, malformed, and expired tokens all answer 401.
func Auth(cfg config.JWTConfig, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get("Authorization"))
			if raw == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			token := raw
			if strings.HasPrefix(strings.ToLower(token), "bearer ") {
				token = strings.TrimSpace(token[7:])
			}
			if token == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			claims, err := pkgauth.ParseAccessToken(cfg, token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token"))
				return
			}

			ctx := context.WithValue(r.Context(), ctxUserID, claims.UserID.String())
			if claims.SystemRole != nil {
				ctx = context.WithValue(ctx, ctxRole, *claims.SystemRole)
			}

			if logg != nil {
				fields := map[string]any{
					"user_id":      claims.UserID.String(),
					"account_type": string(claims.AccountType),
				}
				if claims.SystemRole != nil {
					fields["actor_role"] = *claims.SystemRole
				}
				ctx = logg.WithFields(ctx, fields)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
