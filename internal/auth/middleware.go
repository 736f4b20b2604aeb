package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/saulo-duarte/sambat-api/internal/access"
	"github.com/saulo-duarte/sambat-api/internal/apperr"
	"github.com/saulo-duarte/sambat-api/internal/config"
)

type contextKey string

const claimsKey contextKey = "claims"

func tokenFromRequest(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
		return ""
	}
	if cookie, err := r.Cookie("jwt"); err == nil {
		return cookie.Value
	}
	return ""
}

func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := config.WithContext(r.Context())

		tokenStr := tokenFromRequest(r)
		if tokenStr == "" {
			apperr.Write(w, apperr.ErrUnauthorized)
			return
		}

		claims, err := ValidateJWT(tokenStr)
		if err != nil {
			log.WithError(err).Warn("Rejected invalid token")
			apperr.Write(w, apperr.ErrUnauthorized)
			return
		}
		if _, err := uuid.Parse(claims.UserID); err != nil {
			log.WithError(err).Warn("Token carries a malformed user id")
			apperr.Write(w, apperr.ErrUnauthorized)
			return
		}

		ctx := ContextWithClaims(r.Context(), claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func ContextWithClaims(ctx context.Context, claims *Claims) context.Context {
	ctx = context.WithValue(ctx, claimsKey, claims)
	return config.WithUserID(ctx, claims.UserID)
}

func GetUserClaimsFromContext(ctx context.Context) (*Claims, error) {
	claims, ok := ctx.Value(claimsKey).(*Claims)
	if !ok || claims == nil {
		return nil, apperr.ErrUnauthorized
	}
	return claims, nil
}

// ActorFromContext returns the authenticated caller the policy reasons about.
func ActorFromContext(ctx context.Context) (access.Actor, error) {
	claims, err := GetUserClaimsFromContext(ctx)
	if err != nil {
		return access.Actor{}, err
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return access.Actor{}, apperr.ErrUnauthorized
	}
	return access.Actor{ID: id, IsAdmin: claims.IsAdmin()}, nil
}
