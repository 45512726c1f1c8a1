package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	appErrors "github.com/digiri/giriloyo-batik/internal/errors"
	"github.com/digiri/giriloyo-batik/internal/models"
	"github.com/digiri/giriloyo-batik/internal/utils/response"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type contextKey uuid.UUID

var GuestContextKey = contextKey(uuid.New())

var errSigningMethod = errors.New("unexpected signing method")

type AuthMiddleware struct {
	jwtKey []byte
}

func NewAuthMiddleware(jwtKey []byte) *AuthMiddleware {

	return &AuthMiddleware{jwtKey: jwtKey}

}

// Authenticate admits requests carrying a guest session token issued by this service.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := LoggerFromContext(r.Context())

		authHeader := r.Header.Get("Authorization")

		if authHeader == "" {
			logger.Warn("Missing authorization header")
			response.Error(w, appErrors.UnauthorizedError("Authorization header is required"))
			return
		}

		// Bearer <token>
		tokenParts := strings.Split(authHeader, " ")

		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			logger.Warn("Invalid authorization header format")
			response.Error(w, appErrors.UnauthorizedError("Invalid authorization format"))
			return
		}

		claims := &models.GuestClaims{}

		token, err := jwt.ParseWithClaims(tokenParts[1], claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				logger.Error("Unexpected signing method used in JWT", slog.Any("alg", t.Header["alg"]))
				return nil, errSigningMethod
			}
			return m.jwtKey, nil
		})

		if err != nil || !token.Valid {
			logger.Warn("Guest token rejected", slog.Any("error", err))
			response.Error(w, appErrors.UnauthorizedError("Invalid or expired token"))
			return
		}

		if !strings.HasPrefix(claims.GuestID, models.GuestIDPrefix) {
			logger.Warn("Guest token without guest id")
			response.Error(w, appErrors.UnauthorizedError("Invalid token"))
			return
		}

		ctx := context.WithValue(r.Context(), GuestContextKey, claims)

		requestScopedLogger := logger.With(slog.String("guestId", claims.GuestID))
		ctx = context.WithValue(ctx, LoggerKey, requestScopedLogger)

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

func GuestFromContext(ctx context.Context) (*models.GuestClaims, bool) {
	claims, ok := ctx.Value(GuestContextKey).(*models.GuestClaims)

	return claims, ok
}
