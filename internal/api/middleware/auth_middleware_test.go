package middleware_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/digiri/giriloyo-batik/internal/api/middleware"
	"github.com/digiri/giriloyo-batik/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testJwtKey = []byte("test-secret-key-123456789012345")

const testGuestID = "guest_6f1c2b7e-5d1a-4c8e-9b3f-0a2d4e6f8a10"

func createTestToken(guestID string, duration time.Duration, key any, method jwt.SigningMethod) (string, error) {
	claims := &models.GuestClaims{
		GuestID: guestID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   guestID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(duration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(method, claims)

	return token.SignedString(key)
}

func withTestLogger(req *http.Request) *http.Request {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return req.WithContext(context.WithValue(req.Context(), middleware.LoggerKey, logger))
}

func TestAuthMiddleware(t *testing.T) {
	// Arrange
	authMiddleware := middleware.NewAuthMiddleware(testJwtKey)

	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GuestFromContext(r.Context())
		require.True(t, ok, "guest claims should be in context")
		assert.Equal(t, testGuestID, claims.GuestID)

		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte(`{"success": true}`))
		require.NoError(t, err)
	})

	token := func(guestID string, duration time.Duration, key any, method jwt.SigningMethod) string {
		signed, err := createTestToken(guestID, duration, key, method)
		require.NoError(t, err)

		return "Bearer " + signed
	}

	unauthorized := func(message string) string {
		return `{"success": false, "error": {"code": "UNAUTHORIZED", "message": "` + message + `"}}`
	}

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Success - Valid Token",
			authHeader:     token(testGuestID, time.Hour, testJwtKey, jwt.SigningMethodHS256),
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success": true}`,
		},
		{
			name:           "Fail - Missing Authorization Header",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   unauthorized("Authorization header is required"),
		},
		{
			name:           "Fail - Invalid Authorization Header Format (No Bearer)",
			authHeader:     "InvalidTokenFormat",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   unauthorized("Invalid authorization format"),
		},
		{
			name:           "Fail - Invalid Token (Malformed)",
			authHeader:     "Bearer not.a.valid.token",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   unauthorized("Invalid or expired token"),
		},
		{
			name:           "Fail - Invalid Token (Wrong Signing Key)",
			authHeader:     token(testGuestID, time.Hour, []byte("different-secret-key-0987654321"), jwt.SigningMethodHS256),
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   unauthorized("Invalid or expired token"),
		},
		{
			name:           "Fail - Unsigned Token",
			authHeader:     token(testGuestID, time.Hour, jwt.UnsafeAllowNoneSignatureType, jwt.SigningMethodNone),
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   unauthorized("Invalid or expired token"),
		},
		{
			name:           "Fail - Expired Token",
			authHeader:     token(testGuestID, -time.Hour, testJwtKey, jwt.SigningMethodHS256),
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   unauthorized("Invalid or expired token"),
		},
		{
			name:           "Fail - Token Without Guest Id",
			authHeader:     token("user_42", time.Hour, testJwtKey, jwt.SigningMethodHS256),
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   unauthorized("Invalid token"),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := withTestLogger(httptest.NewRequest(http.MethodGet, "/", nil))
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}

			rr := httptest.NewRecorder()

			// Act
			authMiddleware.Authenticate(nextHandler).ServeHTTP(rr, req)

			// Assert
			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}

func TestGuestFromContext(t *testing.T) {
	t.Run("Missing", func(t *testing.T) {
		_, ok := middleware.GuestFromContext(context.Background())
		assert.False(t, ok)
	})
}
