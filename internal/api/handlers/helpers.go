package handlers

import (
	"log/slog"
	"net/http"

	"github.com/digiri/giriloyo-batik/internal/api/middleware"
	appErrors "github.com/digiri/giriloyo-batik/internal/errors"
	"github.com/digiri/giriloyo-batik/internal/models"
	"github.com/digiri/giriloyo-batik/internal/utils/response"
)

// requireGuest writes a 401 and reports false when the request carries no guest session.
func requireGuest(w http.ResponseWriter, r *http.Request) (*models.GuestClaims, *slog.Logger, bool) {
	logger := middleware.LoggerFromContext(r.Context())

	claims, ok := middleware.GuestFromContext(r.Context())
	if !ok {
		logger.Warn("Request without guest session")
		response.Error(w, appErrors.UnauthorizedError("Authentication required"))
		return nil, logger, false
	}

	return claims, logger.With(slog.String("guestId", claims.GuestID)), true
}
