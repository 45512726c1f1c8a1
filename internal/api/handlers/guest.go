package handlers

import (
	"log/slog"
	"net/http"

	"github.com/digiri/giriloyo-batik/internal/api/middleware"
	"github.com/digiri/giriloyo-batik/internal/models"
	service "github.com/digiri/giriloyo-batik/internal/services"
	"github.com/digiri/giriloyo-batik/internal/utils"
	"github.com/digiri/giriloyo-batik/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type GuestHandler struct {
	guestService service.GuestService
	validator    *validator.Validate
}

func NewGuestHandler(guestService service.GuestService) *GuestHandler {
	return &GuestHandler{guestService: guestService, validator: validator.New()}
}

// CreateSession godoc
//	@Summary		Start a guest session
//	@Description	Issues a new guest identity and a signed session token. No account is needed to shop.
//	@Tags			Guests
//	@Produce		json
//	@Success		201	{object}	models.GuestSession		"Guest session issued"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Router			/guests [post]
func (h *GuestHandler) CreateSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		session, err := h.guestService.CreateSession(r.Context())
		if err != nil {
			logger.Error("Failed to create guest session", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusCreated, session)
	}
}

// ClaimOrder godoc
//	@Summary		Claim an order
//	@Description	Re-attaches an order to the caller's guest session when the shipping email matches.
//	@Tags			Guests
//	@Accept			json
//	@Produce		json
//	@Param			claim	body		models.ClaimOrderRequest	true	"Order id and shipping email"
//	@Success		200		{object}	models.Order				"Order claimed"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		401		{object}	response.ErrorResponse		"Authentication required"
//	@Failure		404		{object}	response.ErrorResponse		"Order not found"
//	@Failure		429		{object}	response.ErrorResponse		"Too many attempts"
//	@Failure		500		{object}	response.ErrorResponse		"Internal server error"
//	@Security		BearerAuth
//	@Router			/guests/claim [post]
func (h *GuestHandler) ClaimOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := requireGuest(w, r)
		if !ok {
			return
		}

		var req models.ClaimOrderRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid claim order input")
			return
		}

		order, err := h.guestService.ClaimOrder(r.Context(), claims.GuestID, &req)
		if err != nil {
			logger.Warn("Order claim failed", slog.String("orderId", req.OrderID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Order claimed", slog.String("orderId", order.OrderID))
		response.Success(w, http.StatusOK, order)
	}
}
