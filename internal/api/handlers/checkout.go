package handlers

import (
	"log/slog"
	"net/http"

	"github.com/digiri/giriloyo-batik/internal/models"
	service "github.com/digiri/giriloyo-batik/internal/services"
	"github.com/digiri/giriloyo-batik/internal/utils"
	"github.com/digiri/giriloyo-batik/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
	validator       *validator.Validate
}

func NewCheckoutHandler(checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService, validator: validator.New()}
}

// Checkout godoc
//	@Summary		Place an order from the cart
//	@Description	Snapshots the cart into an order, opens a payment transaction for it and empties the cart. The response carries the payment token and redirect URL.
//	@Tags			Checkout
//	@Accept			json
//	@Produce		json
//	@Param			checkout	body		models.CheckoutRequest	true	"Shipping details"
//	@Success		201			{object}	models.CheckoutResponse	"Order placed"
//	@Failure		400			{object}	response.ErrorResponse	"Validation error or empty cart"
//	@Failure		401			{object}	response.ErrorResponse	"Authentication required"
//	@Failure		429			{object}	response.ErrorResponse	"Too many checkouts"
//	@Failure		500			{object}	response.ErrorResponse	"Payment gateway or internal error"
//	@Security		BearerAuth
//	@Router			/checkout [post]
func (h *CheckoutHandler) Checkout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := requireGuest(w, r)
		if !ok {
			return
		}

		var req models.CheckoutRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid checkout input")
			return
		}

		result, err := h.checkoutService.Checkout(r.Context(), claims.GuestID, &req)
		if err != nil {
			logger.Error("Checkout failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Checkout completed", slog.String("orderId", result.Order.OrderID), slog.Int64("total", result.Order.Total))
		response.Success(w, http.StatusCreated, result)
	}
}

// RetryPayment godoc
//	@Summary		Pay for a pending order again
//	@Description	Returns a payment token for a still-pending order of the caller, keeping the same order id.
//	@Tags			Checkout
//	@Produce		json
//	@Param			id	path		string					true	"Order ID"
//	@Success		200	{object}	models.CheckoutResponse	"Payment token"
//	@Failure		400	{object}	response.ErrorResponse	"Order is no longer payable"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		403	{object}	response.ErrorResponse	"Not the caller's order"
//	@Failure		404	{object}	response.ErrorResponse	"Order not found"
//	@Failure		500	{object}	response.ErrorResponse	"Payment gateway or internal error"
//	@Security		BearerAuth
//	@Router			/orders/{id}/pay [post]
func (h *CheckoutHandler) RetryPayment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := requireGuest(w, r)
		if !ok {
			return
		}

		orderID, err := utils.ParseOrderID(r)
		if err != nil {
			response.Error(w, err)
			return
		}

		logger = logger.With(slog.String("orderId", orderID))

		result, err := h.checkoutService.RetryPayment(r.Context(), claims.GuestID, orderID)
		if err != nil {
			logger.Error("Payment retry failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Payment token issued for retry")
		response.Success(w, http.StatusOK, result)
	}
}
