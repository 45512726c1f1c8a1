package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/digiri/giriloyo-batik/internal/api/middleware"
	appErrors "github.com/digiri/giriloyo-batik/internal/errors"
	"github.com/digiri/giriloyo-batik/internal/models"
	service "github.com/digiri/giriloyo-batik/internal/services"
	"github.com/digiri/giriloyo-batik/internal/utils"
	"github.com/digiri/giriloyo-batik/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

const maxNotificationBytes = 64 << 10

type PaymentHandler struct {
	paymentService service.PaymentService
	validator      *validator.Validate
}

func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService, validator: validator.New()}
}

// CreatePayment godoc
//	@Summary		Create a payment transaction
//	@Description	Opens a gateway transaction for an order id. The gross amount is recomputed from the items, shipping and certificate fee.
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			payment	body		models.CreatePaymentRequest	true	"Order, customer and items"
//	@Success		200		{object}	models.PaymentResponse		"Payment token and redirect URL"
//	@Failure		400		{object}	response.ErrorResponse		"Missing required fields"
//	@Failure		401		{object}	response.ErrorResponse		"Authentication required"
//	@Failure		500		{object}	response.ErrorResponse		"Payment gateway error"
//	@Security		BearerAuth
//	@Router			/payments [post]
func (h *PaymentHandler) CreatePayment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		_, logger, ok := requireGuest(w, r)
		if !ok {
			return
		}

		var req models.CreatePaymentRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.Error(w, appErrors.BadRequestError("Invalid request body").WithDetail(err.Error()))
			return
		}

		if err := utils.ValidateStruct(h.validator, &req); err != nil {
			logger.Warn("Payment request incomplete", slog.Any("error", err))
			response.Error(w, appErrors.BadRequestError("Missing required fields").WithDetail(err.Error()))
			return
		}

		logger = logger.With(slog.String("orderId", req.OrderID))

		payment, err := h.paymentService.CreatePayment(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create payment", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Payment transaction created")
		response.Success(w, http.StatusOK, payment)
	}
}

// Notification returns the webhook endpoint of one gateway. Bodies follow the
// gateways' expectations: {"received":true} or {"error":"..."}.
//
//	@Summary		Payment notification
//	@Description	Receives a gateway payment notification, verifies it and applies it to the order. Redeliveries are acknowledged without side effects.
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	models.WebhookAck	"Acknowledged"
//	@Failure		400	{object}	map[string]string	"Unverifiable payload"
//	@Failure		404	{object}	map[string]string	"Order not found"
//	@Failure		500	{object}	map[string]string	"Internal error"
//	@Router			/payments/notification [post]
//	@Router			/payments/webhook/stripe [post]
func (h *PaymentHandler) Notification(gateway string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context()).With(slog.String("gateway", gateway))

		payload, err := io.ReadAll(io.LimitReader(r.Body, maxNotificationBytes))
		if err != nil || len(payload) == 0 {
			logger.Warn("Unreadable payment notification", slog.Any("error", err))
			response.WriteJson(w, http.StatusBadRequest, map[string]string{"error": "Invalid notification"})
			return
		}

		if err := h.paymentService.HandleNotification(r.Context(), gateway, payload, r.Header); err != nil {
			status, message := http.StatusInternalServerError, "Internal server error"
			if appErr, ok := appErrors.IsAppError(err); ok {
				status, message = appErr.StatusCode, appErr.Message
			}

			logger.Error("Payment notification failed", slog.Int("status", status), slog.Any("error", err))
			response.WriteJson(w, status, map[string]string{"error": message})
			return
		}

		response.WriteJson(w, http.StatusOK, models.WebhookAck{Received: true})
	}
}
