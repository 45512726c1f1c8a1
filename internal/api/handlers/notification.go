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

type NotificationHandler struct {
	notificationService service.NotificationService
	validator           *validator.Validate
}

func NewNotificationHandler(notificationService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		validator:           validator.New(),
	}
}

// SendEmail godoc
//	@Summary		Send an email (Admin)
//	@Description	Sends an email to a shopper and records the attempt.
//	@Tags			Notifications
//	@Accept			json
//	@Produce		json
//	@Param			email	body		models.EmailNotificationRequest	true	"Email"
//	@Success		201		{object}	models.Notification				"Email sent"
//	@Failure		400		{object}	response.ErrorResponse			"Validation error"
//	@Failure		403		{object}	response.ErrorResponse			"Invalid admin key"
//	@Failure		500		{object}	response.ErrorResponse			"Email provider or internal error"
//	@Security		AdminKey
//	@Router			/admin/notifications/email [post]
func (h *NotificationHandler) SendEmail() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.EmailNotificationRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid notification input")
			return
		}

		notification, err := h.notificationService.SendEmail(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to send email", slog.String("orderId", req.OrderID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Email sent", slog.String("notificationId", notification.ID.String()))
		response.Success(w, http.StatusCreated, notification)
	}
}

// ListNotifications godoc
//	@Summary		List notifications (Admin)
//	@Description	Every recorded email attempt, newest first.
//	@Tags			Notifications
//	@Produce		json
//	@Param			page		query		int													false	"Page number (default: 1)"				minimum(1)
//	@Param			pageSize	query		int													false	"Items per page (default: 10, max: 100)"	minimum(1)	maximum(100)
//	@Success		200			{object}	models.PaginatedResponse{Data=[]models.Notification}	"Notifications"
//	@Failure		403			{object}	response.ErrorResponse								"Invalid admin key"
//	@Failure		500			{object}	response.ErrorResponse								"Internal server error"
//	@Security		AdminKey
//	@Router			/notifications [get]
func (h *NotificationHandler) ListNotifications() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		page, pageSize := utils.ParsePagination(r)

		notifications, total, err := h.notificationService.ListNotifications(r.Context(), page, pageSize)
		if err != nil {
			logger.Error("Failed to list notifications", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.PaginatedResponse{
			Data:     notifications,
			Total:    total,
			Page:     page,
			PageSize: pageSize,
		})
	}
}
