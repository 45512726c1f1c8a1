package service

import (
	"context"
	"log/slog"

	"github.com/digiri/giriloyo-batik/internal/api/middleware"
	appErrors "github.com/digiri/giriloyo-batik/internal/errors"
	"github.com/digiri/giriloyo-batik/internal/models"
	repository "github.com/digiri/giriloyo-batik/internal/repositories"
	"github.com/digiri/giriloyo-batik/pkg/sendGrid"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

type NotificationService interface {
	SendEmail(ctx context.Context, req *models.EmailNotificationRequest) (*models.Notification, error)
	ListNotifications(ctx context.Context, page, size int) ([]*models.Notification, int, error)
}

type notificationService struct {
	repo         repository.NotificationRepository
	emailService sendGrid.EmailService
	strict       *bluemonday.Policy
	ugc          *bluemonday.Policy
}

func NewNotificationService(repo repository.NotificationRepository, emailService sendGrid.EmailService) NotificationService {
	return &notificationService{
		repo:         repo,
		emailService: emailService,
		strict:       bluemonday.StrictPolicy(),
		ugc:          bluemonday.UGCPolicy(),
	}
}

// SendEmail records the attempt, sends it and records the outcome. A send
// failure is returned after the notification is marked failed.
func (n *notificationService) SendEmail(ctx context.Context, req *models.EmailNotificationRequest) (*models.Notification, error) {
	logger := middleware.LoggerFromContext(ctx)

	clean := *req
	clean.Subject = n.strict.Sanitize(req.Subject)
	clean.HTMLContent = n.ugc.Sanitize(req.HTMLContent)

	notification := &models.Notification{
		ID:        uuid.New(),
		Type:      models.NotificationTypeEmail,
		Recipient: clean.To,
		Subject:   clean.Subject,
		Content:   clean.Content,
		Status:    models.StatusPending,
		OrderID:   clean.OrderID,
	}

	if err := n.repo.CreateNotification(ctx, notification); err != nil {
		return nil, appErrors.DatabaseError("Failed to create notification record").WithError(err)
	}

	if err := n.emailService.Send(ctx, &clean); err != nil {
		notification.Status = models.StatusFailed
		notification.ErrorMessage = err.Error()

		if updateErr := n.repo.UpdateNotificationStatus(ctx, notification.ID, models.StatusFailed, notification.ErrorMessage); updateErr != nil {
			logger.Error("Failed to record email failure", slog.String("notificationId", notification.ID.String()), slog.Any("error", updateErr))
		}

		return notification, appErrors.ThirdPartyError("Failed to send email").WithError(err)
	}

	notification.Status = models.StatusSent

	if err := n.repo.UpdateNotificationStatus(ctx, notification.ID, models.StatusSent, ""); err != nil {
		logger.Error("Email sent but status update failed", slog.String("notificationId", notification.ID.String()), slog.Any("error", err))
	}

	return notification, nil
}

func (n *notificationService) ListNotifications(ctx context.Context, page, size int) ([]*models.Notification, int, error) {

	if page < 1 {
		page = 1
	}

	if size < 1 || size > 100 {
		size = 10
	}

	notifications, total, err := n.repo.ListNotifications(ctx, page, size)
	if err != nil {
		return nil, 0, appErrors.DatabaseError("Failed to list notifications").WithError(err)
	}

	return notifications, total, nil
}
