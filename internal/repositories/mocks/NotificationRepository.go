package mocks

import (
	"context"

	"github.com/digiri/giriloyo-batik/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type NotificationRepository struct {
	mock.Mock
}

func (_m *NotificationRepository) CreateNotification(ctx context.Context, notification *models.Notification) error {
	ret := _m.Called(ctx, notification)

	return ret.Error(0)
}

func (_m *NotificationRepository) UpdateNotificationStatus(ctx context.Context, id uuid.UUID, status models.NotificationStatus, errorMsg string) error {
	ret := _m.Called(ctx, id, status, errorMsg)

	return ret.Error(0)
}

func (_m *NotificationRepository) ListNotifications(ctx context.Context, page, size int) ([]*models.Notification, int, error) {
	ret := _m.Called(ctx, page, size)

	var r0 []*models.Notification
	if v := ret.Get(0); v != nil {
		r0 = v.([]*models.Notification)
	}

	return r0, ret.Int(1), ret.Error(2)
}
