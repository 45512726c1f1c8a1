package mocks

import (
	"context"

	"github.com/digiri/giriloyo-batik/internal/models"
	"github.com/stretchr/testify/mock"
)

type NotificationService struct {
	mock.Mock
}

func (_m *NotificationService) SendEmail(ctx context.Context, req *models.EmailNotificationRequest) (*models.Notification, error) {
	ret := _m.Called(ctx, req)

	var r0 *models.Notification
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.Notification)
	}

	return r0, ret.Error(1)
}

func (_m *NotificationService) ListNotifications(ctx context.Context, page, size int) ([]*models.Notification, int, error) {
	ret := _m.Called(ctx, page, size)

	var r0 []*models.Notification
	if v := ret.Get(0); v != nil {
		r0 = v.([]*models.Notification)
	}

	return r0, ret.Int(1), ret.Error(2)
}
