package mocks

import (
	"context"

	"github.com/digiri/giriloyo-batik/internal/models"
	"github.com/sendgrid/sendgrid-go"
	"github.com/stretchr/testify/mock"
)

type EmailService struct {
	mock.Mock
}

func (_m *EmailService) Send(ctx context.Context, req *models.EmailNotificationRequest) error {
	ret := _m.Called(ctx, req)

	return ret.Error(0)
}

func (_m *EmailService) GetSendGridClient() *sendgrid.Client {
	ret := _m.Called()

	var r0 *sendgrid.Client
	if v := ret.Get(0); v != nil {
		r0 = v.(*sendgrid.Client)
	}

	return r0
}
