package mocks

import (
	"context"
	"net/http"

	"github.com/digiri/giriloyo-batik/internal/models"
	"github.com/stretchr/testify/mock"
)

type PaymentService struct {
	mock.Mock
}

func (_m *PaymentService) CreatePayment(ctx context.Context, req *models.CreatePaymentRequest) (*models.PaymentResponse, error) {
	ret := _m.Called(ctx, req)

	var r0 *models.PaymentResponse
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.PaymentResponse)
	}

	return r0, ret.Error(1)
}

func (_m *PaymentService) HandleNotification(ctx context.Context, gatewayName string, payload []byte, header http.Header) error {
	ret := _m.Called(ctx, gatewayName, payload, header)

	return ret.Error(0)
}
