package mocks

import (
	"context"

	"github.com/digiri/giriloyo-batik/internal/models"
	"github.com/stretchr/testify/mock"
)

type CheckoutService struct {
	mock.Mock
}

func (_m *CheckoutService) Checkout(ctx context.Context, guestID string, req *models.CheckoutRequest) (*models.CheckoutResponse, error) {
	ret := _m.Called(ctx, guestID, req)

	var r0 *models.CheckoutResponse
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.CheckoutResponse)
	}

	return r0, ret.Error(1)
}

func (_m *CheckoutService) RetryPayment(ctx context.Context, guestID, orderID string) (*models.CheckoutResponse, error) {
	ret := _m.Called(ctx, guestID, orderID)

	var r0 *models.CheckoutResponse
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.CheckoutResponse)
	}

	return r0, ret.Error(1)
}
