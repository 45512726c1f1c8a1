package mocks

import (
	"context"

	"github.com/digiri/giriloyo-batik/internal/models"
	"github.com/stretchr/testify/mock"
)

type GuestService struct {
	mock.Mock
}

func (_m *GuestService) CreateSession(ctx context.Context) (*models.GuestSession, error) {
	ret := _m.Called(ctx)

	var r0 *models.GuestSession
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.GuestSession)
	}

	return r0, ret.Error(1)
}

func (_m *GuestService) ClaimOrder(ctx context.Context, guestID string, req *models.ClaimOrderRequest) (*models.Order, error) {
	ret := _m.Called(ctx, guestID, req)

	var r0 *models.Order
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.Order)
	}

	return r0, ret.Error(1)
}
