package mocks

import (
	"context"

	"github.com/digiri/giriloyo-batik/internal/models"
	"github.com/stretchr/testify/mock"
)

type CartRepository struct {
	mock.Mock
}

func (_m *CartRepository) GetCart(ctx context.Context, guestID string) (*models.Cart, error) {
	ret := _m.Called(ctx, guestID)

	var r0 *models.Cart
	if rf, ok := ret.Get(0).(func(context.Context, string) *models.Cart); ok {
		r0 = rf(ctx, guestID)
	} else if v := ret.Get(0); v != nil {
		r0 = v.(*models.Cart)
	}

	return r0, ret.Error(1)
}

func (_m *CartRepository) SaveCart(ctx context.Context, cart *models.Cart) error {
	ret := _m.Called(ctx, cart)

	if rf, ok := ret.Get(0).(func(context.Context, *models.Cart) error); ok {
		return rf(ctx, cart)
	}

	return ret.Error(0)
}
