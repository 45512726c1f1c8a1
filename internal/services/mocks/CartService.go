package mocks

import (
	"context"

	"github.com/digiri/giriloyo-batik/internal/models"
	"github.com/stretchr/testify/mock"
)

type CartService struct {
	mock.Mock
}

func (_m *CartService) view(ret mock.Arguments) (*models.CartView, error) {
	var r0 *models.CartView
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.CartView)
	}

	return r0, ret.Error(1)
}

func (_m *CartService) GetCart(ctx context.Context, guestID string) (*models.CartView, error) {
	return _m.view(_m.Called(ctx, guestID))
}

func (_m *CartService) Snapshot(ctx context.Context, guestID string) (*models.Cart, error) {
	ret := _m.Called(ctx, guestID)

	var r0 *models.Cart
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.Cart)
	}

	return r0, ret.Error(1)
}

func (_m *CartService) AddItem(ctx context.Context, guestID string, req *models.AddItemRequest) (*models.CartView, error) {
	return _m.view(_m.Called(ctx, guestID, req))
}

func (_m *CartService) UpdateQuantity(ctx context.Context, guestID string, req *models.UpdateQuantityRequest) (*models.CartView, error) {
	return _m.view(_m.Called(ctx, guestID, req))
}

func (_m *CartService) RemoveItem(ctx context.Context, guestID string, req *models.RemoveItemRequest) (*models.CartView, error) {
	return _m.view(_m.Called(ctx, guestID, req))
}

func (_m *CartService) ItemCount(ctx context.Context, guestID string) (int, error) {
	ret := _m.Called(ctx, guestID)

	return ret.Int(0), ret.Error(1)
}

func (_m *CartService) Clear(ctx context.Context, guestID string) error {
	ret := _m.Called(ctx, guestID)

	return ret.Error(0)
}

func (_m *CartService) RemoveOrdered(ctx context.Context, guestID string, lines []models.CartItem) error {
	ret := _m.Called(ctx, guestID, lines)

	return ret.Error(0)
}

func (_m *CartService) Subscribe(guestID string) (<-chan models.CartChanged, func()) {
	ret := _m.Called(guestID)

	var r0 <-chan models.CartChanged
	switch v := ret.Get(0).(type) {
	case chan models.CartChanged:
		r0 = v
	case <-chan models.CartChanged:
		r0 = v
	}

	var r1 func()
	if v := ret.Get(1); v != nil {
		r1 = v.(func())
	}

	return r0, r1
}
