package mocks

import (
	"context"

	"github.com/digiri/giriloyo-batik/internal/models"
	"github.com/stretchr/testify/mock"
)

type OrderRepository struct {
	mock.Mock
}

func (_m *OrderRepository) CreateOrder(ctx context.Context, order *models.Order) error {
	ret := _m.Called(ctx, order)

	return ret.Error(0)
}

func (_m *OrderRepository) GetOrderByID(ctx context.Context, orderID string) (*models.Order, error) {
	ret := _m.Called(ctx, orderID)

	var r0 *models.Order
	if rf, ok := ret.Get(0).(func(context.Context, string) *models.Order); ok {
		r0 = rf(ctx, orderID)
	} else if v := ret.Get(0); v != nil {
		r0 = v.(*models.Order)
	}

	return r0, ret.Error(1)
}

func (_m *OrderRepository) ListOrdersByGuest(ctx context.Context, guestID string, page, size int) ([]*models.Order, int, error) {
	ret := _m.Called(ctx, guestID, page, size)

	var r0 []*models.Order
	if v := ret.Get(0); v != nil {
		r0 = v.([]*models.Order)
	}

	return r0, ret.Int(1), ret.Error(2)
}

func (_m *OrderRepository) UpdateOrder(ctx context.Context, order *models.Order) error {
	ret := _m.Called(ctx, order)

	if rf, ok := ret.Get(0).(func(context.Context, *models.Order) error); ok {
		return rf(ctx, order)
	}

	return ret.Error(0)
}

func (_m *OrderRepository) ClaimItems(ctx context.Context, orderID string, lineNos []int, from []models.NFTStatus) ([]int, error) {
	ret := _m.Called(ctx, orderID, lineNos, from)

	var r0 []int
	if v := ret.Get(0); v != nil {
		r0 = v.([]int)
	}

	return r0, ret.Error(1)
}

func (_m *OrderRepository) MarkItemMinted(ctx context.Context, orderID string, lineNo int, result *models.MintResult) error {
	ret := _m.Called(ctx, orderID, lineNo, result)

	return ret.Error(0)
}

func (_m *OrderRepository) MarkItemFailed(ctx context.Context, orderID string, lineNo int, reason string) error {
	ret := _m.Called(ctx, orderID, lineNo, reason)

	return ret.Error(0)
}
