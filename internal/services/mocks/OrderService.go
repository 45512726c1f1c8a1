package mocks

import (
	"context"

	"github.com/digiri/giriloyo-batik/internal/models"
	"github.com/stretchr/testify/mock"
)

type OrderService struct {
	mock.Mock
}

func order(ret mock.Arguments) (*models.Order, error) {
	var r0 *models.Order
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.Order)
	}

	return r0, ret.Error(1)
}

func (_m *OrderService) CreateOrder(ctx context.Context, o *models.Order) (*models.Order, error) {
	ret := _m.Called(ctx, o)

	if rf, ok := ret.Get(0).(func(context.Context, *models.Order) *models.Order); ok {
		return rf(ctx, o), ret.Error(1)
	}

	return order(ret)
}

func (_m *OrderService) GetOrderByID(ctx context.Context, orderID string) (*models.Order, error) {
	return order(_m.Called(ctx, orderID))
}

func (_m *OrderService) GetGuestOrder(ctx context.Context, guestID, orderID string) (*models.Order, error) {
	return order(_m.Called(ctx, guestID, orderID))
}

func (_m *OrderService) ListOrdersByGuest(ctx context.Context, guestID string, page, size int) ([]*models.Order, int, error) {
	ret := _m.Called(ctx, guestID, page, size)

	var r0 []*models.Order
	if v := ret.Get(0); v != nil {
		r0 = v.([]*models.Order)
	}

	return r0, ret.Int(1), ret.Error(2)
}

func (_m *OrderService) UpdateOrderPayment(ctx context.Context, update *models.PaymentUpdate) (*models.Order, bool, error) {
	ret := _m.Called(ctx, update)

	var r0 *models.Order
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.Order)
	}

	return r0, ret.Bool(1), ret.Error(2)
}

func (_m *OrderService) UpdateOrderStatus(ctx context.Context, orderID string, req *models.UpdateOrderStatusRequest) (*models.Order, error) {
	return order(_m.Called(ctx, orderID, req))
}

func (_m *OrderService) AttachPayment(ctx context.Context, orderID string, result *models.TransactionResult) (*models.Order, error) {
	return order(_m.Called(ctx, orderID, result))
}

func (_m *OrderService) AssignGuest(ctx context.Context, orderID, guestID string) (*models.Order, error) {
	return order(_m.Called(ctx, orderID, guestID))
}

func (_m *OrderService) Invalidate(ctx context.Context, orderID string) {
	_m.Called(ctx, orderID)
}
