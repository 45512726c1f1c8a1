package mocks

import (
	"context"

	"github.com/digiri/giriloyo-batik/internal/models"
	"github.com/stretchr/testify/mock"
)

type PaymentEventRepository struct {
	mock.Mock
}

func (_m *PaymentEventRepository) RecordEvent(ctx context.Context, event *models.PaymentEvent) (bool, error) {
	ret := _m.Called(ctx, event)

	return ret.Bool(0), ret.Error(1)
}

func (_m *PaymentEventRepository) ReleaseEvent(ctx context.Context, key string) error {
	ret := _m.Called(ctx, key)

	return ret.Error(0)
}
