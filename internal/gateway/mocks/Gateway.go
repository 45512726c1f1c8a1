package mocks

import (
	"context"
	"net/http"

	"github.com/digiri/giriloyo-batik/internal/models"
	"github.com/stretchr/testify/mock"
)

type Gateway struct {
	mock.Mock
}

func (_m *Gateway) Name() string {
	ret := _m.Called()

	return ret.String(0)
}

func (_m *Gateway) CreateTransaction(ctx context.Context, req *models.TransactionRequest) (*models.TransactionResult, error) {
	ret := _m.Called(ctx, req)

	var r0 *models.TransactionResult
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.TransactionResult)
	}

	return r0, ret.Error(1)
}

func (_m *Gateway) ParseNotification(ctx context.Context, payload []byte, header http.Header) (*models.PaymentEvent, error) {
	ret := _m.Called(ctx, payload, header)

	var r0 *models.PaymentEvent
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.PaymentEvent)
	}

	return r0, ret.Error(1)
}
