package mocks

import (
	"context"

	"github.com/digiri/giriloyo-batik/internal/models"
	"github.com/stretchr/testify/mock"
)

type MintDispatcher struct {
	mock.Mock
}

func (_m *MintDispatcher) Dispatch(ctx context.Context, job models.MintJob) error {
	ret := _m.Called(ctx, job)

	return ret.Error(0)
}

func (_m *MintDispatcher) Close() error {
	ret := _m.Called()

	return ret.Error(0)
}
