package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type RateLimitRepository struct {
	mock.Mock
}

func (_m *RateLimitRepository) Allow(ctx context.Context, scope, subject string) (bool, int, int, error) {
	ret := _m.Called(ctx, scope, subject)

	return ret.Bool(0), ret.Int(1), ret.Int(2), ret.Error(3)
}
