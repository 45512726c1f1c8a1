package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

type Cache struct {
	mock.Mock
}

func (_m *Cache) Get(ctx context.Context, key string, value any) (bool, error) {
	ret := _m.Called(ctx, key, value)

	if rf, ok := ret.Get(0).(func(context.Context, string, any) bool); ok {
		return rf(ctx, key, value), ret.Error(1)
	}

	return ret.Bool(0), ret.Error(1)
}

func (_m *Cache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	ret := _m.Called(ctx, key, value, ttl)

	return ret.Error(0)
}

func (_m *Cache) Delete(ctx context.Context, keys ...string) error {
	args := []any{ctx}
	for _, k := range keys {
		args = append(args, k)
	}

	ret := _m.Called(args...)

	return ret.Error(0)
}

func (_m *Cache) Close() error {
	ret := _m.Called()

	return ret.Error(0)
}
