package mocks

import (
	"context"

	"github.com/digiri/giriloyo-batik/internal/models"
	"github.com/stretchr/testify/mock"
)

type BookingRepository struct {
	mock.Mock
}

func (_m *BookingRepository) CreateBooking(ctx context.Context, booking *models.TourBooking) error {
	ret := _m.Called(ctx, booking)

	return ret.Error(0)
}

func (_m *BookingRepository) ListBookings(ctx context.Context, page, size int) ([]*models.TourBooking, int, error) {
	ret := _m.Called(ctx, page, size)

	var r0 []*models.TourBooking
	if v := ret.Get(0); v != nil {
		r0 = v.([]*models.TourBooking)
	}

	return r0, ret.Int(1), ret.Error(2)
}
