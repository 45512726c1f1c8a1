package mocks

import (
	"context"

	"github.com/digiri/giriloyo-batik/internal/models"
	"github.com/stretchr/testify/mock"
)

type BookingService struct {
	mock.Mock
}

func (_m *BookingService) ListPackages() []models.TourPackage {
	ret := _m.Called()

	var r0 []models.TourPackage
	if v := ret.Get(0); v != nil {
		r0 = v.([]models.TourPackage)
	}

	return r0
}

func (_m *BookingService) CreateBooking(ctx context.Context, req *models.BookingRequest) (*models.TourBooking, error) {
	ret := _m.Called(ctx, req)

	var r0 *models.TourBooking
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.TourBooking)
	}

	return r0, ret.Error(1)
}

func (_m *BookingService) ListBookings(ctx context.Context, page, size int) ([]*models.TourBooking, int, error) {
	ret := _m.Called(ctx, page, size)

	var r0 []*models.TourBooking
	if v := ret.Get(0); v != nil {
		r0 = v.([]*models.TourBooking)
	}

	return r0, ret.Int(1), ret.Error(2)
}
