package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/digiri/giriloyo-batik/internal/api/handlers"
	appErrors "github.com/digiri/giriloyo-batik/internal/errors"
	"github.com/digiri/giriloyo-batik/internal/models"
	"github.com/digiri/giriloyo-batik/internal/services/mocks"
	"github.com/digiri/giriloyo-batik/internal/testutils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const validBookingBody = `{"packageType":"half-day","visitDate":"2030-05-04","participants":20,` +
	`"contactName":"Budi","email":"budi@example.com","phone":"081234567890","institution":"UGM"}`

func TestListPackagesHandler(t *testing.T) {
	// Arrange
	mockBookingService := new(mocks.BookingService)
	bookingHandler := handlers.NewBookingHandler(mockBookingService)

	mockBookingService.On("ListPackages").Return(models.TourPackages()).Once()

	req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/tours/packages", nil, nil)
	rr := httptest.NewRecorder()

	// Act
	bookingHandler.ListPackages().ServeHTTP(rr, req)

	// Assert
	assert.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Data []models.TourPackage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Len(t, body.Data, 3)
	assert.Equal(t, int64(150000), body.Data[0].Price)
	assert.Equal(t, models.MinTourParticipants, body.Data[0].MinParticipants)
}

func TestCreateBookingHandler(t *testing.T) {
	t.Run("Success - Booking Requested", func(t *testing.T) {
		// Arrange
		mockBookingService := new(mocks.BookingService)
		bookingHandler := handlers.NewBookingHandler(mockBookingService)

		mockBookingService.On("CreateBooking", mock.Anything, &models.BookingRequest{
			PackageID: "half-day", VisitDate: "2030-05-04", Participants: 20, Institution: "UGM",
			ContactName: "Budi", Email: "budi@example.com", Phone: "081234567890",
		}).Return(&models.TourBooking{ID: uuid.New(), Total: 3000000, WhatsAppURL: "https://wa.me/628816413617?text=Halo"}, nil).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/tours/bookings",
			bytes.NewReader([]byte(validBookingBody)), nil)
		rr := httptest.NewRecorder()

		// Act
		bookingHandler.CreateBooking().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Contains(t, rr.Body.String(), `"whatsappUrl":"https://wa.me/628816413617?text=Halo"`)
		mockBookingService.AssertExpectations(t)
	})

	invalid := []struct {
		name string
		body string
	}{
		{"Too Few Participants", `{"packageType":"half-day","visitDate":"2030-05-04","participants":19,"contactName":"Budi","email":"budi@example.com","phone":"0812"}`},
		{"Missing Visit Date", `{"packageType":"half-day","participants":20,"contactName":"Budi","email":"budi@example.com","phone":"0812"}`},
		{"Malformed Visit Date", `{"packageType":"half-day","visitDate":"04/05/2030","participants":20,"contactName":"Budi","email":"budi@example.com","phone":"0812"}`},
		{"Missing Contact Name", `{"packageType":"half-day","visitDate":"2030-05-04","participants":20,"email":"budi@example.com","phone":"0812"}`},
		{"Invalid Email", `{"packageType":"half-day","visitDate":"2030-05-04","participants":20,"contactName":"Budi","email":"budi","phone":"0812"}`},
		{"Missing Phone", `{"packageType":"half-day","visitDate":"2030-05-04","participants":20,"contactName":"Budi","email":"budi@example.com"}`},
		{"Unknown Package", `{"packageType":"weekend","visitDate":"2030-05-04","participants":20,"contactName":"Budi","email":"budi@example.com","phone":"0812"}`},
	}

	for _, tt := range invalid {
		t.Run("Failure - "+tt.name, func(t *testing.T) {
			// Arrange
			mockBookingService := new(mocks.BookingService)
			bookingHandler := handlers.NewBookingHandler(mockBookingService)

			req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/tours/bookings",
				bytes.NewReader([]byte(tt.body)), nil)
			rr := httptest.NewRecorder()

			// Act
			bookingHandler.CreateBooking().ServeHTTP(rr, req)

			// Assert
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			requireErrorCode(t, rr, appErrors.ErrCodeValidation)
			mockBookingService.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
		})
	}

	t.Run("Failure - Rate Limited", func(t *testing.T) {
		// Arrange
		mockBookingService := new(mocks.BookingService)
		bookingHandler := handlers.NewBookingHandler(mockBookingService)

		mockBookingService.On("CreateBooking", mock.Anything, mock.Anything).
			Return(nil, appErrors.TooManyRequestsError("Too many booking requests. Please try again later.")).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/tours/bookings",
			bytes.NewReader([]byte(validBookingBody)), nil)
		rr := httptest.NewRecorder()

		// Act
		bookingHandler.CreateBooking().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusTooManyRequests, rr.Code)
		requireErrorCode(t, rr, appErrors.ErrCodeTooManyRequests)
	})
}

func TestListBookingsHandler(t *testing.T) {
	// Arrange
	mockBookingService := new(mocks.BookingService)
	bookingHandler := handlers.NewBookingHandler(mockBookingService)

	mockBookingService.On("ListBookings", mock.Anything, 2, 5).
		Return([]*models.TourBooking{{PackageID: "study-tour", Participants: 30}}, 6, nil).Once()

	req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/admin/tours/bookings?page=2&pageSize=5", nil, nil)
	rr := httptest.NewRecorder()

	// Act
	bookingHandler.ListBookings().ServeHTTP(rr, req)

	// Assert
	assert.Equal(t, http.StatusOK, rr.Code)
	mockBookingService.AssertExpectations(t)
}
