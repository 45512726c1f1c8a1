package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	appErrors "github.com/digiri/giriloyo-batik/internal/errors"
	"github.com/digiri/giriloyo-batik/internal/models"
	"github.com/digiri/giriloyo-batik/internal/repositories/mocks"
	service "github.com/digiri/giriloyo-batik/internal/services"
	svcMocks "github.com/digiri/giriloyo-batik/internal/services/mocks"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testJWTKey = []byte("test-guest-signing-key")

func setupGuestServiceTest() (service.GuestService, *svcMocks.OrderService, *mocks.RateLimitRepository) {
	mockOrders := new(svcMocks.OrderService)
	mockLimiter := new(mocks.RateLimitRepository)

	return service.NewGuestService(mockOrders, mockLimiter, testJWTKey, 30*24*time.Hour), mockOrders, mockLimiter
}

func TestCreateSession(t *testing.T) {
	t.Run("Success - Signed Guest Token", func(t *testing.T) {
		// Arrange
		guestService, _, _ := setupGuestServiceTest()

		// Act
		session, err := guestService.CreateSession(context.Background())

		// Assert
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(session.GuestID, models.GuestIDPrefix))
		assert.WithinDuration(t, time.Now().Add(30*24*time.Hour), session.ExpiresAt, time.Minute)

		claims := &models.GuestClaims{}
		token, err := jwt.ParseWithClaims(session.Token, claims, func(*jwt.Token) (interface{}, error) { return testJWTKey, nil })
		require.NoError(t, err)
		assert.True(t, token.Valid)
		assert.Equal(t, session.GuestID, claims.GuestID)
		assert.Equal(t, jwt.SigningMethodHS256.Alg(), token.Method.Alg())
	})

	t.Run("Success - Every Session Is Distinct", func(t *testing.T) {
		// Arrange
		guestService, _, _ := setupGuestServiceTest()

		// Act
		first, err1 := guestService.CreateSession(context.Background())
		second, err2 := guestService.CreateSession(context.Background())

		// Assert
		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.NotEqual(t, first.GuestID, second.GuestID)
	})
}

func TestClaimOrder(t *testing.T) {
	ctx := context.Background()
	newGuest := "guest_0b7d3c2a-1e4f-4a6b-8c9d-5e6f7a8b9c0d"

	t.Run("Success - Order Moves To Caller", func(t *testing.T) {
		// Arrange
		guestService, mockOrders, mockLimiter := setupGuestServiceTest()
		claimed := newTestOrder(models.OrderStatusPaid)
		claimed.GuestID = newGuest

		mockLimiter.On("Allow", mock.Anything, "claim", newGuest).Return(true, 4, 0, nil).Once()
		mockOrders.On("GetOrderByID", mock.Anything, testOrderID).Return(newTestOrder(models.OrderStatusPaid), nil).Once()
		mockOrders.On("AssignGuest", mock.Anything, testOrderID, newGuest).Return(claimed, nil).Once()

		// Act
		order, err := guestService.ClaimOrder(ctx, newGuest, &models.ClaimOrderRequest{OrderID: testOrderID, Email: " SRI@Example.com "})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, newGuest, order.GuestID)
		mockOrders.AssertExpectations(t)
	})

	t.Run("Success - Already Owned", func(t *testing.T) {
		// Arrange
		guestService, mockOrders, mockLimiter := setupGuestServiceTest()

		mockLimiter.On("Allow", mock.Anything, "claim", testGuestID).Return(true, 4, 0, nil).Once()
		mockOrders.On("GetOrderByID", mock.Anything, testOrderID).Return(newTestOrder(models.OrderStatusPaid), nil).Once()

		// Act
		order, err := guestService.ClaimOrder(ctx, testGuestID, &models.ClaimOrderRequest{OrderID: testOrderID, Email: "sri@example.com"})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, testGuestID, order.GuestID)
		mockOrders.AssertNotCalled(t, "AssignGuest", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - Wrong Email Looks Like Missing Order", func(t *testing.T) {
		// Arrange
		guestService, mockOrders, mockLimiter := setupGuestServiceTest()

		mockLimiter.On("Allow", mock.Anything, "claim", newGuest).Return(true, 4, 0, nil).Once()
		mockOrders.On("GetOrderByID", mock.Anything, testOrderID).Return(newTestOrder(models.OrderStatusPaid), nil).Once()

		// Act
		_, err := guestService.ClaimOrder(ctx, newGuest, &models.ClaimOrderRequest{OrderID: testOrderID, Email: "someone@example.com"})

		// Assert
		appErr := requireAppError(t, err, appErrors.ErrCodeNotFound)
		assert.Equal(t, "Order not found", appErr.Message)
		mockOrders.AssertNotCalled(t, "AssignGuest", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - Rate Limited", func(t *testing.T) {
		// Arrange
		guestService, mockOrders, mockLimiter := setupGuestServiceTest()

		mockLimiter.On("Allow", mock.Anything, "claim", newGuest).Return(false, 0, 42, nil).Once()

		// Act
		_, err := guestService.ClaimOrder(ctx, newGuest, &models.ClaimOrderRequest{OrderID: testOrderID, Email: "sri@example.com"})

		// Assert
		appErr := requireAppError(t, err, appErrors.ErrCodeTooManyRequests)
		assert.Equal(t, "retry after 42 seconds", appErr.Detail)
		mockOrders.AssertNotCalled(t, "GetOrderByID", mock.Anything, mock.Anything)
	})
}
