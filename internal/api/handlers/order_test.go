package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/digiri/giriloyo-batik/internal/api/handlers"
	appErrors "github.com/digiri/giriloyo-batik/internal/errors"
	"github.com/digiri/giriloyo-batik/internal/models"
	"github.com/digiri/giriloyo-batik/internal/services/mocks"
	"github.com/digiri/giriloyo-batik/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mintedOrder() *models.Order {
	return &models.Order{
		OrderID: testOrderID,
		GuestID: testGuestID,
		Items: []models.OrderItem{
			{LineNo: 1, ProductID: 1, Name: "Batik Tulis Motif Sekar Jagad", UnitPrice: 450000, Quantity: 1,
				NFTStatus: models.NFTStatusMinted, NFTID: "nft-1", NFTTransactionHash: "0xabc"},
		},
		Total:         475000,
		Status:        models.OrderStatusPaid,
		PaymentStatus: models.PaymentStatusSettlement,
	}
}

func TestGetOrderHandler(t *testing.T) {
	pathParams := map[string]string{"id": testOrderID}

	t.Run("Success - Derived Certificate Fields", func(t *testing.T) {
		// Arrange
		mockOrderService := new(mocks.OrderService)
		orderHandler := handlers.NewOrderHandler(mockOrderService)

		mockOrderService.On("GetGuestOrder", mock.Anything, testGuestID, testOrderID).Return(mintedOrder(), nil).Once()

		req := testutils.CreateTestRequestWithGuest(http.MethodGet, "/api/v1/orders/"+testOrderID, nil, testGuestID, pathParams)
		rr := httptest.NewRecorder()

		// Act
		orderHandler.GetOrder().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var got struct {
			OrderID            string   `json:"orderId"`
			NFTStatus          string   `json:"nftStatus"`
			NFTIDs             []string `json:"nftIds"`
			NFTTransactionHash string   `json:"nftTransactionHash"`
		}
		require.NoError(t, testutils.DecodeData(rr.Body.Bytes(), &got))
		assert.Equal(t, testOrderID, got.OrderID)
		assert.Equal(t, "minted", got.NFTStatus)
		assert.Equal(t, []string{"nft-1"}, got.NFTIDs)
		assert.Equal(t, "0xabc", got.NFTTransactionHash)
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		// Arrange
		mockOrderService := new(mocks.OrderService)
		orderHandler := handlers.NewOrderHandler(mockOrderService)

		mockOrderService.On("GetGuestOrder", mock.Anything, testGuestID, testOrderID).Return(nil, appErrors.NotFoundError("Order not found")).Once()

		req := testutils.CreateTestRequestWithGuest(http.MethodGet, "/api/v1/orders/"+testOrderID, nil, testGuestID, pathParams)
		rr := httptest.NewRecorder()

		// Act
		orderHandler.GetOrder().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Failure - Another Guest", func(t *testing.T) {
		// Arrange
		mockOrderService := new(mocks.OrderService)
		orderHandler := handlers.NewOrderHandler(mockOrderService)

		mockOrderService.On("GetGuestOrder", mock.Anything, "guest_other", testOrderID).
			Return(nil, appErrors.ForbiddenError("You do not have access to this order")).Once()

		req := testutils.CreateTestRequestWithGuest(http.MethodGet, "/api/v1/orders/"+testOrderID, nil, "guest_other", pathParams)
		rr := httptest.NewRecorder()

		// Act
		orderHandler.GetOrder().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}

func TestGetOrderStatusHandler(t *testing.T) {
	t.Run("Success - Status View", func(t *testing.T) {
		// Arrange
		mockOrderService := new(mocks.OrderService)
		orderHandler := handlers.NewOrderHandler(mockOrderService)

		mockOrderService.On("GetGuestOrder", mock.Anything, testGuestID, testOrderID).Return(mintedOrder(), nil).Once()

		req := testutils.CreateTestRequestWithGuest(http.MethodGet, "/api/v1/orders/"+testOrderID+"/status", nil, testGuestID,
			map[string]string{"id": testOrderID})
		rr := httptest.NewRecorder()

		// Act
		orderHandler.GetOrderStatus().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var view models.OrderStatusView
		require.NoError(t, testutils.DecodeData(rr.Body.Bytes(), &view))
		assert.Equal(t, models.OrderStatusPaid, view.Status)
		assert.Equal(t, models.PaymentStatusSettlement, view.PaymentStatus)
		assert.Equal(t, models.NFTStatusMinted, view.NFTStatus)
	})
}

func TestListOrdersHandler(t *testing.T) {
	t.Run("Success - Default Pagination", func(t *testing.T) {
		// Arrange
		mockOrderService := new(mocks.OrderService)
		orderHandler := handlers.NewOrderHandler(mockOrderService)

		mockOrderService.On("ListOrdersByGuest", mock.Anything, testGuestID, 1, 10).Return([]*models.Order{mintedOrder()}, 1, nil).Once()

		req := testutils.CreateTestRequestWithGuest(http.MethodGet, "/api/v1/orders", nil, testGuestID, nil)
		rr := httptest.NewRecorder()

		// Act
		orderHandler.ListOrders().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		mockOrderService.AssertExpectations(t)
	})
}

func TestUpdateOrderStatusHandler(t *testing.T) {
	pathParams := map[string]string{"id": testOrderID}

	t.Run("Success - Shipped With Tracking Number", func(t *testing.T) {
		// Arrange
		mockOrderService := new(mocks.OrderService)
		orderHandler := handlers.NewOrderHandler(mockOrderService)
		shipped := mintedOrder()
		shipped.Status = models.OrderStatusShipped
		shipped.TrackingNumber = "JNE123456"

		mockOrderService.On("UpdateOrderStatus", mock.Anything, testOrderID, &models.UpdateOrderStatusRequest{
			Status: models.OrderStatusShipped, TrackingNumber: "JNE123456",
		}).Return(shipped, nil).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodPatch, "/api/v1/admin/orders/"+testOrderID+"/status",
			bytes.NewReader([]byte(`{"status":"shipped","trackingNumber":"JNE123456"}`)), pathParams)
		rr := httptest.NewRecorder()

		// Act
		orderHandler.UpdateOrderStatus().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		mockOrderService.AssertExpectations(t)
	})

	t.Run("Failure - Unknown Status", func(t *testing.T) {
		// Arrange
		mockOrderService := new(mocks.OrderService)
		orderHandler := handlers.NewOrderHandler(mockOrderService)

		req := testutils.CreateTestRequestWithoutContext(http.MethodPatch, "/api/v1/admin/orders/"+testOrderID+"/status",
			bytes.NewReader([]byte(`{"status":"lost"}`)), pathParams)
		rr := httptest.NewRecorder()

		// Act
		orderHandler.UpdateOrderStatus().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockOrderService.AssertNotCalled(t, "UpdateOrderStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - Invalid Transition", func(t *testing.T) {
		// Arrange
		mockOrderService := new(mocks.OrderService)
		orderHandler := handlers.NewOrderHandler(mockOrderService)

		mockOrderService.On("UpdateOrderStatus", mock.Anything, testOrderID, mock.Anything).
			Return(nil, appErrors.InvalidTransitionError(string(models.OrderStatusDelivered), string(models.OrderStatusPending))).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodPatch, "/api/v1/admin/orders/"+testOrderID+"/status",
			bytes.NewReader([]byte(`{"status":"pending"}`)), pathParams)
		rr := httptest.NewRecorder()

		// Act
		orderHandler.UpdateOrderStatus().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		requireErrorCode(t, rr, appErrors.ErrCodeInvalidTransition)
	})
}
