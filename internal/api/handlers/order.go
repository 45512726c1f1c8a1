package handlers

import (
	"log/slog"
	"net/http"

	"github.com/digiri/giriloyo-batik/internal/api/middleware"
	"github.com/digiri/giriloyo-batik/internal/models"
	service "github.com/digiri/giriloyo-batik/internal/services"
	"github.com/digiri/giriloyo-batik/internal/utils"
	"github.com/digiri/giriloyo-batik/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type OrderHandler struct {
	orderService service.OrderService
	validator    *validator.Validate
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService, validator: validator.New()}
}

// GetOrder godoc
//	@Summary		Get an order by ID
//	@Description	Retrieves an order placed under the caller's guest session.
//	@Tags			Orders
//	@Produce		json
//	@Param			id	path		string					true	"Order ID"
//	@Success		200	{object}	models.Order			"Order"
//	@Failure		400	{object}	response.ErrorResponse	"Invalid order id"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		403	{object}	response.ErrorResponse	"Not the caller's order"
//	@Failure		404	{object}	response.ErrorResponse	"Order not found"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/orders/{id} [get]
func (h *OrderHandler) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := requireGuest(w, r)
		if !ok {
			return
		}

		orderID, err := utils.ParseOrderID(r)
		if err != nil {
			response.Error(w, err)
			return
		}

		order, err := h.orderService.GetGuestOrder(r.Context(), claims.GuestID, orderID)
		if err != nil {
			logger.Warn("Failed to get order", slog.String("orderId", orderID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, order)
	}
}

// GetOrderStatus godoc
//	@Summary		Get an order's status
//	@Description	Order, payment and certificate status of one of the caller's orders.
//	@Tags			Orders
//	@Produce		json
//	@Param			id	path		string					true	"Order ID"
//	@Success		200	{object}	models.OrderStatusView	"Status"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		403	{object}	response.ErrorResponse	"Not the caller's order"
//	@Failure		404	{object}	response.ErrorResponse	"Order not found"
//	@Security		BearerAuth
//	@Router			/orders/{id}/status [get]
func (h *OrderHandler) GetOrderStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := requireGuest(w, r)
		if !ok {
			return
		}

		orderID, err := utils.ParseOrderID(r)
		if err != nil {
			response.Error(w, err)
			return
		}

		order, err := h.orderService.GetGuestOrder(r.Context(), claims.GuestID, orderID)
		if err != nil {
			logger.Warn("Failed to get order status", slog.String("orderId", orderID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, order.StatusView())
	}
}

// ListOrders godoc
//	@Summary		List the caller's orders
//	@Description	Newest first.
//	@Tags			Orders
//	@Produce		json
//	@Param			page		query		int											false	"Page number (default: 1)"				minimum(1)
//	@Param			pageSize	query		int											false	"Items per page (default: 10, max: 100)"	minimum(1)	maximum(100)
//	@Success		200			{object}	models.PaginatedResponse{Data=[]models.Order}	"Orders"
//	@Failure		401			{object}	response.ErrorResponse						"Authentication required"
//	@Failure		500			{object}	response.ErrorResponse						"Internal server error"
//	@Security		BearerAuth
//	@Router			/orders [get]
func (h *OrderHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := requireGuest(w, r)
		if !ok {
			return
		}

		page, pageSize := utils.ParsePagination(r)
		logger = logger.With(slog.Int("page", page), slog.Int("pageSize", pageSize))

		orders, total, err := h.orderService.ListOrdersByGuest(r.Context(), claims.GuestID, page, pageSize)
		if err != nil {
			logger.Error("Failed to list orders", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Orders listed", slog.Int("count", len(orders)), slog.Int("total", total))
		response.Success(w, http.StatusOK, models.PaginatedResponse{
			Data:     orders,
			Total:    total,
			Page:     page,
			PageSize: pageSize,
		})
	}
}

// UpdateOrderStatus godoc
//	@Summary		Update order status (Admin)
//	@Description	Moves an order along pending, paid, processing, shipped, delivered or to cancelled. A tracking number may accompany shipping.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Order ID"
//	@Param			status	body		models.UpdateOrderStatusRequest	true	"New status"
//	@Success		200		{object}	models.Order					"Updated order"
//	@Failure		400		{object}	response.ErrorResponse			"Validation error or transition not allowed"
//	@Failure		401		{object}	response.ErrorResponse			"Admin key is required"
//	@Failure		403		{object}	response.ErrorResponse			"Invalid admin key"
//	@Failure		404		{object}	response.ErrorResponse			"Order not found"
//	@Failure		409		{object}	response.ErrorResponse			"Concurrent update"
//	@Failure		500		{object}	response.ErrorResponse			"Internal server error"
//	@Security		AdminKey
//	@Router			/admin/orders/{id}/status [patch]
func (h *OrderHandler) UpdateOrderStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		orderID, err := utils.ParseOrderID(r)
		if err != nil {
			response.Error(w, err)
			return
		}

		logger = logger.With(slog.String("orderId", orderID))

		var req models.UpdateOrderStatusRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid order status input")
			return
		}

		order, err := h.orderService.UpdateOrderStatus(r.Context(), orderID, &req)
		if err != nil {
			logger.Error("Failed to update order status", slog.String("status", string(req.Status)), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Order status updated", slog.String("status", string(order.Status)))
		response.Success(w, http.StatusOK, order)
	}
}
