package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/digiri/giriloyo-batik/internal/api/middleware"
	"github.com/digiri/giriloyo-batik/internal/cache"
	appErrors "github.com/digiri/giriloyo-batik/internal/errors"
	"github.com/digiri/giriloyo-batik/internal/models"
	repository "github.com/digiri/giriloyo-batik/internal/repositories"
)

const estimatedDeliveryDays = 14

type OrderService interface {
	CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error)
	GetOrderByID(ctx context.Context, orderID string) (*models.Order, error)
	// GetGuestOrder is GetOrderByID restricted to the order's owner.
	GetGuestOrder(ctx context.Context, guestID, orderID string) (*models.Order, error)
	ListOrdersByGuest(ctx context.Context, guestID string, page, size int) ([]*models.Order, int, error)
	// UpdateOrderPayment applies a gateway-confirmed payment state. The bool
	// reports whether this call moved the order into paid.
	UpdateOrderPayment(ctx context.Context, update *models.PaymentUpdate) (*models.Order, bool, error)
	UpdateOrderStatus(ctx context.Context, orderID string, req *models.UpdateOrderStatusRequest) (*models.Order, error)
	AttachPayment(ctx context.Context, orderID string, result *models.TransactionResult) (*models.Order, error)
	AssignGuest(ctx context.Context, orderID, guestID string) (*models.Order, error)
	// Invalidate drops the cached copy after writes made outside this service.
	Invalidate(ctx context.Context, orderID string)
}

type orderService struct {
	repo  repository.OrderRepository
	cache cache.Cache
	now   func() time.Time
}

func NewOrderService(repo repository.OrderRepository, cache cache.Cache) OrderService {
	return &orderService{repo: repo, cache: cache, now: time.Now}
}

// CreateOrder assigns the order id, recomputes totals from the lines and
// derives the starting status from the payment status.
func (s *orderService) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	logger := middleware.LoggerFromContext(ctx)

	if len(order.Items) == 0 {
		return nil, appErrors.BadRequestError("Cannot create order without items")
	}

	if order.PaymentStatus == "" {
		order.PaymentStatus = models.PaymentStatusPending
	}

	order.Status = models.StatusForPayment(order.PaymentStatus)
	order.ComputeTotals()

	for i := range order.Items {
		order.Items[i].LineNo = i + 1
		order.Items[i].NFTStatus = models.NFTStatusPending
	}

	for attempt := 1; attempt <= maxWriteAttempts; attempt++ {
		now := s.now()
		order.OrderID = models.NewOrderID(now)
		order.EstimatedDelivery = now.AddDate(0, 0, estimatedDeliveryDays).UTC()

		err := s.repo.CreateOrder(ctx, order)
		if err == nil {
			logger.Info("Order created", slog.String("orderId", order.OrderID), slog.Int64("total", order.Total))
			return order, nil
		}

		if !errors.Is(err, repository.ErrDuplicateOrderID) {
			return nil, appErrors.DatabaseError("Failed to create order").WithError(err)
		}

		logger.Warn("Order id collision, regenerating", slog.String("orderId", order.OrderID))
	}

	return nil, appErrors.ConflictError("Failed to allocate an order id")
}

func (s *orderService) GetOrderByID(ctx context.Context, orderID string) (*models.Order, error) {
	logger := middleware.LoggerFromContext(ctx)

	var order models.Order

	found, err := s.cache.Get(ctx, cache.OrderKey(orderID), &order)
	if err != nil {
		logger.Warn("Order cache read failed", slog.String("orderId", orderID), slog.Any("error", err))
	}

	if found {
		return &order, nil
	}

	loaded, err := s.fetch(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, cache.OrderKey(orderID), loaded, 0); err != nil {
		logger.Warn("Order cache write failed", slog.String("orderId", orderID), slog.Any("error", err))
	}

	return loaded, nil
}

func (s *orderService) fetch(ctx context.Context, orderID string) (*models.Order, error) {
	order, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.NotFoundError("Order not found").WithError(err)
		}
		return nil, appErrors.DatabaseError("Failed to fetch order").WithError(err)
	}

	return order, nil
}

func (s *orderService) GetGuestOrder(ctx context.Context, guestID, orderID string) (*models.Order, error) {
	order, err := s.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.GuestID != guestID {
		middleware.LoggerFromContext(ctx).Warn("Order requested by another guest", slog.String("orderId", orderID))
		return nil, appErrors.ForbiddenError("You do not have access to this order")
	}

	return order, nil
}

func (s *orderService) ListOrdersByGuest(ctx context.Context, guestID string, page, size int) ([]*models.Order, int, error) {

	if page < 1 {
		page = 1
	}

	if size < 1 || size > 100 {
		size = 10
	}

	orders, total, err := s.repo.ListOrdersByGuest(ctx, guestID, page, size)
	if err != nil {
		return nil, 0, appErrors.DatabaseError("Failed to fetch orders").WithError(err)
	}

	return orders, total, nil
}

// mutate reloads the order, applies fn and writes it back under the version
// check. fn returns false to leave the order untouched.
func (s *orderService) mutate(ctx context.Context, orderID string, fn func(*models.Order) (bool, error)) (*models.Order, error) {
	logger := middleware.LoggerFromContext(ctx)

	for attempt := 1; attempt <= maxWriteAttempts; attempt++ {
		order, err := s.fetch(ctx, orderID)
		if err != nil {
			return nil, err
		}

		changed, err := fn(order)
		if err != nil {
			return nil, err
		}

		if !changed {
			return order, nil
		}

		err = s.repo.UpdateOrder(ctx, order)
		if err == nil {
			s.Invalidate(ctx, orderID)
			return order, nil
		}

		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.NotFoundError("Order not found").WithError(err)
		}

		if !errors.Is(err, repository.ErrVersionConflict) {
			return nil, appErrors.DatabaseError("Failed to update order").WithError(err)
		}

		logger.Debug("Order version conflict, retrying", slog.String("orderId", orderID), slog.Int("attempt", attempt))
	}

	return nil, appErrors.ConflictError("Order is being modified concurrently, please retry")
}

func (s *orderService) UpdateOrderPayment(ctx context.Context, update *models.PaymentUpdate) (*models.Order, bool, error) {
	logger := middleware.LoggerFromContext(ctx).With(slog.String("orderId", update.OrderID))

	resolution := models.ResolvePayment(update.PaymentStatus, update.FraudStatus)

	if !resolution.Apply {
		logger.Info("Payment notification leaves order unchanged",
			slog.String("transactionStatus", string(update.PaymentStatus)), slog.String("fraudStatus", update.FraudStatus))

		order, err := s.fetch(ctx, update.OrderID)
		return order, false, err
	}

	becamePaid := false

	order, err := s.mutate(ctx, update.OrderID, func(o *models.Order) (bool, error) {
		becamePaid = false

		if o.Status != resolution.Status && !o.Status.CanTransitionTo(resolution.Status) {
			logger.Warn("Ignoring payment transition",
				slog.String("from", string(o.Status)), slog.String("to", string(resolution.Status)))
			return false, nil
		}

		if o.Status == resolution.Status && o.PaymentStatus == update.PaymentStatus && o.TransactionID == update.TransactionID {
			return false, nil
		}

		becamePaid = resolution.Mint && o.Status != models.OrderStatusPaid
		o.Status = resolution.Status
		o.PaymentStatus = update.PaymentStatus

		if update.TransactionID != "" {
			o.TransactionID = update.TransactionID
		}

		if update.PaymentMethod != "" {
			o.PaymentMethod = update.PaymentMethod
		}

		return true, nil
	})
	if err != nil {
		return nil, false, err
	}

	return order, becamePaid, nil
}

func (s *orderService) UpdateOrderStatus(ctx context.Context, orderID string, req *models.UpdateOrderStatusRequest) (*models.Order, error) {
	return s.mutate(ctx, orderID, func(o *models.Order) (bool, error) {
		changed := false

		if o.Status != req.Status {
			if !o.Status.CanTransitionTo(req.Status) {
				return false, appErrors.InvalidTransitionError(string(o.Status), string(req.Status))
			}

			o.Status = req.Status
			changed = true
		}

		if req.TrackingNumber != "" && req.TrackingNumber != o.TrackingNumber {
			o.TrackingNumber = req.TrackingNumber
			changed = true
		}

		return changed, nil
	})
}

func (s *orderService) AttachPayment(ctx context.Context, orderID string, result *models.TransactionResult) (*models.Order, error) {
	return s.mutate(ctx, orderID, func(o *models.Order) (bool, error) {
		o.PaymentToken = result.Token
		o.PaymentURL = result.RedirectURL
		return true, nil
	})
}

func (s *orderService) AssignGuest(ctx context.Context, orderID, guestID string) (*models.Order, error) {
	return s.mutate(ctx, orderID, func(o *models.Order) (bool, error) {
		if o.GuestID == guestID {
			return false, nil
		}
		o.GuestID = guestID
		return true, nil
	})
}

func (s *orderService) Invalidate(ctx context.Context, orderID string) {
	if err := s.cache.Delete(ctx, cache.OrderKey(orderID)); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Failed to invalidate order cache", slog.String("orderId", orderID), slog.Any("error", err))
	}
}
