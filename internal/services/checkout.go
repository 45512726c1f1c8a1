package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/digiri/giriloyo-batik/internal/api/middleware"
	"github.com/digiri/giriloyo-batik/internal/config"
	appErrors "github.com/digiri/giriloyo-batik/internal/errors"
	"github.com/digiri/giriloyo-batik/internal/gateway"
	"github.com/digiri/giriloyo-batik/internal/models"
	repository "github.com/digiri/giriloyo-batik/internal/repositories"
	"github.com/microcosm-cc/bluemonday"
)

type CheckoutService interface {
	Checkout(ctx context.Context, guestID string, req *models.CheckoutRequest) (*models.CheckoutResponse, error)
	// RetryPayment hands out a payment page for an order that is still pending.
	RetryPayment(ctx context.Context, guestID, orderID string) (*models.CheckoutResponse, error)
}

type checkoutService struct {
	carts       CartService
	orders      OrderService
	gateway     gateway.Gateway
	rateLimiter repository.RateLimitRepository
	payment     config.Payment
	certificate config.Certificate
	policy      *bluemonday.Policy
}

func NewCheckoutService(carts CartService, orders OrderService, gw gateway.Gateway, rateLimiter repository.RateLimitRepository,
	payment config.Payment, certificate config.Certificate) CheckoutService {
	return &checkoutService{
		carts:       carts,
		orders:      orders,
		gateway:     gw,
		rateLimiter: rateLimiter,
		payment:     payment,
		certificate: certificate,
		policy:      bluemonday.StrictPolicy(),
	}
}

func (s *checkoutService) sanitizeAddress(a models.ShippingAddress) models.ShippingAddress {
	a.Name = s.policy.Sanitize(a.Name)
	a.Phone = s.policy.Sanitize(a.Phone)
	a.Address = s.policy.Sanitize(a.Address)
	a.City = s.policy.Sanitize(a.City)
	a.Province = s.policy.Sanitize(a.Province)
	a.PostalCode = s.policy.Sanitize(a.PostalCode)
	a.Notes = s.policy.Sanitize(a.Notes)

	return a
}

func (s *checkoutService) Checkout(ctx context.Context, guestID string, req *models.CheckoutRequest) (*models.CheckoutResponse, error) {
	logger := middleware.LoggerFromContext(ctx)

	allowed, _, retryAfter, err := s.rateLimiter.Allow(ctx, rateScopeCheckout, guestID)
	if err != nil {
		return nil, appErrors.ThirdPartyError("Rate limit check failed").WithError(err)
	}

	if !allowed {
		return nil, appErrors.TooManyRequestsError("Too many checkout attempts. Please try again later.").
			WithDetail(fmt.Sprintf("retry after %d seconds", retryAfter))
	}

	cart, err := s.carts.Snapshot(ctx, guestID)
	if err != nil {
		return nil, err
	}

	if len(cart.Items) == 0 {
		return nil, appErrors.BadRequestError("Cannot checkout an empty cart")
	}

	items := make([]models.OrderItem, 0, len(cart.Items))
	for _, it := range cart.Items {
		items = append(items, models.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Size:      it.Size,
			Color:     it.Color,
			Quantity:  it.Quantity,
			ImageRef:  it.ImageRef,
			Slug:      it.Slug,
		})
	}

	order, err := s.orders.CreateOrder(ctx, &models.Order{
		GuestID:         guestID,
		Items:           items,
		ShippingAddress: s.sanitizeAddress(req.ShippingAddress),
		ShippingCost:    s.payment.DefaultShipping,
		NFTFee:          s.certificate.FeePerItem * int64(len(items)),
		PaymentMethod:   req.PaymentMethod,
		PaymentStatus:   models.PaymentStatusPending,
	})
	if err != nil {
		return nil, err
	}

	resp, err := s.pay(ctx, order)
	if err != nil {
		return nil, err
	}

	// the order is placed; a failed removal only leaves stale lines behind
	if err := s.carts.RemoveOrdered(ctx, guestID, cart.Items); err != nil {
		logger.Error("Failed to clear cart after checkout", slog.String("orderId", order.OrderID), slog.Any("error", err))
	}

	return resp, nil
}

func (s *checkoutService) pay(ctx context.Context, order *models.Order) (*models.CheckoutResponse, error) {
	logger := middleware.LoggerFromContext(ctx).With(slog.String("orderId", order.OrderID), slog.String("gateway", s.gateway.Name()))

	result, err := s.gateway.CreateTransaction(ctx, &models.TransactionRequest{
		OrderID:      order.OrderID,
		Amount:       order.Total,
		Customer:     models.CustomerFromAddress(order.ShippingAddress),
		Items:        models.LineItemsFromOrder(order),
		ShippingCost: order.ShippingCost,
		NFTFee:       order.NFTFee,
	})
	if err != nil {
		logger.Error("Payment transaction failed, order left pending", slog.Any("error", err))

		if _, ok := appErrors.IsAppError(err); ok {
			return nil, err
		}
		return nil, appErrors.ThirdPartyError("Failed to create payment").WithError(err)
	}

	updated, err := s.orders.AttachPayment(ctx, order.OrderID, result)
	if err != nil {
		return nil, err
	}

	logger.Info("Payment transaction created")

	return &models.CheckoutResponse{Order: updated, Token: result.Token, RedirectURL: result.RedirectURL}, nil
}

func (s *checkoutService) RetryPayment(ctx context.Context, guestID, orderID string) (*models.CheckoutResponse, error) {

	order, err := s.orders.GetGuestOrder(ctx, guestID, orderID)
	if err != nil {
		return nil, err
	}

	if order.Status != models.OrderStatusPending {
		return nil, appErrors.BadRequestError("Order is not awaiting payment")
	}

	if order.PaymentToken != "" && order.PaymentURL != "" {
		return &models.CheckoutResponse{Order: order, Token: order.PaymentToken, RedirectURL: order.PaymentURL}, nil
	}

	return s.pay(ctx, order)
}
