package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/digiri/giriloyo-batik/internal/api/middleware"
	appErrors "github.com/digiri/giriloyo-batik/internal/errors"
	"github.com/digiri/giriloyo-batik/internal/models"
	repository "github.com/digiri/giriloyo-batik/internal/repositories"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	rateScopeCheckout = "checkout"
	rateScopeClaim    = "claim"
	rateScopeBooking  = "booking"
)

type GuestService interface {
	CreateSession(ctx context.Context) (*models.GuestSession, error)
	ClaimOrder(ctx context.Context, guestID string, req *models.ClaimOrderRequest) (*models.Order, error)
}

type guestService struct {
	orders      OrderService
	rateLimiter repository.RateLimitRepository
	jwtKey      []byte
	ttl         time.Duration
	now         func() time.Time
}

func NewGuestService(orders OrderService, rateLimiter repository.RateLimitRepository, jwtKey []byte, ttl time.Duration) GuestService {
	return &guestService{orders: orders, rateLimiter: rateLimiter, jwtKey: jwtKey, ttl: ttl, now: time.Now}
}

// CreateSession mints a new guest identity. The id is never taken from the client.
func (s *guestService) CreateSession(ctx context.Context) (*models.GuestSession, error) {

	now := s.now()
	guestID := models.GuestIDPrefix + uuid.NewString()
	expiresAt := now.Add(s.ttl)

	claims := &models.GuestClaims{
		GuestID: guestID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   guestID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.jwtKey)
	if err != nil {
		return nil, appErrors.InternalError("Failed to issue guest session").WithError(err)
	}

	middleware.LoggerFromContext(ctx).Info("Guest session issued", slog.String("guestId", guestID))

	return &models.GuestSession{GuestID: guestID, Token: signed, ExpiresAt: expiresAt}, nil
}

// ClaimOrder moves an order to guestID when the caller knows its shipping email.
// A wrong email is reported exactly like a missing order.
func (s *guestService) ClaimOrder(ctx context.Context, guestID string, req *models.ClaimOrderRequest) (*models.Order, error) {
	logger := middleware.LoggerFromContext(ctx)

	allowed, _, retryAfter, err := s.rateLimiter.Allow(ctx, rateScopeClaim, guestID)
	if err != nil {
		return nil, appErrors.ThirdPartyError("Rate limit check failed").WithError(err)
	}

	if !allowed {
		return nil, appErrors.TooManyRequestsError("Too many claim attempts. Please try again later.").
			WithDetail(fmt.Sprintf("retry after %d seconds", retryAfter))
	}

	order, err := s.orders.GetOrderByID(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}

	if !strings.EqualFold(strings.TrimSpace(order.ShippingAddress.Email), strings.TrimSpace(req.Email)) {
		logger.Warn("Order claim rejected", slog.String("orderId", req.OrderID))
		return nil, appErrors.NotFoundError("Order not found")
	}

	if order.GuestID == guestID {
		return order, nil
	}

	claimed, err := s.orders.AssignGuest(ctx, req.OrderID, guestID)
	if err != nil {
		return nil, err
	}

	logger.Info("Order claimed", slog.String("orderId", req.OrderID), slog.String("previousGuestId", order.GuestID))

	return claimed, nil
}
