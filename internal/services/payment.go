package service

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/digiri/giriloyo-batik/internal/api/middleware"
	"github.com/digiri/giriloyo-batik/internal/config"
	"github.com/digiri/giriloyo-batik/internal/dispatch"
	appErrors "github.com/digiri/giriloyo-batik/internal/errors"
	"github.com/digiri/giriloyo-batik/internal/gateway"
	"github.com/digiri/giriloyo-batik/internal/metrics"
	"github.com/digiri/giriloyo-batik/internal/models"
	repository "github.com/digiri/giriloyo-batik/internal/repositories"
)

type PaymentService interface {
	CreatePayment(ctx context.Context, req *models.CreatePaymentRequest) (*models.PaymentResponse, error)
	// HandleNotification verifies and applies one gateway notification.
	// Redeliveries and notifications without payment state return nil.
	HandleNotification(ctx context.Context, gatewayName string, payload []byte, header http.Header) error
}

type paymentService struct {
	primary    gateway.Gateway
	gateways   map[string]gateway.Gateway
	orders     OrderService
	events     repository.PaymentEventRepository
	dispatcher dispatch.MintDispatcher
	payment    config.Payment
}

// NewPaymentService creates payments on primary and accepts notifications
// from primary and every gateway in others.
func NewPaymentService(primary gateway.Gateway, others []gateway.Gateway, orders OrderService,
	events repository.PaymentEventRepository, dispatcher dispatch.MintDispatcher, payment config.Payment) PaymentService {

	gateways := map[string]gateway.Gateway{primary.Name(): primary}
	for _, gw := range others {
		gateways[gw.Name()] = gw
	}

	return &paymentService{
		primary:    primary,
		gateways:   gateways,
		orders:     orders,
		events:     events,
		dispatcher: dispatcher,
		payment:    payment,
	}
}

func (s *paymentService) CreatePayment(ctx context.Context, req *models.CreatePaymentRequest) (*models.PaymentResponse, error) {

	shipping := req.Shipping
	if shipping == 0 {
		shipping = s.payment.DefaultShipping
	}

	result, err := s.primary.CreateTransaction(ctx, &models.TransactionRequest{
		OrderID:      req.OrderID,
		Amount:       req.Amount,
		Customer:     *req.CustomerDetails,
		Items:        req.Items,
		ShippingCost: shipping,
		NFTFee:       req.NFTFee,
	})
	if err != nil {
		if _, ok := appErrors.IsAppError(err); ok {
			return nil, err
		}
		return nil, appErrors.ThirdPartyError("Failed to create payment").WithError(err)
	}

	return &models.PaymentResponse{Token: result.Token, RedirectURL: result.RedirectURL}, nil
}

func (s *paymentService) HandleNotification(ctx context.Context, gatewayName string, payload []byte, header http.Header) error {
	logger := middleware.LoggerFromContext(ctx).With(slog.String("gateway", gatewayName))

	gw, ok := s.gateways[gatewayName]
	if !ok {
		return appErrors.NotFoundError("Payment gateway is not enabled")
	}

	event, err := gw.ParseNotification(ctx, payload, header)
	if err != nil {
		switch {
		case errors.Is(err, gateway.ErrIgnoredEvent):
			logger.Info("Payment notification ignored", slog.Any("reason", err))
			metrics.RecordPaymentNotification(gatewayName, metrics.OutcomeIgnored)
			return nil
		case errors.Is(err, gateway.ErrInvalidSignature), errors.Is(err, gateway.ErrInvalidPayload):
			logger.Warn("Payment notification rejected", slog.Any("error", err))
			metrics.RecordPaymentNotification(gatewayName, metrics.OutcomeRejected)
			return appErrors.BadRequestError("Invalid notification").WithError(err)
		}

		metrics.RecordPaymentNotification(gatewayName, metrics.OutcomeError)
		if _, ok := appErrors.IsAppError(err); ok {
			return err
		}
		return appErrors.ThirdPartyError("Failed to verify notification").WithError(err)
	}

	logger = logger.With(slog.String("orderId", event.OrderID), slog.String("transactionStatus", string(event.TransactionStatus)))

	fresh, err := s.events.RecordEvent(ctx, event)
	if err != nil {
		metrics.RecordPaymentNotification(gatewayName, metrics.OutcomeError)
		return appErrors.DatabaseError("Failed to record notification").WithError(err)
	}

	if !fresh {
		logger.Info("Duplicate payment notification acknowledged")
		metrics.RecordPaymentNotification(gatewayName, metrics.OutcomeDuplicate)
		return nil
	}

	order, paid, err := s.orders.UpdateOrderPayment(ctx, &models.PaymentUpdate{
		OrderID:       event.OrderID,
		PaymentStatus: event.TransactionStatus,
		FraudStatus:   event.FraudStatus,
		TransactionID: event.TransactionID,
		PaymentMethod: event.PaymentMethod,
	})
	if err != nil {
		// let the gateway's redelivery try again
		if releaseErr := s.events.ReleaseEvent(ctx, event.IdempotencyKey()); releaseErr != nil {
			logger.Error("Failed to release notification", slog.Any("error", releaseErr))
		}

		metrics.RecordPaymentNotification(gatewayName, metrics.OutcomeError)
		return err
	}

	// a redelivery after a failed dispatch finds the order already paid
	mint := paid || (models.ResolvePayment(event.TransactionStatus, event.FraudStatus).Mint && order.AwaitingCertificates())

	if mint {
		if err := s.dispatcher.Dispatch(ctx, models.MintJob{OrderID: event.OrderID}); err != nil {
			logger.Error("Failed to dispatch certificate minting", slog.Any("error", err))

			if releaseErr := s.events.ReleaseEvent(ctx, event.IdempotencyKey()); releaseErr != nil {
				logger.Error("Failed to release notification", slog.Any("error", releaseErr))
			}

			metrics.RecordPaymentNotification(gatewayName, metrics.OutcomeError)
			return appErrors.ThirdPartyError("Failed to queue certificate minting").WithError(err)
		}
	}

	metrics.RecordPaymentNotification(gatewayName, metrics.OutcomeApplied)
	logger.Info("Payment notification applied", slog.Bool("paid", paid), slog.Bool("mint", mint))

	return nil
}
