package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/digiri/giriloyo-batik/internal/api/middleware"
	"github.com/digiri/giriloyo-batik/internal/config"
	"github.com/digiri/giriloyo-batik/internal/errors"
	"github.com/digiri/giriloyo-batik/internal/models"
	stripeClient "github.com/digiri/giriloyo-batik/pkg/stripe"
	"github.com/stripe/stripe-go/v81"
)

const stripeSignatureHeader = "Stripe-Signature"

type stripeGateway struct {
	client    stripeClient.Client
	currency  string
	publicURL string
}

func NewStripeGateway(client stripeClient.Client, cfg config.Stripe, publicURL string) Gateway {
	return &stripeGateway{client: client, currency: strings.ToLower(cfg.Currency), publicURL: strings.TrimRight(publicURL, "/")}
}

func (g *stripeGateway) Name() string {
	return "stripe"
}

// minorUnits converts whole rupiah into the amount Stripe expects (IDR is two-decimal there).
func minorUnits(amount int64) int64 {
	return amount * 100
}

func (g *stripeGateway) lineItem(name string, unitPrice int64, quantity int64) *stripe.CheckoutSessionLineItemParams {
	return &stripe.CheckoutSessionLineItemParams{
		PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
			Currency:   stripe.String(g.currency),
			UnitAmount: stripe.Int64(minorUnits(unitPrice)),
			ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
				Name: stripe.String(name),
			},
		},
		Quantity: stripe.Int64(quantity),
	}
}

func (g *stripeGateway) CreateTransaction(ctx context.Context, req *models.TransactionRequest) (*models.TransactionResult, error) {
	logger := middleware.LoggerFromContext(ctx)

	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(req.Items)+2)
	for _, it := range req.Items {
		lineItems = append(lineItems, g.lineItem(it.GatewayName(), it.Price, int64(it.Quantity)))
	}

	if req.ShippingCost > 0 {
		lineItems = append(lineItems, g.lineItem("Biaya Pengiriman", req.ShippingCost, 1))
	}

	if req.NFTFee > 0 {
		lineItems = append(lineItems, g.lineItem("NFT Certificate", req.NFTFee, 1))
	}

	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		ClientReferenceID: stripe.String(req.OrderID),
		CustomerEmail:     stripe.String(req.Customer.Email),
		LineItems:         lineItems,
		SuccessURL:        stripe.String(g.publicURL + "/checkout/success?order_id=" + req.OrderID),
		CancelURL:         stripe.String(g.publicURL + "/checkout/error?order_id=" + req.OrderID),
	}
	params.AddMetadata("order_id", req.OrderID)

	session, err := g.client.CreateCheckoutSession(params)
	if err != nil {
		logger.Error("Stripe checkout session failed", slog.String("orderId", req.OrderID), slog.Any("error", err))
		return nil, errors.ThirdPartyError(err.Error()).WithError(err)
	}

	return &models.TransactionResult{Token: session.ID, RedirectURL: session.URL, GrossAmount: req.GrossAmount()}, nil
}

func (g *stripeGateway) ParseNotification(ctx context.Context, payload []byte, header http.Header) (*models.PaymentEvent, error) {
	event, err := g.client.VerifyWebhookSignature(payload, header.Get(stripeSignatureHeader))
	if err != nil {
		middleware.LoggerFromContext(ctx).Warn("Rejected Stripe webhook", slog.Any("error", err))
		return nil, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}

	var session stripe.CheckoutSession
	if event.Data == nil || json.Unmarshal(event.Data.Raw, &session) != nil {
		return nil, ErrInvalidPayload
	}

	var status models.PaymentStatus

	switch event.Type {
	case "checkout.session.completed":
		status = models.PaymentStatusPending
		if session.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid {
			status = models.PaymentStatusSettlement
		}
	case "checkout.session.async_payment_succeeded":
		status = models.PaymentStatusSettlement
	case "checkout.session.async_payment_failed":
		status = models.PaymentStatusFailure
	case "checkout.session.expired":
		status = models.PaymentStatusExpire
	default:
		return nil, ErrIgnoredEvent
	}

	orderID := session.ClientReferenceID
	if orderID == "" {
		orderID = session.Metadata["order_id"]
	}

	if orderID == "" {
		return nil, ErrInvalidPayload
	}

	return &models.PaymentEvent{
		Gateway:           g.Name(),
		OrderID:           orderID,
		TransactionID:     session.ID,
		TransactionStatus: status,
		PaymentMethod:     "stripe_checkout",
		GrossAmount:       fmt.Sprintf("%d", session.AmountTotal/100),
	}, nil
}
