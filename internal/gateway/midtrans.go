package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/digiri/giriloyo-batik/internal/api/middleware"
	"github.com/digiri/giriloyo-batik/internal/config"
	"github.com/digiri/giriloyo-batik/internal/errors"
	"github.com/digiri/giriloyo-batik/internal/models"
	midtransClient "github.com/digiri/giriloyo-batik/pkg/midtrans"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

const (
	shippingItemID = "shipping"
	nftItemID      = "nft"
)

type midtransGateway struct {
	client    midtransClient.Client
	payment   config.Payment
	publicURL string
}

func NewMidtransGateway(client midtransClient.Client, payment config.Payment, publicURL string) Gateway {
	return &midtransGateway{client: client, payment: payment, publicURL: strings.TrimRight(publicURL, "/")}
}

func (g *midtransGateway) Name() string {
	return "midtrans"
}

// CreateTransaction always charges the recomputed gross amount. A caller
// amount that disagrees by more than the tolerance is only logged.
func (g *midtransGateway) CreateTransaction(ctx context.Context, req *models.TransactionRequest) (*models.TransactionResult, error) {
	logger := middleware.LoggerFromContext(ctx)

	gross := req.GrossAmount()
	if diff := req.Amount - gross; diff > g.payment.AmountTolerance || -diff > g.payment.AmountTolerance {
		logger.Warn("Payment amount mismatch, using recomputed total",
			slog.String("orderId", req.OrderID),
			slog.Int64("requested", req.Amount),
			slog.Int64("calculated", gross))
	}

	snapReq := g.buildRequest(req, gross)

	resp, err := g.client.CreateTransaction(snapReq)
	if err != nil {
		messages := []string{err.Error()}
		if resp != nil && len(resp.ErrorMessages) > 0 {
			messages = resp.ErrorMessages
		}

		logger.Error("Midtrans transaction failed", slog.String("orderId", req.OrderID), slog.Any("error", err))
		return nil, errors.ThirdPartyError(strings.Join(messages, ", ")).WithError(err)
	}

	if resp == nil || resp.Token == "" {
		messages := []string{"Failed to create payment token"}
		if resp != nil && len(resp.ErrorMessages) > 0 {
			messages = resp.ErrorMessages
		}

		return nil, errors.ThirdPartyError(strings.Join(messages, ", "))
	}

	logger.Info("Midtrans transaction created", slog.String("orderId", req.OrderID), slog.Int64("grossAmount", gross))

	return &models.TransactionResult{Token: resp.Token, RedirectURL: resp.RedirectURL, GrossAmount: gross}, nil
}

func (g *midtransGateway) buildRequest(req *models.TransactionRequest, gross int64) *snap.Request {
	items := make([]midtrans.ItemDetails, 0, len(req.Items)+2)

	for _, it := range req.Items {
		items = append(items, midtrans.ItemDetails{
			ID:           strconv.FormatInt(it.ID, 10),
			Name:         it.GatewayName(),
			Price:        it.Price,
			Qty:          int32(it.Quantity),
			Brand:        g.payment.MerchantName,
			Category:     g.payment.ProductCategory,
			MerchantName: g.payment.MerchantName,
		})
	}

	items = append(items, midtrans.ItemDetails{ID: shippingItemID, Name: "Biaya Pengiriman", Price: req.ShippingCost, Qty: 1, Category: "Shipping"})

	if req.NFTFee > 0 {
		items = append(items, midtrans.ItemDetails{ID: nftItemID, Name: "NFT Certificate", Price: req.NFTFee, Qty: 1, Category: "Digital"})
	}

	first, last := req.Customer.SplitName()
	address := &midtrans.CustomerAddress{
		FName:       first,
		LName:       last,
		Phone:       req.Customer.Phone,
		Address:     req.Customer.Address,
		City:        req.Customer.City,
		Postcode:    req.Customer.PostalCode,
		CountryCode: g.payment.CustomerCountry,
	}

	return &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  req.OrderID,
			GrossAmt: gross,
		},
		Items: &items,
		CustomerDetail: &midtrans.CustomerDetails{
			FName:    first,
			LName:    last,
			Email:    req.Customer.Email,
			Phone:    req.Customer.Phone,
			BillAddr: address,
			ShipAddr: address,
		},
		CreditCard: &snap.CreditCardDetails{Secure: true},
		Callbacks:  &snap.Callbacks{Finish: g.publicURL + "/checkout/success"},
	}
}

// ParseNotification authenticates the payload and then asks Midtrans for the
// current transaction state, which wins over what the payload claims.
func (g *midtransGateway) ParseNotification(ctx context.Context, payload []byte, _ http.Header) (*models.PaymentEvent, error) {
	logger := middleware.LoggerFromContext(ctx)

	var n midtransClient.Notification
	if err := json.Unmarshal(payload, &n); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	if n.OrderID == "" || n.TransactionStatus == "" {
		return nil, ErrInvalidPayload
	}

	if !g.client.VerifySignature(&n) {
		logger.Warn("Rejected Midtrans notification with bad signature", slog.String("orderId", n.OrderID))
		return nil, ErrInvalidSignature
	}

	status, err := g.client.CheckTransaction(n.OrderID)
	if err != nil {
		return nil, errors.ThirdPartyError("Failed to verify transaction status").WithError(err)
	}

	event := &models.PaymentEvent{
		Gateway:           g.Name(),
		OrderID:           n.OrderID,
		TransactionID:     n.TransactionID,
		TransactionStatus: models.PaymentStatus(n.TransactionStatus),
		FraudStatus:       n.FraudStatus,
		PaymentMethod:     n.PaymentType,
		GrossAmount:       n.GrossAmount,
	}

	if status != nil {
		if status.TransactionID != "" {
			event.TransactionID = status.TransactionID
		}
		event.TransactionStatus = models.PaymentStatus(status.TransactionStatus)
		event.FraudStatus = status.FraudStatus
		if status.PaymentType != "" {
			event.PaymentMethod = status.PaymentType
		}
		if status.GrossAmount != "" {
			event.GrossAmount = status.GrossAmount
		}
	}

	return event, nil
}
