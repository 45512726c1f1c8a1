package models

import (
	"fmt"
	"strings"
)

type CustomerDetails struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
}

// SplitName splits a full name at the first space.
func (c CustomerDetails) SplitName() (string, string) {
	first, last, _ := strings.Cut(strings.TrimSpace(c.Name), " ")

	return first, strings.TrimSpace(last)
}

func CustomerFromAddress(a ShippingAddress) CustomerDetails {
	return CustomerDetails{
		Name:       a.Name,
		Email:      a.Email,
		Phone:      a.Phone,
		Address:    a.Address,
		City:       a.City,
		PostalCode: a.PostalCode,
	}
}

type PaymentLineItem struct {
	ID       int64  `json:"id" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Price    int64  `json:"price" validate:"gte=0"`
	Quantity int    `json:"quantity" validate:"gt=0"`
	Size     string `json:"size"`
	Color    string `json:"color"`
}

// GatewayName is the label shown on the payment page.
func (l PaymentLineItem) GatewayName() string {
	return fmt.Sprintf("%s (%s, %s)", l.Name, l.Size, l.Color)
}

func LineItemsFromOrder(o *Order) []PaymentLineItem {
	lines := make([]PaymentLineItem, 0, len(o.Items))
	for _, it := range o.Items {
		lines = append(lines, PaymentLineItem{
			ID:       it.ProductID,
			Name:     it.Name,
			Price:    it.UnitPrice,
			Quantity: it.Quantity,
			Size:     it.Size,
			Color:    it.Color,
		})
	}

	return lines
}

// CreatePaymentRequest is the body of the standalone payment endpoint.
// Zero Shipping falls back to the configured flat rate.
type CreatePaymentRequest struct {
	OrderID         string            `json:"orderId" validate:"required"`
	Amount          int64             `json:"amount" validate:"required"`
	CustomerDetails *CustomerDetails  `json:"customerDetails" validate:"required"`
	Items           []PaymentLineItem `json:"items" validate:"required,min=1,dive"`
	Shipping        int64             `json:"shipping,omitempty" validate:"gte=0"`
	NFTFee          int64             `json:"nftFee,omitempty" validate:"gte=0"`
}

type PaymentResponse struct {
	Token       string `json:"token"`
	RedirectURL string `json:"redirect_url"`
}

type TransactionRequest struct {
	OrderID      string
	Amount       int64
	Customer     CustomerDetails
	Items        []PaymentLineItem
	ShippingCost int64
	NFTFee       int64
}

// ItemsTotal is sum(price * quantity).
func (t *TransactionRequest) ItemsTotal() int64 {
	var total int64
	for _, it := range t.Items {
		total += it.Price * int64(it.Quantity)
	}

	return total
}

func (t *TransactionRequest) GrossAmount() int64 {
	return t.ItemsTotal() + t.ShippingCost + t.NFTFee
}

type TransactionResult struct {
	Token       string `json:"token"`
	RedirectURL string `json:"redirectUrl"`
	GrossAmount int64  `json:"grossAmount"`
}

// PaymentEvent is a verified gateway notification.
type PaymentEvent struct {
	Gateway           string
	OrderID           string
	TransactionID     string
	TransactionStatus PaymentStatus
	FraudStatus       string
	PaymentMethod     string
	GrossAmount       string
}

// IdempotencyKey is identical for redeliveries of the same notification.
func (e PaymentEvent) IdempotencyKey() string {
	return strings.Join([]string{e.Gateway, e.OrderID, e.TransactionID, string(e.TransactionStatus), e.FraudStatus}, ":")
}

type WebhookAck struct {
	Received bool `json:"received"`
}
