package models

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

const orderIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewOrderID returns GRLYO-<unix millis>-<6 base36 chars>.
func NewOrderID(now time.Time) string {
	var suffix strings.Builder
	for range 6 {
		suffix.WriteByte(orderIDAlphabet[rand.IntN(len(orderIDAlphabet))])
	}

	return fmt.Sprintf("GRLYO-%d-%s", now.UnixMilli(), suffix.String())
}

type ShippingAddress struct {
	Name       string `json:"name" validate:"required,max=120"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"required,max=32"`
	Address    string `json:"address" validate:"required,max=500"`
	City       string `json:"city" validate:"max=120"`
	Province   string `json:"province" validate:"max=120"`
	PostalCode string `json:"postalCode" validate:"max=16"`
	Notes      string `json:"notes,omitempty" validate:"max=500"`
}

// OrderItem is a by-value snapshot of a cart line, plus the state of its certificate.
type OrderItem struct {
	LineNo             int       `json:"lineNo"`
	ProductID          int64     `json:"productId"`
	Name               string    `json:"name"`
	UnitPrice          int64     `json:"unitPrice"`
	Size               string    `json:"size"`
	Color              string    `json:"color"`
	Quantity           int       `json:"quantity"`
	ImageRef           string    `json:"imageRef"`
	Slug               string    `json:"slug"`
	NFTStatus          NFTStatus `json:"nftStatus"`
	NFTID              string    `json:"nftId,omitempty"`
	NFTTransactionHash string    `json:"nftTransactionHash,omitempty"`
	NFTContractAddress string    `json:"nftContractAddress,omitempty"`
	NFTError           string    `json:"nftError,omitempty"`
	MintAttempts       int       `json:"mintAttempts"`
}

func (i OrderItem) LineTotal() int64 {
	return i.UnitPrice * int64(i.Quantity)
}

type Order struct {
	OrderID           string          `json:"orderId"`
	GuestID           string          `json:"guestId"`
	Items             []OrderItem     `json:"items"`
	ShippingAddress   ShippingAddress `json:"shippingAddress"`
	Subtotal          int64           `json:"subtotal"`
	ShippingCost      int64           `json:"shipping"`
	NFTFee            int64           `json:"nftFee"`
	Total             int64           `json:"total"`
	Status            OrderStatus     `json:"status"`
	PaymentMethod     string          `json:"paymentMethod,omitempty"`
	PaymentStatus     PaymentStatus   `json:"paymentStatus,omitempty"`
	TransactionID     string          `json:"transactionId,omitempty"`
	PaymentToken      string          `json:"paymentToken,omitempty"`
	PaymentURL        string          `json:"paymentUrl,omitempty"`
	EstimatedDelivery time.Time       `json:"estimatedDelivery"`
	TrackingNumber    string          `json:"trackingNumber,omitempty"`
	Version           int64           `json:"version"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// NFTStatus aggregates the per-item certificate states.
func (o *Order) NFTStatus() NFTStatus {
	if len(o.Items) == 0 {
		return NFTStatusPending
	}

	minted := 0
	for _, it := range o.Items {
		switch it.NFTStatus {
		case NFTStatusFailed:
			return NFTStatusFailed
		case NFTStatusMinted:
			minted++
		}
	}

	if minted == len(o.Items) {
		return NFTStatusMinted
	}

	return NFTStatusPending
}

func (o *Order) NFTIDs() []string {
	ids := []string{}
	for _, it := range o.Items {
		if it.NFTID != "" {
			ids = append(ids, it.NFTID)
		}
	}

	return ids
}

// NFTTransactionHash is the hash of the most recently minted line.
func (o *Order) NFTTransactionHash() string {
	hash := ""
	for _, it := range o.Items {
		if it.NFTStatus == NFTStatusMinted && it.NFTTransactionHash != "" {
			hash = it.NFTTransactionHash
		}
	}

	return hash
}

// AwaitingCertificates reports a paid order with lines nobody has claimed for minting yet.
func (o *Order) AwaitingCertificates() bool {
	if o == nil || o.Status != OrderStatusPaid {
		return false
	}

	for _, it := range o.Items {
		if it.NFTStatus == NFTStatusPending {
			return true
		}
	}

	return false
}

func (o *Order) Item(lineNo int) (*OrderItem, bool) {
	for i := range o.Items {
		if o.Items[i].LineNo == lineNo {
			return &o.Items[i], true
		}
	}

	return nil, false
}

func (o *Order) ComputeTotals() {
	var subtotal int64
	for _, it := range o.Items {
		subtotal += it.LineTotal()
	}

	o.Subtotal = subtotal
	o.Total = o.Subtotal + o.ShippingCost + o.NFTFee
}

// MarshalJSON adds the derived certificate fields.
func (o Order) MarshalJSON() ([]byte, error) {
	type plain Order

	return json.Marshal(struct {
		plain
		NFTStatus          NFTStatus `json:"nftStatus"`
		NFTIDs             []string  `json:"nftIds"`
		NFTTransactionHash string    `json:"nftTransactionHash,omitempty"`
	}{
		plain:              plain(o),
		NFTStatus:          o.NFTStatus(),
		NFTIDs:             o.NFTIDs(),
		NFTTransactionHash: o.NFTTransactionHash(),
	})
}

type CheckoutRequest struct {
	ShippingAddress ShippingAddress `json:"shippingAddress" validate:"required"`
	PaymentMethod   string          `json:"paymentMethod,omitempty" validate:"max=40"`
}

type CheckoutResponse struct {
	Order       *Order `json:"order"`
	Token       string `json:"token"`
	RedirectURL string `json:"redirectUrl"`
}

type UpdateOrderStatusRequest struct {
	Status         OrderStatus `json:"status" validate:"required,oneof=pending paid processing shipped delivered cancelled"`
	TrackingNumber string      `json:"trackingNumber,omitempty" validate:"max=100"`
}

// PaymentUpdate carries a gateway-confirmed payment state onto an order.
type PaymentUpdate struct {
	OrderID       string
	PaymentStatus PaymentStatus
	FraudStatus   string
	TransactionID string
	PaymentMethod string
}

type OrderStatusView struct {
	OrderID            string        `json:"orderId"`
	Status             OrderStatus   `json:"status"`
	PaymentStatus      PaymentStatus `json:"paymentStatus,omitempty"`
	NFTStatus          NFTStatus     `json:"nftStatus"`
	NFTIDs             []string      `json:"nftIds"`
	NFTTransactionHash string        `json:"nftTransactionHash,omitempty"`
	TrackingNumber     string        `json:"trackingNumber,omitempty"`
	UpdatedAt          time.Time     `json:"updatedAt"`
}

func (o *Order) StatusView() *OrderStatusView {
	return &OrderStatusView{
		OrderID:            o.OrderID,
		Status:             o.Status,
		PaymentStatus:      o.PaymentStatus,
		NFTStatus:          o.NFTStatus(),
		NFTIDs:             o.NFTIDs(),
		NFTTransactionHash: o.NFTTransactionHash(),
		TrackingNumber:     o.TrackingNumber,
		UpdatedAt:          o.UpdatedAt,
	}
}
