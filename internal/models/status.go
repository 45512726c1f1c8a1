package models

import "slices"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusPaid       OrderStatus = "paid"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusPaid, OrderStatusCancelled},
	OrderStatusPaid:       {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered},
}

// CanTransitionTo is false for the current status; callers treat that case as a no-op.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	return slices.Contains(orderTransitions[s], next)
}

// PaymentStatus mirrors the gateway's transaction_status vocabulary.
type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusSettlement PaymentStatus = "settlement"
	PaymentStatusCapture    PaymentStatus = "capture"
	PaymentStatusDeny       PaymentStatus = "deny"
	PaymentStatusCancel     PaymentStatus = "cancel"
	PaymentStatusExpire     PaymentStatus = "expire"
	PaymentStatusFailure    PaymentStatus = "failure"
)

const (
	FraudStatusAccept    = "accept"
	FraudStatusChallenge = "challenge"
	FraudStatusDeny      = "deny"
)

// StatusForPayment gives the order status a freshly created order starts in.
func StatusForPayment(ps PaymentStatus) OrderStatus {
	if ps == PaymentStatusSettlement || ps == PaymentStatusCapture {
		return OrderStatusPaid
	}

	return OrderStatusPending
}

// PaymentResolution is what a gateway notification means for the order.
type PaymentResolution struct {
	Status OrderStatus
	Mint   bool
	// Apply is false for notifications that leave the order as it is.
	Apply bool
}

func ResolvePayment(tx PaymentStatus, fraudStatus string) PaymentResolution {
	switch tx {
	case PaymentStatusCapture:
		switch fraudStatus {
		case FraudStatusChallenge:
			return PaymentResolution{Status: OrderStatusPending, Apply: true}
		case FraudStatusAccept:
			return PaymentResolution{Status: OrderStatusPaid, Mint: true, Apply: true}
		}
	case PaymentStatusSettlement:
		return PaymentResolution{Status: OrderStatusPaid, Mint: true, Apply: true}
	case PaymentStatusCancel, PaymentStatusDeny, PaymentStatusExpire:
		return PaymentResolution{Status: OrderStatusCancelled, Apply: true}
	case PaymentStatusPending:
		return PaymentResolution{Status: OrderStatusPending, Apply: true}
	}

	return PaymentResolution{}
}

type NFTStatus string

const (
	NFTStatusPending NFTStatus = "pending"
	NFTStatusMinting NFTStatus = "minting"
	NFTStatusMinted  NFTStatus = "minted"
	NFTStatusFailed  NFTStatus = "failed"
)
