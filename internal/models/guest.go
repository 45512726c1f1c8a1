package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const GuestIDPrefix = "guest_"

type GuestClaims struct {
	GuestID string `json:"guestId"`
	jwt.RegisteredClaims
}

type GuestSession struct {
	GuestID   string    `json:"guestId"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// ClaimOrderRequest re-attaches an order to the caller's guest id.
type ClaimOrderRequest struct {
	OrderID string `json:"orderId" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
}
