package gateway

import (
	"context"
	"errors"
	"net/http"

	"github.com/digiri/giriloyo-batik/internal/models"
)

var (
	// ErrInvalidSignature means the notification could not be authenticated.
	ErrInvalidSignature = errors.New("invalid notification signature")
	ErrInvalidPayload   = errors.New("invalid notification payload")
	// ErrIgnoredEvent is returned for verified notifications that carry no payment state.
	ErrIgnoredEvent = errors.New("notification ignored")
)

// Gateway creates hosted payment pages and authenticates their notifications.
type Gateway interface {
	Name() string
	CreateTransaction(ctx context.Context, req *models.TransactionRequest) (*models.TransactionResult, error)
	ParseNotification(ctx context.Context, payload []byte, header http.Header) (*models.PaymentEvent, error)
}
