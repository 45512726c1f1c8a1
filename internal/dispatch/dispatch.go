package dispatch

import (
	"context"
	"errors"

	"github.com/digiri/giriloyo-batik/internal/models"
)

var ErrClosed = errors.New("dispatcher is closed")

// Handler processes one mint job. A returned error means the job could not
// be processed at all; per-item mint failures are recorded by the handler.
type Handler func(ctx context.Context, job models.MintJob) error

// MintDispatcher moves mint work off the request that triggered it.
type MintDispatcher interface {
	Dispatch(ctx context.Context, job models.MintJob) error
	Close() error
}
