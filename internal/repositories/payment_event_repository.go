package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/digiri/giriloyo-batik/internal/models"
	"github.com/digiri/giriloyo-batik/internal/utils"
)

// PaymentEventRepository is the ledger of gateway notifications already acted on.
type PaymentEventRepository interface {
	RecordEvent(ctx context.Context, event *models.PaymentEvent) (bool, error)
	ReleaseEvent(ctx context.Context, key string) error
}

type paymentEventRepository struct {
	DB *sql.DB
}

func NewPaymentEventRepo(db *sql.DB) PaymentEventRepository {
	return &paymentEventRepository{DB: db}
}

// RecordEvent reports false when the same notification was recorded before.
func (r *paymentEventRepository) RecordEvent(ctx context.Context, event *models.PaymentEvent) (bool, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO payment_notifications (idempotency_key, gateway, order_id, transaction_id, transaction_status, fraud_status, received_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (idempotency_key) DO NOTHING
	`

	result, err := r.DB.ExecContext(dbCtx, query, event.IdempotencyKey(), event.Gateway, event.OrderID,
		event.TransactionID, event.TransactionStatus, event.FraudStatus)
	if err != nil {
		return false, fmt.Errorf("failed to record payment notification: %w", err)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return inserted == 1, nil
}

// ReleaseEvent forgets a notification whose processing failed so a redelivery is handled.
func (r *paymentEventRepository) ReleaseEvent(ctx context.Context, key string) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	_, err := r.DB.ExecContext(dbCtx, `DELETE FROM payment_notifications WHERE idempotency_key = $1`, key)
	if err != nil {
		return fmt.Errorf("failed to release payment notification: %w", err)
	}

	return nil
}
