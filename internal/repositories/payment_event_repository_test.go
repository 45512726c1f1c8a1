package repository_test

import (
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/digiri/giriloyo-batik/internal/models"
	repository "github.com/digiri/giriloyo-batik/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentEventRepository(t *testing.T) {
	ctx := t.Context()
	event := &models.PaymentEvent{
		Gateway:           "midtrans",
		OrderID:           testOrderID,
		TransactionID:     "tx-1",
		TransactionStatus: models.PaymentStatusSettlement,
		FraudStatus:       "accept",
	}
	insertSQL := regexp.QuoteMeta(`INSERT INTO payment_notifications`)

	setup := func(t *testing.T) (repository.PaymentEventRepository, sqlmock.Sqlmock) {
		t.Helper()

		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
		require.NoError(t, err)
		t.Cleanup(func() { db.Close() })

		return repository.NewPaymentEventRepo(db), mock
	}

	t.Run("First Delivery Is Recorded", func(t *testing.T) {
		// Arrange
		repo, mock := setup(t)

		mock.ExpectExec(insertSQL).
			WithArgs("midtrans:"+testOrderID+":tx-1:settlement:accept", "midtrans", testOrderID, "tx-1", models.PaymentStatusSettlement, "accept").
			WillReturnResult(sqlmock.NewResult(0, 1))

		// Act
		fresh, err := repo.RecordEvent(ctx, event)

		// Assert
		require.NoError(t, err)
		assert.True(t, fresh)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Redelivery Is Not Fresh", func(t *testing.T) {
		// Arrange
		repo, mock := setup(t)

		mock.ExpectExec(insertSQL).WillReturnResult(sqlmock.NewResult(0, 0))

		// Act
		fresh, err := repo.RecordEvent(ctx, event)

		// Assert
		require.NoError(t, err)
		assert.False(t, fresh)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database Error", func(t *testing.T) {
		// Arrange
		repo, mock := setup(t)
		dbError := errors.New("db down")

		mock.ExpectExec(insertSQL).WillReturnError(dbError)

		// Act
		fresh, err := repo.RecordEvent(ctx, event)

		// Assert
		require.ErrorIs(t, err, dbError)
		assert.False(t, fresh)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ReleaseEvent", func(t *testing.T) {
		// Arrange
		repo, mock := setup(t)

		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM payment_notifications WHERE idempotency_key = $1`)).
			WithArgs(event.IdempotencyKey()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		// Act
		err := repo.ReleaseEvent(ctx, event.IdempotencyKey())

		// Assert
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
