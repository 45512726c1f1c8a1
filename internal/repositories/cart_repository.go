package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/digiri/giriloyo-batik/internal/models"
	"github.com/digiri/giriloyo-batik/internal/utils"
)

type CartRepository interface {
	GetCart(ctx context.Context, guestID string) (*models.Cart, error)
	SaveCart(ctx context.Context, cart *models.Cart) error
}

type cartRepository struct {
	DB *sql.DB
}

func NewCartRepo(db *sql.DB) CartRepository {
	return &cartRepository{DB: db}
}

// GetCart returns an empty cart with Version 0 when the guest has none stored.
func (r *cartRepository) GetCart(ctx context.Context, guestID string) (*models.Cart, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT items, version, updated_at FROM carts WHERE guest_id = $1`

	cart := &models.Cart{GuestID: guestID, Items: []models.CartItem{}}

	var itemsJSON []byte

	err := r.DB.QueryRowContext(dbCtx, query, guestID).Scan(&itemsJSON, &cart.Version, &cart.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return cart, nil
		}
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	if err := json.Unmarshal(itemsJSON, &cart.Items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart items: %w", err)
	}

	return cart, nil
}

// SaveCart writes the cart if nobody else has since. A cart with Version 0
// is inserted; otherwise the stored version must still equal cart.Version.
// ErrVersionConflict is returned when the write lost the race.
func (r *cartRepository) SaveCart(ctx context.Context, cart *models.Cart) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}

	itemsJSON, err := json.Marshal(cart.Items)
	if err != nil {
		return fmt.Errorf("failed to marshal cart items: %w", err)
	}

	var row *sql.Row

	if cart.Version == 0 {
		row = r.DB.QueryRowContext(dbCtx, `
			INSERT INTO carts (guest_id, items, version, updated_at)
			VALUES ($1, $2, 1, NOW())
			ON CONFLICT (guest_id) DO NOTHING
			RETURNING version, updated_at
		`, cart.GuestID, itemsJSON)
	} else {
		row = r.DB.QueryRowContext(dbCtx, `
			UPDATE carts SET items = $1, version = version + 1, updated_at = NOW()
			WHERE guest_id = $2 AND version = $3
			RETURNING version, updated_at
		`, itemsJSON, cart.GuestID, cart.Version)
	}

	if err := row.Scan(&cart.Version, &cart.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrVersionConflict
		}
		return fmt.Errorf("failed to save cart: %w", err)
	}

	return nil
}
