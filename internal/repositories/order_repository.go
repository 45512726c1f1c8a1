package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/digiri/giriloyo-batik/internal/models"
	"github.com/digiri/giriloyo-batik/internal/utils"
	"github.com/lib/pq"
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *models.Order) error
	GetOrderByID(ctx context.Context, orderID string) (*models.Order, error)
	ListOrdersByGuest(ctx context.Context, guestID string, page, size int) ([]*models.Order, int, error)
	UpdateOrder(ctx context.Context, order *models.Order) error
	ClaimItems(ctx context.Context, orderID string, lineNos []int, from []models.NFTStatus) ([]int, error)
	MarkItemMinted(ctx context.Context, orderID string, lineNo int, result *models.MintResult) error
	MarkItemFailed(ctx context.Context, orderID string, lineNo int, reason string) error
}

type orderRepository struct {
	DB *sql.DB
}

func NewOrderRepo(db *sql.DB) OrderRepository {
	return &orderRepository{DB: db}
}

const orderColumns = `order_id, guest_id, shipping_address, subtotal, shipping_cost, nft_fee, total, status,
	payment_method, payment_status, transaction_id, payment_token, payment_url, estimated_delivery,
	tracking_number, version, created_at, updated_at`

const orderItemColumns = `order_id, line_no, product_id, name, unit_price, size, color, quantity, image_ref, slug,
	nft_status, nft_id, nft_tx_hash, nft_contract, nft_error, mint_attempts`

func scanOrder(row rowScanner) (*models.Order, error) {
	order := &models.Order{Items: []models.OrderItem{}}

	var addressJSON []byte

	err := row.Scan(&order.OrderID, &order.GuestID, &addressJSON, &order.Subtotal, &order.ShippingCost,
		&order.NFTFee, &order.Total, &order.Status, &order.PaymentMethod, &order.PaymentStatus,
		&order.TransactionID, &order.PaymentToken, &order.PaymentURL, &order.EstimatedDelivery,
		&order.TrackingNumber, &order.Version, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(addressJSON, &order.ShippingAddress); err != nil {
		return nil, fmt.Errorf("failed to unmarshal shipping address: %w", err)
	}

	return order, nil
}

func scanOrderItem(row rowScanner) (string, models.OrderItem, error) {
	var (
		orderID string
		item    models.OrderItem
	)

	err := row.Scan(&orderID, &item.LineNo, &item.ProductID, &item.Name, &item.UnitPrice, &item.Size,
		&item.Color, &item.Quantity, &item.ImageRef, &item.Slug, &item.NFTStatus, &item.NFTID,
		&item.NFTTransactionHash, &item.NFTContractAddress, &item.NFTError, &item.MintAttempts)

	return orderID, item, err
}

// CreateOrder inserts the order with all of its lines in one transaction.
func (r *orderRepository) CreateOrder(ctx context.Context, order *models.Order) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	addressJSON, err := json.Marshal(order.ShippingAddress)
	if err != nil {
		return fmt.Errorf("failed to marshal shipping address: %w", err)
	}

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback() //nolint:errcheck

	query := `
		INSERT INTO orders (order_id, guest_id, shipping_address, subtotal, shipping_cost, nft_fee, total, status,
			payment_method, payment_status, estimated_delivery, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, 1, NOW(), NOW())
		RETURNING version, created_at, updated_at
	`

	err = tx.QueryRowContext(dbCtx, query, order.OrderID, order.GuestID, addressJSON, order.Subtotal,
		order.ShippingCost, order.NFTFee, order.Total, order.Status, order.PaymentMethod,
		order.PaymentStatus, order.EstimatedDelivery,
	).Scan(&order.Version, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateOrderID
		}
		return fmt.Errorf("failed to insert order: %w", err)
	}

	itemQuery := `
		INSERT INTO order_items (order_id, line_no, product_id, name, unit_price, size, color, quantity, image_ref, slug, nft_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	for i := range order.Items {
		item := &order.Items[i]
		if item.NFTStatus == "" {
			item.NFTStatus = models.NFTStatusPending
		}

		_, err := tx.ExecContext(dbCtx, itemQuery, order.OrderID, item.LineNo, item.ProductID, item.Name,
			item.UnitPrice, item.Size, item.Color, item.Quantity, item.ImageRef, item.Slug, item.NFTStatus)
		if err != nil {
			return fmt.Errorf("failed to insert order item %d: %w", item.LineNo, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit order: %w", err)
	}

	return nil
}

func (r *orderRepository) GetOrderByID(ctx context.Context, orderID string) (*models.Order, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_id = $1`

	order, err := scanOrder(r.DB.QueryRowContext(dbCtx, query, orderID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get order %s: %w", orderID, err)
	}

	items, err := r.loadItems(dbCtx, []string{orderID})
	if err != nil {
		return nil, err
	}

	order.Items = append(order.Items, items[orderID]...)

	return order, nil
}

func (r *orderRepository) loadItems(ctx context.Context, orderIDs []string) (map[string][]models.OrderItem, error) {
	query := `SELECT ` + orderItemColumns + ` FROM order_items WHERE order_id = ANY($1) ORDER BY order_id, line_no`

	rows, err := r.DB.QueryContext(ctx, query, pq.Array(orderIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to get order items: %w", err)
	}

	defer rows.Close()

	items := make(map[string][]models.OrderItem, len(orderIDs))

	for rows.Next() {
		orderID, item, err := scanOrderItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}

		items[orderID] = append(items[orderID], item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *orderRepository) ListOrdersByGuest(ctx context.Context, guestID string, page, size int) ([]*models.Order, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int

	err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM orders WHERE guest_id = $1`, guestID).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	offset := (page - 1) * size

	query := `SELECT ` + orderColumns + ` FROM orders WHERE guest_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(dbCtx, query, guestID, size, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}

	defer rows.Close()

	orders := []*models.Order{}
	ids := []string{}

	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan order: %w", err)
		}

		orders = append(orders, order)
		ids = append(ids, order.OrderID)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if len(orders) == 0 {
		return orders, total, nil
	}

	items, err := r.loadItems(dbCtx, ids)
	if err != nil {
		return nil, 0, err
	}

	for _, order := range orders {
		order.Items = append(order.Items, items[order.OrderID]...)
	}

	return orders, total, nil
}

// UpdateOrder persists the mutable order fields, guarded by order.Version.
func (r *orderRepository) UpdateOrder(ctx context.Context, order *models.Order) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE orders SET guest_id = $1, status = $2, payment_method = $3, payment_status = $4, transaction_id = $5,
			payment_token = $6, payment_url = $7, tracking_number = $8, version = version + 1, updated_at = NOW()
		WHERE order_id = $9 AND version = $10
		RETURNING version, updated_at
	`

	err := r.DB.QueryRowContext(dbCtx, query, order.GuestID, order.Status, order.PaymentMethod, order.PaymentStatus,
		order.TransactionID, order.PaymentToken, order.PaymentURL, order.TrackingNumber, order.OrderID, order.Version,
	).Scan(&order.Version, &order.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrVersionConflict
		}
		return fmt.Errorf("failed to update order %s: %w", order.OrderID, err)
	}

	return nil
}

// ClaimItems moves the given lines into minting when they are currently in
// one of the from states, and returns the line numbers it won. A line that
// another worker already claimed is not returned.
func (r *orderRepository) ClaimItems(ctx context.Context, orderID string, lineNos []int, from []models.NFTStatus) ([]int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	states := make([]string, len(from))
	for i, s := range from {
		states[i] = string(s)
	}

	lines := make([]int64, len(lineNos))
	for i, n := range lineNos {
		lines[i] = int64(n)
	}

	query := `
		UPDATE order_items SET nft_status = 'minting', mint_attempts = mint_attempts + 1, nft_error = '', updated_at = NOW()
		WHERE order_id = $1 AND line_no = ANY($2) AND nft_status = ANY($3)
		RETURNING line_no
	`

	rows, err := r.DB.QueryContext(dbCtx, query, orderID, pq.Array(lines), pq.Array(states))
	if err != nil {
		return nil, fmt.Errorf("failed to claim order items: %w", err)
	}

	defer rows.Close()

	claimed := []int{}

	for rows.Next() {
		var lineNo int
		if err := rows.Scan(&lineNo); err != nil {
			return nil, fmt.Errorf("failed to scan claimed line: %w", err)
		}

		claimed = append(claimed, lineNo)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return claimed, nil
}

func (r *orderRepository) MarkItemMinted(ctx context.Context, orderID string, lineNo int, result *models.MintResult) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE order_items SET nft_status = 'minted', nft_id = $1, nft_tx_hash = $2, nft_contract = $3, nft_error = '', updated_at = NOW()
		WHERE order_id = $4 AND line_no = $5
	`

	return r.execOne(dbCtx, query, result.NFTID, result.TransactionHash, result.ContractAddress, orderID, lineNo)
}

func (r *orderRepository) MarkItemFailed(ctx context.Context, orderID string, lineNo int, reason string) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE order_items SET nft_status = 'failed', nft_error = $1, updated_at = NOW()
		WHERE order_id = $2 AND line_no = $3
	`

	return r.execOne(dbCtx, query, reason, orderID, lineNo)
}

func (r *orderRepository) execOne(ctx context.Context, query string, args ...any) error {
	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order item: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}

	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
