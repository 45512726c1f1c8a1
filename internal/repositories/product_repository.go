package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/digiri/giriloyo-batik/internal/models"
	"github.com/digiri/giriloyo-batik/internal/utils"
	"github.com/lib/pq"
)

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *models.Product) error
	GetProductByID(ctx context.Context, id int64) (*models.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*models.Product, error)
	UpdateProduct(ctx context.Context, product *models.Product) error
	ListProducts(ctx context.Context, filter *models.ProductFilter, page, size int) ([]*models.Product, int, error)
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

const productColumns = `id, slug, name, description, price, images, sizes, colors, artisan, location, motif, processing_time, category, rating, sold, stock, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*models.Product, error) {
	product := &models.Product{}

	err := row.Scan(&product.ID, &product.Slug, &product.Name, &product.Description, &product.Price,
		pq.Array(&product.Images), pq.Array(&product.Sizes), pq.Array(&product.Colors),
		&product.Artisan, &product.Location, &product.Motif, &product.ProcessingTime,
		&product.Category, &product.Rating, &product.Sold,
		&product.Stock, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return product, nil
}

func (r *productRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `INSERT INTO products (slug, name, description, price, images, sizes, colors, artisan, location, motif, processing_time,
			  	category, rating, sold, stock)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
			  RETURNING id, created_at, updated_at`

	err := r.DB.QueryRowContext(dbCtx, query, product.Slug, product.Name, product.Description, product.Price,
		pq.Array(product.Images), pq.Array(product.Sizes), pq.Array(product.Colors),
		product.Artisan, product.Location, product.Motif, product.ProcessingTime,
		product.Category, product.Rating, product.Sold, product.Stock,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("product slug %q: %w", product.Slug, ErrDuplicateSlug)
		}
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

var ErrDuplicateSlug = errors.New("slug already exists")

func (r *productRepository) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	product, err := scanProduct(r.DB.QueryRowContext(dbCtx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product %d: %w", id, err)
	}

	return product, nil
}

func (r *productRepository) GetProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + productColumns + ` FROM products WHERE slug = $1`

	product, err := scanProduct(r.DB.QueryRowContext(dbCtx, query, slug))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product %q: %w", slug, err)
	}

	return product, nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE products SET name = $1, description = $2, price = $3, images = $4, sizes = $5, colors = $6,
			artisan = $7, location = $8, motif = $9, processing_time = $10, category = $11, rating = $12, sold = $13,
			stock = $14, updated_at = NOW()
		WHERE id = $15
		RETURNING updated_at
	`

	err := r.DB.QueryRowContext(dbCtx, query, product.Name, product.Description, product.Price,
		pq.Array(product.Images), pq.Array(product.Sizes), pq.Array(product.Colors),
		product.Artisan, product.Location, product.Motif, product.ProcessingTime,
		product.Category, product.Rating, product.Sold, product.Stock, product.ID,
	).Scan(&product.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update product %d: %w", product.ID, err)
	}

	return nil
}

// productOrder maps a sort key to its ORDER BY clause. Only these strings
// ever reach the query.
var productOrder = map[string]string{
	models.SortPopular:   "sold DESC, id",
	models.SortPriceLow:  "price ASC, id",
	models.SortPriceHigh: "price DESC, id",
	models.SortRating:    "rating DESC, id",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// productWhere builds a parameterized WHERE clause for filter.
func productWhere(filter *models.ProductFilter) (string, []any) {
	if filter == nil {
		return "", nil
	}

	var (
		conds []string
		args  []any
	)

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Category != "" {
		conds = append(conds, "category = "+arg(filter.Category))
	}

	if filter.MinPrice > 0 {
		conds = append(conds, "price >= "+arg(filter.MinPrice))
	}

	if filter.MaxPrice > 0 {
		conds = append(conds, "price <= "+arg(filter.MaxPrice))
	}

	if search := strings.TrimSpace(filter.Search); search != "" {
		p := arg("%" + likeEscaper.Replace(search) + "%")
		conds = append(conds, fmt.Sprintf("(name ILIKE %s OR motif ILIKE %s OR artisan ILIKE %s)", p, p, p))
	}

	if len(conds) == 0 {
		return "", args
	}

	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *productRepository) ListProducts(ctx context.Context, filter *models.ProductFilter, page, size int) ([]*models.Product, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	where, args := productWhere(filter)

	var total int

	err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM products`+where, args...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	order := productOrder[models.SortPopular]
	if filter != nil {
		if o, ok := productOrder[filter.Sort]; ok {
			order = o
		}
	}

	offset := (page - 1) * size

	query := fmt.Sprintf(`SELECT %s FROM products%s ORDER BY %s LIMIT $%d OFFSET $%d`,
		productColumns, where, order, len(args)+1, len(args)+2)

	rows, err := r.DB.QueryContext(dbCtx, query, append(args, size, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}

	defer rows.Close()

	products := []*models.Product{}

	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan product: %w", err)
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return products, total, nil
}
