package repository_test

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/digiri/giriloyo-batik/internal/models"
	repository "github.com/digiri/giriloyo-batik/internal/repositories"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productRowColumns = []string{
	"id", "slug", "name", "description", "price", "images", "sizes", "colors",
	"artisan", "location", "motif", "processing_time", "category", "rating", "sold", "stock", "created_at", "updated_at",
}

func setupProductRepoTest(t *testing.T) (repository.ProductRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	return repository.NewProductRepo(db), mock
}

func addProductRow(rows *sqlmock.Rows, id int64, slug string, now time.Time) *sqlmock.Rows {
	return rows.AddRow(id, slug, "Kain Batik Tulis Motif Parang", "Batik tulis", int64(850000),
		"{https://cdn.example.com/parang.jpg}", "{S,M,L}", `{"Sogan Brown"}`,
		"Ibu Sumiyati", "Giriloyo", "Parang", "14 hari", "klasik", 4.8, 120, 3, now, now)
}

func TestProductRepository(t *testing.T) {
	ctx := t.Context()
	now := time.Now()

	t.Run("CreateProduct", func(t *testing.T) {
		expectedSQL := regexp.QuoteMeta(`INSERT INTO products (slug, name, description, price, images, sizes, colors`)

		product := &models.Product{
			Slug:   "kain-motif-parang",
			Name:   "Kain Batik Tulis Motif Parang",
			Price:  850000,
			Images: []string{"https://cdn.example.com/parang.jpg"},
			Sizes:    []string{"S", "M"},
			Category: models.CategoryKlasik,
			Stock:    3,
		}

		t.Run("Success", func(t *testing.T) {
			// Arrange
			repo, mock := setupProductRepoTest(t)

			mock.ExpectQuery(expectedSQL).
				WithArgs(product.Slug, product.Name, product.Description, product.Price,
					sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
					product.Artisan, product.Location, product.Motif, product.ProcessingTime,
					product.Category, product.Rating, product.Sold, product.Stock).
				WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(11), now, now))

			// Act
			err := repo.CreateProduct(ctx, product)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, int64(11), product.ID)
			assert.WithinDuration(t, now, product.CreatedAt, time.Second)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Duplicate Slug", func(t *testing.T) {
			// Arrange
			repo, mock := setupProductRepoTest(t)

			mock.ExpectQuery(expectedSQL).WillReturnError(&pq.Error{Code: "23505"})

			// Act
			err := repo.CreateProduct(ctx, product)

			// Assert
			require.Error(t, err)
			assert.ErrorIs(t, err, repository.ErrDuplicateSlug)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Database Error", func(t *testing.T) {
			// Arrange
			repo, mock := setupProductRepoTest(t)
			dbError := errors.New("database insertion error")

			mock.ExpectQuery(expectedSQL).WillReturnError(dbError)

			// Act
			err := repo.CreateProduct(ctx, product)

			// Assert
			require.Error(t, err)
			assert.ErrorIs(t, err, dbError)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("GetProductByID", func(t *testing.T) {
		expectedSQL := regexp.QuoteMeta(`FROM products WHERE id = $1`)

		t.Run("Success", func(t *testing.T) {
			// Arrange
			repo, mock := setupProductRepoTest(t)

			mock.ExpectQuery(expectedSQL).
				WithArgs(int64(7)).
				WillReturnRows(addProductRow(sqlmock.NewRows(productRowColumns), 7, "kain-motif-parang", now))

			// Act
			product, err := repo.GetProductByID(ctx, 7)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, int64(7), product.ID)
			assert.Equal(t, int64(850000), product.Price)
			assert.Equal(t, []string{"S", "M", "L"}, product.Sizes)
			assert.Equal(t, []string{"Sogan Brown"}, product.Colors)
			assert.Equal(t, "https://cdn.example.com/parang.jpg", product.PrimaryImage())
			assert.Equal(t, "klasik", product.Category)
			assert.Equal(t, 4.8, product.Rating)
			assert.Equal(t, 120, product.Sold)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Not Found", func(t *testing.T) {
			// Arrange
			repo, mock := setupProductRepoTest(t)

			mock.ExpectQuery(expectedSQL).WithArgs(int64(404)).WillReturnError(sql.ErrNoRows)

			// Act
			product, err := repo.GetProductByID(ctx, 404)

			// Assert
			require.ErrorIs(t, err, repository.ErrNotFound)
			assert.Nil(t, product)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("GetProductBySlug", func(t *testing.T) {
		expectedSQL := regexp.QuoteMeta(`FROM products WHERE slug = $1`)

		t.Run("Success", func(t *testing.T) {
			// Arrange
			repo, mock := setupProductRepoTest(t)

			mock.ExpectQuery(expectedSQL).
				WithArgs("kain-motif-parang").
				WillReturnRows(addProductRow(sqlmock.NewRows(productRowColumns), 7, "kain-motif-parang", now))

			// Act
			product, err := repo.GetProductBySlug(ctx, "kain-motif-parang")

			// Assert
			require.NoError(t, err)
			assert.Equal(t, "kain-motif-parang", product.Slug)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Not Found", func(t *testing.T) {
			// Arrange
			repo, mock := setupProductRepoTest(t)

			mock.ExpectQuery(expectedSQL).WithArgs("missing").WillReturnError(sql.ErrNoRows)

			// Act
			_, err := repo.GetProductBySlug(ctx, "missing")

			// Assert
			require.ErrorIs(t, err, repository.ErrNotFound)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("UpdateProduct", func(t *testing.T) {
		expectedSQL := regexp.QuoteMeta(`UPDATE products SET name = $1`)
		product := &models.Product{ID: 7, Name: "Kain Motif Kawung", Price: 900000}

		t.Run("Success", func(t *testing.T) {
			// Arrange
			repo, mock := setupProductRepoTest(t)

			mock.ExpectQuery(expectedSQL).
				WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(now))

			// Act
			err := repo.UpdateProduct(ctx, product)

			// Assert
			require.NoError(t, err)
			assert.WithinDuration(t, now, product.UpdatedAt, time.Second)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Not Found", func(t *testing.T) {
			// Arrange
			repo, mock := setupProductRepoTest(t)

			mock.ExpectQuery(expectedSQL).WillReturnError(sql.ErrNoRows)

			// Act
			err := repo.UpdateProduct(ctx, product)

			// Assert
			require.ErrorIs(t, err, repository.ErrNotFound)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("ListProducts", func(t *testing.T) {
		countSQL := regexp.QuoteMeta(`SELECT COUNT(*) FROM products`)

		t.Run("Success - No Filter Sorts By Sales", func(t *testing.T) {
			// Arrange
			repo, mock := setupProductRepoTest(t)

			mock.ExpectQuery(countSQL + `$`).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

			rows := sqlmock.NewRows(productRowColumns)
			addProductRow(rows, 11, "kain-a", now)
			addProductRow(rows, 12, "kain-b", now)
			mock.ExpectQuery(regexp.QuoteMeta(`FROM products ORDER BY sold DESC, id LIMIT $1 OFFSET $2`)).
				WithArgs(10, 10).WillReturnRows(rows)

			// Act
			products, total, err := repo.ListProducts(ctx, &models.ProductFilter{}, 2, 10)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, 12, total)
			require.Len(t, products, 2)
			assert.Equal(t, "kain-b", products[1].Slug)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Success - Filters Are Parameterized", func(t *testing.T) {
			// Arrange
			repo, mock := setupProductRepoTest(t)
			filter := &models.ProductFilter{
				Category: models.CategoryModern,
				MinPrice: 1_000_000,
				MaxPrice: 2_000_000,
				Search:   "50%_off",
				Sort:     models.SortPriceHigh,
			}
			where := ` WHERE category = $1 AND price >= $2 AND price <= $3 AND (name ILIKE $4 OR motif ILIKE $4 OR artisan ILIKE $4)`
			pattern := `%50\%\_off%`

			mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM products`+where)).
				WithArgs("modern", int64(1_000_000), int64(2_000_000), pattern).
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
			mock.ExpectQuery(regexp.QuoteMeta(`FROM products`+where+` ORDER BY price DESC, id LIMIT $5 OFFSET $6`)).
				WithArgs("modern", int64(1_000_000), int64(2_000_000), pattern, 10, 0).
				WillReturnRows(addProductRow(sqlmock.NewRows(productRowColumns), 3, "kain-modern", now))

			// Act
			products, total, err := repo.ListProducts(ctx, filter, 1, 10)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, 1, total)
			require.Len(t, products, 1)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Success - Unknown Sort Falls Back To Popular", func(t *testing.T) {
			// Arrange
			repo, mock := setupProductRepoTest(t)

			mock.ExpectQuery(countSQL).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
			mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY sold DESC, id LIMIT`)).WillReturnRows(sqlmock.NewRows(productRowColumns))

			// Act
			products, _, err := repo.ListProducts(ctx, &models.ProductFilter{Sort: "id; DROP TABLE products"}, 1, 10)

			// Assert
			require.NoError(t, err)
			assert.Empty(t, products)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Count Error", func(t *testing.T) {
			// Arrange
			repo, mock := setupProductRepoTest(t)
			dbError := errors.New("count failed")

			mock.ExpectQuery(countSQL).WillReturnError(dbError)

			// Act
			products, total, err := repo.ListProducts(ctx, nil, 1, 10)

			// Assert
			require.ErrorIs(t, err, dbError)
			assert.Nil(t, products)
			assert.Zero(t, total)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})
}
