package service_test

import (
	"context"
	"errors"
	"testing"

	cacheMocks "github.com/digiri/giriloyo-batik/internal/cache/mocks"
	appErrors "github.com/digiri/giriloyo-batik/internal/errors"
	"github.com/digiri/giriloyo-batik/internal/models"
	repository "github.com/digiri/giriloyo-batik/internal/repositories"
	"github.com/digiri/giriloyo-batik/internal/repositories/mocks"
	service "github.com/digiri/giriloyo-batik/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestProduct() *models.Product {
	return &models.Product{
		ID:     1,
		Slug:   "batik-tulis-motif-sekar-jagad",
		Name:   "Batik Tulis Motif Sekar Jagad",
		Price:  450000,
		Images: []string{"https://cdn.example.com/sekar-jagad.jpg"},
		Sizes:  []string{"M", "L"},
		Colors: []string{"Sogan"},
	}
}

func requireAppError(t *testing.T, err error, code string) *appErrors.AppError {
	t.Helper()

	var appErr *appErrors.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	assert.Equal(t, code, appErr.Code)

	return appErr
}

func TestCreateProduct(t *testing.T) {
	req := &models.CreateProductRequest{
		Slug:  "batik-tulis-motif-parang",
		Name:  "Batik Tulis Motif Parang",
		Price: 350000,
	}

	t.Run("Success - Create Product", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.ProductRepository)
		productService := service.NewProductService(mockRepo, new(cacheMocks.Cache))

		mockRepo.On("CreateProduct", mock.Anything, mock.MatchedBy(func(p *models.Product) bool {
			return p.Slug == req.Slug && p.Price == req.Price && p.Sizes != nil && p.Images != nil &&
				p.Category == models.CategoryKlasik
		})).Return(nil).Once()

		// Act
		product, err := productService.CreateProduct(context.Background(), req)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, req.Name, product.Name)
		assert.Empty(t, product.Sizes)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Duplicate Slug", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.ProductRepository)
		productService := service.NewProductService(mockRepo, new(cacheMocks.Cache))

		mockRepo.On("CreateProduct", mock.Anything, mock.AnythingOfType("*models.Product")).Return(repository.ErrDuplicateSlug).Once()

		// Act
		product, err := productService.CreateProduct(context.Background(), req)

		// Assert
		assert.Nil(t, product)
		requireAppError(t, err, appErrors.ErrCodeDuplicateEntry)
		mockRepo.AssertExpectations(t)
	})
}

func TestGetProductByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Cache Hit", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.ProductRepository)
		mockCache := new(cacheMocks.Cache)
		productService := service.NewProductService(mockRepo, mockCache)
		cached := newTestProduct()

		mockCache.On("Get", mock.Anything, "product:1", mock.Anything).Return(func(_ context.Context, _ string, value any) bool {
			*value.(*models.Product) = *cached
			return true
		}, nil).Once()

		// Act
		product, err := productService.GetProductByID(ctx, 1)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, cached.Slug, product.Slug)
		mockRepo.AssertNotCalled(t, "GetProductByID", mock.Anything, mock.Anything)
		mockCache.AssertExpectations(t)
	})

	t.Run("Success - Cache Miss Loads And Stores", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.ProductRepository)
		mockCache := new(cacheMocks.Cache)
		productService := service.NewProductService(mockRepo, mockCache)
		stored := newTestProduct()

		mockCache.On("Get", mock.Anything, "product:1", mock.Anything).Return(false, nil).Once()
		mockRepo.On("GetProductByID", mock.Anything, int64(1)).Return(stored, nil).Once()
		mockCache.On("Set", mock.Anything, "product:1", stored, mock.Anything).Return(nil).Once()

		// Act
		product, err := productService.GetProductByID(ctx, 1)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, stored, product)
		mockRepo.AssertExpectations(t)
		mockCache.AssertExpectations(t)
	})

	t.Run("Success - Cache Error Falls Back To Database", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.ProductRepository)
		mockCache := new(cacheMocks.Cache)
		productService := service.NewProductService(mockRepo, mockCache)
		stored := newTestProduct()

		mockCache.On("Get", mock.Anything, "product:1", mock.Anything).Return(false, errors.New("redis down")).Once()
		mockRepo.On("GetProductByID", mock.Anything, int64(1)).Return(stored, nil).Once()
		mockCache.On("Set", mock.Anything, "product:1", stored, mock.Anything).Return(errors.New("redis down")).Once()

		// Act
		product, err := productService.GetProductByID(ctx, 1)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, stored, product)
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.ProductRepository)
		mockCache := new(cacheMocks.Cache)
		productService := service.NewProductService(mockRepo, mockCache)

		mockCache.On("Get", mock.Anything, "product:9", mock.Anything).Return(false, nil).Once()
		mockRepo.On("GetProductByID", mock.Anything, int64(9)).Return(nil, repository.ErrNotFound).Once()

		// Act
		product, err := productService.GetProductByID(ctx, 9)

		// Assert
		assert.Nil(t, product)
		appErr := requireAppError(t, err, appErrors.ErrCodeNotFound)
		assert.Equal(t, "Product not found", appErr.Message)
		mockCache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUpdateProduct(t *testing.T) {
	t.Run("Success - Invalidates Both Cache Keys", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.ProductRepository)
		mockCache := new(cacheMocks.Cache)
		productService := service.NewProductService(mockRepo, mockCache)
		newPrice := int64(500000)

		mockRepo.On("GetProductByID", mock.Anything, int64(1)).Return(newTestProduct(), nil).Once()
		mockRepo.On("UpdateProduct", mock.Anything, mock.MatchedBy(func(p *models.Product) bool {
			return p.Price == newPrice && p.Name == "Batik Tulis Motif Sekar Jagad"
		})).Return(nil).Once()
		mockCache.On("Delete", mock.Anything, "product:1", "product_slug:batik-tulis-motif-sekar-jagad").Return(nil).Once()

		// Act
		product, err := productService.UpdateProduct(context.Background(), 1, &models.UpdateProductRequest{Price: &newPrice})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, newPrice, product.Price)
		mockRepo.AssertExpectations(t)
		mockCache.AssertExpectations(t)
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.ProductRepository)
		productService := service.NewProductService(mockRepo, new(cacheMocks.Cache))

		mockRepo.On("GetProductByID", mock.Anything, int64(2)).Return(nil, repository.ErrNotFound).Once()

		// Act
		_, err := productService.UpdateProduct(context.Background(), 2, &models.UpdateProductRequest{})

		// Assert
		requireAppError(t, err, appErrors.ErrCodeNotFound)
	})
}

func TestListProducts(t *testing.T) {
	t.Run("Success - Paging Normalized And Popular By Default", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.ProductRepository)
		productService := service.NewProductService(mockRepo, new(cacheMocks.Cache))

		mockRepo.On("ListProducts", mock.Anything, &models.ProductFilter{Sort: models.SortPopular}, 1, 10).
			Return([]*models.Product{newTestProduct()}, 1, nil).Once()

		// Act
		products, total, err := productService.ListProducts(context.Background(), nil, 0, 1000)

		// Assert
		require.NoError(t, err)
		assert.Len(t, products, 1)
		assert.Equal(t, 1, total)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Success - Filter Passed Through", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.ProductRepository)
		productService := service.NewProductService(mockRepo, new(cacheMocks.Cache))
		filter := &models.ProductFilter{Category: models.CategoryKontemporer, Search: "kawung", Sort: models.SortRating}

		mockRepo.On("ListProducts", mock.Anything, filter, 2, 20).Return([]*models.Product{}, 0, nil).Once()

		// Act
		_, _, err := productService.ListProducts(context.Background(), filter, 2, 20)

		// Assert
		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}
