package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/digiri/giriloyo-batik/internal/api/middleware"
	"github.com/digiri/giriloyo-batik/internal/cache"
	appErrors "github.com/digiri/giriloyo-batik/internal/errors"
	"github.com/digiri/giriloyo-batik/internal/models"
	repository "github.com/digiri/giriloyo-batik/internal/repositories"
)

type ProductService interface {
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	GetProductByID(ctx context.Context, id int64) (*models.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*models.Product, error)
	UpdateProduct(ctx context.Context, id int64, req *models.UpdateProductRequest) (*models.Product, error)
	ListProducts(ctx context.Context, filter *models.ProductFilter, page, pageSize int) ([]*models.Product, int, error)
}

type productService struct {
	repo  repository.ProductRepository
	cache cache.Cache
}

func NewProductService(repo repository.ProductRepository, cache cache.Cache) ProductService {
	return &productService{repo: repo, cache: cache}
}

func (s *productService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {

	product := &models.Product{
		Slug:           req.Slug,
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		Images:         nonNil(req.Images),
		Sizes:          nonNil(req.Sizes),
		Colors:         nonNil(req.Colors),
		Artisan:        req.Artisan,
		Location:       req.Location,
		Motif:          req.Motif,
		ProcessingTime: req.ProcessingTime,
		Category:       req.Category,
		Rating:         req.Rating,
		Sold:           req.Sold,
		Stock:          req.Stock,
	}

	if product.Category == "" {
		product.Category = models.CategoryKlasik
	}

	err := s.repo.CreateProduct(ctx, product)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateSlug) {
			return nil, appErrors.DuplicateEntryError("Product slug already exists").WithError(err)
		}
		return nil, appErrors.DatabaseError("Failed to create product").WithError(err)
	}

	return product, nil
}

// cached looks key up in the cache and falls back to load. Cache failures
// are logged and never fail the read.
func (s *productService) cached(ctx context.Context, key string, load func() (*models.Product, error)) (*models.Product, error) {
	logger := middleware.LoggerFromContext(ctx)

	var product models.Product

	found, err := s.cache.Get(ctx, key, &product)
	if err != nil {
		logger.Warn("Product cache read failed", slog.String("key", key), slog.Any("error", err))
	}

	if found {
		return &product, nil
	}

	loaded, err := load()
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.NotFoundError("Product not found").WithError(err)
		}
		return nil, appErrors.DatabaseError("Failed to fetch product").WithError(err)
	}

	if err := s.cache.Set(ctx, key, loaded, 0); err != nil {
		logger.Warn("Product cache write failed", slog.String("key", key), slog.Any("error", err))
	}

	return loaded, nil
}

func (s *productService) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	return s.cached(ctx, cache.ProductKey(id), func() (*models.Product, error) {
		return s.repo.GetProductByID(ctx, id)
	})
}

func (s *productService) GetProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	return s.cached(ctx, cache.ProductSlugKey(slug), func() (*models.Product, error) {
		return s.repo.GetProductBySlug(ctx, slug)
	})
}

func (s *productService) UpdateProduct(ctx context.Context, id int64, req *models.UpdateProductRequest) (*models.Product, error) {

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.NotFoundError("Product not found").WithError(err)
		}
		return nil, appErrors.DatabaseError("Failed to fetch product").WithError(err)
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Images != nil {
		product.Images = req.Images
	}
	if req.Sizes != nil {
		product.Sizes = req.Sizes
	}
	if req.Colors != nil {
		product.Colors = req.Colors
	}
	if req.Artisan != nil {
		product.Artisan = *req.Artisan
	}
	if req.Location != nil {
		product.Location = *req.Location
	}
	if req.Motif != nil {
		product.Motif = *req.Motif
	}
	if req.ProcessingTime != nil {
		product.ProcessingTime = *req.ProcessingTime
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Rating != nil {
		product.Rating = *req.Rating
	}
	if req.Sold != nil {
		product.Sold = *req.Sold
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}

	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		return nil, appErrors.DatabaseError("Failed to update product").WithError(err)
	}

	if err := s.cache.Delete(ctx, cache.ProductKey(product.ID), cache.ProductSlugKey(product.Slug)); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Failed to invalidate product cache", slog.Int64("productId", product.ID), slog.Any("error", err))
	}

	return product, nil
}

func (s *productService) ListProducts(ctx context.Context, filter *models.ProductFilter, page, pageSize int) ([]*models.Product, int, error) {

	if page < 1 {
		page = 1
	}

	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	if filter == nil {
		filter = &models.ProductFilter{}
	}

	if filter.Sort == "" {
		filter.Sort = models.SortPopular
	}

	products, total, err := s.repo.ListProducts(ctx, filter, page, pageSize)
	if err != nil {
		return nil, 0, appErrors.DatabaseError("Failed to list products").WithError(err)
	}

	return products, total, nil
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
