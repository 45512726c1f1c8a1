package mocks

import (
	"context"

	"github.com/digiri/giriloyo-batik/internal/models"
	"github.com/stretchr/testify/mock"
)

type ProductRepository struct {
	mock.Mock
}

func (_m *ProductRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	ret := _m.Called(ctx, product)

	return ret.Error(0)
}

func (_m *ProductRepository) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.Product
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.Product)
	}

	return r0, ret.Error(1)
}

func (_m *ProductRepository) GetProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	ret := _m.Called(ctx, slug)

	var r0 *models.Product
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.Product)
	}

	return r0, ret.Error(1)
}

func (_m *ProductRepository) UpdateProduct(ctx context.Context, product *models.Product) error {
	ret := _m.Called(ctx, product)

	return ret.Error(0)
}

func (_m *ProductRepository) ListProducts(ctx context.Context, filter *models.ProductFilter, page, size int) ([]*models.Product, int, error) {
	ret := _m.Called(ctx, filter, page, size)

	var r0 []*models.Product
	if v := ret.Get(0); v != nil {
		r0 = v.([]*models.Product)
	}

	return r0, ret.Int(1), ret.Error(2)
}
