package mocks

import (
	"context"

	"github.com/digiri/giriloyo-batik/internal/models"
	"github.com/stretchr/testify/mock"
)

type ProductService struct {
	mock.Mock
}

func (_m *ProductService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	ret := _m.Called(ctx, req)

	var r0 *models.Product
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.Product)
	}

	return r0, ret.Error(1)
}

func (_m *ProductService) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.Product
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.Product)
	}

	return r0, ret.Error(1)
}

func (_m *ProductService) GetProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	ret := _m.Called(ctx, slug)

	var r0 *models.Product
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.Product)
	}

	return r0, ret.Error(1)
}

func (_m *ProductService) UpdateProduct(ctx context.Context, id int64, req *models.UpdateProductRequest) (*models.Product, error) {
	ret := _m.Called(ctx, id, req)

	var r0 *models.Product
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.Product)
	}

	return r0, ret.Error(1)
}

func (_m *ProductService) ListProducts(ctx context.Context, filter *models.ProductFilter, page, pageSize int) ([]*models.Product, int, error) {
	ret := _m.Called(ctx, filter, page, pageSize)

	var r0 []*models.Product
	if v := ret.Get(0); v != nil {
		r0 = v.([]*models.Product)
	}

	return r0, ret.Int(1), ret.Error(2)
}
