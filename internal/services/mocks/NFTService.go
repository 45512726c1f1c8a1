package mocks

import (
	"context"

	"github.com/digiri/giriloyo-batik/internal/models"
	"github.com/stretchr/testify/mock"
)

type NFTService struct {
	mock.Mock
}

func summary(ret mock.Arguments) (*models.MintSummary, error) {
	var r0 *models.MintSummary
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.MintSummary)
	}

	return r0, ret.Error(1)
}

func (_m *NFTService) ProcessMintJob(ctx context.Context, job models.MintJob) error {
	ret := _m.Called(ctx, job)

	return ret.Error(0)
}

func (_m *NFTService) MintOrder(ctx context.Context, job models.MintJob) (*models.MintSummary, error) {
	return summary(_m.Called(ctx, job))
}

func (_m *NFTService) RetryFailed(ctx context.Context, orderID string) (*models.MintSummary, error) {
	return summary(_m.Called(ctx, orderID))
}

func (_m *NFTService) MintItem(ctx context.Context, req *models.CertificateRequest) (*models.MintResult, error) {
	ret := _m.Called(ctx, req)

	var r0 *models.MintResult
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.MintResult)
	}

	return r0, ret.Error(1)
}

func (_m *NFTService) GetStatus(ctx context.Context, guestID, orderID string) (*models.NFTOrderStatus, error) {
	ret := _m.Called(ctx, guestID, orderID)

	var r0 *models.NFTOrderStatus
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.NFTOrderStatus)
	}

	return r0, ret.Error(1)
}

func (_m *NFTService) GetCertificates(ctx context.Context, guestID, orderID string) ([]models.CertificateDetails, error) {
	ret := _m.Called(ctx, guestID, orderID)

	var r0 []models.CertificateDetails
	if v := ret.Get(0); v != nil {
		r0 = v.([]models.CertificateDetails)
	}

	return r0, ret.Error(1)
}
