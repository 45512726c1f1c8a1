package mocks

import (
	"context"
	"encoding/json"

	"github.com/digiri/giriloyo-batik/internal/models"
	"github.com/stretchr/testify/mock"
)

type Client struct {
	mock.Mock
}

func (_m *Client) MintCertificate(ctx context.Context, recipientEmail string, metadata models.CertificateMetadata) (*models.MintResult, error) {
	ret := _m.Called(ctx, recipientEmail, metadata)

	var r0 *models.MintResult
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.MintResult)
	}

	return r0, ret.Error(1)
}

func (_m *Client) GetNFT(ctx context.Context, nftID string) (json.RawMessage, error) {
	ret := _m.Called(ctx, nftID)

	var r0 json.RawMessage
	if v := ret.Get(0); v != nil {
		r0 = v.(json.RawMessage)
	}

	return r0, ret.Error(1)
}
