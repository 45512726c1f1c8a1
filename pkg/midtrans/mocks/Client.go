package mocks

import (
	"github.com/digiri/giriloyo-batik/pkg/midtrans"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"
	"github.com/stretchr/testify/mock"
)

type Client struct {
	mock.Mock
}

func (_m *Client) CreateTransaction(req *snap.Request) (*snap.Response, error) {
	ret := _m.Called(req)

	var r0 *snap.Response
	if v := ret.Get(0); v != nil {
		r0 = v.(*snap.Response)
	}

	return r0, ret.Error(1)
}

func (_m *Client) CheckTransaction(orderID string) (*coreapi.TransactionStatusResponse, error) {
	ret := _m.Called(orderID)

	var r0 *coreapi.TransactionStatusResponse
	if v := ret.Get(0); v != nil {
		r0 = v.(*coreapi.TransactionStatusResponse)
	}

	return r0, ret.Error(1)
}

func (_m *Client) VerifySignature(n *midtrans.Notification) bool {
	ret := _m.Called(n)

	return ret.Bool(0)
}
