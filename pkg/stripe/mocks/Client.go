package mocks

import (
	stripeClient "github.com/digiri/giriloyo-batik/pkg/stripe"
	"github.com/stretchr/testify/mock"
	"github.com/stripe/stripe-go/v81"
)

type Client struct {
	mock.Mock
}

func (_m *Client) CreateCheckoutSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	ret := _m.Called(params)

	var r0 *stripe.CheckoutSession
	if v := ret.Get(0); v != nil {
		r0 = v.(*stripe.CheckoutSession)
	}

	return r0, ret.Error(1)
}

func (_m *Client) VerifyWebhookSignature(payload []byte, signature string) (stripeClient.Event, error) {
	ret := _m.Called(payload, signature)

	var r0 stripeClient.Event
	if v := ret.Get(0); v != nil {
		r0 = v.(stripeClient.Event)
	}

	return r0, ret.Error(1)
}
