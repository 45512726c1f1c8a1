package midtrans

import (
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Client is the subset of the Midtrans API the storefront uses.
type Client interface {
	CreateTransaction(req *snap.Request) (*snap.Response, error)
	CheckTransaction(orderID string) (*coreapi.TransactionStatusResponse, error)
	VerifySignature(n *Notification) bool
}

// Notification is the HTTP notification body Midtrans posts after a payment changes state.
type Notification struct {
	OrderID           string `json:"order_id"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	TransactionID     string `json:"transaction_id"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
	PaymentType       string `json:"payment_type"`
}

type midtransClient struct {
	serverKey string
	snap      snap.Client
	core      coreapi.Client
}

func NewMidtransClient(serverKey string, isProduction bool, timeout time.Duration) Client {
	env := midtrans.Sandbox
	if isProduction {
		env = midtrans.Production
	}

	// the SDK reads this when a client is created
	midtrans.DefaultGoHttpClient = &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	c := &midtransClient{serverKey: serverKey}
	c.snap.New(serverKey, env)
	c.core.New(serverKey, env)

	return c
}

func (c *midtransClient) CreateTransaction(req *snap.Request) (*snap.Response, error) {
	resp, mErr := c.snap.CreateTransaction(req)
	if mErr != nil {
		return resp, mErr
	}

	return resp, nil
}

func (c *midtransClient) CheckTransaction(orderID string) (*coreapi.TransactionStatusResponse, error) {
	resp, mErr := c.core.CheckTransaction(orderID)
	if mErr != nil {
		return nil, mErr
	}

	return resp, nil
}

func (c *midtransClient) VerifySignature(n *Notification) bool {
	return VerifySignature(n, c.serverKey)
}

// Signature is SHA512(order_id + status_code + gross_amount + server key), hex encoded.
func Signature(orderID, statusCode, grossAmount, serverKey string) string {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))

	return hex.EncodeToString(sum[:])
}

func VerifySignature(n *Notification, serverKey string) bool {
	if n == nil || n.SignatureKey == "" || serverKey == "" {
		return false
	}

	expected := Signature(n.OrderID, n.StatusCode, n.GrossAmount, serverKey)

	return subtle.ConstantTimeCompare([]byte(expected), []byte(n.SignatureKey)) == 1
}
