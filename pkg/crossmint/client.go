package crossmint

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/digiri/giriloyo-batik/internal/config"
	"github.com/digiri/giriloyo-batik/internal/models"
	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const apiVersion = "2022-06-09"

var ErrNFTNotFound = errors.New("nft not found in crossmint")

// Client mints and reads certificate NFTs in one Crossmint collection.
type Client interface {
	MintCertificate(ctx context.Context, recipientEmail string, metadata models.CertificateMetadata) (*models.MintResult, error)
	GetNFT(ctx context.Context, nftID string) (json.RawMessage, error)
}

type mintRequest struct {
	Recipient           string                     `json:"recipient"`
	Metadata            models.CertificateMetadata `json:"metadata"`
	ReuploadLinkedFiles bool                       `json:"reuploadLinkedFiles"`
	Compressed          bool                       `json:"compressed"`
}

type mintResponse struct {
	ID      string `json:"id"`
	OnChain struct {
		TxID            string `json:"txId"`
		ContractAddress string `json:"contractAddress"`
	} `json:"onChain"`
}

// APIError is a non-2xx answer from Crossmint.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Crossmint API error: %d - %s", e.StatusCode, e.Body)
}

type crossmintClient struct {
	cfg     config.Crossmint
	http    *http.Client
	breaker *gobreaker.CircuitBreaker[[]byte]
}

func NewCrossmintClient(cfg config.Crossmint) Client {
	return newClient(cfg, &http.Client{
		Timeout:   cfg.Timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	})
}

func newClient(cfg config.Crossmint, httpClient *http.Client) *crossmintClient {
	breakerTimeout := cfg.BreakerTimeout
	if breakerTimeout <= 0 {
		breakerTimeout = time.Minute
	}

	breaker := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        "crossmint",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     breakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		// a missing NFT is an answer, not an outage
		IsSuccessful: func(err error) bool {
			var apiErr *APIError
			if errors.As(err, &apiErr) {
				return apiErr.StatusCode < http.StatusInternalServerError
			}

			return err == nil
		},
	})

	return &crossmintClient{cfg: cfg, http: httpClient, breaker: breaker}
}

func (c *crossmintClient) nftsURL() string {
	return fmt.Sprintf("%s/api/%s/collections/%s/nfts", c.cfg.BaseURL, apiVersion, url.PathEscape(c.cfg.CollectionID))
}

func (c *crossmintClient) MintCertificate(ctx context.Context, recipientEmail string, metadata models.CertificateMetadata) (*models.MintResult, error) {
	body, err := json.Marshal(mintRequest{
		Recipient:           fmt.Sprintf("email:%s:%s", recipientEmail, c.cfg.Chain),
		Metadata:            metadata,
		ReuploadLinkedFiles: true,
		Compressed:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode mint request: %w", err)
	}

	respBody, err := c.do(ctx, http.MethodPost, c.nftsURL(), body)
	if err != nil {
		return nil, err
	}

	var minted mintResponse
	if err := json.Unmarshal(respBody, &minted); err != nil {
		return nil, fmt.Errorf("failed to decode mint response: %w", err)
	}

	if minted.ID == "" {
		return nil, errors.New("crossmint returned no nft id")
	}

	return &models.MintResult{
		NFTID:           minted.ID,
		TransactionHash: minted.OnChain.TxID,
		ContractAddress: minted.OnChain.ContractAddress,
	}, nil
}

func (c *crossmintClient) GetNFT(ctx context.Context, nftID string) (json.RawMessage, error) {
	respBody, err := c.do(ctx, http.MethodGet, c.nftsURL()+"/"+url.PathEscape(nftID), nil)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, ErrNFTNotFound
		}

		return nil, err
	}

	return json.RawMessage(respBody), nil
}

func (c *crossmintClient) do(ctx context.Context, method, target string, body []byte) ([]byte, error) {
	return c.breaker.Execute(func() ([]byte, error) {
		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}

		req, err := http.NewRequestWithContext(ctx, method, target, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to build crossmint request: %w", err)
		}

		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-API-KEY", c.cfg.APIKey)
		if c.cfg.ClientSecret != "" {
			req.Header.Set("X-CLIENT-SECRET", c.cfg.ClientSecret)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, fmt.Errorf("crossmint request failed: %w", err)
		}
		defer resp.Body.Close()

		respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		if err != nil {
			return nil, fmt.Errorf("failed to read crossmint response: %w", err)
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
		}

		return respBody, nil
	})
}
