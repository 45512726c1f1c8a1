package crossmint

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/digiri/giriloyo-batik/internal/config"
	"github.com/digiri/giriloyo-batik/internal/models"
	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupServer(t *testing.T, handler http.HandlerFunc) *crossmintClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := config.Crossmint{
		BaseURL:        server.URL,
		APIKey:         "sk_test",
		ClientSecret:   "secret",
		CollectionID:   "col-1",
		Chain:          "polygon",
		BreakerTimeout: time.Minute,
	}

	return newClient(cfg, server.Client())
}

func TestMintCertificate(t *testing.T) {
	req := &models.CertificateRequest{
		OrderID:        "GRLYO-1-AAAAAA",
		CustomerEmail:  "sari@example.com",
		CustomerName:   "Sari Dewi",
		ProductName:    "Kain Motif Parang",
		Artisan:        "Ibu Sumiyati",
		Location:       "Giriloyo",
		Motif:          "Parang",
		ProcessingTime: "14 hari",
	}
	metadata := req.Metadata(time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), "https://giriloyo-batik.com")

	t.Run("Success", func(t *testing.T) {
		// Arrange
		var body mintRequest

		client := setupServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/2022-06-09/collections/col-1/nfts", r.URL.Path)
			assert.Equal(t, "sk_test", r.Header.Get("X-API-KEY"))
			assert.Equal(t, "secret", r.Header.Get("X-CLIENT-SECRET"))
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"nft-123","onChain":{"status":"pending","txId":"0xabc","contractAddress":"0xc0ffee"}}`))
		})

		// Act
		result, err := client.MintCertificate(t.Context(), "sari@example.com", metadata)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, &models.MintResult{NFTID: "nft-123", TransactionHash: "0xabc", ContractAddress: "0xc0ffee"}, result)
		assert.Equal(t, "email:sari@example.com:polygon", body.Recipient)
		assert.True(t, body.ReuploadLinkedFiles)
		assert.True(t, body.Compressed)
		assert.Equal(t, "Batik Giriloyo - Kain Motif Parang", body.Metadata.Name)
		assert.Equal(t, "FEF3C7", body.Metadata.BackgroundColor)
		require.Len(t, body.Metadata.Attributes, 9)
		assert.Equal(t, "2025-05-01", body.Metadata.Attributes[6].Value)
	})

	t.Run("API Error", func(t *testing.T) {
		// Arrange
		client := setupServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`invalid collection`))
		})

		// Act
		result, err := client.MintCertificate(t.Context(), "sari@example.com", metadata)

		// Assert
		require.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, "Crossmint API error: 400 - invalid collection", err.Error())
	})

	t.Run("Breaker Opens After Repeated Outages", func(t *testing.T) {
		// Arrange
		calls := 0
		client := setupServer(t, func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.WriteHeader(http.StatusBadGateway)
		})

		for range 5 {
			_, err := client.MintCertificate(t.Context(), "sari@example.com", metadata)
			require.Error(t, err)
		}

		// Act
		_, err := client.MintCertificate(t.Context(), "sari@example.com", metadata)

		// Assert
		require.ErrorIs(t, err, gobreaker.ErrOpenState)
		assert.Equal(t, 5, calls)
	})
}

func TestGetNFT(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		client := setupServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/api/2022-06-09/collections/col-1/nfts/nft-123", r.URL.Path)
			_, _ = w.Write([]byte(`{"id":"nft-123","metadata":{"name":"Batik"}}`))
		})

		// Act
		details, err := client.GetNFT(t.Context(), "nft-123")

		// Assert
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":"nft-123","metadata":{"name":"Batik"}}`, string(details))
	})

	t.Run("Not Found Does Not Trip Breaker", func(t *testing.T) {
		// Arrange
		client := setupServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		// Act
		for range 6 {
			_, err := client.GetNFT(t.Context(), "missing")
			require.ErrorIs(t, err, ErrNFTNotFound)
		}

		// Assert
		assert.Equal(t, gobreaker.StateClosed, client.breaker.State())
	})
}
