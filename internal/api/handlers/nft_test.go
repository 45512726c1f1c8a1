package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/digiri/giriloyo-batik/internal/api/handlers"
	appErrors "github.com/digiri/giriloyo-batik/internal/errors"
	"github.com/digiri/giriloyo-batik/internal/models"
	"github.com/digiri/giriloyo-batik/internal/services/mocks"
	"github.com/digiri/giriloyo-batik/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMintCertificateHandler(t *testing.T) {
	validBody := []byte(`{"orderId":"` + testOrderID + `","customerEmail":"sri@example.com","productName":"Batik Tulis Motif Sekar Jagad"}`)

	t.Run("Success - Minted", func(t *testing.T) {
		// Arrange
		mockNFTService := new(mocks.NFTService)
		nftHandler := handlers.NewNFTHandler(mockNFTService)
		result := &models.MintResult{NFTID: "nft-1", TransactionHash: "0xabc", ContractAddress: "0xcontract"}

		mockNFTService.On("MintItem", mock.Anything, mock.MatchedBy(func(r *models.CertificateRequest) bool {
			return r.OrderID == testOrderID && r.LineNo == 0 && r.ProductName == "Batik Tulis Motif Sekar Jagad"
		})).Return(result, nil).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/nft/mint", bytes.NewReader(validBody), nil)
		rr := httptest.NewRecorder()

		// Act
		nftHandler.MintCertificate().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var got models.MintResult
		require.NoError(t, testutils.DecodeData(rr.Body.Bytes(), &got))
		assert.Equal(t, *result, got)
	})

	t.Run("Failure - Missing Required Fields", func(t *testing.T) {
		// Arrange
		mockNFTService := new(mocks.NFTService)
		nftHandler := handlers.NewNFTHandler(mockNFTService)

		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/nft/mint",
			bytes.NewReader([]byte(`{"orderId":"`+testOrderID+`"}`)), nil)
		rr := httptest.NewRecorder()

		// Act
		nftHandler.MintCertificate().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Missing required fields", requireErrorCode(t, rr, appErrors.ErrCodeBadRequest))
	})

	t.Run("Failure - Minting Error Carries Order Id", func(t *testing.T) {
		// Arrange
		mockNFTService := new(mocks.NFTService)
		nftHandler := handlers.NewNFTHandler(mockNFTService)

		mockNFTService.On("MintItem", mock.Anything, mock.Anything).Return(nil, appErrors.ThirdPartyError("Failed to mint NFT")).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/nft/mint", bytes.NewReader(validBody), nil)
		rr := httptest.NewRecorder()

		// Act
		nftHandler.MintCertificate().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		resp := decodeEnvelope(t, rr)
		require.NotNil(t, resp.Error)
		assert.Equal(t, []string{"orderId " + testOrderID}, resp.Error.Details)
	})

	t.Run("Failure - Already Minted", func(t *testing.T) {
		// Arrange
		mockNFTService := new(mocks.NFTService)
		nftHandler := handlers.NewNFTHandler(mockNFTService)

		mockNFTService.On("MintItem", mock.Anything, mock.Anything).
			Return(nil, appErrors.ConflictError("Certificate already minted or in progress")).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/nft/mint", bytes.NewReader(validBody), nil)
		rr := httptest.NewRecorder()

		// Act
		nftHandler.MintCertificate().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestRetryFailedHandler(t *testing.T) {
	t.Run("Success - Summary Returned", func(t *testing.T) {
		// Arrange
		mockNFTService := new(mocks.NFTService)
		nftHandler := handlers.NewNFTHandler(mockNFTService)
		summary := &models.MintSummary{OrderID: testOrderID, Attempted: 1, Minted: 1, Skipped: 1}

		mockNFTService.On("RetryFailed", mock.Anything, testOrderID).Return(summary, nil).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/admin/orders/"+testOrderID+"/nft/retry", nil,
			map[string]string{"id": testOrderID})
		rr := httptest.NewRecorder()

		// Act
		nftHandler.RetryFailed().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var got models.MintSummary
		require.NoError(t, testutils.DecodeData(rr.Body.Bytes(), &got))
		assert.Equal(t, *summary, got)
	})
}

func TestNFTStatusHandlers(t *testing.T) {
	pathParams := map[string]string{"id": testOrderID}

	t.Run("Success - Status", func(t *testing.T) {
		// Arrange
		mockNFTService := new(mocks.NFTService)
		nftHandler := handlers.NewNFTHandler(mockNFTService)

		mockNFTService.On("GetStatus", mock.Anything, testGuestID, testOrderID).Return(models.NFTStatusOf(mintedOrder()), nil).Once()

		req := testutils.CreateTestRequestWithGuest(http.MethodGet, "/api/v1/nft/orders/"+testOrderID+"/status", nil, testGuestID, pathParams)
		rr := httptest.NewRecorder()

		// Act
		nftHandler.GetStatus().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var got models.NFTOrderStatus
		require.NoError(t, testutils.DecodeData(rr.Body.Bytes(), &got))
		assert.Equal(t, models.NFTStatusMinted, got.NFTStatus)
		assert.Equal(t, []string{"nft-1"}, got.NFTIDs)
	})

	t.Run("Success - Certificates With Inline Error", func(t *testing.T) {
		// Arrange
		mockNFTService := new(mocks.NFTService)
		nftHandler := handlers.NewNFTHandler(mockNFTService)
		certs := []models.CertificateDetails{
			{LineNo: 1, NFTID: "nft-1", Details: json.RawMessage(`{"id":"nft-1"}`)},
			{LineNo: 2, NFTID: "nft-2", Error: "not indexed yet"},
		}

		mockNFTService.On("GetCertificates", mock.Anything, testGuestID, testOrderID).Return(certs, nil).Once()

		req := testutils.CreateTestRequestWithGuest(http.MethodGet, "/api/v1/nft/orders/"+testOrderID+"/certificates", nil, testGuestID, pathParams)
		rr := httptest.NewRecorder()

		// Act
		nftHandler.GetCertificates().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var got []models.CertificateDetails
		require.NoError(t, testutils.DecodeData(rr.Body.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "not indexed yet", got[1].Error)
	})

	t.Run("Failure - No Certificates", func(t *testing.T) {
		// Arrange
		mockNFTService := new(mocks.NFTService)
		nftHandler := handlers.NewNFTHandler(mockNFTService)

		mockNFTService.On("GetCertificates", mock.Anything, testGuestID, testOrderID).
			Return(nil, appErrors.NotFoundError("No NFTs found for this order")).Once()

		req := testutils.CreateTestRequestWithGuest(http.MethodGet, "/api/v1/nft/orders/"+testOrderID+"/certificates", nil, testGuestID, pathParams)
		rr := httptest.NewRecorder()

		// Act
		nftHandler.GetCertificates().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "No NFTs found for this order", requireErrorCode(t, rr, appErrors.ErrCodeNotFound))
	})
}
