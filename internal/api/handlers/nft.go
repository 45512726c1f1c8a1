package handlers

import (
	"log/slog"
	"net/http"

	"github.com/digiri/giriloyo-batik/internal/api/middleware"
	appErrors "github.com/digiri/giriloyo-batik/internal/errors"
	"github.com/digiri/giriloyo-batik/internal/models"
	service "github.com/digiri/giriloyo-batik/internal/services"
	"github.com/digiri/giriloyo-batik/internal/utils"
	"github.com/digiri/giriloyo-batik/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type NFTHandler struct {
	nftService service.NFTService
	validator  *validator.Validate
}

func NewNFTHandler(nftService service.NFTService) *NFTHandler {
	return &NFTHandler{nftService: nftService, validator: validator.New()}
}

// MintCertificate godoc
//	@Summary		Mint one certificate (Admin)
//	@Description	Mints the certificate of one line of a paid order. lineNo 0 picks the first line named productName. A line that is minted or minting is refused.
//	@Tags			NFT
//	@Accept			json
//	@Produce		json
//	@Param			certificate	body		models.CertificateRequest	true	"Order line and provenance"
//	@Success		200			{object}	models.MintResult			"Minted"
//	@Failure		400			{object}	response.ErrorResponse		"Missing required fields or unpaid order"
//	@Failure		403			{object}	response.ErrorResponse		"Invalid admin key"
//	@Failure		404			{object}	response.ErrorResponse		"Order or line not found"
//	@Failure		409			{object}	response.ErrorResponse		"Already minted or in progress"
//	@Failure		500			{object}	response.ErrorResponse		"Minting failed"
//	@Security		AdminKey
//	@Router			/nft/mint [post]
func (h *NFTHandler) MintCertificate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CertificateRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.Error(w, appErrors.BadRequestError("Invalid request body").WithDetail(err.Error()))
			return
		}

		if err := utils.ValidateStruct(h.validator, &req); err != nil {
			response.Error(w, appErrors.BadRequestError("Missing required fields").WithDetail(err.Error()))
			return
		}

		logger = logger.With(slog.String("orderId", req.OrderID))

		result, err := h.nftService.MintItem(r.Context(), &req)
		if err != nil {
			logger.Error("Certificate minting failed", slog.Any("error", err))
			if appErr, ok := appErrors.IsAppError(err); ok && appErr.StatusCode >= http.StatusInternalServerError {
				err = appErr.WithDetail("orderId " + req.OrderID)
			}
			response.Error(w, err)
			return
		}

		logger.Info("Certificate minted", slog.String("nftId", result.NFTID))
		response.Success(w, http.StatusOK, result)
	}
}

// RetryFailed godoc
//	@Summary		Re-drive certificate minting (Admin)
//	@Description	Mints every line of a paid order that failed or was never attempted. Lines already minted or minting are skipped.
//	@Tags			NFT
//	@Produce		json
//	@Param			id	path		string					true	"Order ID"
//	@Success		200	{object}	models.MintSummary		"Outcome counts"
//	@Failure		400	{object}	response.ErrorResponse	"Order not paid"
//	@Failure		403	{object}	response.ErrorResponse	"Invalid admin key"
//	@Failure		404	{object}	response.ErrorResponse	"Order not found"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Security		AdminKey
//	@Router			/admin/orders/{id}/nft/retry [post]
func (h *NFTHandler) RetryFailed() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		orderID, err := utils.ParseOrderID(r)
		if err != nil {
			response.Error(w, err)
			return
		}

		summary, err := h.nftService.RetryFailed(r.Context(), orderID)
		if err != nil {
			logger.Error("Minting retry failed", slog.String("orderId", orderID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, summary)
	}
}

// GetStatus godoc
//	@Summary		Certificate status of an order
//	@Tags			NFT
//	@Produce		json
//	@Param			id	path		string					true	"Order ID"
//	@Success		200	{object}	models.NFTOrderStatus	"Order and per-line status"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		403	{object}	response.ErrorResponse	"Not the caller's order"
//	@Failure		404	{object}	response.ErrorResponse	"Order not found"
//	@Security		BearerAuth
//	@Router			/nft/orders/{id}/status [get]
func (h *NFTHandler) GetStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := requireGuest(w, r)
		if !ok {
			return
		}

		orderID, err := utils.ParseOrderID(r)
		if err != nil {
			response.Error(w, err)
			return
		}

		status, err := h.nftService.GetStatus(r.Context(), claims.GuestID, orderID)
		if err != nil {
			logger.Warn("Failed to get certificate status", slog.String("orderId", orderID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, status)
	}
}

// GetCertificates godoc
//	@Summary		Certificates of an order
//	@Description	Looks up every minted certificate. A failed lookup is reported on its line.
//	@Tags			NFT
//	@Produce		json
//	@Param			id	path		string						true	"Order ID"
//	@Success		200	{array}		models.CertificateDetails	"Certificates"
//	@Failure		401	{object}	response.ErrorResponse		"Authentication required"
//	@Failure		403	{object}	response.ErrorResponse		"Not the caller's order"
//	@Failure		404	{object}	response.ErrorResponse		"No NFTs found for this order"
//	@Security		BearerAuth
//	@Router			/nft/orders/{id}/certificates [get]
func (h *NFTHandler) GetCertificates() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := requireGuest(w, r)
		if !ok {
			return
		}

		orderID, err := utils.ParseOrderID(r)
		if err != nil {
			response.Error(w, err)
			return
		}

		certificates, err := h.nftService.GetCertificates(r.Context(), claims.GuestID, orderID)
		if err != nil {
			logger.Warn("Failed to get certificates", slog.String("orderId", orderID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, certificates)
	}
}
