package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	appErrors "github.com/digiri/giriloyo-batik/internal/errors"
	"github.com/digiri/giriloyo-batik/internal/models"
	service "github.com/digiri/giriloyo-batik/internal/services"
	"github.com/digiri/giriloyo-batik/internal/utils"
	"github.com/digiri/giriloyo-batik/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

const cartHeartbeat = 25 * time.Second

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService, validator: validator.New()}
}

// GetCart godoc
//	@Summary		Get the cart
//	@Description	Returns the guest's cart lines with item count and subtotal.
//	@Tags			Cart
//	@Produce		json
//	@Success		200	{object}	models.CartView			"Cart"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/carts [get]
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := requireGuest(w, r)
		if !ok {
			return
		}

		cart, err := h.cartService.GetCart(r.Context(), claims.GuestID)
		if err != nil {
			logger.Error("Failed to get cart", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// AddItem godoc
//	@Summary		Add an item to the cart
//	@Description	Adds one unit of a product in the given size and color. An existing line with the same product, size and color is incremented.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			item	body		models.AddItemRequest	true	"Product, size and color"
//	@Success		200		{object}	models.CartView			"Updated cart"
//	@Failure		400		{object}	response.ErrorResponse	"Validation error or unavailable option"
//	@Failure		401		{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404		{object}	response.ErrorResponse	"Product not found"
//	@Failure		409		{object}	response.ErrorResponse	"Concurrent cart update"
//	@Failure		500		{object}	response.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/carts/items [post]
func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := requireGuest(w, r)
		if !ok {
			return
		}

		var req models.AddItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid add item input")
			return
		}

		cart, err := h.cartService.AddItem(r.Context(), claims.GuestID, &req)
		if err != nil {
			logger.Error("Failed to add item", slog.Int64("productId", req.ProductID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Item added to cart", slog.Int64("productId", req.ProductID), slog.Int("itemCount", cart.ItemCount))
		response.Success(w, http.StatusOK, cart)
	}
}

// UpdateQuantity godoc
//	@Summary		Set a line's quantity
//	@Description	Sets the quantity of the line addressed by product, size and color. A quantity below 1 leaves the cart unchanged.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			item	body		models.UpdateQuantityRequest	true	"Line key and quantity"
//	@Success		200		{object}	models.CartView					"Cart"
//	@Failure		400		{object}	response.ErrorResponse			"Validation error"
//	@Failure		401		{object}	response.ErrorResponse			"Authentication required"
//	@Failure		500		{object}	response.ErrorResponse			"Internal server error"
//	@Security		BearerAuth
//	@Router			/carts/items [put]
func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := requireGuest(w, r)
		if !ok {
			return
		}

		var req models.UpdateQuantityRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update quantity input")
			return
		}

		cart, err := h.cartService.UpdateQuantity(r.Context(), claims.GuestID, &req)
		if err != nil {
			logger.Error("Failed to update quantity", slog.Int64("productId", req.ProductID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// RemoveItem godoc
//	@Summary		Remove a line from the cart
//	@Description	Removes only the line matching product, size and color.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			item	body		models.RemoveItemRequest	true	"Line key"
//	@Success		200		{object}	models.CartView				"Cart"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		401		{object}	response.ErrorResponse		"Authentication required"
//	@Failure		500		{object}	response.ErrorResponse		"Internal server error"
//	@Security		BearerAuth
//	@Router			/carts/items [delete]
func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := requireGuest(w, r)
		if !ok {
			return
		}

		var req models.RemoveItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid remove item input")
			return
		}

		cart, err := h.cartService.RemoveItem(r.Context(), claims.GuestID, &req)
		if err != nil {
			logger.Error("Failed to remove item", slog.Int64("productId", req.ProductID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// ItemCount godoc
//	@Summary		Count cart items
//	@Description	Sum of quantities across all lines, for the cart badge.
//	@Tags			Cart
//	@Produce		json
//	@Success		200	{object}	map[string]int			"itemCount"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/carts/count [get]
func (h *CartHandler) ItemCount() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := requireGuest(w, r)
		if !ok {
			return
		}

		count, err := h.cartService.ItemCount(r.Context(), claims.GuestID)
		if err != nil {
			logger.Error("Failed to count cart items", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, map[string]int{"itemCount": count})
	}
}

// ClearCart godoc
//	@Summary		Empty the cart
//	@Tags			Cart
//	@Success		204
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/carts [delete]
func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := requireGuest(w, r)
		if !ok {
			return
		}

		if err := h.cartService.Clear(r.Context(), claims.GuestID); err != nil {
			logger.Error("Failed to clear cart", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Cart cleared")
		w.WriteHeader(http.StatusNoContent)
	}
}

// Events godoc
//	@Summary		Stream cart changes
//	@Description	Server-sent events carrying the item count after every change to the guest's cart. Slow readers may miss events.
//	@Tags			Cart
//	@Produce		text/event-stream
//	@Success		200	{object}	models.CartChanged		"event stream"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Security		BearerAuth
//	@Router			/carts/events [get]
func (h *CartHandler) Events() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := requireGuest(w, r)
		if !ok {
			return
		}

		flusher, ok := w.(http.Flusher)
		if !ok {
			response.Error(w, appErrors.InternalError("Streaming is not supported"))
			return
		}

		events, cancel := h.cartService.Subscribe(claims.GuestID)
		defer cancel()

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)

		// the current count first, so the badge is right before any change
		if count, err := h.cartService.ItemCount(r.Context(), claims.GuestID); err == nil {
			writeCartEvent(w, models.CartChanged{GuestID: claims.GuestID, ItemCount: count})
		} else {
			logger.Warn("Failed to read initial item count", slog.Any("error", err))
		}
		flusher.Flush()

		heartbeat := time.NewTicker(cartHeartbeat)
		defer heartbeat.Stop()

		for {
			select {
			case <-r.Context().Done():
				return
			case evt, open := <-events:
				if !open {
					return
				}
				writeCartEvent(w, evt)
				flusher.Flush()
			case <-heartbeat.C:
				fmt.Fprint(w, ": ping\n\n")
				flusher.Flush()
			}
		}
	}
}

func writeCartEvent(w http.ResponseWriter, evt models.CartChanged) {
	data, _ := json.Marshal(evt)
	fmt.Fprintf(w, "event: cart\ndata: %s\n\n", data)
}
