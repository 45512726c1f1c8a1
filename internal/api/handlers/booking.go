package handlers

import (
	"log/slog"
	"net/http"

	"github.com/digiri/giriloyo-batik/internal/api/middleware"
	"github.com/digiri/giriloyo-batik/internal/models"
	service "github.com/digiri/giriloyo-batik/internal/services"
	"github.com/digiri/giriloyo-batik/internal/utils"
	"github.com/digiri/giriloyo-batik/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type BookingHandler struct {
	bookingService service.BookingService
	validator      *validator.Validate
}

func NewBookingHandler(bookingService service.BookingService) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
		validator:      validator.New(),
	}
}

// ListPackages godoc
//	@Summary		List tour packages
//	@Description	Batik workshop packages with their per-participant price.
//	@Tags			Tours
//	@Produce		json
//	@Success		200	{array}	models.TourPackage	"Packages"
//	@Router			/tours/packages [get]
func (h *BookingHandler) ListPackages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.bookingService.ListPackages())
	}
}

// CreateBooking godoc
//	@Summary		Request a tour booking
//	@Description	Prices the visit on the server, stores the request and returns a WhatsApp link for confirmation.
//	@Tags			Tours
//	@Accept			json
//	@Produce		json
//	@Param			booking	body		models.BookingRequest	true	"Booking"
//	@Success		201		{object}	models.TourBooking		"Booking requested"
//	@Failure		400		{object}	response.ErrorResponse	"Validation error"
//	@Failure		429		{object}	response.ErrorResponse	"Too many requests"
//	@Failure		500		{object}	response.ErrorResponse	"Internal server error"
//	@Router			/tours/bookings [post]
func (h *BookingHandler) CreateBooking() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.BookingRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid booking input")
			return
		}

		booking, err := h.bookingService.CreateBooking(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create booking", slog.String("package", req.PackageID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusCreated, booking)
	}
}

// ListBookings godoc
//	@Summary		List tour bookings (Admin)
//	@Description	Booking requests ordered by visit date.
//	@Tags			Tours
//	@Produce		json
//	@Param			page		query		int													false	"Page number (default: 1)"				minimum(1)
//	@Param			pageSize	query		int													false	"Items per page (default: 10, max: 100)"	minimum(1)	maximum(100)
//	@Success		200			{object}	models.PaginatedResponse{Data=[]models.TourBooking}	"Bookings"
//	@Failure		403			{object}	response.ErrorResponse								"Invalid admin key"
//	@Failure		500			{object}	response.ErrorResponse								"Internal server error"
//	@Security		AdminKey
//	@Router			/admin/tours/bookings [get]
func (h *BookingHandler) ListBookings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		page, pageSize := utils.ParsePagination(r)

		bookings, total, err := h.bookingService.ListBookings(r.Context(), page, pageSize)
		if err != nil {
			logger.Error("Failed to list bookings", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.PaginatedResponse{
			Data:     bookings,
			Total:    total,
			Page:     page,
			PageSize: pageSize,
		})
	}
}
