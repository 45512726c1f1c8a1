package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/digiri/giriloyo-batik/internal/api/middleware"
	appErrors "github.com/digiri/giriloyo-batik/internal/errors"
	"github.com/digiri/giriloyo-batik/internal/models"
	repository "github.com/digiri/giriloyo-batik/internal/repositories"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

// visit dates are local to the village
var wib = time.FixedZone("WIB", 7*60*60)

type BookingService interface {
	ListPackages() []models.TourPackage
	CreateBooking(ctx context.Context, req *models.BookingRequest) (*models.TourBooking, error)
	ListBookings(ctx context.Context, page, size int) ([]*models.TourBooking, int, error)
}

type bookingService struct {
	repo           repository.BookingRepository
	notifications  NotificationService
	rateLimiter    repository.RateLimitRepository
	whatsAppNumber string
	adminEmail     string
	policy         *bluemonday.Policy
	now            func() time.Time
}

func NewBookingService(repo repository.BookingRepository, notifications NotificationService, rateLimiter repository.RateLimitRepository,
	whatsAppNumber, adminEmail string) BookingService {
	return &bookingService{
		repo:           repo,
		notifications:  notifications,
		rateLimiter:    rateLimiter,
		whatsAppNumber: whatsAppNumber,
		adminEmail:     adminEmail,
		policy:         bluemonday.StrictPolicy(),
		now:            time.Now,
	}
}

func (s *bookingService) ListPackages() []models.TourPackage {
	return models.TourPackages()
}

// CreateBooking prices the request from the package list, stores it and
// notifies the village admin and the contact. Emails are best effort.
func (s *bookingService) CreateBooking(ctx context.Context, req *models.BookingRequest) (*models.TourBooking, error) {
	logger := middleware.LoggerFromContext(ctx)

	email := strings.ToLower(strings.TrimSpace(req.Email))

	allowed, _, retryAfter, err := s.rateLimiter.Allow(ctx, rateScopeBooking, email)
	if err != nil {
		return nil, appErrors.ThirdPartyError("Rate limit check failed").WithError(err)
	}

	if !allowed {
		return nil, appErrors.TooManyRequestsError("Too many booking requests. Please try again later.").
			WithDetail(fmt.Sprintf("retry after %d seconds", retryAfter))
	}

	pkg, ok := models.FindTourPackage(req.PackageID)
	if !ok {
		return nil, appErrors.BadRequestError("Unknown tour package")
	}

	if req.Participants < pkg.MinParticipants {
		return nil, appErrors.ValidationError(fmt.Sprintf("%s requires at least %d participants", pkg.Title, pkg.MinParticipants))
	}

	visit, err := time.Parse(time.DateOnly, req.VisitDate)
	if err != nil {
		return nil, appErrors.ValidationError("visitDate must be YYYY-MM-DD")
	}

	y, m, d := s.now().In(wib).Date()
	if visit.Before(time.Date(y, m, d, 0, 0, 0, 0, time.UTC)) {
		return nil, appErrors.ValidationError("visitDate cannot be in the past")
	}

	booking := &models.TourBooking{
		ID:           uuid.New(),
		PackageID:    pkg.ID,
		PackageTitle: pkg.Title,
		VisitDate:    visit,
		Participants: req.Participants,
		GroupName:    s.policy.Sanitize(req.GroupName),
		Institution:  s.policy.Sanitize(req.Institution),
		ContactName:  s.policy.Sanitize(req.ContactName),
		Email:        email,
		Phone:        s.policy.Sanitize(req.Phone),
		Notes:        s.policy.Sanitize(req.Notes),
		UnitPrice:    pkg.Price,
		Total:        pkg.Price * int64(req.Participants),
		Status:       models.BookingStatusRequested,
	}

	if err := s.repo.CreateBooking(ctx, booking); err != nil {
		return nil, appErrors.DatabaseError("Failed to save booking").WithError(err)
	}

	summary := booking.Summary()
	booking.WhatsAppURL = "https://wa.me/" + s.whatsAppNumber + "?text=" + strings.ReplaceAll(url.QueryEscape(summary), "+", "%20")

	logger.Info("Tour booking requested",
		slog.String("bookingId", booking.ID.String()),
		slog.String("package", booking.PackageID),
		slog.Int("participants", booking.Participants),
		slog.Int64("total", booking.Total))

	s.notify(ctx, booking, summary)

	return booking, nil
}

func (s *bookingService) notify(ctx context.Context, booking *models.TourBooking, summary string) {
	logger := middleware.LoggerFromContext(ctx)

	emails := []*models.EmailNotificationRequest{{
		To:      booking.Email,
		Subject: "Permintaan Booking Wisata Batik Giriloyo",
		Content: fmt.Sprintf("Halo %s,\n\nTerima kasih, permintaan booking Anda sudah kami terima. Tim kami akan menghubungi Anda melalui WhatsApp untuk konfirmasi.\n\n%s",
			booking.ContactName, summary),
	}}

	if s.adminEmail != "" {
		emails = append(emails, &models.EmailNotificationRequest{
			To:      s.adminEmail,
			Subject: fmt.Sprintf("Booking baru: %s, %d peserta", booking.PackageTitle, booking.Participants),
			Content: summary,
		})
	}

	for _, req := range emails {
		if _, err := s.notifications.SendEmail(ctx, req); err != nil {
			logger.Error("Failed to send booking email", slog.String("bookingId", booking.ID.String()), slog.Any("error", err))
		}
	}
}

func (s *bookingService) ListBookings(ctx context.Context, page, size int) ([]*models.TourBooking, int, error) {

	if page < 1 {
		page = 1
	}

	if size < 1 || size > 100 {
		size = 10
	}

	bookings, total, err := s.repo.ListBookings(ctx, page, size)
	if err != nil {
		return nil, 0, appErrors.DatabaseError("Failed to list bookings").WithError(err)
	}

	return bookings, total, nil
}
