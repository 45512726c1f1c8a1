package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/digiri/giriloyo-batik/internal/models"
	"github.com/digiri/giriloyo-batik/internal/utils"
)

type BookingRepository interface {
	CreateBooking(ctx context.Context, booking *models.TourBooking) error
	ListBookings(ctx context.Context, page, size int) ([]*models.TourBooking, int, error)
}

type bookingRepository struct {
	DB *sql.DB
}

func NewBookingRepo(db *sql.DB) BookingRepository {
	return &bookingRepository{DB: db}
}

func (r *bookingRepository) CreateBooking(ctx context.Context, booking *models.TourBooking) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO tour_bookings (id, package_id, package_title, visit_date, participants, group_name, institution,
			contact_name, email, phone, notes, unit_price, total, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING created_at
	`

	err := r.DB.QueryRowContext(dbCtx, query, booking.ID, booking.PackageID, booking.PackageTitle, booking.VisitDate,
		booking.Participants, booking.GroupName, booking.Institution, booking.ContactName, booking.Email, booking.Phone,
		booking.Notes, booking.UnitPrice, booking.Total, booking.Status,
	).Scan(&booking.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	return nil
}

func (r *bookingRepository) ListBookings(ctx context.Context, page, size int) ([]*models.TourBooking, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int

	err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM tour_bookings`).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	offset := (page - 1) * size

	query := `
		SELECT id, package_id, package_title, visit_date, participants, group_name, institution,
			contact_name, email, phone, notes, unit_price, total, status, created_at
		FROM tour_bookings
		ORDER BY visit_date, created_at
		LIMIT $1 OFFSET $2
	`

	rows, err := r.DB.QueryContext(dbCtx, query, size, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query bookings: %w", err)
	}

	defer rows.Close()

	bookings := []*models.TourBooking{}

	for rows.Next() {
		var b models.TourBooking

		err := rows.Scan(&b.ID, &b.PackageID, &b.PackageTitle, &b.VisitDate, &b.Participants, &b.GroupName, &b.Institution,
			&b.ContactName, &b.Email, &b.Phone, &b.Notes, &b.UnitPrice, &b.Total, &b.Status, &b.CreatedAt)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan booking: %w", err)
		}

		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating over the rows: %w", err)
	}

	return bookings, total, nil
}
