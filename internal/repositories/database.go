package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/XSAM/otelsql"
	"github.com/digiri/giriloyo-batik/internal/config"
	"github.com/digiri/giriloyo-batik/internal/repositories/migrations"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/lib/pq"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrNotFound         = errors.New("record not found")
	ErrVersionConflict  = errors.New("record was modified concurrently")
	ErrDuplicateOrderID = errors.New("order id already exists")
)

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error

	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

type Repository struct {
	DB           *sql.DB
	Product      ProductRepository
	Cart         CartRepository
	Order        OrderRepository
	PaymentEvent PaymentEventRepository
	Notification NotificationRepository
	Booking      BookingRepository
}

func New(cfg *config.Config) (*Repository, error) {

	db, err := otelsql.Open("postgres", cfg.Database.GetDSN(),
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return NewWithDB(db), nil
}

func NewWithDB(db *sql.DB) *Repository {
	return &Repository{
		DB:           db,
		Product:      NewProductRepo(db),
		Cart:         NewCartRepo(db),
		Order:        NewOrderRepo(db),
		PaymentEvent: NewPaymentEventRepo(db),
		Notification: NewNotificationRepo(db),
		Booking:      NewBookingRepo(db),
	}
}

// Migrate applies the embedded schema migrations.
func (p *Repository) Migrate() error {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("could not open embedded migrations: %w", err)
	}

	driver, err := postgres.WithInstance(p.DB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	version, dirty, _ := m.Version()
	slog.Info("Database schema ready", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))

	return nil
}

func (p *Repository) Close() error {
	return p.DB.Close()
}
