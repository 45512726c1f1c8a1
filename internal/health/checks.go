package health

import (
	"context"
	"fmt"
	"time"

	"github.com/digiri/giriloyo-batik/internal/config"
	"github.com/hellofresh/health-go/v5"
	"github.com/hellofresh/health-go/v5/checks/postgres"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/balance"
)

const version = "1.0.0"

// NewHealthHandler checks postgres and redis, plus the broker and the Stripe
// account when those are configured. Optional dependencies only degrade the
// status instead of failing it.
func NewHealthHandler(cfg *config.Config) (*health.Health, error) {

	checks := []health.Config{
		{
			Name:      "database",
			Timeout:   3 * time.Second,
			SkipOnErr: false,
			Check: postgres.New(postgres.Config{
				DSN: cfg.Database.GetDSN(),
			}),
		},
		{
			Name:      "redis",
			Timeout:   2 * time.Second,
			SkipOnErr: false,
			Check: healthRedis.New(healthRedis.Config{
				DSN: cfg.RedisConnect.GetDSN(),
			}),
		},
	}

	if cfg.AMQP.URL != "" {
		checks = append(checks, health.Config{
			Name:      "amqp",
			Timeout:   3 * time.Second,
			SkipOnErr: true,
			Check:     amqpCheck(cfg.AMQP.URL),
		})
	}

	if cfg.Payment.Gateway == "stripe" {
		checks = append(checks, health.Config{
			Name:      "stripe",
			Timeout:   5 * time.Second,
			SkipOnErr: true,
			Check:     stripeCheck,
		})
	}

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    cfg.OTEL.ServiceName,
			Version: version,
		}),
		health.WithSystemInfo(),
		health.WithChecks(checks...),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}

func amqpCheck(url string) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		conn, err := amqp.DialConfig(url, amqp.Config{Dial: amqp.DefaultDial(2 * time.Second)})
		if err != nil {
			return fmt.Errorf("failed to connect to broker: %w", err)
		}
		return conn.Close()
	}
}

func stripeCheck(ctx context.Context) error {
	params := &stripe.BalanceParams{
		Params: stripe.Params{
			Context: ctx,
		},
	}
	if _, err := balance.Get(params); err != nil {
		return fmt.Errorf("failed to connect to stripe: %w", err)
	}
	return nil
}
