package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

type HTTPServer struct {
	Addr      string `yaml:"address" env:"HTTP_ADDRESS" env-default:":8080"`
	PublicURL string `yaml:"public_url" env:"PUBLIC_URL" env-default:"http://localhost:3000"`
}

type Database struct {
	Host            string        `yaml:"PG_HOST" env:"PG_HOST" env-default:"localhost"`
	Port            string        `yaml:"PG_PORT" env:"PG_PORT" env-default:"5432"`
	User            string        `yaml:"PG_USER" env:"PG_USER" env-required:"true"`
	Password        string        `yaml:"PG_PASSWORD" env:"PG_PASSWORD" env-required:"true"`
	Name            string        `yaml:"PG_DBNAME" env:"PG_DBNAME" env-required:"true"`
	SSLMode         string        `yaml:"PG_SSLMODE" env:"PG_SSLMODE" env-default:"require"`
	MaxOpenConns    int           `yaml:"MAX_OPEN_CONNS" env:"PG_MAX_OPEN_CONNS" env-default:"25"`
	MaxIdleConns    int           `yaml:"MAX_IDLE_CONNS" env:"PG_MAX_IDLE_CONNS" env-default:"25"`
	ConnMaxLifetime time.Duration `yaml:"CONN_MAX_LIFETIME" env:"PG_CONN_MAX_LIFETIME" env-default:"5m"`
	ConnMaxIdleTime time.Duration `yaml:"CONN_MAX_IDLE_TIME" env:"PG_CONN_MAX_IDLE_TIME" env-default:"1m"`
}

type RedisConnect struct {
	Host     string `yaml:"REDIS_HOST" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"REDIS_PORT" env:"REDIS_PORT" env-default:"6379"`
	Username string `yaml:"REDIS_USER" env:"REDIS_USER"`
	Password string `yaml:"REDIS_PASSWORD" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"REDIS_DB" env:"REDIS_DB" env-default:"0"`
}

// RateConfig bounds checkout and order-claim attempts per guest.
type RateConfig struct {
	MaxAttempts int64         `yaml:"MAX_ATTEMPTS" env:"MAX_ATTEMPTS" env-default:"5"`
	WindowSize  time.Duration `yaml:"WINDOW_SIZE" env:"WINDOW_SIZE" env-default:"15s"`
}

type CacheConfig struct {
	DefaultTTL time.Duration `yaml:"default_ttl" env:"CACHE_DEFAULT_TTL" env-default:"5m"`
	// Upper bound of the random extra TTL added to default-TTL entries.
	Jitter time.Duration `yaml:"jitter" env:"CACHE_TTL_JITTER" env-default:"1m"`
}

type Security struct {
	JWTKey          string `yaml:"JWT_KEY" env:"JWT_KEY" env-required:"true"`
	GuestExpiryDays int    `yaml:"GUEST_EXPIRY_DAYS" env:"GUEST_EXPIRY_DAYS" env-default:"30"`
	// bcrypt hash of the key admins send in X-Admin-Key.
	AdminKeyHash string `yaml:"ADMIN_KEY_HASH" env:"ADMIN_KEY_HASH"`
}

type Payment struct {
	Gateway          string        `yaml:"GATEWAY" env:"PAYMENT_GATEWAY" env-default:"midtrans" validate:"oneof=midtrans stripe"`
	Timeout          time.Duration `yaml:"TIMEOUT" env:"PAYMENT_TIMEOUT" env-default:"15s"`
	AmountTolerance  int64         `yaml:"AMOUNT_TOLERANCE" env:"PAYMENT_AMOUNT_TOLERANCE" env-default:"100"`
	DefaultShipping  int64         `yaml:"DEFAULT_SHIPPING" env:"PAYMENT_DEFAULT_SHIPPING" env-default:"25000"`
	MerchantName     string        `yaml:"MERCHANT_NAME" env:"PAYMENT_MERCHANT_NAME" env-default:"Digiri"`
	ProductCategory  string        `yaml:"PRODUCT_CATEGORY" env:"PAYMENT_PRODUCT_CATEGORY" env-default:"Batik"`
	CustomerCountry  string        `yaml:"CUSTOMER_COUNTRY" env:"PAYMENT_CUSTOMER_COUNTRY" env-default:"IDN"`
	NotificationPath string        `yaml:"NOTIFICATION_PATH" env:"PAYMENT_NOTIFICATION_PATH" env-default:"/api/v1/payments/notification"`
}

type Midtrans struct {
	ServerKey    string `yaml:"MIDTRANS_SERVER_KEY" env:"MIDTRANS_SERVER_KEY" env-default:""`
	ClientKey    string `yaml:"MIDTRANS_CLIENT_KEY" env:"MIDTRANS_CLIENT_KEY" env-default:""`
	IsProduction bool   `yaml:"MIDTRANS_IS_PRODUCTION" env:"MIDTRANS_IS_PRODUCTION" env-default:"false"`
}

type Stripe struct {
	APIKey        string `yaml:"STRIPE_API_KEY" env:"STRIPE_API_KEY" env-default:""`
	WebhookSecret string `yaml:"STRIPE_WEBHOOK_SECRET" env:"STRIPE_WEBHOOK_SECRET" env-default:""`
	Currency      string `yaml:"STRIPE_CURRENCY" env:"STRIPE_CURRENCY" env-default:"idr"`
}

type Crossmint struct {
	BaseURL        string        `yaml:"CROSSMINT_BASE_URL" env:"CROSSMINT_BASE_URL" env-default:"https://www.crossmint.com"`
	APIKey         string        `yaml:"CROSSMINT_API_KEY" env:"CROSSMINT_API_KEY" env-default:""`
	ClientSecret   string        `yaml:"CROSSMINT_CLIENT_SECRET" env:"CROSSMINT_CLIENT_SECRET" env-default:""`
	CollectionID   string        `yaml:"CROSSMINT_COLLECTION_ID" env:"CROSSMINT_COLLECTION_ID" env-default:""`
	Chain          string        `yaml:"CROSSMINT_CHAIN" env:"CROSSMINT_CHAIN" env-default:"polygon"`
	Timeout        time.Duration `yaml:"CROSSMINT_TIMEOUT" env:"CROSSMINT_TIMEOUT" env-default:"30s"`
	ExternalURL    string        `yaml:"CROSSMINT_EXTERNAL_URL" env:"CROSSMINT_EXTERNAL_URL" env-default:"https://giriloyo-batik.com"`
	BreakerTimeout time.Duration `yaml:"CROSSMINT_BREAKER_TIMEOUT" env:"CROSSMINT_BREAKER_TIMEOUT" env-default:"60s"`
}

// Certificate holds the values used when a product lacks its own provenance data.
type Certificate struct {
	DefaultArtisan        string `yaml:"DEFAULT_ARTISAN" env:"NFT_DEFAULT_ARTISAN" env-default:"Pengrajin Giriloyo"`
	DefaultLocation       string `yaml:"DEFAULT_LOCATION" env:"NFT_DEFAULT_LOCATION" env-default:"Desa Giriloyo, Yogyakarta"`
	DefaultProcessingTime string `yaml:"DEFAULT_PROCESSING_TIME" env:"NFT_DEFAULT_PROCESSING_TIME" env-default:"14-21 hari"`
	FeePerItem            int64  `yaml:"FEE_PER_ITEM" env:"NFT_FEE_PER_ITEM" env-default:"0"`
	Workers               int    `yaml:"WORKERS" env:"NFT_WORKERS" env-default:"4"`
	QueueSize             int    `yaml:"QUEUE_SIZE" env:"NFT_QUEUE_SIZE" env-default:"256"`
}

type AMQP struct {
	URL       string `yaml:"AMQP_URL" env:"AMQP_URL" env-default:""`
	MintQueue string `yaml:"AMQP_MINT_QUEUE" env:"AMQP_MINT_QUEUE" env-default:"nft.mint"`
}

type SendGrid struct {
	APIKey     string `yaml:"API_KEY" env:"SENDGRID_API_KEY" env-default:""`
	FromEmail  string `yaml:"FROM_EMAIL" env:"SENDGRID_FROM_EMAIL" env-default:"no-reply@giriloyo-batik.com"`
	FromName   string `yaml:"FROM_NAME" env:"SENDGRID_FROM_NAME" env-default:"Batik Giriloyo"`
	AdminEmail string `yaml:"ADMIN_EMAIL" env:"ADMIN_EMAIL" env-default:""`
}

// Booking holds where tour booking requests are handed off.
type Booking struct {
	WhatsAppNumber string `yaml:"WHATSAPP_NUMBER" env:"BOOKING_WHATSAPP_NUMBER" env-default:"628816413617" validate:"numeric"`
}

type OTEL struct {
	ServiceName      string  `yaml:"SERVICE_NAME" env:"OTEL_SERVICE_NAME" env-default:"giriloyo-batik"`
	ExporterEndpoint string  `yaml:"EXPORTER_ENDPOINT" env:"OTEL_EXPORTER_ENDPOINT" env-default:""`
	SamplerRatio     float64 `yaml:"SAMPLER_RATIO" env:"OTEL_SAMPLER_RATIO" env-default:"1.0"`
}

type Config struct {
	Env          string `yaml:"env" env:"ENV" env-required:"true"`
	HTTPServer   `yaml:"http_server"`
	Database     Database     `yaml:"database"`
	RedisConnect RedisConnect `yaml:"redis"`
	RateConfig   RateConfig   `yaml:"rateConfig"`
	Cache        CacheConfig  `yaml:"cache"`
	Security     Security     `yaml:"security"`
	Payment      Payment      `yaml:"payment"`
	Midtrans     Midtrans     `yaml:"midtrans"`
	Stripe       Stripe       `yaml:"stripe"`
	Crossmint    Crossmint    `yaml:"crossmint"`
	Certificate  Certificate  `yaml:"certificate"`
	AMQP         AMQP         `yaml:"amqp"`
	SendGrid     SendGrid     `yaml:"sendgrid"`
	Booking      Booking      `yaml:"booking"`
	OTEL         OTEL         `yaml:"otel"`
}

func MustLoad() *Config {

	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {

		flags := flag.String("config", "", "gets the config flag value")

		flag.Parse()

		configPath = *flags

		if configPath == "" {
			configPath = "config/local.yaml"
		}

	}

	cfg, err := LoadConfigFromPath(configPath)
	if err != nil {
		log.Fatalf("can not read config: %s", err.Error())
	}

	return cfg

}

func LoadConfigFromPath(configPath string) (*Config, error) {

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("can not read config file: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func (d *Database) GetDSN() string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

func (r *RedisConnect) GetDSN() string {
	return fmt.Sprintf("redis://%s:%s@%s:%s", r.Username, r.Password, r.Host, r.Port)
}

func (s *Security) GuestTTL() time.Duration {
	return time.Duration(s.GuestExpiryDays) * 24 * time.Hour
}
