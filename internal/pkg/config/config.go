package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, upstream URLs), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	Redis    RedisConfig
	RabbitMQ RabbitMQConfig
	Upstream UpstreamConfig
	Checkout CheckoutConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Ho_Chi_Minh"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
	// Migrations run at startup when set.
	MigrationsDir string `envconfig:"DB_MIGRATIONS_DIR"`
}

type RedisConfig struct {
	Addr            string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password        string        `envconfig:"REDIS_PASSWORD"`
	DB              int           `envconfig:"REDIS_DB" default:"0"`
	PromotionTTL    time.Duration `envconfig:"REDIS_PROMOTION_TTL" default:"5m"`
	PromotionJitter time.Duration `envconfig:"REDIS_PROMOTION_JITTER" default:"1m"`
}

// Publishing is disabled when URL is empty.
type RabbitMQConfig struct {
	URL   string `envconfig:"RABBITMQ_URL"`
	Queue string `envconfig:"RABBITMQ_ORDER_SUBMITTED_QUEUE" default:"checkout.order_submitted"`
}

type UpstreamConfig struct {
	PromotionBaseURL string        `envconfig:"UPSTREAM_PROMOTION_URL" required:"true"`
	VoucherBaseURL   string        `envconfig:"UPSTREAM_VOUCHER_URL" required:"true"`
	OrderBaseURL     string        `envconfig:"UPSTREAM_ORDER_URL" required:"true"`
	UserBaseURL      string        `envconfig:"UPSTREAM_USER_URL" required:"true"`
	CartBaseURL      string        `envconfig:"UPSTREAM_CART_URL" required:"true"`
	Timeout          time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"5s"`
	BreakerFailures  uint32        `envconfig:"UPSTREAM_BREAKER_FAILURES" default:"5"`
	BreakerOpenFor   time.Duration `envconfig:"UPSTREAM_BREAKER_OPEN_FOR" default:"30s"`
}

type CheckoutConfig struct {
	ShippingFee   string `envconfig:"CHECKOUT_SHIPPING_FEE" default:"0"`
	StoreProvince string `envconfig:"CHECKOUT_STORE_PROVINCE" default:"Ho Chi Minh City"`
	StoreDistrict string `envconfig:"CHECKOUT_STORE_DISTRICT" default:"District 1"`
	StoreWard     string `envconfig:"CHECKOUT_STORE_WARD" default:"District 1"`
	StoreStreet   string `envconfig:"CHECKOUT_STORE_STREET" default:"12 Nguyen Hue"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Request-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Request-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Ho_Chi_Minh"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"25200"` // 7*60*60
}

// Tokens are issued by the storefront auth service; this service only verifies them.
type JWTConfig struct {
	Secret       string `envconfig:"JWT_SECRET" required:"true"`
	AccessCookie string `envconfig:"JWT_ACCESS_COOKIE" default:"access_token"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c CheckoutConfig) ShippingFeeAmount() (decimal.Decimal, error) {
	fee, err := decimal.NewFromString(c.ShippingFee)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid CHECKOUT_SHIPPING_FEE %q: %w", c.ShippingFee, err)
	}
	if fee.IsNegative() {
		return decimal.Zero, fmt.Errorf("CHECKOUT_SHIPPING_FEE must not be negative: %s", c.ShippingFee)
	}
	return fee, nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if _, err := cfg.Checkout.ShippingFeeAmount(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Ho_Chi_Minh",
			MaxConns: 5,
		},
		Redis: RedisConfig{
			Addr:            "localhost:16379",
			PromotionTTL:    time.Minute,
			PromotionJitter: 0,
		},
		Upstream: UpstreamConfig{
			PromotionBaseURL: "http://localhost:18081",
			VoucherBaseURL:   "http://localhost:18081",
			OrderBaseURL:     "http://localhost:18081",
			UserBaseURL:      "http://localhost:18081",
			CartBaseURL:      "http://localhost:18081",
			Timeout:          2 * time.Second,
			BreakerFailures:  5,
			BreakerOpenFor:   time.Second,
		},
		Checkout: CheckoutConfig{
			ShippingFee:   "0",
			StoreProvince: "Ho Chi Minh City",
			StoreDistrict: "District 1",
			StoreWard:     "District 1",
			StoreStreet:   "12 Nguyen Hue",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Ho_Chi_Minh",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 25200,
		},
		JWT: JWTConfig{
			Secret:       "test-secret",
			AccessCookie: "access_token",
		},
	}
}
