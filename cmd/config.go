package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

type Config struct {
	HTTPPort   string `env:"HTTP_PORT" envDefault:"8080"`
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"marketplace"`
	DBSslMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	KafkaBrokers          []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaOrderEventsTopic string   `env:"KAFKA_ORDER_EVENTS_TOPIC" envDefault:"marketplace.order-events"`
	KafkaClientID         string   `env:"KAFKA_CLIENT_ID" envDefault:"marketplace"`

	JWTSecret string `env:"JWT_SECRET,notEmpty"`

	DeliveryFeeMinor  int64         `env:"DELIVERY_FEE_MINOR" envDefault:"15000"`
	CheckoutTimeout   time.Duration `env:"CHECKOUT_TIMEOUT" envDefault:"10s"`
	LocationStaleness time.Duration `env:"LOCATION_STALENESS" envDefault:"5m"`
	LocationMaxSkew   time.Duration `env:"LOCATION_MAX_SKEW" envDefault:"30s"`
	FleetBufferSize   int           `env:"FLEET_BUFFER_SIZE" envDefault:"64"`

	PresenceSweepSpec string        `env:"PRESENCE_SWEEP_SPEC" envDefault:"*/15 * * * * *"`
	BacklogSpec       string        `env:"BACKLOG_SPEC" envDefault:"0 * * * * *"`
	BacklogTimeout    time.Duration `env:"BACKLOG_TIMEOUT" envDefault:"5s"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// SkipMigrations is set by --migrations=false.
	SkipMigrations bool `env:"-"`
}

// DSN is the libpq connection string shared by goose and gorm.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// LoadConfig reads an optional .env file, then the environment, then the
// command line flags; later sources win.
func LoadConfig(args []string) (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	flags := pflag.NewFlagSet("marketplace", pflag.ContinueOnError)
	flags.StringVar(&cfg.HTTPPort, "http-port", cfg.HTTPPort, "port the HTTP server listens on")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	migrate := flags.Bool("migrations", true, "apply pending schema migrations on start")
	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}
	cfg.SkipMigrations = !*migrate

	return cfg, nil
}
