package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HTTPAddr        string        `envconfig:"HTTP_ADDR" default:":8080"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`
	Environment     string        `envconfig:"ENV" default:"dev"`

	DB      DBConfig      `ignored:"true"`
	Redis   RedisConfig   `ignored:"true"`
	Log     LogConfig     `ignored:"true"`
	Ticket  TicketConfig  `ignored:"true"`
	Rabbit  RabbitConfig  `ignored:"true"`
	Tracing TracingConfig `ignored:"true"`
}

type DBConfig struct {
	Host            string        `envconfig:"DB_HOST" default:"localhost"`
	Port            string        `envconfig:"DB_PORT" default:"5432"`
	User            string        `envconfig:"DB_USER" default:"postgres"`
	Password        string        `envconfig:"DB_PASSWORD"`
	Name            string        `envconfig:"DB_NAME" default:"setu_tickets"`
	SSLMode         string        `envconfig:"DB_SSLMODE" default:"disable"`
	MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"25"`
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`
	AutoMigrate     bool          `envconfig:"DB_AUTO_MIGRATE" default:"true"`
}

type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

func (c RedisConfig) Addr() string {
	return c.Host + ":" + c.Port
}

type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

type TicketConfig struct {
	TokenCodec        string        `envconfig:"TOKEN_CODEC" default:"signed"`
	TokenSecret       string        `envconfig:"TOKEN_SECRET"`
	StatsTimezone     string        `envconfig:"STATS_TIMEZONE" default:"UTC"`
	StatsCacheTTL     time.Duration `envconfig:"STATS_CACHE_TTL" default:"30s"`
	ParticipantsTTL   time.Duration `envconfig:"PARTICIPANTS_CACHE_TTL" default:"5m"`
	ReconcileInterval time.Duration `envconfig:"RECONCILE_INTERVAL" default:"1m"`
}

type RabbitConfig struct {
	URL      string `envconfig:"RABBIT_URL"`
	Exchange string `envconfig:"TICKET_EXCHANGE" default:"ticket.exchange"`
}

type TracingConfig struct {
	Endpoint    string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName string `envconfig:"OTEL_SERVICE_NAME" default:"setu-ticket-service"`
}

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read %s: %w", envFile, err)
		}
	}

	var cfg Config
	// Sections are processed one by one so their variables keep flat names
	// (DB_HOST rather than DB_DB_HOST).
	for _, section := range []any{&cfg, &cfg.DB, &cfg.Redis, &cfg.Log, &cfg.Ticket, &cfg.Rabbit, &cfg.Tracing} {
		if err := envconfig.Process("", section); err != nil {
			return nil, fmt.Errorf("parse environment: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Ticket.TokenCodec {
	case "signed":
		if len(c.Ticket.TokenSecret) < 16 {
			return errors.New("config: TOKEN_SECRET must be at least 16 characters for the signed codec")
		}
	case "legacy":
	default:
		return fmt.Errorf("config: unknown TOKEN_CODEC %q", c.Ticket.TokenCodec)
	}

	if _, err := time.LoadLocation(c.Ticket.StatsTimezone); err != nil {
		return fmt.Errorf("config: invalid STATS_TIMEZONE: %w", err)
	}

	if c.Ticket.ReconcileInterval <= 0 {
		return errors.New("config: RECONCILE_INTERVAL must be positive")
	}

	return nil
}

func (c *Config) StatsLocation() *time.Location {
	loc, err := time.LoadLocation(c.Ticket.StatsTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
