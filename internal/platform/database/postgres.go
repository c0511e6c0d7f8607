package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

type Config struct {
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnectRetries  int
	RetryInterval   time.Duration
}

func (c Config) DSN() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, sslMode)
}

func NewPostgresDB(ctx context.Context, cfg Config, logger *zap.Logger) (*sql.DB, error) {
	maxRetries := cfg.ConnectRetries
	if maxRetries <= 0 {
		maxRetries = 10
	}

	interval := cfg.RetryInterval
	if interval <= 0 {
		interval = 2 * time.Second
	}

	var db *sql.DB
	var err error

	for i := 1; i <= maxRetries; i++ {
		logger.Info("connecting to database",
			zap.String("host", cfg.Host),
			zap.String("dbname", cfg.DBName),
			zap.Int("attempt", i),
			zap.Int("max_attempts", maxRetries),
		)

		db, err = sql.Open("postgres", cfg.DSN())
		if err == nil {
			err = db.PingContext(ctx)
		}

		if err == nil {
			db.SetMaxOpenConns(cfg.MaxOpenConns)
			db.SetMaxIdleConns(cfg.MaxIdleConns)
			db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

			logger.Info("database connected")
			return db, nil
		}

		if db != nil {
			_ = db.Close()
		}

		logger.Warn("database not ready yet", zap.Duration("retry_in", interval), zap.Error(err))

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(interval):
		}
	}

	return nil, fmt.Errorf("failed to connect to database: %w", err)
}
