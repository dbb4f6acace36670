package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/lib/pq"

	"tech-share/config"
)

// Connection wraps a database/sql connection. The pgx pool serves the request
// path; this connection exists for the migration tooling, which works on
// *sql.DB.
type Connection struct {
	db     *sql.DB
	logger *slog.Logger
}

const connectTimeout = 10 * time.Second

// NewConnection opens a database/sql connection using the service config
func NewConnection(cfg *config.Config, logger *slog.Logger) (*Connection, error) {
	c := &Connection{
		logger: logger.With("component", "database"),
	}

	c.logger.Info("connecting to database",
		"host", cfg.DatabaseHost,
		"database", cfg.DatabaseName,
		"ssl_mode", cfg.DatabaseSSLMode)

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	c.db = db
	c.logger.Info("database connection established")
	return c, nil
}

// DB returns the underlying *sql.DB instance
func (c *Connection) DB() *sql.DB {
	return c.db
}

// Close closes the database connection
func (c *Connection) Close() error {
	if c.db != nil {
		c.logger.Info("closing database connection")
		return c.db.Close()
	}
	return nil
}

// Health checks the database connection health
func (c *Connection) Health(ctx context.Context) error {
	if c.db == nil {
		return fmt.Errorf("database connection is nil")
	}

	if err := c.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}
