package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/studentdesk/internal/config"
	"github.com/yigit/studentdesk/internal/pkg/helpers"
)

// PostgresDB owns the process-wide connection pool.
type PostgresDB struct {
	Pool           *pgxpool.Pool
	connectTimeout time.Duration
}

// NewPoolConfig translates the database section into a pgxpool configuration.
func NewPoolConfig(cfg *config.Config) (*pgxpool.Config, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.GetPostgresConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgxpool config: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.Database.MaxOpenConns)
	poolConfig.MinConns = int32(cfg.Database.MaxIdleConns)
	poolConfig.MaxConnLifetime = helpers.ParseDuration(cfg.Database.ConnMaxLifetime, time.Hour)
	poolConfig.ConnConfig.ConnectTimeout = helpers.ParseDuration(cfg.Database.ConnectTimeout, 5*time.Second)

	return poolConfig, nil
}

// NewPostgresDB creates the connection pool. Connections are opened lazily,
// so this succeeds even while the server is down; call Ping to check reachability.
func NewPostgresDB(cfg *config.Config) (*PostgresDB, error) {
	poolConfig, err := NewPoolConfig(cfg)
	if err != nil {
		return nil, err
	}

	// MinConns > 0 makes pgxpool dial in the background; a down server then only shows up on Ping.
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection pool: %w", err)
	}

	return &PostgresDB{Pool: pool, connectTimeout: poolConfig.ConnConfig.ConnectTimeout}, nil
}

// Ping checks that a connection can be acquired and used.
// A zero connect timeout leaves the caller's deadline in charge.
func (db *PostgresDB) Ping(ctx context.Context) error {
	if db.connectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, db.connectTimeout)
		defer cancel()
	}

	if err := db.Pool.Ping(ctx); err != nil {
		return fmt.Errorf("failed to establish database connection: %w", err)
	}
	return nil
}

// Close closing method
func (db *PostgresDB) Close() {
	if db.Pool != nil {
		db.Pool.Close()
	}
}
