// Package postgres provides connection pool construction and shared helpers
// for the two PostgreSQL stores consumed by the gateway: the data warehouse
// and the learner store.
package postgres

import (
	"context"
	"crypto/tls"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sqlcoach/sqlcoach-backend/internal/config"
)

// NewPool creates a PostgreSQL connection pool configured from DatabaseConfig.
// It parses the assembled DSN, applies pool settings (max/min conns,
// lifetimes) and the TLS trust policy, and returns the ready pool.
//
// The pool is NOT pinged here: per the startup contract an unreachable store
// must not abort the process, so connectivity probing is the caller's call
// (see app.Run).
func NewPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parse database DSN: %w", err)
	}

	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime

	// Both stores sit behind TLS terminators with self-signed certificates,
	// so "require" means encrypt but skip chain verification.
	if cfg.SSLMode != "disable" {
		poolCfg.ConnConfig.TLSConfig = &tls.Config{
			InsecureSkipVerify: true, //nolint:gosec
			ServerName:         cfg.Host,
		}
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	return pool, nil
}
