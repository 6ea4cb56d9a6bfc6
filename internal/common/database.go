package common

import (
	"context"
	"database/sql"
	"log/slog"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "modernc.org/sqlite"

	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent"
	"github.com/patriciodunstan/back-investigacion-vehiculos/internal/repository"
)

// DBResult bundles the ent client with its teardown. Pool is nil when
// running on SQLite.
type DBResult struct {
	Client  *ent.Client
	Cleanup func()
}

// InitDatabase opens either the configured Postgres database or, for
// local batch runs, an in-memory SQLite database with the schema created
// on the spot.
func InitDatabase(ctx context.Context, cfg *Config, inmem bool, logger *slog.Logger) (*DBResult, error) {
	if inmem {
		return initSQLite(ctx, logger)
	}

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		return nil, err
	}
	return &DBResult{
		Client:  entc,
		Cleanup: func() { repository.Close(entc, pool, logger) },
	}, nil
}

func initSQLite(ctx context.Context, logger *slog.Logger) (*DBResult, error) {
	// shared cache keeps the in-memory database alive across connections
	db, err := sql.Open("sqlite", "file:docbatch?mode=memory&cache=shared&_pragma=foreign_keys(1)")
	if err != nil {
		logger.Error("failed to open sqlite database", "error", err)
		return nil, err
	}
	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))

	if err := client.Schema.Create(ctx); err != nil {
		logger.Error("failed to create sqlite schema", "error", err)
		_ = client.Close()
		return nil, err
	}
	logger.Info("in-memory sqlite database ready")
	return &DBResult{
		Client: client,
		Cleanup: func() {
			if err := client.Close(); err != nil {
				logger.Error("failed to close ent client", "error", err)
			}
		},
	}, nil
}
