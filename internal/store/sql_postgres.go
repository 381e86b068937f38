package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-career-guide/internal/config"
	"github.com/MKhiriev/go-career-guide/internal/logger"
	"github.com/MKhiriev/go-career-guide/migrations"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// DB is the shared PostgreSQL handle used by every repository.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnectPostgres opens a pgx-backed *sql.DB for cfg.DSN and pings it.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}, nil
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// unavailable wraps a driver error as [ErrStorageUnavailable] together with
// the operation-level sentinel op. Errors classified as [Retryable] also wrap
// [ErrStorageTransient]. No operation is retried here.
func (db *DB) unavailable(ctx context.Context, op error, err error) error {
	retryable := false
	if db.errorClassificator != nil {
		retryable = db.errorClassificator.Classify(err) == Retryable
	}
	logger.FromContext(ctx).Debug().
		Str("func", "DB.unavailable").
		Str("pg_code", postgresError(err)).
		Bool("retryable", retryable).
		Msg("storage operation failed")

	if retryable {
		return fmt.Errorf("%w: %w: %w: %w", ErrStorageUnavailable, ErrStorageTransient, op, err)
	}
	return fmt.Errorf("%w: %w: %w", ErrStorageUnavailable, op, err)
}

// isMalformedID reports whether err is Postgres rejecting a value that does
// not parse as the uuid column type.
func isMalformedID(err error) bool {
	return postgresError(err) == pgerrcode.InvalidTextRepresentation
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
