package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-career-guide/internal/config"
	"github.com/MKhiriev/go-career-guide/internal/logger"
	"github.com/MKhiriev/go-career-guide/internal/utils"
)

// Storages bundles the repositories built on one database handle.
type Storages struct {
	UserRepository    UserRepository
	ProfileRepository ProfileRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies migrations and wires the
// repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return newStoragesFromDB(db, utils.NewUUIDGenerator(), log), nil
}

func newStoragesFromDB(db *DB, ids IDGenerator, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, ids, log),
		ProfileRepository: NewProfileRepository(db, ids, log),
		db:                db,
	}
}

// Close releases the database handle.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
