package store

import (
	"context"

	"github.com/campusmarket/campus-market/internal/config"
	"github.com/campusmarket/campus-market/internal/logger"
)

// Storages bundles every repository backed by the shared connection pool.
type Storages struct {
	RosterRepository RosterRepository
	UserRepository   UserRepository
	ItemRepository   ItemRepository

	db *DB
}

// NewStorages connects to the database and constructs all repositories over
// the shared pool.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	return &Storages{
		RosterRepository: NewRosterRepository(db, log),
		UserRepository:   NewUserRepository(db, log),
		ItemRepository:   NewItemRepository(db, log),
		db:               db,
	}, nil
}

// DB exposes the underlying connection pool for migrations and shutdown.
func (s *Storages) DB() *DB {
	return s.db
}

// Close releases the database connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
