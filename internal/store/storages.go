package store

import (
	"context"
	"fmt"

	"github.com/art-space/artspace/internal/config"
	"github.com/art-space/artspace/internal/logger"
)

// Storages aggregates every repository the application persists through.
type Storages struct {
	UserRepository    UserRepository
	ArtworkRepository ArtworkRepository
}

// NewStorages connects to the configured database, applies pending schema
// migrations, and wires up all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		ArtworkRepository: NewArtworkRepository(db, log),
	}, nil
}
