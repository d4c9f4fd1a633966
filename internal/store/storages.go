package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// Storages groups the SQLite repositories of the desktop platform.
type Storages struct {
	// Credentials is the re-encrypted credential cache.
	Credentials CredentialRepository

	// Secrets holds the wrapped key, session metadata and offline vault.
	Secrets SecretRepository

	db *DB
}

// NewStorages opens the SQLite database named in cfg, applies pending
// migrations and wires the repositories.
func NewStorages(ctx context.Context, cfg config.ClientDB, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newStorages(db, log), nil
}

func newStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		Credentials: NewCredentialRepository(db, log),
		Secrets:     NewSecretRepository(db, log),
		db:          db,
	}
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	return s.db.Close()
}
