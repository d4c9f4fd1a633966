// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// credentialRepository is the SQLite-backed implementation of
// [CredentialRepository]. Rows carry an explicit position column so that
// GetAll returns credentials in the order they were written.
type credentialRepository struct {
	*DB
	logger     *logger.Logger
	classifier ErrorClassificator
}

// NewCredentialRepository constructs a [CredentialRepository] backed by db.
func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialRepository {
	return &credentialRepository{
		DB:         db,
		logger:     logger,
		classifier: NewSQLiteErrorClassifier(),
	}
}

// ReplaceAll deletes the current cache and inserts creds inside a single
// transaction. If ctx is cancelled before the commit the transaction is
// rolled back and the previous cache survives untouched. A transaction that
// fails because the database is busy is retried from the start.
func (r *credentialRepository) ReplaceAll(ctx context.Context, creds []models.CachedCredential) error {
	return withRetry(ctx, r.classifier, func(ctx context.Context) error {
		return r.replaceAll(ctx, creds)
	})
}

func (r *credentialRepository) replaceAll(ctx context.Context, creds []models.CachedCredential) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "credentialRepository.ReplaceAll").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	query, args, err := buildClearCredentialsQuery()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "credentialRepository.ReplaceAll").Msg("failed to clear credentials")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	for start := 0; start < len(creds); start += insertBatchSize {
		end := min(start+insertBatchSize, len(creds))

		query, args, err = buildInsertCredentialsQuery(start, creds[start:end])
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "credentialRepository.ReplaceAll").
				Int("batch_start", start).
				Int("batch_end", end).
				Msg("failed to insert credentials batch")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "credentialRepository.ReplaceAll").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Debug().Str("func", "credentialRepository.ReplaceAll").Int("count", len(creds)).Msg("credential cache replaced")
	return nil
}

// GetAll returns every cached credential ordered by position.
func (r *credentialRepository) GetAll(ctx context.Context) ([]models.CachedCredential, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetAllCredentialsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "credentialRepository.GetAll").Msg("failed to query credentials")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	creds := make([]models.CachedCredential, 0)
	for rows.Next() {
		var c models.CachedCredential
		if err = scanCredential(rows, &c); err != nil {
			log.Err(err).Str("func", "credentialRepository.GetAll").Msg("failed to scan credential row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		creds = append(creds, c)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "credentialRepository.GetAll").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return creds, nil
}

// Get returns the credential with the given id.
func (r *credentialRepository) Get(ctx context.Context, id string) (models.CachedCredential, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetCredentialQuery(id)
	if err != nil {
		return models.CachedCredential{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var c models.CachedCredential
	err = scanCredential(r.DB.QueryRowContext(ctx, query, args...), &c)
	if errors.Is(err, sql.ErrNoRows) {
		return models.CachedCredential{}, ErrCredentialNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "credentialRepository.Get").Str("item_id", id).Msg("failed to scan credential row")
		return models.CachedCredential{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return c, nil
}

// Clear deletes every cached credential.
func (r *credentialRepository) Clear(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := buildClearCredentialsQuery()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "credentialRepository.Clear").Msg("failed to clear credentials")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCredential(row rowScanner, c *models.CachedCredential) error {
	return row.Scan(
		&c.ID,
		&c.Title,
		&c.Username,
		&c.URL,
		&c.ItemKeyCipher,
		&c.SecretCipher,
	)
}
