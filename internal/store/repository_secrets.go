package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

type secretRepository struct {
	*DB
	logger     *logger.Logger
	classifier ErrorClassificator
}

// NewSecretRepository constructs a [SecretRepository] backed by db.
func NewSecretRepository(db *DB, logger *logger.Logger) SecretRepository {
	return &secretRepository{
		DB:         db,
		logger:     logger,
		classifier: NewSQLiteErrorClassifier(),
	}
}

func (r *secretRepository) Get(ctx context.Context, name string) ([]byte, error) {
	query, args, err := buildGetSecretQuery(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value []byte
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSecretNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "secretRepository.Get").
			Str("name", name).
			Msg("failed to read secret")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return value, nil
}

func (r *secretRepository) Set(ctx context.Context, name string, value []byte) error {
	query, args, err := buildSetSecretQuery(name, value)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = withRetry(ctx, r.classifier, func(ctx context.Context) error {
		_, execErr := r.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "secretRepository.Set").
			Str("name", name).
			Msg("failed to write secret")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *secretRepository) Delete(ctx context.Context, names ...string) error {
	if len(names) == 0 {
		return nil
	}

	query, args, err := buildDeleteSecretsQuery(names)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "secretRepository.Delete").
			Strs("names", names).
			Msg("failed to delete secrets")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
