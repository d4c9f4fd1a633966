package store

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteErrorClassifier_Classify(t *testing.T) {
	classifier := NewSQLiteErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "plain error", err: errors.New("boom"), want: NonRetryable},
		{name: "busy", err: sqlite3.Error{Code: sqlite3.ErrBusy}, want: Retryable},
		{name: "locked", err: sqlite3.Error{Code: sqlite3.ErrLocked}, want: Retryable},
		{name: "wrapped busy", err: fmt.Errorf("%w: %w", ErrExecutingStatement, sqlite3.Error{Code: sqlite3.ErrBusy}), want: Retryable},
		{name: "constraint", err: sqlite3.Error{Code: sqlite3.ErrConstraint}, want: NonRetryable},
		{name: "corrupt", err: sqlite3.Error{Code: sqlite3.ErrCorrupt}, want: NonRetryable},
		{name: "readonly", err: sqlite3.Error{Code: sqlite3.ErrReadonly}, want: NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.Classify(tt.err))
		})
	}
}

func TestWithRetry(t *testing.T) {
	classifier := NewSQLiteErrorClassifier()
	busy := sqlite3.Error{Code: sqlite3.ErrBusy}

	t.Run("succeeds after transient busy errors", func(t *testing.T) {
		calls := 0
		err := withRetry(context.Background(), classifier, func(context.Context) error {
			calls++
			if calls < 3 {
				return busy
			}
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("does not retry permanent errors", func(t *testing.T) {
		calls := 0
		err := withRetry(context.Background(), classifier, func(context.Context) error {
			calls++
			return sqlite3.Error{Code: sqlite3.ErrConstraint}
		})

		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		calls := 0
		err := withRetry(context.Background(), classifier, func(context.Context) error {
			calls++
			return busy
		})

		var sqliteErr sqlite3.Error
		require.ErrorAs(t, err, &sqliteErr)
		assert.Equal(t, sqlite3.ErrBusy, sqliteErr.Code)
		assert.Equal(t, maxRetries+1, calls)
	})

	t.Run("stops when the context is cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		calls := 0
		err := withRetry(ctx, classifier, func(context.Context) error {
			calls++
			cancel()
			return busy
		})

		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})
}
