// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/platform"
	"github.com/MKhiriev/go-pass-vault/internal/vaulterr"
	"github.com/MKhiriev/go-pass-vault/models"
)

// Clock returns the current time.
type Clock func() time.Time

// SessionOption customises a session manager.
type SessionOption func(*sessionManager)

// WithClock replaces time.Now.
func WithClock(clock Clock) SessionOption {
	return func(s *sessionManager) {
		s.now = clock
	}
}

type sessionManager struct {
	platform platform.Adapter
	cfg      config.ClientSession
	now      Clock

	mu    sync.Mutex
	hooks []ClearHook
}

// NewSessionManager builds a [SessionManager] storing its state in p.
// Zero timeouts in cfg fall back to the package defaults.
func NewSessionManager(p platform.Adapter, cfg config.ClientSession, opts ...SessionOption) SessionManager {
	if cfg.Timeout == 0 {
		cfg.Timeout = config.DefaultSessionTimeout
	}
	if cfg.RememberMeTimeout == 0 {
		cfg.RememberMeTimeout = config.DefaultRememberMeTimeout
	}

	s := &sessionManager{platform: p, cfg: cfg, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *sessionManager) timeout(opts models.SessionOptions) time.Duration {
	switch {
	case opts.SessionTimeout != 0:
		return opts.SessionTimeout
	case opts.RememberMe:
		return s.cfg.RememberMeTimeout
	default:
		return s.cfg.Timeout
	}
}

func (s *sessionManager) CreateSession(ctx context.Context, userSecretKey []byte, opts models.SessionOptions) (models.SessionRecord, error) {
	const op = "session.CreateSession"
	log := logger.FromContext(ctx)

	if len(userSecretKey) == 0 {
		return models.SessionRecord{}, vaulterr.E(vaulterr.InvalidInput, op, ErrEmptyUserSecretKey)
	}

	now := s.now()
	record := models.SessionRecord{
		CreatedAt:  now,
		ExpiresAt:  now.Add(s.timeout(opts)),
		RememberMe: opts.RememberMe,
	}

	if err := s.platform.SetUserSecretKey(ctx, userSecretKey); err != nil {
		log.Err(err).Str("func", op).Msg("failed to store user secret key")
		return models.SessionRecord{}, vaulterr.E(vaulterr.StorageError, op, err)
	}

	if err := s.writeRecord(ctx, record); err != nil {
		log.Err(err).Str("func", op).Msg("failed to store session record, removing key")
		if delErr := s.platform.DeleteUserSecretKey(ctx); delErr != nil {
			log.Err(delErr).Str("func", op).Msg("failed to roll back user secret key")
		}
		return models.SessionRecord{}, vaulterr.E(vaulterr.StorageError, op, err)
	}

	log.Info().
		Str("func", op).
		Time("expires_at", record.ExpiresAt).
		Bool("remember_me", record.RememberMe).
		Msg("session created")
	return record, nil
}

func (s *sessionManager) GetSession(ctx context.Context) (models.SessionRecord, error) {
	const op = "session.GetSession"

	raw, err := s.platform.GetSessionMetadata(ctx)
	if errors.Is(err, platform.ErrNotFound) {
		return models.SessionRecord{}, vaulterr.E(vaulterr.NoActiveSession, op, nil)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", op).Msg("failed to read session record")
		return models.SessionRecord{}, vaulterr.E(vaulterr.StorageError, op, err)
	}

	var record models.SessionRecord
	if err = json.Unmarshal([]byte(raw), &record); err != nil {
		return models.SessionRecord{}, vaulterr.E(vaulterr.CorruptState, op, err)
	}
	if record.ExpiresAt.IsZero() {
		return models.SessionRecord{}, vaulterr.E(vaulterr.CorruptState, op, ErrMissingExpiry)
	}

	return record, nil
}

func (s *sessionManager) ValidateSession(ctx context.Context) (models.SessionRecord, error) {
	const op = "session.ValidateSession"

	record, err := s.GetSession(ctx)
	if err != nil {
		return models.SessionRecord{}, err
	}

	if record.Expired(s.now()) {
		logger.FromContext(ctx).Info().
			Str("func", op).
			Time("expires_at", record.ExpiresAt).
			Msg("session expired, purging")
		if err = s.purge(ctx); err != nil {
			return models.SessionRecord{}, vaulterr.E(vaulterr.SessionExpired, op, err)
		}
		return models.SessionRecord{}, vaulterr.E(vaulterr.SessionExpired, op, nil)
	}

	return record, nil
}

func (s *sessionManager) RefreshSession(ctx context.Context, opts models.SessionOptions) (models.SessionRecord, error) {
	const op = "session.RefreshSession"

	record, err := s.ValidateSession(ctx)
	if err != nil {
		return models.SessionRecord{}, err
	}

	record.ExpiresAt = s.now().Add(s.timeout(opts))
	record.RememberMe = opts.RememberMe

	if err = s.writeRecord(ctx, record); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", op).Msg("failed to rewrite session record")
		return models.SessionRecord{}, vaulterr.E(vaulterr.StorageError, op, err)
	}
	return record, nil
}

func (s *sessionManager) ExtendSession(ctx context.Context, d time.Duration) (models.SessionRecord, error) {
	const op = "session.ExtendSession"

	record, err := s.ValidateSession(ctx)
	if err != nil {
		return models.SessionRecord{}, err
	}

	record.ExpiresAt = record.ExpiresAt.Add(d)

	if err = s.writeRecord(ctx, record); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", op).Msg("failed to rewrite session record")
		return models.SessionRecord{}, vaulterr.E(vaulterr.StorageError, op, err)
	}
	return record, nil
}

func (s *sessionManager) ClearSession(ctx context.Context) error {
	if err := s.purge(ctx); err != nil {
		return vaulterr.E(vaulterr.StorageError, "session.ClearSession", err)
	}
	logger.FromContext(ctx).Info().Str("func", "session.ClearSession").Msg("session cleared")
	return nil
}

func (s *sessionManager) IsAuthenticated(ctx context.Context) bool {
	_, err := s.ValidateSession(ctx)
	return err == nil
}

func (s *sessionManager) SessionTimeRemaining(ctx context.Context) time.Duration {
	record, err := s.ValidateSession(ctx)
	if err != nil {
		return 0
	}
	return record.Remaining(s.now())
}

func (s *sessionManager) UserSecretKey(ctx context.Context) ([]byte, error) {
	const op = "session.UserSecretKey"

	if _, err := s.ValidateSession(ctx); err != nil {
		return nil, err
	}

	key, err := s.platform.GetUserSecretKey(ctx)
	if errors.Is(err, platform.ErrNotFound) {
		return nil, vaulterr.E(vaulterr.NoActiveSession, op, nil)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", op).Msg("failed to read user secret key")
		return nil, vaulterr.E(vaulterr.StorageError, op, err)
	}
	return key, nil
}

func (s *sessionManager) OnClear(hook ClearHook) {
	s.mu.Lock()
	s.hooks = append(s.hooks, hook)
	s.mu.Unlock()
}

// purge removes the key and the record through the adapter and runs every
// clear hook. All steps run even if an earlier one fails.
func (s *sessionManager) purge(ctx context.Context) error {
	log := logger.FromContext(ctx)

	var errs []error
	if err := s.platform.ClearSessionState(ctx); err != nil {
		log.Err(err).Str("func", "session.purge").Msg("failed to clear platform session state")
		errs = append(errs, err)
	}

	s.mu.Lock()
	hooks := make([]ClearHook, len(s.hooks))
	copy(hooks, s.hooks)
	s.mu.Unlock()

	for _, hook := range hooks {
		if err := hook(ctx); err != nil {
			log.Err(err).Str("func", "session.purge").Msg("session clear hook failed")
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (s *sessionManager) writeRecord(ctx context.Context, record models.SessionRecord) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal session record: %w", err)
	}
	return s.platform.SetSessionMetadata(ctx, string(raw))
}
