package workers

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/vaulterr"
)

// SessionExpiryWorker purges a session as soon as it expires, so key
// material does not linger until the next interactive read.
type SessionExpiryWorker struct {
	sessions service.SessionManager
}

// NewSessionExpiryWorker creates a worker sweeping sessions.
func NewSessionExpiryWorker(sessions service.SessionManager) *SessionExpiryWorker {
	return &SessionExpiryWorker{sessions: sessions}
}

func (w *SessionExpiryWorker) Name() string {
	return "session-expiry"
}

// Run validates the session once. Validation purges an expired session as
// a side effect.
func (w *SessionExpiryWorker) Run(ctx context.Context) {
	log := logger.FromContext(ctx).With().Str("worker", w.Name()).Logger()

	record, err := w.sessions.ValidateSession(ctx)
	switch {
	case err == nil:
		log.Debug().Time("expires_at", record.ExpiresAt).Msg("session still valid")
	case errors.Is(err, vaulterr.ErrNoActiveSession):
		log.Debug().Msg("no active session")
	case errors.Is(err, vaulterr.ErrSessionExpired):
		log.Info().Msg("session expired, key material purged")
	default:
		log.Err(err).Msg("session check failed")
	}
}
