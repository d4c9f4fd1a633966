package workers

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
)

// CacheRefreshWorker keeps the credential cache in line with the document
// store while a user is logged in.
type CacheRefreshWorker struct {
	sessions service.SessionManager
	cache    service.CredentialCache
	users    UserIDSource
}

// NewCacheRefreshWorker creates a worker refreshing the cache of the user
// reported by users.
func NewCacheRefreshWorker(sessions service.SessionManager, cache service.CredentialCache, users UserIDSource) *CacheRefreshWorker {
	return &CacheRefreshWorker{
		sessions: sessions,
		cache:    cache,
		users:    users,
	}
}

func (w *CacheRefreshWorker) Name() string {
	return "cache-refresh"
}

// Run refreshes the cache once. Nothing happens without a logged-in user
// and a valid session.
func (w *CacheRefreshWorker) Run(ctx context.Context) {
	log := logger.FromContext(ctx).With().Str("worker", w.Name()).Logger()

	userID := w.users.UserID()
	if userID == "" || !w.sessions.IsAuthenticated(ctx) {
		log.Debug().Msg("not logged in, skipping refresh")
		return
	}

	res, err := w.cache.Refresh(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("background refresh failed")
		return
	}

	log.Debug().
		Str("user_id", userID).
		Int("cached", res.Cached).
		Int("skipped", res.Skipped).
		Bool("stale", res.Stale).
		Bool("offline", res.Offline).
		Msg("background refresh done")
}
