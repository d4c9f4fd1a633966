package platform

import (
	"context"
	"net/http"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
)

// HTTPProber checks reachability by issuing a GET to the document store
// health endpoint. Any response below 500 counts as online.
type HTTPProber struct {
	client *utils.HTTPClient
	path   string
}

// NewHTTPProber builds a prober for the health path under baseURL.
func NewHTTPProber(baseURL, healthPath string, timeout time.Duration) (*HTTPProber, error) {
	client, err := utils.NewHTTPClient(baseURL, timeout)
	if err != nil {
		return nil, err
	}
	return &HTTPProber{client: client, path: healthPath}, nil
}

// IsOnline implements [Prober].
func (p *HTTPProber) IsOnline(ctx context.Context) bool {
	resp, err := p.client.R().SetContext(ctx).Get(p.path)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).
			Str("func", "HTTPProber.IsOnline").
			Msg("document store is unreachable")
		return false
	}
	return resp.StatusCode() < http.StatusInternalServerError
}

// StaticProber always reports the same reachability.
type StaticProber bool

// IsOnline implements [Prober].
func (s StaticProber) IsOnline(context.Context) bool {
	return bool(s)
}
