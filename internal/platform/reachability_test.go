package platform

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPProber_IsOnline(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   bool
	}{
		{name: "healthy", status: http.StatusOK, want: true},
		{name: "unauthorized still reachable", status: http.StatusUnauthorized, want: true},
		{name: "server error", status: http.StatusServiceUnavailable, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			p, err := NewHTTPProber(srv.URL, "/api/health", time.Second)
			require.NoError(t, err)

			assert.Equal(t, tt.want, p.IsOnline(testContext()))
			assert.Equal(t, "/api/health", gotPath)
		})
	}
}

func TestHTTPProber_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	p, err := NewHTTPProber(addr, "/api/health", 200*time.Millisecond)
	require.NoError(t, err)
	assert.False(t, p.IsOnline(testContext()))
}

func TestStaticProber(t *testing.T) {
	assert.True(t, StaticProber(true).IsOnline(testContext()))
	assert.False(t, StaticProber(false).IsOnline(testContext()))
}
