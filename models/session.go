// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SessionRecord gates whether the user secret key may still be used. It is
// persisted as an opaque JSON string next to, but separately from, the key.
type SessionRecord struct {
	// CreatedAt is when the session was established.
	CreatedAt time.Time `json:"createdAt"`

	// ExpiresAt is the wall-clock instant after which the key must be
	// treated as already cleared.
	ExpiresAt time.Time `json:"expiresAt"`

	// RememberMe records whether the long default timeout was requested.
	RememberMe bool `json:"rememberMe,omitempty"`
}

// Expired reports whether the session is past its expiry at now.
func (s SessionRecord) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// Remaining returns the time left until expiry at now, never negative.
func (s SessionRecord) Remaining(now time.Time) time.Duration {
	if d := s.ExpiresAt.Sub(now); d > 0 {
		return d
	}
	return 0
}

// SessionOptions tunes session creation and refresh.
type SessionOptions struct {
	// RememberMe selects the longer default timeout.
	RememberMe bool

	// SessionTimeout overrides the default lifetime when non-zero. Negative
	// values are honoured and produce an already expired session.
	SessionTimeout time.Duration
}
