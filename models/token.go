// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token is the client-side view of a document store access token issued by
// the identity provider.
//
// The client never verifies the signature (it does not hold the key); the
// claims are only inspected to learn the subject and the expiry so that a
// session is never created to outlive the remote credential.
type Token struct {
	// RegisteredClaims provides access to the standard JWT claim set.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation as received.
	SignedString string `json:"-"`
}

// ExpiresAtTime returns the "exp" claim, or the zero time if absent.
func (t Token) ExpiresAtTime() time.Time {
	if t.ExpiresAt == nil {
		return time.Time{}
	}
	return t.ExpiresAt.Time
}

// String returns the compact JWS serialization of the token.
func (t Token) String() string {
	return t.SignedString
}
