// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials are what the user types into the login form. Password is the
// master password and must be dropped as soon as the key has been derived.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CredentialBundle is the terminal result of a successful authentication
// with the identity provider.
type CredentialBundle struct {
	// UserID identifies the vault owner at the document store.
	UserID string `json:"user_id"`

	// Salt is the base64-encoded per-user key-derivation salt.
	Salt string `json:"salt"`

	// Token authorises document store requests.
	Token string `json:"token"`
}

// AuthResult is what the identity provider answers to a password check:
// either an MFA challenge or a terminal credential bundle.
type AuthResult struct {
	// MFAToken is non-empty when a second factor is required.
	MFAToken string `json:"mfa_token,omitempty"`

	// Bundle is set when authentication is complete.
	Bundle *CredentialBundle `json:"bundle,omitempty"`
}

// RequiresMFA reports whether the caller must confirm a second factor.
func (a AuthResult) RequiresMFA() bool {
	return a.Bundle == nil && a.MFAToken != ""
}
