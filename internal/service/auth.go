// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"errors"
	"sync"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/internal/vaulterr"
	"github.com/MKhiriev/go-pass-vault/models"
)

type authService struct {
	identity  adapter.IdentityProvider
	documents adapter.DocumentStore
	kdf       crypto.KeyDerivation
	sessions  SessionManager
	cache     CredentialCache

	mu     sync.RWMutex
	userID string
}

// NewAuthService builds an [AuthService].
func NewAuthService(
	identity adapter.IdentityProvider,
	documents adapter.DocumentStore,
	kdf crypto.KeyDerivation,
	sessions SessionManager,
	cache CredentialCache,
) AuthService {
	return &authService{
		identity:  identity,
		documents: documents,
		kdf:       kdf,
		sessions:  sessions,
		cache:     cache,
	}
}

func (a *authService) Login(ctx context.Context, email, password string, opts models.SessionOptions) (LoginResult, error) {
	const op = "auth.Login"

	if email == "" {
		return LoginResult{}, vaulterr.E(vaulterr.InvalidInput, op, ErrEmptyEmail)
	}
	if password == "" {
		return LoginResult{}, vaulterr.E(vaulterr.InvalidInput, op, ErrEmptyPassword)
	}

	res, err := a.identity.Authenticate(ctx, email, password)
	if err != nil {
		return LoginResult{}, err
	}

	if res.RequiresMFA() {
		logger.FromContext(ctx).Info().Str("func", op).Msg("mfa confirmation required")
		return LoginResult{MFAToken: res.MFAToken}, nil
	}

	return a.complete(ctx, *res.Bundle, password, opts)
}

func (a *authService) ConfirmMFA(ctx context.Context, mfaToken, code, password string, opts models.SessionOptions) (LoginResult, error) {
	const op = "auth.ConfirmMFA"

	if mfaToken == "" || code == "" {
		return LoginResult{}, vaulterr.E(vaulterr.InvalidInput, op, ErrEmptyMFA)
	}
	if password == "" {
		return LoginResult{}, vaulterr.E(vaulterr.InvalidInput, op, ErrEmptyPassword)
	}

	bundle, err := a.identity.VerifyMFA(ctx, mfaToken, code)
	if err != nil {
		return LoginResult{}, err
	}

	return a.complete(ctx, bundle, password, opts)
}

// complete derives the user secret key from the bundle's salt, opens a
// session that does not outlive the document store token, and hands the
// token to the document store.
func (a *authService) complete(ctx context.Context, bundle models.CredentialBundle, password string, opts models.SessionOptions) (LoginResult, error) {
	const op = "auth.complete"
	log := logger.FromContext(ctx)

	salt, err := base64.StdEncoding.DecodeString(bundle.Salt)
	if err != nil {
		return LoginResult{}, vaulterr.E(vaulterr.RemoteError, op, errors.Join(ErrInvalidSalt, err))
	}

	record, err := a.Unlock(ctx, password, salt, opts)
	if err != nil {
		return LoginResult{}, err
	}

	result := LoginResult{UserID: bundle.UserID, Session: record}

	token, err := utils.ParseUnverifiedToken(bundle.Token)
	if err != nil {
		log.Debug().Err(err).Str("func", op).Msg("document store token is not a jwt, expiry unknown")
	} else if exp := token.ExpiresAtTime(); !exp.IsZero() {
		result.TokenExpiresAt = exp
		if record.ExpiresAt.After(exp) {
			record, err = a.sessions.ExtendSession(ctx, exp.Sub(record.ExpiresAt))
			if err != nil {
				return LoginResult{}, err
			}
			result.Session = record
		}
	}

	a.documents.SetToken(bundle.Token)

	a.mu.Lock()
	a.userID = bundle.UserID
	a.mu.Unlock()

	log.Info().Str("func", op).Str("user_id", bundle.UserID).Time("expires_at", result.Session.ExpiresAt).Msg("user logged in")
	return result, nil
}

func (a *authService) Unlock(ctx context.Context, password string, salt []byte, opts models.SessionOptions) (models.SessionRecord, error) {
	key, err := a.kdf.DeriveUserSecretKey(password, salt)
	if err != nil {
		return models.SessionRecord{}, err
	}
	defer crypto.Zero(key)

	return a.sessions.CreateSession(ctx, key, opts)
}

func (a *authService) Logout(ctx context.Context) error {
	a.documents.SetToken("")

	a.mu.Lock()
	userID := a.userID
	a.userID = ""
	a.mu.Unlock()

	err := errors.Join(a.sessions.ClearSession(ctx), a.cache.Clear(ctx))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "auth.Logout").Str("user_id", userID).Msg("logout did not complete cleanly")
		return err
	}

	logger.FromContext(ctx).Info().Str("func", "auth.Logout").Str("user_id", userID).Msg("user logged out")
	return nil
}

func (a *authService) UserID() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.userID
}
