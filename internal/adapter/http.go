// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/internal/vaulterr"
	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	itemsPath = "/api/users/{userID}/items"
	itemPath  = "/api/users/{userID}/items/{itemID}"
	loginPath = "/api/auth/login"
	mfaPath   = "/api/auth/mfa"
)

type httpDocumentStore struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPDocumentStore constructs an HTTP/REST implementation of
// [DocumentStore]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPDocumentStore(adapterCfg config.ClientAdapter, logger *logger.Logger) (DocumentStore, error) {
	client, err := utils.NewHTTPClient(adapterCfg.HTTPAddress, adapterCfg.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpDocumentStore{client: client, logger: logger}, nil
}

// SetToken implements [DocumentStore]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent requests.
func (h *httpDocumentStore) SetToken(token string) {
	h.mu.Lock()
	h.token = strings.TrimSpace(token)
	h.mu.Unlock()
}

// Token implements [DocumentStore].
func (h *httpDocumentStore) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// GetAllEncryptedItems implements [DocumentStore] via
// GET /api/users/{userID}/items.
func (h *httpDocumentStore) GetAllEncryptedItems(ctx context.Context, userID string) ([]models.RemoteEncryptedItem, error) {
	const op = "documents.GetAllEncryptedItems"

	if userID == "" {
		return nil, vaulterr.E(vaulterr.InvalidInput, op, ErrEmptyUserID)
	}

	resp, err := h.authedRequest(ctx).
		SetPathParam("userID", userID).
		Get(itemsPath)
	if err != nil {
		return nil, h.remoteError(ctx, op, fmt.Errorf("get items request: %w", err))
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, h.remoteError(ctx, op, err)
	}

	items := make([]models.RemoteEncryptedItem, 0)
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, h.remoteError(ctx, op, fmt.Errorf("decode items response: %w", err))
	}

	return items, nil
}

// CreateItem implements [DocumentStore] via POST /api/users/{userID}/items.
func (h *httpDocumentStore) CreateItem(ctx context.Context, userID string, item models.RemoteEncryptedItem) (models.RemoteEncryptedItem, error) {
	const op = "documents.CreateItem"

	if userID == "" {
		return models.RemoteEncryptedItem{}, vaulterr.E(vaulterr.InvalidInput, op, ErrEmptyUserID)
	}

	resp, err := h.authedRequest(ctx).
		SetPathParam("userID", userID).
		SetHeader("Content-Type", "application/json").
		SetBody(item).
		Post(itemsPath)
	if err != nil {
		return models.RemoteEncryptedItem{}, h.remoteError(ctx, op, fmt.Errorf("create item request: %w", err))
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RemoteEncryptedItem{}, h.remoteError(ctx, op, err)
	}

	return decodeItem(resp, item)
}

// UpdateItem implements [DocumentStore] via
// PUT /api/users/{userID}/items/{itemID}. Returns [ErrConflict] (wrapped) on
// HTTP 409.
func (h *httpDocumentStore) UpdateItem(ctx context.Context, userID string, item models.RemoteEncryptedItem) (models.RemoteEncryptedItem, error) {
	const op = "documents.UpdateItem"

	if userID == "" {
		return models.RemoteEncryptedItem{}, vaulterr.E(vaulterr.InvalidInput, op, ErrEmptyUserID)
	}
	if item.ID == "" {
		return models.RemoteEncryptedItem{}, vaulterr.E(vaulterr.InvalidInput, op, ErrEmptyItemID)
	}

	resp, err := h.authedRequest(ctx).
		SetPathParams(map[string]string{"userID": userID, "itemID": item.ID}).
		SetHeader("Content-Type", "application/json").
		SetBody(item).
		Put(itemPath)
	if err != nil {
		return models.RemoteEncryptedItem{}, h.remoteError(ctx, op, fmt.Errorf("update item request: %w", err))
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RemoteEncryptedItem{}, h.remoteError(ctx, op, err)
	}

	return decodeItem(resp, item)
}

// DeleteItem implements [DocumentStore] via
// DELETE /api/users/{userID}/items/{itemID}.
func (h *httpDocumentStore) DeleteItem(ctx context.Context, userID, itemID string) error {
	const op = "documents.DeleteItem"

	if userID == "" {
		return vaulterr.E(vaulterr.InvalidInput, op, ErrEmptyUserID)
	}
	if itemID == "" {
		return vaulterr.E(vaulterr.InvalidInput, op, ErrEmptyItemID)
	}

	resp, err := h.authedRequest(ctx).
		SetPathParams(map[string]string{"userID": userID, "itemID": itemID}).
		Delete(itemPath)
	if err != nil {
		return h.remoteError(ctx, op, fmt.Errorf("delete item request: %w", err))
	}
	if err = mapHTTPError(resp); err != nil {
		return h.remoteError(ctx, op, err)
	}

	return nil
}

func (h *httpDocumentStore) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func (h *httpDocumentStore) remoteError(ctx context.Context, op string, err error) error {
	logger.FromContext(ctx).Err(err).Str("func", op).Msg("document store request failed")
	return vaulterr.E(vaulterr.RemoteError, op, err)
}

// decodeItem reads the persisted item from the response body. Stores that
// answer with an empty body are assumed to have persisted sent unchanged.
func decodeItem(resp *resty.Response, sent models.RemoteEncryptedItem) (models.RemoteEncryptedItem, error) {
	if len(resp.Body()) == 0 {
		return sent, nil
	}

	var stored models.RemoteEncryptedItem
	if err := json.Unmarshal(resp.Body(), &stored); err != nil {
		return models.RemoteEncryptedItem{}, vaulterr.E(vaulterr.RemoteError, "documents.decodeItem", fmt.Errorf("decode item response: %w", err))
	}
	return stored, nil
}

type httpIdentityProvider struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPIdentityProvider constructs an HTTP/REST implementation of
// [IdentityProvider] against the same API address as the document store.
func NewHTTPIdentityProvider(adapterCfg config.ClientAdapter, logger *logger.Logger) (IdentityProvider, error) {
	client, err := utils.NewHTTPClient(adapterCfg.HTTPAddress, adapterCfg.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpIdentityProvider{client: client, logger: logger}, nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type mfaRequest struct {
	MFAToken string `json:"mfa_token"`
	Code     string `json:"code"`
}

// Authenticate implements [IdentityProvider] via POST /api/auth/login.
func (h *httpIdentityProvider) Authenticate(ctx context.Context, email, password string) (models.AuthResult, error) {
	const op = "identity.Authenticate"

	var result models.AuthResult
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(loginRequest{Email: email, Password: password}).
		SetResult(&result).
		Post(loginPath)
	if err != nil {
		return models.AuthResult{}, h.remoteError(ctx, op, fmt.Errorf("login request: %w", err))
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResult{}, h.remoteError(ctx, op, err)
	}

	if result.Bundle == nil && result.MFAToken == "" {
		return models.AuthResult{}, h.remoteError(ctx, op, ErrInvalidAuthResponse)
	}

	return result, nil
}

// VerifyMFA implements [IdentityProvider] via POST /api/auth/mfa.
func (h *httpIdentityProvider) VerifyMFA(ctx context.Context, mfaToken, code string) (models.CredentialBundle, error) {
	const op = "identity.VerifyMFA"

	var bundle models.CredentialBundle
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(mfaRequest{MFAToken: mfaToken, Code: code}).
		SetResult(&bundle).
		Post(mfaPath)
	if err != nil {
		return models.CredentialBundle{}, h.remoteError(ctx, op, fmt.Errorf("mfa request: %w", err))
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CredentialBundle{}, h.remoteError(ctx, op, err)
	}

	if bundle.UserID == "" || bundle.Salt == "" {
		return models.CredentialBundle{}, h.remoteError(ctx, op, ErrInvalidAuthResponse)
	}

	return bundle, nil
}

func (h *httpIdentityProvider) remoteError(ctx context.Context, op string, err error) error {
	logger.FromContext(ctx).Err(err).Str("func", op).Msg("identity provider request failed")
	return vaulterr.E(vaulterr.RemoteError, op, err)
}
