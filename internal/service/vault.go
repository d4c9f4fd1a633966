package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/internal/vaulterr"
	"github.com/MKhiriev/go-pass-vault/models"
)

type vaultService struct {
	documents adapter.DocumentStore
	sessions  SessionManager
	cache     CredentialCache
	envelope  crypto.Envelope
	ids       utils.IDGenerator
	validator validators.Validator
}

// NewVaultService builds a [VaultService].
func NewVaultService(
	documents adapter.DocumentStore,
	sessions SessionManager,
	cache CredentialCache,
	envelope crypto.Envelope,
	ids utils.IDGenerator,
) VaultService {
	return &vaultService{
		documents: documents,
		sessions:  sessions,
		cache:     cache,
		envelope:  envelope,
		ids:       ids,
		validator: validators.NewItemValidator(),
	}
}

func (v *vaultService) Create(ctx context.Context, userID string, content models.ItemContent) (models.RemoteEncryptedItem, error) {
	const op = "vault.Create"

	if userID == "" {
		return models.RemoteEncryptedItem{}, vaulterr.E(vaulterr.InvalidInput, op, ErrEmptyUserID)
	}

	item, err := v.seal(ctx, op, v.ids.Generate(), content)
	if err != nil {
		return models.RemoteEncryptedItem{}, err
	}

	created, err := v.documents.CreateItem(ctx, userID, item)
	if err != nil {
		return models.RemoteEncryptedItem{}, err
	}

	logger.FromContext(ctx).Info().Str("func", op).Str("user_id", userID).Str("item_id", created.ID).Msg("item created")
	v.refresh(ctx, userID)
	return created, nil
}

func (v *vaultService) Update(ctx context.Context, userID, itemID string, content models.ItemContent) (models.RemoteEncryptedItem, error) {
	const op = "vault.Update"

	if userID == "" {
		return models.RemoteEncryptedItem{}, vaulterr.E(vaulterr.InvalidInput, op, ErrEmptyUserID)
	}
	if itemID == "" {
		return models.RemoteEncryptedItem{}, vaulterr.E(vaulterr.InvalidInput, op, ErrEmptyItemID)
	}

	item, err := v.seal(ctx, op, itemID, content)
	if err != nil {
		return models.RemoteEncryptedItem{}, err
	}

	updated, err := v.documents.UpdateItem(ctx, userID, item)
	if err != nil {
		return models.RemoteEncryptedItem{}, err
	}

	logger.FromContext(ctx).Info().Str("func", op).Str("user_id", userID).Str("item_id", itemID).Msg("item updated")
	v.refresh(ctx, userID)
	return updated, nil
}

func (v *vaultService) Delete(ctx context.Context, userID, itemID string) error {
	const op = "vault.Delete"

	if userID == "" {
		return vaulterr.E(vaulterr.InvalidInput, op, ErrEmptyUserID)
	}
	if itemID == "" {
		return vaulterr.E(vaulterr.InvalidInput, op, ErrEmptyItemID)
	}

	if _, err := v.sessions.ValidateSession(ctx); err != nil {
		return err
	}

	if err := v.documents.DeleteItem(ctx, userID, itemID); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().Str("func", op).Str("user_id", userID).Str("item_id", itemID).Msg("item deleted")

	// Deleting the last item empties the remote vault, which a single
	// refresh reports as stale; the second pass confirms it.
	if res := v.refresh(ctx, userID); res.Stale {
		v.refresh(ctx, userID)
	}
	return nil
}

// seal encrypts content under a fresh item key wrapped by the user secret key.
func (v *vaultService) seal(ctx context.Context, op, id string, content models.ItemContent) (models.RemoteEncryptedItem, error) {
	if err := v.validator.Validate(ctx, content); err != nil {
		return models.RemoteEncryptedItem{}, vaulterr.E(vaulterr.InvalidInput, op, err)
	}

	key, err := v.sessions.UserSecretKey(ctx)
	if err != nil {
		return models.RemoteEncryptedItem{}, err
	}
	defer crypto.Zero(key)

	plain, err := json.Marshal(content)
	if err != nil {
		return models.RemoteEncryptedItem{}, vaulterr.E(vaulterr.InvalidInput, op, fmt.Errorf("encode content: %w", err))
	}
	defer crypto.Zero(plain)

	sealed, err := v.envelope.Seal(key, plain)
	if err != nil {
		return models.RemoteEncryptedItem{}, err
	}

	return models.RemoteEncryptedItem{
		ID:            id,
		ContentCipher: sealed.ContentCipher,
		ItemKeyCipher: sealed.ItemKeyCipher,
	}, nil
}

// refresh brings the cache in line with the remote write. The remote write
// has already succeeded, so a failed refresh is only logged.
func (v *vaultService) refresh(ctx context.Context, userID string) RefreshResult {
	res, err := v.cache.Refresh(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "vault.refresh").Str("user_id", userID).Msg("cache refresh after write failed")
	}
	return res
}
