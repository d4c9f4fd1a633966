package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/mock"
	"github.com/MKhiriev/go-pass-vault/internal/platform"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/internal/vaulterr"
	"github.com/MKhiriev/go-pass-vault/models"
)

type vaultFixture struct {
	docs     *mock.MockDocumentStore
	sessions SessionManager
	cache    CredentialCache
	envelope crypto.Envelope
	vault    VaultService
	key      []byte

	// remote is the fake document store content.
	remote []models.RemoteEncryptedItem
}

func newVaultFixture(t *testing.T, id string) *vaultFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	p := platform.NewMemory()

	f := &vaultFixture{
		docs:     mock.NewMockDocumentStore(ctrl),
		envelope: testEnvelope(t),
		key:      randomKey(t),
	}
	f.sessions = NewSessionManager(p, testSessionConfig())
	f.cache = NewCredentialCache(p, f.docs, f.sessions, f.envelope)
	f.vault = NewVaultService(f.docs, f.sessions, f.cache, f.envelope, fixedIDs(id))

	_, err := f.sessions.CreateSession(testContext(), f.key, models.SessionOptions{})
	require.NoError(t, err)
	return f
}

// serveRemote makes the mock answer list calls with the fixture's remote
// content.
func (f *vaultFixture) serveRemote() {
	f.docs.EXPECT().GetAllEncryptedItems(gomock.Any(), testUserID).
		DoAndReturn(func(context.Context, string) ([]models.RemoteEncryptedItem, error) {
			return append([]models.RemoteEncryptedItem(nil), f.remote...), nil
		}).
		AnyTimes()
}

func (f *vaultFixture) open(t *testing.T, item models.RemoteEncryptedItem) models.ItemContent {
	t.Helper()
	plain, err := f.envelope.Open(f.key, crypto.Sealed{ContentCipher: item.ContentCipher, ItemKeyCipher: item.ItemKeyCipher})
	require.NoError(t, err)

	var content models.ItemContent
	require.NoError(t, json.Unmarshal(plain, &content))
	return content
}

func TestVaultCreate_EncryptsAndRefreshesCache(t *testing.T) {
	ctx := testContext()
	f := newVaultFixture(t, "0190c0de-0000-7000-8000-000000000001")
	content := models.ItemContent{Title: "GitHub", Username: "alice", Secret: "hunter2", URL: "https://github.com"}

	f.docs.EXPECT().CreateItem(gomock.Any(), testUserID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, item models.RemoteEncryptedItem) (models.RemoteEncryptedItem, error) {
			f.remote = append(f.remote, item)
			return item, nil
		})
	f.serveRemote()

	created, err := f.vault.Create(ctx, testUserID, content)
	require.NoError(t, err)

	assert.Equal(t, "0190c0de-0000-7000-8000-000000000001", created.ID)
	assert.NotContains(t, string(created.ContentCipher), "hunter2")
	assert.Equal(t, content, f.open(t, created))

	creds, err := f.cache.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, creds, 1)
	assert.Equal(t, "GitHub", creds[0].Title)

	secret, err := f.cache.ReadSecret(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "hunter2", secret)
}

func TestVaultCreate_Validation(t *testing.T) {
	f := newVaultFixture(t, "id-1")

	_, err := f.vault.Create(testContext(), "", models.ItemContent{Title: "x"})
	assert.ErrorIs(t, err, ErrEmptyUserID)

	_, err = f.vault.Create(testContext(), testUserID, models.ItemContent{Secret: "pw"})
	assert.ErrorIs(t, err, vaulterr.ErrInvalidInput)
	assert.ErrorIs(t, err, validators.ErrEmptyTitle)
}

func TestVaultCreate_RequiresSession(t *testing.T) {
	ctx := testContext()
	f := newVaultFixture(t, "id-1")
	require.NoError(t, f.sessions.ClearSession(ctx))

	_, err := f.vault.Create(ctx, testUserID, models.ItemContent{Title: "GitHub"})
	assert.ErrorIs(t, err, vaulterr.ErrNoActiveSession)
}

func TestVaultCreate_RemoteFailure(t *testing.T) {
	f := newVaultFixture(t, "id-1")

	remoteErr := vaulterr.E(vaulterr.RemoteError, "documents.CreateItem", errors.New("409 conflict"))
	f.docs.EXPECT().CreateItem(gomock.Any(), testUserID, gomock.Any()).Return(models.RemoteEncryptedItem{}, remoteErr)

	_, err := f.vault.Create(testContext(), testUserID, models.ItemContent{Title: "GitHub"})
	assert.ErrorIs(t, err, vaulterr.ErrRemoteError)
}

func TestVaultCreate_RefreshFailureDoesNotFailWrite(t *testing.T) {
	f := newVaultFixture(t, "id-1")

	f.docs.EXPECT().CreateItem(gomock.Any(), testUserID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, item models.RemoteEncryptedItem) (models.RemoteEncryptedItem, error) {
			return item, nil
		})
	f.docs.EXPECT().GetAllEncryptedItems(gomock.Any(), testUserID).Return(nil, errors.New("timeout"))

	created, err := f.vault.Create(testContext(), testUserID, models.ItemContent{Title: "GitHub"})
	require.NoError(t, err)
	assert.Equal(t, "id-1", created.ID)
}

func TestVaultUpdate_ReplacesContent(t *testing.T) {
	ctx := testContext()
	f := newVaultFixture(t, "unused")
	f.remote = []models.RemoteEncryptedItem{
		sealItem(t, f.envelope, f.key, "item-1", models.ItemContent{Title: "GitHub", Secret: "old"}),
	}

	f.docs.EXPECT().UpdateItem(gomock.Any(), testUserID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, item models.RemoteEncryptedItem) (models.RemoteEncryptedItem, error) {
			f.remote[0] = item
			return item, nil
		})
	f.serveRemote()

	updated, err := f.vault.Update(ctx, testUserID, "item-1", models.ItemContent{Title: "GitHub", Secret: "new"})
	require.NoError(t, err)
	assert.Equal(t, "item-1", updated.ID)
	assert.Equal(t, "new", f.open(t, updated).Secret)

	secret, err := f.cache.ReadSecret(ctx, "item-1")
	require.NoError(t, err)
	assert.Equal(t, "new", secret)
}

func TestVaultUpdate_Validation(t *testing.T) {
	f := newVaultFixture(t, "unused")

	_, err := f.vault.Update(testContext(), testUserID, "", models.ItemContent{Title: "x"})
	assert.ErrorIs(t, err, ErrEmptyItemID)

	_, err = f.vault.Update(testContext(), "", "item-1", models.ItemContent{Title: "x"})
	assert.ErrorIs(t, err, ErrEmptyUserID)
}

func TestVaultDelete_LastItemEmptiesCache(t *testing.T) {
	ctx := testContext()
	f := newVaultFixture(t, "unused")
	f.remote = []models.RemoteEncryptedItem{
		sealItem(t, f.envelope, f.key, "item-1", models.ItemContent{Title: "GitHub", Secret: "pw"}),
	}
	f.serveRemote()

	_, err := f.cache.Refresh(ctx, testUserID)
	require.NoError(t, err)

	f.docs.EXPECT().DeleteItem(gomock.Any(), testUserID, "item-1").
		DoAndReturn(func(context.Context, string, string) error {
			f.remote = nil
			return nil
		})

	require.NoError(t, f.vault.Delete(ctx, testUserID, "item-1"))

	creds, err := f.cache.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, creds)
}

func TestVaultDelete_RequiresSession(t *testing.T) {
	ctx := testContext()
	f := newVaultFixture(t, "unused")
	require.NoError(t, f.sessions.ClearSession(ctx))

	err := f.vault.Delete(ctx, testUserID, "item-1")
	assert.ErrorIs(t, err, vaulterr.ErrNoActiveSession)
}

func TestVaultDelete_Validation(t *testing.T) {
	f := newVaultFixture(t, "unused")

	assert.ErrorIs(t, f.vault.Delete(testContext(), testUserID, ""), ErrEmptyItemID)
	assert.ErrorIs(t, f.vault.Delete(testContext(), "", "item-1"), ErrEmptyUserID)
}
