package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mirovsky/passvault/internal/adapter"
	"github.com/mirovsky/passvault/internal/crypto"
	"github.com/mirovsky/passvault/internal/keyring"
	"github.com/mirovsky/passvault/internal/mock"
	"github.com/mirovsky/passvault/internal/store"
	"github.com/mirovsky/passvault/internal/validators"
	"github.com/mirovsky/passvault/models"
)

type itemFixture struct {
	svc       ItemService
	adapter   *mock.MockServerAdapter
	local     *mock.MockLocalVaultRepository
	ring      *keyring.Keyring
	wrapper   crypto.KeyWrapService
	vaultKeys VaultKeyService
	ovk       []byte
}

// newItemFixture wires an item service over real crypto with the vault key
// already resolved in the keyring, the way it is after a successful unlock.
func newItemFixture(t *testing.T, ctrl *gomock.Controller) *itemFixture {
	t.Helper()

	f := &itemFixture{
		adapter: mock.NewMockServerAdapter(ctrl),
		local:   mock.NewMockLocalVaultRepository(ctrl),
		ring:    keyring.New(),
		wrapper: crypto.NewKeyWrapService(),
	}

	keychain := fastKeyChain()
	ovk, err := keychain.GenerateVaultKey()
	require.NoError(t, err)
	f.ovk = ovk
	f.ring.SetUserID("user-1")
	f.ring.SetMasterKey([]byte("0123456789abcdef0123456789abcdef"))
	f.ring.PutVaultKey("vault-1", ovk)

	f.vaultKeys = NewVaultKeyService(f.adapter, keychain, f.wrapper, f.ring)
	f.svc = NewItemService(f.adapter, keychain, f.wrapper, f.vaultKeys, f.local, validators.NewVaultItemValidator())
	return f
}

func loginMeta() models.VaultItem {
	return models.VaultItem{
		Name: "github",
		URL:  "https://github.com",
		Type: []models.ItemType{models.ItemTypeLogin},
		Tags: []string{"work"},
	}
}

func loginFields() models.ItemFields {
	return models.ItemFields{
		models.FieldUsername: "alice@example.com",
		models.FieldPassword: "hunter2",
	}
}

func TestCreate_EncryptsEveryFieldIndependently(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newItemFixture(t, ctrl)
	ctx := context.Background()

	var uploaded models.VaultItem
	f.adapter.EXPECT().UploadItem(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, item models.VaultItem) error {
			uploaded = item
			return nil
		})
	f.local.EXPECT().SaveItem(ctx, gomock.Any()).Return(nil)

	item, err := f.svc.Create(ctx, "vault-1", loginMeta(), loginFields())

	require.NoError(t, err)
	assert.Equal(t, item, uploaded)
	assert.NotEmpty(t, item.ItemID)
	assert.Equal(t, int64(1), item.Version)
	assert.NotEmpty(t, item.ItemKeyWrapped)
	assert.NotEmpty(t, item.UsernameCT)
	assert.NotEmpty(t, item.PasswordCT)
	assert.Empty(t, item.TOTPSeedCT)
	assert.Empty(t, item.NoteCT)

	// The two ciphertexts must not share a nonce prefix.
	assert.NotEqual(t, item.UsernameCT[:16], item.PasswordCT[:16])

	// Full round trip through the independent decryption path.
	fields, fieldErrs, err := f.svc.Decrypt(ctx, item)
	require.NoError(t, err)
	assert.Empty(t, fieldErrs)
	assert.Equal(t, loginFields(), fields)
}

func TestCreate_RejectsUnknownField(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newItemFixture(t, ctrl)

	_, err := f.svc.Create(context.Background(), "vault-1", loginMeta(), models.ItemFields{"ssn": "123"})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreate_RejectsFieldWithoutMatchingType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newItemFixture(t, ctrl)

	// A note field on an item not tagged as a note.
	fields := models.ItemFields{models.FieldNote: "secret remark"}

	_, err := f.svc.Create(context.Background(), "vault-1", loginMeta(), fields)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDecrypt_WrongItemKeyBlob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newItemFixture(t, ctrl)
	ctx := context.Background()

	item := models.VaultItem{
		ItemID: "item-1", VaultID: "vault-1", Name: "github",
		Type:           []models.ItemType{models.ItemTypeLogin},
		ItemKeyWrapped: base64.StdEncoding.EncodeToString(make([]byte, 44)),
		UsernameCT:     "irrelevant",
	}

	_, _, err := f.svc.Decrypt(ctx, item)

	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestDecrypt_PartialFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newItemFixture(t, ctrl)
	ctx := context.Background()

	f.adapter.EXPECT().UploadItem(ctx, gomock.Any()).Return(nil)
	f.local.EXPECT().SaveItem(ctx, gomock.Any()).Return(nil)

	item, err := f.svc.Create(ctx, "vault-1", loginMeta(), loginFields())
	require.NoError(t, err)

	// Corrupt exactly one field blob; its sibling must still decrypt.
	item.PasswordCT = base64.StdEncoding.EncodeToString(make([]byte, 40))

	fields, fieldErrs, err := f.svc.Decrypt(ctx, item)

	require.NoError(t, err)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, models.FieldPassword, fieldErrs[0].Field)
	assert.ErrorIs(t, fieldErrs[0], crypto.ErrDecryptionFailed)
	assert.Equal(t, "alice@example.com", fields[models.FieldUsername])
	assert.NotContains(t, fields, models.FieldPassword)
}

func TestGet_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newItemFixture(t, ctrl)
	ctx := context.Background()

	cached := models.VaultItem{ItemID: "item-1", VaultID: "vault-1", Name: "github"}
	f.local.EXPECT().GetItem(ctx, "item-1").Return(cached, nil)

	got, err := f.svc.Get(ctx, "item-1")

	require.NoError(t, err)
	assert.Equal(t, cached, got)
}

func TestGet_CacheMissFallsBackToServer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newItemFixture(t, ctrl)
	ctx := context.Background()

	remote := models.VaultItem{ItemID: "item-1", VaultID: "vault-1", Name: "github"}
	f.local.EXPECT().GetItem(ctx, "item-1").
		Return(models.VaultItem{}, fmt.Errorf("cached item item-1: %w", store.ErrNotFound))
	f.adapter.EXPECT().GetItem(ctx, "item-1").Return(remote, nil)
	f.local.EXPECT().SaveItem(ctx, remote).Return(nil)

	got, err := f.svc.Get(ctx, "item-1")

	require.NoError(t, err)
	assert.Equal(t, remote, got)
}

func TestGet_NotFoundAnywhere(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newItemFixture(t, ctrl)
	ctx := context.Background()

	f.local.EXPECT().GetItem(ctx, "ghost").
		Return(models.VaultItem{}, fmt.Errorf("cached item ghost: %w", store.ErrNotFound))
	f.adapter.EXPECT().GetItem(ctx, "ghost").
		Return(models.VaultItem{}, fmt.Errorf("%w: no item", adapter.ErrNotFound))

	_, err := f.svc.Get(ctx, "ghost")

	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestList_RefreshesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newItemFixture(t, ctrl)
	ctx := context.Background()

	items := []models.VaultItem{
		{ItemID: "item-1", VaultID: "vault-1", Name: "github"},
		{ItemID: "item-2", VaultID: "vault-1", Name: "gitlab"},
	}
	f.adapter.EXPECT().ListItems(ctx, "vault-1").Return(items, nil)
	f.local.EXPECT().SaveItem(ctx, items[0]).Return(nil)
	f.local.EXPECT().SaveItem(ctx, items[1]).Return(nil)

	got, err := f.svc.List(ctx, "vault-1")

	require.NoError(t, err)
	assert.Equal(t, items, got)
}

func TestList_ServesCacheWhenServerUnreachable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newItemFixture(t, ctrl)
	ctx := context.Background()

	cached := []models.VaultItem{{ItemID: "item-1", VaultID: "vault-1", Name: "github"}}
	f.adapter.EXPECT().ListItems(ctx, "vault-1").
		Return(nil, fmt.Errorf("%w: connection refused", adapter.ErrInternalServerError))
	f.local.EXPECT().ListItems(ctx, "vault-1").Return(cached, nil)

	got, err := f.svc.List(ctx, "vault-1")

	require.NoError(t, err)
	assert.Equal(t, cached, got)
}

func TestRotateItemKey_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newItemFixture(t, ctrl)
	ctx := context.Background()

	f.adapter.EXPECT().UploadItem(ctx, gomock.Any()).Return(nil).Times(2)
	f.local.EXPECT().SaveItem(ctx, gomock.Any()).Return(nil).Times(2)

	item, err := f.svc.Create(ctx, "vault-1", loginMeta(), loginFields())
	require.NoError(t, err)

	rotated, err := f.svc.RotateItemKey(ctx, item)

	require.NoError(t, err)
	assert.Equal(t, item.ItemID, rotated.ItemID)
	assert.Equal(t, item.Version+1, rotated.Version)
	assert.NotEqual(t, item.ItemKeyWrapped, rotated.ItemKeyWrapped)
	assert.NotEqual(t, item.UsernameCT, rotated.UsernameCT)
	assert.NotEqual(t, item.PasswordCT, rotated.PasswordCT)

	// Same plaintext under the new key.
	fields, fieldErrs, err := f.svc.Decrypt(ctx, rotated)
	require.NoError(t, err)
	assert.Empty(t, fieldErrs)
	assert.Equal(t, loginFields(), fields)
}

func TestRotateItemKey_AbortsOnUnrecoverableField(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newItemFixture(t, ctrl)
	ctx := context.Background()

	f.adapter.EXPECT().UploadItem(ctx, gomock.Any()).Return(nil)
	f.local.EXPECT().SaveItem(ctx, gomock.Any()).Return(nil)

	item, err := f.svc.Create(ctx, "vault-1", loginMeta(), loginFields())
	require.NoError(t, err)

	item.PasswordCT = base64.StdEncoding.EncodeToString(make([]byte, 40))

	// No upload expectation: rotation must not persist anything.
	_, err = f.svc.RotateItemKey(ctx, item)

	assert.ErrorIs(t, err, ErrDecryptionFailed)
}
