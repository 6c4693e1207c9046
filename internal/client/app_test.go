package client

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirovsky/passvault/internal/config"
	"github.com/mirovsky/passvault/internal/logger"
	"github.com/mirovsky/passvault/internal/service"
	"github.com/mirovsky/passvault/internal/session"
	"github.com/mirovsky/passvault/models"
)

type fakeSetup struct {
	setupFn  func(ctx context.Context, login string) (string, error)
	unlockFn func(ctx context.Context, login, passphrase string) error
	locked   int
}

func (f *fakeSetup) Setup(ctx context.Context, login string) (string, error) {
	return f.setupFn(ctx, login)
}

func (f *fakeSetup) Unlock(ctx context.Context, login, passphrase string) error {
	return f.unlockFn(ctx, login, passphrase)
}

func (f *fakeSetup) Lock() { f.locked++ }

type fakeVaultKeys struct {
	createFn func(ctx context.Context, name string, vaultType models.VaultType, orgID string) (models.Vault, error)
}

func (f *fakeVaultKeys) Resolve(ctx context.Context, vaultID string) ([]byte, error) {
	return nil, nil
}

func (f *fakeVaultKeys) CreateVault(ctx context.Context, name string, vaultType models.VaultType, orgID string) (models.Vault, error) {
	return f.createFn(ctx, name, vaultType, orgID)
}

type fakeItems struct {
	createFn  func(ctx context.Context, vaultID string, meta models.VaultItem, fields models.ItemFields) (models.VaultItem, error)
	decryptFn func(ctx context.Context, item models.VaultItem) (models.ItemFields, []*service.FieldDecryptionError, error)
	getFn     func(ctx context.Context, itemID string) (models.VaultItem, error)
	listFn    func(ctx context.Context, vaultID string) ([]models.VaultItem, error)
	rotateFn  func(ctx context.Context, item models.VaultItem) (models.VaultItem, error)
}

func (f *fakeItems) Create(ctx context.Context, vaultID string, meta models.VaultItem, fields models.ItemFields) (models.VaultItem, error) {
	return f.createFn(ctx, vaultID, meta, fields)
}

func (f *fakeItems) Decrypt(ctx context.Context, item models.VaultItem) (models.ItemFields, []*service.FieldDecryptionError, error) {
	return f.decryptFn(ctx, item)
}

func (f *fakeItems) Get(ctx context.Context, itemID string) (models.VaultItem, error) {
	return f.getFn(ctx, itemID)
}

func (f *fakeItems) List(ctx context.Context, vaultID string) ([]models.VaultItem, error) {
	return f.listFn(ctx, vaultID)
}

func (f *fakeItems) RotateItemKey(ctx context.Context, item models.VaultItem) (models.VaultItem, error) {
	return f.rotateFn(ctx, item)
}

type fakeShare struct {
	shareFn  func(ctx context.Context, vaultID, memberID string) error
	revokeFn func(ctx context.Context, vaultID, memberID string) error
}

func (f *fakeShare) ShareVault(ctx context.Context, vaultID, memberID string) error {
	return f.shareFn(ctx, vaultID, memberID)
}

func (f *fakeShare) RevokeAccess(ctx context.Context, vaultID, memberID string) error {
	return f.revokeFn(ctx, vaultID, memberID)
}

func newTestApp(input string, svcs *service.ClientServices) (*App, *bytes.Buffer) {
	sessions := session.NewManager(time.Minute)
	sessions.Start()

	out := &bytes.Buffer{}
	app := &App{
		services: svcs,
		sessions: sessions,
		cfg:      config.ClientApp{},
		logger:   logger.Nop(),
		in:       bufio.NewReader(strings.NewReader(input)),
		out:      out,
	}
	return app, out
}

func TestApp_RunQuitLocksSession(t *testing.T) {
	setup := &fakeSetup{}
	app, _ := newTestApp("status\nquit\n", &service.ClientServices{SetupService: setup})

	require.NoError(t, app.Run())
	assert.Equal(t, 1, setup.locked)
}

func TestApp_RunExitsOnEOF(t *testing.T) {
	app, out := newTestApp("", &service.ClientServices{})

	require.NoError(t, app.Run())
	assert.Contains(t, out.String(), "passvault> ")
}

func TestApp_SetupPrintsMnemonicOnce(t *testing.T) {
	const mnemonic = "legal winner thank year wave sausage worth useful legal winner thank yellow"

	setup := &fakeSetup{
		setupFn: func(_ context.Context, login string) (string, error) {
			assert.Equal(t, "alice", login)
			return mnemonic, nil
		},
	}
	app, out := newTestApp("", &service.ClientServices{SetupService: setup})

	quit, err := app.dispatch(context.Background(), "setup", []string{"alice"})
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Contains(t, out.String(), mnemonic)
}

func TestApp_SetupShowsMnemonicEvenWhenSetupIncomplete(t *testing.T) {
	const mnemonic = "legal winner thank year wave sausage worth useful legal winner thank yellow"

	// Registration committed but a later step failed: the phrase still
	// arrives alongside the error and must reach the user.
	setup := &fakeSetup{
		setupFn: func(_ context.Context, _ string) (string, error) {
			return mnemonic, service.ErrSetupIncomplete
		},
	}
	app, out := newTestApp("", &service.ClientServices{SetupService: setup})

	_, err := app.dispatch(context.Background(), "setup", []string{"alice"})
	assert.ErrorIs(t, err, service.ErrSetupIncomplete)
	assert.Contains(t, out.String(), mnemonic)
	assert.NotContains(t, out.String(), "account created")
}

func TestApp_UnlockReadsPassphraseFromInput(t *testing.T) {
	var gotLogin, gotPassphrase string
	setup := &fakeSetup{
		unlockFn: func(_ context.Context, login, passphrase string) error {
			gotLogin, gotPassphrase = login, passphrase
			return nil
		},
	}
	app, out := newTestApp("correct horse battery staple\n", &service.ClientServices{SetupService: setup})

	_, err := app.dispatch(context.Background(), "unlock", []string{"alice"})
	require.NoError(t, err)
	assert.Equal(t, "alice", gotLogin)
	assert.Equal(t, "correct horse battery staple", gotPassphrase)
	assert.Contains(t, out.String(), "unlocked")
}

func TestApp_AddPromptsOnlyFieldsOfItemTypes(t *testing.T) {
	var gotMeta models.VaultItem
	var gotFields models.ItemFields
	items := &fakeItems{
		createFn: func(_ context.Context, vaultID string, meta models.VaultItem, fields models.ItemFields) (models.VaultItem, error) {
			assert.Equal(t, "vault-1", vaultID)
			gotMeta, gotFields = meta, fields
			return models.VaultItem{ItemID: "item-1"}, nil
		},
	}
	// Prompt order for a login item: url, username, password.
	input := "https://example.com\nalice\nhunter2\n"
	app, out := newTestApp(input, &service.ClientServices{ItemService: items})

	_, err := app.dispatch(context.Background(), "add", []string{"vault-1", "example", "login"})
	require.NoError(t, err)

	assert.Equal(t, "example", gotMeta.Name)
	assert.Equal(t, "https://example.com", gotMeta.URL)
	assert.Equal(t, []models.ItemType{models.ItemTypeLogin}, gotMeta.Type)
	assert.Equal(t, models.ItemFields{
		models.FieldUsername: "alice",
		models.FieldPassword: "hunter2",
	}, gotFields)
	assert.Contains(t, out.String(), "item created: item-1")
}

func TestApp_AddRejectsUnknownType(t *testing.T) {
	app, _ := newTestApp("", &service.ClientServices{})

	_, err := app.dispatch(context.Background(), "add", []string{"vault-1", "example", "card"})
	assert.ErrorIs(t, err, errUsage)
}

func TestApp_ListEmptyVault(t *testing.T) {
	items := &fakeItems{
		listFn: func(_ context.Context, vaultID string) ([]models.VaultItem, error) {
			return nil, nil
		},
	}
	app, out := newTestApp("", &service.ClientServices{ItemService: items})

	_, err := app.dispatch(context.Background(), "list", []string{"vault-1"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "vault is empty")
}

func TestApp_ShowPrintsFieldsAndWarnings(t *testing.T) {
	item := models.VaultItem{
		ItemID:  "item-1",
		Name:    "example",
		Type:    []models.ItemType{models.ItemTypeLogin},
		Version: 3,
	}
	items := &fakeItems{
		getFn: func(_ context.Context, itemID string) (models.VaultItem, error) {
			return item, nil
		},
		decryptFn: func(_ context.Context, got models.VaultItem) (models.ItemFields, []*service.FieldDecryptionError, error) {
			return models.ItemFields{models.FieldUsername: "alice"},
				[]*service.FieldDecryptionError{{Field: models.FieldPassword}},
				nil
		},
	}
	app, out := newTestApp("", &service.ClientServices{ItemService: items})

	_, err := app.dispatch(context.Background(), "show", []string{"item-1"})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "username: alice")
	assert.Contains(t, out.String(), `field "password" could not be decrypted`)
	assert.Contains(t, out.String(), "version: 3")
}

func TestApp_CopyRejectsUnknownField(t *testing.T) {
	app, _ := newTestApp("", &service.ClientServices{})

	_, err := app.dispatch(context.Background(), "copy", []string{"item-1", "cvv"})
	assert.ErrorIs(t, err, errUsage)
}

func TestApp_CopyReportsFailedField(t *testing.T) {
	items := &fakeItems{
		getFn: func(_ context.Context, itemID string) (models.VaultItem, error) {
			return models.VaultItem{ItemID: itemID}, nil
		},
		decryptFn: func(_ context.Context, _ models.VaultItem) (models.ItemFields, []*service.FieldDecryptionError, error) {
			return nil, []*service.FieldDecryptionError{{Field: models.FieldPassword}}, nil
		},
	}
	app, _ := newTestApp("", &service.ClientServices{ItemService: items})

	_, err := app.dispatch(context.Background(), "copy", []string{"item-1", "password"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password")
}

func TestApp_CreateVaultOrganization(t *testing.T) {
	vaults := &fakeVaultKeys{
		createFn: func(_ context.Context, name string, vaultType models.VaultType, orgID string) (models.Vault, error) {
			assert.Equal(t, "shared", name)
			assert.Equal(t, models.VaultTypeOrganization, vaultType)
			assert.Equal(t, "org-1", orgID)
			return models.Vault{VaultID: "vault-9", Type: vaultType}, nil
		},
	}
	app, out := newTestApp("", &service.ClientServices{VaultKeyService: vaults})

	_, err := app.dispatch(context.Background(), "create-vault", []string{"shared", "org-1"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "vault-9")
}

func TestApp_ShareAndRevoke(t *testing.T) {
	var shared, revoked bool
	share := &fakeShare{
		shareFn: func(_ context.Context, vaultID, memberID string) error {
			shared = vaultID == "vault-1" && memberID == "user-2"
			return nil
		},
		revokeFn: func(_ context.Context, vaultID, memberID string) error {
			revoked = vaultID == "vault-1" && memberID == "user-2"
			return nil
		},
	}
	app, _ := newTestApp("", &service.ClientServices{ShareService: share})

	_, err := app.dispatch(context.Background(), "share", []string{"vault-1", "user-2"})
	require.NoError(t, err)
	_, err = app.dispatch(context.Background(), "revoke", []string{"vault-1", "user-2"})
	require.NoError(t, err)

	assert.True(t, shared)
	assert.True(t, revoked)
}

func TestApp_RotatePrintsNewVersion(t *testing.T) {
	items := &fakeItems{
		getFn: func(_ context.Context, itemID string) (models.VaultItem, error) {
			return models.VaultItem{ItemID: itemID, Version: 1}, nil
		},
		rotateFn: func(_ context.Context, item models.VaultItem) (models.VaultItem, error) {
			item.Version++
			return item, nil
		},
	}
	app, out := newTestApp("", &service.ClientServices{ItemService: items})

	_, err := app.dispatch(context.Background(), "rotate", []string{"item-1"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "version 2")
}

func TestApp_UnknownCommand(t *testing.T) {
	app, out := newTestApp("", &service.ClientServices{})

	quit, err := app.dispatch(context.Background(), "frobnicate", nil)
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Contains(t, out.String(), "unknown command")
}

func TestErrorMessage_MapsSentinels(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{err: service.ErrDecryptionFailed, want: msgIncorrectCredentials},
		{err: service.ErrVaultLocked, want: msgVaultLocked},
		{err: service.ErrItemNotFound, want: msgItemNotFound},
		{err: service.ErrMembershipNotFound, want: msgNotAMember},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, errorMessage(tt.err))
	}
}
