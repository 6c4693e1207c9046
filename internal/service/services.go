package service

import (
	"github.com/mirovsky/passvault/internal/adapter"
	"github.com/mirovsky/passvault/internal/config"
	"github.com/mirovsky/passvault/internal/crypto"
	"github.com/mirovsky/passvault/internal/keyring"
	"github.com/mirovsky/passvault/internal/session"
	"github.com/mirovsky/passvault/internal/store"
	"github.com/mirovsky/passvault/internal/validators"
)

// ClientServices wires the full client service layer around one keyring and
// one session manager.
type ClientServices struct {
	SetupService    SetupService
	VaultKeyService VaultKeyService
	ItemService     ItemService
	ShareService    ShareService
}

func NewClientServices(
	localStore *store.LocalStorages,
	serverAdapter adapter.ServerAdapter,
	ring *keyring.Keyring,
	sessions *session.Manager,
	kdf config.KDF,
) *ClientServices {
	keychain := crypto.NewKeyChainServiceWithParams(kdf.Time, kdf.MemoryKiB, kdf.Threads)
	wrapper := crypto.NewKeyWrapService()
	keypairs := crypto.NewKeyPairService()
	validator := validators.NewVaultItemValidator()

	vaultKeySvc := NewVaultKeyService(serverAdapter, keychain, wrapper, ring)
	setupSvc := NewSetupService(serverAdapter, keychain, wrapper, keypairs, vaultKeySvc, ring, sessions)
	itemSvc := NewItemService(serverAdapter, keychain, wrapper, vaultKeySvc, localStore.VaultRepository, validator)
	shareSvc := NewShareService(serverAdapter, wrapper, keypairs, vaultKeySvc)

	return &ClientServices{
		SetupService:    setupSvc,
		VaultKeyService: vaultKeySvc,
		ItemService:     itemSvc,
		ShareService:    shareSvc,
	}
}
