package service

import (
	"context"

	"github.com/mirovsky/passvault/models"
)

// SetupService orchestrates first-time setup and session unlock. It is the
// only place where a passphrase enters the system, and it leaves again as
// soon as derivation completes.
type SetupService interface {
	// Setup runs first-time account creation: generates the mnemonic,
	// derives the master key and verifier, generates the keypair, wraps
	// the private key, creates the personal vault with a freshly wrapped
	// vault key, and persists everything via the server adapter. On
	// success the keyring is populated and the session started.
	//
	// The returned mnemonic is shown to the user exactly once and exists
	// nowhere else. Once registration has committed, the mnemonic is
	// returned even when a later setup step fails alongside
	// ErrSetupIncomplete: the remaining steps can be retried, a lost
	// phrase cannot.
	Setup(ctx context.Context, login string) (mnemonic string, err error)

	// Unlock re-derives the master key from the supplied passphrase,
	// authenticates with the derived verifier, unwraps the private key,
	// and populates the keyring. A wrong passphrase surfaces as
	// ErrDecryptionFailed; an account without complete key material as
	// ErrKeyMaterialMissing.
	Unlock(ctx context.Context, login, passphrase string) error

	// Lock discards every cached key and ends the session.
	Lock()
}

// VaultKeyService resolves the usable vault key (OVK) for a target vault
// from the current session's master key.
type VaultKeyService interface {
	// Resolve returns the raw vault key for vaultID, unwrapping it if this
	// is the first resolution of the session and serving it from the
	// keyring afterwards. The unwrap path depends on the resolved access
	// variant: owners unwrap symmetrically under the master key, members
	// asymmetrically under their private key.
	Resolve(ctx context.Context, vaultID string) ([]byte, error)

	// CreateVault generates a fresh vault key for a new vault, wraps it
	// for the creating user, and persists vault and key record.
	CreateVault(ctx context.Context, name string, vaultType models.VaultType, orgID string) (models.Vault, error)
}

// ItemService encrypts, decrypts, and manages vault items. Every operation
// requiring a vault key resolves it through [VaultKeyService] first.
type ItemService interface {
	// Create encrypts the populated fields under a fresh item key, wraps
	// the item key under the vault key, persists the resulting item, and
	// returns it. The plaintext item key is discarded before return.
	Create(ctx context.Context, vaultID string, meta models.VaultItem, fields models.ItemFields) (models.VaultItem, error)

	// Decrypt unwraps the item key and decrypts every present ciphertext
	// field. A failure on one field is reported in the returned slice and
	// does not abort the siblings; a failure to unwrap the item key itself
	// aborts with ErrDecryptionFailed.
	Decrypt(ctx context.Context, item models.VaultItem) (models.ItemFields, []*FieldDecryptionError, error)

	// Get fetches a single item, preferring the local cache and falling
	// back to the server.
	Get(ctx context.Context, itemID string) (models.VaultItem, error)

	// List fetches all items of a vault from the server, refreshing the
	// local cache; on a transport failure it serves the cache instead.
	List(ctx context.Context, vaultID string) ([]models.VaultItem, error)

	// RotateItemKey re-encrypts every field of an item under a brand-new
	// item key and re-wraps it. Used after suspected compromise. Fails if
	// any field cannot be decrypted: rotation must not silently drop data.
	RotateItemKey(ctx context.Context, item models.VaultItem) (models.VaultItem, error)
}

// ShareService manages wrapped vault key copies for organization members.
type ShareService interface {
	// ShareVault wraps the vault key under the invitee's public key and
	// persists the member copy. Only a user who can already resolve the
	// vault key can share it.
	ShareVault(ctx context.Context, vaultID, memberID string) error

	// RevokeAccess deletes the member's wrapped vault key copy. The vault
	// key itself is unchanged; the member simply has nothing left to
	// unwrap.
	RevokeAccess(ctx context.Context, vaultID, memberID string) error
}
