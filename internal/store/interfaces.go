package store

import (
	"context"

	"github.com/mirovsky/passvault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/local_store_mock.go -package=mock

// LocalVaultRepository is the local read cache of encrypted vault items.
// Every stored value is either cleartext metadata or an opaque base64
// blob produced by the crypto layer; the repository can never decrypt
// anything it holds.
type LocalVaultRepository interface {
	// SaveItem inserts or replaces a cached item by its item ID.
	SaveItem(ctx context.Context, item models.VaultItem) error

	// GetItem returns the cached item, or ErrNotFound (wrapped) if it is
	// not cached.
	GetItem(ctx context.Context, itemID string) (models.VaultItem, error)

	// ListItems returns all cached items of a vault.
	ListItems(ctx context.Context, vaultID string) ([]models.VaultItem, error)

	// DeleteItem removes a cached item. Deleting an absent item is not an
	// error.
	DeleteItem(ctx context.Context, itemID string) error
}
