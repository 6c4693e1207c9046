// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The passvault Authors

// Package adapter provides the transport layer between the client core and
// the passvault server.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Everything crossing this boundary is public-by-design or wrapped: salts,
// verifiers, PEM public keys, and base64 ciphertext blobs. No plaintext
// secret and no raw key ever enters a request body.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/mirovsky/passvault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the passvault
// server. Implementations are responsible for serialisation, bearer token
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests. Called automatically after a successful
	// Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or
	// an empty string if no token has been set yet.
	Token() string

	// Register persists a freshly generated key-material record for a new
	// user. On success it stores the returned bearer token via SetToken
	// and returns the record with the server-assigned user ID.
	Register(ctx context.Context, km models.UserKeyMaterial) (models.UserKeyMaterial, error)

	// RequestSalt fetches the base64 derivation salt stored for login
	// during setup. The salt is public, so this call needs no
	// authentication; the client needs it to derive the verifier before
	// Login can succeed.
	RequestSalt(ctx context.Context, login string) (string, error)

	// Login authenticates with the derived verifier. The server compares
	// the verifier against its stored copy without ever learning the
	// master key. On success the bearer token is stored via SetToken and
	// the full key-material record (wrapped private key included) is
	// returned.
	Login(ctx context.Context, login, verifier string) (models.UserKeyMaterial, error)

	// GetMemberPublicKey fetches another user's PEM public key, used to
	// wrap a vault key for them when sharing.
	GetMemberPublicKey(ctx context.Context, userID string) (string, error)

	// CreateVault persists a new vault metadata record.
	CreateVault(ctx context.Context, vault models.Vault) error

	// GetVault fetches a vault metadata record. Returns ErrNotFound
	// (wrapped) if the vault does not exist.
	GetVault(ctx context.Context, vaultID string) (models.Vault, error)

	// GetVaultKey fetches the wrapped vault key record addressed to the
	// current user. Returns ErrNotFound (wrapped) if no record exists.
	GetVaultKey(ctx context.Context, vaultID string) (models.VaultKeyRecord, error)

	// SaveVaultKey persists a wrapped vault key record (owner copy at
	// vault creation, member copy at share time).
	SaveVaultKey(ctx context.Context, rec models.VaultKeyRecord) error

	// DeleteVaultKey removes the wrapped vault key record addressed to
	// userID, revoking that user's access to the vault.
	DeleteVaultKey(ctx context.Context, vaultID, userID string) error

	// GetMembership fetches the current user's membership record for an
	// organization vault. Returns ErrNotFound (wrapped) if the user is not
	// a member.
	GetMembership(ctx context.Context, vaultID string) (models.Membership, error)

	// UploadItem persists a vault item: cleartext metadata, wrapped item
	// key, and per-field ciphertext blobs.
	UploadItem(ctx context.Context, item models.VaultItem) error

	// GetItem fetches a single vault item by ID. Returns ErrNotFound
	// (wrapped) if the item does not exist.
	GetItem(ctx context.Context, itemID string) (models.VaultItem, error)

	// ListItems fetches all items of a vault.
	ListItems(ctx context.Context, vaultID string) ([]models.VaultItem, error)
}
