// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The passvault Authors

// Package keyring holds the session-scoped in-memory key cache: the user
// master key, the unwrapped private key, and every vault key resolved so
// far. The cache is an explicit object passed to the services that need
// it, never a package-level global, so a test can construct a fresh one
// and the session layer decides exactly when it dies.
//
// Invalidation is always total. When the session ends, every key goes at
// once; stale unlocked keys must not survive past session end.
package keyring

import (
	"crypto/rsa"
	"sync"

	"github.com/mirovsky/passvault/internal/crypto"
)

// Keyring is the in-memory key cache for one unlocked session.
// The zero value is locked and empty; use [New].
type Keyring struct {
	mu sync.RWMutex

	userID     string
	umk        []byte
	privateKey *rsa.PrivateKey
	vaultKeys  map[string][]byte
}

// New returns an empty, locked Keyring.
func New() *Keyring {
	return &Keyring{vaultKeys: make(map[string][]byte)}
}

// SetUserID records whose keys this session holds.
func (k *Keyring) SetUserID(userID string) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.userID = userID
}

// UserID returns the identity bound to the current session, or an empty
// string when locked.
func (k *Keyring) UserID() string {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.userID
}

// SetMasterKey stores the derived UMK for the current session.
func (k *Keyring) SetMasterKey(umk []byte) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.umk = umk
}

// MasterKey returns the cached UMK, or false when the keyring is locked.
func (k *Keyring) MasterKey() ([]byte, bool) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	if k.umk == nil {
		return nil, false
	}
	return k.umk, true
}

// SetPrivateKey stores the user's unwrapped private key.
func (k *Keyring) SetPrivateKey(priv *rsa.PrivateKey) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.privateKey = priv
}

// PrivateKey returns the cached private key, or false if it has not been
// unwrapped this session.
func (k *Keyring) PrivateKey() (*rsa.PrivateKey, bool) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	if k.privateKey == nil {
		return nil, false
	}
	return k.privateKey, true
}

// PutVaultKey caches a resolved vault key under its vault ID. Populated
// lazily on first successful resolution.
func (k *Keyring) PutVaultKey(vaultID string, ovk []byte) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.vaultKeys[vaultID] = ovk
}

// VaultKey returns the cached vault key for vaultID, or false if the vault
// has not been resolved this session.
func (k *Keyring) VaultKey(vaultID string) ([]byte, bool) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	ovk, ok := k.vaultKeys[vaultID]
	return ovk, ok
}

// Unlocked reports whether a master key is present.
func (k *Keyring) Unlocked() bool {
	_, ok := k.MasterKey()
	return ok
}

// Invalidate zeroizes and discards every cached key. Called on lock,
// logout, and session expiry. There is deliberately no way to drop a
// single key: invalidation is all-or-nothing.
//
// The private key is only dereferenced, not scrubbed: rsa.PrivateKey
// spreads its material across big.Int internals that Go gives no way to
// overwrite in place. Raw byte keys get the full zeroization.
func (k *Keyring) Invalidate() {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.userID = ""
	crypto.Zero(k.umk)
	k.umk = nil
	k.privateKey = nil
	for id, ovk := range k.vaultKeys {
		crypto.Zero(ovk)
		delete(k.vaultKeys, id)
	}
}
