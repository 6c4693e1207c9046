// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The passvault Authors

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mirovsky/passvault/internal/adapter"
	"github.com/mirovsky/passvault/internal/crypto"
	"github.com/mirovsky/passvault/internal/keyring"
	"github.com/mirovsky/passvault/internal/logger"
	"github.com/mirovsky/passvault/models"
)

type vaultKeyService struct {
	adapter  adapter.ServerAdapter
	keychain crypto.KeyChainService
	wrapper  crypto.KeyWrapService
	ring     *keyring.Keyring
}

func NewVaultKeyService(
	serverAdapter adapter.ServerAdapter,
	keychain crypto.KeyChainService,
	wrapper crypto.KeyWrapService,
	ring *keyring.Keyring,
) VaultKeyService {
	return &vaultKeyService{
		adapter:  serverAdapter,
		keychain: keychain,
		wrapper:  wrapper,
		ring:     ring,
	}
}

// Resolve walks the vault key state machine: cached key, or unwrap via the
// access variant (owner: symmetric under the master key; member: asymmetric
// under the private key), caching the result for the rest of the session.
func (v *vaultKeyService) Resolve(ctx context.Context, vaultID string) ([]byte, error) {
	log := logger.FromContext(ctx)

	if vaultID == "" {
		return nil, fmt.Errorf("%w: vault id is required", ErrInvalidInput)
	}

	if ovk, ok := v.ring.VaultKey(vaultID); ok {
		return ovk, nil
	}

	if !v.ring.Unlocked() {
		return nil, ErrVaultLocked
	}

	vault, err := v.adapter.GetVault(ctx, vaultID)
	if err != nil {
		if errors.Is(err, adapter.ErrNotFound) {
			return nil, fmt.Errorf("vault %s: %w", vaultID, ErrVaultNotFound)
		}
		return nil, fmt.Errorf("get vault: %w", err)
	}

	access, rec, err := v.resolveAccess(ctx, vault)
	if err != nil {
		return nil, err
	}

	ovk, err := v.unwrap(access, rec)
	if err != nil {
		log.Warn().
			Str("func", "vaultKeyService.Resolve").
			Str("vault_id", vaultID).
			Stringer("access", access).
			Msg("vault key unwrap failed")
		return nil, err
	}

	v.ring.PutVaultKey(vaultID, ovk)

	log.Debug().
		Str("func", "vaultKeyService.Resolve").
		Str("vault_id", vaultID).
		Stringer("access", access).
		Msg("vault key resolved")

	return ovk, nil
}

// resolveAccess classifies the caller's relationship to the vault and
// fetches their wrapped key record. The classification happens once here so
// the unwrap path never re-inspects vault or membership shapes.
func (v *vaultKeyService) resolveAccess(ctx context.Context, vault models.Vault) (models.VaultAccess, models.VaultKeyRecord, error) {
	none := models.VaultAccess{Level: models.AccessNone}

	rec, err := v.adapter.GetVaultKey(ctx, vault.VaultID)
	if err == nil {
		if vault.OwnerID == v.ring.UserID() || rec.Scheme == models.WrapSchemeSymmetric {
			return models.VaultAccess{Level: models.AccessOwner}, rec, nil
		}
		membership, mErr := v.adapter.GetMembership(ctx, vault.VaultID)
		if mErr != nil {
			if errors.Is(mErr, adapter.ErrNotFound) {
				return none, models.VaultKeyRecord{}, fmt.Errorf("vault %s: %w", vault.VaultID, ErrMembershipNotFound)
			}
			return none, models.VaultKeyRecord{}, fmt.Errorf("get membership: %w", mErr)
		}
		return models.VaultAccess{Level: models.AccessMember, Role: membership.Role}, rec, nil
	}

	if !errors.Is(err, adapter.ErrNotFound) {
		return none, models.VaultKeyRecord{}, fmt.Errorf("get vault key: %w", err)
	}

	// No wrapped copy for this user. For an organization vault the
	// distinction matters: a member without a key record is a revoked or
	// never-invited member, not a missing vault.
	if vault.Type == models.VaultTypeOrganization {
		if _, mErr := v.adapter.GetMembership(ctx, vault.VaultID); mErr != nil {
			if errors.Is(mErr, adapter.ErrNotFound) {
				return none, models.VaultKeyRecord{}, fmt.Errorf("vault %s: %w", vault.VaultID, ErrMembershipNotFound)
			}
			return none, models.VaultKeyRecord{}, fmt.Errorf("get membership: %w", mErr)
		}
		return none, models.VaultKeyRecord{}, fmt.Errorf("vault %s: member holds no wrapped key: %w", vault.VaultID, ErrMembershipNotFound)
	}

	return none, models.VaultKeyRecord{}, fmt.Errorf("vault %s: %w", vault.VaultID, ErrVaultNotFound)
}

func (v *vaultKeyService) unwrap(access models.VaultAccess, rec models.VaultKeyRecord) ([]byte, error) {
	switch access.Level {
	case models.AccessOwner:
		umk, ok := v.ring.MasterKey()
		if !ok {
			return nil, ErrVaultLocked
		}
		ovk, err := v.wrapper.UnwrapKey(rec.Wrapped, umk)
		if err != nil {
			return nil, ErrDecryptionFailed
		}
		return ovk, nil

	case models.AccessMember:
		priv, ok := v.ring.PrivateKey()
		if !ok {
			return nil, ErrVaultLocked
		}
		ovk, err := v.wrapper.UnwrapKeyWithPrivate(rec.Wrapped, priv)
		if err != nil {
			return nil, ErrDecryptionFailed
		}
		return ovk, nil

	default:
		return nil, ErrVaultNotFound
	}
}

// CreateVault generates a fresh vault key, wraps it for the creating user,
// and persists vault metadata and owner key record.
func (v *vaultKeyService) CreateVault(ctx context.Context, name string, vaultType models.VaultType, orgID string) (models.Vault, error) {
	log := logger.FromContext(ctx)

	if name == "" {
		return models.Vault{}, fmt.Errorf("%w: vault name is required", ErrInvalidInput)
	}
	if vaultType == models.VaultTypeOrganization && orgID == "" {
		return models.Vault{}, fmt.Errorf("%w: organization vault requires an org id", ErrInvalidInput)
	}

	umk, ok := v.ring.MasterKey()
	if !ok {
		return models.Vault{}, ErrVaultLocked
	}

	ovk, err := v.keychain.GenerateVaultKey()
	if err != nil {
		return models.Vault{}, fmt.Errorf("generate vault key: %w", err)
	}

	wrapped, err := v.wrapper.WrapKey(ovk, umk)
	if err != nil {
		crypto.Zero(ovk)
		return models.Vault{}, fmt.Errorf("wrap vault key: %w", err)
	}

	now := time.Now()
	vault := models.Vault{
		VaultID:   uuid.NewString(),
		Name:      name,
		Type:      vaultType,
		OwnerID:   v.ring.UserID(),
		OrgID:     orgID,
		CreatedAt: now,
	}

	if err = v.adapter.CreateVault(ctx, vault); err != nil {
		crypto.Zero(ovk)
		return models.Vault{}, fmt.Errorf("create vault: %w", err)
	}

	rec := models.VaultKeyRecord{
		VaultID:   vault.VaultID,
		UserID:    vault.OwnerID,
		Scheme:    models.WrapSchemeSymmetric,
		Wrapped:   wrapped,
		CreatedAt: now,
	}
	if err = v.adapter.SaveVaultKey(ctx, rec); err != nil {
		crypto.Zero(ovk)
		return models.Vault{}, fmt.Errorf("save vault key record: %w", err)
	}

	v.ring.PutVaultKey(vault.VaultID, ovk)

	log.Info().
		Str("func", "vaultKeyService.CreateVault").
		Str("vault_id", vault.VaultID).
		Str("type", string(vaultType)).
		Msg("vault created")

	return vault, nil
}
