// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The passvault Authors

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mirovsky/passvault/internal/adapter"
	"github.com/mirovsky/passvault/internal/crypto"
	"github.com/mirovsky/passvault/internal/logger"
	"github.com/mirovsky/passvault/models"
)

type shareService struct {
	adapter   adapter.ServerAdapter
	wrapper   crypto.KeyWrapService
	keypairs  crypto.KeyPairService
	vaultKeys VaultKeyService
}

func NewShareService(
	serverAdapter adapter.ServerAdapter,
	wrapper crypto.KeyWrapService,
	keypairs crypto.KeyPairService,
	vaultKeys VaultKeyService,
) ShareService {
	return &shareService{
		adapter:   serverAdapter,
		wrapper:   wrapper,
		keypairs:  keypairs,
		vaultKeys: vaultKeys,
	}
}

// ShareVault gives memberID access by wrapping the vault key under their
// public key. The sharer must be able to resolve the vault key themselves;
// the raw key crosses no boundary, only the RSA-OAEP blob does.
func (s *shareService) ShareVault(ctx context.Context, vaultID, memberID string) error {
	log := logger.FromContext(ctx)

	if vaultID == "" || memberID == "" {
		return fmt.Errorf("%w: vault id and member id are required", ErrInvalidInput)
	}

	ovk, err := s.vaultKeys.Resolve(ctx, vaultID)
	if err != nil {
		return err
	}

	pemKey, err := s.adapter.GetMemberPublicKey(ctx, memberID)
	if err != nil {
		if errors.Is(err, adapter.ErrNotFound) {
			return fmt.Errorf("%w: member %s has no published public key", ErrKeyMaterialMissing, memberID)
		}
		return fmt.Errorf("get member public key: %w", err)
	}

	pub, err := s.keypairs.DecodePublicKey(pemKey)
	if err != nil {
		return fmt.Errorf("%w: member %s public key is malformed", ErrKeyMaterialMissing, memberID)
	}

	wrapped, err := s.wrapper.WrapKeyForRecipient(ovk, pub)
	if err != nil {
		return fmt.Errorf("wrap vault key for member: %w", err)
	}

	rec := models.VaultKeyRecord{
		VaultID:   vaultID,
		UserID:    memberID,
		Scheme:    models.WrapSchemeAsymmetric,
		Wrapped:   wrapped,
		CreatedAt: time.Now(),
	}
	if err = s.adapter.SaveVaultKey(ctx, rec); err != nil {
		return fmt.Errorf("save member vault key record: %w", err)
	}

	log.Info().
		Str("func", "shareService.ShareVault").
		Str("vault_id", vaultID).
		Str("member_id", memberID).
		Msg("vault shared with member")

	return nil
}

// RevokeAccess deletes the member's wrapped copy of the vault key. The key
// itself is untouched: without a wrapped copy there is nothing the revoked
// member can unwrap.
func (s *shareService) RevokeAccess(ctx context.Context, vaultID, memberID string) error {
	log := logger.FromContext(ctx)

	if vaultID == "" || memberID == "" {
		return fmt.Errorf("%w: vault id and member id are required", ErrInvalidInput)
	}

	if err := s.adapter.DeleteVaultKey(ctx, vaultID, memberID); err != nil {
		if errors.Is(err, adapter.ErrNotFound) {
			return fmt.Errorf("member %s on vault %s: %w", memberID, vaultID, ErrMembershipNotFound)
		}
		return fmt.Errorf("delete member vault key record: %w", err)
	}

	log.Info().
		Str("func", "shareService.RevokeAccess").
		Str("vault_id", vaultID).
		Str("member_id", memberID).
		Msg("member access revoked")

	return nil
}
