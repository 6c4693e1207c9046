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
	"github.com/mirovsky/passvault/internal/logger"
	"github.com/mirovsky/passvault/internal/store"
	"github.com/mirovsky/passvault/internal/validators"
	"github.com/mirovsky/passvault/models"
)

type itemService struct {
	adapter    adapter.ServerAdapter
	keychain   crypto.KeyChainService
	wrapper    crypto.KeyWrapService
	vaultKeys  VaultKeyService
	localStore store.LocalVaultRepository
	validator  validators.Validator
}

func NewItemService(
	serverAdapter adapter.ServerAdapter,
	keychain crypto.KeyChainService,
	wrapper crypto.KeyWrapService,
	vaultKeys VaultKeyService,
	localStore store.LocalVaultRepository,
	validator validators.Validator,
) ItemService {
	return &itemService{
		adapter:    serverAdapter,
		keychain:   keychain,
		wrapper:    wrapper,
		vaultKeys:  vaultKeys,
		localStore: localStore,
		validator:  validator,
	}
}

// Create encrypts the populated fields under a fresh item key, each field
// with its own nonce, and wraps the item key under the vault key. The raw
// item key lives only inside this call.
func (s *itemService) Create(ctx context.Context, vaultID string, meta models.VaultItem, fields models.ItemFields) (models.VaultItem, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, fields); err != nil {
		return models.VaultItem{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	ovk, err := s.vaultKeys.Resolve(ctx, vaultID)
	if err != nil {
		return models.VaultItem{}, err
	}

	itemKey, err := s.keychain.GenerateItemKey()
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("generate item key: %w", err)
	}
	defer crypto.Zero(itemKey)

	now := time.Now()
	item := meta
	item.ItemID = uuid.NewString()
	item.VaultID = vaultID
	item.Version = 1
	item.CreatedAt = now
	item.UpdatedAt = now

	for name, value := range fields {
		blob, encErr := s.wrapper.EncryptField(value, itemKey)
		if encErr != nil {
			return models.VaultItem{}, fmt.Errorf("encrypt field %s: %w", name, encErr)
		}
		item.SetCiphertext(name, blob)
	}

	item.ItemKeyWrapped, err = s.wrapper.WrapKey(itemKey, ovk)
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("wrap item key: %w", err)
	}

	if err = s.validator.Validate(ctx, item); err != nil {
		return models.VaultItem{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err = s.adapter.UploadItem(ctx, item); err != nil {
		return models.VaultItem{}, fmt.Errorf("upload item: %w", err)
	}

	s.cacheItem(ctx, item)

	log.Info().
		Str("func", "itemService.Create").
		Str("item_id", item.ItemID).
		Str("vault_id", vaultID).
		Msg("item created")

	return item, nil
}

// Decrypt unwraps the item key once and decrypts every present ciphertext
// field. Per-field failures are collected, not fatal: the caller gets every
// field that still decrypts plus an error per field that does not.
func (s *itemService) Decrypt(ctx context.Context, item models.VaultItem) (models.ItemFields, []*FieldDecryptionError, error) {
	ovk, err := s.vaultKeys.Resolve(ctx, item.VaultID)
	if err != nil {
		return nil, nil, err
	}

	itemKey, err := s.wrapper.UnwrapKey(item.ItemKeyWrapped, ovk)
	if err != nil {
		// Without the item key nothing is recoverable.
		return nil, nil, ErrDecryptionFailed
	}
	defer crypto.Zero(itemKey)

	cts := item.CiphertextFields()
	fields := make(models.ItemFields, len(cts))
	var fieldErrs []*FieldDecryptionError

	// Stable field order so failures are reported deterministically.
	for _, name := range models.FieldNames {
		blob, ok := cts[name]
		if !ok {
			continue
		}
		value, decErr := s.wrapper.DecryptField(blob, itemKey)
		if decErr != nil {
			fieldErrs = append(fieldErrs, &FieldDecryptionError{Field: name, Err: decErr})
			continue
		}
		fields[name] = value
	}

	return fields, fieldErrs, nil
}

// Get serves an item from the local cache when possible and falls back to
// the server, refreshing the cache on the way back.
func (s *itemService) Get(ctx context.Context, itemID string) (models.VaultItem, error) {
	log := logger.FromContext(ctx)

	if itemID == "" {
		return models.VaultItem{}, fmt.Errorf("%w: item id is required", ErrInvalidInput)
	}

	item, err := s.localStore.GetItem(ctx, itemID)
	if err == nil {
		return item, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Warn().Err(err).
			Str("func", "itemService.Get").
			Str("item_id", itemID).
			Msg("local cache read failed, falling back to server")
	}

	item, err = s.adapter.GetItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, adapter.ErrNotFound) {
			return models.VaultItem{}, fmt.Errorf("item %s: %w", itemID, ErrItemNotFound)
		}
		return models.VaultItem{}, fmt.Errorf("get item: %w", err)
	}

	s.cacheItem(ctx, item)

	return item, nil
}

// List fetches a vault's items from the server and refreshes the local
// cache. When the server is unreachable, the cache serves as a stale but
// usable fallback.
func (s *itemService) List(ctx context.Context, vaultID string) ([]models.VaultItem, error) {
	log := logger.FromContext(ctx)

	if vaultID == "" {
		return nil, fmt.Errorf("%w: vault id is required", ErrInvalidInput)
	}

	items, err := s.adapter.ListItems(ctx, vaultID)
	if err != nil {
		cached, cacheErr := s.localStore.ListItems(ctx, vaultID)
		if cacheErr != nil {
			return nil, fmt.Errorf("list items: %w", err)
		}
		log.Warn().Err(err).
			Str("func", "itemService.List").
			Str("vault_id", vaultID).
			Msg("server unreachable, serving cached items")
		return cached, nil
	}

	for _, item := range items {
		s.cacheItem(ctx, item)
	}

	return items, nil
}

// RotateItemKey re-encrypts every field of an item under a brand-new item
// key. All-or-nothing: if any field fails to decrypt, rotation aborts so no
// data is silently dropped.
func (s *itemService) RotateItemKey(ctx context.Context, item models.VaultItem) (models.VaultItem, error) {
	log := logger.FromContext(ctx)

	fields, fieldErrs, err := s.Decrypt(ctx, item)
	if err != nil {
		return models.VaultItem{}, err
	}
	if len(fieldErrs) > 0 {
		return models.VaultItem{}, fmt.Errorf("%w: %d field(s) unrecoverable, rotation aborted", ErrDecryptionFailed, len(fieldErrs))
	}

	ovk, err := s.vaultKeys.Resolve(ctx, item.VaultID)
	if err != nil {
		return models.VaultItem{}, err
	}

	newKey, err := s.keychain.GenerateItemKey()
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("generate item key: %w", err)
	}
	defer crypto.Zero(newKey)

	rotated := item
	for name, value := range fields {
		blob, encErr := s.wrapper.EncryptField(value, newKey)
		if encErr != nil {
			return models.VaultItem{}, fmt.Errorf("encrypt field %s: %w", name, encErr)
		}
		rotated.SetCiphertext(name, blob)
	}

	rotated.ItemKeyWrapped, err = s.wrapper.WrapKey(newKey, ovk)
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("wrap item key: %w", err)
	}
	rotated.Version = item.Version + 1
	rotated.UpdatedAt = time.Now()

	if err = s.adapter.UploadItem(ctx, rotated); err != nil {
		return models.VaultItem{}, fmt.Errorf("upload rotated item: %w", err)
	}

	s.cacheItem(ctx, rotated)

	log.Info().
		Str("func", "itemService.RotateItemKey").
		Str("item_id", rotated.ItemID).
		Int64("version", rotated.Version).
		Msg("item key rotated")

	return rotated, nil
}

// cacheItem refreshes the local copy. The cache is best-effort: a write
// failure is logged and the operation carries on.
func (s *itemService) cacheItem(ctx context.Context, item models.VaultItem) {
	if err := s.localStore.SaveItem(ctx, item); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "itemService.cacheItem").
			Str("item_id", item.ItemID).
			Msg("failed to refresh local item cache")
	}
}
