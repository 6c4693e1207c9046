// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The passvault Authors

package service

import (
	"context"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/mirovsky/passvault/internal/adapter"
	"github.com/mirovsky/passvault/internal/crypto"
	"github.com/mirovsky/passvault/internal/keyring"
	"github.com/mirovsky/passvault/internal/logger"
	"github.com/mirovsky/passvault/internal/session"
	"github.com/mirovsky/passvault/models"
)

type setupService struct {
	adapter   adapter.ServerAdapter
	keychain  crypto.KeyChainService
	wrapper   crypto.KeyWrapService
	keypairs  crypto.KeyPairService
	vaultKeys VaultKeyService
	ring      *keyring.Keyring
	sessions  *session.Manager
}

func NewSetupService(
	serverAdapter adapter.ServerAdapter,
	keychain crypto.KeyChainService,
	wrapper crypto.KeyWrapService,
	keypairs crypto.KeyPairService,
	vaultKeys VaultKeyService,
	ring *keyring.Keyring,
	sessions *session.Manager,
) SetupService {
	return &setupService{
		adapter:   serverAdapter,
		keychain:  keychain,
		wrapper:   wrapper,
		keypairs:  keypairs,
		vaultKeys: vaultKeys,
		ring:      ring,
		sessions:  sessions,
	}
}

// Setup runs first-time account creation. The mnemonic is generated here,
// returned once, and never persisted anywhere in any form.
func (s *setupService) Setup(ctx context.Context, login string) (string, error) {
	log := logger.FromContext(ctx)

	if login == "" {
		return "", fmt.Errorf("%w: login is required", ErrInvalidInput)
	}

	mnemonic, err := s.keychain.GenerateMnemonic()
	if err != nil {
		return "", fmt.Errorf("generate mnemonic: %w", err)
	}

	salt, err := s.keychain.GenerateSalt()
	if err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	umk, verifier, err := s.keychain.DeriveMasterKey(mnemonic, salt)
	if err != nil {
		return "", fmt.Errorf("derive master key: %w", err)
	}

	priv, err := s.keypairs.GenerateKeyPair()
	if err != nil {
		crypto.Zero(umk)
		return "", fmt.Errorf("generate keypair: %w", err)
	}

	pubPEM, err := s.keypairs.EncodePublicKey(&priv.PublicKey)
	if err != nil {
		crypto.Zero(umk)
		return "", fmt.Errorf("encode public key: %w", err)
	}

	privDER, err := s.keypairs.MarshalPrivateKey(priv)
	if err != nil {
		crypto.Zero(umk)
		return "", fmt.Errorf("marshal private key: %w", err)
	}

	wrappedPriv, err := s.wrapper.WrapKey(privDER, umk)
	crypto.Zero(privDER)
	if err != nil {
		crypto.Zero(umk)
		return "", fmt.Errorf("wrap private key: %w", err)
	}

	km := models.UserKeyMaterial{
		Login:             login,
		UMKSalt:           base64.StdEncoding.EncodeToString(salt),
		Verifier:          base64.StdEncoding.EncodeToString(verifier),
		PublicKey:         pubPEM,
		WrappedPrivateKey: wrappedPriv,
	}

	km, err = s.adapter.Register(ctx, km)
	if err != nil {
		crypto.Zero(umk)
		return "", fmt.Errorf("%w: %v", ErrSetupIncomplete, err)
	}

	s.ring.SetUserID(km.UserID)
	s.ring.SetMasterKey(umk)
	s.ring.SetPrivateKey(priv)
	s.sessions.Start()
	if token := s.adapter.Token(); token != "" {
		if adoptErr := s.sessions.AdoptToken(token); adoptErr != nil {
			log.Warn().Err(adoptErr).
				Str("func", "setupService.Setup").
				Msg("could not clamp session to token expiry")
		}
	}

	// The personal vault must exist before the first item can be stored.
	// At this point the account is already registered, so the mnemonic is
	// returned even on failure: it is the only copy in existence, and a
	// missing vault can be created later while a lost phrase cannot.
	if _, err = s.vaultKeys.CreateVault(ctx, "Personal", models.VaultTypePersonal, ""); err != nil {
		log.Err(err).
			Str("func", "setupService.Setup").
			Str("user_id", km.UserID).
			Msg("personal vault creation failed after registration")
		return mnemonic, fmt.Errorf("%w: create personal vault: %v", ErrSetupIncomplete, err)
	}

	log.Info().
		Str("func", "setupService.Setup").
		Str("user_id", km.UserID).
		Msg("first-time setup completed")

	return mnemonic, nil
}

// Unlock re-derives the master key, proves knowledge of it to the server via
// the verifier, and unwraps the private key. The passphrase itself never
// leaves this function.
func (s *setupService) Unlock(ctx context.Context, login, passphrase string) error {
	log := logger.FromContext(ctx)

	if login == "" || passphrase == "" {
		return fmt.Errorf("%w: login and passphrase are required", ErrInvalidInput)
	}

	saltB64, err := s.adapter.RequestSalt(ctx, login)
	if err != nil {
		if errors.Is(err, adapter.ErrNotFound) {
			return fmt.Errorf("%w: no derivation salt stored for user", ErrKeyMaterialMissing)
		}
		return fmt.Errorf("request salt: %w", err)
	}

	salt, err := base64.StdEncoding.DecodeString(saltB64)
	if err != nil {
		return fmt.Errorf("%w: stored salt is not valid base64", ErrKeyMaterialMissing)
	}

	umk, verifier, err := s.keychain.DeriveMasterKey(passphrase, salt)
	if err != nil {
		if errors.Is(err, crypto.ErrInvalidInput) {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return fmt.Errorf("derive master key: %w", err)
	}

	km, err := s.adapter.Login(ctx, login, base64.StdEncoding.EncodeToString(verifier))
	if err != nil {
		crypto.Zero(umk)
		switch {
		case errors.Is(err, adapter.ErrUnauthorized):
			// The server rejected the verifier: wrong passphrase, reported
			// without distinguishing it from any other decryption failure.
			return ErrDecryptionFailed
		case errors.Is(err, adapter.ErrNotFound):
			return fmt.Errorf("%w: no key material stored for user", ErrKeyMaterialMissing)
		default:
			return fmt.Errorf("login: %w", err)
		}
	}

	if !km.Complete() {
		crypto.Zero(umk)
		return fmt.Errorf("%w: server record is incomplete", ErrKeyMaterialMissing)
	}

	// Double-check locally: the derived verifier must match the stored one
	// bit for bit before any cached key material is trusted.
	storedVerifier, err := base64.StdEncoding.DecodeString(km.Verifier)
	if err != nil || subtle.ConstantTimeCompare(verifier, storedVerifier) != 1 {
		crypto.Zero(umk)
		return ErrDecryptionFailed
	}

	privDER, err := s.wrapper.UnwrapKey(km.WrappedPrivateKey, umk)
	if err != nil {
		crypto.Zero(umk)
		return ErrDecryptionFailed
	}

	priv, err := s.keypairs.ParsePrivateKey(privDER)
	crypto.Zero(privDER)
	if err != nil {
		crypto.Zero(umk)
		return fmt.Errorf("%w: stored private key is unparseable", ErrKeyMaterialMissing)
	}

	s.ring.SetUserID(km.UserID)
	s.ring.SetMasterKey(umk)
	s.ring.SetPrivateKey(priv)
	s.sessions.Start()
	if token := s.adapter.Token(); token != "" {
		if adoptErr := s.sessions.AdoptToken(token); adoptErr != nil {
			log.Warn().Err(adoptErr).
				Str("func", "setupService.Unlock").
				Msg("could not clamp session to token expiry")
		}
	}

	log.Info().
		Str("func", "setupService.Unlock").
		Str("user_id", km.UserID).
		Msg("session unlocked")

	return nil
}

// Lock ends the session and invalidates every cached key at once.
func (s *setupService) Lock() {
	s.sessions.Expire()
	s.ring.Invalidate()
}
