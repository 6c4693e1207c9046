// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The passvault Authors

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/argon2"
)

const (
	// SaltSize is the length of the master-key derivation salt in bytes.
	SaltSize = 32

	// KeySize is the length of every symmetric key in the hierarchy
	// (UMK, vault keys, item keys): 256 bits.
	KeySize = 32

	// mnemonicEntropyBits is the entropy fed into mnemonic generation.
	// 256 bits yields a 24-word phrase with checksum.
	mnemonicEntropyBits = 256
)

// verifierDomain separates the stored verifier from the master key itself.
// Hashing the UMK with this tag produces a value the server can compare at
// login without being able to reverse it into the key.
const verifierDomain = "passvault/verifier/v1"

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target (e.g. mobile vs. desktop).
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewKeyChainService constructs a [KeyChainService] with the Argon2id
// parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewKeyChainService() KeyChainService {
	return &keyChainService{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  KeySize,
	}
}

// NewKeyChainServiceWithParams constructs a [KeyChainService] with explicit
// Argon2id parameters, typically taken from configuration. Zero values fall
// back to the defaults of [NewKeyChainService].
func NewKeyChainServiceWithParams(time, memoryKiB uint32, threads uint8) KeyChainService {
	svc := NewKeyChainService().(*keyChainService)
	if time > 0 {
		svc.argonTime = time
	}
	if memoryKiB > 0 {
		svc.argonMemory = memoryKiB
	}
	if threads > 0 {
		svc.argonThreads = threads
	}
	return svc
}

// GenerateMnemonic implements [KeyChainService]. It draws 256 bits of
// entropy from the OS CSPRNG and encodes them as a 24-word BIP-39 phrase.
// Returns an error if the random read fails.
func (k *keyChainService) GenerateMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(mnemonicEntropyBits)
	if err != nil {
		return "", fmt.Errorf("generate mnemonic entropy: %w", err)
	}

	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("encode mnemonic: %w", err)
	}
	return mnemonic, nil
}

// GenerateSalt implements [KeyChainService]. It reads 32 random bytes from
// the OS CSPRNG and returns them as the derivation salt. Returns an error
// if the random read fails.
func (k *keyChainService) GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// GenerateVaultKey implements [KeyChainService]. It reads 32 random bytes
// from the OS CSPRNG and returns them as a new vault key. Returns an error
// if the random read fails.
func (k *keyChainService) GenerateVaultKey() ([]byte, error) {
	ovk := make([]byte, KeySize)
	if _, err := io.ReadFull(rand.Reader, ovk); err != nil {
		return nil, err
	}
	return ovk, nil
}

// GenerateItemKey implements [KeyChainService]. It reads 32 random bytes
// from the OS CSPRNG and returns them as a new per-item key. Returns an
// error if the random read fails.
func (k *keyChainService) GenerateItemKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, err
	}
	return key, nil
}

// DeriveMasterKey implements [KeyChainService]. It derives the 256-bit UMK
// from passphrase and salt using Argon2id with the parameters stored in the
// receiver, then computes the verifier as SHA-256(UMK ‖ salt ‖ domain tag).
// The UMK exists only in client memory and is never transmitted; the
// verifier is safe to store server-side.
//
// Argon2id (not a fast general-purpose hash) is a hard requirement here:
// a stolen salt+verifier pair must not be cheap to brute-force.
func (k *keyChainService) DeriveMasterKey(passphrase string, salt []byte) ([]byte, []byte, error) {
	if passphrase == "" {
		return nil, nil, fmt.Errorf("%w: empty passphrase", ErrInvalidInput)
	}
	if len(salt) != SaltSize {
		return nil, nil, fmt.Errorf("%w: salt length %d, want %d", ErrInvalidInput, len(salt), SaltSize)
	}

	umk := argon2.IDKey(
		[]byte(passphrase),
		salt,
		k.argonTime,
		k.argonMemory,
		k.argonThreads,
		k.argonKeyLen,
	)

	h := sha256.New()
	h.Write(umk)
	h.Write(salt)
	h.Write([]byte(verifierDomain)) // domain-separates the verifier from the UMK
	verifier := h.Sum(nil)

	return umk, verifier, nil
}
