// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The passvault Authors

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
)

// keyWrapService is the private implementation of [KeyWrapService].
type keyWrapService struct{}

// NewKeyWrapService constructs a [KeyWrapService] using AES-256-GCM for
// symmetric wrapping and RSA-OAEP (SHA-256) for asymmetric wrapping.
func NewKeyWrapService() KeyWrapService {
	return &keyWrapService{}
}

// WrapKey implements [KeyWrapService]. It encrypts raw with wrappingKey
// using AES-256-GCM. A random 12-byte nonce is prepended to the ciphertext
// so that the unwrap side can locate it: blob = nonce ‖ ciphertext, base64.
// Returns an error if the wrapping key has the wrong length or the random
// nonce read fails.
func (w *keyWrapService) WrapKey(raw, wrappingKey []byte) (string, error) {
	return sealBlob(raw, wrappingKey)
}

// UnwrapKey implements [KeyWrapService]. It unwraps a blob produced by
// [keyWrapService.WrapKey]. Returns ErrDecryptionFailed if the
// authentication tag does not verify; a wrong wrapping key and a corrupted
// blob are not distinguished.
func (w *keyWrapService) UnwrapKey(blob string, wrappingKey []byte) ([]byte, error) {
	return openBlob(blob, wrappingKey)
}

// WrapKeyForRecipient implements [KeyWrapService]. It encrypts raw under
// the recipient's public key with RSA-OAEP (SHA-256) and returns the
// base64-encoded ciphertext. OAEP is randomized, so wrapping the same key
// twice never yields the same blob.
func (w *keyWrapService) WrapKeyForRecipient(raw []byte, recipient *rsa.PublicKey) (string, error) {
	if recipient == nil {
		return "", fmt.Errorf("%w: nil recipient public key", ErrInvalidInput)
	}

	ct, err := rsa.EncryptOAEP(sha256.New(), rand.Reader, recipient, raw, nil)
	if err != nil {
		return "", fmt.Errorf("rsa encrypt: %w", err)
	}
	return base64.StdEncoding.EncodeToString(ct), nil
}

// UnwrapKeyWithPrivate implements [KeyWrapService]. It decrypts a blob
// produced by [keyWrapService.WrapKeyForRecipient] with the recipient's
// private key. Returns ErrDecryptionFailed on any RSA decryption error so
// the failure stays cause-opaque, matching the symmetric path.
func (w *keyWrapService) UnwrapKeyWithPrivate(blob string, recipient *rsa.PrivateKey) ([]byte, error) {
	if recipient == nil {
		return nil, fmt.Errorf("%w: nil recipient private key", ErrInvalidInput)
	}

	ct, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return nil, fmt.Errorf("%w: decode base64: %v", ErrInvalidInput, err)
	}

	raw, err := rsa.DecryptOAEP(sha256.New(), rand.Reader, recipient, ct, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return raw, nil
}

// EncryptField implements [KeyWrapService]. Each field is sealed with its
// own fresh nonce so sibling fields of an item can be updated independently.
func (w *keyWrapService) EncryptField(plaintext string, key []byte) (string, error) {
	return sealBlob([]byte(plaintext), key)
}

// DecryptField implements [KeyWrapService].
func (w *keyWrapService) DecryptField(blob string, key []byte) (string, error) {
	pt, err := openBlob(blob, key)
	if err != nil {
		return "", err
	}
	return string(pt), nil
}

// sealBlob AEAD-encrypts plaintext with key using AES-256-GCM and returns
// base64(nonce ‖ ciphertext). The nonce is regenerated on every call.
func sealBlob(plaintext, key []byte) (string, error) {
	if len(key) != KeySize {
		return "", fmt.Errorf("%w: key length %d, want %d", ErrInvalidInput, len(key), KeySize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("create gcm: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	// Prepend the nonce so openBlob can split it out.
	ct := gcm.Seal(nil, nonce, plaintext, nil)
	return base64.StdEncoding.EncodeToString(append(nonce, ct...)), nil
}

// openBlob reverses sealBlob. All failure modes past base64 decoding
// collapse into ErrDecryptionFailed: an error here almost always means the
// caller used the wrong key, and the distinction between that and a
// corrupted blob must not leak.
func openBlob(blob string, key []byte) ([]byte, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: key length %d, want %d", ErrInvalidInput, len(key), KeySize)
	}

	data, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return nil, fmt.Errorf("%w: decode base64: %v", ErrInvalidInput, err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	nonceSize := gcm.NonceSize()
	if len(data) < nonceSize {
		return nil, ErrDecryptionFailed
	}

	nonce, ct := data[:nonceSize], data[nonceSize:]
	pt, err := gcm.Open(nil, nonce, ct, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return pt, nil
}
