package crypto

import "crypto/rsa"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyChainService owns key generation and master-key derivation in the
// zero-knowledge scheme. It knows nothing about the network, storage, or
// users; its single job is producing and deriving keys.
//
// Hierarchy:
//
//	mnemonic, salt = GenerateMnemonic() + GenerateSalt()
//	UMK, verifier  = DeriveMasterKey(mnemonic, salt)
//	OVK            = GenerateVaultKey()      (one per vault)
//	item key       = GenerateItemKey()       (one per item)
type KeyChainService interface {
	// GenerateMnemonic produces a random 24-word passphrase carrying 256
	// bits of CSPRNG entropy plus a checksum. The phrase is shown to the
	// user exactly once and never stored or transmitted.
	GenerateMnemonic() (string, error)

	// GenerateSalt generates the random 32-byte derivation salt. The salt
	// is not a secret; it is stored server-side in cleartext so the same
	// passphrase derives different keys for different users.
	GenerateSalt() ([]byte, error)

	// GenerateVaultKey generates a random 256-bit vault key (OVK). The raw
	// key never leaves client memory; only wrapped copies are persisted.
	GenerateVaultKey() ([]byte, error)

	// GenerateItemKey generates a random 256-bit per-item key, wrapped
	// under the vault key before persistence.
	GenerateItemKey() ([]byte, error)

	// DeriveMasterKey derives the 256-bit user master key (UMK) and the
	// one-way verifier from the passphrase and salt using Argon2id.
	// Derivation is deterministic: identical inputs always yield
	// bit-identical outputs. Returns ErrInvalidInput for an empty
	// passphrase or a salt that is not exactly 32 bytes.
	DeriveMasterKey(passphrase string, salt []byte) (umk, verifier []byte, err error)
}

// KeyWrapService protects one key's raw bytes under another key, and
// encrypts individual item fields. All symmetric blobs share one layout:
// base64(nonce + ciphertext), AES-256-GCM, fresh random nonce per call.
type KeyWrapService interface {
	// WrapKey AEAD-encrypts raw under wrappingKey and returns the base64
	// blob. A fresh nonce is generated on every call; the same nonce is
	// never reused for a given key.
	WrapKey(raw, wrappingKey []byte) (string, error)

	// UnwrapKey is the inverse of WrapKey. Returns ErrDecryptionFailed if
	// the authentication tag does not verify, without distinguishing a
	// wrong key from a corrupted blob.
	UnwrapKey(blob string, wrappingKey []byte) ([]byte, error)

	// WrapKeyForRecipient encrypts raw under the recipient's public key
	// with RSA-OAEP. Used exclusively for sharing a vault key with a user
	// who does not hold the wrapper's master key.
	WrapKeyForRecipient(raw []byte, recipient *rsa.PublicKey) (string, error)

	// UnwrapKeyWithPrivate is the inverse of WrapKeyForRecipient. The
	// recipient's private key must already be unwrapped in memory.
	UnwrapKeyWithPrivate(blob string, recipient *rsa.PrivateKey) ([]byte, error)

	// EncryptField AEAD-encrypts a single plaintext field value under the
	// item key with its own fresh nonce. Fields are always encrypted
	// independently so one field can later be rewritten without touching
	// its siblings.
	EncryptField(plaintext string, key []byte) (string, error)

	// DecryptField is the inverse of EncryptField. Returns
	// ErrDecryptionFailed on tag verification failure.
	DecryptField(blob string, key []byte) (string, error)
}

// KeyPairService generates and encodes the per-user RSA keypair. The
// public key is stored as cleartext PEM; the private key is marshalled to
// PKCS#8 and wrapped under the user's master key before it ever leaves
// memory.
type KeyPairService interface {
	// GenerateKeyPair generates a fresh RSA-2048 keypair from the OS
	// CSPRNG.
	GenerateKeyPair() (*rsa.PrivateKey, error)

	// EncodePublicKey renders the public key as a PEM block.
	EncodePublicKey(pub *rsa.PublicKey) (string, error)

	// DecodePublicKey parses a PEM-encoded public key. Returns
	// ErrInvalidInput if the PEM block is malformed or not an RSA key.
	DecodePublicKey(pemData string) (*rsa.PublicKey, error)

	// MarshalPrivateKey renders the private key as PKCS#8 DER bytes,
	// ready to be wrapped with [KeyWrapService.WrapKey].
	MarshalPrivateKey(priv *rsa.PrivateKey) ([]byte, error)

	// ParsePrivateKey parses PKCS#8 DER bytes produced by
	// MarshalPrivateKey. Returns ErrInvalidInput on malformed input.
	ParsePrivateKey(der []byte) (*rsa.PrivateKey, error)
}
