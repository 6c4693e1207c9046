package crypto

import "errors"

var (
	// ErrInvalidInput marks malformed caller input: an empty passphrase, a
	// salt of the wrong length, or key material of an unexpected shape.
	// Never retried automatically.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDecryptionFailed marks an AEAD tag verification or RSA decryption
	// failure. Wrong key, corrupted blob, and tampering are deliberately
	// indistinguishable at this level to avoid oracle leakage.
	ErrDecryptionFailed = errors.New("decryption failed")
)
