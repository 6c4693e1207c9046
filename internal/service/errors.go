package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks malformed caller input; never retried
	// automatically.
	ErrInvalidInput = errors.New("invalid data provided")

	// ErrDecryptionFailed is surfaced to the user as a generic "incorrect
	// passphrase". Whether the underlying cause was a wrong key or a
	// corrupted blob is deliberately not exposed.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrVaultLocked marks an operation that needs an unlocked vault key
	// before resolution happened. Recoverable: prompt for the passphrase.
	ErrVaultLocked = errors.New("vault is locked")

	// ErrVaultNotFound means no vault or vault key record exists for the
	// requested vault.
	ErrVaultNotFound = errors.New("vault not found")

	// ErrMembershipNotFound means the user requested an organization vault
	// they do not belong to.
	ErrMembershipNotFound = errors.New("vault membership not found")

	// ErrKeyMaterialMissing means the user record lacks salt, verifier, or
	// keypair: first-time setup never completed. Fatal for the session;
	// the setup flow must run.
	ErrKeyMaterialMissing = errors.New("user key material missing or incomplete")

	// ErrItemNotFound means the requested item exists neither in the local
	// cache nor on the server.
	ErrItemNotFound = errors.New("item not found")

	// ErrSetupIncomplete marks a registration that failed partway;
	// the server may hold a partial record.
	ErrSetupIncomplete = errors.New("setup incomplete")
)

// FieldDecryptionError scopes a decryption failure to one item field.
// Sibling fields keep decrypting; partial plaintext is a valid outcome.
type FieldDecryptionError struct {
	// Field is the canonical field name (models.FieldUsername, ...).
	Field string

	// Err is the underlying failure, kept for errors.Is checks only;
	// it never reaches user-facing output with cryptographic detail.
	Err error
}

// Error implements the error interface. The message names the field but
// never the cryptographic cause.
func (e *FieldDecryptionError) Error() string {
	return fmt.Sprintf("field %q could not be decrypted", e.Field)
}

// Unwrap exposes the underlying error for errors.Is.
func (e *FieldDecryptionError) Unwrap() error {
	return e.Err
}
