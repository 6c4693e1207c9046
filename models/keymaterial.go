// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The passvault Authors

package models

import "time"

// UserKeyMaterial is the per-user public record of the key hierarchy roots.
// Every field is either public by design (salt, verifier, public key) or a
// wrapped blob that is useless without the user's master key. The server
// stores this record verbatim and can never recover a usable key from it.
type UserKeyMaterial struct {
	// UserID is the server-assigned unique identifier of the user.
	UserID string `json:"user_id"`

	// Login is the unique user login identifier.
	Login string `json:"login"`

	// UMKSalt is the base64-encoded 32-byte random salt mixed into master
	// key derivation. It is not a secret; it only makes derivation unique
	// per user and resistant to precomputation.
	UMKSalt string `json:"umk_salt"`

	// Verifier is the base64-encoded one-way value derived from the master
	// key and salt. The server compares it at login without ever learning
	// the master key itself.
	Verifier string `json:"master_passphrase_verifier"`

	// PublicKey is the user's PEM-encoded RSA public key, stored in
	// cleartext. Other users encrypt vault keys under it when sharing.
	PublicKey string `json:"public_key"`

	// WrappedPrivateKey is the base64 blob (nonce + ciphertext) of the
	// PKCS#8-encoded private key, wrapped under the user's master key.
	// The server never holds a usable private key.
	WrappedPrivateKey string `json:"wrapped_private_key"`

	// CreatedAt is the timestamp when the key material was first persisted.
	CreatedAt time.Time `json:"created_at"`
}

// Complete reports whether the record carries everything the client needs
// to unlock: a salt, a verifier, and a keypair. An incomplete record means
// first-time setup never finished for this user.
func (m UserKeyMaterial) Complete() bool {
	return m.UMKSalt != "" && m.Verifier != "" &&
		m.PublicKey != "" && m.WrappedPrivateKey != ""
}
