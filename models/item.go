// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The passvault Authors

package models

import "time"

// ItemType tags the semantic kind of a vault item. An item may carry more
// than one tag (e.g. a login that also stores a TOTP seed).
type ItemType string

const (
	ItemTypeLogin ItemType = "login"
	ItemTypeNote  ItemType = "note"
	ItemTypeTOTP  ItemType = "totp"
)

// Canonical sensitive-field names. Each name addresses one independently
// encrypted ciphertext blob inside a [VaultItem].
const (
	FieldUsername = "username"
	FieldPassword = "password"
	FieldTOTPSeed = "totp_seed"
	FieldNote     = "note"
)

// FieldNames lists every sensitive field in stable order.
var FieldNames = []string{FieldUsername, FieldPassword, FieldTOTPSeed, FieldNote}

// ItemFields maps canonical field names to plaintext values. Only populated
// fields are present. Values exist in memory only; they are never persisted
// or logged.
type ItemFields map[string]string

// VaultItem is a single stored vault entry. All sensitive fields are
// independently encrypted base64 blobs (nonce + ciphertext) under the item
// key, which is itself stored only wrapped under the vault key. Everything
// else is searchable cleartext metadata.
type VaultItem struct {
	ItemID  string `json:"item_id"`
	VaultID string `json:"vault_id"`

	Name string     `json:"name"`
	URL  string     `json:"url,omitempty"`
	Type []ItemType `json:"type"`
	Tags []string   `json:"tags,omitempty"`

	// ItemKeyWrapped is the item key wrapped under the vault key.
	ItemKeyWrapped string `json:"item_key_wrapped"`

	UsernameCT string `json:"username_ct,omitempty"`
	PasswordCT string `json:"password_ct,omitempty"`
	TOTPSeedCT string `json:"totp_seed_ct,omitempty"`
	NoteCT     string `json:"note_ct,omitempty"`

	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CiphertextFields returns the present ciphertext blobs keyed by canonical
// field name. Absent fields are omitted, preserving the "only populated
// fields are encrypted" contract.
func (i VaultItem) CiphertextFields() map[string]string {
	out := make(map[string]string, 4)
	if i.UsernameCT != "" {
		out[FieldUsername] = i.UsernameCT
	}
	if i.PasswordCT != "" {
		out[FieldPassword] = i.PasswordCT
	}
	if i.TOTPSeedCT != "" {
		out[FieldTOTPSeed] = i.TOTPSeedCT
	}
	if i.NoteCT != "" {
		out[FieldNote] = i.NoteCT
	}
	return out
}

// SetCiphertext stores blob under the canonical field name. Unknown names
// are ignored; the validation layer rejects them before this point.
func (i *VaultItem) SetCiphertext(field, blob string) {
	switch field {
	case FieldUsername:
		i.UsernameCT = blob
	case FieldPassword:
		i.PasswordCT = blob
	case FieldTOTPSeed:
		i.TOTPSeedCT = blob
	case FieldNote:
		i.NoteCT = blob
	}
}

// HasType reports whether the item carries the given type tag.
func (i VaultItem) HasType(t ItemType) bool {
	for _, existing := range i.Type {
		if existing == t {
			return true
		}
	}
	return false
}
