// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The passvault Authors

package models

import "time"

// VaultType distinguishes a user's single personal vault from shared
// organization vaults.
type VaultType string

const (
	// VaultTypePersonal is the user's own vault. Its key is wrapped only
	// under the owner's master key.
	VaultTypePersonal VaultType = "personal"

	// VaultTypeOrganization is a shared vault. Its key is wrapped once per
	// authorized user: symmetrically for the owner, asymmetrically for
	// every invited member.
	VaultTypeOrganization VaultType = "organization"
)

// Vault is the metadata record of a single vault. The vault key itself is
// never part of this record; it travels separately as [VaultKeyRecord].
type Vault struct {
	VaultID string    `json:"vault_id"`
	Name    string    `json:"name"`
	Type    VaultType `json:"type"`

	// OwnerID is the user who created the vault and holds the
	// symmetrically wrapped copy of its key.
	OwnerID string `json:"owner_id"`

	// OrgID is set only for organization vaults.
	OrgID string `json:"org_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// KeyWrapScheme names how a vault key record was wrapped.
type KeyWrapScheme string

const (
	// WrapSchemeSymmetric marks a vault key wrapped under the user's own
	// master key (AES-GCM). Used for personal vaults and vault owners.
	WrapSchemeSymmetric KeyWrapScheme = "symmetric"

	// WrapSchemeAsymmetric marks a vault key wrapped under a member's
	// public key (RSA-OAEP). Used when sharing with a user who does not
	// hold the owner's master key.
	WrapSchemeAsymmetric KeyWrapScheme = "asymmetric"
)

// VaultKeyRecord is one wrapped representation of a vault key, addressed to
// exactly one user. The raw vault key exists in as many wrapped copies as
// there are authorized users and never in any other persisted form.
type VaultKeyRecord struct {
	VaultID string        `json:"vault_id"`
	UserID  string        `json:"user_id"`
	Scheme  KeyWrapScheme `json:"scheme"`

	// Wrapped is the base64 blob of the vault key: nonce + ciphertext for
	// the symmetric scheme, raw RSA-OAEP ciphertext for the asymmetric one.
	Wrapped string `json:"wrapped"`

	CreatedAt time.Time `json:"created_at"`
}

// Membership ties a user to an organization vault with a role.
type Membership struct {
	VaultID string `json:"vault_id"`
	UserID  string `json:"user_id"`
	Role    string `json:"role"`
}

// AccessLevel enumerates the ways a user can relate to a vault.
type AccessLevel int

const (
	// AccessNone means the user has no wrapped key for the vault.
	AccessNone AccessLevel = iota

	// AccessOwner means the user created the vault and unwraps its key
	// symmetrically with their own master key.
	AccessOwner

	// AccessMember means the user was invited and unwraps the vault key
	// asymmetrically with their private key.
	AccessMember
)

// VaultAccess is the resolved access variant for a (user, vault) pair.
// It is computed once at vault-key resolution time so the unwrap path never
// has to re-inspect user or membership shapes.
type VaultAccess struct {
	Level AccessLevel

	// Role carries the membership role when Level is AccessMember.
	Role string
}

// String implements fmt.Stringer for log fields.
func (a VaultAccess) String() string {
	switch a.Level {
	case AccessOwner:
		return "owner"
	case AccessMember:
		return "member:" + a.Role
	default:
		return "none"
	}
}
