// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The passvault Authors

package client

import (
	"errors"

	"github.com/mirovsky/passvault/internal/service"
)

// Human-readable messages for the error outcomes the service layer can
// surface. Keeping them in one place ensures consistent wording throughout
// the shell. Decryption failures deliberately read as a credential problem:
// the cryptographic cause never reaches the user.
const (
	msgInvalidInput         = "invalid data provided"
	msgIncorrectCredentials = "incorrect login or recovery phrase"
	msgVaultLocked          = "vault is locked, unlock first"
	msgVaultNotFound        = "vault not found"
	msgNotAMember           = "you are not a member of this vault"
	msgKeyMaterialMissing   = "account key material is missing, finish setup first"
	msgItemNotFound         = "item not found"
	msgSetupIncomplete      = "setup did not complete, try again"
)

func errorMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return msgInvalidInput
	case errors.Is(err, service.ErrDecryptionFailed):
		return msgIncorrectCredentials
	case errors.Is(err, service.ErrVaultLocked):
		return msgVaultLocked
	case errors.Is(err, service.ErrVaultNotFound):
		return msgVaultNotFound
	case errors.Is(err, service.ErrMembershipNotFound):
		return msgNotAMember
	case errors.Is(err, service.ErrKeyMaterialMissing):
		return msgKeyMaterialMissing
	case errors.Is(err, service.ErrItemNotFound):
		return msgItemNotFound
	case errors.Is(err, service.ErrSetupIncomplete):
		return msgSetupIncomplete
	default:
		return err.Error()
	}
}
