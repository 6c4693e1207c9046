package validators

import (
	"context"

	"github.com/mirovsky/passvault/models"
)

// Field name constants used to specify which fields should be validated.
// Passed to Validate to restrict validation to a subset of rules.
const (
	// FieldName targets the cleartext item name.
	FieldName = "name"

	// FieldVaultID targets the owning vault identifier.
	FieldVaultID = "vault_id"

	// FieldTypes targets the item type tags.
	FieldTypes = "types"

	// FieldCiphertexts targets the encrypted-field / type-tag consistency
	// rules of an already-encrypted item.
	FieldCiphertexts = "ciphertexts"
)

var allowedItemTypes = []models.ItemType{
	models.ItemTypeLogin,
	models.ItemTypeNote,
	models.ItemTypeTOTP,
}

// fieldRequiredType maps each sensitive field to the type tag an item must
// carry before that field may hold a ciphertext.
var fieldRequiredType = map[string]models.ItemType{
	models.FieldUsername: models.ItemTypeLogin,
	models.FieldPassword: models.ItemTypeLogin,
	models.FieldTOTPSeed: models.ItemTypeTOTP,
	models.FieldNote:     models.ItemTypeNote,
}

type VaultItemValidator struct {
}

func NewVaultItemValidator() Validator {
	return &VaultItemValidator{}
}

func (v *VaultItemValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.VaultItem:
		return v.validateItem(ctx, value, fields...)
	case *models.VaultItem:
		return v.validateItem(ctx, *value, fields...)

	case models.ItemFields:
		return v.validateFields(ctx, value)

	default:
		return ErrUnsupportedType
	}
}

func isValidItemType(t models.ItemType) bool {
	for _, allowed := range allowedItemTypes {
		if t == allowed {
			return true
		}
	}
	return false
}

func (v *VaultItemValidator) validateItem(_ context.Context, item models.VaultItem, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldVaultID, FieldTypes, FieldCiphertexts}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if item.Name == "" {
				return ErrEmptyItemName
			}
		case FieldVaultID:
			if item.VaultID == "" {
				return ErrEmptyVaultID
			}
		case FieldTypes:
			for _, t := range item.Type {
				if !isValidItemType(t) {
					return ErrInvalidItemType
				}
			}
		case FieldCiphertexts:
			cts := item.CiphertextFields()
			if len(cts) > 0 && item.ItemKeyWrapped == "" {
				return ErrMissingItemKey
			}
			for name := range cts {
				if !item.HasType(fieldRequiredType[name]) {
					return ErrFieldTypeMismatch
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateFields checks a plaintext field map before encryption: every key
// must be a canonical field name and at least one field must be present.
func (v *VaultItemValidator) validateFields(_ context.Context, fields models.ItemFields) error {
	if len(fields) == 0 {
		return ErrNoFields
	}
	for name := range fields {
		if _, ok := fieldRequiredType[name]; !ok {
			return ErrUnknownFieldName
		}
	}
	return nil
}
