package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyItemName     = errors.New("item name is required")
	ErrEmptyVaultID      = errors.New("vault ID is required")
	ErrInvalidItemType   = errors.New("invalid item type")
	ErrMissingItemKey    = errors.New("encrypted item without wrapped item key")
	ErrFieldTypeMismatch = errors.New("encrypted field present without matching item type")
	ErrUnknownFieldName  = errors.New("unknown sensitive field name")
	ErrNoFields          = errors.New("at least one field must be provided")
)
