package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyItemID        = errors.New("item id is required")
	ErrEmptyTitle         = errors.New("item title is required")
	ErrInvalidURL         = errors.New("item url has no host")
	ErrEmptyContentCipher = errors.New("content cipher is required")
	ErrEmptyItemKeyCipher = errors.New("item key cipher is required")
)
