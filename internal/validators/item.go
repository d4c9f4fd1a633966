package validators

import (
	"context"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-pass-vault/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldID targets the opaque item identifier.
	FieldID = "id"

	// FieldTitle targets the display name of a vault item.
	FieldTitle = "title"

	// FieldURL targets the optional address a credential belongs to.
	FieldURL = "url"

	// FieldContentCipher targets the wrapped item content.
	FieldContentCipher = "content_cipher"

	// FieldItemKeyCipher targets the wrapped item key.
	FieldItemKeyCipher = "item_key_cipher"
)

// ItemValidator implements [Validator] for vault item shapes:
// models.ItemContent before it is sealed and models.RemoteEncryptedItem as
// received from the document store.
type ItemValidator struct {
}

// NewItemValidator constructs a new ItemValidator and returns it as the
// Validator interface.
func NewItemValidator() Validator {
	return &ItemValidator{}
}

// Validate dispatches on the dynamic type of obj. Without fields every rule
// of the type is checked.
func (v *ItemValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ItemContent:
		return v.validateItemContent(ctx, value, fields...)
	case *models.ItemContent:
		return v.validateItemContent(ctx, *value, fields...)

	case models.RemoteEncryptedItem:
		return v.validateRemoteItem(ctx, value, fields...)
	case *models.RemoteEncryptedItem:
		return v.validateRemoteItem(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ItemValidator) validateItemContent(_ context.Context, content models.ItemContent, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldURL}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if strings.TrimSpace(content.Title) == "" {
				return ErrEmptyTitle
			}
		case FieldURL:
			if content.URL != "" && !hasHost(content.URL) {
				return ErrInvalidURL
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ItemValidator) validateRemoteItem(_ context.Context, item models.RemoteEncryptedItem, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldContentCipher, FieldItemKeyCipher}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(item.ID) == "" {
				return ErrEmptyItemID
			}
		case FieldContentCipher:
			if item.ContentCipher == "" {
				return ErrEmptyContentCipher
			}
		case FieldItemKeyCipher:
			if item.ItemKeyCipher == "" {
				return ErrEmptyItemKeyCipher
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// hasHost reports whether raw names a host. Bare hosts such as
// "example.com" are accepted.
func hasHost(raw string) bool {
	raw = strings.TrimSpace(raw)
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	return err == nil && u.Hostname() != ""
}
