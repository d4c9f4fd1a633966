package platform

import "errors"

var (
	// ErrNotFound is returned when the requested value is not stored.
	ErrNotFound = errors.New("platform: value not found")

	// ErrOfflineVaultUnsupported is returned by the encrypted vault methods
	// of adapters that cannot persist it.
	ErrOfflineVaultUnsupported = errors.New("platform: offline vault is not supported")

	// ErrUnknownPlatform is returned by New for unsupported platform names.
	ErrUnknownPlatform = errors.New("platform: unknown platform")

	// ErrEmptyKey is returned when an empty user secret key is stored.
	ErrEmptyKey = errors.New("platform: empty user secret key")
)
