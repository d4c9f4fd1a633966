package crypto

import "errors"

// Causes wrapped inside vaulterr errors returned by this package.
var (
	// ErrEmptyPassword is returned when key derivation gets an empty master
	// password.
	ErrEmptyPassword = errors.New("master password is empty")

	// ErrInvalidSalt is returned when the salt is missing or shorter than
	// MinSaltSize.
	ErrInvalidSalt = errors.New("salt is missing or too short")

	// ErrInvalidKeyLength is returned when a key is not KeySize bytes long.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrCiphertextTooShort is returned when a blob cannot even hold a
	// nonce and an authentication tag.
	ErrCiphertextTooShort = errors.New("ciphertext too short")

	// ErrUnknownCipherSuite is returned by NewEnvelope for unsupported
	// suite names.
	ErrUnknownCipherSuite = errors.New("unknown cipher suite")
)
