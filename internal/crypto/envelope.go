// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/MKhiriev/go-pass-vault/internal/vaulterr"
	"github.com/MKhiriev/go-pass-vault/models"
)

// Supported cipher suites.
const (
	CipherAESGCM           = "aes-256-gcm"
	CipherXChaCha20Poly1305 = "xchacha20-poly1305"
)

// envelope is the private implementation of [Envelope]. The AEAD
// constructor is fixed at build time so every blob of a deployment uses the
// same suite.
type envelope struct {
	newAEAD func(key []byte) (cipher.AEAD, error)
}

// NewEnvelope constructs an [Envelope] for the named cipher suite. An empty
// name selects AES-256-GCM.
func NewEnvelope(suite string) (Envelope, error) {
	switch suite {
	case "", CipherAESGCM:
		return &envelope{newAEAD: newAESGCM}, nil
	case CipherXChaCha20Poly1305:
		return &envelope{newAEAD: chacha20poly1305.NewX}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCipherSuite, suite)
	}
}

func newAESGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// GenerateItemKey implements [Envelope]. It reads 32 random bytes from the
// OS CSPRNG.
func (e *envelope) GenerateItemKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, fmt.Errorf("generate item key: %w", err)
	}
	return key, nil
}

// Wrap implements [Envelope]. A random nonce is prepended to the sealed
// bytes so the decrypting side can locate it: blob = nonce ‖ ciphertext.
func (e *envelope) Wrap(key, plaintext []byte) (string, error) {
	const op = "crypto.Wrap"

	if len(key) != KeySize {
		return "", vaulterr.E(vaulterr.InvalidInput, op, fmt.Errorf("%w: %d", ErrInvalidKeyLength, len(key)))
	}

	aead, err := e.newAEAD(key)
	if err != nil {
		return "", vaulterr.E(vaulterr.InvalidInput, op, err)
	}

	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(plaintext)+aead.Overhead())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	blob := aead.Seal(nonce, nonce, plaintext, nil)
	return base64.StdEncoding.EncodeToString(blob), nil
}

// Unwrap implements [Envelope]. Every failure (bad encoding, short blob,
// wrong key, tag mismatch) is reported as AuthenticationFailure so callers
// cannot distinguish tampering from a wrong key.
func (e *envelope) Unwrap(key []byte, ciphertext string) ([]byte, error) {
	const op = "crypto.Unwrap"

	if len(key) != KeySize {
		return nil, vaulterr.E(vaulterr.AuthenticationFailure, op, fmt.Errorf("%w: %d", ErrInvalidKeyLength, len(key)))
	}

	blob, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return nil, vaulterr.E(vaulterr.AuthenticationFailure, op, fmt.Errorf("decode base64: %w", err))
	}

	aead, err := e.newAEAD(key)
	if err != nil {
		return nil, vaulterr.E(vaulterr.AuthenticationFailure, op, err)
	}

	nonceSize := aead.NonceSize()
	if len(blob) < nonceSize+aead.Overhead() {
		return nil, vaulterr.E(vaulterr.AuthenticationFailure, op, ErrCiphertextTooShort)
	}

	nonce, sealed := blob[:nonceSize], blob[nonceSize:]
	plaintext, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, vaulterr.E(vaulterr.AuthenticationFailure, op, err)
	}

	return plaintext, nil
}

// Seal implements [Envelope]:
//
//	IK            = GenerateItemKey()
//	ContentCipher = Wrap(IK, value)
//	ItemKeyCipher = Wrap(ownerKey, IK)
//
// Rotating ownerKey later only requires re-wrapping IK.
func (e *envelope) Seal(ownerKey, value []byte) (Sealed, error) {
	itemKey, err := e.GenerateItemKey()
	if err != nil {
		return Sealed{}, err
	}
	defer Zero(itemKey)

	content, err := e.Wrap(itemKey, value)
	if err != nil {
		return Sealed{}, fmt.Errorf("wrap content: %w", err)
	}

	wrappedKey, err := e.WrapItemKey(ownerKey, itemKey)
	if err != nil {
		return Sealed{}, err
	}

	return Sealed{
		ContentCipher: models.CipheredContent(content),
		ItemKeyCipher: wrappedKey,
	}, nil
}

// Open implements [Envelope].
func (e *envelope) Open(ownerKey []byte, sealed Sealed) ([]byte, error) {
	itemKey, err := e.UnwrapItemKey(ownerKey, sealed.ItemKeyCipher)
	if err != nil {
		return nil, err
	}
	defer Zero(itemKey)

	value, err := e.Unwrap(itemKey, string(sealed.ContentCipher))
	if err != nil {
		return nil, fmt.Errorf("unwrap content: %w", err)
	}
	return value, nil
}

// WrapItemKey implements [Envelope].
func (e *envelope) WrapItemKey(ownerKey, itemKey []byte) (models.CipheredItemKey, error) {
	if len(itemKey) != KeySize {
		return "", vaulterr.E(vaulterr.InvalidInput, "crypto.WrapItemKey", fmt.Errorf("%w: %d", ErrInvalidKeyLength, len(itemKey)))
	}

	wrapped, err := e.Wrap(ownerKey, itemKey)
	if err != nil {
		return "", fmt.Errorf("wrap item key: %w", err)
	}
	return models.CipheredItemKey(wrapped), nil
}

// UnwrapItemKey implements [Envelope]. A blob that authenticates but does not
// hold a key of the expected size is treated as an authentication failure.
func (e *envelope) UnwrapItemKey(ownerKey []byte, wrapped models.CipheredItemKey) ([]byte, error) {
	itemKey, err := e.Unwrap(ownerKey, string(wrapped))
	if err != nil {
		return nil, fmt.Errorf("unwrap item key: %w", err)
	}
	if len(itemKey) != KeySize {
		Zero(itemKey)
		return nil, vaulterr.E(vaulterr.AuthenticationFailure, "crypto.UnwrapItemKey", ErrInvalidKeyLength)
	}
	return itemKey, nil
}

// Zero overwrites b with zeros.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
