// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"

	"github.com/MKhiriev/go-pass-vault/internal/vaulterr"
)

const (
	// SaltSize is the length of generated salts.
	SaltSize = 16
	// MinSaltSize is the shortest salt accepted for derivation.
	MinSaltSize = 8
	// KeySize is the length of every symmetric key in the hierarchy.
	KeySize = 32
)

// ArgonParams are the Argon2id tuning parameters.
type ArgonParams struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
}

// DefaultArgonParams are the parameters recommended by OWASP (2024):
// 1 iteration, 64 MiB, 4 lanes.
var DefaultArgonParams = ArgonParams{
	Time:    1,
	Memory:  64 * 1024,
	Threads: 4,
}

// keyDerivation is the Argon2id implementation of [KeyDerivation].
type keyDerivation struct {
	params ArgonParams
}

// NewKeyDerivation constructs a [KeyDerivation] with the given parameters.
// Zero fields fall back to [DefaultArgonParams].
func NewKeyDerivation(params ArgonParams) KeyDerivation {
	if params.Time == 0 {
		params.Time = DefaultArgonParams.Time
	}
	if params.Memory == 0 {
		params.Memory = DefaultArgonParams.Memory
	}
	if params.Threads == 0 {
		params.Threads = DefaultArgonParams.Threads
	}
	return &keyDerivation{params: params}
}

// GenerateSalt implements [KeyDerivation]. It reads 16 random bytes from the
// OS CSPRNG.
func (k *keyDerivation) GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return salt, nil
}

// DeriveUserSecretKey implements [KeyDerivation]. The result exists only in
// client memory and inside the platform secure store; it is never
// transmitted.
func (k *keyDerivation) DeriveUserSecretKey(masterPassword string, salt []byte) ([]byte, error) {
	const op = "crypto.DeriveUserSecretKey"

	if masterPassword == "" {
		return nil, vaulterr.E(vaulterr.InvalidInput, op, ErrEmptyPassword)
	}
	if len(salt) < MinSaltSize {
		return nil, vaulterr.E(vaulterr.InvalidInput, op, ErrInvalidSalt)
	}

	return argon2.IDKey(
		[]byte(masterPassword),
		salt,
		k.params.Time,
		k.params.Memory,
		k.params.Threads,
		KeySize,
	), nil
}
