package utils

import "github.com/google/uuid"

// IDGenerator produces identifiers for new vault items.
type IDGenerator interface {
	Generate() string
}

// UUIDGenerator issues time-ordered UUIDv7 identifiers so that items sort by
// creation time at the document store.
type UUIDGenerator struct{}

// NewUUIDGenerator returns a UUIDv7 [IDGenerator].
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new UUIDv7, falling back to a random UUIDv4 if the
// clock-sequence source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
