package utils

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-pass-vault/models"
)

// ParseUnverifiedToken decodes the registered claims of tokenString without
// checking its signature. The client never holds the signing key; the result
// is for display (subject, expiry) only and must not be used for
// authorization decisions.
func ParseUnverifiedToken(tokenString string) (models.Token, error) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return models.Token{}, fmt.Errorf("error parsing token claims: %w", err)
	}

	return models.Token{RegisteredClaims: *claims, SignedString: tokenString}, nil
}
