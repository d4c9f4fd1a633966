package crypto

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/MKhiriev/go-pass-vault/internal/vaulterr"
	"github.com/MKhiriev/go-pass-vault/models"
)

var suites = []string{CipherAESGCM, CipherXChaCha20Poly1305}

func newTestEnvelope(t *testing.T, suite string) Envelope {
	t.Helper()
	env, err := NewEnvelope(suite)
	if err != nil {
		t.Fatalf("NewEnvelope(%q) error: %v", suite, err)
	}
	return env
}

func mustKey(t *testing.T, env Envelope) []byte {
	t.Helper()
	key, err := env.GenerateItemKey()
	if err != nil {
		t.Fatalf("GenerateItemKey error: %v", err)
	}
	return key
}

func TestNewEnvelope_UnknownSuite(t *testing.T) {
	if _, err := NewEnvelope("rot13"); !errors.Is(err, ErrUnknownCipherSuite) {
		t.Fatalf("expected ErrUnknownCipherSuite, got %v", err)
	}
}

func TestGenerateItemKey_LengthAndRandomness(t *testing.T) {
	env := newTestEnvelope(t, "")

	k1 := mustKey(t, env)
	k2 := mustKey(t, env)

	if len(k1) != KeySize {
		t.Fatalf("item key length = %d, want %d", len(k1), KeySize)
	}
	if bytes.Equal(k1, k2) {
		t.Fatalf("expected item keys to differ")
	}
}

func TestWrapUnwrap_RoundTrip(t *testing.T) {
	for _, suite := range suites {
		t.Run(suite, func(t *testing.T) {
			env := newTestEnvelope(t, suite)
			key := mustKey(t, env)

			for _, plaintext := range [][]byte{[]byte("hunter2"), {}, bytes.Repeat([]byte{0x42}, 4096)} {
				blob, err := env.Wrap(key, plaintext)
				if err != nil {
					t.Fatalf("Wrap error: %v", err)
				}
				got, err := env.Unwrap(key, blob)
				if err != nil {
					t.Fatalf("Unwrap error: %v", err)
				}
				if !bytes.Equal(got, plaintext) {
					t.Fatalf("round trip mismatch: got %q", got)
				}
			}
		})
	}
}

func TestWrap_FreshNonceEveryCall(t *testing.T) {
	for _, suite := range suites {
		t.Run(suite, func(t *testing.T) {
			env := newTestEnvelope(t, suite)
			key := mustKey(t, env)

			b1, err := env.Wrap(key, []byte("same"))
			if err != nil {
				t.Fatalf("Wrap error: %v", err)
			}
			b2, err := env.Wrap(key, []byte("same"))
			if err != nil {
				t.Fatalf("Wrap error: %v", err)
			}
			if b1 == b2 {
				t.Fatalf("expected ciphertexts to differ for repeated plaintext")
			}
		})
	}
}

func TestWrap_InvalidKeyLength(t *testing.T) {
	env := newTestEnvelope(t, "")

	_, err := env.Wrap([]byte("short"), []byte("x"))
	if !errors.Is(err, vaulterr.ErrInvalidInput) {
		t.Fatalf("expected InvalidInput, got %v", err)
	}
	if !errors.Is(err, ErrInvalidKeyLength) {
		t.Fatalf("expected ErrInvalidKeyLength cause, got %v", err)
	}
}

func TestUnwrap_WrongKeyFails(t *testing.T) {
	for _, suite := range suites {
		t.Run(suite, func(t *testing.T) {
			env := newTestEnvelope(t, suite)
			blob, err := env.Wrap(mustKey(t, env), []byte("secret"))
			if err != nil {
				t.Fatalf("Wrap error: %v", err)
			}

			_, err = env.Unwrap(mustKey(t, env), blob)
			if !errors.Is(err, vaulterr.ErrAuthenticationFailure) {
				t.Fatalf("expected AuthenticationFailure, got %v", err)
			}
		})
	}
}

func TestUnwrap_TamperedCiphertextFails(t *testing.T) {
	env := newTestEnvelope(t, "")
	key := mustKey(t, env)

	blob, err := env.Wrap(key, []byte("secret"))
	if err != nil {
		t.Fatalf("Wrap error: %v", err)
	}
	raw, _ := base64.StdEncoding.DecodeString(blob)
	raw[len(raw)-1] ^= 0x01
	tampered := base64.StdEncoding.EncodeToString(raw)

	if _, err := env.Unwrap(key, tampered); !errors.Is(err, vaulterr.ErrAuthenticationFailure) {
		t.Fatalf("expected AuthenticationFailure, got %v", err)
	}
}

func TestUnwrap_MalformedInputFails(t *testing.T) {
	env := newTestEnvelope(t, "")
	key := mustKey(t, env)

	cases := map[string]string{
		"not base64": "%%%not-base64%%%",
		"too short":  base64.StdEncoding.EncodeToString([]byte{1, 2, 3}),
		"empty":      "",
	}
	for name, blob := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := env.Unwrap(key, blob); !errors.Is(err, vaulterr.ErrAuthenticationFailure) {
				t.Fatalf("expected AuthenticationFailure, got %v", err)
			}
		})
	}
}

func TestUnwrap_CrossSuiteFails(t *testing.T) {
	gcm := newTestEnvelope(t, CipherAESGCM)
	xc := newTestEnvelope(t, CipherXChaCha20Poly1305)
	key := mustKey(t, gcm)

	blob, err := gcm.Wrap(key, []byte("secret"))
	if err != nil {
		t.Fatalf("Wrap error: %v", err)
	}
	if _, err := xc.Unwrap(key, blob); !errors.Is(err, vaulterr.ErrAuthenticationFailure) {
		t.Fatalf("expected AuthenticationFailure, got %v", err)
	}
}

func TestSealOpen_DoubleEnvelope(t *testing.T) {
	for _, suite := range suites {
		t.Run(suite, func(t *testing.T) {
			env := newTestEnvelope(t, suite)
			owner := mustKey(t, env)
			value := []byte(`{"title":"mail","password":"p@ss"}`)

			sealed, err := env.Seal(owner, value)
			if err != nil {
				t.Fatalf("Seal error: %v", err)
			}
			if sealed.ContentCipher == "" || sealed.ItemKeyCipher == "" {
				t.Fatalf("expected both ciphertexts to be set: %+v", sealed)
			}

			got, err := env.Open(owner, sealed)
			if err != nil {
				t.Fatalf("Open error: %v", err)
			}
			if !bytes.Equal(got, value) {
				t.Fatalf("Open = %q, want %q", got, value)
			}

			// The item key is recoverable and opens the content directly.
			itemKey, err := env.UnwrapItemKey(owner, sealed.ItemKeyCipher)
			if err != nil {
				t.Fatalf("UnwrapItemKey error: %v", err)
			}
			direct, err := env.Unwrap(itemKey, string(sealed.ContentCipher))
			if err != nil {
				t.Fatalf("Unwrap content error: %v", err)
			}
			if !bytes.Equal(direct, value) {
				t.Fatalf("direct unwrap mismatch")
			}
		})
	}
}

func TestOpen_WrongOwnerKeyFails(t *testing.T) {
	env := newTestEnvelope(t, "")

	sealed, err := env.Seal(mustKey(t, env), []byte("value"))
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	if _, err := env.Open(mustKey(t, env), sealed); !errors.Is(err, vaulterr.ErrAuthenticationFailure) {
		t.Fatalf("expected AuthenticationFailure, got %v", err)
	}
}

func TestSeal_ItemKeysAreIndependent(t *testing.T) {
	env := newTestEnvelope(t, "")
	owner := mustKey(t, env)

	a, err := env.Seal(owner, []byte("a"))
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	b, err := env.Seal(owner, []byte("b"))
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	ka, _ := env.UnwrapItemKey(owner, a.ItemKeyCipher)
	kb, _ := env.UnwrapItemKey(owner, b.ItemKeyCipher)
	if bytes.Equal(ka, kb) {
		t.Fatalf("expected distinct item keys per item")
	}

	// Item A's key cannot open item B's content.
	mixed := Sealed{ContentCipher: b.ContentCipher, ItemKeyCipher: a.ItemKeyCipher}
	if _, err := env.Open(owner, mixed); !errors.Is(err, vaulterr.ErrAuthenticationFailure) {
		t.Fatalf("expected AuthenticationFailure, got %v", err)
	}
}

func TestUnwrapItemKey_RejectsNonKeyPayload(t *testing.T) {
	env := newTestEnvelope(t, "")
	owner := mustKey(t, env)

	blob, err := env.Wrap(owner, []byte("not a key"))
	if err != nil {
		t.Fatalf("Wrap error: %v", err)
	}
	_, err = env.UnwrapItemKey(owner, models.CipheredItemKey(blob))
	if !errors.Is(err, vaulterr.ErrAuthenticationFailure) {
		t.Fatalf("expected AuthenticationFailure, got %v", err)
	}
}

func TestZero(t *testing.T) {
	b := []byte{1, 2, 3}
	Zero(b)
	if !bytes.Equal(b, []byte{0, 0, 0}) {
		t.Fatalf("Zero left %v", b)
	}
}
