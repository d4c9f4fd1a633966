// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package vaulterr defines the closed error taxonomy shared by every layer of
// the vault engine.
//
// Each failure is reported as an [*Error] carrying exactly one [Kind]. Callers
// match kinds with [errors.Is] against the exported sentinels
// (e.g. errors.Is(err, vaulterr.ErrSessionExpired)) or switch exhaustively on
// [KindOf]. The original cause, if any, stays reachable through Unwrap so that
// remote and storage failures are passed through without reinterpretation.
package vaulterr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure. The set is closed: adding a kind requires
// updating every exhaustive switch over [KindOf].
type Kind uint8

const (
	// Unknown is reported by KindOf for errors that did not originate in
	// this module.
	Unknown Kind = iota
	// InvalidInput means the caller supplied a malformed password, salt, key
	// or argument.
	InvalidInput
	// AuthenticationFailure means an unwrap failed: wrong key or tampered
	// ciphertext.
	AuthenticationFailure
	// NotFound means no cached credential exists for the requested id.
	NotFound
	// NoActiveSession means there is no session or no user secret key.
	NoActiveSession
	// SessionExpired means the session was found past its expiry and has
	// just been purged.
	SessionExpired
	// CorruptState means persisted session metadata cannot be parsed.
	CorruptState
	// StorageError means the platform adapter failed an I/O operation.
	StorageError
	// RemoteError means the document store or identity provider failed.
	RemoteError
)

var kindNames = [...]string{
	Unknown:               "unknown",
	InvalidInput:          "invalid input",
	AuthenticationFailure: "authentication failure",
	NotFound:              "not found",
	NoActiveSession:       "no active session",
	SessionExpired:        "session expired",
	CorruptState:          "corrupt state",
	StorageError:          "storage error",
	RemoteError:           "remote error",
}

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Error is the concrete error type of the module.
type Error struct {
	// Kind is the taxonomy bucket of the failure.
	Kind Kind
	// Op names the operation that failed, e.g. "cache.ReadSecret".
	Op string
	// Err is the underlying cause. May be nil.
	Err error
}

// Sentinels for errors.Is matching. They carry no Op and no cause.
var (
	ErrInvalidInput          = &Error{Kind: InvalidInput}
	ErrAuthenticationFailure = &Error{Kind: AuthenticationFailure}
	ErrNotFound              = &Error{Kind: NotFound}
	ErrNoActiveSession       = &Error{Kind: NoActiveSession}
	ErrSessionExpired        = &Error{Kind: SessionExpired}
	ErrCorruptState          = &Error{Kind: CorruptState}
	ErrStorageError          = &Error{Kind: StorageError}
	ErrRemoteError           = &Error{Kind: RemoteError}
)

// E builds an *Error of the given kind for operation op wrapping err.
func E(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Op != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	case e.Op != "":
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	default:
		return e.Kind.String()
	}
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is a bare sentinel of the same kind. Errors that
// carry an Op or a cause never act as sentinels.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Op == "" && t.Err == nil && t.Kind == e.Kind
}

// KindOf returns the kind of the outermost *Error in err's chain, or Unknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

// IsSessionLoss reports whether err means the user secret key is unavailable
// and the caller should prompt for a fresh login.
func IsSessionLoss(err error) bool {
	switch KindOf(err) {
	case NoActiveSession, SessionExpired:
		return true
	default:
		return false
	}
}
