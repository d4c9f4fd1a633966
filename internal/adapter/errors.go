package adapter

import "errors"

// Sentinels produced by mapHTTPError from response status codes.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("version conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
)

var (
	// ErrEmptyUserID is returned when a document store call has no owner.
	ErrEmptyUserID = errors.New("user id is empty")

	// ErrEmptyItemID is returned when an item call has no item id.
	ErrEmptyItemID = errors.New("item id is empty")

	// ErrInvalidAuthResponse is returned when the identity provider answers
	// with neither an MFA challenge nor a credential bundle.
	ErrInvalidAuthResponse = errors.New("identity provider returned neither mfa challenge nor credentials")
)
