package service

import "errors"

var (
	ErrEmptyUserSecretKey = errors.New("user secret key is empty")
	ErrEmptyEmail         = errors.New("email is empty")
	ErrEmptyPassword      = errors.New("password is empty")
	ErrEmptyMFA           = errors.New("mfa token or code is empty")
	ErrEmptyUserID        = errors.New("user id is empty")
	ErrEmptyItemID        = errors.New("item id is empty")
	ErrEmptyDomain        = errors.New("domain is empty")
	ErrInvalidSalt        = errors.New("salt is not valid base64")
	ErrMissingExpiry      = errors.New("session record has no expiry")
	ErrNoOfflineVault     = errors.New("document store is unreachable and no offline vault is stored")
)
