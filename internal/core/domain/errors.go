package domain

import "errors"

var (
	// ErrInvalidID marks an identifier that is not a valid store object id.
	// Distinct from not-found: the client sent something unparseable.
	ErrInvalidID = errors.New("invalid identifier")

	// ErrInvalidCredentials is the single outcome for every login failure.
	// Unknown username and wrong password are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrInvalidRole      = errors.New("invalid role")
	ErrUserNotFound     = errors.New("user not found")
	ErrUserExists       = errors.New("user already exists")
	ErrDocumentNotFound = errors.New("document not found")

	// ErrStoreUnavailable wraps any persistence-layer transport failure.
	// No retry is attempted; callers map it to a generic server error.
	ErrStoreUnavailable = errors.New("store unavailable")
)
