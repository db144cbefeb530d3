package domain

import "errors"

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")

	ErrProfileNotFound    = errors.New("profile not found")
	ErrPrivacyNotFound    = errors.New("privacy settings not found")
	ErrConnectionNotFound = errors.New("connection not found")

	ErrAlreadyConnected  = errors.New("profiles are already connected")
	ErrPendingApproval   = errors.New("connection request already pending")
	ErrRecipientRejected = errors.New("connection request was rejected")
	ErrSameRolePair      = errors.New("connections require one candidate and one startup")

	ErrForbidden    = errors.New("caller does not own this profile")
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict marks a lost write race; callers may retry.
	ErrConflict = errors.New("concurrent modification conflict")

	// ErrCorruptState marks a stored status outside the known enum.
	ErrCorruptState = errors.New("corrupt connection state")
)
