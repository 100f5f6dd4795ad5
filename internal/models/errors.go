package models

import (
	"errors"
	"fmt"
)

// Error constants for association operations
var (
	ErrForbidden          = errors.New("operation not allowed for this role")
	ErrInvalidPassword    = errors.New("incorrect password")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrPasswordMismatch   = errors.New("new passwords do not match")
	ErrPasswordTooShort   = fmt.Errorf("new password must have at least %d characters", MinPasswordLength)
	ErrPasswordTooLong    = fmt.Errorf("password must have at most %d bytes", MaxPasswordBytes)
	ErrProtectedUser      = errors.New("the main administrator cannot be removed")
	ErrNotConfirmed       = errors.New("deletion was not confirmed")
	ErrMemberNotFound     = errors.New("member not found")
	ErrPaymentNotFound    = errors.New("payment not found")
	ErrExpenseNotFound    = errors.New("expense not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already in use")
	ErrInvalidMonth       = errors.New("month must be between 0 and 11")
	ErrInvalidCategory    = errors.New("invalid expense category")
	ErrInvalidMethod      = errors.New("invalid payment method")
	ErrPasswordRequired   = errors.New("password is required for new users")
	ErrRateLimited        = errors.New("too many attempts, try again later")
)

// CorruptStateError reports a stored collection that does not match the expected record shape
type CorruptStateError struct {
	Key   string
	Index int
	Err   error
}

func (e *CorruptStateError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("corrupt state in %q: %v", e.Key, e.Err)
	}
	return fmt.Sprintf("corrupt state in %q at record %d: %v", e.Key, e.Index, e.Err)
}

func (e *CorruptStateError) Unwrap() error {
	return e.Err
}
