package models

import (
	"errors"
	"fmt"
	"time"
)

// Error taxonomy shared by the store, the protocols and the front ends.
var (
	ErrNotFound              = errors.New("not found")
	ErrInsufficientFunds     = errors.New("insufficient funds")
	ErrInvalidAmount         = errors.New("invalid amount")
	ErrDuplicateID           = errors.New("duplicate id")
	ErrCooldownActive        = errors.New("cooldown active")
	ErrSelfRestoreNotAllowed = errors.New("self restore not allowed")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrStorageFailure        = errors.New("storage failure")
)

var (
	ErrUserNotFound        = fmt.Errorf("user %w", ErrNotFound)
	ErrSenderNotFound      = fmt.Errorf("sender %w", ErrNotFound)
	ErrTransactionNotFound = fmt.Errorf("transaction %w", ErrNotFound)
	ErrBillNotFound        = fmt.Errorf("bill %w", ErrNotFound)
	ErrUnknownCode         = fmt.Errorf("backup code %w", ErrNotFound)
	ErrSessionNotFound     = fmt.Errorf("session %w", ErrNotFound)
	ErrCardNotFound        = fmt.Errorf("card %w", ErrNotFound)
	ErrEmptyWallet         = errors.New("empty wallet")
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrUsernameTaken       = errors.New("username already taken")
)

// CooldownError reports how long a user has to wait before claiming again.
type CooldownError struct {
	Remaining time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("cooldown active, %s remaining", e.Remaining.Round(time.Second))
}

func (e *CooldownError) Unwrap() error { return ErrCooldownActive }
