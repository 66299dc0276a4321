package errors

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid auth token")
	ErrInvalidSpace       = errors.New("unknown space type or sub-type")
	ErrInvalidDateRange   = errors.New("start date must precede end date")
	ErrForbidden          = errors.New("forbidden")
)

var sentinels = []error{
	ErrDuplicateEmail,
	ErrInvalidInput,
	ErrNotFound,
	ErrInvalidCredentials,
	ErrInvalidToken,
	ErrInvalidSpace,
	ErrInvalidDateRange,
	ErrForbidden,
}

// StoreError wraps failures reported by the persistence layer.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// WrapStore returns err wrapped into StoreError unless it is nil, already a StoreError
// or matches a domain sentinel.
func WrapStore(op string, err error) error {
	if err == nil {
		return nil
	}
	var storeErr *StoreError
	if errors.As(err, &storeErr) {
		return err
	}
	for _, sentinel := range sentinels {
		if errors.Is(err, sentinel) {
			return err
		}
	}
	return &StoreError{Op: op, Err: err}
}

// IsStoreError reports whether err originates from the persistence layer.
func IsStoreError(err error) bool {
	var storeErr *StoreError
	return errors.As(err, &storeErr)
}
