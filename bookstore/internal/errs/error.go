package errs

import (
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrOutOfStock         = errors.New("book is out of stock")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrTimeConflict       = errors.New("pickup time conflicts with another reservation")
	ErrNoOpenBasket       = errors.New("no open basket")
	ErrStoreFailure       = errors.New("store failure")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidArgument    = errors.New("invalid argument")
)

// LineError reports a single basket line that cannot be satisfied.
type LineError struct {
	ISBN      string `json:"isbn"`
	Title     string `json:"title"`
	Requested int    `json:"requested"`
	Available int    `json:"available"`
}

func (e *LineError) Error() string {
	return fmt.Sprintf("Not enough stock for %s. Available: %d", e.Title, e.Available)
}

func (e *LineError) Unwrap() error {
	return ErrInsufficientStock
}

// LineErrors extracts every LineError combined into err.
func LineErrors(err error) []*LineError {
	var out []*LineError
	for _, e := range multierr.Errors(err) {
		var le *LineError
		if errors.As(e, &le) {
			out = append(out, le)
		}
	}
	return out
}

// StoreFailure marks err as an infrastructure failure. Business errors pass through unchanged.
func StoreFailure(err error, op string) error {
	if err == nil || IsBusiness(err) {
		return err
	}
	return &storeError{op: op, cause: err}
}

func IsBusiness(err error) bool {
	for _, target := range []error{
		ErrNotFound, ErrAlreadyExists, ErrOutOfStock, ErrInsufficientStock,
		ErrTimeConflict, ErrNoOpenBasket, ErrInvalidCredentials, ErrForbidden, ErrInvalidArgument,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

type storeError struct {
	op    string
	cause error
}

func (e *storeError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrStoreFailure, e.op, e.cause)
}

func (e *storeError) Is(target error) bool {
	return target == ErrStoreFailure
}

func (e *storeError) Unwrap() error {
	return e.cause
}

type ErrorResponse struct {
	Message string       `json:"message"`
	Errors  []*LineError `json:"errors,omitempty"`
}
