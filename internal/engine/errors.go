package engine

import (
	"errors"
	"fmt"

	"github.com/roach88/albwlogic/internal/item"
)

// RuntimeError represents an error surfaced by a query.
//
// The search itself is total; every RuntimeError comes from the query
// boundary (token resolution) or from building the world.
type RuntimeError struct {
	// Code identifies the error category.
	Code RuntimeErrorCode

	// Message is a human-readable description.
	Message string

	// Err is the underlying cause, if any.
	Err error
}

// RuntimeErrorCode categorizes runtime errors.
type RuntimeErrorCode string

const (
	// ErrCodeUnknownItem indicates a token with no registered item. It
	// signals a catalog mismatch between host and engine.
	ErrCodeUnknownItem RuntimeErrorCode = "UNKNOWN_ITEM"

	// ErrCodeWorldInvalid indicates the world data failed to build.
	ErrCodeWorldInvalid RuntimeErrorCode = "WORLD_INVALID"

	// ErrCodePoolCapacity indicates the world has too few item slots for
	// the progression pool.
	ErrCodePoolCapacity RuntimeErrorCode = "POOL_CAPACITY"
)

// Error implements the error interface.
func (e *RuntimeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (e *RuntimeError) Unwrap() error {
	return e.Err
}

// IsUnknownItem returns true if err is or wraps an unknown token error.
func IsUnknownItem(err error) bool {
	var re *RuntimeError
	if errors.As(err, &re) && re.Code == ErrCodeUnknownItem {
		return true
	}
	var ue *item.UnknownTokenError
	return errors.As(err, &ue)
}

func newUnknownItemError(err error) *RuntimeError {
	return &RuntimeError{Code: ErrCodeUnknownItem, Message: "inventory token not in item catalog", Err: err}
}

func newWorldError(err error) *RuntimeError {
	return &RuntimeError{Code: ErrCodeWorldInvalid, Message: "build world graph", Err: err}
}

func newPoolError(err error) *RuntimeError {
	return &RuntimeError{Code: ErrCodePoolCapacity, Message: "build item pools", Err: err}
}
