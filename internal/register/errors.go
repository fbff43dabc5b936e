package register

import (
	"errors"
	"fmt"
)

// Common sentinel errors. The structured types below match these through
// errors.Is so callers can classify failures without knowing the concrete
// type.
var (
	// ErrNotFound is returned when a key, type or instance is absent on lookup.
	ErrNotFound = errors.New("not found in object register")

	// ErrConversion is returned when a staged string cannot be parsed into
	// its target type.
	ErrConversion = errors.New("conversion failure")
)

// KeyNotFoundError reports a key that has no entry in the relevant store.
type KeyNotFoundError struct {
	Key string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("couldn't find key %q in object register", e.Key)
}

func (e *KeyNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// StoreNotFoundError reports a lookup for a type that no store has ever been
// created for. Requesting an existing key under the wrong type surfaces as
// this error or as KeyNotFoundError; it never coerces.
type StoreNotFoundError struct {
	Type string
}

func (e *StoreNotFoundError) Error() string {
	return fmt.Sprintf("couldn't find object register for type %s", e.Type)
}

func (e *StoreNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ConversionError reports a staged string that could not be converted into
// the target type during Reset.
type ConversionError struct {
	Value  string
	Type   string
	Reason string
}

func (e *ConversionError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("couldn't convert %q to %s", e.Value, e.Type)
	}
	return fmt.Sprintf("couldn't convert %q to %s: %s", e.Value, e.Type, e.Reason)
}

func (e *ConversionError) Is(target error) bool {
	return target == ErrConversion
}

// NewConversionError creates a ConversionError for the given value and
// target type description.
func NewConversionError(value, typeName, reason string) error {
	return &ConversionError{Value: value, Type: typeName, Reason: reason}
}

// IsNotFound reports whether err classifies as a missing key, store or
// instance.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConversion reports whether err classifies as a conversion failure.
func IsConversion(err error) bool {
	return errors.Is(err, ErrConversion)
}
