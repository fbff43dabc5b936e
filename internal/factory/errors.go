package factory

import (
	"errors"
	"fmt"
)

// Sentinel errors for the construction path.
var (
	// ErrUnknownClass is returned when no maker is registered for a class name.
	ErrUnknownClass = errors.New("unknown class")

	// ErrMemberAssignment wraps a failure while staging one field of a new
	// instance.
	ErrMemberAssignment = errors.New("member assignment failure")
)

// UnknownClassError reports a Make request for a class no maker was
// registered for.
type UnknownClassError struct {
	Class string
}

func (e *UnknownClassError) Error() string {
	return fmt.Sprintf("class %q not registered with the object factory", e.Class)
}

func (e *UnknownClassError) Is(target error) bool {
	return target == ErrUnknownClass
}

// MemberAssignmentError annotates a staging failure with the field and class
// it occurred on. The wired instance stays in the register; partial
// construction is not rolled back.
type MemberAssignmentError struct {
	Class string
	Field string
	Err   error
}

func (e *MemberAssignmentError) Error() string {
	return fmt.Sprintf("member %q not defined for %s: %v", e.Field, e.Class, e.Err)
}

func (e *MemberAssignmentError) Is(target error) bool {
	return target == ErrMemberAssignment
}

func (e *MemberAssignmentError) Unwrap() error {
	return e.Err
}
