package regkey

import "fmt"

// InvalidIdentifierError reports a name that failed validation before it
// could become part of a register key.
type InvalidIdentifierError struct {
	Name string
}

func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("invalid identifier %q: must start with a letter followed by letters, digits or underscores", e.Name)
}

// IsValidName reports whether a name may be used as a key component.
// A valid name is of the form (alpha) (alphanum | '_')*.
func IsValidName(name string) bool {
	if len(name) == 0 || !isAlpha(name[0]) {
		return false
	}
	for i := 1; i < len(name); i++ {
		c := name[i]
		if !isAlpha(c) && !isDigit(c) && c != '_' {
			return false
		}
	}
	return true
}

// ValidateName returns an InvalidIdentifierError if the name may not be used
// as a key component.
func ValidateName(name string) error {
	if !IsValidName(name) {
		return &InvalidIdentifierError{Name: name}
	}
	return nil
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
