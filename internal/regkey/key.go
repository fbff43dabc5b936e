package regkey

import "strings"

// Sep separates the components of a register key.
const Sep = "."

// Reserved first components for single-namespace keys.
const (
	NamespaceFunction   = "function"
	NamespaceCollection = "collection"
	NamespaceFile       = "file"
)

// Join builds a register key from 1 to 3 components. Empty trailing
// components are dropped, so Join("Storage", "Great_Lake") yields a
// two-part instance key.
func Join(first string, rest ...string) string {
	var sb strings.Builder
	sb.WriteString(first)
	for _, part := range rest {
		if part == "" {
			break
		}
		sb.WriteString(Sep)
		sb.WriteString(part)
	}
	return sb.String()
}

// Instance builds the key under which an instance of the given class is
// registered.
func Instance(className, instanceName string) string {
	return Join(className, instanceName)
}

// Member builds the key for a member field of a named instance.
func Member(className, instanceName, fieldName string) string {
	return Join(className, instanceName, fieldName)
}

// Function builds a key in the reserved function namespace.
func Function(name string) string {
	return Join(NamespaceFunction, name)
}

// Collection builds a key in the reserved collection namespace.
func Collection(name string) string {
	return Join(NamespaceCollection, name)
}

// File builds a key in the reserved file namespace.
func File(name string) string {
	return Join(NamespaceFile, name)
}
