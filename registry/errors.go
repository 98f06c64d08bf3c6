package registry

import "fmt"

// RegistryError represents errors from registering or looking up block kinds
type RegistryError struct {
	Type    string
	Kind    string
	Message string
}

func (e *RegistryError) Error() string {
	return e.Message
}

// NewDuplicateKindError creates an error for a kind tag that is already registered
func NewDuplicateKindError(kind string) *RegistryError {
	return &RegistryError{
		Type:    "DuplicateKind",
		Kind:    kind,
		Message: fmt.Sprintf("block kind '%s' is already registered", kind),
	}
}

// NewInvalidDescriptorError creates an error for a descriptor that cannot be registered
func NewInvalidDescriptorError(kind, reason string) *RegistryError {
	return &RegistryError{
		Type:    "InvalidDescriptor",
		Kind:    kind,
		Message: fmt.Sprintf("cannot register block kind '%s': %s", kind, reason),
	}
}

// NewUnknownKindError creates an error for a kind tag with no registered descriptor
func NewUnknownKindError(kind string) *RegistryError {
	return &RegistryError{
		Type:    "UnknownKind",
		Kind:    kind,
		Message: fmt.Sprintf("unknown block kind '%s'", kind),
	}
}
