package block

import (
	"fmt"
	"strings"
)

// ValidationError reports a block, meta or payload value that failed validation
type ValidationError struct {
	Type    string
	Kind    string
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewInvalidKindError creates an error for a kind tag that does not match the kind pattern
func NewInvalidKindError(kind string) *ValidationError {
	return &ValidationError{
		Type:    "InvalidKind",
		Kind:    kind,
		Field:   "kind",
		Value:   kind,
		Message: fmt.Sprintf("invalid block kind '%s': must match %s", kind, kindPattern),
	}
}

// NewInvalidIDError creates an error for an identifier that is not a valid UUID
func NewInvalidIDError(id string, cause error) *ValidationError {
	return &ValidationError{
		Type:    "InvalidID",
		Field:   "id",
		Value:   id,
		Message: fmt.Sprintf("invalid block id '%s': %v", id, cause),
	}
}

// NewInvalidEnumError creates an error for a value outside a closed enumeration
func NewInvalidEnumError(field, value string, allowed []string) *ValidationError {
	return &ValidationError{
		Type:    "InvalidEnumValue",
		Field:   field,
		Value:   value,
		Message: fmt.Sprintf("invalid %s '%s': expected one of %s", field, value, strings.Join(allowed, ", ")),
	}
}

// NewKindMismatchError creates an error for a record whose kind differs from the constructor's kind
func NewKindMismatchError(expected, actual string) *ValidationError {
	return &ValidationError{
		Type:    "KindMismatch",
		Kind:    actual,
		Field:   "kind",
		Value:   actual,
		Message: fmt.Sprintf("block kind '%s' does not match expected kind '%s'", actual, expected),
	}
}

// NewUnsupportedValueError creates an error for a payload or extra value that cannot be serialized
func NewUnsupportedValueError(path string, value interface{}) *ValidationError {
	return &ValidationError{
		Type:    "UnsupportedValue",
		Field:   path,
		Value:   value,
		Message: fmt.Sprintf("value at '%s' of type %T is not serializable", path, value),
	}
}

// NewPayloadSchemaError creates an error for a payload rejected by its kind's JSON schema
func NewPayloadSchemaError(kind string, details []string) *ValidationError {
	return &ValidationError{
		Type:    "PayloadSchema",
		Kind:    kind,
		Field:   "payload",
		Message: fmt.Sprintf("payload for kind '%s' failed schema validation:\n%s", kind, strings.Join(details, "\n")),
	}
}

// NewInvalidMetaError creates an error for a meta field that has the wrong shape
func NewInvalidMetaError(field string, value interface{}, reason string) *ValidationError {
	return &ValidationError{
		Type:    "InvalidMeta",
		Field:   joinPath("meta", field),
		Value:   value,
		Message: fmt.Sprintf("invalid meta field '%s': %s", field, reason),
	}
}
