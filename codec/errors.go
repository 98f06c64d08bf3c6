package codec

import "fmt"

// SerializationError represents any failure to encode or decode blocks.
// Err holds the underlying cause when there is one.
type SerializationError struct {
	Type    string
	Format  Format
	Message string
	Err     error
}

func (e *SerializationError) Error() string {
	return e.Message
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}

// NewSyntaxError creates an error for input that is not well-formed in its format
func NewSyntaxError(format Format, err error) *SerializationError {
	return &SerializationError{
		Type:    "Syntax",
		Format:  format,
		Message: fmt.Sprintf("failed to parse %s: %v", format, err),
		Err:     err,
	}
}

// NewInvalidDocumentError creates an error for well-formed input with the wrong shape
func NewInvalidDocumentError(format Format, reason string) *SerializationError {
	return &SerializationError{
		Type:    "InvalidDocument",
		Format:  format,
		Message: fmt.Sprintf("invalid %s document: %s", format, reason),
	}
}

// NewDecodeError creates an error for a document whose blocks could not be constructed
func NewDecodeError(format Format, err error) *SerializationError {
	return &SerializationError{
		Type:    "Decode",
		Format:  format,
		Message: fmt.Sprintf("failed to decode %s: %v", format, err),
		Err:     err,
	}
}

// NewEncodeError creates an error for a value that could not be emitted
func NewEncodeError(format Format, err error) *SerializationError {
	return &SerializationError{
		Type:    "Encode",
		Format:  format,
		Message: fmt.Sprintf("failed to encode %s: %v", format, err),
		Err:     err,
	}
}

// NewUnsupportedTypeError creates an error for a value or target type the codec cannot handle
func NewUnsupportedTypeError(format Format, reason string) *SerializationError {
	return &SerializationError{
		Type:    "UnsupportedType",
		Format:  format,
		Message: fmt.Sprintf("unsupported type for %s: %s", format, reason),
	}
}
