package blocklist

import (
	"fmt"

	"github.com/google/uuid"
)

// DuplicateError reports a block whose id is already present in the list
type DuplicateError struct {
	ID      uuid.UUID
	Message string
}

func (e *DuplicateError) Error() string {
	return e.Message
}

// NewDuplicateError creates an error for an id collision
func NewDuplicateError(id uuid.UUID) *DuplicateError {
	return &DuplicateError{
		ID:      id,
		Message: fmt.Sprintf("block with id %s already exists in the list", id),
	}
}

// NotFoundError reports an id that is not present in the list
type NotFoundError struct {
	ID      uuid.UUID
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// NewNotFoundError creates an error for a missing id
func NewNotFoundError(id uuid.UUID) *NotFoundError {
	return &NotFoundError{
		ID:      id,
		Message: fmt.Sprintf("block with id %s not found", id),
	}
}

// IndexError reports a position outside the accepted range
type IndexError struct {
	Index   int
	Min     int
	Max     int
	Message string
}

func (e *IndexError) Error() string {
	return e.Message
}

// NewIndexError creates an error for index outside [min, max]
func NewIndexError(index, min, max int) *IndexError {
	msg := fmt.Sprintf("index %d out of range [%d, %d]", index, min, max)
	if max < min {
		msg = fmt.Sprintf("index %d out of range: list is empty", index)
	}
	return &IndexError{
		Index:   index,
		Min:     min,
		Max:     max,
		Message: msg,
	}
}

// NilBlockError reports a nil block handed to a list operation
type NilBlockError struct {
	Index   int
	Message string
}

func (e *NilBlockError) Error() string {
	return e.Message
}

// NewNilBlockError creates an error for a nil block at index
func NewNilBlockError(index int) *NilBlockError {
	return &NilBlockError{
		Index:   index,
		Message: fmt.Sprintf("block at index %d is nil", index),
	}
}
