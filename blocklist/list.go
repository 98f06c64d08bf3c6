// Package blocklist provides List, an ordered persistent collection of blocks.
//
// Every operation that changes a List returns a new List and leaves the receiver as
// it was. Identifiers are unique within one List.
package blocklist

import (
	"reflect"

	"github.com/google/uuid"

	"github.com/CoreLab-Tech/BlockKit/block"
)

// List is an ordered collection of blocks with distinct ids
type List struct {
	blocks []block.Block
	index  map[uuid.UUID]int
}

// Empty returns a list with no blocks
func Empty() *List {
	return &List{index: map[uuid.UUID]int{}}
}

// New builds a list from blocks in order. Repeated ids are a DuplicateError and a nil
// block is a NilBlockError.
func New(blocks ...block.Block) (*List, error) {
	l := &List{
		blocks: make([]block.Block, 0, len(blocks)),
		index:  make(map[uuid.UUID]int, len(blocks)),
	}
	for i, b := range blocks {
		if isNil(b) {
			return nil, NewNilBlockError(i)
		}
		if _, exists := l.index[b.ID()]; exists {
			return nil, NewDuplicateError(b.ID())
		}
		l.index[b.ID()] = len(l.blocks)
		l.blocks = append(l.blocks, b)
	}
	return l, nil
}

// isNil also catches a typed nil pointer wrapped in the interface
func isNil(b block.Block) bool {
	if b == nil {
		return true
	}
	rv := reflect.ValueOf(b)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// fromSlice adopts blocks, which must already have distinct ids
func fromSlice(blocks []block.Block) *List {
	index := make(map[uuid.UUID]int, len(blocks))
	for i, b := range blocks {
		index[b.ID()] = i
	}
	return &List{blocks: blocks, index: index}
}

// Len returns the number of blocks
func (l *List) Len() int { return len(l.blocks) }

// At returns the block at position i. It panics when i is out of range.
func (l *List) At(i int) block.Block { return l.blocks[i] }

// Blocks returns the blocks in order
func (l *List) Blocks() []block.Block {
	out := make([]block.Block, len(l.blocks))
	copy(out, l.blocks)
	return out
}

// IDs returns the block ids in order
func (l *List) IDs() []uuid.UUID {
	out := make([]uuid.UUID, len(l.blocks))
	for i, b := range l.blocks {
		out[i] = b.ID()
	}
	return out
}

// IndexOf returns the position of the block with id
func (l *List) IndexOf(id uuid.UUID) (int, bool) {
	i, ok := l.index[id]
	return i, ok
}

// Contains reports whether a block with id is present
func (l *List) Contains(id uuid.UUID) bool {
	_, ok := l.index[id]
	return ok
}

// FindByID returns the block with id
func (l *List) FindByID(id uuid.UUID) (block.Block, error) {
	i, ok := l.index[id]
	if !ok {
		return nil, NewNotFoundError(id)
	}
	return l.blocks[i], nil
}

// Add returns a new list with b appended
func (l *List) Add(b block.Block) (*List, error) {
	return l.AddAt(b, len(l.blocks))
}

// AddAt returns a new list with b inserted at index, which must be in [0, Len()]
func (l *List) AddAt(b block.Block, index int) (*List, error) {
	if isNil(b) {
		return nil, NewNilBlockError(index)
	}
	if l.Contains(b.ID()) {
		return nil, NewDuplicateError(b.ID())
	}
	if index < 0 || index > len(l.blocks) {
		return nil, NewIndexError(index, 0, len(l.blocks))
	}

	blocks := make([]block.Block, 0, len(l.blocks)+1)
	blocks = append(blocks, l.blocks[:index]...)
	blocks = append(blocks, b)
	blocks = append(blocks, l.blocks[index:]...)
	return fromSlice(blocks), nil
}

// Remove returns a new list without the block with id
func (l *List) Remove(id uuid.UUID) (*List, error) {
	i, ok := l.index[id]
	if !ok {
		return nil, NewNotFoundError(id)
	}

	blocks := make([]block.Block, 0, len(l.blocks)-1)
	blocks = append(blocks, l.blocks[:i]...)
	blocks = append(blocks, l.blocks[i+1:]...)
	return fromSlice(blocks), nil
}

// Move returns a new list with the block with id relocated to newIndex.
// newIndex must be in [0, Len()-1]. When the block is already there the receiver is
// returned unchanged.
func (l *List) Move(id uuid.UUID, newIndex int) (*List, error) {
	current, ok := l.index[id]
	if !ok {
		return nil, NewNotFoundError(id)
	}
	if newIndex < 0 || newIndex >= len(l.blocks) {
		return nil, NewIndexError(newIndex, 0, len(l.blocks)-1)
	}
	if current == newIndex {
		return l, nil
	}

	moved := l.blocks[current]
	rest := make([]block.Block, 0, len(l.blocks)-1)
	rest = append(rest, l.blocks[:current]...)
	rest = append(rest, l.blocks[current+1:]...)

	blocks := make([]block.Block, 0, len(l.blocks))
	blocks = append(blocks, rest[:newIndex]...)
	blocks = append(blocks, moved)
	blocks = append(blocks, rest[newIndex:]...)
	return fromSlice(blocks), nil
}

// Replace returns a new list where the block sharing b's id is swapped for b
func (l *List) Replace(b block.Block) (*List, error) {
	if isNil(b) {
		return nil, NewNilBlockError(-1)
	}
	i, ok := l.index[b.ID()]
	if !ok {
		return nil, NewNotFoundError(b.ID())
	}

	blocks := l.Blocks()
	blocks[i] = b
	return fromSlice(blocks), nil
}

// Equal reports whether both lists hold equal blocks in the same order
func (l *List) Equal(other *List) bool {
	if l == nil || other == nil {
		return l == other
	}
	if len(l.blocks) != len(other.blocks) {
		return false
	}
	for i := range l.blocks {
		if !block.Equal(l.blocks[i], other.blocks[i]) {
			return false
		}
	}
	return true
}
