// Package block defines the content block entity family: the shared record shape
// (id, kind, meta, payload), kind tag validation, and the built-in block kinds.
//
// Every kind is a typed view over a Base record. New kinds, including ones defined
// outside this module, are described by a Descriptor and resolved at decode time
// through a registry.
package block

import (
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

const kindPattern = `^[a-z][a-z0-9_]*$`

var kindRegexp = regexp.MustCompile(kindPattern)

// ValidKind reports whether kind is a usable kind tag
func ValidKind(kind string) bool {
	return kindRegexp.MatchString(kind)
}

// ValidateKind returns a ValidationError when kind is not a usable kind tag
func ValidateKind(kind string) error {
	if !ValidKind(kind) {
		return NewInvalidKindError(kind)
	}
	return nil
}

// DeriveKind turns a Go type name into a kind tag.
// The name is converted to snake_case and a single trailing "_block" is stripped:
//
//	TextBlock      -> text
//	TestBlockBlock -> test_block
//	HTMLSnippet    -> html_snippet
func DeriveKind(typeName string) string {
	if i := strings.LastIndex(typeName, "."); i >= 0 {
		typeName = typeName[i+1:]
	}
	typeName = strings.TrimLeft(typeName, "*")

	runes := []rune(typeName)
	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1]))
			nextLower := i > 0 && i+1 < len(runes) && unicode.IsLower(runes[i+1]) && unicode.IsUpper(runes[i-1])
			if prevLower || nextLower {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}

	return strings.TrimSuffix(b.String(), "_block")
}

// Block is the capability shared by every block kind
type Block interface {
	ID() uuid.UUID
	Kind() string
	Meta() Meta
	// Payload returns a deep copy of the kind-specific fields
	Payload() map[string]any
	// Record returns the generic field set the block was built from
	Record() Record
}

// Record is the generic field set every block kind is constructed from.
// An empty ID means a new identifier is generated; a nil Meta means DefaultMeta.
type Record struct {
	ID      string
	Kind    string
	Meta    *Meta
	Payload map[string]any
}

// Option customizes block construction
type Option func(*options)

type options struct {
	id   *uuid.UUID
	meta *Meta
}

// WithID sets the block identifier instead of generating one
func WithID(id uuid.UUID) Option {
	return func(o *options) {
		o.id = &id
	}
}

// WithMeta sets the block metadata instead of DefaultMeta.
// Zero timestamps are defaulted the way NewMeta defaults them.
func WithMeta(meta Meta) Option {
	return func(o *options) {
		m := meta.stamped()
		o.meta = &m
	}
}

// Base is the record shape embedded by every block kind
type Base struct {
	id      uuid.UUID
	kind    string
	meta    Meta
	payload map[string]any
}

var _ Block = (*Base)(nil)

// New validates kind and payload and builds a Base block
func New(kind string, payload map[string]any, opts ...Option) (*Base, error) {
	if err := ValidateKind(kind); err != nil {
		return nil, err
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	normalized, err := normalizeMap("payload", payload)
	if err != nil {
		if ve, ok := err.(*ValidationError); ok {
			ve.Kind = kind
		}
		return nil, err
	}

	b := &Base{
		kind:    kind,
		payload: normalized,
	}
	if o.id != nil {
		b.id = *o.id
	} else {
		b.id = uuid.New()
	}
	if o.meta != nil {
		b.meta = *o.meta
	} else {
		b.meta = DefaultMeta()
	}
	return b, nil
}

// FromRecord builds a Base block from a generic record.
// A non-empty rec.ID must be a valid UUID; it is never replaced by a generated one.
func FromRecord(rec Record) (*Base, error) {
	var opts []Option
	if rec.ID != "" {
		id, err := uuid.Parse(rec.ID)
		if err != nil {
			return nil, NewInvalidIDError(rec.ID, err)
		}
		opts = append(opts, WithID(id))
	}
	if rec.Meta != nil {
		opts = append(opts, WithMeta(*rec.Meta))
	}
	return New(rec.Kind, rec.Payload, opts...)
}

// ID returns the block identifier
func (b *Base) ID() uuid.UUID { return b.id }

// Kind returns the kind tag
func (b *Base) Kind() string { return b.kind }

// Meta returns the block metadata
func (b *Base) Meta() Meta { return b.meta.clone() }

// Payload returns a deep copy of the kind-specific fields
func (b *Base) Payload() map[string]any { return copyMap(b.payload) }

// Record returns the generic field set of the block
func (b *Base) Record() Record {
	meta := b.meta.clone()
	return Record{
		ID:      b.id.String(),
		Kind:    b.kind,
		Meta:    &meta,
		Payload: copyMap(b.payload),
	}
}

// withMeta returns a copy of b carrying meta and the same id
func (b *Base) withMeta(meta Meta) *Base {
	return &Base{
		id:      b.id,
		kind:    b.kind,
		meta:    meta.stamped(),
		payload: b.payload,
	}
}

// Equal reports whether two blocks carry the same id, kind, meta and payload
func Equal(a, b Block) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.ID() != b.ID() || a.Kind() != b.Kind() {
		return false
	}
	if !a.Meta().Equal(b.Meta()) {
		return false
	}
	return reflect.DeepEqual(a.Payload(), b.Payload())
}
