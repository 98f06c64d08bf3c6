package block

import (
	"fmt"
	"reflect"
)

// DecodeFunc constructs a block of one kind from a generic record
type DecodeFunc func(rec Record) (Block, error)

// Descriptor tells a registry how to build one block kind.
//
// Kind is the tag the descriptor is registered under. When Kind is empty the tag is
// derived from Name with DeriveKind. Type, when set, is the Go type Decode returns and
// lets callers ask for a block by its Go type.
type Descriptor struct {
	Kind   string
	Name   string
	Schema *PayloadSchema
	Type   reflect.Type
	Decode DecodeFunc
}

// NewDescriptor builds a descriptor for the concrete block type T
func NewDescriptor[T Block](kind string, schema *PayloadSchema, decode func(rec Record) (T, error)) Descriptor {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	return Descriptor{
		Kind:   kind,
		Name:   typ.String(),
		Schema: schema,
		Type:   typ,
		Decode: func(rec Record) (Block, error) {
			b, err := decode(rec)
			if err != nil {
				return nil, err
			}
			return b, nil
		},
	}
}

// KindTag returns the tag the descriptor registers under
func (d Descriptor) KindTag() string {
	if d.Kind != "" {
		return d.Kind
	}
	if d.Name != "" {
		return DeriveKind(d.Name)
	}
	return ""
}

// Build validates rec against the descriptor and constructs the block.
// A record with no kind takes the descriptor's kind.
func (d Descriptor) Build(rec Record) (Block, error) {
	kind := d.KindTag()
	if d.Decode == nil {
		return nil, fmt.Errorf("descriptor for kind '%s' has no decode function", kind)
	}
	if rec.Kind == "" {
		rec.Kind = kind
	}
	if rec.Kind != kind {
		return nil, NewKindMismatchError(kind, rec.Kind)
	}

	payload, err := NormalizeMap(rec.Payload)
	if err != nil {
		return nil, err
	}
	if err := d.Schema.Validate(kind, payload); err != nil {
		return nil, err
	}
	rec.Payload = payload

	return d.Decode(rec)
}
