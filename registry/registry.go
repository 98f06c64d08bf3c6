// Package registry maps block kind tags to the descriptors that construct them.
//
// A Registry is an explicit value: callers may hold several independent instances.
// Default returns a process-wide instance preloaded with the built-in kinds.
package registry

import (
	"reflect"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/CoreLab-Tech/BlockKit/block"
	"github.com/CoreLab-Tech/BlockKit/internal/logger"
)

// Registry provides kind tag lookups for decoding blocks
type Registry struct {
	mu          sync.RWMutex
	descriptors map[string]block.Descriptor
	byType      map[reflect.Type]string
	log         zerolog.Logger
}

// Option customizes a Registry
type Option func(*Registry)

// WithLogger sets the logger used for registration events
func WithLogger(log zerolog.Logger) Option {
	return func(r *Registry) {
		r.log = log
	}
}

// New creates an empty registry. Without WithLogger it logs according to
// BLOCKKIT_LOG_LEVEL and is silent when that is unset.
func New(opts ...Option) *Registry {
	r := &Registry{
		descriptors: make(map[string]block.Descriptor),
		byType:      make(map[reflect.Type]string),
		log:         logger.FromEnv("registry"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewWithBuiltins creates a registry holding every built-in block kind
func NewWithBuiltins(opts ...Option) (*Registry, error) {
	r := New(opts...)
	for _, d := range block.Builtins() {
		if err := r.Register(d); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a descriptor under its kind tag. An existing tag is never overwritten.
func (r *Registry) Register(d block.Descriptor) error {
	kind := d.KindTag()
	if kind == "" {
		return NewInvalidDescriptorError(kind, "descriptor has neither a kind nor a type name")
	}
	if err := block.ValidateKind(kind); err != nil {
		return NewInvalidDescriptorError(kind, err.Error())
	}
	if d.Decode == nil {
		return NewInvalidDescriptorError(kind, "descriptor has no decode function")
	}
	d.Kind = kind

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.descriptors[kind]; exists {
		return NewDuplicateKindError(kind)
	}
	r.descriptors[kind] = d
	if d.Type != nil {
		if _, taken := r.byType[d.Type]; !taken {
			r.byType[d.Type] = kind
		}
	}

	r.log.Debug().Str("kind", kind).Str("type", d.Name).Msg("registered block kind")
	return nil
}

// MustRegister is like Register but panics on error
func (r *Registry) MustRegister(d block.Descriptor) {
	if err := r.Register(d); err != nil {
		panic(err)
	}
}

// Get returns the descriptor registered under kind
func (r *Registry) Get(kind string) (block.Descriptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.descriptors[kind]
	if !ok {
		return block.Descriptor{}, NewUnknownKindError(kind)
	}
	return d, nil
}

// Has reports whether kind is registered
func (r *Registry) Has(kind string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.descriptors[kind]
	return ok
}

// ListTypes returns every registered kind tag in sorted order
func (r *Registry) ListTypes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]string, 0, len(r.descriptors))
	for kind := range r.descriptors {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

// KindFor returns the kind tag registered for the Go type typ
func (r *Registry) KindFor(typ reflect.Type) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	kind, ok := r.byType[typ]
	return kind, ok
}

// Build decodes rec with the descriptor registered under rec.Kind
func (r *Registry) Build(rec block.Record) (block.Block, error) {
	d, err := r.Get(rec.Kind)
	if err != nil {
		return nil, err
	}
	return d.Build(rec)
}
