package registry

import "sync"

// Process-wide registry, built lazily on first access
var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the process-wide registry holding the built-in kinds.
// Tests that register kinds should use New instead.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		r, err := NewWithBuiltins()
		if err != nil {
			panic(err)
		}
		defaultRegistry = r
	})
	return defaultRegistry
}

// ResetDefault discards the process-wide registry (for testing only)
func ResetDefault() {
	defaultRegistry = nil
	defaultRegistryOnce = sync.Once{}
}
