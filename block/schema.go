package block

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// PayloadSchema is a JSON Schema (draft-07) for the payload of one block kind.
// The schema is compiled on first use and reused afterwards.
type PayloadSchema struct {
	raw map[string]any

	once     sync.Once
	compiled *gojsonschema.Schema
	err      error
}

// NewPayloadSchema wraps a JSON schema document given as a generic map
func NewPayloadSchema(schema map[string]any) *PayloadSchema {
	return &PayloadSchema{raw: schema}
}

// Raw returns the schema document
func (s *PayloadSchema) Raw() map[string]any {
	return copyMap(s.raw)
}

func (s *PayloadSchema) compile() (*gojsonschema.Schema, error) {
	s.once.Do(func() {
		schemaBytes, err := json.Marshal(s.raw)
		if err != nil {
			s.err = fmt.Errorf("failed to marshal payload schema: %w", err)
			return
		}
		s.compiled, s.err = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaBytes))
		if s.err != nil {
			s.err = fmt.Errorf("failed to compile payload schema: %w", s.err)
		}
	})
	return s.compiled, s.err
}

// Validate checks payload against the schema for the given kind
func (s *PayloadSchema) Validate(kind string, payload map[string]any) error {
	if s == nil || s.raw == nil {
		return nil
	}

	schema, err := s.compile()
	if err != nil {
		return NewPayloadSchemaError(kind, []string{err.Error()})
	}

	if payload == nil {
		payload = map[string]any{}
	}
	result, err := schema.Validate(gojsonschema.NewGoLoader(payload))
	if err != nil {
		return NewPayloadSchemaError(kind, []string{err.Error()})
	}
	if result.Valid() {
		return nil
	}

	details := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		details = append(details, fmt.Sprintf("  - %s", desc))
	}
	ve := NewPayloadSchemaError(kind, details)
	ve.Value = payload
	return ve
}

// Schema helpers used by the built-in kinds

func objectSchema(required []string, properties map[string]any) map[string]any {
	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		req := make([]any, len(required))
		for i, r := range required {
			req[i] = r
		}
		schema["required"] = req
	}
	return schema
}

func stringProp() map[string]any {
	return map[string]any{"type": "string"}
}

func nonNegativeIntProp() map[string]any {
	return map[string]any{"type": "integer", "minimum": 0}
}

func arrayOf(items map[string]any) map[string]any {
	return map[string]any{"type": "array", "items": items}
}
