// Package code provides CodeBlock, a block kind defined outside the block package.
// It shows how third-party kinds plug into a registry.
package code

import (
	"github.com/CoreLab-Tech/BlockKit/block"
	"github.com/CoreLab-Tech/BlockKit/registry"
)

const (
	Kind            = "code"
	DefaultLanguage = "python"
)

var schema = block.NewPayloadSchema(map[string]any{
	"type":     "object",
	"required": []any{"code"},
	"properties": map[string]any{
		"code":         map[string]any{"type": "string"},
		"language":     map[string]any{"type": "string", "minLength": 1},
		"line_numbers": map[string]any{"type": "boolean"},
	},
})

// CodeBlock holds source code to be shown with syntax highlighting
type CodeBlock struct {
	*block.Base

	code        string
	language    string
	lineNumbers bool
}

// Descriptor registers CodeBlock
var Descriptor = block.NewDescriptor(Kind, schema, decode)

// Register adds CodeBlock to reg
func Register(reg *registry.Registry) error {
	return reg.Register(Descriptor)
}

// New creates a code block. An empty language defaults to python.
func New(source, language string, lineNumbers bool, opts ...block.Option) (*CodeBlock, error) {
	if language == "" {
		language = DefaultLanguage
	}
	base, err := block.New(Kind, map[string]any{
		"code":         source,
		"language":     language,
		"line_numbers": lineNumbers,
	}, opts...)
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(Kind, base.Payload()); err != nil {
		return nil, err
	}
	return fromBase(base), nil
}

func decode(rec block.Record) (*CodeBlock, error) {
	base, err := block.FromRecord(rec)
	if err != nil {
		return nil, err
	}
	return fromBase(base), nil
}

func fromBase(base *block.Base) *CodeBlock {
	payload := base.Payload()
	b := &CodeBlock{Base: base, language: DefaultLanguage, lineNumbers: true}
	if s, ok := payload["code"].(string); ok {
		b.code = s
	}
	if s, ok := payload["language"].(string); ok && s != "" {
		b.language = s
	}
	if v, ok := payload["line_numbers"].(bool); ok {
		b.lineNumbers = v
	}
	return b
}

// Code returns the source text
func (b *CodeBlock) Code() string { return b.code }

// Language returns the highlighting language
func (b *CodeBlock) Language() string { return b.language }

// LineNumbers reports whether line numbers are shown
func (b *CodeBlock) LineNumbers() bool { return b.lineNumbers }

// UpdateMeta returns a copy of the block carrying meta
func (b *CodeBlock) UpdateMeta(meta block.Meta) (*CodeBlock, error) {
	rec := b.Record()
	rec.Meta = &meta
	return decode(rec)
}
