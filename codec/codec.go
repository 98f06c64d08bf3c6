// Package codec encodes blocks and block lists to JSON, YAML and CBOR and decodes them
// back through a registry.
//
// Block document:
//
//	{"id": "...", "kind": "text", "meta": {"created_at": "...", "updated_at": "...",
//	 "is_favorite": false, "tags": [], "extra": {}}, "payload": {...}}
//
// List document:
//
//	{"blocks": [<block document>, ...]}
package codec

import (
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/CoreLab-Tech/BlockKit/block"
	"github.com/CoreLab-Tech/BlockKit/blocklist"
	"github.com/CoreLab-Tech/BlockKit/internal/logger"
	"github.com/CoreLab-Tech/BlockKit/registry"
)

// Format names a wire encoding
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	CBOR Format = "cbor"
)

// Formats lists every supported Format
var Formats = []Format{JSON, YAML, CBOR}

// ParseFormat resolves a format name case-insensitively. "yml" is accepted for YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "cbor":
		return CBOR, nil
	}
	return "", NewUnsupportedTypeError(Format(s), "unknown format")
}

const (
	DefaultJSONIndent = 2
	DefaultYAMLIndent = 2
)

// Config holds codec output settings
type Config struct {
	// JSONIndent is the number of spaces per nesting level; 0 emits compact JSON
	JSONIndent int
	YAMLIndent int
	Logger     zerolog.Logger
}

// DefaultConfig returns config from environment variables or defaults
//
// Environment variables:
//   - BLOCKKIT_JSON_INDENT: spaces per JSON nesting level (default: 2)
//   - BLOCKKIT_YAML_INDENT: spaces per YAML nesting level (default: 2)
//   - BLOCKKIT_LOG_LEVEL, BLOCKKIT_LOG_FILE: see logger.FromEnv (default: no logging)
func DefaultConfig() Config {
	return Config{
		JSONIndent: envInt("BLOCKKIT_JSON_INDENT", DefaultJSONIndent, 0),
		YAMLIndent: envInt("BLOCKKIT_YAML_INDENT", DefaultYAMLIndent, 1),
		Logger:     logger.FromEnv("codec"),
	}
}

func envInt(name string, def, min int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < min {
		return def
	}
	return n
}

// Option is a functional option for configuring a Codec
type Option func(*Config)

// WithJSONIndent sets the JSON indentation width
func WithJSONIndent(n int) Option {
	return func(c *Config) {
		if n >= 0 {
			c.JSONIndent = n
		}
	}
}

// WithYAMLIndent sets the YAML indentation width
func WithYAMLIndent(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.YAMLIndent = n
		}
	}
}

// WithLogger sets the logger used to report decode failures
func WithLogger(log zerolog.Logger) Option {
	return func(c *Config) {
		c.Logger = log
	}
}

// Codec converts blocks and lists to and from their wire documents.
// It is safe for concurrent use.
type Codec struct {
	reg    *registry.Registry
	config Config
}

// New creates a codec resolving kinds through reg
func New(reg *registry.Registry, opts ...Option) *Codec {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return &Codec{reg: reg, config: config}
}

// Default returns a codec bound to the process-wide registry
func Default(opts ...Option) *Codec {
	return New(registry.Default(), opts...)
}

// Registry returns the registry used to resolve kinds
func (c *Codec) Registry() *registry.Registry { return c.reg }

// Config returns the codec settings
func (c *Codec) Config() Config { return c.config }

// EncodeBlock emits the block document for b
func (c *Codec) EncodeBlock(b block.Block, format Format) ([]byte, error) {
	if isNilBlock(b) {
		return nil, NewUnsupportedTypeError(format, "nil block")
	}
	return c.marshal(blockDocument(b), format)
}

// EncodeList emits the list document for l
func (c *Codec) EncodeList(l *blocklist.List, format Format) ([]byte, error) {
	if l == nil {
		return nil, NewUnsupportedTypeError(format, "nil list")
	}
	return c.marshal(listDocument(l.Blocks()), format)
}

var blockType = reflect.TypeOf((*block.Block)(nil)).Elem()

// Encode emits v, which must be a block, a *blocklist.List or a slice of blocks.
// A slice is emitted as a list document. A []any qualifies when every element is a block.
func (c *Codec) Encode(v any, format Format) ([]byte, error) {
	switch val := v.(type) {
	case nil:
		return nil, NewUnsupportedTypeError(format, "nil value")
	case *blocklist.List:
		return c.EncodeList(val, format)
	case block.Block:
		return c.EncodeBlock(val, format)
	case []block.Block:
		return c.encodeSlice(val, format)
	case []any:
		blocks := make([]block.Block, len(val))
		for i, item := range val {
			b, ok := item.(block.Block)
			if !ok && item != nil {
				return nil, NewUnsupportedTypeError(format, "[]any element "+strconv.Itoa(i)+" of type "+reflect.TypeOf(item).String())
			}
			blocks[i] = b
		}
		return c.encodeSlice(blocks, format)
	}

	rv := reflect.ValueOf(v)
	if (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) && rv.Type().Elem().Implements(blockType) {
		blocks := make([]block.Block, rv.Len())
		for i := range blocks {
			if b, ok := rv.Index(i).Interface().(block.Block); ok {
				blocks[i] = b
			}
		}
		return c.encodeSlice(blocks, format)
	}
	return nil, NewUnsupportedTypeError(format, reflect.TypeOf(v).String())
}

func isNilBlock(b block.Block) bool {
	if b == nil {
		return true
	}
	rv := reflect.ValueOf(b)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func (c *Codec) encodeSlice(blocks []block.Block, format Format) ([]byte, error) {
	for i, b := range blocks {
		if isNilBlock(b) {
			return nil, NewUnsupportedTypeError(format, "nil block at index "+strconv.Itoa(i))
		}
	}
	return c.marshal(listDocument(blocks), format)
}

// DecodeBlock parses a block document
func (c *Codec) DecodeBlock(data []byte, format Format) (block.Block, error) {
	doc, err := c.unmarshal(data, format)
	if err != nil {
		return nil, err
	}
	b, err := c.blockFromDocument(doc, format)
	if err != nil {
		return nil, c.fail(err)
	}
	return b, nil
}

// DecodeList parses a list document
func (c *Codec) DecodeList(data []byte, format Format) (*blocklist.List, error) {
	doc, err := c.unmarshal(data, format)
	if err != nil {
		return nil, err
	}
	l, err := c.listFromDocument(doc, format)
	if err != nil {
		return nil, c.fail(err)
	}
	return l, nil
}

// Decode parses either document shape. An object with a "blocks" key is decoded as a
// *blocklist.List, anything else as a block.Block.
func (c *Codec) Decode(data []byte, format Format) (any, error) {
	doc, err := c.unmarshal(data, format)
	if err != nil {
		return nil, err
	}
	if m, ok := doc.(map[string]any); ok {
		if _, isList := m["blocks"]; isList {
			l, err := c.listFromDocument(doc, format)
			if err != nil {
				return nil, c.fail(err)
			}
			return l, nil
		}
	}
	b, err := c.blockFromDocument(doc, format)
	if err != nil {
		return nil, c.fail(err)
	}
	return b, nil
}

// DecodeBlockAs parses a block document and requires the result to be a T.
// T must be block.Block or a type registered with the codec's registry.
func DecodeBlockAs[T block.Block](c *Codec, data []byte, format Format) (T, error) {
	var zero T
	target := reflect.TypeOf((*T)(nil)).Elem()

	want := ""
	if target != blockType {
		kind, ok := c.reg.KindFor(target)
		if !ok {
			return zero, c.fail(NewUnsupportedTypeError(format, "target type "+target.String()+" is not registered"))
		}
		want = kind
	}

	doc, err := c.unmarshal(data, format)
	if err != nil {
		return zero, err
	}
	if want != "" {
		if m, ok := doc.(map[string]any); ok {
			if kind, ok := m["kind"].(string); ok && kind != want {
				return zero, c.fail(NewDecodeError(format, block.NewKindMismatchError(want, kind)))
			}
		}
	}

	b, err := c.blockFromDocument(doc, format)
	if err != nil {
		return zero, c.fail(err)
	}
	typed, ok := b.(T)
	if !ok {
		return zero, c.fail(NewUnsupportedTypeError(format, "decoded "+reflect.TypeOf(b).String()+", want "+target.String()))
	}
	return typed, nil
}

func (c *Codec) marshal(doc map[string]any, format Format) ([]byte, error) {
	switch format {
	case JSON:
		return c.marshalJSON(doc)
	case YAML:
		return c.marshalYAML(plain(doc))
	case CBOR:
		return c.marshalCBOR(plain(doc))
	}
	return nil, NewUnsupportedTypeError(format, "unknown format")
}

// unmarshal parses data and returns it in canonical plain form
func (c *Codec) unmarshal(data []byte, format Format) (any, error) {
	var (
		raw any
		err error
	)
	switch format {
	case JSON:
		raw, err = c.unmarshalJSON(data)
	case YAML:
		raw, err = c.unmarshalYAML(data)
	case CBOR:
		raw, err = c.unmarshalCBOR(data)
	default:
		return nil, c.fail(NewUnsupportedTypeError(format, "unknown format"))
	}
	if err != nil {
		return nil, c.fail(NewSyntaxError(format, err))
	}

	doc, err := block.NormalizeValue(raw)
	if err != nil {
		return nil, c.fail(NewDecodeError(format, err))
	}
	return doc, nil
}

func (c *Codec) fail(err error) error {
	se, ok := err.(*SerializationError)
	if !ok {
		return err
	}
	c.config.Logger.Debug().
		Str("format", string(se.Format)).
		Str("type", se.Type).
		Err(se.Err).
		Msg(se.Message)
	return se
}
