// Package blockkit provides flat re-exports of the block, blocklist, registry and codec
// packages, plus entry points bound to the process-wide registry.
package blockkit

import (
	"github.com/CoreLab-Tech/BlockKit/block"
	"github.com/CoreLab-Tech/BlockKit/blocklist"
	"github.com/CoreLab-Tech/BlockKit/codec"
	"github.com/CoreLab-Tech/BlockKit/registry"
)

// Block types
type Block = block.Block
type Base = block.Base
type Record = block.Record
type Meta = block.Meta
type MetaFields = block.MetaFields
type Descriptor = block.Descriptor
type PayloadSchema = block.PayloadSchema

type TextBlock = block.TextBlock
type ImageBlock = block.ImageBlock
type VideoBlock = block.VideoBlock
type AudioBlock = block.AudioBlock
type DownloadBlock = block.DownloadBlock
type QuoteBlock = block.QuoteBlock
type GlossaryBlock = block.GlossaryBlock
type SupplementBlock = block.SupplementBlock

type ImageFields = block.ImageFields
type VideoFields = block.VideoFields
type AudioFields = block.AudioFields
type DownloadFields = block.DownloadFields
type QuoteFields = block.QuoteFields
type GlossaryFields = block.GlossaryFields
type GlossaryTerm = block.GlossaryTerm
type SupplementFields = block.SupplementFields
type Link = block.Link

type TextFormat = block.TextFormat
type VideoProvider = block.VideoProvider
type AudioFormat = block.AudioFormat
type MimeType = block.MimeType

var NewBlock = block.New
var NewMeta = block.NewMeta
var DefaultMeta = block.DefaultMeta
var WithID = block.WithID
var WithMeta = block.WithMeta
var ValidKind = block.ValidKind
var DeriveKind = block.DeriveKind
var NewPayloadSchema = block.NewPayloadSchema

var NewTextBlock = block.NewTextBlock
var NewImageBlock = block.NewImageBlock
var NewVideoBlock = block.NewVideoBlock
var NewAudioBlock = block.NewAudioBlock
var NewDownloadBlock = block.NewDownloadBlock
var NewQuoteBlock = block.NewQuoteBlock
var NewGlossaryBlock = block.NewGlossaryBlock
var NewSupplementBlock = block.NewSupplementBlock

// List types
type List = blocklist.List

var NewList = blocklist.New
var EmptyList = blocklist.Empty

// Registry types
type Registry = registry.Registry

var NewRegistry = registry.New
var NewRegistryWithBuiltins = registry.NewWithBuiltins
var DefaultRegistry = registry.Default

// Codec types
type Codec = codec.Codec
type Format = codec.Format

const (
	JSON = codec.JSON
	YAML = codec.YAML
	CBOR = codec.CBOR
)

var NewCodec = codec.New

// Error types
type ValidationError = block.ValidationError
type DuplicateError = blocklist.DuplicateError
type NotFoundError = blocklist.NotFoundError
type IndexError = blocklist.IndexError
type NilBlockError = blocklist.NilBlockError
type RegistryError = registry.RegistryError
type SerializationError = codec.SerializationError

// Register adds d to the process-wide registry
func Register(d Descriptor) error {
	return registry.Default().Register(d)
}

// ListTypes returns the kinds known to the process-wide registry
func ListTypes() []string {
	return registry.Default().ListTypes()
}

// ToJSON encodes a block, list or slice of blocks as JSON
func ToJSON(v any) ([]byte, error) { return codec.Default().ToJSON(v) }

// FromJSON decodes a JSON block or list document with the process-wide registry
func FromJSON(data []byte) (any, error) { return codec.Default().FromJSON(data) }

// ToYAML encodes a block, list or slice of blocks as YAML
func ToYAML(v any) ([]byte, error) { return codec.Default().ToYAML(v) }

// FromYAML decodes a YAML block or list document with the process-wide registry
func FromYAML(data []byte) (any, error) { return codec.Default().FromYAML(data) }

// ToCBOR encodes a block, list or slice of blocks as CBOR
func ToCBOR(v any) ([]byte, error) { return codec.Default().ToCBOR(v) }

// FromCBOR decodes a CBOR block or list document with the process-wide registry
func FromCBOR(data []byte) (any, error) { return codec.Default().FromCBOR(data) }

// ListFromJSON decodes a JSON list document with the process-wide registry
func ListFromJSON(data []byte) (*List, error) { return codec.Default().FromJSONList(data) }

// ListFromYAML decodes a YAML list document with the process-wide registry
func ListFromYAML(data []byte) (*List, error) { return codec.Default().FromYAMLList(data) }

// DecodeAs decodes a block document into the registered type T
func DecodeAs[T Block](data []byte, format Format) (T, error) {
	return codec.DecodeBlockAs[T](codec.Default(), data, format)
}
