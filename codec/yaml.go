package codec

import (
	"bytes"

	"gopkg.in/yaml.v3"

	"github.com/CoreLab-Tech/BlockKit/block"
	"github.com/CoreLab-Tech/BlockKit/blocklist"
)

func (c *Codec) marshalYAML(doc any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(c.config.YAMLIndent)
	if err := enc.Encode(doc); err != nil {
		return nil, NewEncodeError(YAML, err)
	}
	if err := enc.Close(); err != nil {
		return nil, NewEncodeError(YAML, err)
	}
	return buf.Bytes(), nil
}

func (c *Codec) unmarshalYAML(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// ToYAML encodes a block, list or slice of blocks as YAML
func (c *Codec) ToYAML(v any) ([]byte, error) { return c.Encode(v, YAML) }

// FromYAML decodes a YAML block or list document
func (c *Codec) FromYAML(data []byte) (any, error) { return c.Decode(data, YAML) }

// FromYAMLBlock decodes a YAML block document
func (c *Codec) FromYAMLBlock(data []byte) (block.Block, error) { return c.DecodeBlock(data, YAML) }

// FromYAMLList decodes a YAML list document
func (c *Codec) FromYAMLList(data []byte) (*blocklist.List, error) { return c.DecodeList(data, YAML) }
