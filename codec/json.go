package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/CoreLab-Tech/BlockKit/block"
	"github.com/CoreLab-Tech/BlockKit/blocklist"
)

func (c *Codec) marshalJSON(doc any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if c.config.JSONIndent > 0 {
		enc.SetIndent("", strings.Repeat(" ", c.config.JSONIndent))
	}
	if err := enc.Encode(doc); err != nil {
		return nil, NewEncodeError(JSON, err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// unmarshalJSON keeps numbers as json.Number so integers survive without float rounding
func (c *Codec) unmarshalJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after top-level value")
	}
	return v, nil
}

// ToJSON encodes a block, list or slice of blocks as JSON
func (c *Codec) ToJSON(v any) ([]byte, error) { return c.Encode(v, JSON) }

// FromJSON decodes a JSON block or list document
func (c *Codec) FromJSON(data []byte) (any, error) { return c.Decode(data, JSON) }

// FromJSONBlock decodes a JSON block document
func (c *Codec) FromJSONBlock(data []byte) (block.Block, error) { return c.DecodeBlock(data, JSON) }

// FromJSONList decodes a JSON list document
func (c *Codec) FromJSONList(data []byte) (*blocklist.List, error) { return c.DecodeList(data, JSON) }
