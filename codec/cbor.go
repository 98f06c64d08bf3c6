package codec

import (
	"reflect"

	"github.com/fxamacker/cbor/v2"

	"github.com/CoreLab-Tech/BlockKit/block"
	"github.com/CoreLab-Tech/BlockKit/blocklist"
)

var (
	cborEncMode = mustEncMode(cbor.CoreDetEncOptions())
	cborDecMode = mustDecMode(cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	})
)

func mustEncMode(opts cbor.EncOptions) cbor.EncMode {
	em, err := opts.EncMode()
	if err != nil {
		panic(err)
	}
	return em
}

func mustDecMode(opts cbor.DecOptions) cbor.DecMode {
	dm, err := opts.DecMode()
	if err != nil {
		panic(err)
	}
	return dm
}

func (c *Codec) marshalCBOR(doc any) ([]byte, error) {
	data, err := cborEncMode.Marshal(doc)
	if err != nil {
		return nil, NewEncodeError(CBOR, err)
	}
	return data, nil
}

func (c *Codec) unmarshalCBOR(data []byte) (any, error) {
	var v any
	if err := cborDecMode.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// ToCBOR encodes a block, list or slice of blocks as CBOR
func (c *Codec) ToCBOR(v any) ([]byte, error) { return c.Encode(v, CBOR) }

// FromCBOR decodes a CBOR block or list document
func (c *Codec) FromCBOR(data []byte) (any, error) { return c.Decode(data, CBOR) }

// FromCBORBlock decodes a CBOR block document
func (c *Codec) FromCBORBlock(data []byte) (block.Block, error) { return c.DecodeBlock(data, CBOR) }

// FromCBORList decodes a CBOR list document
func (c *Codec) FromCBORList(data []byte) (*blocklist.List, error) { return c.DecodeList(data, CBOR) }
