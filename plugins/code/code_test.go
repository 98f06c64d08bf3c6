package code_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CoreLab-Tech/BlockKit/block"
	"github.com/CoreLab-Tech/BlockKit/codec"
	"github.com/CoreLab-Tech/BlockKit/plugins/code"
	"github.com/CoreLab-Tech/BlockKit/registry"
)

func TestNewCodeBlock(t *testing.T) {
	b, err := code.New("print('hi')", "", true)
	require.NoError(t, err)
	assert.Equal(t, "code", b.Kind())
	assert.Equal(t, "print('hi')", b.Code())
	assert.Equal(t, "python", b.Language())
	assert.True(t, b.LineNumbers())

	goBlock, err := code.New("package main", "go", false)
	require.NoError(t, err)
	assert.Equal(t, "go", goBlock.Language())
	assert.False(t, goBlock.LineNumbers())
}

func TestRegister(t *testing.T) {
	reg, err := registry.NewWithBuiltins()
	require.NoError(t, err)
	require.NoError(t, code.Register(reg))
	assert.Contains(t, reg.ListTypes(), "code")

	err = code.Register(reg)
	var re *registry.RegistryError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, "DuplicateKind", re.Type)
}

func TestDecodeThroughRegistry(t *testing.T) {
	reg := registry.New()
	require.NoError(t, code.Register(reg))
	c := codec.New(reg)

	original, err := code.New("fmt.Println(1)", "go", false)
	require.NoError(t, err)

	for _, format := range codec.Formats {
		data, err := c.EncodeBlock(original, format)
		require.NoError(t, err)

		decoded, err := codec.DecodeBlockAs[*code.CodeBlock](c, data, format)
		require.NoError(t, err, format)
		assert.True(t, block.Equal(original, decoded))
		assert.Equal(t, "go", decoded.Language())
		assert.False(t, decoded.LineNumbers())
	}
}

func TestDecodeDefaults(t *testing.T) {
	reg := registry.New()
	require.NoError(t, code.Register(reg))

	b, err := codec.New(reg).FromJSONBlock([]byte(`{"kind": "code", "payload": {"code": "x = 1"}}`))
	require.NoError(t, err)
	cb, ok := b.(*code.CodeBlock)
	require.True(t, ok)
	assert.Equal(t, "python", cb.Language())
	assert.True(t, cb.LineNumbers())
}

func TestSchemaRejectsBadPayload(t *testing.T) {
	_, err := code.Descriptor.Build(block.Record{Payload: map[string]any{"code": 42}})
	var ve *block.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "PayloadSchema", ve.Type)
}

func TestUpdateMeta(t *testing.T) {
	b, err := code.New("x", "", true)
	require.NoError(t, err)

	updated, err := b.UpdateMeta(b.Meta().AddTag("snippet"))
	require.NoError(t, err)
	assert.Equal(t, b.ID(), updated.ID())
	assert.Equal(t, []string{"snippet"}, updated.Meta().Tags())
	assert.Equal(t, "x", updated.Code())
}
