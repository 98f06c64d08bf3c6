package block

// KindText is the kind tag of TextBlock
const KindText = "text"

var textSchema = NewPayloadSchema(objectSchema([]string{"text"}, map[string]any{
	"text":   stringProp(),
	"format": stringProp(),
}))

// TextBlock holds a run of formatted text
type TextBlock struct {
	*Base
}

// TextDescriptor registers TextBlock
var TextDescriptor = NewDescriptor(KindText, textSchema, decodeText)

// NewTextBlock creates a text block. An empty format defaults to markdown.
func NewTextBlock(text string, format TextFormat, opts ...Option) (*TextBlock, error) {
	if format == "" {
		format = TextFormatMarkdown
	}
	base, err := New(KindText, map[string]any{
		"text":   text,
		"format": string(format),
	}, opts...)
	if err != nil {
		return nil, err
	}
	if err := textSchema.Validate(KindText, base.payload); err != nil {
		return nil, err
	}
	return asText(base)
}

func decodeText(rec Record) (*TextBlock, error) {
	base, err := FromRecord(rec)
	if err != nil {
		return nil, err
	}
	return asText(base)
}

func asText(base *Base) (*TextBlock, error) {
	if raw, ok := base.payload["format"].(string); ok {
		format, err := ParseTextFormat(raw)
		if err != nil {
			return nil, err
		}
		base.payload["format"] = string(format)
	}
	return &TextBlock{Base: base}, nil
}

// Text returns the text content
func (b *TextBlock) Text() string {
	return stringField(b.payload, "text", "")
}

// Format returns the text markup format
func (b *TextBlock) Format() TextFormat {
	return TextFormat(stringField(b.payload, "format", string(TextFormatMarkdown)))
}

// UpdateMeta returns a copy of the block carrying meta
func (b *TextBlock) UpdateMeta(meta Meta) *TextBlock {
	return &TextBlock{Base: b.withMeta(meta)}
}
