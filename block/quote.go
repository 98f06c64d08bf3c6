package block

// KindQuote is the kind tag of QuoteBlock
const KindQuote = "quote"

var quoteSchema = NewPayloadSchema(objectSchema([]string{"text"}, map[string]any{
	"text":     stringProp(),
	"source":   stringProp(),
	"citation": stringProp(),
}))

// QuoteFields are the inputs of NewQuoteBlock
type QuoteFields struct {
	Text     string
	Source   string
	Citation string
}

// QuoteBlock holds a quotation with its attribution
type QuoteBlock struct {
	*Base
}

// QuoteDescriptor registers QuoteBlock
var QuoteDescriptor = NewDescriptor(KindQuote, quoteSchema, decodeQuote)

// NewQuoteBlock creates a quote block
func NewQuoteBlock(f QuoteFields, opts ...Option) (*QuoteBlock, error) {
	payload := map[string]any{"text": f.Text}
	putOptional(payload, "source", f.Source)
	putOptional(payload, "citation", f.Citation)

	base, err := New(KindQuote, payload, opts...)
	if err != nil {
		return nil, err
	}
	if err := quoteSchema.Validate(KindQuote, base.payload); err != nil {
		return nil, err
	}
	return &QuoteBlock{Base: base}, nil
}

func decodeQuote(rec Record) (*QuoteBlock, error) {
	base, err := FromRecord(rec)
	if err != nil {
		return nil, err
	}
	return &QuoteBlock{Base: base}, nil
}

// Text returns the quoted text
func (b *QuoteBlock) Text() string { return stringField(b.payload, "text", "") }

// Source returns who or what is quoted
func (b *QuoteBlock) Source() string { return stringField(b.payload, "source", "") }

// Citation returns the reference to the quoted work
func (b *QuoteBlock) Citation() string { return stringField(b.payload, "citation", "") }

// UpdateMeta returns a copy of the block carrying meta
func (b *QuoteBlock) UpdateMeta(meta Meta) *QuoteBlock {
	return &QuoteBlock{Base: b.withMeta(meta)}
}
