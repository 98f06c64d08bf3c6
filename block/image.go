package block

// KindImage is the kind tag of ImageBlock
const KindImage = "image"

var imageSchema = NewPayloadSchema(objectSchema([]string{"url"}, map[string]any{
	"url":      stringProp(),
	"alt_text": stringProp(),
	"caption":  stringProp(),
	"width":    nonNegativeIntProp(),
	"height":   nonNegativeIntProp(),
}))

// ImageFields are the inputs of NewImageBlock. Zero values are left out of the payload.
type ImageFields struct {
	URL     string
	AltText string
	Caption string
	Width   int
	Height  int
}

// ImageBlock references an image by URL
type ImageBlock struct {
	*Base
}

// ImageDescriptor registers ImageBlock
var ImageDescriptor = NewDescriptor(KindImage, imageSchema, decodeImage)

// NewImageBlock creates an image block
func NewImageBlock(f ImageFields, opts ...Option) (*ImageBlock, error) {
	payload := map[string]any{"url": f.URL}
	putOptional(payload, "alt_text", f.AltText)
	putOptional(payload, "caption", f.Caption)
	putOptional(payload, "width", f.Width)
	putOptional(payload, "height", f.Height)

	base, err := New(KindImage, payload, opts...)
	if err != nil {
		return nil, err
	}
	if err := imageSchema.Validate(KindImage, base.payload); err != nil {
		return nil, err
	}
	return &ImageBlock{Base: base}, nil
}

func decodeImage(rec Record) (*ImageBlock, error) {
	base, err := FromRecord(rec)
	if err != nil {
		return nil, err
	}
	return &ImageBlock{Base: base}, nil
}

// URL returns the image location
func (b *ImageBlock) URL() string { return stringField(b.payload, "url", "") }

// AltText returns the alternative text
func (b *ImageBlock) AltText() string { return stringField(b.payload, "alt_text", "") }

// Caption returns the caption shown under the image
func (b *ImageBlock) Caption() string { return stringField(b.payload, "caption", "") }

// Width returns the width in pixels, 0 when unknown
func (b *ImageBlock) Width() int { return int(intField(b.payload, "width")) }

// Height returns the height in pixels, 0 when unknown
func (b *ImageBlock) Height() int { return int(intField(b.payload, "height")) }

// UpdateMeta returns a copy of the block carrying meta
func (b *ImageBlock) UpdateMeta(meta Meta) *ImageBlock {
	return &ImageBlock{Base: b.withMeta(meta)}
}
