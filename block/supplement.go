package block

// KindSupplement is the kind tag of SupplementBlock
const KindSupplement = "supplement"

var supplementSchema = NewPayloadSchema(objectSchema([]string{"title"}, map[string]any{
	"title":   stringProp(),
	"content": stringProp(),
	"links": arrayOf(objectSchema([]string{"url"}, map[string]any{
		"url":   stringProp(),
		"title": stringProp(),
	})),
	"tags": arrayOf(stringProp()),
}))

// Link is a titled reference used by supplement blocks
type Link struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

// SupplementFields are the inputs of NewSupplementBlock
type SupplementFields struct {
	Title   string
	Content string
	Links   []Link
	Tags    []string
}

// SupplementBlock holds additional material: free text, links and topic tags
type SupplementBlock struct {
	*Base
}

// SupplementDescriptor registers SupplementBlock
var SupplementDescriptor = NewDescriptor(KindSupplement, supplementSchema, decodeSupplement)

// NewSupplementBlock creates a supplement block
func NewSupplementBlock(f SupplementFields, opts ...Option) (*SupplementBlock, error) {
	links := make([]any, len(f.Links))
	for i, l := range f.Links {
		links[i] = map[string]any{"url": l.URL, "title": l.Title}
	}
	tags := make([]any, len(f.Tags))
	for i, t := range f.Tags {
		tags[i] = t
	}
	payload := map[string]any{
		"title": f.Title,
		"links": links,
		"tags":  tags,
	}
	putOptional(payload, "content", f.Content)

	base, err := New(KindSupplement, payload, opts...)
	if err != nil {
		return nil, err
	}
	if err := supplementSchema.Validate(KindSupplement, base.payload); err != nil {
		return nil, err
	}
	return &SupplementBlock{Base: base}, nil
}

func decodeSupplement(rec Record) (*SupplementBlock, error) {
	base, err := FromRecord(rec)
	if err != nil {
		return nil, err
	}
	return &SupplementBlock{Base: base}, nil
}

// Title returns the supplement heading
func (b *SupplementBlock) Title() string { return stringField(b.payload, "title", "") }

// Content returns the free text body
func (b *SupplementBlock) Content() string { return stringField(b.payload, "content", "") }

// Links returns the references in their stored order
func (b *SupplementBlock) Links() []Link {
	items := objectSliceField(b.payload, "links")
	out := make([]Link, 0, len(items))
	for _, item := range items {
		out = append(out, Link{
			URL:   stringField(item, "url", ""),
			Title: stringField(item, "title", ""),
		})
	}
	return out
}

// Tags returns the topic tags of the supplement, distinct from Meta().Tags()
func (b *SupplementBlock) Tags() []string { return stringSliceField(b.payload, "tags") }

// UpdateMeta returns a copy of the block carrying meta
func (b *SupplementBlock) UpdateMeta(meta Meta) *SupplementBlock {
	return &SupplementBlock{Base: b.withMeta(meta)}
}
