package block

// KindDownload is the kind tag of DownloadBlock
const KindDownload = "download"

var downloadSchema = NewPayloadSchema(objectSchema([]string{"url", "filename"}, map[string]any{
	"url":       stringProp(),
	"filename":  stringProp(),
	"title":     stringProp(),
	"size":      nonNegativeIntProp(),
	"mime_type": stringProp(),
}))

// DownloadFields are the inputs of NewDownloadBlock.
// An empty MimeType defaults to application/octet-stream.
type DownloadFields struct {
	URL      string
	Filename string
	Title    string
	Size     int64
	MimeType MimeType
}

// DownloadBlock offers a file for download
type DownloadBlock struct {
	*Base
}

// DownloadDescriptor registers DownloadBlock
var DownloadDescriptor = NewDescriptor(KindDownload, downloadSchema, decodeDownload)

// NewDownloadBlock creates a download block
func NewDownloadBlock(f DownloadFields, opts ...Option) (*DownloadBlock, error) {
	mimeType := f.MimeType
	if mimeType == "" {
		mimeType = MimeTypeApplicationOctet
	}
	payload := map[string]any{
		"url":       f.URL,
		"filename":  f.Filename,
		"mime_type": string(mimeType),
	}
	putOptional(payload, "title", f.Title)
	putOptional(payload, "size", f.Size)

	base, err := New(KindDownload, payload, opts...)
	if err != nil {
		return nil, err
	}
	if err := downloadSchema.Validate(KindDownload, base.payload); err != nil {
		return nil, err
	}
	return asDownload(base)
}

func decodeDownload(rec Record) (*DownloadBlock, error) {
	base, err := FromRecord(rec)
	if err != nil {
		return nil, err
	}
	return asDownload(base)
}

func asDownload(base *Base) (*DownloadBlock, error) {
	if raw, ok := base.payload["mime_type"].(string); ok {
		mimeType, err := ParseMimeType(raw)
		if err != nil {
			return nil, err
		}
		base.payload["mime_type"] = string(mimeType)
	}
	return &DownloadBlock{Base: base}, nil
}

// URL returns the file location
func (b *DownloadBlock) URL() string { return stringField(b.payload, "url", "") }

// Filename returns the suggested file name
func (b *DownloadBlock) Filename() string { return stringField(b.payload, "filename", "") }

// Title returns the display title
func (b *DownloadBlock) Title() string { return stringField(b.payload, "title", "") }

// Size returns the file size in bytes, 0 when unknown
func (b *DownloadBlock) Size() int64 { return intField(b.payload, "size") }

// MimeType returns the media type of the file
func (b *DownloadBlock) MimeType() MimeType {
	return MimeType(stringField(b.payload, "mime_type", string(MimeTypeApplicationOctet)))
}

// UpdateMeta returns a copy of the block carrying meta
func (b *DownloadBlock) UpdateMeta(meta Meta) *DownloadBlock {
	return &DownloadBlock{Base: b.withMeta(meta)}
}
