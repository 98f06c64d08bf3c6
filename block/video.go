package block

// KindVideo is the kind tag of VideoBlock
const KindVideo = "video"

var videoSchema = NewPayloadSchema(objectSchema([]string{"url"}, map[string]any{
	"url":           stringProp(),
	"title":         stringProp(),
	"description":   stringProp(),
	"thumbnail_url": stringProp(),
	"duration":      nonNegativeIntProp(),
	"provider":      stringProp(),
}))

// VideoFields are the inputs of NewVideoBlock. An empty Provider defaults to other.
type VideoFields struct {
	URL          string
	Title        string
	Description  string
	ThumbnailURL string
	Duration     int
	Provider     VideoProvider
}

// VideoBlock embeds a hosted video
type VideoBlock struct {
	*Base
}

// VideoDescriptor registers VideoBlock
var VideoDescriptor = NewDescriptor(KindVideo, videoSchema, decodeVideo)

// NewVideoBlock creates a video block
func NewVideoBlock(f VideoFields, opts ...Option) (*VideoBlock, error) {
	provider := f.Provider
	if provider == "" {
		provider = VideoProviderOther
	}
	payload := map[string]any{
		"url":      f.URL,
		"provider": string(provider),
	}
	putOptional(payload, "title", f.Title)
	putOptional(payload, "description", f.Description)
	putOptional(payload, "thumbnail_url", f.ThumbnailURL)
	putOptional(payload, "duration", f.Duration)

	base, err := New(KindVideo, payload, opts...)
	if err != nil {
		return nil, err
	}
	if err := videoSchema.Validate(KindVideo, base.payload); err != nil {
		return nil, err
	}
	return asVideo(base)
}

func decodeVideo(rec Record) (*VideoBlock, error) {
	base, err := FromRecord(rec)
	if err != nil {
		return nil, err
	}
	return asVideo(base)
}

func asVideo(base *Base) (*VideoBlock, error) {
	if raw, ok := base.payload["provider"].(string); ok {
		provider, err := ParseVideoProvider(raw)
		if err != nil {
			return nil, err
		}
		base.payload["provider"] = string(provider)
	}
	return &VideoBlock{Base: base}, nil
}

// URL returns the video location
func (b *VideoBlock) URL() string { return stringField(b.payload, "url", "") }

// Title returns the video title
func (b *VideoBlock) Title() string { return stringField(b.payload, "title", "") }

// Description returns the video description
func (b *VideoBlock) Description() string { return stringField(b.payload, "description", "") }

// ThumbnailURL returns the preview image location
func (b *VideoBlock) ThumbnailURL() string { return stringField(b.payload, "thumbnail_url", "") }

// Duration returns the length in seconds, 0 when unknown
func (b *VideoBlock) Duration() int { return int(intField(b.payload, "duration")) }

// Provider returns the hosting provider
func (b *VideoBlock) Provider() VideoProvider {
	return VideoProvider(stringField(b.payload, "provider", string(VideoProviderOther)))
}

// UpdateMeta returns a copy of the block carrying meta
func (b *VideoBlock) UpdateMeta(meta Meta) *VideoBlock {
	return &VideoBlock{Base: b.withMeta(meta)}
}
