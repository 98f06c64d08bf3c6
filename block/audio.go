package block

// KindAudio is the kind tag of AudioBlock
const KindAudio = "audio"

var audioSchema = NewPayloadSchema(objectSchema([]string{"url"}, map[string]any{
	"url":      stringProp(),
	"title":    stringProp(),
	"artist":   stringProp(),
	"duration": nonNegativeIntProp(),
	"format":   stringProp(),
}))

// AudioFields are the inputs of NewAudioBlock. An empty Format defaults to mp3.
type AudioFields struct {
	URL      string
	Title    string
	Artist   string
	Duration int
	Format   AudioFormat
}

// AudioBlock embeds an audio file
type AudioBlock struct {
	*Base
}

// AudioDescriptor registers AudioBlock
var AudioDescriptor = NewDescriptor(KindAudio, audioSchema, decodeAudio)

// NewAudioBlock creates an audio block
func NewAudioBlock(f AudioFields, opts ...Option) (*AudioBlock, error) {
	format := f.Format
	if format == "" {
		format = AudioFormatMP3
	}
	payload := map[string]any{
		"url":    f.URL,
		"format": string(format),
	}
	putOptional(payload, "title", f.Title)
	putOptional(payload, "artist", f.Artist)
	putOptional(payload, "duration", f.Duration)

	base, err := New(KindAudio, payload, opts...)
	if err != nil {
		return nil, err
	}
	if err := audioSchema.Validate(KindAudio, base.payload); err != nil {
		return nil, err
	}
	return asAudio(base)
}

func decodeAudio(rec Record) (*AudioBlock, error) {
	base, err := FromRecord(rec)
	if err != nil {
		return nil, err
	}
	return asAudio(base)
}

func asAudio(base *Base) (*AudioBlock, error) {
	if raw, ok := base.payload["format"].(string); ok {
		format, err := ParseAudioFormat(raw)
		if err != nil {
			return nil, err
		}
		base.payload["format"] = string(format)
	}
	return &AudioBlock{Base: base}, nil
}

// URL returns the audio file location
func (b *AudioBlock) URL() string { return stringField(b.payload, "url", "") }

// Title returns the track title
func (b *AudioBlock) Title() string { return stringField(b.payload, "title", "") }

// Artist returns the performing artist
func (b *AudioBlock) Artist() string { return stringField(b.payload, "artist", "") }

// Duration returns the length in seconds, 0 when unknown
func (b *AudioBlock) Duration() int { return int(intField(b.payload, "duration")) }

// Format returns the audio encoding
func (b *AudioBlock) Format() AudioFormat {
	return AudioFormat(stringField(b.payload, "format", string(AudioFormatMP3)))
}

// UpdateMeta returns a copy of the block carrying meta
func (b *AudioBlock) UpdateMeta(meta Meta) *AudioBlock {
	return &AudioBlock{Base: b.withMeta(meta)}
}
