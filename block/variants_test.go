package block

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireValidationType(t *testing.T, err error, typ string) *ValidationError {
	t.Helper()
	require.Error(t, err)
	var ve *ValidationError
	require.True(t, errors.As(err, &ve), "expected ValidationError, got %T", err)
	assert.Equal(t, typ, ve.Type)
	return ve
}

func TestTextBlock(t *testing.T) {
	b, err := NewTextBlock("Hello world", TextFormatMarkdown)
	require.NoError(t, err)
	assert.Equal(t, KindText, b.Kind())
	assert.Equal(t, "Hello world", b.Text())
	assert.Equal(t, TextFormatMarkdown, b.Format())

	plain, err := NewTextBlock("Plain", "")
	require.NoError(t, err)
	assert.Equal(t, TextFormatMarkdown, plain.Format())
}

func TestTextBlockFormatCoercion(t *testing.T) {
	b, err := NewTextBlock("x", TextFormat("HTML"))
	require.NoError(t, err)
	assert.Equal(t, TextFormatHTML, b.Format())
	assert.Equal(t, "html", b.Payload()["format"])

	_, err = NewTextBlock("x", TextFormat("rtf"))
	ve := requireValidationType(t, err, "InvalidEnumValue")
	assert.Equal(t, "format", ve.Field)
}

func TestImageBlock(t *testing.T) {
	b, err := NewImageBlock(ImageFields{
		URL:     "https://example.com/image.jpg",
		AltText: "Example image",
		Caption: "An example",
		Width:   800,
		Height:  600,
	})
	require.NoError(t, err)
	assert.Equal(t, KindImage, b.Kind())
	assert.Equal(t, "https://example.com/image.jpg", b.URL())
	assert.Equal(t, "Example image", b.AltText())
	assert.Equal(t, "An example", b.Caption())
	assert.Equal(t, 800, b.Width())
	assert.Equal(t, 600, b.Height())

	minimal, err := NewImageBlock(ImageFields{URL: "https://example.com/a.png"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"url": "https://example.com/a.png"}, minimal.Payload())
	assert.Zero(t, minimal.Width())
}

func TestImageBlockNegativeDimension(t *testing.T) {
	_, err := NewImageBlock(ImageFields{URL: "https://example.com/a.png", Width: -1})
	requireValidationType(t, err, "PayloadSchema")
}

func TestVideoBlock(t *testing.T) {
	b, err := NewVideoBlock(VideoFields{
		URL:          "https://youtube.com/watch?v=123",
		Title:        "Example video",
		Description:  "A demo",
		ThumbnailURL: "https://example.com/thumb.jpg",
		Duration:     120,
		Provider:     VideoProvider("YouTube"),
	})
	require.NoError(t, err)
	assert.Equal(t, KindVideo, b.Kind())
	assert.Equal(t, "Example video", b.Title())
	assert.Equal(t, "A demo", b.Description())
	assert.Equal(t, "https://example.com/thumb.jpg", b.ThumbnailURL())
	assert.Equal(t, 120, b.Duration())
	assert.Equal(t, VideoProviderYouTube, b.Provider())

	other, err := NewVideoBlock(VideoFields{URL: "https://example.com/v.mp4"})
	require.NoError(t, err)
	assert.Equal(t, VideoProviderOther, other.Provider())

	_, err = NewVideoBlock(VideoFields{URL: "x", Provider: "dailymotion"})
	requireValidationType(t, err, "InvalidEnumValue")
}

func TestAudioBlock(t *testing.T) {
	b, err := NewAudioBlock(AudioFields{
		URL:      "https://example.com/audio.mp3",
		Title:    "Example audio",
		Artist:   "Example artist",
		Duration: 180,
	})
	require.NoError(t, err)
	assert.Equal(t, KindAudio, b.Kind())
	assert.Equal(t, "Example audio", b.Title())
	assert.Equal(t, "Example artist", b.Artist())
	assert.Equal(t, 180, b.Duration())
	assert.Equal(t, AudioFormatMP3, b.Format())

	flac, err := NewAudioBlock(AudioFields{URL: "x", Format: "FLAC"})
	require.NoError(t, err)
	assert.Equal(t, AudioFormatFLAC, flac.Format())

	_, err = NewAudioBlock(AudioFields{URL: "x", Format: "wma"})
	requireValidationType(t, err, "InvalidEnumValue")
}

func TestDownloadBlock(t *testing.T) {
	b, err := NewDownloadBlock(DownloadFields{
		URL:      "https://example.com/file.pdf",
		Filename: "example.pdf",
		Title:    "Example file",
		Size:     1024,
		MimeType: MimeTypeApplicationPDF,
	})
	require.NoError(t, err)
	assert.Equal(t, KindDownload, b.Kind())
	assert.Equal(t, "example.pdf", b.Filename())
	assert.Equal(t, "Example file", b.Title())
	assert.Equal(t, int64(1024), b.Size())
	assert.Equal(t, MimeTypeApplicationPDF, b.MimeType())

	def, err := NewDownloadBlock(DownloadFields{URL: "x", Filename: "blob"})
	require.NoError(t, err)
	assert.Equal(t, MimeTypeApplicationOctet, def.MimeType())

	_, err = NewDownloadBlock(DownloadFields{URL: "x", Filename: "y", MimeType: "application/x-unknown"})
	requireValidationType(t, err, "InvalidEnumValue")
}

func TestDownloadBlockRequiresFilename(t *testing.T) {
	_, err := DownloadDescriptor.Build(Record{
		Kind:    KindDownload,
		Payload: map[string]any{"url": "https://example.com/file.pdf"},
	})
	ve := requireValidationType(t, err, "PayloadSchema")
	assert.Contains(t, ve.Message, "filename")
}

func TestQuoteBlock(t *testing.T) {
	b, err := NewQuoteBlock(QuoteFields{
		Text:     "Example quote",
		Source:   "Example source",
		Citation: "Example citation",
	})
	require.NoError(t, err)
	assert.Equal(t, KindQuote, b.Kind())
	assert.Equal(t, "Example quote", b.Text())
	assert.Equal(t, "Example source", b.Source())
	assert.Equal(t, "Example citation", b.Citation())
}

func TestGlossaryBlock(t *testing.T) {
	terms := []GlossaryTerm{
		{Term: "Term 1", Definition: "Definition 1"},
		{Term: "Term 2", Definition: "Definition 2"},
		{Term: "Term 1", Definition: "Shadowed"},
	}
	b, err := NewGlossaryBlock(GlossaryFields{Title: "Example glossary", Terms: terms})
	require.NoError(t, err)
	assert.Equal(t, KindGlossary, b.Kind())
	assert.Equal(t, "Example glossary", b.Title())
	assert.Equal(t, terms, b.Terms())

	def, ok := b.Term("Term 1")
	assert.True(t, ok)
	assert.Equal(t, "Definition 1", def)
	_, ok = b.Term("Missing")
	assert.False(t, ok)
	assert.Equal(t, []string{"Term 1", "Term 2"}, b.TermNames())
}

func TestGlossaryBlockRejectsMalformedTerms(t *testing.T) {
	_, err := GlossaryDescriptor.Build(Record{
		Payload: map[string]any{"terms": []any{map[string]any{"term": "only"}}},
	})
	requireValidationType(t, err, "PayloadSchema")
}

func TestSupplementBlock(t *testing.T) {
	links := []Link{{URL: "https://example.com", Title: "Example link"}}
	b, err := NewSupplementBlock(SupplementFields{
		Title:   "Example supplement",
		Content: "Example content",
		Links:   links,
		Tags:    []string{"tag1", "tag2"},
	})
	require.NoError(t, err)
	assert.Equal(t, KindSupplement, b.Kind())
	assert.Equal(t, "Example supplement", b.Title())
	assert.Equal(t, "Example content", b.Content())
	assert.Equal(t, links, b.Links())
	assert.Equal(t, []string{"tag1", "tag2"}, b.Tags())
	assert.Empty(t, b.Meta().Tags())
}

func TestUpdateMetaKeepsIdentity(t *testing.T) {
	b, err := NewQuoteBlock(QuoteFields{Text: "q"})
	require.NoError(t, err)

	updated := b.UpdateMeta(b.Meta().ToggleFavorite())
	assert.Equal(t, b.ID(), updated.ID())
	assert.True(t, updated.Meta().IsFavorite())
	assert.False(t, b.Meta().IsFavorite())
	assert.Equal(t, b.Payload(), updated.Payload())
}

func TestDescriptorBuild(t *testing.T) {
	id := uuid.New()
	b, err := TextDescriptor.Build(Record{
		ID:      id.String(),
		Payload: map[string]any{"text": "decoded", "format": "PLAIN"},
	})
	require.NoError(t, err)

	text, ok := b.(*TextBlock)
	require.True(t, ok)
	assert.Equal(t, id, text.ID())
	assert.Equal(t, TextFormatPlain, text.Format())
}

func TestDescriptorBuildKindMismatch(t *testing.T) {
	_, err := TextDescriptor.Build(Record{Kind: KindImage, Payload: map[string]any{"text": "x"}})
	requireValidationType(t, err, "KindMismatch")
}

func TestDescriptorBuildMissingRequired(t *testing.T) {
	_, err := TextDescriptor.Build(Record{Kind: KindText, Payload: map[string]any{}})
	requireValidationType(t, err, "PayloadSchema")
}

func TestDescriptorMetadata(t *testing.T) {
	assert.Equal(t, "*block.TextBlock", TextDescriptor.Name)
	assert.Equal(t, KindText, TextDescriptor.KindTag())

	derived := Descriptor{Name: "*widgets.CalloutBlock"}
	assert.Equal(t, "callout", derived.KindTag())

	_, err := derived.Build(Record{})
	require.Error(t, err)
}

func TestBuiltins(t *testing.T) {
	kinds := make([]string, 0)
	for _, d := range Builtins() {
		require.NotNil(t, d.Decode)
		require.NotNil(t, d.Type)
		kinds = append(kinds, d.KindTag())
	}
	assert.ElementsMatch(t, []string{
		KindText, KindImage, KindVideo, KindAudio, KindDownload, KindQuote, KindGlossary, KindSupplement,
	}, kinds)
}
