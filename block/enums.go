package block

import "strings"

// TextFormat is the markup used by a text block
type TextFormat string

const (
	TextFormatPlain    TextFormat = "plain"
	TextFormatMarkdown TextFormat = "markdown"
	TextFormatHTML     TextFormat = "html"
)

// TextFormats lists every accepted TextFormat
var TextFormats = []TextFormat{TextFormatPlain, TextFormatMarkdown, TextFormatHTML}

// ParseTextFormat coerces s into a TextFormat
func ParseTextFormat(s string) (TextFormat, error) {
	return parseEnum("format", s, TextFormats)
}

// VideoProvider identifies where a video is hosted
type VideoProvider string

const (
	VideoProviderYouTube VideoProvider = "youtube"
	VideoProviderVimeo   VideoProvider = "vimeo"
	VideoProviderOther   VideoProvider = "other"
)

// VideoProviders lists every accepted VideoProvider
var VideoProviders = []VideoProvider{VideoProviderYouTube, VideoProviderVimeo, VideoProviderOther}

// ParseVideoProvider coerces s into a VideoProvider
func ParseVideoProvider(s string) (VideoProvider, error) {
	return parseEnum("provider", s, VideoProviders)
}

// AudioFormat is the encoding of an audio file
type AudioFormat string

const (
	AudioFormatMP3  AudioFormat = "mp3"
	AudioFormatWAV  AudioFormat = "wav"
	AudioFormatOGG  AudioFormat = "ogg"
	AudioFormatAAC  AudioFormat = "aac"
	AudioFormatFLAC AudioFormat = "flac"
	AudioFormatM4A  AudioFormat = "m4a"
)

// AudioFormats lists every accepted AudioFormat
var AudioFormats = []AudioFormat{AudioFormatMP3, AudioFormatWAV, AudioFormatOGG, AudioFormatAAC, AudioFormatFLAC, AudioFormatM4A}

// ParseAudioFormat coerces s into an AudioFormat
func ParseAudioFormat(s string) (AudioFormat, error) {
	return parseEnum("format", s, AudioFormats)
}

// MimeType is the media type of a downloadable file
type MimeType string

const (
	MimeTypeApplicationPDF   MimeType = "application/pdf"
	MimeTypeApplicationZIP   MimeType = "application/zip"
	MimeTypeApplicationJSON  MimeType = "application/json"
	MimeTypeApplicationMSDoc MimeType = "application/msword"
	MimeTypeApplicationDOCX  MimeType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeTypeApplicationXLSX  MimeType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	MimeTypeApplicationOctet MimeType = "application/octet-stream"
	MimeTypeTextPlain        MimeType = "text/plain"
	MimeTypeTextCSV          MimeType = "text/csv"
	MimeTypeImagePNG         MimeType = "image/png"
	MimeTypeImageJPEG        MimeType = "image/jpeg"
	MimeTypeAudioMPEG        MimeType = "audio/mpeg"
	MimeTypeVideoMP4         MimeType = "video/mp4"
)

// MimeTypes lists every accepted MimeType
var MimeTypes = []MimeType{
	MimeTypeApplicationPDF,
	MimeTypeApplicationZIP,
	MimeTypeApplicationJSON,
	MimeTypeApplicationMSDoc,
	MimeTypeApplicationDOCX,
	MimeTypeApplicationXLSX,
	MimeTypeApplicationOctet,
	MimeTypeTextPlain,
	MimeTypeTextCSV,
	MimeTypeImagePNG,
	MimeTypeImageJPEG,
	MimeTypeAudioMPEG,
	MimeTypeVideoMP4,
}

// ParseMimeType coerces s into a MimeType
func ParseMimeType(s string) (MimeType, error) {
	return parseEnum("mime_type", s, MimeTypes)
}

// parseEnum matches s case-insensitively against a closed set of values
func parseEnum[T ~string](field, s string, values []T) (T, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for _, v := range values {
		if string(v) == needle {
			return v, nil
		}
	}
	return "", NewInvalidEnumError(field, s, enumStrings(values))
}

func enumStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
