package media

import (
	"fmt"
	"regexp"
	"strings"
)

// Kind identifies the media type of a track.
type Kind string

const (
	KindVideo     Kind = "video"
	KindAudio     Kind = "audio"
	KindSubtitles Kind = "subtitles"
)

// Track describes one elementary stream inside the source container.
type Track struct {
	Kind     Kind
	Codec    string // free-text demuxer label, e.g. "V_MPEG4/ISO/AVC"
	Number   int    // stable track index within the source container
	Language string // ISO 639 code or "und"; empty when unreported
	FPS      float64

	// FilePath is set only on synthesized tracks backed by an external
	// subtitle file; such tracks are never extracted.
	FilePath string
}

// External reports whether the track is backed by an external file rather
// than a stream inside the container.
func (t Track) External() bool {
	return t.FilePath != ""
}

// PatternTable holds the codec-label regex for each track kind.
type PatternTable struct {
	Video     *regexp.Regexp
	Audio     *regexp.Regexp
	Subtitles *regexp.Regexp
}

// DefaultPatterns returns the codec labels the target device can ingest.
func DefaultPatterns() PatternTable {
	return PatternTable{
		Video:     regexp.MustCompile(`^(V_)?(MPEG4/ISO/AVC|MPEGH/ISO/HEVC)$`),
		Audio:     regexp.MustCompile(`^(A_)?(DTS|AAC|E?AC3|MPEG/L2|VORBIS|FLAC)$`),
		Subtitles: regexp.MustCompile(`^(S_)?(TEXT/UTF8|HDMV/PGS)$`),
	}
}

// ForKind returns the pattern for the given kind, or nil when unknown.
func (p PatternTable) ForKind(kind Kind) *regexp.Regexp {
	switch kind {
	case KindVideo:
		return p.Video
	case KindAudio:
		return p.Audio
	case KindSubtitles:
		return p.Subtitles
	default:
		return nil
	}
}

var categoryPrefix = regexp.MustCompile(`^[VAS]_`)

// TrimCategoryPrefix strips the Matroska category prefix (V_, A_, S_) from a
// codec label when present.
func TrimCategoryPrefix(codec string) string {
	return categoryPrefix.ReplaceAllString(codec, "")
}

// SynthesizeSubtitle builds a subtitle track backed by an external file,
// bypassing container matching entirely.
func SynthesizeSubtitle(path, lang string) Track {
	return Track{
		Kind:     KindSubtitles,
		Codec:    "TEXT/UTF8",
		Language: lang,
		FilePath: path,
	}
}

// MissingTrackError reports that a required track could not be selected.
type MissingTrackError struct {
	Kind     Kind
	Ordinal  int
	Explicit *int
}

func (e *MissingTrackError) Error() string {
	if e.Explicit != nil {
		return fmt.Sprintf("%s track %d not found in source", e.Kind, *e.Explicit)
	}
	return fmt.Sprintf("no usable %s track found in source", e.Kind)
}

// UnsupportedCodecError reports a codec with no known raw-stream extension.
type UnsupportedCodecError struct {
	Kind  Kind
	Codec string
}

func (e *UnsupportedCodecError) Error() string {
	return fmt.Sprintf("no known extension for %s codec %q", e.Kind, e.Codec)
}

// String renders a compact human-readable summary of a track list for
// diagnostics.
func Summarize(tracks []Track) string {
	parts := make([]string, 0, len(tracks))
	for _, t := range tracks {
		parts = append(parts, fmt.Sprintf("%d:%s/%s", t.Number, t.Kind, t.Codec))
	}
	return strings.Join(parts, " ")
}
