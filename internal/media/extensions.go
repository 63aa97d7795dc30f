package media

import (
	"regexp"
	"strings"
)

var unsafeExtChars = regexp.MustCompile(`[/:]`)

// VideoExtension maps a video codec label to the raw elementary-stream file
// extension. Unknown video codecs are an unrecoverable configuration error.
func VideoExtension(codec string) (string, error) {
	switch TrimCategoryPrefix(codec) {
	case "MPEG4/ISO/AVC":
		return ".h264", nil
	case "MPEGH/ISO/HEVC":
		return ".h265", nil
	default:
		return "", &UnsupportedCodecError{Kind: KindVideo, Codec: codec}
	}
}

// AudioExtension derives a filesystem-safe extension (without the dot) from
// an audio codec label: lower-cased, category prefix stripped, MPEG layer 2
// renamed to mp2, and path-hostile characters replaced.
func AudioExtension(codec string) string {
	label := strings.ToLower(TrimCategoryPrefix(codec))
	if label == "mpeg/l2" {
		label = "mp2"
	}
	return unsafeExtChars.ReplaceAllString(label, "-")
}

// SubtitleExtension maps a subtitle codec label to its sidecar extension
// (without the dot).
func SubtitleExtension(codec string) (string, error) {
	switch TrimCategoryPrefix(codec) {
	case "TEXT/UTF8":
		return "srt", nil
	case "HDMV/PGS":
		return "sup", nil
	default:
		return "", &UnsupportedCodecError{Kind: KindSubtitles, Codec: codec}
	}
}
