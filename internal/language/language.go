// Package language normalizes user-supplied language values to the ISO
// 639-2 codes the muxer and metadata writer expect.
package language

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Undetermined is the code demuxers report for unlabeled tracks.
const Undetermined = "und"

// Normalize converts a language value ("en", "eng", "en-US") to its ISO
// 639-2 three-letter code. Empty input and the undetermined code pass
// through unchanged.
func Normalize(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, Undetermined) {
		return strings.ToLower(value), nil
	}

	tag, err := language.Parse(value)
	if err != nil {
		return "", fmt.Errorf("unrecognized language %q: %w", value, err)
	}
	base, _ := tag.Base()
	return base.ISO3(), nil
}

// Known reports whether a track-supplied code identifies an actual
// language (not empty, not undetermined).
func Known(code string) bool {
	code = strings.TrimSpace(code)
	return code != "" && !strings.EqualFold(code, Undetermined)
}
