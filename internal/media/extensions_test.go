package media

import (
	"errors"
	"testing"
)

func TestVideoExtension(t *testing.T) {
	cases := []struct {
		codec string
		want  string
	}{
		{"V_MPEG4/ISO/AVC", ".h264"},
		{"MPEG4/ISO/AVC", ".h264"},
		{"V_MPEGH/ISO/HEVC", ".h265"},
		{"MPEGH/ISO/HEVC", ".h265"},
	}
	for _, tc := range cases {
		got, err := VideoExtension(tc.codec)
		if err != nil {
			t.Fatalf("VideoExtension(%q): %v", tc.codec, err)
		}
		if got != tc.want {
			t.Fatalf("VideoExtension(%q) = %q, want %q", tc.codec, got, tc.want)
		}
	}

	_, err := VideoExtension("V_MS/VFW/FOURCC")
	var unsupported *UnsupportedCodecError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected UnsupportedCodecError, got %v", err)
	}
}

func TestAudioExtension(t *testing.T) {
	cases := []struct {
		codec string
		want  string
	}{
		{"A_AC3", "ac3"},
		{"AC3", "ac3"},
		{"A_EAC3", "eac3"},
		{"A_AAC", "aac"},
		{"A_DTS", "dts"},
		{"A_MPEG/L2", "mp2"},
		{"A_VORBIS", "vorbis"},
		{"A_WEIRD/LABEL:X", "weird-label-x"},
	}
	for _, tc := range cases {
		if got := AudioExtension(tc.codec); got != tc.want {
			t.Fatalf("AudioExtension(%q) = %q, want %q", tc.codec, got, tc.want)
		}
	}
}

func TestSubtitleExtension(t *testing.T) {
	if got, err := SubtitleExtension("S_TEXT/UTF8"); err != nil || got != "srt" {
		t.Fatalf("SubtitleExtension(S_TEXT/UTF8) = %q, %v", got, err)
	}
	if got, err := SubtitleExtension("HDMV/PGS"); err != nil || got != "sup" {
		t.Fatalf("SubtitleExtension(HDMV/PGS) = %q, %v", got, err)
	}
	if _, err := SubtitleExtension("S_VOBSUB"); err == nil {
		t.Fatalf("expected error for unsupported subtitle codec")
	}
}
