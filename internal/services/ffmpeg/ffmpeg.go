// Package ffmpeg drives the audio/metadata transcoder.
package ffmpeg

import (
	"context"
	"strings"

	"mkvtomp4/internal/services"
)

// AudioOptions holds the re-encode parameters. Channels accepts the layout
// shorthand "5.1", which maps to six discrete channels.
type AudioOptions struct {
	Bitrate  string // kbit/s, without the "k" suffix
	Channels string
	Codec    string
}

// ConvertAudioArgs builds the invocation that re-encodes a raw audio stream.
func ConvertAudioArgs(binary, input string, opts AudioOptions, output string) []string {
	channels := opts.Channels
	if channels == "5.1" {
		channels = "6"
	}
	return []string{
		binary,
		"-y", "-i", input,
		"-ac", channels,
		"-acodec", opts.Codec,
		"-ab", opts.Bitrate + "k",
		output,
	}
}

// MetadataFields carries the optional container metadata. Only fields that
// are set produce -metadata pairs, in a fixed order.
type MetadataFields struct {
	Title    string
	Show     string
	Genre    string
	Year     string
	Director string
	Season   string
	Episode  string
}

// Present reports whether any metadata field is set.
func (m MetadataFields) Present() bool {
	return m != MetadataFields{}
}

func (m MetadataFields) pairs() []string {
	var args []string
	add := func(key, value string) {
		if value != "" {
			args = append(args, "-metadata", key+"="+value)
		}
	}
	add("title", m.Title)
	add("show", m.Show)
	add("genre", m.Genre)
	add("date", m.Year)
	add("artist", m.Director)
	add("season_number", m.Season)
	add("episode_sort", m.Episode)
	return args
}

// RemuxSpec describes the metadata/subtitle pass over a muxed container.
// When Subtitle is empty the invocation is a metadata-only stream copy.
type RemuxSpec struct {
	Video           string
	Subtitle        string
	SubtitleLang    string
	AudioLang       string
	SubtitleDefault bool
	Metadata        MetadataFields
}

// RemuxArgs builds the invocation that stream-copies video and audio into
// the final container, optionally adding a subtitle track and metadata.
func RemuxArgs(binary string, spec RemuxSpec, output string) []string {
	args := []string{binary, "-y", "-i", spec.Video}
	if spec.Subtitle != "" {
		args = append(args, "-i", spec.Subtitle)
	}
	args = append(args, "-c:v", "copy", "-c:a", "copy")
	if spec.Subtitle != "" {
		args = append(args, "-c:s", "mov_text")
		if spec.SubtitleLang != "" {
			args = append(args, "-metadata:s:s:0", "language="+spec.SubtitleLang)
		}
		if spec.AudioLang != "" {
			args = append(args, "-metadata:s:a:0", "language="+spec.AudioLang)
		}
	}
	args = append(args, spec.Metadata.pairs()...)
	if spec.Subtitle != "" {
		disposition := "0"
		if spec.SubtitleDefault {
			disposition = "default"
		}
		args = append(args, "-disposition:s:0", disposition)
	}
	return append(args, output)
}

// Client wraps ffmpeg invocations.
type Client struct {
	binary string
	exec   services.Executor
}

// New constructs a transcoder client. An empty binary falls back to the
// command name on PATH.
func New(binary string, exec services.Executor) *Client {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffmpeg"
	}
	return &Client{binary: binary, exec: exec}
}

// ConvertAudio re-encodes input into output with the given parameters.
func (c *Client) ConvertAudio(ctx context.Context, input string, opts AudioOptions, output string) error {
	return c.exec.Run(ctx, ConvertAudioArgs(c.binary, input, opts, output))
}

// Remux applies the subtitle/metadata pass described by spec.
func (c *Client) Remux(ctx context.Context, spec RemuxSpec, output string) error {
	return c.exec.Run(ctx, RemuxArgs(c.binary, spec, output))
}
