package mkvmerge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os/exec"
	"strings"

	"mkvtomp4/internal/media"
)

// identification mirrors the subset of `mkvmerge -J` output we consume.
type identification struct {
	Tracks []struct {
		ID         int    `json:"id"`
		Type       string `json:"type"`
		Codec      string `json:"codec"`
		Properties struct {
			CodecID         string `json:"codec_id"`
			Language        string `json:"language"`
			DefaultDuration int64  `json:"default_duration"`
		} `json:"properties"`
	} `json:"tracks"`
}

// Identify executes mkvmerge identification against the provided path and
// returns the ordered track list.
func Identify(ctx context.Context, binary, path string) ([]media.Track, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "mkvmerge"
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("mkvmerge identify: empty path")
	}

	cmd := exec.CommandContext(ctx, binary, "-J", path)
	output, err := cmd.Output()
	if err != nil {
		var exit *exec.ExitError
		if errors.As(err, &exit) {
			return nil, fmt.Errorf("mkvmerge identify: %w: %s", err, strings.TrimSpace(string(exit.Stderr)))
		}
		return nil, fmt.Errorf("mkvmerge identify: %w", err)
	}

	return parseIdentification(output)
}

func parseIdentification(payload []byte) ([]media.Track, error) {
	var ident identification
	if err := json.Unmarshal(payload, &ident); err != nil {
		return nil, fmt.Errorf("mkvmerge parse: %w", err)
	}

	tracks := make([]media.Track, 0, len(ident.Tracks))
	for _, t := range ident.Tracks {
		kind, ok := trackKind(t.Type)
		if !ok {
			continue
		}
		codec := t.Properties.CodecID
		if codec == "" {
			codec = t.Codec
		}
		track := media.Track{
			Kind:     kind,
			Codec:    codec,
			Number:   t.ID,
			Language: t.Properties.Language,
		}
		if kind == media.KindVideo && t.Properties.DefaultDuration > 0 {
			track.FPS = frameRate(t.Properties.DefaultDuration)
		}
		tracks = append(tracks, track)
	}
	return tracks, nil
}

func trackKind(value string) (media.Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "video":
		return media.KindVideo, true
	case "audio":
		return media.KindAudio, true
	case "subtitles":
		return media.KindSubtitles, true
	default:
		return "", false
	}
}

// frameRate converts a default frame duration in nanoseconds to frames per
// second, rounded to the millihertz so NTSC rates render as the familiar
// 23.976/29.97 values.
func frameRate(defaultDuration int64) float64 {
	fps := 1e9 / float64(defaultDuration)
	return math.Round(fps*1000) / 1000
}
