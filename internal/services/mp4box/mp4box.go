// Package mp4box drives the container multiplexer.
package mp4box

import (
	"context"
	"strconv"
	"strings"

	"mkvtomp4/internal/services"
)

// MuxSpec describes one container-add invocation. DelayMS and Language are
// appended to the audio import options only when non-empty.
type MuxSpec struct {
	RawVideo string
	FPS      float64
	RawAudio string
	DelayMS  string
	Language string
}

// MuxArgs builds the invocation that combines a raw video and raw audio
// stream into a new container at output.
func MuxArgs(binary string, spec MuxSpec, output string) []string {
	audio := spec.RawAudio + "#audio:default"
	if spec.DelayMS != "" {
		audio += ":delay=" + spec.DelayMS
	}
	if spec.Language != "" {
		audio += ":lang=" + spec.Language
	}
	return []string{
		binary,
		"-add", spec.RawVideo + "#video:fps=" + formatFPS(spec.FPS),
		"-add", audio,
		"-new", output,
	}
}

func formatFPS(fps float64) string {
	return strconv.FormatFloat(fps, 'f', -1, 64)
}

// Client wraps MP4Box invocations.
type Client struct {
	binary string
	exec   services.Executor
}

// New constructs a muxer client. An empty binary falls back to the command
// name on PATH.
func New(binary string, exec services.Executor) *Client {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "MP4Box"
	}
	return &Client{binary: binary, exec: exec}
}

// Mux combines the raw streams described by spec into output.
func (c *Client) Mux(ctx context.Context, spec MuxSpec, output string) error {
	return c.exec.Run(ctx, MuxArgs(c.binary, spec, output))
}
