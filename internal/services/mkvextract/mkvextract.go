// Package mkvextract drives the track demuxer.
package mkvextract

import (
	"context"
	"fmt"
	"strings"

	"mkvtomp4/internal/services"
)

// ExtractTrackArgs builds the demux invocation that writes one track of the
// source container to dest.
func ExtractTrackArgs(binary, source string, track int, dest string, verbose bool) []string {
	args := []string{binary, "tracks", source}
	if verbose {
		args = append(args, "-v")
	}
	return append(args, fmt.Sprintf("%d:%s", track, dest))
}

// Client wraps mkvextract invocations.
type Client struct {
	binary  string
	verbose bool
	exec    services.Executor
}

// New constructs a demuxer client. An empty binary falls back to the
// command name on PATH.
func New(binary string, verbose bool, exec services.Executor) *Client {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "mkvextract"
	}
	return &Client{binary: binary, verbose: verbose, exec: exec}
}

// ExtractTrack demuxes one track from source into dest.
func (c *Client) ExtractTrack(ctx context.Context, source string, track int, dest string) error {
	return c.exec.Run(ctx, ExtractTrackArgs(c.binary, source, track, dest, c.verbose))
}
