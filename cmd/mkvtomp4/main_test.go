package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mkvtomp4/internal/pipeline"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestProfilePrintAndCorrect(t *testing.T) {
	stream := filepath.Join(t.TempDir(), "movie.h264")
	content := make([]byte, 16)
	content[7] = 50
	if err := os.WriteFile(stream, content, 0o644); err != nil {
		t.Fatalf("write stream: %v", err)
	}

	out, err := runCLI(t, "profile", "print", stream)
	if err != nil {
		t.Fatalf("print: %v", err)
	}
	if strings.TrimSpace(out) != "5" {
		t.Fatalf("printed level = %q, want 5", strings.TrimSpace(out))
	}

	if _, err := runCLI(t, "--log-format", "json", "profile", "correct", "--level", "4.1", stream); err != nil {
		t.Fatalf("correct: %v", err)
	}

	out, err = runCLI(t, "profile", "print", stream)
	if err != nil {
		t.Fatalf("re-print: %v", err)
	}
	if strings.TrimSpace(out) != "4.1" {
		t.Fatalf("corrected level = %q, want 4.1", strings.TrimSpace(out))
	}
}

func TestProfilePrintMissingFile(t *testing.T) {
	if _, err := runCLI(t, "profile", "print", filepath.Join(t.TempDir(), "absent.h264")); err == nil {
		t.Fatalf("expected error for missing stream")
	}
}

func TestConfigInitAndShow(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	out, err := runCLI(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if !strings.Contains(out, target) {
		t.Fatalf("init output missing target: %q", out)
	}
	if _, err := runCLI(t, "config", "init", "--path", target); err == nil {
		t.Fatalf("expected error without --overwrite")
	}

	out, err = runCLI(t, "--config", target, "config", "show")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if !strings.Contains(out, "mkvextract") || !strings.Contains(out, "profile_level") {
		t.Fatalf("show output incomplete: %q", out)
	}
}

func TestConvertRegistersStopFlags(t *testing.T) {
	cmd := newConvertCommand(newCommandContext(new(string), new(string), new(string)))
	for _, stage := range pipeline.Stages() {
		if cmd.Flags().Lookup("stop-before-"+string(stage)) == nil {
			t.Fatalf("missing stop flag for stage %s", stage)
		}
	}
}

func TestRenderCommandSummary(t *testing.T) {
	out := renderCommandSummary([][]string{
		{"mkvextract", "tracks", "movie.mkv", "0:movie.mkv.h264"},
		{"MP4Box", "-new", "movie file.mp4"},
	})
	if !strings.Contains(out, "mkvextract tracks movie.mkv 0:movie.mkv.h264") {
		t.Fatalf("summary missing command: %q", out)
	}
	if !strings.Contains(out, "'movie file.mp4'") {
		t.Fatalf("summary must shell-quote arguments: %q", out)
	}
}
