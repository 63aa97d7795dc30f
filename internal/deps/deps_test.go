package deps

import (
	"os"
	"path/filepath"
	"testing"

	"mkvtomp4/internal/config"
)

func TestCheckBinaries(t *testing.T) {
	binDir := t.TempDir()
	present := filepath.Join(binDir, "present")
	script := []byte("#!/bin/sh\nexit 0\n")
	if err := os.WriteFile(present, script, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	reqs := []Requirement{
		{Name: "Present", Command: present},
		{Name: "Missing", Command: "clearly-not-present-binary"},
		{Name: "Unset", Command: ""},
	}

	results := CheckBinaries(reqs)
	if len(results) != len(reqs) {
		t.Fatalf("expected %d results, got %d", len(reqs), len(results))
	}
	if !results[0].Available {
		t.Fatalf("expected first requirement to be available, got %#v", results[0])
	}
	if results[1].Available || results[1].Detail == "" {
		t.Fatalf("expected missing binary with detail, got %#v", results[1])
	}
	if results[2].Available || results[2].Detail != "command not configured" {
		t.Fatalf("expected unconfigured detail, got %#v", results[2])
	}
}

func TestRequirementsUseConfiguredPaths(t *testing.T) {
	tools := config.Tools{
		MKVMerge:   "/opt/mkvtoolnix/mkvmerge",
		MKVExtract: "/opt/mkvtoolnix/mkvextract",
		FFmpeg:     "ffmpeg",
		MP4Box:     "MP4Box",
	}
	reqs := Requirements(tools)
	if len(reqs) != 4 {
		t.Fatalf("expected 4 requirements, got %d", len(reqs))
	}
	if reqs[0].Command != "/opt/mkvtoolnix/mkvmerge" {
		t.Fatalf("unexpected mkvmerge command: %q", reqs[0].Command)
	}
}

func TestFirstMissing(t *testing.T) {
	statuses := []Status{
		{Name: "a", Available: true},
		{Name: "b", Available: false, Detail: "gone"},
		{Name: "c", Available: false},
	}
	missing := FirstMissing(statuses)
	if missing == nil || missing.Name != "b" {
		t.Fatalf("expected first missing to be b, got %+v", missing)
	}
	if FirstMissing(statuses[:1]) != nil {
		t.Fatalf("expected nil when all available")
	}
}
