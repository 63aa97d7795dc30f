// Package deps checks the availability of the external tools the pipeline
// drives, so a missing binary surfaces before any stage runs.
package deps

import (
	"fmt"
	"os/exec"
	"strings"

	"mkvtomp4/internal/config"
)

// Requirement defines an external dependency the converter relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Available   bool
	Detail      string
}

// Requirements lists the binaries a full conversion needs, using the
// configured tool paths.
func Requirements(tools config.Tools) []Requirement {
	return []Requirement{
		{Name: "mkvmerge", Command: tools.MKVMerge, Description: "track identification"},
		{Name: "mkvextract", Command: tools.MKVExtract, Description: "track extraction"},
		{Name: "ffmpeg", Command: tools.FFmpeg, Description: "audio re-encode and metadata remux"},
		{Name: "MP4Box", Command: tools.MP4Box, Description: "container multiplexing"},
	}
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		if _, err := exec.LookPath(cmd); err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		results = append(results, status)
	}
	return results
}

// FirstMissing returns the first unavailable status, or nil when all
// requirements are met.
func FirstMissing(statuses []Status) *Status {
	for i := range statuses {
		if !statuses[i].Available {
			return &statuses[i]
		}
	}
	return nil
}
