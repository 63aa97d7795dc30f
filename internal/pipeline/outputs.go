package pipeline

import (
	"path/filepath"
	"strings"
)

// outputPlan fixes the stage-6 and stage-7 target paths. It is computed
// once, before the mux stage, from the subtitle/metadata combination.
type outputPlan struct {
	// Muxed is the mux-container target. When Final is empty it is the
	// deliverable itself; otherwise it is an intermediate registered as a
	// temp file.
	Muxed string

	// Final is the add-subtitles-or-metadata target, empty when that
	// stage will not run.
	Final string
}

// Intermediate reports whether Muxed is a temp file awaiting a remux pass.
func (o outputPlan) Intermediate() bool { return o.Final != "" }

// Deliverable returns the path the run ultimately produces.
func (o outputPlan) Deliverable() string {
	if o.Final != "" {
		return o.Final
	}
	return o.Muxed
}

// planOutputs derives the output naming from the four subtitle/metadata
// combinations. An explicit output path is used verbatim for the
// deliverable, with intermediates suffixed onto it; otherwise names derive
// from the source with its extension stripped.
func planOutputs(source, explicit string, hasSubtitle, hasMetadata bool) outputPlan {
	stem := explicit
	final := explicit
	if explicit == "" {
		stem = strings.TrimSuffix(source, filepath.Ext(source))
		final = stem + ".mp4"
	}

	switch {
	case hasSubtitle:
		return outputPlan{Muxed: stem + ".nosub.mp4", Final: final}
	case hasMetadata:
		return outputPlan{Muxed: stem + ".nometa.mp4", Final: final}
	default:
		return outputPlan{Muxed: final}
	}
}
