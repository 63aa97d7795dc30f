package media

import (
	"log/slog"
	"regexp"
)

// MissingPolicy decides how Select reacts when no track can be returned.
type MissingPolicy int

const (
	// MissingFatal makes Select return a *MissingTrackError.
	MissingFatal MissingPolicy = iota
	// MissingWarn makes Select log a warning and return no track.
	MissingWarn
)

// Selection describes one track request.
type Selection struct {
	Kind Kind

	// Ordinal is the zero-based rank among kind+codec matches ("the"
	// track of this kind is ordinal 0).
	Ordinal int

	// Explicit, when set, is a direct index into the track list. A
	// negative value disables selection of this kind entirely. The
	// explicit index is honored only at ordinal 0; for higher ordinals it
	// is ignored and matching falls through to ordinal filtering. That
	// asymmetry is long-standing behavior callers rely on.
	Explicit *int

	Pattern *regexp.Regexp
	Missing MissingPolicy
}

// Select picks one track from the list per the selection request. It
// returns nil without error when the kind is disabled or when a
// MissingWarn selection finds nothing.
//
// An explicit index hit is returned as-is, without re-validating its codec
// against the pattern.
func Select(tracks []Track, sel Selection, logger *slog.Logger) (*Track, error) {
	if sel.Explicit != nil && *sel.Explicit < 0 {
		return nil, nil
	}

	if sel.Ordinal == 0 && sel.Explicit != nil {
		idx := *sel.Explicit
		if idx >= len(tracks) {
			return missing(sel, tracks, logger)
		}
		track := tracks[idx]
		return &track, nil
	}

	var matches []Track
	for _, t := range tracks {
		if t.Kind != sel.Kind {
			continue
		}
		if sel.Pattern != nil && !sel.Pattern.MatchString(t.Codec) {
			continue
		}
		matches = append(matches, t)
	}
	if sel.Ordinal >= len(matches) {
		return missing(sel, tracks, logger)
	}
	track := matches[sel.Ordinal]
	return &track, nil
}

func missing(sel Selection, tracks []Track, logger *slog.Logger) (*Track, error) {
	err := &MissingTrackError{Kind: sel.Kind, Ordinal: sel.Ordinal, Explicit: sel.Explicit}
	if sel.Missing == MissingWarn {
		if logger != nil {
			logger.Warn("track not selected, continuing without it",
				slog.String("kind", string(sel.Kind)),
				slog.String("tracks", Summarize(tracks)),
			)
		}
		return nil, nil
	}
	return nil, err
}
