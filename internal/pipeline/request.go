package pipeline

import (
	"errors"

	"mkvtomp4/internal/config"
	"mkvtomp4/internal/media"
	"mkvtomp4/internal/services/ffmpeg"
)

// Request carries every user-tunable parameter of one conversion run. It
// is fully resolved before Run starts; no stage mutates it. Frame rate and
// audio language are back-filled from the selected tracks when unset, but
// that happens on local copies, never on the request itself.
type Request struct {
	Source string
	Output string // optional explicit output path; empty derives from Source

	// Track overrides. Nil selects by ordinal matching; a negative value
	// disables the kind entirely.
	VideoTrack    *int
	AudioTrack    *int
	SubtitleTrack *int

	// SubtitleFile supplies an external sidecar used verbatim, suppressing
	// in-container subtitle extraction.
	SubtitleFile    string
	SubtitleLang    string
	SubtitleDefault bool

	AudioBitrate  string
	AudioChannels string
	AudioCodec    string
	AudioDelayMS  string
	AudioLang     string

	FPS               float64 // 0 takes the selected video track's rate
	ProfileLevel      float64
	ForceProfileLevel bool

	Metadata ffmpeg.MetadataFields

	// StopBefore terminates the run successfully before the named stages,
	// leaving prior temp files in place.
	StopBefore map[Stage]bool

	DryRun        bool
	KeepTempFiles bool
	Verbose       bool

	Tools    config.Tools
	Patterns media.PatternTable
}

// FromConfig seeds a request with the file-backed defaults. Per-run flags
// are layered on top by the caller.
func FromConfig(cfg *config.Config) Request {
	return Request{
		AudioBitrate:      cfg.Audio.Bitrate,
		AudioChannels:     cfg.Audio.Channels,
		AudioCodec:        cfg.Audio.Codec,
		AudioDelayMS:      cfg.Audio.DelayMS,
		AudioLang:         cfg.Audio.Language,
		SubtitleLang:      cfg.Subtitles.Language,
		SubtitleDefault:   cfg.Subtitles.Default,
		FPS:               cfg.Video.FPS,
		ProfileLevel:      cfg.Video.ProfileLevel,
		ForceProfileLevel: cfg.Video.ForceProfileLevel,
		KeepTempFiles:     cfg.Output.KeepTempFiles,
		Tools:             cfg.Tools,
		Patterns:          media.DefaultPatterns(),
		StopBefore:        map[Stage]bool{},
	}
}

func (r Request) validate() error {
	if r.Source == "" {
		return errors.New("no source file given")
	}
	return nil
}

// Result describes a finished run.
type Result struct {
	// Output is the path of the produced container. Empty when the run
	// stopped before the output name was committed.
	Output string

	// StoppedBefore is set when a stop-before gate ended the run early.
	StoppedBefore Stage

	// TempFiles lists every intermediate path the run registered, in
	// creation order, regardless of whether cleanup removed them.
	TempFiles []string
}
