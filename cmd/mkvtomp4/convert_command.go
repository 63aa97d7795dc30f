package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"mkvtomp4/internal/config"
	"mkvtomp4/internal/deps"
	"mkvtomp4/internal/language"
	"mkvtomp4/internal/logging"
	"mkvtomp4/internal/media/mkvmerge"
	"mkvtomp4/internal/pipeline"
	"mkvtomp4/internal/services"
)

type convertFlags struct {
	output string

	videoTrack    int
	audioTrack    int
	subtitleTrack int

	subtitleFile    string
	subtitleLang    string
	subtitleDefault bool

	audioBitrate  string
	audioChannels string
	audioCodec    string
	audioDelayMS  string
	audioLang     string

	fps               float64
	profileLevel      float64
	forceProfileLevel bool

	title    string
	show     string
	genre    string
	year     string
	director string
	season   string
	episode  string

	mkvmerge   string
	mkvextract string
	ffmpeg     string
	mp4box     string

	stopBefore map[pipeline.Stage]*bool

	keepTempFiles bool
	dryRun        bool
	noSummary     bool
	verbose       bool
}

func newConvertCommand(ctx *commandContext) *cobra.Command {
	flags := &convertFlags{stopBefore: map[pipeline.Stage]*bool{}}

	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Convert a Matroska file to an MP4 container",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, ctx, flags, args[0])
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.output, "output", "o", "", "Write the finished MP4 to this path")

	f.IntVar(&flags.videoTrack, "video-track", 0, "Use this track number for video (negative disables)")
	f.IntVar(&flags.audioTrack, "audio-track", 0, "Use this track number for audio (negative disables)")
	f.IntVar(&flags.subtitleTrack, "subtitle-track", 0, "Use this track number for subtitles (negative disables)")

	f.StringVar(&flags.subtitleFile, "subtitle-file", "", "Use this subtitle file instead of extracting one")
	f.StringVar(&flags.subtitleLang, "subtitle-lang", "", "Language code for the subtitle track")
	f.BoolVar(&flags.subtitleDefault, "subtitle-default", false, "Enable the subtitle track by default during playback")

	f.StringVar(&flags.audioBitrate, "audio-bitrate", "", "Re-encode bitrate in kbit/s, e.g. 328")
	f.StringVar(&flags.audioChannels, "audio-channels", "", "Re-encode channel count, e.g. 2 or 5.1")
	f.StringVar(&flags.audioCodec, "audio-codec", "", "Re-encode codec understood by the transcoder")
	f.StringVar(&flags.audioDelayMS, "audio-delay-ms", "", "Delay the muxed audio by this many milliseconds")
	f.StringVar(&flags.audioLang, "audio-lang", "", "Language code for the audio track")

	f.Float64Var(&flags.fps, "fps", 0, "Frame rate to mux with instead of the track's rate")
	f.Float64Var(&flags.profileLevel, "profile-level", 0, "Upper bound for the H.264 profile level")
	f.BoolVar(&flags.forceProfileLevel, "force-profile-level", false, "Rewrite the profile level even upwards")

	f.StringVar(&flags.title, "title", "", "Title metadata")
	f.StringVar(&flags.show, "show", "", "Show metadata (TV)")
	f.StringVar(&flags.genre, "genre", "", "Genre metadata")
	f.StringVar(&flags.year, "year", "", "Year metadata")
	f.StringVar(&flags.director, "director", "", "Director metadata (movie)")
	f.StringVar(&flags.season, "season", "", "Season number metadata (TV)")
	f.StringVar(&flags.episode, "episode", "", "Episode number metadata (TV)")

	f.StringVar(&flags.mkvmerge, "mkvmerge", "", "Track identification command")
	f.StringVar(&flags.mkvextract, "mkvextract", "", "Track extraction command")
	f.StringVar(&flags.ffmpeg, "ffmpeg", "", "Transcoder command")
	f.StringVar(&flags.mp4box, "mp4box", "", "Multiplexer command")

	for _, stage := range pipeline.Stages() {
		target := new(bool)
		flags.stopBefore[stage] = target
		f.BoolVar(target, "stop-before-"+string(stage), false,
			"Stop successfully before the "+string(stage)+" stage")
	}

	f.BoolVar(&flags.keepTempFiles, "keep-temp-files", false, "Keep every temporary file after success")
	f.BoolVarP(&flags.dryRun, "dry-run", "n", false, "Print the commands instead of running them")
	f.BoolVar(&flags.noSummary, "no-summary", false, "Skip the command summary before a live run")
	f.BoolVarP(&flags.verbose, "verbose", "v", false, "Pass verbosity to the external tools")

	return cmd
}

func runConvert(cmd *cobra.Command, ctx *commandContext, flags *convertFlags, source string) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := ctx.ensureLogger()
	if err != nil {
		return err
	}

	req, err := buildRequest(cmd, cfg, flags, source)
	if err != nil {
		return err
	}

	if missing := preflight(req, flags.dryRun); missing != nil {
		return fmt.Errorf("required tool unavailable: %s (%s)", missing.Name, missing.Detail)
	}

	tracks, err := mkvmerge.Identify(cmd.Context(), req.Tools.MKVMerge, source)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !flags.noSummary && !req.DryRun {
		preview := req
		preview.DryRun = true
		preview.KeepTempFiles = true
		recorder := &services.DryRunner{}
		if _, err := pipeline.New(recorder, logging.NewNop()).Run(cmd.Context(), preview, tracks); err != nil {
			return err
		}
		fmt.Fprintln(out, renderCommandSummary(recorder.Commands))
	}

	var exec services.Executor
	if req.DryRun {
		exec = &services.DryRunner{Out: out}
	} else {
		exec = services.NewExecutor(logging.WithComponent(logger, "exec"))
	}

	res, err := pipeline.New(exec, logger).Run(cmd.Context(), req, tracks)
	if err != nil {
		return err
	}
	if res.StoppedBefore != "" {
		fmt.Fprintf(out, "stopped before %s\n", res.StoppedBefore)
		return nil
	}
	if !req.DryRun {
		fmt.Fprintf(out, "wrote %s\n", res.Output)
	}
	return nil
}

// buildRequest layers the command-line flags over the file-backed defaults.
// Only flags the user actually set override configuration values.
func buildRequest(cmd *cobra.Command, cfg *config.Config, flags *convertFlags, source string) (pipeline.Request, error) {
	req := pipeline.FromConfig(cfg)
	req.Source = source
	req.Output = flags.output
	req.Verbose = flags.verbose

	changed := cmd.Flags().Changed
	if changed("video-track") {
		v := flags.videoTrack
		req.VideoTrack = &v
	}
	if changed("audio-track") {
		v := flags.audioTrack
		req.AudioTrack = &v
	}
	if changed("subtitle-track") {
		v := flags.subtitleTrack
		req.SubtitleTrack = &v
	}

	req.SubtitleFile = flags.subtitleFile
	if changed("subtitle-default") {
		req.SubtitleDefault = flags.subtitleDefault
	}
	if changed("subtitle-lang") {
		lang, err := language.Normalize(flags.subtitleLang)
		if err != nil {
			return req, err
		}
		req.SubtitleLang = lang
	}
	if changed("audio-lang") {
		lang, err := language.Normalize(flags.audioLang)
		if err != nil {
			return req, err
		}
		req.AudioLang = lang
	}

	if flags.audioBitrate != "" {
		if _, err := strconv.Atoi(flags.audioBitrate); err != nil {
			return req, fmt.Errorf("audio-bitrate: %q is not a number", flags.audioBitrate)
		}
		req.AudioBitrate = flags.audioBitrate
	}
	if flags.audioChannels != "" {
		req.AudioChannels = flags.audioChannels
	}
	if flags.audioCodec != "" {
		req.AudioCodec = strings.ToLower(flags.audioCodec)
	}
	if flags.audioDelayMS != "" {
		if _, err := strconv.Atoi(flags.audioDelayMS); err != nil {
			return req, fmt.Errorf("audio-delay-ms: %q is not a number", flags.audioDelayMS)
		}
		req.AudioDelayMS = flags.audioDelayMS
	}

	if changed("fps") {
		req.FPS = flags.fps
	}
	if changed("profile-level") {
		req.ProfileLevel = flags.profileLevel
	}
	if changed("force-profile-level") {
		req.ForceProfileLevel = flags.forceProfileLevel
	}
	if changed("keep-temp-files") {
		req.KeepTempFiles = flags.keepTempFiles
	}
	req.DryRun = flags.dryRun

	req.Metadata.Title = flags.title
	req.Metadata.Show = flags.show
	req.Metadata.Genre = flags.genre
	req.Metadata.Year = flags.year
	req.Metadata.Director = flags.director
	req.Metadata.Season = flags.season
	req.Metadata.Episode = flags.episode

	if flags.mkvmerge != "" {
		req.Tools.MKVMerge = flags.mkvmerge
	}
	if flags.mkvextract != "" {
		req.Tools.MKVExtract = flags.mkvextract
	}
	if flags.ffmpeg != "" {
		req.Tools.FFmpeg = flags.ffmpeg
	}
	if flags.mp4box != "" {
		req.Tools.MP4Box = flags.mp4box
	}

	for stage, set := range flags.stopBefore {
		if *set {
			req.StopBefore[stage] = true
		}
	}
	return req, nil
}

// preflight verifies the external binaries before any stage runs. A dry
// run only needs the identification tool; nothing else is spawned.
func preflight(req pipeline.Request, dryRun bool) *deps.Status {
	requirements := deps.Requirements(req.Tools)
	if dryRun {
		filtered := requirements[:0]
		for _, r := range requirements {
			if r.Name == "mkvmerge" {
				filtered = append(filtered, r)
			}
		}
		requirements = filtered
	}
	return deps.FirstMissing(deps.CheckBinaries(requirements))
}
