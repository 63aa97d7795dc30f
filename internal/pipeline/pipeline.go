package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"mkvtomp4/internal/language"
	"mkvtomp4/internal/logging"
	"mkvtomp4/internal/media"
	"mkvtomp4/internal/profile"
	"mkvtomp4/internal/services"
	"mkvtomp4/internal/services/ffmpeg"
	"mkvtomp4/internal/services/mkvextract"
	"mkvtomp4/internal/services/mp4box"
)

// argv0 is the command name echoed for the in-process profile correction
// during a dry run, where no external tool stands in for it.
const argv0 = "mkvtomp4"

// Pipeline runs conversions. The executor decides whether commands spawn
// processes or are merely recorded; all branching and temp-file bookkeeping
// is identical either way.
type Pipeline struct {
	exec   services.Executor
	logger *slog.Logger
}

// New constructs a pipeline. A nil logger discards diagnostics.
func New(exec services.Executor, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Pipeline{exec: exec, logger: logger}
}

// Run converts one source container described by the pre-identified track
// list. Stop-before gates end the run successfully before the named stage,
// leaving prior temp files in place.
func (p *Pipeline) Run(ctx context.Context, req Request, tracks []media.Track) (res *Result, err error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	logger := logging.WithComponent(p.logger, "pipeline").With(slog.String("run", uuid.NewString()))
	res = &Result{}
	temps := &tempSet{}
	defer func() {
		res.TempFiles = temps.list()
		p.teardown(ctx, req, temps, err, res.StoppedBefore, logger)
	}()

	gate := func(s Stage) bool {
		if req.StopBefore[s] {
			res.StoppedBefore = s
			logger.Info("stopping before stage", slog.String("stage", string(s)))
			return true
		}
		return false
	}

	video, audio, subtitle, err := p.selectTracks(req, tracks, logger)
	if err != nil {
		return res, err
	}

	extractor := mkvextract.New(req.Tools.MKVExtract, req.Verbose, p.exec)
	transcoder := ffmpeg.New(req.Tools.FFmpeg, p.exec)
	muxer := mp4box.New(req.Tools.MP4Box, p.exec)

	// Stage 1: extract the video elementary stream.
	if gate(StageExtractVideo) {
		return res, nil
	}
	videoExt, err := media.VideoExtension(video.Codec)
	if err != nil {
		return res, err
	}
	rawVideo := req.Source + videoExt
	temps.add(rawVideo)
	if err := extractor.ExtractTrack(ctx, req.Source, video.Number, rawVideo); err != nil {
		return res, err
	}

	// Stage 2: patch the profile level. HEVC streams carry no such byte.
	if gate(StageCorrectProfile) {
		return res, nil
	}
	if videoExt == ".h264" {
		if err := p.correctProfile(ctx, rawVideo, req, logger); err != nil {
			return res, err
		}
	}

	// Stage 3: extract the audio stream.
	if gate(StageExtractAudio) {
		return res, nil
	}
	audioExt := media.AudioExtension(audio.Codec)
	rawAudio := req.Source + "." + audioExt
	temps.add(rawAudio)
	if err := extractor.ExtractTrack(ctx, req.Source, audio.Number, rawAudio); err != nil {
		return res, err
	}

	// Stage 4: re-encode unless the source audio is already AAC.
	if gate(StageConvertAudio) {
		return res, nil
	}
	muxAudio := rawAudio
	if audioExt != "aac" {
		muxAudio = rawAudio + ".aac"
		temps.add(muxAudio)
		opts := ffmpeg.AudioOptions{
			Bitrate:  req.AudioBitrate,
			Channels: req.AudioChannels,
			Codec:    req.AudioCodec,
		}
		if err := transcoder.ConvertAudio(ctx, rawAudio, opts, muxAudio); err != nil {
			return res, err
		}
	}

	// Stage 5: produce the subtitle sidecar. An externally supplied file is
	// used verbatim and never re-extracted; an extracted sidecar is a
	// deliverable in its own right, not a temp file.
	if gate(StageExtractSubtitles) {
		return res, nil
	}
	rawSub := req.SubtitleFile
	if subtitle != nil && rawSub == "" {
		subExt, err := media.SubtitleExtension(subtitle.Codec)
		if err != nil {
			return res, err
		}
		rawSub = trimExt(req.Source) + "." + subExt
		if err := extractor.ExtractTrack(ctx, req.Source, subtitle.Number, rawSub); err != nil {
			return res, err
		}
	}

	outs := planOutputs(req.Source, req.Output, rawSub != "", req.Metadata.Present())
	if outs.Intermediate() {
		temps.add(outs.Muxed)
	}
	res.Output = outs.Deliverable()

	// Stage 6: mux video and audio into the container.
	if gate(StageMuxContainer) {
		return res, nil
	}
	if !req.DryRun {
		release, err := acquireOutputLock(outs.Deliverable())
		if err != nil {
			return res, err
		}
		defer release()
	}

	fps := req.FPS
	if fps == 0 {
		fps = video.FPS
	}
	if fps == 0 {
		return res, fmt.Errorf("frame rate of track %d unknown; set fps explicitly", video.Number)
	}
	audioLang := req.AudioLang
	if audioLang == "" {
		audioLang = trackLanguage(audio.Language)
	}
	muxSpec := mp4box.MuxSpec{
		RawVideo: rawVideo,
		FPS:      fps,
		RawAudio: muxAudio,
		DelayMS:  req.AudioDelayMS,
		Language: audioLang,
	}
	if err := muxer.Mux(ctx, muxSpec, outs.Muxed); err != nil {
		return res, err
	}

	// Stage 7: remux with the subtitle track and/or metadata. When neither
	// exists the muxed container is already the deliverable.
	if outs.Intermediate() {
		if gate(StageAddSubtitles) {
			return res, nil
		}
		remux := ffmpeg.RemuxSpec{Video: outs.Muxed, Metadata: req.Metadata}
		if rawSub != "" {
			remux.Subtitle = rawSub
			remux.SubtitleDefault = req.SubtitleDefault
			remux.AudioLang = audioLang
			remux.SubtitleLang = req.SubtitleLang
			if lang := trackLanguage(subtitle.Language); lang != "" {
				remux.SubtitleLang = lang
			}
		}
		if err := transcoder.Remux(ctx, remux, outs.Final); err != nil {
			return res, err
		}
	}

	logger.Info("conversion finished", slog.String("output", res.Output))
	return res, nil
}

// selectTracks resolves the three track requests. Video and audio are
// mandatory; a missing subtitle track degrades to a warning, optionally
// replaced by a synthesized track backed by the external subtitle file.
func (p *Pipeline) selectTracks(req Request, tracks []media.Track, logger *slog.Logger) (video, audio, subtitle *media.Track, err error) {
	video, err = media.Select(tracks, media.Selection{
		Kind:     media.KindVideo,
		Explicit: req.VideoTrack,
		Pattern:  req.Patterns.Video,
		Missing:  media.MissingFatal,
	}, logger)
	if err != nil {
		return nil, nil, nil, err
	}
	if video == nil {
		return nil, nil, nil, &media.MissingTrackError{Kind: media.KindVideo, Explicit: req.VideoTrack}
	}

	audio, err = media.Select(tracks, media.Selection{
		Kind:     media.KindAudio,
		Explicit: req.AudioTrack,
		Pattern:  req.Patterns.Audio,
		Missing:  media.MissingFatal,
	}, logger)
	if err != nil {
		return nil, nil, nil, err
	}
	if audio == nil {
		return nil, nil, nil, &media.MissingTrackError{Kind: media.KindAudio, Explicit: req.AudioTrack}
	}

	subtitle, err = media.Select(tracks, media.Selection{
		Kind:     media.KindSubtitles,
		Explicit: req.SubtitleTrack,
		Pattern:  req.Patterns.Subtitles,
		Missing:  media.MissingWarn,
	}, logger)
	if err != nil {
		return nil, nil, nil, err
	}
	if subtitle == nil && req.SubtitleFile != "" {
		synthesized := media.SynthesizeSubtitle(req.SubtitleFile, req.SubtitleLang)
		subtitle = &synthesized
	}
	return video, audio, subtitle, nil
}

// correctProfile patches the extracted stream in place. On a dry run the
// in-process write is replaced by echoing the equivalent standalone
// invocation through the executor, keeping the command sequence complete.
func (p *Pipeline) correctProfile(ctx context.Context, rawVideo string, req Request, logger *slog.Logger) error {
	if req.DryRun {
		argv := []string{argv0, "profile", "correct", "--level", formatLevel(req.ProfileLevel)}
		if req.ForceProfileLevel {
			argv = append(argv, "--force")
		}
		return p.exec.Run(ctx, append(argv, rawVideo))
	}
	return profile.CorrectLevel(rawVideo, req.ProfileLevel, req.ForceProfileLevel, logger)
}

// teardown applies the outcome-dependent temp-file policy: keep on failure
// or early stop, echo a deletion command on dry run, delete best-effort on
// a live success unless retention was requested.
func (p *Pipeline) teardown(ctx context.Context, req Request, temps *tempSet, runErr error, stopped Stage, logger *slog.Logger) {
	if temps.empty() {
		return
	}
	files := temps.list()
	switch {
	case runErr != nil:
		logger.Warn("keeping temporary files after failure",
			slog.String("files", strings.Join(files, " ")))
	case stopped != "":
		logger.Info("temporary files left in place by early stop",
			slog.String("stage", string(stopped)),
			slog.String("files", strings.Join(files, " ")))
	case req.DryRun:
		_ = p.exec.Run(ctx, append([]string{"rm", "-f"}, files...))
	case req.KeepTempFiles:
		logger.Info("keeping temporary files",
			slog.String("files", strings.Join(files, " ")))
	default:
		for _, f := range files {
			if err := os.Remove(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
				logger.Warn("could not remove temporary file",
					slog.String("path", f), slog.String("error", err.Error()))
			}
		}
	}
}

// acquireOutputLock guards the output path against a concurrent run over
// the same deliverable. The caller must invoke the release function.
func acquireOutputLock(output string) (func(), error) {
	lock := flock.New(output + ".lock")
	acquired, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock output %s: %w", output, err)
	}
	if !acquired {
		return nil, fmt.Errorf("output %s is locked by another run", output)
	}
	return func() {
		_ = lock.Unlock()
		_ = os.Remove(lock.Path())
	}, nil
}

func trackLanguage(code string) string {
	if !language.Known(code) {
		return ""
	}
	normalized, err := language.Normalize(code)
	if err != nil {
		return code
	}
	return normalized
}

func trimExt(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}

func formatLevel(level float64) string {
	return strconv.FormatFloat(level, 'f', -1, 64)
}
