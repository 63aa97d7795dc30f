package pipeline

import "fmt"

// Stage names one step of the conversion. Stages run in the order listed
// by Stages and never re-execute.
type Stage string

const (
	StageExtractVideo     Stage = "extract-video"
	StageCorrectProfile   Stage = "correct-profile"
	StageExtractAudio     Stage = "extract-audio"
	StageConvertAudio     Stage = "convert-audio"
	StageExtractSubtitles Stage = "extract-subtitles"
	StageMuxContainer     Stage = "mux-container"
	StageAddSubtitles     Stage = "add-subtitles-or-metadata"
)

// Stages returns every stage in execution order.
func Stages() []Stage {
	return []Stage{
		StageExtractVideo,
		StageCorrectProfile,
		StageExtractAudio,
		StageConvertAudio,
		StageExtractSubtitles,
		StageMuxContainer,
		StageAddSubtitles,
	}
}

// ParseStage validates a stage name supplied by the user.
func ParseStage(name string) (Stage, error) {
	for _, s := range Stages() {
		if string(s) == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown stage %q", name)
}
