package ffmpeg

import (
	"reflect"
	"testing"
)

func TestConvertAudioArgs(t *testing.T) {
	opts := AudioOptions{Bitrate: "328", Channels: "5.1", Codec: "aac"}
	got := ConvertAudioArgs("ffmpeg", "movie.mkv.ac3", opts, "movie.mkv.ac3.aac")
	want := []string{
		"ffmpeg", "-y", "-i", "movie.mkv.ac3",
		"-ac", "6", "-acodec", "aac", "-ab", "328k",
		"movie.mkv.ac3.aac",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("args = %v, want %v", got, want)
	}
}

func TestConvertAudioArgsStereoPassthrough(t *testing.T) {
	opts := AudioOptions{Bitrate: "128", Channels: "2", Codec: "aac"}
	got := ConvertAudioArgs("ffmpeg", "in.dts", opts, "out.aac")
	if got[5] != "2" {
		t.Fatalf("expected channel count to pass through, got %v", got)
	}
}

func TestRemuxArgsMetadataOnly(t *testing.T) {
	spec := RemuxSpec{
		Video:    "movie.nometa.mp4",
		Metadata: MetadataFields{Title: "The Movie", Year: "2008", Director: "Someone"},
	}
	got := RemuxArgs("ffmpeg", spec, "movie.mp4")
	want := []string{
		"ffmpeg", "-y", "-i", "movie.nometa.mp4",
		"-c:v", "copy", "-c:a", "copy",
		"-metadata", "title=The Movie",
		"-metadata", "date=2008",
		"-metadata", "artist=Someone",
		"movie.mp4",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("args = %v, want %v", got, want)
	}
}

func TestRemuxArgsSubtitleAndMetadata(t *testing.T) {
	spec := RemuxSpec{
		Video:           "movie.nosub.mp4",
		Subtitle:        "movie.srt",
		SubtitleLang:    "eng",
		AudioLang:       "eng",
		SubtitleDefault: true,
		Metadata:        MetadataFields{Show: "The Show", Season: "2", Episode: "5"},
	}
	got := RemuxArgs("ffmpeg", spec, "movie.mp4")
	want := []string{
		"ffmpeg", "-y", "-i", "movie.nosub.mp4", "-i", "movie.srt",
		"-c:v", "copy", "-c:a", "copy",
		"-c:s", "mov_text",
		"-metadata:s:s:0", "language=eng",
		"-metadata:s:a:0", "language=eng",
		"-metadata", "show=The Show",
		"-metadata", "season_number=2",
		"-metadata", "episode_sort=5",
		"-disposition:s:0", "default",
		"movie.mp4",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("args = %v, want %v", got, want)
	}
}

func TestRemuxArgsSubtitleNotDefault(t *testing.T) {
	spec := RemuxSpec{Video: "v.mp4", Subtitle: "s.srt"}
	got := RemuxArgs("ffmpeg", spec, "out.mp4")
	foundDisposition := false
	for i, arg := range got {
		if arg == "-disposition:s:0" {
			foundDisposition = true
			if got[i+1] != "0" {
				t.Fatalf("expected disposition 0, got %q", got[i+1])
			}
		}
	}
	if !foundDisposition {
		t.Fatalf("expected disposition flag in %v", got)
	}
}

func TestMetadataFieldsPresent(t *testing.T) {
	if (MetadataFields{}).Present() {
		t.Fatalf("empty metadata must not be present")
	}
	if !(MetadataFields{Genre: "Drama"}).Present() {
		t.Fatalf("expected metadata with genre to be present")
	}
}
