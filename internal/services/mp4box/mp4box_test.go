package mp4box

import (
	"reflect"
	"testing"
)

func TestMuxArgs(t *testing.T) {
	spec := MuxSpec{
		RawVideo: "movie.mkv.h264",
		FPS:      23.976,
		RawAudio: "movie.mkv.ac3.aac",
	}
	got := MuxArgs("MP4Box", spec, "movie.mp4")
	want := []string{
		"MP4Box",
		"-add", "movie.mkv.h264#video:fps=23.976",
		"-add", "movie.mkv.ac3.aac#audio:default",
		"-new", "movie.mp4",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("args = %v, want %v", got, want)
	}
}

func TestMuxArgsDelayAndLanguage(t *testing.T) {
	spec := MuxSpec{
		RawVideo: "v.h264",
		FPS:      25,
		RawAudio: "a.aac",
		DelayMS:  "200",
		Language: "eng",
	}
	got := MuxArgs("MP4Box", spec, "out.mp4")
	want := []string{
		"MP4Box",
		"-add", "v.h264#video:fps=25",
		"-add", "a.aac#audio:default:delay=200:lang=eng",
		"-new", "out.mp4",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("args = %v, want %v", got, want)
	}
}
