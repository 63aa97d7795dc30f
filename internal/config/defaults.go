package config

const (
	defaultMKVMerge     = "mkvmerge"
	defaultMKVExtract   = "mkvextract"
	defaultFFmpeg       = "ffmpeg"
	defaultMP4Box       = "MP4Box"
	defaultAudioBitrate = "328"
	defaultAudioLayout  = "5.1"
	defaultAudioCodec   = "aac"
	defaultProfileLevel = 4.1
	defaultLogLevel     = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Tools: Tools{
			MKVMerge:   defaultMKVMerge,
			MKVExtract: defaultMKVExtract,
			FFmpeg:     defaultFFmpeg,
			MP4Box:     defaultMP4Box,
		},
		Audio: Audio{
			Bitrate:  defaultAudioBitrate,
			Channels: defaultAudioLayout,
			Codec:    defaultAudioCodec,
		},
		Video: Video{
			ProfileLevel: defaultProfileLevel,
		},
		Logging: Logging{
			Level: defaultLogLevel,
		},
	}
}
