package config

import (
	"fmt"
	"strings"

	"mkvtomp4/internal/language"
)

func (c *Config) normalize() error {
	c.normalizeTools()
	if err := c.normalizeLanguages(); err != nil {
		return err
	}
	c.normalizeLogging()
	c.Audio.Bitrate = strings.TrimSpace(c.Audio.Bitrate)
	c.Audio.Channels = strings.TrimSpace(c.Audio.Channels)
	c.Audio.Codec = strings.ToLower(strings.TrimSpace(c.Audio.Codec))
	c.Audio.DelayMS = strings.TrimSpace(c.Audio.DelayMS)
	return nil
}

func (c *Config) normalizeTools() {
	fill := func(value *string, fallback string) {
		*value = strings.TrimSpace(*value)
		if *value == "" {
			*value = fallback
		}
	}
	fill(&c.Tools.MKVMerge, defaultMKVMerge)
	fill(&c.Tools.MKVExtract, defaultMKVExtract)
	fill(&c.Tools.FFmpeg, defaultFFmpeg)
	fill(&c.Tools.MP4Box, defaultMP4Box)
}

func (c *Config) normalizeLanguages() error {
	var err error
	if c.Audio.Language, err = language.Normalize(c.Audio.Language); err != nil {
		return fmt.Errorf("audio.language: %w", err)
	}
	if c.Subtitles.Language, err = language.Normalize(c.Subtitles.Language); err != nil {
		return fmt.Errorf("subtitles.language: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
}
