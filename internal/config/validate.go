package config

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateAudio(); err != nil {
		return err
	}
	if err := c.validateVideo(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateAudio() error {
	bitrate, err := strconv.Atoi(c.Audio.Bitrate)
	if err != nil || bitrate <= 0 {
		return fmt.Errorf("audio.bitrate must be a positive kbit/s integer, got %q", c.Audio.Bitrate)
	}
	if c.Audio.Channels != "5.1" {
		channels, err := strconv.Atoi(c.Audio.Channels)
		if err != nil || channels <= 0 {
			return fmt.Errorf("audio.channels must be a channel count or \"5.1\", got %q", c.Audio.Channels)
		}
	}
	if c.Audio.Codec == "" {
		return errors.New("audio.codec must be set")
	}
	if c.Audio.DelayMS != "" {
		if _, err := strconv.Atoi(c.Audio.DelayMS); err != nil {
			return fmt.Errorf("audio.delay_ms must be an integer, got %q", c.Audio.DelayMS)
		}
	}
	return nil
}

func (c *Config) validateVideo() error {
	encoded := math.Round(c.Video.ProfileLevel * 10)
	// The level byte is a signed 8-bit value in the raw stream.
	if encoded <= 0 || encoded > math.MaxInt8 {
		return fmt.Errorf("video.profile_level must be between 0.1 and 12.7, got %v", c.Video.ProfileLevel)
	}
	if c.Video.FPS < 0 {
		return fmt.Errorf("video.fps must not be negative, got %v", c.Video.FPS)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}
