package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Tools holds the paths (or PATH-resolved names) of the external binaries.
type Tools struct {
	MKVMerge   string `toml:"mkvmerge"`
	MKVExtract string `toml:"mkvextract"`
	FFmpeg     string `toml:"ffmpeg"`
	MP4Box     string `toml:"mp4box"`
}

// Audio holds the re-encode defaults applied when the source audio track
// is not already in the target codec.
type Audio struct {
	Bitrate  string `toml:"bitrate"`  // kbit/s, without the "k" suffix
	Channels string `toml:"channels"` // channel count or the "5.1" shorthand
	Codec    string `toml:"codec"`
	DelayMS  string `toml:"delay_ms"`
	Language string `toml:"language"`
}

// Subtitles holds the defaults for subtitle handling.
type Subtitles struct {
	Language string `toml:"language"`
	Default  bool   `toml:"default"`
}

// Video holds the profile-level enforcement settings.
type Video struct {
	ProfileLevel      float64 `toml:"profile_level"`
	ForceProfileLevel bool    `toml:"force_profile_level"`
	FPS               float64 `toml:"fps"` // 0 means take the source track's rate
}

// Output holds output-file behavior.
type Output struct {
	KeepTempFiles bool `toml:"keep_temp_files"`
}

// Logging contains configuration for log output.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "console", "json", or "" for terminal auto-detect
}

// Config encapsulates all file-backed configuration values.
type Config struct {
	Tools     Tools     `toml:"tools"`
	Audio     Audio     `toml:"audio"`
	Subtitles Subtitles `toml:"subtitles"`
	Video     Video     `toml:"video"`
	Output    Output    `toml:"output"`
	Logging   Logging   `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/mkvtomp4/config.toml")
}

// SampleConfig returns the annotated sample configuration file contents.
func SampleConfig() string {
	return sampleConfig
}

// Load locates, parses, and validates a configuration file. The boolean
// reports whether a file was found; defaults apply either way.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}

	projectPath, err := filepath.Abs("mkvtomp4.toml")
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}
