// Package config loads, normalizes, and validates the converter
// configuration.
//
// Configuration comes from an optional TOML file
// (~/.config/mkvtomp4/config.toml or ./mkvtomp4.toml) layered over
// repository defaults; CLI flags override individual values after loading.
// Once a conversion starts the configuration is treated as immutable.
package config
