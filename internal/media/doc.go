// Package media models the tracks reported by the demuxer and selects the
// ones a conversion should use.
//
// Track records are produced once by the identification step (see the
// mkvmerge subpackage) and are read-only afterwards. Selection works on a
// configurable table of codec-label regexes because demuxer vocabularies
// differ slightly between tools and versions; the patterns tolerate the
// Matroska one-letter category prefixes (V_, A_, S_).
package media
