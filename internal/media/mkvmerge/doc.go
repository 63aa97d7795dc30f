// Package mkvmerge provides a typed wrapper around mkvmerge JSON
// identification output.
//
// Primary entry point:
//   - Identify: executes `mkvmerge -J` and returns the container's tracks
//     as media.Track records.
//
// The codec labels are passed through verbatim (including the Matroska
// V_/A_/S_ prefixes); downstream matching is tolerant of the prefix. Video
// frame rates are derived from the reported default frame duration.
package mkvmerge
