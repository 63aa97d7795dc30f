// Package pipeline sequences the conversion stages: track selection,
// stream extraction, profile correction, audio re-encode, container
// multiplexing, and the optional subtitle/metadata remux. It owns the
// temp-file set and applies the outcome-dependent cleanup policy.
package pipeline
