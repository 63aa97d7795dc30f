// Package services provides execution plumbing shared by the external-tool
// clients: an Executor abstraction over process invocation, a dry-run
// implementation that echoes shell-quoted command lines, and the error
// types that classify tool failures.
//
// Tool clients (the mkvextract, mp4box, and ffmpeg subpackages) construct
// logical argument vectors and hand them to an Executor; nothing in this
// layer interprets tool output.
package services
