// Package coverart turns embedded cover images into terminal output.
//
// Three render paths exist: the Kitty graphics protocol and iTerm2 inline
// images for terminals that support them, and a universal half-block
// renderer that paints two pixels per character cell with 24-bit color. The
// interactive UI always uses half-blocks because raw escape passthrough does
// not survive a TUI framework's renderer; the native protocols back the
// `punini art` command, which owns stdout directly.
package coverart
