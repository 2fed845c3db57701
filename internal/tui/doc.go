// Package tui implements the interactive player interface.
//
// The layout mirrors a classic two-pane player: a file browser on the left,
// and on the right a cover art box, a metadata box, a synchronized lyrics
// list, and a progress gauge. A periodic tick drives lyric sync and the
// gauge; everything else is event-driven through bubbletea messages. Track
// loading (decode, tag probe, lyric resolution, cover decode) runs in
// commands so the UI never blocks on IO.
package tui
