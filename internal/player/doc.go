// Package player decodes audio files and drives playback through the
// platform audio device.
//
// The Engine owns a single current track. Loading a new track stops and
// replaces the previous one; position and duration derive from the decoder's
// sample position, so they stay exact under pause and resume. The speaker is
// abstracted behind the Output interface, letting tests exercise the engine
// with a silent in-memory output.
package player
