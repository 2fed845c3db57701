// Package lyrics parses LRC lyric text and resolves which line is active for
// a given playback position.
//
// Timestamps of the form [mm:ss] and [mm:ss.xx] are supported, including
// repeated timestamps on one line. Metadata tags such as [ar:...] and lines
// without a timestamp are skipped. Cues are always returned sorted by time so
// ActiveIndex can binary search.
package lyrics
