package lyrics

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Cue is a single timed lyric line.
type Cue struct {
	Time time.Duration
	Text string
}

// Cues is an ordered lyric track.
type Cues []Cue

var (
	timestampRe = regexp.MustCompile(`^((?:\[\d{1,2}:\d{2}(?:[.:]\d{1,3})?\])+)(.*)$`)
	singleTagRe = regexp.MustCompile(`\[(\d{1,2}):(\d{2})(?:[.:](\d{1,3}))?\]`)
)

// ParseLRC extracts timed cues from LRC content. Lines without a leading
// timestamp (including [ar:], [ti:], [al:] metadata tags) are ignored. A line
// may carry several timestamps; each produces its own cue sharing the text.
// Cue text is trimmed; empty-text cues are kept as spacer lines.
func ParseLRC(content string) Cues {
	var cues Cues
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		match := timestampRe.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		text := strings.TrimSpace(match[2])
		for _, tag := range singleTagRe.FindAllStringSubmatch(match[1], -1) {
			cues = append(cues, Cue{Time: tagDuration(tag), Text: text})
		}
	}
	sort.SliceStable(cues, func(i, j int) bool { return cues[i].Time < cues[j].Time })
	return cues
}

// tagDuration converts one [mm:ss.frac] capture into a duration. Fractional
// parts are normalized by digit count: .5 means 500ms, .50 also 500ms,
// .500 likewise.
func tagDuration(tag []string) time.Duration {
	minutes, _ := strconv.Atoi(tag[1])
	seconds, _ := strconv.Atoi(tag[2])
	var millis int
	if tag[3] != "" {
		value, _ := strconv.Atoi(tag[3])
		switch len(tag[3]) {
		case 1:
			millis = value * 100
		case 2:
			millis = value * 10
		default:
			millis = value
		}
	}
	return time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second +
		time.Duration(millis)*time.Millisecond
}

// Shift returns a copy of the cues with every timestamp moved by offset.
// Cues shifted before zero are clamped to zero.
func (c Cues) Shift(offset time.Duration) Cues {
	if offset == 0 || len(c) == 0 {
		return c
	}
	shifted := make(Cues, len(c))
	for i, cue := range c {
		when := cue.Time + offset
		if when < 0 {
			when = 0
		}
		shifted[i] = Cue{Time: when, Text: cue.Text}
	}
	return shifted
}

// ActiveIndex returns the index of the last cue whose time is at or before
// pos, or -1 when pos precedes the first cue or the track is empty.
func (c Cues) ActiveIndex(pos time.Duration) int {
	lo, hi := 0, len(c)
	for lo < hi {
		mid := (lo + hi) / 2
		if c[mid].Time <= pos {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo - 1
}
