package coverart

import (
	"os"

	"github.com/BourgeoisBear/rasterm"
	"github.com/mattn/go-isatty"
)

// Protocol identifies how cover art reaches the terminal.
type Protocol string

const (
	ProtocolNone       Protocol = "none"
	ProtocolKitty      Protocol = "kitty"
	ProtocolITerm      Protocol = "iterm"
	ProtocolHalfblocks Protocol = "halfblocks"
)

// ParseProtocol maps a config string onto a Protocol, resolving "auto" via
// terminal detection.
func ParseProtocol(value string) Protocol {
	switch value {
	case "kitty":
		return ProtocolKitty
	case "iterm":
		return ProtocolITerm
	case "halfblocks":
		return ProtocolHalfblocks
	case "none":
		return ProtocolNone
	default:
		return Detect()
	}
}

// Detect picks the richest protocol the current terminal supports. Without a
// tty on stdout there is nothing to draw into, so it returns none.
func Detect() Protocol {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return ProtocolNone
	}
	if rasterm.IsKittyCapable() {
		return ProtocolKitty
	}
	if rasterm.IsItermCapable() {
		return ProtocolITerm
	}
	return ProtocolHalfblocks
}
