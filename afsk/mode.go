package afsk

import (
	"fmt"
	"strings"
)

// Mode selects the hardware-profile framing variant a transmission is
// built for.
type Mode int

const (
	// ModeDefault is the plain preamble-and-message framing most
	// encoder/decoder pairs use.
	ModeDefault Mode = iota
	// ModeNWS appends two null bytes after the message, for receivers
	// that expect a trailing pair of sync bytes.
	ModeNWS
	// ModeDigital uses a distinct first-burst/standard-burst framing
	// with a leading sentinel byte and a trailing 3-byte marker.
	ModeDigital
	// ModeSage appends a single 0xFF byte after the message.
	ModeSage
	// ModeTrilithic behaves like ModeDefault for framing, but shortens
	// the post-header silence (see postHeaderSilenceMS).
	ModeTrilithic
)

func (m Mode) String() string {
	switch m {
	case ModeDefault:
		return "DEFAULT"
	case ModeNWS:
		return "NWS"
	case ModeDigital:
		return "DIGITAL"
	case ModeSage:
		return "SAGE"
	case ModeTrilithic:
		return "TRILITHIC"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode resolves a hardware-profile name (case-insensitive) to a
// Mode, for CLI flags and YAML profile config.
func ParseMode(s string) (Mode, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEFAULT", "":
		return ModeDefault, nil
	case "NWS":
		return ModeNWS, nil
	case "DIGITAL":
		return ModeDigital, nil
	case "SAGE":
		return ModeSage, nil
	case "TRILITHIC":
		return ModeTrilithic, nil
	default:
		return 0, fmt.Errorf("afsk: unknown mode %q", s)
	}
}
