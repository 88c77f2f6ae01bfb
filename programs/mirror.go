package programs

import (
	"fmt"

	"github.com/reusee/stackcats/isa"
)

type MirrorMode uint8

const (
	MirrorNone MirrorMode = iota
	// MirrorLeft prefixes the mirrored reversal of all but the first character.
	MirrorLeft
	// MirrorRight appends the mirrored reversal of all but the last character.
	MirrorRight
)

func (m MirrorMode) String() string {
	switch m {
	case MirrorNone:
		return "none"
	case MirrorLeft:
		return "left"
	case MirrorRight:
		return "right"
	}
	return fmt.Sprintf("MirrorMode(%d)", m)
}

func ParseMirrorMode(s string) (MirrorMode, error) {
	switch s {
	case "", "none":
		return MirrorNone, nil
	case "left":
		return MirrorLeft, nil
	case "right":
		return MirrorRight, nil
	}
	return MirrorNone, fmt.Errorf("unknown mirror mode: %s", s)
}

// Expand applies a mirror expansion. The endpoint character that is not duplicated becomes the centre.
func Expand(src string, mode MirrorMode) string {
	if src == "" {
		return src
	}
	switch mode {
	case MirrorLeft:
		return isa.MirrorString(src[1:]) + src
	case MirrorRight:
		return src + isa.MirrorString(src[:len(src)-1])
	}
	return src
}
