package programs

import (
	"errors"
	"fmt"

	"github.com/reusee/stackcats/isa"
)

var ErrInvalidProgram = errors.New("invalid program")

// LoadError reports why a source was rejected. Pos is a byte offset into the working code.
type LoadError struct {
	Pos    int
	Reason string
}

func (e *LoadError) Error() string {
	return Palindromize(fmt.Sprintf("%s: %s at %d", ErrInvalidProgram.Error(), e.Reason, e.Pos))
}

func (e *LoadError) Unwrap() error {
	return ErrInvalidProgram
}

// Palindromize appends the mirrored reversal of all but the last character of s.
func Palindromize(s string) string {
	if s == "" {
		return s
	}
	return s + isa.MirrorString(s[:len(s)-1])
}

func loadError(pos int, format string, args ...any) error {
	return &LoadError{
		Pos:    pos,
		Reason: fmt.Sprintf(format, args...),
	}
}
