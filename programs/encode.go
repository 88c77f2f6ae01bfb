package programs

import (
	"strings"

	"github.com/reusee/stackcats/isa"
)

// Encode returns a program that prints text and then echoes its input.
//
// The first half raises a flag cell left of the input to 1 and enters a ( ) block that builds
// each byte with increments in a scratch cell and pushes it onto the input stack. The centre
// negates the flag, so the mirrored block in the second half is skipped.
// Removing the centre makes the second block undo the first, which gives cat.
func Encode(text string) string {
	body := new(strings.Builder)
	body.WriteString(">")
	for i := len(text) - 1; i >= 0; i-- {
		body.WriteString(">")
		body.WriteString(strings.Repeat("!-", int(text[i])))
		body.WriteString("[")
	}
	body.WriteString("<")

	half := "<!-(" + body.String() + ")"
	return half + "-" + isa.MirrorString(half)
}
