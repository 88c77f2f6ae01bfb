package logs

import (
	"io"
	"os"
)

// Writer receives text log records. Program output never goes here.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}
