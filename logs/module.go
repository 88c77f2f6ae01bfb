// Package logs provides the structured logger and the spans tagging every log record of a run.
package logs

import "github.com/reusee/dscope"

type Module struct {
	dscope.Module
}
