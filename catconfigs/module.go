// Package catconfigs resolves interpreter settings from command line flags and stackcats.cue files.
package catconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/stackcats/catvm"
)

type Module struct {
	dscope.Module
}

func (Module) MachineOptions(
	maxTicks MaxTicks,
	traceLevel TraceLevel,
) catvm.Options {
	return catvm.Options{
		MaxTicks: int64(maxTicks),
		Trace:    catvm.TraceLevel(traceLevel),
	}
}
