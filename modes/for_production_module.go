package modes

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/stackcats/cmds"
)

var devFlag = cmds.Switch("-dev", "run in development mode")

type ModuleForProduction struct {
	dscope.Module
}

func ForProduction() ModuleForProduction {
	return ModuleForProduction{}
}

func (ModuleForProduction) T() *testing.T {
	return nil
}

func (ModuleForProduction) Mode() Mode {
	if *devFlag {
		return ModeDevelopment
	}
	return ModeProduction
}
