package catconfigs

import (
	"strings"

	"github.com/reusee/stackcats/catvm"
	"github.com/reusee/stackcats/cmds"
	"github.com/reusee/stackcats/configs"
	"github.com/reusee/stackcats/vars"
)

type TraceLevel catvm.TraceLevel

var _ configs.Configurable = TraceLevel(0)

func (TraceLevel) ConfigKey() string {
	return "trace"
}

var traceLevels = map[string]TraceLevel{
	"off":         TraceLevel(catvm.TraceOff),
	"checkpoints": TraceLevel(catvm.TraceCheckpoints),
	"ticks":       TraceLevel(catvm.TraceTicks),
}

var (
	traceCheckpointsFlag = cmds.Switch("-d", `print the machine state at every " instruction`)
	traceTicksFlag       = cmds.Switch("-D", "print the machine state after every instruction")
)

// TraceLevel is the most verbose of the flags and the config value.
func (Module) TraceLevel(
	loader configs.Loader,
) TraceLevel {
	level := traceLevels[configs.FirstOf[string, TraceLevel](loader)]
	if *traceCheckpointsFlag {
		level = max(level, TraceLevel(catvm.TraceCheckpoints))
	}
	if *traceTicksFlag {
		level = max(level, TraceLevel(catvm.TraceTicks))
	}
	return level
}

// TraceWhen is a starlark predicate selecting which trace points are printed.
type TraceWhen string

var _ configs.Configurable = TraceWhen("")

func (TraceWhen) ConfigKey() string {
	return "trace_when"
}

var traceWhenFlag = cmds.Var[string]("-trace-when", "print only trace points where the starlark expression holds")

// TraceWhen is the flag expression, or else the conjunction of the expressions of every config file.
func (Module) TraceWhen(
	loader configs.Loader,
) TraceWhen {
	var terms []string
	for _, expr := range configs.AllOf[string, TraceWhen](loader) {
		if expr != "" {
			terms = append(terms, "("+expr+")")
		}
	}
	return TraceWhen(vars.FirstNonZero(
		*traceWhenFlag,
		strings.Join(terms, " and "),
	))
}
