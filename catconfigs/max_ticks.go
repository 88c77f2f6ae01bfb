package catconfigs

import (
	"fmt"

	"github.com/reusee/stackcats/cmds"
	"github.com/reusee/stackcats/configs"
	"github.com/reusee/stackcats/vars"
)

// MaxTicks is the tick budget of a run. Zero means unlimited.
type MaxTicks int64

var _ configs.Configurable = MaxTicks(0)

func (MaxTicks) ConfigKey() string {
	return "max_ticks"
}

var maxTicksFlag int64

func init() {
	cmds.Define("-max-ticks", cmds.Func(func(n int64) error {
		if n < 0 {
			return &cmds.UsageError{
				Command: "-max-ticks",
				Err:     fmt.Errorf("negative tick budget %d", n),
			}
		}
		maxTicksFlag = n
		return nil
	}).Desc("abort after N instructions, 0 for unlimited").Args("N"))
	cmds.Define("-max-ticks.", cmds.Func(func() {
		maxTicksFlag = 0
	}).Desc("reset -max-ticks"))
}

func (Module) MaxTicks(
	loader configs.Loader,
) MaxTicks {
	// the tighter limit wins
	return MaxTicks(vars.MinNonZero(
		maxTicksFlag,
		configs.FirstOf[int64, MaxTicks](loader),
	))
}
