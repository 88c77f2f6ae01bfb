package catconfigs

import (
	"github.com/reusee/stackcats/cmds"
	"github.com/reusee/stackcats/configs"
	"github.com/reusee/stackcats/programs"
)

type MirrorMode programs.MirrorMode

var _ configs.Configurable = MirrorMode(0)

func (MirrorMode) ConfigKey() string {
	return "mirror"
}

var mirrorFlag programs.MirrorMode

func init() {
	cmds.Define("-m", cmds.Func(func() {
		mirrorFlag = programs.MirrorRight
	}).Desc("append the mirror of the source without its last character").Alias("-mirror-right"))
	cmds.Define("-ml", cmds.Func(func() {
		mirrorFlag = programs.MirrorLeft
	}).Desc("prepend the mirror of the source without its first character").Alias("-mirror-left"))
	cmds.Define("-mirror-none", cmds.Func(func() {
		mirrorFlag = programs.MirrorNone
	}).Desc("use the source as given"))
}

// MirrorMode prefers the last mirror flag given over the config value.
func (Module) MirrorMode(
	loader configs.Loader,
) MirrorMode {
	if mirrorFlag != programs.MirrorNone {
		return MirrorMode(mirrorFlag)
	}
	mode, err := programs.ParseMirrorMode(configs.FirstOf[string, MirrorMode](loader))
	if err != nil {
		// the schema restricts the values
		panic(err)
	}
	return MirrorMode(mode)
}
