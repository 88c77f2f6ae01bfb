package catconfigs

import (
	"github.com/reusee/stackcats/cmds"
	"github.com/reusee/stackcats/configs"
)

// NumericInput reads signed decimal literals instead of bytes.
type NumericInput bool

var _ configs.Configurable = NumericInput(false)

func (NumericInput) ConfigKey() string {
	return "numeric_input"
}

var numericInputFlag = cmds.Switch("-n", "read input as signed decimal integers", "-numeric-input")

func (Module) NumericInput(
	loader configs.Loader,
) NumericInput {
	return NumericInput(*numericInputFlag ||
		configs.FirstOf[bool, NumericInput](loader))
}

// NumericOutput writes one decimal per line instead of bytes.
type NumericOutput bool

var _ configs.Configurable = NumericOutput(false)

func (NumericOutput) ConfigKey() string {
	return "numeric_output"
}

var numericOutputFlag = cmds.Switch("-N", "write output as decimal integers, one per line", "-numeric-output")

func (Module) NumericOutput(
	loader configs.Loader,
) NumericOutput {
	return NumericOutput(*numericOutputFlag ||
		configs.FirstOf[bool, NumericOutput](loader))
}
