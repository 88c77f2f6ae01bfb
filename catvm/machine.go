// Package catvm executes validated Stack Cats programs.
//
// A Machine owns one tape and one loop-condition stack for a single run.
// Machines are not safe for concurrent use; independent runs use independent machines.
package catvm

import (
	"github.com/reusee/stackcats/programs"
	"github.com/reusee/stackcats/stacks"
	"github.com/reusee/stackcats/tapes"
)

// Sentinel is pushed below the input; it is not emitted when it is the last value drained.
const Sentinel int64 = -1

type TraceLevel uint8

const (
	TraceOff TraceLevel = iota
	// TraceCheckpoints interrupts after every " instruction.
	TraceCheckpoints
	// TraceTicks interrupts after every instruction.
	TraceTicks
)

type Options struct {
	// MaxTicks aborts the run when exceeded. Zero means unlimited.
	MaxTicks int64
	Trace    TraceLevel
}

type Machine struct {
	Tape  *tapes.Tape
	IP    int
	Ticks int64

	program *programs.Program
	options Options
	// an absent loop condition reads as zero, like the stack floor
	loopConds stacks.Stack
	lastIP    int
}

func New(program *programs.Program, options Options) *Machine {
	return &Machine{
		Tape:    tapes.New(),
		program: program,
		options: options,
	}
}

// Load pushes the sentinel and then the values in reverse, so values[0] ends up on top.
func (m *Machine) Load(values []int64) {
	m.Tape.Push(Sentinel)
	for i := len(values) - 1; i >= 0; i-- {
		m.Tape.Push(values[i])
	}
}

// Drain pops the current stack until it is empty.
func (m *Machine) Drain() (ret []int64) {
	for m.Tape.Len() > 0 {
		v := m.Tape.Pop()
		if v == Sentinel && m.Tape.Len() == 0 {
			break
		}
		ret = append(ret, v)
	}
	return
}

// LoopDepth reports the number of value loops currently open.
func (m *Machine) LoopDepth() int {
	return m.loopConds.Len()
}
