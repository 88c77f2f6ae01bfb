package catvm

import (
	"context"
	"fmt"
	"iter"

	"github.com/reusee/stackcats/isa"
	"github.com/reusee/stackcats/programs"
)

const cancelCheckInterval = 256

type Reason uint8

const (
	ReasonCheckpoint Reason = iota + 1
	ReasonTick
)

func (r Reason) String() string {
	switch r {
	case ReasonCheckpoint:
		return "checkpoint"
	case ReasonTick:
		return "tick"
	}
	return fmt.Sprintf("Reason(%d)", r)
}

// Interrupt is yielded by Run when a trace point is reached. IP is the index of the
// instruction just executed; Tick counts it.
type Interrupt struct {
	Reason Reason
	IP     int
	Op     isa.Op
	Tick   int64
}

// Run executes until the instruction pointer leaves the program.
// Trace points yield an Interrupt; returning false from the loop body stops the run.
// A timeout or cancellation yields an error and stops the run.
func (m *Machine) Run(ctx context.Context) iter.Seq2[*Interrupt, error] {
	return func(yield func(*Interrupt, error) bool) {
		code := m.program.Code
		for m.IP >= 0 && m.IP < len(code) {
			if m.options.MaxTicks > 0 && m.Ticks >= m.options.MaxTicks {
				yield(nil, &TimeoutError{
					Limit: m.options.MaxTicks,
				})
				return
			}
			if m.Ticks%cancelCheckInterval == 0 {
				if err := ctx.Err(); err != nil {
					yield(nil, fmt.Errorf("%w: %w", ErrInterrupted, err))
					return
				}
			}

			ip := m.IP
			op := code[ip]
			handlers[op](m)
			m.Tape.Trim()
			m.lastIP = ip
			m.Ticks++
			m.IP++

			var reason Reason
			switch {
			case op == isa.OpDebug && m.options.Trace != TraceOff:
				reason = ReasonCheckpoint
			case m.options.Trace == TraceTicks:
				reason = ReasonTick
			default:
				continue
			}
			if !yield(&Interrupt{
				Reason: reason,
				IP:     ip,
				Op:     op,
				Tick:   m.Ticks,
			}, nil) {
				return
			}
		}
	}
}

// Exec runs program on input and returns the drained output values, ignoring trace points.
func Exec(ctx context.Context, program *programs.Program, input []int64, options Options) ([]int64, error) {
	m := New(program, options)
	m.Load(input)
	for _, err := range m.Run(ctx) {
		if err != nil {
			return nil, err
		}
	}
	return m.Drain(), nil
}
