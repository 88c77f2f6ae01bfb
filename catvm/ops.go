package catvm

import "github.com/reusee/stackcats/isa"

// handlers holds the semantics of every op. Each mirror pair is an inverse pair,
// and every self-mirrored op is its own inverse.
var handlers = [isa.NumOps]func(m *Machine){

	// both ends skip to the partner when the top is not positive
	isa.OpSignOpen:  signLoop,
	isa.OpSignClose: signLoop,

	isa.OpMoveLeft: func(m *Machine) {
		m.Tape.MoveLeft()
	},
	isa.OpMoveRight: func(m *Machine) {
		m.Tape.MoveRight()
	},

	// move the top value one cell over
	isa.OpPushLeft: func(m *Machine) {
		v := m.Tape.Pop()
		m.Tape.MoveLeft()
		m.Tape.Push(v)
	},
	isa.OpPushRight: func(m *Machine) {
		v := m.Tape.Pop()
		m.Tape.MoveRight()
		m.Tape.Push(v)
	},

	// swap whole stacks with a neighbour, then follow the current stack
	isa.OpSwapLeft: func(m *Machine) {
		m.Tape.SwapLeft()
		m.Tape.MoveLeft()
	},
	isa.OpSwapRight: func(m *Machine) {
		m.Tape.SwapRight()
		m.Tape.MoveRight()
	},

	// capture the top as the exit value
	isa.OpValueOpen: func(m *Machine) {
		m.loopConds.Push(m.Tape.Peek())
	},
	// leave the loop when the top is back at the captured value
	isa.OpValueClose: func(m *Machine) {
		if m.Tape.Peek() == m.loopConds.Peek() {
			m.loopConds.Pop()
		} else {
			m.IP = m.program.Jumps[m.IP]
		}
	},

	isa.OpBitNot: func(m *Machine) {
		m.Tape.Push(^m.Tape.Pop())
	},
	isa.OpNegate: func(m *Machine) {
		m.Tape.Push(-m.Tape.Pop())
	},
	isa.OpToggle: func(m *Machine) {
		m.Tape.Push(m.Tape.Pop() ^ 1)
	},
	// the popped value is combined into the value below it
	isa.OpXor: func(m *Machine) {
		v := m.Tape.Pop()
		m.Tape.Push(m.Tape.Peek() ^ v)
	},
	isa.OpSub: func(m *Machine) {
		v := m.Tape.Pop()
		m.Tape.Push(m.Tape.Peek() - v)
	},

	isa.OpSwap: func(m *Machine) {
		a, b := m.Tape.Pop(), m.Tape.Pop()
		m.Tape.Push(a)
		m.Tape.Push(b)
	},
	// pushing a, b, c back in pop order trades the top and the third value
	isa.OpSwapThird: func(m *Machine) {
		a, b, c := m.Tape.Pop(), m.Tape.Pop(), m.Tape.Pop()
		m.Tape.Push(a)
		m.Tape.Push(b)
		m.Tape.Push(c)
	},

	// reverse the values above the first zero
	isa.OpReverseRun: func(m *Machine) {
		var values []int64
		for m.Tape.Peek() != 0 {
			values = append(values, m.Tape.Pop())
		}
		for _, v := range values {
			m.Tape.Push(v)
		}
	},

	// exchange the top values of the left and right neighbours, not of the current stack
	isa.OpExchange: func(m *Machine) {
		m.Tape.MoveLeft()
		x := m.Tape.Pop()
		m.Tape.MoveRight()
		m.Tape.MoveRight()
		y := m.Tape.Pop()
		m.Tape.Push(x)
		m.Tape.MoveLeft()
		m.Tape.MoveLeft()
		m.Tape.Push(y)
		m.Tape.MoveRight()
	},

	// left, right, left on whole stacks reduces to swapping the two neighbours
	isa.OpRotate: func(m *Machine) {
		m.Tape.SwapLeft()
		m.Tape.SwapRight()
		m.Tape.SwapLeft()
	},

	// move toward the sign of the popped value and push its negation; zero stays
	isa.OpRelocate: func(m *Machine) {
		v := m.Tape.Pop()
		switch {
		case v < 0:
			m.Tape.MoveLeft()
		case v > 0:
			m.Tape.MoveRight()
		}
		m.Tape.Push(-v)
	},

	// only a non-zero top reverses the stack
	isa.OpReverse: func(m *Machine) {
		if m.Tape.Peek() != 0 {
			m.Tape.Reverse()
		}
	},

	isa.OpDebug: func(m *Machine) {},
}

func signLoop(m *Machine) {
	if m.Tape.Peek() < 1 {
		m.IP = m.program.Jumps[m.IP]
	}
}
