package tapes

import (
	"maps"
	"slices"

	"github.com/reusee/stackcats/stacks"
)

// Tape is a sparse sequence of bottomless stacks with one cursor.
// Positions are allocated on first visit; an empty stack is removed when the cursor leaves it
// or a swap leaves it empty. The cursor's own entry always exists.
type Tape struct {
	stacks  map[int]*stacks.Stack
	pos     int
	current *stacks.Stack
}

func New() *Tape {
	t := &Tape{
		stacks: make(map[int]*stacks.Stack),
	}
	t.current = t.at(0)
	return t
}

func (t *Tape) at(pos int) *stacks.Stack {
	s, ok := t.stacks[pos]
	if !ok {
		s = new(stacks.Stack)
		t.stacks[pos] = s
	}
	return s
}

func (t *Tape) Push(v int64) {
	t.current.Push(v)
}

func (t *Tape) Pop() int64 {
	return t.current.Pop()
}

func (t *Tape) Peek() int64 {
	return t.current.Peek()
}

func (t *Tape) Reverse() {
	t.current.Reverse()
}

func (t *Tape) Trim() {
	t.current.Trim()
}

// Len reports the number of stored elements of the current stack.
func (t *Tape) Len() int {
	return t.current.Len()
}

func (t *Tape) Pos() int {
	return t.pos
}

func (t *Tape) MoveBy(offset int) {
	if t.current.Empty() {
		delete(t.stacks, t.pos)
	}
	t.pos += offset
	t.current = t.at(t.pos)
}

func (t *Tape) MoveLeft() {
	t.MoveBy(-1)
}

func (t *Tape) MoveRight() {
	t.MoveBy(1)
}

// Swap exchanges the whole stacks at a and b.
func (t *Tape) Swap(a, b int) {
	sa, sb := t.at(a), t.at(b)
	t.stacks[a], t.stacks[b] = sb, sa
	if sb.Empty() {
		delete(t.stacks, a)
	}
	if sa.Empty() {
		delete(t.stacks, b)
	}
	t.current = t.at(t.pos)
}

func (t *Tape) SwapLeft() {
	t.Swap(t.pos-1, t.pos)
}

func (t *Tape) SwapRight() {
	t.Swap(t.pos+1, t.pos)
}

// Cells returns the allocated positions in ascending order.
func (t *Tape) Cells() []int {
	return slices.Sorted(maps.Keys(t.stacks))
}

// Stack returns a bottom-to-top copy of the stack at pos.
func (t *Tape) Stack(pos int) []int64 {
	s, ok := t.stacks[pos]
	if !ok {
		return nil
	}
	return s.Values()
}

// Bounds returns the smallest and largest allocated positions.
func (t *Tape) Bounds() (lo, hi int) {
	lo, hi = t.pos, t.pos
	for pos := range t.stacks {
		lo = min(lo, pos)
		hi = max(hi, pos)
	}
	return
}
