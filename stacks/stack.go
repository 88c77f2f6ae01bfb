package stacks

import "slices"

// Stack is an integer stack with an implicit infinite run of zeros below its stored elements.
// The bottom-most stored element is never zero.
type Stack struct {
	values []int64
}

func New(values ...int64) *Stack {
	s := &Stack{
		values: slices.Clone(values),
	}
	s.Trim()
	return s
}

func (s *Stack) Push(v int64) {
	s.values = append(s.values, v)
	s.Trim()
}

func (s *Stack) Pop() int64 {
	if len(s.values) == 0 {
		return 0
	}
	last := len(s.values) - 1
	v := s.values[last]
	s.values = s.values[:last]
	return v
}

func (s *Stack) Peek() int64 {
	if len(s.values) == 0 {
		return 0
	}
	return s.values[len(s.values)-1]
}

// Reverse reverses the stored elements. Zeros exposed at the new bottom are swallowed.
func (s *Stack) Reverse() {
	slices.Reverse(s.values)
	s.Trim()
}

// Trim drops stored zeros from the bottom.
func (s *Stack) Trim() {
	n := 0
	for n < len(s.values) && s.values[n] == 0 {
		n++
	}
	if n == 0 {
		return
	}
	s.values = slices.Delete(s.values, 0, n)
}

func (s *Stack) Len() int {
	return len(s.values)
}

func (s *Stack) Empty() bool {
	return len(s.values) == 0
}

// Values returns a bottom-to-top copy of the stored elements.
func (s *Stack) Values() []int64 {
	return slices.Clone(s.values)
}
