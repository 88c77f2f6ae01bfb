package stacks

import (
	"fmt"
	"testing"
)

func TestEmpty(t *testing.T) {
	var s Stack
	if v := s.Pop(); v != 0 {
		t.Fatalf("got %v", v)
	}
	if v := s.Peek(); v != 0 {
		t.Fatalf("got %v", v)
	}
	if s.Len() != 0 {
		t.Fatal()
	}
}

func TestPushPop(t *testing.T) {
	s := New()
	s.Push(1)
	s.Push(2)
	s.Push(3)
	if s.Peek() != 3 {
		t.Fatalf("got %v", s.Peek())
	}
	for _, want := range []int64{3, 2, 1, 0, 0} {
		if got := s.Pop(); got != want {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestZeroFloor(t *testing.T) {
	s := New()
	s.Push(0)
	s.Push(0)
	if s.Len() != 0 {
		t.Fatalf("got %v", s.Values())
	}

	// zeros above a non-zero element are stored
	s.Push(5)
	s.Push(0)
	if s.Len() != 2 {
		t.Fatalf("got %v", s.Values())
	}

	// popping the non-zero bottom leaves nothing behind
	if s.Pop() != 0 || s.Pop() != 5 {
		t.Fatal()
	}
	if s.Len() != 0 {
		t.Fatalf("got %v", s.Values())
	}
}

func TestTrailingZerosIdempotent(t *testing.T) {
	withZeros := New(7, 8)
	plain := New(7, 8)
	for range 3 {
		withZeros.Push(0)
	}
	for range 3 {
		withZeros.Pop()
	}
	for range 5 {
		if a, b := withZeros.Pop(), plain.Pop(); a != b {
			t.Fatalf("got %v and %v", a, b)
		}
	}
	if withZeros.Len() != plain.Len() {
		t.Fatal()
	}
}

func TestNewTrims(t *testing.T) {
	s := New(0, 0, 3, 0, 4)
	if str := fmt.Sprintf("%v", s.Values()); str != "[3 0 4]" {
		t.Fatalf("got %s", str)
	}
}

func TestReverse(t *testing.T) {
	s := New(1, 2, 0, 0)
	s.Reverse()
	if str := fmt.Sprintf("%v", s.Values()); str != "[2 1]" {
		t.Fatalf("got %s", str)
	}
	s.Reverse()
	if str := fmt.Sprintf("%v", s.Values()); str != "[1 2]" {
		t.Fatalf("got %s", str)
	}
}

func TestValuesIsCopy(t *testing.T) {
	s := New(1, 2)
	values := s.Values()
	values[0] = 42
	if s.Values()[0] != 1 {
		t.Fatal()
	}
}
