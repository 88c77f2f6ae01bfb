package tapes

import (
	"fmt"
	"testing"
)

func TestMoveCollectsEmptyCells(t *testing.T) {
	tape := New()
	tape.MoveRight()
	tape.MoveRight()
	if str := fmt.Sprintf("%v", tape.Cells()); str != "[2]" {
		t.Fatalf("got %s", str)
	}
	tape.Push(3)
	tape.MoveLeft()
	if str := fmt.Sprintf("%v", tape.Cells()); str != "[1 2]" {
		t.Fatalf("got %s", str)
	}
	if tape.Pos() != 1 {
		t.Fatalf("got %v", tape.Pos())
	}
	if tape.Peek() != 0 {
		t.Fatal()
	}
	tape.MoveRight()
	if tape.Pop() != 3 {
		t.Fatal()
	}
	tape.MoveLeft()
	if str := fmt.Sprintf("%v", tape.Cells()); str != "[1]" {
		t.Fatalf("got %s", str)
	}
}

func TestSwapSides(t *testing.T) {
	build := func() *Tape {
		tape := New()
		tape.MoveLeft()
		tape.Push(1)
		tape.MoveRight()
		tape.Push(2)
		tape.MoveRight()
		tape.Push(3)
		tape.MoveLeft()
		return tape
	}

	left := build()
	left.SwapLeft()
	if left.Peek() != 1 {
		t.Fatalf("got %v", left.Peek())
	}
	if str := fmt.Sprintf("%v %v %v", left.Stack(-1), left.Stack(0), left.Stack(1)); str != "[2] [1] [3]" {
		t.Fatalf("got %s", str)
	}

	right := build()
	right.SwapRight()
	if right.Peek() != 3 {
		t.Fatalf("got %v", right.Peek())
	}
	if str := fmt.Sprintf("%v %v %v", right.Stack(-1), right.Stack(0), right.Stack(1)); str != "[1] [3] [2]" {
		t.Fatalf("got %s", str)
	}
}

func TestSwapRemovesEmpty(t *testing.T) {
	tape := New()
	tape.Push(5)
	tape.SwapRight()
	// the cursor entry is recreated empty, the right cell holds the moved stack
	if str := fmt.Sprintf("%v", tape.Cells()); str != "[0 1]" {
		t.Fatalf("got %s", str)
	}
	if tape.Len() != 0 {
		t.Fatal()
	}
	tape.MoveRight()
	if str := fmt.Sprintf("%v", tape.Cells()); str != "[1]" {
		t.Fatalf("got %s", str)
	}
	tape.SwapLeft()
	if str := fmt.Sprintf("%v", tape.Cells()); str != "[0 1]" {
		t.Fatalf("got %s", str)
	}
	if str := fmt.Sprintf("%v", tape.Stack(0)); str != "[5]" {
		t.Fatalf("got %s", str)
	}
}

func TestSwapMovesWholeStack(t *testing.T) {
	tape := New()
	tape.Push(1)
	tape.Push(2)
	tape.Push(3)
	tape.SwapLeft()
	tape.MoveLeft()
	if tape.Len() != 3 {
		t.Fatalf("got %v", tape.Len())
	}
	if str := fmt.Sprintf("%v", tape.Cells()); str != "[-1]" {
		t.Fatalf("got %s", str)
	}
}

func TestRender(t *testing.T) {
	tape := New()
	tape.Push(1)
	tape.Push(2)
	got := tape.Render()
	want := "    v\n" +
		"    2\n" +
		"    1\n" +
		"... 0 ...\n" +
		"    ^"
	if got != want {
		t.Fatalf("got\n%s\nwant\n%s", got, want)
	}
}

func TestRenderPadsAbsentCells(t *testing.T) {
	tape := New()
	tape.Push(10)
	tape.MoveRight()
	tape.MoveRight()
	tape.Push(-3)
	got := tape.Render()
	want := "          v\n" +
		"    10   -3\n" +
		"...  0 0  0 ...\n" +
		"          ^"
	if got != want {
		t.Fatalf("got\n%s\nwant\n%s", got, want)
	}
}
