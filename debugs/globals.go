package debugs

import (
	"github.com/reusee/stackcats/catvm"
)

// globalNames are the predeclared names visible to trace expressions and the tap REPL.
var globalNames = []string{
	"tick",
	"ip",
	"instr",
	"pos",
	"stack",
	"top",
	"depth",
	"cells",
	"peek",
	"tape",
}

// SnapshotGlobals returns the starlark globals describing a snapshot.
// stack lists the current stack bottom to top; peek(pos) reads the top of any cell.
func SnapshotGlobals(snapshot catvm.Snapshot) map[string]any {
	var top int64
	if n := len(snapshot.Stack); n > 0 {
		top = snapshot.Stack[n-1]
	}
	return map[string]any{
		"tick":  snapshot.Tick,
		"ip":    snapshot.IP,
		"instr": string(snapshot.Instr),
		"pos":   snapshot.Pos,
		"stack": snapshot.Stack,
		"top":   top,
		"depth": len(snapshot.Stack),
		"cells": snapshot.Cells,
		"peek": func(pos int) int64 {
			stack := snapshot.Cells[pos]
			if len(stack) == 0 {
				return 0
			}
			return stack[len(stack)-1]
		},
		"tape": snapshot.Tape,
	}
}
