package debugs

import (
	"errors"
	"fmt"
	"slices"

	"github.com/reusee/stackcats/catvm"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// TraceFilter reports whether a trace point should be emitted.
type TraceFilter func(snapshot catvm.Snapshot) (bool, error)

// ErrBadTraceExpr is matched by errors compiling a trace expression.
var ErrBadTraceExpr = errors.New("bad trace expression")

// CompileTraceFilter compiles a starlark expression over the snapshot globals.
// An empty expression accepts every trace point.
func CompileTraceFilter(expr string) (TraceFilter, error) {
	if expr == "" {
		return func(catvm.Snapshot) (bool, error) {
			return true, nil
		}, nil
	}
	if _, err := syntax.ParseExpr("trace-when", expr, 0); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadTraceExpr, err)
	}
	_, program, err := starlark.SourceProgramOptions(
		&syntax.FileOptions{},
		"trace-when",
		"result = ("+expr+"\n)\n",
		func(name string) bool {
			return slices.Contains(globalNames, name)
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadTraceExpr, err)
	}

	return func(snapshot catvm.Snapshot) (bool, error) {
		predeclared := make(starlark.StringDict)
		for name, value := range SnapshotGlobals(snapshot) {
			predeclared[name] = toStarlarkValue(value)
		}
		thread := &starlark.Thread{
			Name: "trace-when",
		}
		globals, err := program.Init(thread, predeclared)
		if err != nil {
			return false, err
		}
		return bool(globals["result"].Truth()), nil
	}, nil
}
