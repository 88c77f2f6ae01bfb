package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/reusee/dscope"
	"github.com/reusee/e5"
	"github.com/reusee/stackcats/catconfigs"
	"github.com/reusee/stackcats/catio"
	"github.com/reusee/stackcats/catvm"
	"github.com/reusee/stackcats/cmds"
	"github.com/reusee/stackcats/configs"
	"github.com/reusee/stackcats/debugs"
	"github.com/reusee/stackcats/logs"
	"github.com/reusee/stackcats/modes"
	"github.com/reusee/stackcats/programs"
	"golang.org/x/term"
)

var (
	fileFlag          = cmds.Var[string]("-file", "read the program from a file")
	inputFlag         = cmds.Var[string]("-input", "read input from a file instead of stdin")
	printMirroredFlag = cmds.Switch("-M", "print the expanded program and exit", "-print-mirrored")
	replFlag          = cmds.Switch("-repl", "open a starlark REPL at every printed trace point")
	encodeFlag        = cmds.Var[string]("-encode", "print a program writing the text followed by its input, and exit")
)

// an explicit empty -code is the empty program
var (
	codeFlag    string
	codeFlagSet bool
)

func init() {
	cmds.Define("-code", cmds.Func(func(src string) {
		codeFlag = src
		codeFlagSet = true
	}).Desc("program source").Args("STRING"))
	cmds.Define("-code.", cmds.Func(func() {
		codeFlag = ""
		codeFlagSet = false
	}).Desc("reset -code"))
}

var wrap = e5.Wrap.With(e5.WrapStacktrace)

const (
	exitOK = iota
	exitFailure
	exitUsage
)

var errUsage = errors.New("usage")

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}

func run(
	ctx context.Context,
	args []string,
	stdin io.Reader,
	stdout io.Writer,
	stderr io.Writer,
) (exitCode int) {

	if err := cmds.Execute(args); err != nil {
		fmt.Fprintln(stderr, err)
		if errors.Is(err, cmds.ErrUsage) {
			return exitUsage
		}
		return exitFailure
	}

	if *encodeFlag != "" {
		fmt.Fprintln(stdout, programs.Encode(*encodeFlag))
		return exitOK
	}

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	).Fork(
		func() logs.Writer {
			return stderr
		},
	)

	loader := dscope.Get[configs.Loader](scope)
	if err := loader.Err(); err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	scope.Call(func(
		logger logs.Logger,
		newSpan logs.NewSpan,
		options catvm.Options,
		mirror catconfigs.MirrorMode,
		numericInput catconfigs.NumericInput,
		numericOutput catconfigs.NumericOutput,
		traceWhen catconfigs.TraceWhen,
		tap debugs.Tap,
	) {
		ctx, _ := newSpan(ctx, "")

		fail := func(code int, err error) {
			if logger.Enabled(ctx, slog.LevelDebug) {
				logger.DebugContext(ctx, "failed", "error", logs.WrapSpan(ctx, wrap(err)))
			}
			fmt.Fprintln(stderr, err)
			exitCode = code
		}

		src, err := readSource()
		if err != nil {
			if errors.Is(err, errUsage) {
				fail(exitUsage, err)
			} else {
				fail(exitFailure, err)
			}
			return
		}

		program, err := programs.Load(src, programs.WithMirror(programs.MirrorMode(mirror)))
		if err != nil {
			fail(exitFailure, err)
			return
		}
		logger.DebugContext(ctx, "program loaded",
			"length", program.Len(),
			"mirror", programs.MirrorMode(mirror),
		)

		if *printMirroredFlag {
			fmt.Fprintln(stdout, program.Source)
			return
		}

		filter, err := debugs.CompileTraceFilter(string(traceWhen))
		if err != nil {
			fail(exitUsage, err)
			return
		}

		data, err := readInput(stdin)
		if err != nil {
			fail(exitFailure, err)
			return
		}
		values, err := catio.Decode(data, bool(numericInput))
		if err != nil {
			fail(exitFailure, err)
			return
		}

		width := terminalWidth(stderr)
		machine := catvm.New(program, options)
		machine.Load(values)
		for interrupt, err := range machine.Run(ctx) {
			if err != nil {
				logger.InfoContext(ctx, "run aborted",
					"ticks", machine.Ticks,
					"ip", machine.IP,
				)
				fail(exitFailure, err)
				return
			}
			snapshot := machine.Snapshot()
			ok, err := filter(snapshot)
			if err != nil {
				fail(exitFailure, err)
				return
			}
			if !ok {
				continue
			}
			fmt.Fprintln(stderr, snapshot.RenderWidth(width))
			if *replFlag {
				tap(ctx, interrupt.Reason.String(), debugs.SnapshotGlobals(snapshot))
			}
		}
		logger.InfoContext(ctx, "run finished",
			"ticks", machine.Ticks,
		)

		if err := (catio.Encoder{
			W:       stdout,
			Numeric: bool(numericOutput),
		}).Encode(machine.Drain()); err != nil {
			fail(exitFailure, err)
			return
		}
	})

	return
}

func readSource() (string, error) {
	switch {
	case codeFlagSet && *fileFlag != "":
		return "", fmt.Errorf("%w: -code and -file are exclusive", errUsage)
	case codeFlagSet:
		return codeFlag, nil
	case *fileFlag != "":
		content, err := os.ReadFile(*fileFlag)
		if err != nil {
			return "", err
		}
		// editors append a newline
		return strings.TrimSuffix(string(content), "\n"), nil
	}
	return "", fmt.Errorf("%w: no program, use -code or -file", errUsage)
}

func readInput(stdin io.Reader) ([]byte, error) {
	if *inputFlag != "" {
		return os.ReadFile(*inputFlag)
	}
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return nil, nil
	}
	return io.ReadAll(stdin)
}

func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
