package catconfigs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/stackcats/catvm"
	"github.com/reusee/stackcats/cmds"
	"github.com/reusee/stackcats/configs"
	"github.com/reusee/stackcats/logs"
	"github.com/reusee/stackcats/modes"
	"github.com/reusee/stackcats/programs"
)

func testScope(t *testing.T, contents ...string) dscope.Scope {
	t.Helper()
	var dirs ConfigDirs
	for i, content := range contents {
		dir := t.TempDir()
		name := configFileNames[i%len(configFileNames)]
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		dirs = append(dirs, dir)
	}
	return dscope.New(
		new(Module),
		new(logs.Module),
		modes.ForTest(t),
	).Fork(
		func() ConfigDirs {
			return dirs
		},
	)
}

func TestDefaults(t *testing.T) {
	testScope(t).Call(func(
		options catvm.Options,
		numericInput NumericInput,
		numericOutput NumericOutput,
		mirror MirrorMode,
		when TraceWhen,
	) {
		if options.MaxTicks != 0 || options.Trace != catvm.TraceOff {
			t.Fatalf("got %+v", options)
		}
		if bool(numericInput) || bool(numericOutput) {
			t.Fatal()
		}
		if programs.MirrorMode(mirror) != programs.MirrorNone {
			t.Fatalf("got %v", mirror)
		}
		if when != "" {
			t.Fatalf("got %v", when)
		}
	})
}

func TestConfigFile(t *testing.T) {
	testScope(t, `
max_ticks: 100
trace: "checkpoints"
trace_when: "tick > 1"
numeric_output: true
mirror: "left"
`, `
max_ticks: 5
numeric_input: true
trace: "ticks"
`).Call(func(
		options catvm.Options,
		numericInput NumericInput,
		numericOutput NumericOutput,
		mirror MirrorMode,
		when TraceWhen,
		loader configs.Loader,
	) {
		if len(loader.Paths()) != 2 {
			t.Fatalf("got %v", loader.Paths())
		}
		// the first file takes precedence
		if options.MaxTicks != 100 {
			t.Fatalf("got %v", options.MaxTicks)
		}
		if options.Trace != catvm.TraceCheckpoints {
			t.Fatalf("got %v", options.Trace)
		}
		if !bool(numericInput) || !bool(numericOutput) {
			t.Fatal()
		}
		if programs.MirrorMode(mirror) != programs.MirrorLeft {
			t.Fatalf("got %v", mirror)
		}
		if when != "tick > 1" {
			t.Fatalf("got %v", when)
		}
	})
}

func TestFlagsOverride(t *testing.T) {
	maxTicksFlag = 10
	*traceTicksFlag = true
	*traceWhenFlag = "ip == 0"
	mirrorFlag = programs.MirrorRight
	defer func() {
		maxTicksFlag = 0
		*traceTicksFlag = false
		*traceWhenFlag = ""
		mirrorFlag = programs.MirrorNone
	}()

	testScope(t, `
max_ticks: 100
trace: "checkpoints"
trace_when: "tick > 1"
mirror: "left"
`).Call(func(
		options catvm.Options,
		mirror MirrorMode,
		when TraceWhen,
	) {
		if options.MaxTicks != 10 {
			t.Fatalf("got %v", options.MaxTicks)
		}
		if options.Trace != catvm.TraceTicks {
			t.Fatalf("got %v", options.Trace)
		}
		if programs.MirrorMode(mirror) != programs.MirrorRight {
			t.Fatalf("got %v", mirror)
		}
		if when != "ip == 0" {
			t.Fatalf("got %v", when)
		}
	})
}

func TestTighterLimitWins(t *testing.T) {
	maxTicksFlag = 1000
	defer func() {
		maxTicksFlag = 0
	}()
	testScope(t, `max_ticks: 100`).Call(func(
		maxTicks MaxTicks,
	) {
		if maxTicks != 100 {
			t.Fatalf("got %v", maxTicks)
		}
	})
}

func TestBadConfig(t *testing.T) {
	testScope(t, `trace: "always"`).Call(func(
		loader configs.Loader,
	) {
		if loader.Err() == nil {
			t.Fatal("should error")
		}
	})
	testScope(t, `unknown: 1`).Call(func(
		loader configs.Loader,
	) {
		if loader.Err() == nil {
			t.Fatal("should error")
		}
	})
}

func TestTraceWhenFromAllFiles(t *testing.T) {
	testScope(t,
		`trace_when: "tick > 1"`,
		`max_ticks: 5`,
		`trace_when: "ip == 0"`,
	).Call(func(
		when TraceWhen,
	) {
		if when != "(tick > 1) and (ip == 0)" {
			t.Fatalf("got %v", when)
		}
	})
}

func TestNegativeMaxTicks(t *testing.T) {
	err := cmds.Execute([]string{"-max-ticks", "-5"})
	if !errors.Is(err, cmds.ErrUsage) {
		t.Fatalf("got %v", err)
	}
	if maxTicksFlag != 0 {
		t.Fatalf("got %v", maxTicksFlag)
	}
	if err := cmds.Execute([]string{"-max-ticks", "7"}); err != nil {
		t.Fatal(err)
	}
	if maxTicksFlag != 7 {
		t.Fatalf("got %v", maxTicksFlag)
	}
	if err := cmds.Execute([]string{"-max-ticks."}); err != nil {
		t.Fatal(err)
	}
	if maxTicksFlag != 0 {
		t.Fatalf("got %v", maxTicksFlag)
	}
}
