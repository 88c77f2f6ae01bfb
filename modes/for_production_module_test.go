package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestModuleForProduction(t *testing.T) {
	dscope.New(new(ModuleForProduction)).Call(func(
		t *testing.T,
		mode Mode,
	) {
		if t != nil {
			panic("should be nil")
		}
		if mode != ModeProduction {
			panic(mode)
		}
	})
}

func TestDevFlag(t *testing.T) {
	*devFlag = true
	defer func() {
		*devFlag = false
	}()
	if mode := ForProduction().Mode(); mode != ModeDevelopment {
		t.Fatalf("got %v", mode)
	}
}

func TestModeString(t *testing.T) {
	if s := ModeDevelopment.String(); s != "development" {
		t.Fatalf("got %v", s)
	}
	if s := Mode(0).String(); s != "Mode(0)" {
		t.Fatalf("got %v", s)
	}
}
