package configs

import (
	"testing"
)

type testStr string

func (testStr) ConfigKey() string {
	return "str"
}

func TestFirst(t *testing.T) {
	loader := NewLoader([]string{
		writeConfig(t, "test.cue", `str: "bar"`),
		writeConfig(t, "test2.cue", `str: "foo"`),
	}, testSchema)

	str := First[string](loader, "str")
	if str != "bar" {
		t.Fatalf("got %v", str)
	}

	if v := FirstOf[string, testStr](loader); v != "bar" {
		t.Fatalf("got %v", v)
	}
	if vs := AllOf[string, testStr](loader); len(vs) != 2 || vs[0] != "bar" || vs[1] != "foo" {
		t.Fatalf("got %v", vs)
	}

	if list := First[[]int](loader, "list"); list != nil {
		t.Fatalf("got %v", list)
	}
}
