package programs

import "testing"

func TestExpand(t *testing.T) {
	for _, c := range []struct {
		src  string
		mode MirrorMode
		want string
	}{
		{":^", MirrorRight, ":^:"},
		{"(:", MirrorRight, "(:)"},
		{":)", MirrorLeft, "(:)"},
		{"<[-", MirrorRight, "<[-]>"},
		{"-]>", MirrorLeft, "<[-]>"},
		{"abc", MirrorNone, "abc"},
		{"", MirrorRight, ""},
		{"!", MirrorLeft, "!"},
	} {
		if got := Expand(c.src, c.mode); got != c.want {
			t.Fatalf("%q %v: got %q", c.src, c.mode, got)
		}
	}
}

func TestLoadMirrored(t *testing.T) {
	prog, err := Load("<(!", WithMirror(MirrorRight))
	if err != nil {
		t.Fatal(err)
	}
	if prog.Source != "<(!)>" {
		t.Fatalf("got %q", prog.Source)
	}
	if prog.Jumps[1] != 3 || prog.Jumps[3] != 1 {
		t.Fatalf("got %v", prog.Jumps)
	}

	// the kept endpoint becomes the centre and must not be a bracket
	if _, err := Load("!(", WithMirror(MirrorRight)); err == nil {
		t.Fatal("should fail")
	}
}

func TestParseMirrorMode(t *testing.T) {
	for str, want := range map[string]MirrorMode{
		"":      MirrorNone,
		"none":  MirrorNone,
		"left":  MirrorLeft,
		"right": MirrorRight,
	} {
		got, err := ParseMirrorMode(str)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Fatalf("%q: got %v", str, got)
		}
		if str != "" && got.String() != str {
			t.Fatalf("got %v", got)
		}
	}
	if _, err := ParseMirrorMode("up"); err == nil {
		t.Fatal("should fail")
	}
}
