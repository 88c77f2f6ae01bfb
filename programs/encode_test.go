package programs

import "testing"

func TestEncodeEmpty(t *testing.T) {
	if got := Encode(""); got != "<!-(><)-(><)-!>" {
		t.Fatalf("got %q", got)
	}
}

func TestEncodeLoads(t *testing.T) {
	for _, text := range []string{"", "a", "Hello, World!", "\x00\xff"} {
		src := Encode(text)
		prog, err := Load(src)
		if err != nil {
			t.Fatalf("%q: %v", text, err)
		}
		if prog.Len()%2 != 1 {
			t.Fatalf("%q: got length %d", text, prog.Len())
		}
		if prog.Source[prog.Len()/2] != '-' {
			t.Fatalf("%q: got centre %c", text, prog.Source[prog.Len()/2])
		}
	}
}
