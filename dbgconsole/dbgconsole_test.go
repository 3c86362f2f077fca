package dbgconsole

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"cbufring/ring"
)

func TestConsoleDispatchesVerbs(t *testing.T) {
	r := ring.NewRing(16)
	rings := map[string]*ring.Ring{"uart0": r}
	lookup := func(name string) (*ring.Ring, bool) { ri, ok := rings[name]; return ri, ok }

	var out bytes.Buffer
	in := strings.NewReader("write uart0 hello\nspace uart0\nread uart0 5\nsize uart0\n")
	c := New(in, &out, lookup)

	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	got := out.String()
	for _, want := range []string{"wrote 5", "used=5 avail=10", `"hello"`, "16"} {
		if !strings.Contains(got, want) {
			t.Fatalf("output %q missing %q", got, want)
		}
	}
}

func TestConsoleUnknownRingReportsError(t *testing.T) {
	lookup := func(string) (*ring.Ring, bool) { return nil, false }
	var out bytes.Buffer
	in := strings.NewReader("size nope\n")
	c := New(in, &out, lookup)

	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "error:") {
		t.Fatalf("expected an error line, got %q", out.String())
	}
}

func TestConsoleQuotedArgsViaShlex(t *testing.T) {
	r := ring.NewRing(32)
	lookup := func(string) (*ring.Ring, bool) { return r, true }
	var out bytes.Buffer
	in := strings.NewReader(`write r0 "hello world"` + "\n")
	c := New(in, &out, lookup)

	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if r.SpaceUsed() != len("hello world") {
		t.Fatalf("space_used: got %d, want %d", r.SpaceUsed(), len("hello world"))
	}
}

func TestConsoleHelp(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("help\n")
	c := New(in, &out, func(string) (*ring.Ring, bool) { return nil, false })
	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "commands:") {
		t.Fatalf("help output missing commands: %q", out.String())
	}
}
