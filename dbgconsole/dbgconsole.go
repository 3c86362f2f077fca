// Package dbgconsole is the ring buffer module's stand-in for the
// platform debug-console façade spec.md §1 calls out as an out-of-scope
// collaborator: a line-oriented shell a developer can attach to (over a
// real UART, a pty, or — in tests — a plain io.Reader/io.Writer pair)
// to peek, write, and trash bytes in a live *ring.Ring by name. It
// follows the line-accumulation shape of
// services/hal/internal/uartio.Worker's "lines" mode, but tokenises
// each line with github.com/google/shlex instead of hand-rolled
// byte-at-a-time splitting, since a console command line needs
// quoting (`write uart0 "hello world"`) that a bare strings.Fields
// doesn't give you.
package dbgconsole

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/google/shlex"

	"cbufring/ring"
	"cbufring/x/fmtx"
)

// Lookup resolves a ring by the name a console command names it with.
// *drvreg.Registry.Ring has this exact shape.
type Lookup func(name string) (*ring.Ring, bool)

// Console is a line-oriented command loop over a single
// io.Reader/io.Writer pair, dispatching against whatever rings Lookup
// can resolve.
type Console struct {
	sc     *bufio.Scanner
	out    io.Writer
	lookup Lookup
}

// New returns a Console reading commands from r and writing replies to
// w, resolving ring names through lookup.
func New(r io.Reader, w io.Writer, lookup Lookup) *Console {
	return &Console{sc: bufio.NewScanner(r), out: w, lookup: lookup}
}

// Run reads and dispatches one command per line until r is exhausted or
// ctx is done, writing "error: ..." for any command that fails rather
// than aborting the loop — one bad command should not kill the session,
// mirroring a real debug console's forgiving REPL behavior.
func (c *Console) Run(ctx context.Context) error {
	for c.sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := c.sc.Text()
		if err := c.dispatch(line); err != nil {
			fmtx.Fprintf(c.out, "error: %v\n", err)
		}
	}
	return c.sc.Err()
}

func (c *Console) dispatch(line string) error {
	args, err := shlex.Split(line)
	if err != nil {
		return fmt.Errorf("tokenize: %w", err)
	}
	if len(args) == 0 {
		return nil
	}
	verb, args := args[0], args[1:]

	if verb == "help" {
		fmtx.Fprint(c.out, "commands: size <ring> | space <ring> | peek <ring> | write <ring> <text> | read <ring> <n> | trash <ring> <n> | reset <ring>\n")
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("%s: missing ring name", verb)
	}
	r, ok := c.lookup(args[0])
	if !ok {
		return fmt.Errorf("unknown ring %q", args[0])
	}
	args = args[1:]

	switch verb {
	case "size":
		fmtx.Fprintf(c.out, "%d\n", r.Size())
	case "space":
		fmtx.Fprintf(c.out, "used=%d avail=%d\n", r.SpaceUsed(), r.SpaceAvail())
	case "peek":
		p := r.Peek()
		fmtx.Fprintf(c.out, "%q%q\n", p.First, p.Second)
	case "write":
		if len(args) == 0 {
			return fmt.Errorf("write: missing text")
		}
		text := []byte(args[0])
		if len(text) >= r.Size() {
			return fmt.Errorf("write: %d bytes exceeds ring size %d", len(text), r.Size())
		}
		n := r.Write(text, false)
		fmtx.Fprintf(c.out, "wrote %d\n", n)
	case "read":
		n, err := parseCount(args)
		if err != nil {
			return err
		}
		buf := make([]byte, n)
		got := r.ReadInto(buf, false)
		fmtx.Fprintf(c.out, "%q\n", buf[:got])
	case "trash":
		n, err := parseCount(args)
		if err != nil {
			return err
		}
		if n >= r.Size() {
			return fmt.Errorf("trash: %d exceeds ring size %d", n, r.Size())
		}
		r.Trash(n)
		fmtx.Fprint(c.out, "ok\n")
	case "reset":
		r.Reset()
		fmtx.Fprint(c.out, "ok\n")
	default:
		return fmt.Errorf("unknown command %q", verb)
	}
	return nil
}

func parseCount(args []string) (int, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("missing count")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("bad count %q: %w", args[0], err)
	}
	return n, nil
}
