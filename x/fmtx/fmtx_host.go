//go:build !(rp2040 || rp2350)

package fmtx

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultOutput is where Print/Printf write on host builds. Tests (and
// cmd/ringsh's console) may redirect it, matching the seam fmtx_mcu.go
// exposes for MCU builds.
var DefaultOutput io.Writer = os.Stdout

func Sprintf(format string, a ...any) string                    { return fmt.Sprintf(format, a...) }
func Fprintf(w io.Writer, format string, a ...any) (int, error) { return fmt.Fprintf(w, format, a...) }
func Errorf(format string, a ...any) error                      { return fmt.Errorf(format, a...) }

// Sprint joins its operands' default formats with a single space each,
// matching fmtx_mcu.go's simplified builder rather than fmt.Sprint's
// "space only between two non-strings" rule, so callers see the same
// output on both builds.
func Sprint(a ...any) string {
	parts := make([]string, len(a))
	for i, v := range a {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, " ")
}

func Fprint(w io.Writer, a ...any) (int, error) { return io.WriteString(w, Sprint(a...)) }

func Printf(format string, a ...any) (int, error) { return Fprintf(DefaultOutput, format, a...) }
func Print(a ...any) (int, error)                 { return Fprint(DefaultOutput, a...) }
