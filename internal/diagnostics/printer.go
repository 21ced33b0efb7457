package diagnostics

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
)

// Printer formats a Collector's diagnostics for a terminal or a log file.
// Colourisation follows the teacher's own rule (internal/evaluator's
// termColorLevel): only colourise a real terminal, and respect NO_COLOR.
type Printer struct {
	Out      io.Writer
	Colorize bool
}

// NewPrinter builds a Printer that auto-detects whether Out is a terminal.
// Pass os.Stdout/os.Stderr to get real detection; any other io.Writer never
// colourises.
func NewPrinter(out io.Writer) *Printer {
	colorize := false
	if f, ok := out.(*os.File); ok {
		if _, noColor := os.LookupEnv("NO_COLOR"); !noColor {
			colorize = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
	}
	return &Printer{Out: out, Colorize: colorize}
}

func (p *Printer) Print(c *Collector) {
	for _, d := range c.Diagnostics {
		p.printOne(d)
	}
}

func (p *Printer) printOne(d Diagnostic) {
	if p.Colorize {
		fmt.Fprintf(p.Out, "\033[31merror[%s]\033[0m: %s (%s)\n", d.Code, d.Message, d.Location)
		return
	}
	fmt.Fprintf(p.Out, "error[%s]: %s (%s)\n", d.Code, d.Message, d.Location)
}

// TooManyIterationsMessage formats the GenerateLoopTooManyIterations
// message with a human-readable iteration count instead of a raw integer,
// e.g. "loop-generate exceeded 1,048,576 iterations".
func TooManyIterationsMessage(bound int) string {
	return fmt.Sprintf("loop-generate exceeded %s iterations", humanize.Comma(int64(bound)))
}
