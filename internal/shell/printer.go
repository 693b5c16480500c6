package shell

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
)

// Printer serializes writes from the loop and background tasks.
// Each call holds the lock for its whole line, so lines never tear.
type Printer struct {
	mu sync.Mutex
	w  io.Writer

	errColor    *color.Color
	noticeColor *color.Color
	promptColor *color.Color
}

// NewPrinter creates a printer. With colored=false every style is plain text;
// otherwise color's own terminal detection still applies.
func NewPrinter(w io.Writer, colored bool) *Printer {
	p := &Printer{
		w:           w,
		errColor:    color.New(color.FgRed),
		noticeColor: color.New(color.FgGreen),
		promptColor: color.New(color.FgCyan),
	}
	if !colored {
		p.errColor.DisableColor()
		p.noticeColor.DisableColor()
		p.promptColor.DisableColor()
	}
	return p
}

// Write passes raw bytes through, used for streamed file content
func (p *Printer) Write(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.w.Write(b)
}

// Println writes one plain line
func (p *Printer) Println(line string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.w, line)
}

// Printf writes one formatted plain line
func (p *Printer) Printf(format string, args ...any) {
	p.Println(fmt.Sprintf(format, args...))
}

// Lines writes several lines without letting other writers in between
func (p *Printer) Lines(lines []string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, line := range lines {
		fmt.Fprintln(p.w, line)
	}
}

// Error writes an error line
func (p *Printer) Error(line string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.errColor.Fprintln(p.w, line)
}

// Notice writes a greeting or farewell line
func (p *Printer) Notice(line string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.noticeColor.Fprintln(p.w, line)
}

// Prompt writes the prompt without a newline
func (p *Printer) Prompt(prompt string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.promptColor.Fprint(p.w, prompt)
}
