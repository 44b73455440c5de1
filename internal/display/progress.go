package display

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// Progress wraps a spinner for indeterminate operations such as detection
// probes. The zero value is not usable; construct with NewProgress.
type Progress struct {
	s *spinner.Spinner
}

// NewProgress starts a spinner with the given message, writing to w.
func NewProgress(w io.Writer, message string) *Progress {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = " " + message
	s.Start()
	return &Progress{s: s}
}

// Update replaces the spinner message mid-operation.
func (p *Progress) Update(message string) {
	p.s.Suffix = " " + message
}

// Success stops the spinner and leaves a confirmation line behind.
func (p *Progress) Success(message string) {
	p.s.FinalMSG = successStyle.Render("✓ "+message) + "\n"
	p.s.Stop()
}

// Fail stops the spinner and leaves an error line behind.
func (p *Progress) Fail(message string) {
	p.s.FinalMSG = errorStyle.Render("✗ "+message) + "\n"
	p.s.Stop()
}

// Clear stops the spinner without leaving output.
func (p *Progress) Clear() {
	p.s.FinalMSG = ""
	p.s.Stop()
}
