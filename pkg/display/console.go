// Package display renders launcher progress and messages on the terminal.
package display

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// consoleDisplay writes launcher output to a terminal or plain writer.
// Mutable
type consoleDisplay struct {
	out     io.Writer
	theme   *Theme
	verbose bool
	tty     bool

	// progressOpen tracks whether an in-place progress line is on screen
	// and must be terminated before any other output.
	progressOpen bool
}

// NewConsole creates a Display writing to standard error. In-place
// progress rendering is enabled only when stderr is a terminal.
func NewConsole() Display {
	return &consoleDisplay{
		out:   os.Stderr,
		theme: DefaultTheme(),
		tty:   isatty.IsTerminal(os.Stderr.Fd()),
	}
}

// NewWriterDisplay creates a Display writing plain output to w.
func NewWriterDisplay(w io.Writer) Display {
	return &consoleDisplay{
		out:   w,
		theme: DefaultTheme(),
	}
}

func (d *consoleDisplay) StartTask(name string) Task {
	return &consoleTask{d: d, name: name, lastPercent: -1}
}

func (d *consoleDisplay) Log(msg string) {
	if !d.verbose {
		return
	}
	d.printLine(d.theme.Dim.Render(msg))
}

func (d *consoleDisplay) Print(msg string) {
	d.printLine(d.theme.Green.Render(d.theme.Bullet) + " " + msg)
}

func (d *consoleDisplay) SetVerbose(v bool) {
	d.verbose = v
}

func (d *consoleDisplay) Close() {
	d.endProgress()
}

// printLine terminates any in-place progress line, then writes msg on its
// own line.
func (d *consoleDisplay) printLine(msg string) {
	d.endProgress()
	fmt.Fprintln(d.out, msg)
}

func (d *consoleDisplay) endProgress() {
	if d.progressOpen {
		fmt.Fprintln(d.out)
		d.progressOpen = false
	}
}

// consoleTask renders one task's stages and progress.
// Mutable
type consoleTask struct {
	d           *consoleDisplay
	name        string
	lastPercent int
}

func (t *consoleTask) SetStage(name string, target string) {
	th := t.d.theme
	t.d.printLine(fmt.Sprintf("%s %s %s", th.Dim.Render(th.Arrow), th.Cyan.Render(name), target))
	t.lastPercent = -1
}

func (t *consoleTask) Progress(percent int, message string) {
	if !t.d.tty || percent == t.lastPercent {
		return
	}
	t.lastPercent = percent
	fmt.Fprintf(t.d.out, "\r  %s %s\x1b[K", t.d.theme.Bold.Render(t.name), message)
	t.d.progressOpen = true
}

func (t *consoleTask) Done() {
	t.d.endProgress()
}
