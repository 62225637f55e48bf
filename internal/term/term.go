// Package term is the line-oriented terminal adapter used by interactive
// sessions: it reads answers, writes text and moves the cursor.
package term

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/theirongolddev/budgie/internal/cli"

	"github.com/charmbracelet/x/ansi"
)

// Terminal reads lines from in and writes to out, drawing cursor control
// through its renderer.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
	r   cli.Renderer
}

// New returns a terminal over in and out.
func New(in io.Reader, out io.Writer, r cli.Renderer) *Terminal {
	return &Terminal{
		in:  bufio.NewReader(in),
		out: out,
		r:   r,
	}
}

// Renderer returns the renderer the terminal draws with.
func (t *Terminal) Renderer() cli.Renderer {
	return t.r
}

// ReadLine blocks until a full line is available and returns it without the
// trailing newline. A final unterminated line is returned before io.EOF.
func (t *Terminal) ReadLine() (string, error) {
	line, err := t.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Prompt writes msg and reads the answer on the same line.
func (t *Terminal) Prompt(msg string) (string, error) {
	t.Print(msg)
	return t.ReadLine()
}

// Print writes s as is.
func (t *Terminal) Print(s string) {
	_, _ = io.WriteString(t.out, s)
}

// Println writes s followed by a newline.
func (t *Terminal) Println(s string) {
	_, _ = io.WriteString(t.out, s+"\n")
}

// Printf writes a formatted string.
func (t *Terminal) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(t.out, format, args...)
}

// ClearScreen clears the screen and moves the cursor home.
func (t *Terminal) ClearScreen() {
	t.Print(ansi.EraseEntireScreen + ansi.CursorHomePosition)
}

// ClearLine erases the current line and returns to its start.
func (t *Terminal) ClearLine() {
	t.Print(t.r.ClearLine())
}

// MoveUp moves the cursor up n lines.
func (t *Terminal) MoveUp(n int) {
	t.Print(t.r.MoveCursorUp(n))
}

// SaveCursor remembers the cursor position.
func (t *Terminal) SaveCursor() {
	t.Print(ansi.SaveCursor)
}

// RestoreCursor returns to the position stored by SaveCursor.
func (t *Terminal) RestoreCursor() {
	t.Print(ansi.RestoreCursor)
}

// Replace swaps the line the cursor sits on for msg, then moves back up to
// the line above and clears it. Used to show an error under a prompt that is
// about to be asked again.
func (t *Terminal) Replace(msg string) {
	t.ClearLine()
	t.Print(msg)
	t.MoveUp(1)
	t.ClearLine()
}
