package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/cockroachdb/errors"
	ptyterm "github.com/pkg/term"
	xterm "golang.org/x/term"
)

// ANSI control sequences.
const (
	clearScreen = "\u001b[2J"
	setPosition = "\u001b[%d;%dH" // row n, column m (1-based)
	cursorLeft  = "\u001b[1D"

	escape    = 0x1b
	interrupt = 0x03 // Ctrl-C
	endOfText = 0x04 // Ctrl-D
)

// ErrInterrupted is returned by ReadKey when Ctrl-C is read as a key.
var ErrInterrupted = errors.New("interrupted")

// Console is the Terminal backed by the process's stdin and an output stream,
// stdout unless NewConsoleOn says otherwise.
//
// Keys are read by putting the controlling tty into cbreak mode for the
// duration of a single read. Echo and line buffering are off but signals are
// still delivered. When stdin is not a terminal keys are served from whole
// lines instead, so scripted runs still work.
type Console struct {
	in          *bufio.Reader
	out         io.Writer
	outFd       int
	ttyPath     string
	interactive bool

	color   Color
	pending []rune
	partial []byte
}

// NewConsole creates a Console on os.Stdin and os.Stdout.
func NewConsole() *Console {
	return NewConsoleOn(os.Stdin, os.Stdout)
}

// NewConsoleOn creates a Console reading from in and drawing on out. Keys are
// read from the tty only when in is a terminal; any other reader is served
// line by line. Width is known only when out is a terminal file.
func NewConsoleOn(in io.Reader, out io.Writer) *Console {
	c := &Console{
		in:      bufio.NewReader(in),
		out:     out,
		outFd:   -1,
		ttyPath: "/dev/tty",
	}
	if f, ok := in.(*os.File); ok {
		c.interactive = xterm.IsTerminal(int(f.Fd()))
	}
	if f, ok := out.(*os.File); ok {
		c.outFd = int(f.Fd())
	}
	return c
}

// Interactive reports whether keys come from a real terminal.
func (c *Console) Interactive() bool {
	return c.interactive
}

func (c *Console) Write(text string) {
	if c.color != "" {
		text = lipgloss.NewStyle().Foreground(c.color.lipgloss()).Render(text)
	}
	_, _ = fmt.Fprint(c.out, text)
}

func (c *Console) WriteLine(text string) {
	c.Write(text)
	_, _ = fmt.Fprint(c.out, "\n")
}

func (c *Console) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", errors.Wrap(err, "reading line")
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *Console) ReadKey() (Key, error) {
	for len(c.pending) == 0 {
		var err error
		if c.interactive {
			err = c.readRaw()
		} else {
			err = c.readBuffered()
		}
		if err != nil {
			return Key{}, err
		}
	}

	r := c.pending[0]
	c.pending = c.pending[1:]
	return Classify(r), nil
}

// readRaw performs one read from the tty in cbreak mode, which keeps signal
// generation on so Ctrl-C still interrupts the process.
func (c *Console) readRaw() error {
	t, err := ptyterm.Open(c.ttyPath, ptyterm.CBreakMode)
	if err != nil {
		return errors.Wrapf(err, "opening %s", c.ttyPath)
	}
	defer func() {
		_ = t.Restore()
		_ = t.Close()
	}()

	buf := make([]byte, 16)
	n, err := t.Read(buf)
	if err != nil {
		return errors.Wrap(err, "reading key")
	}
	if n == 0 {
		return errors.Wrap(io.EOF, "reading key")
	}

	keys, rest, err := decodeKeys(append(c.partial, buf[:n]...))
	c.partial = rest
	c.pending = append(c.pending, keys...)
	return err
}

// decodeKeys turns one read's bytes into key runes. An escape sequence
// arrives in a single read and is collapsed into one ESC key. A rune cut off
// at the end of the buffer is returned as rest, to be completed by the next
// read. Ctrl-C and Ctrl-D end input with ErrInterrupted and io.EOF.
func decodeKeys(b []byte) (keys []rune, rest []byte, err error) {
	if len(b) > 0 && b[0] == escape {
		return []rune{escape}, nil, nil
	}
	for len(b) > 0 {
		if !utf8.FullRune(b) {
			return keys, slices.Clone(b), nil
		}
		r, size := utf8.DecodeRune(b)
		switch r {
		case interrupt:
			return nil, nil, errors.WithStack(ErrInterrupted)
		case endOfText:
			return nil, nil, errors.Wrap(io.EOF, "reading key")
		}
		keys = append(keys, r)
		b = b[size:]
	}
	return keys, nil, nil
}

func (c *Console) readBuffered() error {
	line, err := c.ReadLine()
	if err != nil {
		return err
	}
	c.pending = append([]rune(line), '\n')
	return nil
}

func (c *Console) SetForegroundColor(color Color) {
	c.color = color
}

func (c *Console) ResetColor() {
	c.color = ""
}

func (c *Console) ClearScreen() {
	_, _ = fmt.Fprint(c.out, clearScreen)
	c.SetCursorPosition(0, 0)
}

// SetCursorPosition moves the cursor to a 0-based row and column.
func (c *Console) SetCursorPosition(row, col int) {
	_, _ = fmt.Fprintf(c.out, setPosition, row+1, col+1)
}

func (c *Console) MoveCursorLeft() {
	_, _ = fmt.Fprint(c.out, cursorLeft)
}

func (c *Console) Width() int {
	if c.outFd < 0 {
		return 0
	}
	w, _, err := xterm.GetSize(c.outFd)
	if err != nil {
		return 0
	}
	return w
}
