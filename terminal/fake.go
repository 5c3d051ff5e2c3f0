package terminal

import (
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/mattn/go-runewidth"
)

// Segment is a piece of text written while a foreground colour was active.
type Segment struct {
	Color Color
	Text  string
}

// Fake is a scripted Terminal for tests.
//
// Keys and lines are consumed in the order they were scripted; once they run
// out, reads fail with an error wrapping io.EOF. Everything written is kept
// both as a raw transcript and on a simulated screen that honours cursor moves,
// so destructive backspace rewrites can be checked on the screen.
type Fake struct {
	keys  []Key
	lines []string

	transcript strings.Builder
	segments   []Segment
	color      Color

	screen [][]rune
	row    int
	col    int

	clears int
	width  int
}

// NewFake returns an empty Fake that is 80 columns wide.
func NewFake() *Fake {
	return &Fake{screen: [][]rune{{}}, width: 80}
}

// Type scripts one key per rune of s. '\r' and '\n' become return keys and
// '\b' becomes backspace.
func (f *Fake) Type(s string) *Fake {
	for _, r := range s {
		f.keys = append(f.keys, Classify(r))
	}
	return f
}

// Press scripts raw key events.
func (f *Fake) Press(keys ...Key) *Fake {
	f.keys = append(f.keys, keys...)
	return f
}

// Lines scripts results for ReadLine.
func (f *Fake) Lines(lines ...string) *Fake {
	f.lines = append(f.lines, lines...)
	return f
}

// SetWidth changes the reported column count.
func (f *Fake) SetWidth(w int) {
	f.width = w
}

// Output returns everything written so far, including overwrite spaces.
func (f *Fake) Output() string {
	return f.transcript.String()
}

// Screen returns the simulated screen with trailing blanks trimmed per line.
func (f *Fake) Screen() string {
	rows := make([]string, len(f.screen))
	for i, row := range f.screen {
		rows[i] = strings.TrimRight(strings.ReplaceAll(string(row), "\x00", ""), " ")
	}
	return strings.Join(rows, "\n")
}

// Segments returns the coloured writes in order.
func (f *Fake) Segments() []Segment {
	return f.segments
}

// Clears reports how many times the screen was cleared.
func (f *Fake) Clears() int {
	return f.clears
}

// PendingKeys reports how many scripted keys have not been read.
func (f *Fake) PendingKeys() int {
	return len(f.keys)
}

func (f *Fake) Write(text string) {
	f.transcript.WriteString(text)
	if f.color != "" && text != "" {
		f.segments = append(f.segments, Segment{Color: f.color, Text: text})
	}
	for _, r := range text {
		if r == '\n' {
			f.row++
			f.col = 0
			f.ensureRow()
			continue
		}
		// Wide runes take two cells; the second holds a 0 placeholder.
		w := runewidth.RuneWidth(r)
		if w == 0 {
			w = 1
		}
		line := f.screen[f.row]
		for len(line) < f.col+w {
			line = append(line, ' ')
		}
		line[f.col] = r
		if w == 2 {
			line[f.col+1] = 0
		}
		f.screen[f.row] = line
		f.col += w
	}
}

func (f *Fake) WriteLine(text string) {
	f.Write(text + "\n")
}

func (f *Fake) ReadLine() (string, error) {
	if len(f.lines) == 0 {
		return "", errors.Wrap(io.EOF, "fake terminal: no scripted lines")
	}
	line := f.lines[0]
	f.lines = f.lines[1:]
	return line, nil
}

func (f *Fake) ReadKey() (Key, error) {
	if len(f.keys) == 0 {
		return Key{}, errors.Wrap(io.EOF, "fake terminal: no scripted keys")
	}
	k := f.keys[0]
	f.keys = f.keys[1:]
	return k, nil
}

func (f *Fake) SetForegroundColor(c Color) {
	f.color = c
}

func (f *Fake) ResetColor() {
	f.color = ""
}

func (f *Fake) ClearScreen() {
	f.clears++
	f.screen = [][]rune{{}}
	f.row, f.col = 0, 0
}

func (f *Fake) SetCursorPosition(row, col int) {
	f.row, f.col = row, col
	f.ensureRow()
}

func (f *Fake) MoveCursorLeft() {
	if f.col > 0 {
		f.col--
	}
}

func (f *Fake) Width() int {
	return f.width
}

func (f *Fake) ensureRow() {
	for len(f.screen) <= f.row {
		f.screen = append(f.screen, []rune{})
	}
}
