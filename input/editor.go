package input

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/simonhull/firebird-suite/nprompt/terminal"
)

// EchoMode controls what the line editor prints for each accepted key.
type EchoMode int

const (
	// EchoPlain prints typed characters as-is.
	EchoPlain EchoMode = iota
	// EchoMask prints a substitute character per typed character.
	EchoMask
	// EchoNone prints nothing.
	EchoNone
)

// LineEditor composes a line from raw key events. It supports appending and
// deleting at the end of the line only.
type LineEditor struct {
	term terminal.Terminal
	mode EchoMode
	mask rune
}

// NewLineEditor returns an editor that echoes typed characters.
func NewLineEditor(t terminal.Terminal) *LineEditor {
	return &LineEditor{term: t, mode: EchoPlain}
}

// NewMaskedEditor returns an editor that echoes mask for every character.
func NewMaskedEditor(t terminal.Terminal, mask rune) *LineEditor {
	return &LineEditor{term: t, mode: EchoMask, mask: mask}
}

// NewHiddenEditor returns an editor that echoes nothing.
func NewHiddenEditor(t terminal.Terminal) *LineEditor {
	return &LineEditor{term: t, mode: EchoNone}
}

// Accepts reports whether r may enter the buffer. Control and format
// characters are refused so stray escape sequences never end up in answers.
func Accepts(r rune) bool {
	return !unicode.Is(unicode.Cc, r) && !unicode.Is(unicode.Cf, r)
}

// Read collects keys until return is pressed and returns the composed line.
// The return key itself is not echoed. On a read error the partial line is
// returned with the error.
func (e *LineEditor) Read() (string, error) {
	var buf []rune
	for {
		k, err := e.term.ReadKey()
		if err != nil {
			return string(buf), err
		}

		switch {
		case k.IsReturn:
			return string(buf), nil
		case k.IsBackspace:
			if len(buf) == 0 {
				continue
			}
			last := buf[len(buf)-1]
			buf = buf[:len(buf)-1]
			e.rubout(last)
			continue
		case !Accepts(k.Rune):
			continue
		}

		buf = append(buf, k.Rune)
		e.echo(k.Rune)
	}
}

func (e *LineEditor) echo(r rune) {
	switch e.mode {
	case EchoPlain:
		e.term.Write(string(r))
	case EchoMask:
		e.term.Write(string(e.mask))
	}
}

// rubout erases the echo of r: cursor back, overwrite with blanks, cursor
// back again.
func (e *LineEditor) rubout(r rune) {
	var cols int
	switch e.mode {
	case EchoPlain:
		cols = runewidth.RuneWidth(r)
	case EchoMask:
		cols = runewidth.RuneWidth(e.mask)
	}
	if cols == 0 {
		return
	}
	for i := 0; i < cols; i++ {
		e.term.MoveCursorLeft()
	}
	e.term.Write(strings.Repeat(" ", cols))
	for i := 0; i < cols; i++ {
		e.term.MoveCursorLeft()
	}
}

// echoText is what the editor would have printed had s been typed.
func (e *LineEditor) echoText(s string) string {
	switch e.mode {
	case EchoMask:
		return strings.Repeat(string(e.mask), len([]rune(s)))
	case EchoNone:
		return ""
	default:
		return s
	}
}
