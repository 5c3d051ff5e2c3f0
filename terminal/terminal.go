// Package terminal abstracts the console that prompts are drawn on.
//
// Prompts never talk to os.Stdin or os.Stdout directly. They go through the
// Terminal interface so the same prompt code can drive a real tty (Console)
// or a scripted one in tests (Fake).
package terminal

import (
	"github.com/charmbracelet/lipgloss"
)

// Key is a single key event read from the terminal.
type Key struct {
	Rune        rune
	IsReturn    bool
	IsBackspace bool
}

// Color is a foreground colour understood by lipgloss.
type Color string

// Colours used by the prompt and output packages.
const (
	Red        Color = "1"
	Green      Color = "2"
	DarkYellow Color = "3"
	Blue       Color = "4"
	DarkGray   Color = "8"
)

func (c Color) lipgloss() lipgloss.Color {
	return lipgloss.Color(string(c))
}

// Terminal is the set of console operations the prompt engine needs.
type Terminal interface {
	// Write prints text without a trailing newline.
	Write(text string)
	// WriteLine prints text followed by a newline.
	WriteLine(text string)
	// ReadLine reads a full line in cooked mode, without the line terminator.
	ReadLine() (string, error)
	// ReadKey reads one key without echoing it.
	ReadKey() (Key, error)

	SetForegroundColor(c Color)
	ResetColor()
	ClearScreen()
	SetCursorPosition(row, col int)
	MoveCursorLeft()

	// Width reports the number of columns, or 0 when unknown.
	Width() int
}

// Classify turns a decoded rune into a Key.
func Classify(r rune) Key {
	switch r {
	case '\r', '\n':
		return Key{Rune: r, IsReturn: true}
	case '\b', 0x7f:
		return Key{Rune: r, IsBackspace: true}
	default:
		return Key{Rune: r}
	}
}
