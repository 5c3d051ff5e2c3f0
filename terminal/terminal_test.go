package terminal

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want Key
	}{
		{"carriage return", '\r', Key{Rune: '\r', IsReturn: true}},
		{"line feed", '\n', Key{Rune: '\n', IsReturn: true}},
		{"backspace", '\b', Key{Rune: '\b', IsBackspace: true}},
		{"delete", 0x7f, Key{Rune: 0x7f, IsBackspace: true}},
		{"letter", 'x', Key{Rune: 'x'}},
		{"escape", 0x1b, Key{Rune: 0x1b}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.r))
		})
	}
}

func TestFake_Keys(t *testing.T) {
	f := NewFake()
	f.Type("a\b\r").Press(Key{Rune: 'z'})

	assert.Equal(t, 4, f.PendingKeys())
	for _, want := range []Key{{Rune: 'a'}, {Rune: '\b', IsBackspace: true}, {Rune: '\r', IsReturn: true}, {Rune: 'z'}} {
		got, err := f.ReadKey()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := f.ReadKey()
	assert.True(t, errors.Is(err, io.EOF))
}

func TestFake_Lines(t *testing.T) {
	f := NewFake().Lines("first", "")

	got, err := f.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "first", got)

	got, err = f.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "", got)

	_, err = f.ReadLine()
	assert.True(t, errors.Is(err, io.EOF))
}

func TestFake_Screen(t *testing.T) {
	f := NewFake()
	f.Write("hello")
	f.MoveCursorLeft()
	f.MoveCursorLeft()
	f.Write("  ")
	f.WriteLine("")
	f.Write("日本")

	assert.Equal(t, "hel\n日本", f.Screen())
	assert.Equal(t, "hello  \n日本", f.Output())
}

func TestFake_SegmentsAndClears(t *testing.T) {
	f := NewFake()
	f.SetForegroundColor(Red)
	f.Write("bad")
	f.ResetColor()
	f.Write(" plain")
	f.ClearScreen()
	f.SetCursorPosition(2, 1)
	f.Write("x")

	assert.Equal(t, []Segment{{Color: Red, Text: "bad"}}, f.Segments())
	assert.Equal(t, 1, f.Clears())
	assert.Equal(t, "\n\n x", f.Screen())
}

func TestFake_Width(t *testing.T) {
	f := NewFake()
	assert.Equal(t, 80, f.Width())

	f.SetWidth(40)
	assert.Equal(t, 40, f.Width())
}

func newBufferedConsole(input string) (*Console, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &Console{
		in:  bufio.NewReader(strings.NewReader(input)),
		out: out,
	}, out
}

func TestConsole_ReadKeyFromLines(t *testing.T) {
	c, _ := newBufferedConsole("ab\r\nc")

	var got []Key
	for {
		k, err := c.ReadKey()
		if err != nil {
			assert.True(t, errors.Is(err, io.EOF))
			break
		}
		got = append(got, k)
	}

	assert.Equal(t, []Key{
		{Rune: 'a'}, {Rune: 'b'}, {Rune: '\n', IsReturn: true},
		{Rune: 'c'}, {Rune: '\n', IsReturn: true},
	}, got)
}

func TestConsole_ReadLine(t *testing.T) {
	c, _ := newBufferedConsole("one\r\ntwo")

	got, err := c.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "one", got)

	got, err = c.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "two", got, "a final line without newline is kept")

	_, err = c.ReadLine()
	assert.True(t, errors.Is(err, io.EOF))
}

func TestConsole_ControlSequences(t *testing.T) {
	c, out := newBufferedConsole("")

	c.Write("hi")
	c.WriteLine("!")
	c.MoveCursorLeft()
	c.ClearScreen()
	c.SetCursorPosition(4, 9)

	assert.Equal(t, "hi!\n\x1b[1D\x1b[2J\x1b[1;1H\x1b[5;10H", out.String())
}

func TestConsole_ColorIsCleared(t *testing.T) {
	c, out := newBufferedConsole("")

	c.SetForegroundColor(Green)
	c.Write("ok")
	c.ResetColor()
	c.Write("plain")

	assert.Contains(t, out.String(), "ok")
	assert.True(t, strings.HasSuffix(out.String(), "plain"))
	assert.Equal(t, Color(""), c.color)
}

func TestDecodeKeys(t *testing.T) {
	tests := []struct {
		name     string
		in       []byte
		wantKeys []rune
		wantRest []byte
	}{
		{"ascii", []byte("ab\n"), []rune{'a', 'b', '\n'}, nil},
		{"escape sequence collapses", []byte("\x1b[A"), []rune{0x1b}, nil},
		{"whole multibyte rune", []byte("é"), []rune{'é'}, nil},
		{"rune split at the end", []byte("a\xe6\x97"), []rune{'a'}, []byte{0xe6, 0x97}},
		{"only a partial rune", []byte{0xe6}, nil, []byte{0xe6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys, rest, err := decodeKeys(tt.in)

			require.NoError(t, err)
			assert.Equal(t, tt.wantKeys, keys)
			assert.Equal(t, tt.wantRest, rest)
		})
	}
}

func TestDecodeKeys_SplitRuneCompletesOnNextRead(t *testing.T) {
	whole := []byte("日本")
	first, second := whole[:4], whole[4:]

	keys, rest, err := decodeKeys(first)
	require.NoError(t, err)
	assert.Equal(t, []rune{'日'}, keys)

	keys, rest, err = decodeKeys(append(rest, second...))
	require.NoError(t, err)
	assert.Equal(t, []rune{'本'}, keys)
	assert.Empty(t, rest)
}

func TestDecodeKeys_ControlKeysEndInput(t *testing.T) {
	_, _, err := decodeKeys([]byte("ab\x03"))
	assert.True(t, errors.Is(err, ErrInterrupted), "Ctrl-C interrupts the read")

	_, _, err = decodeKeys([]byte{0x04})
	assert.True(t, errors.Is(err, io.EOF), "Ctrl-D closes input")
}

func TestNewConsoleOn(t *testing.T) {
	out := &bytes.Buffer{}
	c := NewConsoleOn(strings.NewReader("y\n"), out)

	assert.False(t, c.Interactive(), "a plain reader is served line by line")
	assert.Zero(t, c.Width(), "width is unknown for a non-terminal writer")

	k, err := c.ReadKey()
	require.NoError(t, err)
	assert.Equal(t, Key{Rune: 'y'}, k)

	c.Write("prompt")
	assert.Equal(t, "prompt", out.String())
}
