package output

import (
	"strings"
	"testing"

	"github.com/simonhull/firebird-suite/nprompt/config"
	"github.com/simonhull/firebird-suite/nprompt/terminal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPrinter(mutate func(*config.Config)) (*Printer, *terminal.Fake) {
	cfg := config.DefaultConfig()
	if mutate != nil {
		mutate(cfg)
	}
	fake := terminal.NewFake()
	return New(fake, cfg), fake
}

func TestTaggedMessages(t *testing.T) {
	tests := []struct {
		name   string
		print  func(*Printer, string) string
		prefix string
		color  terminal.Color
	}{
		{"alert", (*Printer).Alert, "[!] ", terminal.Green},
		{"info", (*Printer).Info, "[INFO] ", terminal.Blue},
		{"warn", (*Printer).Warn, "[WARNING] ", terminal.DarkYellow},
		{"error", (*Printer).Error, "[ERROR] ", terminal.Red},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, fake := newPrinter(nil)

			got := tt.print(p, "Test message")

			assert.Equal(t, "Test message", got)
			assert.Equal(t, tt.prefix+"Test message\n", fake.Output())
			require.Len(t, fake.Segments(), 1, "only the prefix is coloured")
			assert.Equal(t, terminal.Segment{Color: tt.color, Text: tt.prefix}, fake.Segments()[0])
		})
	}
}

func TestSilentSuppressesOutput(t *testing.T) {
	p, fake := newPrinter(func(c *config.Config) { c.Silent = true })

	assert.Equal(t, "quiet", p.Error("quiet"))
	p.Info("quiet")
	p.Echo("quiet", "\n")
	p.HorizontalRule(10, '-')
	p.Wrap("quiet", 10, true)

	assert.Empty(t, fake.Output())
}

func TestEcho(t *testing.T) {
	p, fake := newPrinter(nil)
	assert.Equal(t, "hello\n", p.Echo("hello", "\n"))
	assert.Equal(t, "hello\n", fake.Output())

	p, fake = newPrinter(func(c *config.Config) { c.EchoReturn = false })
	assert.Equal(t, "", p.Echo("hello", "!"))
	assert.Equal(t, "hello!", fake.Output())
}

func TestHorizontalRule(t *testing.T) {
	p, fake := newPrinter(nil)
	p.HorizontalRule(0, 0)
	assert.Equal(t, strings.Repeat("-", 65)+"\n", fake.Output())

	p, fake = newPrinter(func(c *config.Config) { c.Rule.Char = "=" })
	p.HorizontalRule(5, 0)
	assert.Equal(t, "=====\n", fake.Output())

	p, fake = newPrinter(func(c *config.Config) { c.Rule.Width = 0 })
	fake.SetWidth(12)
	p.HorizontalRule(0, '*')
	assert.Equal(t, strings.Repeat("*", 12)+"\n", fake.Output())
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		msg   string
		width int
		want  string
	}{
		{"short", "abc", 5, "abc\n"},
		{"exact width", "abcde", 5, "abcde\n"},
		{"breaks long lines", "abcdefghij", 4, "abcd\nefgh\nij\n"},
		{"keeps newlines", "ab\ncd", 5, "ab\ncd\n"},
		{"trailing newline kept once", "ab\n", 5, "ab\n"},
		{"wide runes count two columns", "日本語", 4, "日本\n語\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wrap(tt.msg, tt.width))
		})
	}
}

func TestWrapWithRules(t *testing.T) {
	p, fake := newPrinter(nil)
	p.Wrap("abcdef", 3, true)
	assert.Equal(t, "---\nabc\ndef\n---\n", fake.Output())
}

func TestClearAndPause(t *testing.T) {
	p, fake := newPrinter(nil)
	fake.Type("x")

	p.Clear()
	require.NoError(t, p.Pause())

	assert.Equal(t, 1, fake.Clears())
	assert.Zero(t, fake.PendingKeys())
	assert.Error(t, p.Pause(), "no keys left")
}
