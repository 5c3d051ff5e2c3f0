// Package output prints styled status messages for prompt sessions.
//
// Every write goes through a terminal.Terminal. Colours are set immediately
// before a styled segment and reset immediately after it.
package output

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/simonhull/firebird-suite/nprompt/config"
	"github.com/simonhull/firebird-suite/nprompt/terminal"
)

// Message prefixes.
const (
	AlertPrefix = "[!] "
	InfoPrefix  = "[INFO] "
	WarnPrefix  = "[WARNING] "
	ErrorPrefix = "[ERROR] "
)

// Printer writes styled messages to a terminal using session settings.
type Printer struct {
	term terminal.Terminal
	cfg  *config.Config
}

// New creates a Printer. A nil cfg means config.DefaultConfig().
func New(t terminal.Terminal, cfg *config.Config) *Printer {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Printer{term: t, cfg: cfg}
}

// Echo prints msg followed by end. When echo-return is enabled the printed
// text is also returned; otherwise the result is empty.
//
// Example:
//
//	p.Echo("Saved", "\n")
func (p *Printer) Echo(msg, end string) string {
	text := msg + end
	if !p.cfg.Silent {
		p.term.Write(text)
	}
	if p.cfg.EchoReturn {
		return text
	}
	return ""
}

// Alert prints msg with a green "[!]" prefix and returns msg.
func (p *Printer) Alert(msg string) string {
	return p.tagged(terminal.Green, AlertPrefix, msg)
}

// Info prints msg with a blue "[INFO]" prefix and returns msg.
func (p *Printer) Info(msg string) string {
	return p.tagged(terminal.Blue, InfoPrefix, msg)
}

// Warn prints msg with a dark yellow "[WARNING]" prefix and returns msg.
func (p *Printer) Warn(msg string) string {
	return p.tagged(terminal.DarkYellow, WarnPrefix, msg)
}

// Error prints msg with a red "[ERROR]" prefix and returns msg.
// Prompt diagnostics are reported through here.
func (p *Printer) Error(msg string) string {
	return p.tagged(terminal.Red, ErrorPrefix, msg)
}

func (p *Printer) tagged(c terminal.Color, prefix, msg string) string {
	if p.cfg.Silent {
		return msg
	}
	p.Styled(c, prefix)
	p.term.WriteLine(msg)
	return msg
}

// Styled writes text in colour c, resetting the colour straight after.
func (p *Printer) Styled(c terminal.Color, text string) {
	p.term.SetForegroundColor(c)
	p.term.Write(text)
	p.term.ResetColor()
}

// HorizontalRule draws a rule of width characters. Zero values fall back to
// the configured width and character; a configured width of zero means the
// terminal's width.
func (p *Printer) HorizontalRule(width int, char rune) {
	if p.cfg.Silent {
		return
	}
	if char == 0 {
		char = p.cfg.RuleRune()
	}
	p.term.WriteLine(strings.Repeat(string(char), p.width(width)))
}

// Wrap prints msg broken into lines of at most width display columns,
// optionally framed by horizontal rules. Existing newlines are kept.
func (p *Printer) Wrap(msg string, width int, rules bool) {
	if p.cfg.Silent {
		return
	}
	width = p.width(width)
	if rules {
		p.HorizontalRule(width, 0)
	}
	p.term.Write(wrap(msg, width))
	if rules {
		p.HorizontalRule(width, 0)
	}
}

// Clear clears the screen and drops any lingering colour.
func (p *Printer) Clear() {
	p.term.ClearScreen()
	p.term.ResetColor()
}

// Pause blocks until any key is pressed.
func (p *Printer) Pause() error {
	_, err := p.term.ReadKey()
	return err
}

func (p *Printer) width(w int) int {
	if w > 0 {
		return w
	}
	if p.cfg.Rule.Width > 0 {
		return p.cfg.Rule.Width
	}
	if tw := p.term.Width(); tw > 0 {
		return tw
	}
	return config.DefaultConfig().Rule.Width
}

// wrap breaks s so no line exceeds width columns. The result always ends in
// a newline.
func wrap(s string, width int) string {
	var b strings.Builder
	n := 0
	lastNL := false
	for _, r := range s {
		if r == '\n' {
			b.WriteRune('\n')
			n = 0
			lastNL = true
			continue
		}
		w := runewidth.RuneWidth(r)
		if n > 0 && n+w > width {
			b.WriteRune('\n')
			n = 0
		}
		b.WriteRune(r)
		n += w
		lastNL = false
		if n >= width {
			b.WriteRune('\n')
			n = 0
			lastNL = true
		}
	}
	if !lastNL {
		b.WriteRune('\n')
	}
	return b.String()
}
