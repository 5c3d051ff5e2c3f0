package input

import (
	"github.com/simonhull/firebird-suite/nprompt/config"
	"github.com/simonhull/firebird-suite/nprompt/logger"
	"github.com/simonhull/firebird-suite/nprompt/output"
	"github.com/simonhull/firebird-suite/nprompt/terminal"
)

// Session ties together everything one run of prompts shares: the terminal,
// the automation queue, the cosmetic settings and the logger.
//
// A Session is meant for a single goroutine.
type Session struct {
	term    terminal.Terminal
	queue   *Queue
	cfg     *config.Config
	printer *output.Printer
	log     logger.Logger
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithConfig sets the session configuration.
func WithConfig(cfg *config.Config) SessionOption {
	return func(s *Session) {
		if cfg != nil {
			s.cfg = cfg
		}
	}
}

// WithLogger sets the logger prompt events are reported to.
func WithLogger(l logger.Logger) SessionOption {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// NewSession creates a Session on t. Without options it uses
// config.DefaultConfig() and logger.Default().
func NewSession(t terminal.Terminal, opts ...SessionOption) *Session {
	s := &Session{
		term:  t,
		queue: &Queue{},
		cfg:   config.DefaultConfig(),
		log:   logger.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.printer = output.New(t, s.cfg)
	return s
}

// QueueArguments adds answers for later prompts to consume before any
// terminal input is read.
func (s *Session) QueueArguments(values ...string) {
	s.queue.Enqueue(values...)
	s.log.Debug("queued automation answers", logger.F("count", len(values)), logger.F("pending", s.queue.Len()))
}

// Queue returns the session's automation queue.
func (s *Session) Queue() *Queue {
	return s.queue
}

// Terminal returns the terminal the session draws on.
func (s *Session) Terminal() terminal.Terminal {
	return s.term
}

// Config returns the session configuration.
func (s *Session) Config() *config.Config {
	return s.cfg
}

// Printer returns the printer used for diagnostics.
func (s *Session) Printer() *output.Printer {
	return s.printer
}

// Logger returns the session logger.
func (s *Session) Logger() logger.Logger {
	return s.log
}

// WritePrompt draws "<prefix><msg>[<def>]<marker>". The prefix and default
// hint are coloured; the hint is left out when def is empty.
func (s *Session) WritePrompt(msg, def string) {
	s.printer.Styled(terminal.DarkYellow, s.cfg.Prompt.Prefix)
	s.term.Write(msg)
	if def != "" {
		s.printer.Styled(terminal.DarkGray, "["+def+"]")
	}
	s.term.Write(s.cfg.Prompt.Marker)
}

// Answer obtains one raw answer: the head of the queue when automation is
// allowed and something is queued, otherwise a line typed at the terminal.
func (s *Session) Answer(allowAuto bool) (string, error) {
	return s.answer(NewLineEditor(s.term), allowAuto)
}

// answer ends the prompt line in both cases. Queued answers are echoed the
// way the editor would have echoed them, so transcripts read the same.
func (s *Session) answer(editor *LineEditor, allowAuto bool) (string, error) {
	if allowAuto {
		if v, ok := s.queue.Dequeue(); ok {
			s.term.WriteLine(editor.echoText(v))
			s.log.Debug("consumed automation answer", logger.F("pending", s.queue.Len()))
			return v, nil
		}
	}

	line, err := editor.Read()
	s.term.WriteLine("")
	if err != nil {
		s.log.Error("reading answer failed", logger.F("error", err))
		return "", err
	}
	return line, nil
}

// rejected reports a rejected answer on the terminal and in the log.
func (s *Session) rejected(log logger.Logger, err error, attempt int) {
	s.printer.Error(err.Error())
	log.Warn("answer rejected", logger.F("reason", reason(err)), logger.F("attempt", attempt))
}
