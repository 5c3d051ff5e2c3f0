package input

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"

	"github.com/simonhull/firebird-suite/nprompt/challenge"
	"github.com/simonhull/firebird-suite/nprompt/logger"
)

// Option adjusts one of the convenience prompts.
type Option func(*options)

type options struct {
	def     any
	min     *float64
	max     *float64
	noAuto  bool
	mask    *rune
	hidden  bool
	length  int
	complex bool
	rand    *rand.Rand
}

func collect(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) defaultString() string {
	if o.def == nil {
		return ""
	}
	return fmt.Sprint(o.def)
}

// WithDefault sets the answer used when the user just presses return.
func WithDefault(v any) Option {
	return func(o *options) { o.def = v }
}

// WithMin sets an inclusive lower bound for numeric prompts.
func WithMin(v float64) Option {
	return func(o *options) { o.min = &v }
}

// WithMax sets an inclusive upper bound for numeric prompts.
func WithMax(v float64) Option {
	return func(o *options) { o.max = &v }
}

// WithRange sets both bounds for numeric prompts.
func WithRange(min, max float64) Option {
	return func(o *options) {
		o.min = &min
		o.max = &max
	}
}

// WithoutAutomation makes the prompt ignore queued answers.
func WithoutAutomation() Option {
	return func(o *options) { o.noAuto = true }
}

// WithMask sets the character echoed for each password character.
func WithMask(r rune) Option {
	return func(o *options) { o.mask = &r }
}

// WithHiddenInput echoes nothing while a password is typed.
func WithHiddenInput() Option {
	return func(o *options) { o.hidden = true }
}

// WithLength sets the challenge length for AskCapture.
func WithLength(n int) Option {
	return func(o *options) { o.length = n }
}

// WithComplexChallenge draws challenge characters from all of printable ASCII.
func WithComplexChallenge() Option {
	return func(o *options) { o.complex = true }
}

// WithRand sets the random source for AskCapture.
func WithRand(r *rand.Rand) Option {
	return func(o *options) { o.rand = r }
}

// YesNoTable maps y/yes to true and n/no to false.
func YesNoTable() *Table[bool] {
	return NewTable[bool]().
		Set("y", true).
		Set("yes", true).
		Set("n", false).
		Set("no", false)
}

// AskYesNo asks a yes/no question. With a bool WithDefault the hint shows
// YES or NO and a blank answer picks it; without one a blank is rejected.
func (s *Session) AskYesNo(msg string, opts ...Option) (bool, error) {
	o := collect(opts)
	if msg == "" {
		msg = "Proceed?"
	}
	req := Request[bool]{
		Message:      msg,
		Table:        YesNoTable(),
		NoAutomation: o.noAuto,
	}
	if def, ok := o.def.(bool); ok {
		req.Default = "NO"
		if def {
			req.Default = "YES"
		}
	}
	return Ask(s, req)
}

// AskInt asks for an integer within the optional WithMin/WithMax bounds.
func (s *Session) AskInt(msg string, opts ...Option) (int, error) {
	if msg == "" {
		msg = "Enter an integer"
	}
	return askNumber[int](s, msg, collect(opts))
}

// AskFloat asks for a float within the optional WithMin/WithMax bounds.
func (s *Session) AskFloat(msg string, opts ...Option) (float64, error) {
	if msg == "" {
		msg = "Enter a float"
	}
	return askNumber[float64](s, msg, collect(opts))
}

func askNumber[T int | float64](s *Session, msg string, o options) (T, error) {
	req := Request[T]{
		Message:      msg,
		Default:      o.defaultString(),
		NoAutomation: o.noAuto,
	}
	log := s.log.WithFields(logger.F("prompt", msg))

	for attempt := 1; ; attempt++ {
		n, err := Ask(s, req)
		if err != nil {
			return n, err
		}
		if err := o.checkRange(float64(n)); err != nil {
			s.rejected(log, err, attempt)
			continue
		}
		return n, nil
	}
}

// checkRange enforces the inclusive [min, max] bounds. NaN lies outside any
// bounded range.
func (o options) checkRange(v float64) error {
	if math.IsNaN(v) && (o.min != nil || o.max != nil) {
		return reject(ErrRangeViolation, "Must be a number%s", describeRange(o.min, o.max))
	}
	if o.min != nil && v < *o.min {
		return reject(ErrRangeViolation, "Must be a number equal to or greater than %s", formatBound(*o.min))
	}
	if o.max != nil && v > *o.max {
		return reject(ErrRangeViolation, "Must be a number equal to or less than %s", formatBound(*o.max))
	}
	return nil
}

func describeRange(min, max *float64) string {
	switch {
	case min != nil && max != nil:
		return fmt.Sprintf(" between %s and %s", formatBound(*min), formatBound(*max))
	case min != nil:
		return " equal to or greater than " + formatBound(*min)
	default:
		return " equal to or less than " + formatBound(*max)
	}
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// AskString asks for free text. Blank answers are allowed and case is kept.
func (s *Session) AskString(msg string, opts ...Option) (string, error) {
	o := collect(opts)
	if msg == "" {
		msg = "Enter a string"
	}
	return Ask(s, Request[string]{
		Message:       msg,
		Default:       o.defaultString(),
		CaseSensitive: true,
		AllowBlank:    true,
		NoAutomation:  o.noAuto,
	})
}

// AskPass reads a password with masked echo and returns exactly what was
// entered. No default, validation or parsing is applied.
func (s *Session) AskPass(msg string, opts ...Option) (string, error) {
	o := collect(opts)
	if msg == "" {
		msg = "Enter a password"
	}

	s.WritePrompt(msg, "")
	return s.answer(s.passwordEditor(o), !o.noAuto)
}

func (s *Session) passwordEditor(o options) *LineEditor {
	if o.hidden {
		return NewHiddenEditor(s.term)
	}
	if o.mask != nil {
		return NewMaskedEditor(s.term, *o.mask)
	}
	if mask, ok := s.cfg.MaskRune(); ok {
		return NewMaskedEditor(s.term, mask)
	}
	return NewHiddenEditor(s.term)
}

// AskCapture shows a random challenge and asks the user to retype it. It
// returns true only for an exact, case-sensitive match. Queued answers are
// never used, so automation cannot pass it.
func (s *Session) AskCapture(msg string, opts ...Option) (bool, error) {
	o := collect(opts)
	if msg == "" {
		msg = "Enter the capture"
	}
	length := o.length
	if length <= 0 {
		length = s.cfg.Capture.Length
	}
	code := challenge.Generate(o.rand, length, o.complex || s.cfg.Capture.Complex)

	return Ask(s, Request[bool]{
		Message:       fmt.Sprintf("%s [%s]", msg, code),
		Table:         NewTable[bool]().Set(code, true).SetWildcard(false),
		CaseSensitive: true,
		NoAutomation:  true,
	})
}
