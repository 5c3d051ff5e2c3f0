package input

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/simonhull/firebird-suite/nprompt/logger"
)

// Request describes one typed prompt.
type Request[T any] struct {
	// Message is shown after the prompt prefix. Empty means "Enter input".
	Message string
	// Default replaces an empty answer and is shown as a hint.
	Default string
	// Table, when set, restricts answers to its keys (or its wildcard).
	Table *Table[T]
	// Parse converts answers when there is no Table. Nil picks the built-in
	// parser for bool, int, float64 or string.
	Parse Parser[T]
	// CaseSensitive keeps the answer's case; otherwise it is lowercased.
	CaseSensitive bool
	// AllowBlank accepts an empty answer when there is no Default.
	AllowBlank bool
	// NoAutomation ignores the session queue and always reads the terminal.
	NoAutomation bool
}

// Ask prompts until an acceptable answer is given and returns its value.
//
// Rejected answers (blank, wrong format, not in the table) print a one-line
// diagnostic and the prompt is shown again, with no limit on retries. The
// error result is only set when the terminal itself fails, for example when
// input is closed.
func Ask[T any](s *Session, req Request[T]) (T, error) {
	if req.Message == "" {
		req.Message = "Enter input"
	}
	parse := req.Parse
	if parse == nil {
		parse = parserFor[T]()
	}
	log := s.log.WithFields(logger.F("prompt", req.Message))
	editor := NewLineEditor(s.term)

	for attempt := 1; ; attempt++ {
		s.WritePrompt(req.Message, req.Default)
		raw, err := s.answer(editor, !req.NoAutomation)
		if err != nil {
			var zero T
			return zero, err
		}

		v, err := resolve(req, parse, raw)
		if err == nil {
			log.Debug("answer accepted", logger.F("attempt", attempt))
			return v, nil
		}
		s.rejected(log, err, attempt)
	}
}

// resolve applies default substitution, the blank policy, case
// normalization, and then table lookup or parsing.
func resolve[T any](req Request[T], parse Parser[T], raw string) (T, error) {
	var zero T

	ans := raw
	if ans == "" {
		ans = req.Default
	}
	if ans == "" && !req.AllowBlank {
		if req.Table != nil {
			return zero, reject(ErrBlankRejected, "Invalid input. Input must be one of the following: %s", req.Table)
		}
		return zero, reject(ErrBlankRejected, "Incorrect format. Input must be %s", typeName[T]())
	}

	if !req.CaseSensitive {
		ans = strings.ToLower(ans)
	}

	if req.Table != nil {
		if v, ok := req.Table.Lookup(ans, req.CaseSensitive); ok {
			return v, nil
		}
		return zero, reject(ErrValidationMismatch, "Invalid input. Input must be one of the following: %s", req.Table)
	}

	v, err := parse(ans)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return zero, reject(ErrFormatMismatch, "Value was either too large or too small for %s", typeName[T]())
		}
		return zero, reject(ErrFormatMismatch, "Incorrect format. Input must be %s", typeName[T]())
	}
	return v, nil
}
