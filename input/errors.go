package input

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Reasons an answer is rejected. Rejections never reach callers of the Ask
// functions; they are reported on the terminal and the prompt is repeated.
var (
	ErrBlankRejected      = errors.New("blank answer rejected")
	ErrFormatMismatch     = errors.New("answer has the wrong format")
	ErrValidationMismatch = errors.New("answer is not an accepted value")
	ErrRangeViolation     = errors.New("answer is out of range")
)

// rejection carries the one-line diagnostic shown to the user.
type rejection struct {
	kind error
	msg  string
}

func (r *rejection) Error() string { return r.msg }
func (r *rejection) Unwrap() error { return r.kind }

func reject(kind error, format string, args ...any) error {
	return &rejection{kind: kind, msg: fmt.Sprintf(format, args...)}
}

// reason returns the sentinel a rejection wraps, for logging.
func reason(err error) string {
	for _, kind := range []error{ErrBlankRejected, ErrFormatMismatch, ErrValidationMismatch, ErrRangeViolation} {
		if errors.Is(err, kind) {
			return kind.Error()
		}
	}
	return "unknown"
}
