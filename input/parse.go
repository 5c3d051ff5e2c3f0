package input

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Parser converts a normalized answer into a T.
type Parser[T any] func(string) (T, error)

// ParseBool accepts the forms strconv.ParseBool accepts.
func ParseBool(s string) (bool, error) {
	return strconv.ParseBool(strings.TrimSpace(s))
}

// ParseInt parses a base-10 int, ignoring surrounding whitespace.
func ParseInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

// ParseFloat parses a float64, ignoring surrounding whitespace.
func ParseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// ParseString returns s unchanged.
func ParseString(s string) (string, error) {
	return s, nil
}

// parserFor picks the built-in parser for T. Types outside the closed set
// get a parser that always fails, so every answer is a format mismatch.
func parserFor[T any]() Parser[T] {
	var zero T
	var p any
	switch any(zero).(type) {
	case bool:
		p = Parser[bool](ParseBool)
	case int:
		p = Parser[int](ParseInt)
	case float64:
		p = Parser[float64](ParseFloat)
	case string:
		p = Parser[string](ParseString)
	default:
		return func(string) (T, error) {
			return zero, errors.Newf("no parser for %T", zero)
		}
	}
	return p.(Parser[T])
}

// typeName names T in diagnostics.
func typeName[T any]() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}
