package input

import (
	"strings"
)

// Wildcard is the key that matches any answer no other key matched.
const Wildcard = "\x00"

// Table maps accepted answers to values. Keys keep insertion order for
// display.
type Table[T any] struct {
	keys        []string
	values      map[string]T
	wildcard    T
	hasWildcard bool
}

// NewTable returns an empty table.
func NewTable[T any]() *Table[T] {
	return &Table[T]{values: make(map[string]T)}
}

// Set maps key to v. Setting an existing key keeps its position. Setting
// Wildcard is the same as SetWildcard.
func (t *Table[T]) Set(key string, v T) *Table[T] {
	if key == Wildcard {
		return t.SetWildcard(v)
	}
	if _, ok := t.values[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.values[key] = v
	return t
}

// SetWildcard sets the value returned for unmatched answers.
func (t *Table[T]) SetWildcard(v T) *Table[T] {
	t.wildcard = v
	t.hasWildcard = true
	return t
}

// HasWildcard reports whether a wildcard value is set.
func (t *Table[T]) HasWildcard() bool {
	return t.hasWildcard
}

// Keys returns the keys in insertion order, without the wildcard.
func (t *Table[T]) Keys() []string {
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

// Lookup resolves an answer. An exact match wins; without case sensitivity
// the answer and keys are compared lowercased. The wildcard is only tried
// when no key matched.
func (t *Table[T]) Lookup(answer string, caseSensitive bool) (T, bool) {
	if v, ok := t.values[answer]; ok {
		return v, true
	}
	if !caseSensitive {
		answer = strings.ToLower(answer)
		for _, k := range t.keys {
			if strings.ToLower(k) == answer {
				return t.values[k], true
			}
		}
	}
	if t.hasWildcard {
		return t.wildcard, true
	}
	var zero T
	return zero, false
}

// String lists the keys as "[a] [b] [c]".
func (t *Table[T]) String() string {
	parts := make([]string, len(t.keys))
	for i, k := range t.keys {
		parts[i] = "[" + k + "]"
	}
	return strings.Join(parts, " ")
}
