package menu

import (
	"iter"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/simonhull/firebird-suite/nprompt/input"
	"github.com/simonhull/firebird-suite/nprompt/logger"
)

// ErrMenuSelectionInvalid is logged when an answer is not one of the menu's keys.
var ErrMenuSelectionInvalid = errors.New("selection is not a menu option")

const (
	// DefaultHeader is used by New when header is empty.
	DefaultHeader = "MENU"
	// DefaultMaxResults is the initial MaxResults value.
	DefaultMaxResults = 20
	// DefaultMessage is the selection prompt used when Show gets an empty message.
	DefaultMessage = "Enter menu selection"
)

// Action runs when its option is selected.
type Action func()

// Menu is an ordered set of keyed options the user picks from by typing a key.
type Menu struct {
	Header string

	// MaxResults is kept for configuration compatibility. Paging is not
	// implemented, so every option is always listed.
	MaxResults int

	// ClearOnShow clears the screen before the menu is drawn.
	ClearOnShow bool

	keys    []string
	labels  map[string]string
	actions map[string]Action
}

// New creates an empty menu. ClearOnShow starts enabled.
func New(header string) *Menu {
	if header == "" {
		header = DefaultHeader
	}
	return &Menu{
		Header:      header,
		MaxResults:  DefaultMaxResults,
		ClearOnShow: true,
		labels:      make(map[string]string),
		actions:     make(map[string]Action),
	}
}

// FromKeys creates a menu whose options are labelled by their own keys.
func FromKeys(header string, keys ...string) *Menu {
	m := New(header)
	for _, k := range keys {
		m.AddKey(k, nil)
	}
	return m
}

// Add inserts or replaces an option. An empty label shows the key itself. A
// nil action removes any action previously bound to key.
func (m *Menu) Add(key, label string, action Action) *Menu {
	if label == "" {
		label = key
	}
	if _, ok := m.labels[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.labels[key] = label
	if action != nil {
		m.actions[key] = action
	} else {
		delete(m.actions, key)
	}
	return m
}

// AddKey adds an option labelled by its key.
func (m *Menu) AddKey(key string, action Action) *Menu {
	return m.Add(key, key, action)
}

// Remove deletes an option and its action. Unknown keys are ignored.
func (m *Menu) Remove(key string) *Menu {
	if _, ok := m.labels[key]; !ok {
		return m
	}
	m.keys = slices.DeleteFunc(m.keys, func(k string) bool { return k == key })
	delete(m.labels, key)
	delete(m.actions, key)
	return m
}

// HasOption reports whether key is an option.
func (m *Menu) HasOption(key string) bool {
	_, ok := m.labels[key]
	return ok
}

// HasAction reports whether key has a bound action.
func (m *Menu) HasAction(key string) bool {
	_, ok := m.actions[key]
	return ok
}

// Options yields option keys in insertion order. The sequence reads the
// menu when iterated, so it can be ranged over again after changes.
func (m *Menu) Options() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, k := range m.keys {
			if !yield(k) {
				return
			}
		}
	}
}

// Label returns the label shown for key.
func (m *Menu) Label(key string) (string, bool) {
	l, ok := m.labels[key]
	return l, ok
}

// Len returns the number of options.
func (m *Menu) Len() int {
	return len(m.keys)
}

// Clone returns an independent copy. Options, labels and settings are
// copied; actions are shared by reference.
func (m *Menu) Clone() *Menu {
	c := &Menu{
		Header:      m.Header,
		MaxResults:  m.MaxResults,
		ClearOnShow: m.ClearOnShow,
		keys:        slices.Clone(m.keys),
		labels:      make(map[string]string, len(m.labels)),
		actions:     make(map[string]Action, len(m.actions)),
	}
	for k, v := range m.labels {
		c.labels[k] = v
	}
	for k, v := range m.actions {
		c.actions[k] = v
	}
	return c
}

// SetHeader sets the banner drawn above the options.
func (m *Menu) SetHeader(header string) *Menu {
	m.Header = header
	return m
}

// SetClearOnShow controls whether Show clears the screen before drawing.
func (m *Menu) SetClearOnShow(clear bool) *Menu {
	m.ClearOnShow = clear
	return m
}

// SetMaxResults records the configured result limit. Show does not page.
func (m *Menu) SetMaxResults(n int) *Menu {
	m.MaxResults = n
	return m
}

// Show draws the menu and prompts until an option key is entered, then runs
// that option's action once and returns the key. Queued session answers are
// used before terminal input. The error is only set when the terminal fails.
func (m *Menu) Show(s *input.Session, msg string) (string, error) {
	if msg == "" {
		msg = DefaultMessage
	}
	t := s.Terminal()

	if m.ClearOnShow {
		t.ClearScreen()
		t.SetCursorPosition(0, 0)
	}
	t.WriteLine("-- " + m.Header + " --")
	for _, k := range m.keys {
		if label := m.labels[k]; label == k {
			t.WriteLine("   " + label)
		} else {
			t.WriteLine("   (" + k + ") " + label)
		}
	}

	log := s.Logger().WithFields(logger.F("menu", m.Header))
	for attempt := 1; ; attempt++ {
		s.WritePrompt(msg, "")
		choice, err := s.Answer(true)
		if err != nil {
			return "", errors.Wrap(err, "reading menu selection")
		}

		if m.HasOption(choice) {
			log.Debug("menu option selected", logger.F("option", choice), logger.F("attempt", attempt))
			if action, ok := m.actions[choice]; ok {
				action()
			}
			return choice, nil
		}

		s.Printer().Error("Invalid input.")
		log.Warn("answer rejected",
			logger.F("reason", ErrMenuSelectionInvalid.Error()),
			logger.F("answer", choice),
			logger.F("attempt", attempt))
	}
}
