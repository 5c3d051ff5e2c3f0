// Package menu shows a list of keyed options and reads a selection.
//
// Options keep the order they were added in. Each option has a label, which
// defaults to the key, and may carry an Action that runs when it is picked:
//
//	m := menu.New("Main").
//		Add("n", "New project", newProject).
//		Add("q", "Quit", nil)
//	choice, err := m.Show(session, "")
//
// Show renders the header as "-- Main --", lists options whose label differs
// from the key as "(key) label", and keeps prompting until a key is entered.
// Answers queued on the session with QueueArguments are used before the
// terminal is read, so menus can be scripted like any other prompt.
//
// Menus can also be described in YAML and loaded with Load or Parse; see File.
package menu
