// Package input provides typed, validated interactive prompts.
//
// # Overview
//
// A Session owns a terminal, an automation queue and the cosmetic settings.
// Every prompt goes through the same loop: draw the prompt, take an answer
// from the queue or the line editor, substitute the default, apply the blank
// policy, normalize case, then either look the answer up in a Table or parse
// it. Rejected answers print a one-line error and the prompt is repeated
// until an acceptable answer arrives.
//
// # Usage
//
//	s := input.NewSession(terminal.NewConsole())
//
//	// Typed prompts
//	port, err := s.AskInt("Port", input.WithDefault(8080), input.WithRange(1, 65535))
//	ok, err := s.AskYesNo("Continue?", input.WithDefault(true))
//
//	// Custom validation table with a wildcard
//	level, err := input.Ask(s, input.Request[int]{
//	    Message: "Level",
//	    Table:   input.NewTable[int]().Set("low", 1).Set("high", 3).SetWildcard(2),
//	})
//
// # Automation
//
// Answers queued with QueueArguments are consumed front to back before any
// key is read, which lets scripts and tests drive prompts:
//
//	s.QueueArguments("yes", "42")
//	ok, _ := s.AskYesNo("Continue?") // true
//	n, _ := s.AskInt("Count")        // 42
//
// AskCapture and prompts built with WithoutAutomation never read the queue.
//
// # Line editing
//
// Live answers are composed by a LineEditor from raw keys. Backspace removes
// the last character and rubs it out on screen; control and format
// characters are dropped. Passwords use the same editor with a mask
// character or no echo at all.
package input
