// Package nprompt is the root of the interactive prompting toolkit.
//
// The packages underneath provide the pieces:
//
//   - terminal: raw key reads, styled writes and cursor control
//   - input: typed, validated prompts with an automation queue
//   - menu: keyed selection menus with optional actions
//   - output: styled status messages, rules and wrapped text
package nprompt

// Version is the current library version.
const Version = "0.1.0"
