// Package utils provides shared helpers for passage commands.
//
// # Terminal Utilities
//
// Console wraps the command's input and prompt output:
//   - ReadLine: prompts for a line of text (entry names)
//   - ReadSecret: prompts for a secret with echo disabled on terminals
//   - Confirm: asks a [y/N] question, refusing when input is not a terminal
//
// When stdin is not a terminal each prompt consumes one line, so answers
// can be piped in by scripts and tests.
//
// # System Utilities
//
//   - GetUsername: returns the current system username
package utils
