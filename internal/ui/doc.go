// Package ui provides semantic text formatting for CLI output.
//
// Formatters render content (commands, paths, entry names) in color when
// the terminal supports it. When NO_COLOR is set or the terminal cannot show
// colors, text decorations are used instead:
//   - Code: `backticks`
//   - Entry: 'single quotes'
//   - Muted: (parentheses)
//
// Done, Failed and Hint build the ✓ / ✗ / → status lines the commands print.
package ui
