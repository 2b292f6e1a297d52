package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Formatter applies semantic formatting to text.
type Formatter struct {
	color  *color.Color
	prefix string
	suffix string
}

// Sprint formats the arguments and returns the resulting string.
func (f Formatter) Sprint(a ...interface{}) string {
	return f.render(fmt.Sprint(a...))
}

// Sprintf formats according to a format specifier and returns the resulting string.
func (f Formatter) Sprintf(format string, a ...interface{}) string {
	return f.render(fmt.Sprintf(format, a...))
}

func (f Formatter) render(text string) string {
	if noColor() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

// EnsureNewline ensures the string ends with a newline character.
func EnsureNewline(s string) string {
	if len(s) == 0 || s[len(s)-1] != '\n' {
		return s + "\n"
	}
	return s
}

// noColor returns true if color output should be disabled.
func noColor() bool {
	// https://no-color.org/
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return true
	}
	return color.NoColor
}

var (
	// Code formats runnable commands. Yellow, or `backticks` without color.
	Code = Formatter{color.New(color.FgYellow), "`", "`"}

	// Path formats file or directory paths.
	Path = Formatter{color.New(color.FgYellow), "", ""}

	// Flag formats CLI flags like --on-screen.
	Flag = Formatter{color.New(color.FgYellow), "", ""}

	Success = Formatter{color.New(color.FgGreen), "", ""}
	Error   = Formatter{color.New(color.FgRed), "", ""}
	Warning = Formatter{color.New(color.FgYellow), "", ""}
	Info    = Formatter{color.New(color.FgCyan), "", ""}

	// Entry formats entry names. Cyan, or 'single quotes' without color.
	Entry = Formatter{color.New(color.FgCyan), "'", "'"}

	// Hook formats hook names in relayed hook output.
	Hook = Formatter{color.New(color.FgMagenta), "", ""}

	// Muted formats de-emphasized text. Gray, or (parentheses) without color.
	Muted = Formatter{color.New(color.FgHiBlack), "(", ")"}
)

// Done returns a success line: "✓ msg".
func Done(msg string) string {
	return Success.Sprint("✓") + " " + msg
}

// Failed returns a failure line: "✗ msg".
func Failed(msg string) string {
	return Error.Sprint("✗") + " " + msg
}

// Hint returns a directional hint line: "→ msg".
func Hint(msg string) string {
	return Info.Sprint("→") + " " + msg
}
