package utils

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	kerrors "github.com/PolarWolf314/passage/internal/errors"
	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// Console reads prompted input for a command. Secrets are read with echo
// disabled when input is a terminal; otherwise every prompt consumes one
// line of input, which lets scripts pipe answers in.
type Console struct {
	in          *bufio.Reader
	out         io.Writer
	fd          int
	interactive bool
}

// NewConsole reads from in and writes prompts to out.
func NewConsole(in *os.File, out io.Writer) *Console {
	fd := int(in.Fd())
	return &Console{
		in:          bufio.NewReader(in),
		out:         out,
		fd:          fd,
		interactive: term.IsTerminal(fd),
	}
}

// NewScriptedConsole returns a console fed from r. Secrets are read as
// plain lines. interactive controls whether confirmations may be asked.
func NewScriptedConsole(r io.Reader, out io.Writer, interactive bool) *Console {
	return &Console{
		in:          bufio.NewReader(r),
		out:         out,
		fd:          -1,
		interactive: interactive,
	}
}

// Interactive reports whether a human can answer confirmation prompts.
func (c *Console) Interactive() bool {
	return c.interactive
}

// ReadLine prints prompt and returns one line of input with surrounding
// whitespace trimmed.
func (c *Console) ReadLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	line, err := c.readLine()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ReadSecret prints prompt and reads a secret without echoing it.
// The returned slice should be wiped by the caller.
func (c *Console) ReadSecret(prompt string) ([]byte, error) {
	fmt.Fprint(c.out, prompt)

	if c.interactive && c.fd >= 0 {
		secret, err := readPassword(c.fd)
		fmt.Fprintln(c.out) // newline after hidden input
		if err != nil {
			return nil, fmt.Errorf("failed to read secret: %w", err)
		}
		return secret, nil
	}

	line, err := c.readLine()
	if err != nil {
		return nil, err
	}
	return []byte(line), nil
}

// Confirm asks a yes/no question that defaults to no. It returns
// ErrNotInteractive when nobody can answer.
func (c *Console) Confirm(question string) (bool, error) {
	if !c.interactive {
		return false, kerrors.ErrNotInteractive
	}

	fmt.Fprintf(c.out, "%s [y/N]: ", question)
	response, err := c.readLine()
	if err != nil {
		return false, err
	}

	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes", nil
}

// readLine returns the next line without its line ending. A final line
// without a newline is returned as is.
func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read input: %w", io.ErrUnexpectedEOF)
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
