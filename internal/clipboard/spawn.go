package clipboard

import (
	"fmt"
	"os"
	"os/exec"
	"time"
)

// ClearCommand is the hidden subcommand run by the detached clearer.
const ClearCommand = "clipboard-clear"

// Spawner schedules clearing of the clipboard after a delay.
type Spawner interface {
	SpawnClear(digest string, after time.Duration) error
}

// ProcessSpawner re-runs the passage executable as a detached
// `clipboard-clear` process.
type ProcessSpawner struct {
	// Executable defaults to os.Executable().
	Executable string
}

func (s ProcessSpawner) SpawnClear(digest string, after time.Duration) error {
	exe := s.Executable
	if exe == "" {
		var err error
		exe, err = os.Executable()
		if err != nil {
			return fmt.Errorf("failed to locate executable: %w", err)
		}
	}

	stdin, w, err := os.Pipe()
	if err != nil {
		return fmt.Errorf("failed to create pipe: %w", err)
	}
	defer w.Close()

	cmd := exec.Command(exe, ClearCommand, "--after", after.String())
	cmd.Stdin = stdin
	cmd.SysProcAttr = detachedAttr()

	err = cmd.Start()
	stdin.Close()
	if err != nil {
		return fmt.Errorf("failed to start clipboard clearer: %w", err)
	}

	if _, err := fmt.Fprintln(w, digest); err != nil {
		_ = cmd.Process.Kill()
		return fmt.Errorf("failed to hand digest to clipboard clearer: %w", err)
	}

	return cmd.Process.Release()
}
