package clipboard

import (
	"fmt"
	"io"
	"os"
	"time"

	kerrors "github.com/PolarWolf314/passage/internal/errors"
)

// DefaultTimeout is how long a copied secret stays on the clipboard.
const DefaultTimeout = 10 * time.Second

// Mode selects how a secret is exposed.
type Mode int

const (
	// ToClipboard copies the secret and schedules clearing.
	ToClipboard Mode = iota
	// OnScreen prints the secret.
	OnScreen
)

// Guard exposes secrets to the user.
type Guard struct {
	Clipboard Clipboard
	// Out receives on-screen secrets. Defaults to os.Stdout.
	Out     io.Writer
	Timeout time.Duration
	Spawner Spawner
}

// Expose shows secret on screen or copies it to the clipboard, depending on
// mode.
func (g *Guard) Expose(secret string, mode Mode) error {
	if mode == OnScreen {
		_, err := fmt.Fprintln(g.out(), secret)
		return err
	}

	if err := g.Clipboard.WriteAll(secret); err != nil {
		return err
	}

	if err := g.Spawner.SpawnClear(Digest(secret), g.ClearAfter()); err != nil {
		// Nothing will clear it later, so clear it now.
		if clearErr := g.Clipboard.WriteAll(""); clearErr != nil {
			return fmt.Errorf("%w: %v (clearing failed too: %v)", kerrors.ErrClipboardClearNotScheduled, err, clearErr)
		}
		return fmt.Errorf("%w: %v", kerrors.ErrClipboardClearNotScheduled, err)
	}

	return nil
}

// ClearAfter returns how long a copied secret stays on the clipboard.
func (g *Guard) ClearAfter() time.Duration {
	if g.Timeout <= 0 {
		return DefaultTimeout
	}
	return g.Timeout
}

func (g *Guard) out() io.Writer {
	if g.Out != nil {
		return g.Out
	}
	return os.Stdout
}
