package clipboard

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"github.com/atotto/clipboard"
	kerrors "github.com/PolarWolf314/passage/internal/errors"
)

// Clipboard reads and writes the system clipboard.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// System is the OS clipboard.
type System struct{}

func (System) ReadAll() (string, error) {
	if clipboard.Unsupported {
		return "", kerrors.ErrClipboardUnavailable
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("%w: %v", kerrors.ErrClipboardUnavailable, err)
	}
	return text, nil
}

func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return kerrors.ErrClipboardUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %v", kerrors.ErrClipboardUnavailable, err)
	}
	return nil
}

// Digest returns the hex SHA-256 digest of secret.
func Digest(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}

func digestMatches(text, digest string) bool {
	return subtle.ConstantTimeCompare([]byte(Digest(text)), []byte(digest)) == 1
}
