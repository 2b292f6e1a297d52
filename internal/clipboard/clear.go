package clipboard

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

// Clearer empties the clipboard once a copied secret has expired.
type Clearer struct {
	Clipboard Clipboard
}

// ClearAfter reads a digest line from in, waits for after and clears the
// clipboard if its contents still match the digest. It reports whether the
// clipboard was cleared.
func (c Clearer) ClearAfter(ctx context.Context, in io.Reader, after time.Duration) (bool, error) {
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read digest: %w", err)
	}
	digest := strings.TrimSpace(line)
	if digest == "" {
		return false, fmt.Errorf("no digest on stdin")
	}

	timer := time.NewTimer(after)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case <-timer.C:
	}

	current, err := c.Clipboard.ReadAll()
	if err != nil {
		return false, err
	}
	if !digestMatches(current, digest) {
		return false, nil
	}

	if err := c.Clipboard.WriteAll(""); err != nil {
		return false, err
	}
	return true, nil
}
