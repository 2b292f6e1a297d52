package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/passage/internal/hooks"
	"github.com/bmatcuk/doublestar/v4"
)

// ListOptions configures the list workflow.
type ListOptions struct {
	// Pattern filters entry names with doublestar glob syntax, so
	// "work/**" matches every entry below work/. Empty lists everything.
	Pattern string
}

// ListResult contains the outcome of a list operation.
type ListResult struct {
	// Names are the matching entry names, sorted.
	Names []string

	// Total is the number of entries in the store.
	Total int
}

// List returns the names of the stored entries.
//
// Returns ErrStorageUninitialized before `passage init`.
func List(ctx context.Context, env *Env, opts ListOptions) (*ListResult, error) {
	if opts.Pattern != "" && !doublestar.ValidatePattern(opts.Pattern) {
		return nil, fmt.Errorf("invalid pattern %q", opts.Pattern)
	}

	sess, err := env.open(ctx, openOptions{event: hooks.ListEntries})
	if err != nil {
		return nil, err
	}
	defer sess.close()

	names := sess.storage.Names()
	result := &ListResult{Total: len(names), Names: names}

	if opts.Pattern == "" {
		return result, nil
	}

	filtered := make([]string, 0, len(names))
	for _, name := range names {
		if doublestar.MatchUnvalidated(opts.Pattern, name) {
			filtered = append(filtered, name)
		}
	}
	result.Names = filtered

	return result, nil
}
