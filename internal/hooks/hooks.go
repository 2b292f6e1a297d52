package hooks

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sync"

	kerrors "github.com/PolarWolf314/passage/internal/errors"
	logger "github.com/PolarWolf314/passage/internal/logging"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Kind is the point in a command at which a hook runs.
type Kind string

const (
	PreLoad  Kind = "pre_load"
	PostSave Kind = "post_save"
)

// Event names the command that triggered a hook.
type Event string

const (
	NewEntry    Event = "new_entry"
	ListEntries Event = "list_entries"
	ShowEntry   Event = "show_entry"
	EditEntry   Event = "edit_entry"
	RemoveEntry Event = "remove_entry"
)

const maxLineSize = 1024 * 1024

// HookError reports a hook that could not run or exited non-zero.
type HookError struct {
	Hook     Kind
	Event    Event
	ExitCode int

	// Err is ErrHookFailed or ErrHookNotExecutable.
	Err error
	// Cause is the underlying error, if any.
	Cause error
}

func (e *HookError) Error() string {
	switch {
	case errors.Is(e.Err, kerrors.ErrHookNotExecutable):
		return fmt.Sprintf("%s hook is not executable", e.Hook)
	case e.ExitCode >= 0:
		return fmt.Sprintf("%s hook failed (exit status %d)", e.Hook, e.ExitCode)
	case e.Cause != nil:
		return fmt.Sprintf("%s hook failed: %v", e.Hook, e.Cause)
	default:
		return fmt.Sprintf("%s hook failed", e.Hook)
	}
}

func (e *HookError) Unwrap() error { return e.Err }

// Runner executes hooks from Dir.
type Runner struct {
	// Dir holds the hook executables.
	Dir string
	// WorkDir is the working directory of every hook.
	WorkDir string
	// StorageFile is exported to hooks as PASSAGE_STORAGE_FILE.
	StorageFile string
	// Out receives prefixed hook output. Defaults to os.Stderr.
	Out io.Writer
	// Env is the base environment. Defaults to os.Environ().
	Env []string
	Log logger.Logger

	idOnce       sync.Once
	invocationID string
}

// InvocationID returns the id shared by all hooks run by r.
func (r *Runner) InvocationID() string {
	r.idOnce.Do(func() {
		if r.invocationID == "" {
			r.invocationID = uuid.NewString()
		}
	})
	return r.invocationID
}

// Run executes the hook for kind with event as its argument. A missing hook
// is not an error.
func (r *Runner) Run(ctx context.Context, kind Kind, event Event) error {
	path := filepath.Join(r.Dir, string(kind))

	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		r.Log.Debugf("No %s hook at %s", kind, path)
		return nil
	}
	if err != nil {
		return &HookError{Hook: kind, Event: event, ExitCode: -1, Err: kerrors.ErrHookFailed, Cause: err}
	}
	if !isExecutable(info) {
		return &HookError{Hook: kind, Event: event, ExitCode: -1, Err: kerrors.ErrHookNotExecutable}
	}

	r.Log.Infof("Running %s hook for %s", kind, event)

	cmd := exec.CommandContext(ctx, path, string(event))
	cmd.Dir = r.WorkDir
	cmd.Env = r.environ(event)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return &HookError{Hook: kind, Event: event, ExitCode: -1, Err: kerrors.ErrHookFailed, Cause: err}
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return &HookError{Hook: kind, Event: event, ExitCode: -1, Err: kerrors.ErrHookFailed, Cause: err}
	}

	if err := cmd.Start(); err != nil {
		return &HookError{Hook: kind, Event: event, ExitCode: -1, Err: kerrors.ErrHookFailed, Cause: err}
	}

	var mu sync.Mutex
	out := r.out()
	var g errgroup.Group
	g.Go(func() error { return copyLines(out, &mu, string(kind), stdout) })
	g.Go(func() error { return copyLines(out, &mu, string(kind), stderr) })
	drainErr := g.Wait()

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
			return &HookError{Hook: kind, Event: event, ExitCode: exitErr.ExitCode(), Err: kerrors.ErrHookFailed}
		}
		return &HookError{Hook: kind, Event: event, ExitCode: -1, Err: kerrors.ErrHookFailed, Cause: err}
	}
	if drainErr != nil {
		r.Log.Warnf("Lost output of %s hook: %v", kind, drainErr)
	}

	r.Log.Debugf("%s hook finished", kind)
	return nil
}

func (r *Runner) environ(event Event) []string {
	env := r.Env
	if env == nil {
		env = os.Environ()
	}
	env = append([]string(nil), env...)
	return append(env,
		"PASSAGE_DIR="+r.WorkDir,
		"PASSAGE_STORAGE_FILE="+r.StorageFile,
		"PASSAGE_INVOCATION_ID="+r.InvocationID(),
		"PASSAGE_HOOK_EVENT="+string(event),
	)
}

func (r *Runner) out() io.Writer {
	if r.Out != nil {
		return r.Out
	}
	return os.Stderr
}

func copyLines(w io.Writer, mu *sync.Mutex, prefix string, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		mu.Lock()
		_, err := fmt.Fprintf(w, "%s: %s\n", prefix, scanner.Text())
		mu.Unlock()
		if err != nil {
			// Keep reading so the hook never blocks on a full pipe.
			_, _ = io.Copy(io.Discard, r)
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		_, _ = io.Copy(io.Discard, r)
		return err
	}
	return nil
}

func isExecutable(info os.FileInfo) bool {
	if !info.Mode().IsRegular() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return info.Mode().Perm()&0111 != 0
}
