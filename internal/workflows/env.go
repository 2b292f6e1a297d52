package workflows

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/PolarWolf314/passage/internal/clipboard"
	"github.com/PolarWolf314/passage/internal/configs"
	kerrors "github.com/PolarWolf314/passage/internal/errors"
	"github.com/PolarWolf314/passage/internal/hooks"
	"github.com/PolarWolf314/passage/internal/keyring"
	logger "github.com/PolarWolf314/passage/internal/logging"
	"github.com/PolarWolf314/passage/internal/passphrase"
	"github.com/PolarWolf314/passage/internal/secrets"
	"github.com/PolarWolf314/passage/internal/store"
)

// lockTimeout bounds how long a mutating command waits for another
// passage process to release the store.
const lockTimeout = 30 * time.Second

// Prompter asks the user for input.
type Prompter interface {
	ReadLine(prompt string) (string, error)
	ReadSecret(prompt string) ([]byte, error)
	Confirm(question string) (bool, error)
	Interactive() bool
}

// Env carries everything a workflow needs.
type Env struct {
	Settings configs.Settings
	Repo     *store.Repository
	Resolver *passphrase.Resolver
	Hooks    *hooks.Runner
	Guard    *clipboard.Guard
	Prompt   Prompter
	Log      logger.Logger
}

// EnvOptions configures NewEnv.
type EnvOptions struct {
	Settings configs.Settings
	Config   *configs.Config
	Prompt   Prompter
	Log      logger.Logger

	// NoKeyring disables the passphrase cache for this invocation.
	NoKeyring bool

	// Stdout receives on-screen secrets, Stderr hook output.
	Stdout io.Writer
	Stderr io.Writer

	// Progress is passed to the repository.
	Progress func(msg string) (stop func())
}

// NewEnv wires the production dependencies.
func NewEnv(opts EnvOptions) (*Env, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = configs.DefaultConfig()
	}

	codec, err := secrets.CodecByName(cfg.Crypto.Codec, cfg.Crypto.WorkFactor)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrInvalidConfig, err)
	}

	repo := store.NewRepository(opts.Settings.StorageFile, codec)
	repo.Progress = opts.Progress

	return &Env{
		Settings: opts.Settings,
		Repo:     repo,
		Resolver: &passphrase.Resolver{
			Cache:    keyring.New(opts.Settings.Username),
			Prompter: opts.Prompt,
			UseCache: cfg.Keyring.Enabled && !opts.NoKeyring,
			Log:      opts.Log,
		},
		Hooks: &hooks.Runner{
			Dir:         opts.Settings.HooksDir,
			WorkDir:     opts.Settings.BaseDir,
			StorageFile: opts.Settings.StorageFile,
			Out:         opts.Stderr,
			Log:         opts.Log,
		},
		Guard: &clipboard.Guard{
			Clipboard: clipboard.System{},
			Out:       opts.Stdout,
			Timeout:   cfg.Clipboard.Timeout.Duration,
			Spawner:   clipboard.ProcessSpawner{},
		},
		Prompt: opts.Prompt,
		Log:    opts.Log,
	}, nil
}

// requireInitialized fails with ErrStorageUninitialized before `passage init`.
func (e *Env) requireInitialized() error {
	ok, err := e.Repo.Initialized()
	if err != nil {
		return err
	}
	if !ok {
		return kerrors.ErrStorageUninitialized
	}
	return nil
}

// openOptions controls how a workflow opens the store.
type openOptions struct {
	event hooks.Event

	// lock holds the store lock until the session is closed.
	lock bool

	// create requires a passphrase even for a blank store. It is asked for
	// twice there, since it becomes the store passphrase on the next save.
	create bool
}

// session is an opened store.
type session struct {
	storage *store.Storage
	pass    *secrets.Passphrase
	unlock  func()

	// remember is set for a prompted passphrase that has not yet opened or
	// written the store. It is cached once it has.
	remember bool
}

// close wipes the passphrase and releases the lock.
func (s *session) close() {
	s.pass.Wipe()
	if s.unlock != nil {
		s.unlock()
	}
}

// open runs the pre_load hook and decrypts the store. A blank store opens
// without a passphrase unless opts.create is set.
func (e *Env) open(ctx context.Context, opts openOptions) (*session, error) {
	if err := e.Hooks.Run(ctx, hooks.PreLoad, opts.event); err != nil {
		return nil, err
	}

	if err := e.requireInitialized(); err != nil {
		return nil, err
	}

	blank, err := e.Repo.Blank()
	if err != nil {
		return nil, err
	}

	sess := &session{}
	cached := false
	if !blank || opts.create {
		sess.pass, cached, err = e.Resolver.Resolve(ctx, passphrase.ResolveOptions{Confirm: blank})
		if err != nil {
			return nil, err
		}
		sess.remember = !cached
	} else {
		e.Log.Debugf("Storage is empty, skipping passphrase")
	}

	if opts.lock {
		sess.unlock, err = e.lock(ctx)
		if err != nil {
			sess.close()
			return nil, err
		}
	}

	sess.storage, err = e.Repo.Load(sess.pass)
	if err != nil {
		if cached && errors.Is(err, kerrors.ErrDecryptionFailed) {
			e.Resolver.Evict()
		}
		sess.close()
		return nil, err
	}

	// A blank store accepts any passphrase, so it is only cached after the
	// first save.
	if sess.remember && !blank {
		e.Resolver.Remember(sess.pass)
		sess.remember = false
	}

	e.Log.Debugf("Loaded %d entries from %s", sess.storage.Len(), e.Repo.Path)
	return sess, nil
}

// lock takes the store lock for a mutating workflow.
func (e *Env) lock(ctx context.Context) (func(), error) {
	ctx, cancel := context.WithTimeout(ctx, lockTimeout)
	defer cancel()

	unlock, err := e.Repo.Lock(ctx)
	if err != nil {
		return nil, err
	}
	e.Log.Debugf("Acquired storage lock")

	return func() {
		if err := unlock(); err != nil {
			e.Log.Warnf("Failed to release storage lock: %v", err)
		}
	}, nil
}

// save writes the session's store and runs the post_save hook.
func (e *Env) save(ctx context.Context, event hooks.Event, sess *session) error {
	if err := e.Repo.Save(sess.storage, sess.pass); err != nil {
		return err
	}
	if sess.remember {
		e.Resolver.Remember(sess.pass)
		sess.remember = false
	}
	e.Log.Infof("Saved %d entries to %s", sess.storage.Len(), e.Repo.Path)

	if err := e.Hooks.Run(ctx, hooks.PostSave, event); err != nil {
		return &PostSaveError{Err: err}
	}
	return nil
}

// PostSaveError reports a post_save hook failure after the store was
// already written.
type PostSaveError struct {
	Err error
}

func (e *PostSaveError) Error() string {
	return fmt.Sprintf("changes were saved, but %v", e.Err)
}

func (e *PostSaveError) Unwrap() error { return e.Err }
