// Package passphrase obtains the store passphrase from the keyring cache or
// the user.
package passphrase

import (
	"context"
	"errors"

	kerrors "github.com/PolarWolf314/passage/internal/errors"
	logger "github.com/PolarWolf314/passage/internal/logging"
	"github.com/PolarWolf314/passage/internal/secrets"
)

const (
	promptEnter   = "Enter passphrase: "
	promptConfirm = "Confirm passphrase: "
)

// Cache persists a passphrase between invocations.
type Cache interface {
	Get() (*secrets.Passphrase, error)
	Set(p *secrets.Passphrase) error
	Delete() error
}

// Prompter reads a secret without echoing it.
type Prompter interface {
	ReadSecret(prompt string) ([]byte, error)
}

// ResolveOptions tune a single Resolve call.
type ResolveOptions struct {
	// Confirm asks for the passphrase twice. Used when the store has no
	// entries yet, so a typo does not lock the user out.
	Confirm bool
}

// Resolver returns the passphrase for the current command.
type Resolver struct {
	Cache    Cache
	Prompter Prompter
	UseCache bool
	Log      logger.Logger
}

// Resolve returns the cached passphrase if there is one, otherwise prompts
// for it. cached reports which of the two happened. A prompted passphrase
// is not cached here; call Remember once it has been shown to open the store.
func (r *Resolver) Resolve(ctx context.Context, opts ResolveOptions) (p *secrets.Passphrase, cached bool, err error) {
	if r.cacheEnabled() {
		p, err := r.Cache.Get()
		switch {
		case err == nil && !p.Empty():
			r.Log.Debugf("Using passphrase from keyring")
			return p, true, nil
		case err == nil, errors.Is(err, kerrors.ErrSecretNotCached):
			r.Log.Debugf("No cached passphrase, prompting")
		default:
			r.Log.Warnf("Keyring unavailable, prompting instead: %v", err)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	p, err = r.prompt(opts)
	if err != nil {
		return nil, false, err
	}
	return p, false, nil
}

// Remember caches a passphrase that is known to open the store. Keyring
// failures are logged, not returned.
func (r *Resolver) Remember(p *secrets.Passphrase) {
	if !r.cacheEnabled() || p.Empty() {
		return
	}
	if err := r.Cache.Set(p); err != nil {
		r.Log.Warnf("Could not cache passphrase: %v", err)
		return
	}
	r.Log.Infof("Passphrase cached in keyring")
}

// Evict drops a cached passphrase that failed to open the store, so the
// next command prompts again.
func (r *Resolver) Evict() {
	if !r.cacheEnabled() {
		return
	}
	err := r.Cache.Delete()
	switch {
	case err == nil:
		r.Log.Warnf("Cached passphrase did not open the storage, removed it from the keyring")
	case errors.Is(err, kerrors.ErrSecretNotCached):
	default:
		r.Log.Warnf("Could not remove cached passphrase: %v", err)
	}
}

func (r *Resolver) prompt(opts ResolveOptions) (*secrets.Passphrase, error) {
	raw, err := r.Prompter.ReadSecret(promptEnter)
	if err != nil {
		return nil, err
	}
	p := secrets.NewPassphrase(raw)
	if p.Empty() {
		return nil, kerrors.ErrEmptyPassphrase
	}

	if opts.Confirm {
		raw, err := r.Prompter.ReadSecret(promptConfirm)
		if err != nil {
			p.Wipe()
			return nil, err
		}
		confirm := secrets.NewPassphrase(raw)
		defer confirm.Wipe()

		if !p.Equal(confirm) {
			p.Wipe()
			return nil, kerrors.ErrPassphraseMismatch
		}
	}

	return p, nil
}

// Forget removes the cached passphrase.
func (r *Resolver) Forget() error {
	if r.Cache == nil {
		return kerrors.ErrSecretCacheUnavailable
	}
	return r.Cache.Delete()
}

// Cached reports whether a passphrase is cached. Keyring errors other than
// a miss are returned.
func (r *Resolver) Cached() (bool, error) {
	if r.Cache == nil {
		return false, kerrors.ErrSecretCacheUnavailable
	}

	p, err := r.Cache.Get()
	if err != nil {
		if errors.Is(err, kerrors.ErrSecretNotCached) {
			return false, nil
		}
		return false, err
	}
	defer p.Wipe()
	return !p.Empty(), nil
}

func (r *Resolver) cacheEnabled() bool {
	return r.UseCache && r.Cache != nil
}
