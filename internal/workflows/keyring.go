package workflows

import (
	"context"
	"errors"

	kerrors "github.com/PolarWolf314/passage/internal/errors"
)

// KeyringCheckResult reports the state of the passphrase cache.
type KeyringCheckResult struct {
	Cached bool
}

// KeyringCheck reports whether a passphrase is cached. It never prompts.
func KeyringCheck(ctx context.Context, env *Env) (*KeyringCheckResult, error) {
	cached, err := env.Resolver.Cached()
	if err != nil {
		return nil, err
	}
	return &KeyringCheckResult{Cached: cached}, nil
}

// KeyringForgetResult reports the outcome of keyring forget.
type KeyringForgetResult struct {
	// Removed is false when nothing was cached.
	Removed bool
}

// KeyringForget removes the cached passphrase.
func KeyringForget(ctx context.Context, env *Env) (*KeyringForgetResult, error) {
	err := env.Resolver.Forget()
	if errors.Is(err, kerrors.ErrSecretNotCached) {
		return &KeyringForgetResult{Removed: false}, nil
	}
	if err != nil {
		return nil, err
	}
	return &KeyringForgetResult{Removed: true}, nil
}
