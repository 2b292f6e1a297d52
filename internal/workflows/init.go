package workflows

import (
	"context"
	"fmt"
)

// InitResult contains the outcome of an init operation.
type InitResult struct {
	// StorageFile is the path of the storage file.
	StorageFile string

	// Created is false when the store already existed and was left alone.
	Created bool
}

// Init creates an empty store. Running it on an existing store is not an
// error and leaves the store untouched.
func Init(ctx context.Context, env *Env) (*InitResult, error) {
	created, err := env.Repo.Init()
	if err != nil {
		return nil, fmt.Errorf("initializing storage: %w", err)
	}

	if created {
		env.Log.Infof("Created empty storage at %s", env.Repo.Path)
	} else {
		env.Log.Infof("Storage already exists at %s", env.Repo.Path)
	}

	return &InitResult{
		StorageFile: env.Repo.Path,
		Created:     created,
	}, nil
}
