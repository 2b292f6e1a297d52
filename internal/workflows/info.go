package workflows

import "context"

// InfoResult describes where passage keeps its files.
type InfoResult struct {
	StorageFile string
	HooksDir    string
	ConfigFile  string
	Initialized bool
}

// Info reports the store location. It works before `passage init`.
func Info(ctx context.Context, env *Env) (*InfoResult, error) {
	initialized, err := env.Repo.Initialized()
	if err != nil {
		return nil, err
	}

	return &InfoResult{
		StorageFile: env.Settings.StorageFile,
		HooksDir:    env.Settings.HooksDir,
		ConfigFile:  env.Settings.ConfigFile,
		Initialized: initialized,
	}, nil
}
