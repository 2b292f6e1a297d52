package configs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/PolarWolf314/passage/internal/utils"
)

const (
	// BaseDirEnv overrides the base directory when set.
	BaseDirEnv = "PASSAGE_DIR"

	StorageFileName = "entries.toml.age"
	HooksDirName    = "hooks"
	ConfigFileName  = "config.toml"
)

// Settings holds the resolved locations for one passage store. It is built
// once at startup and passed to every component that needs a path.
type Settings struct {
	BaseDir     string
	StorageFile string
	HooksDir    string
	ConfigFile  string
	Username    string
}

// NewSettings resolves the store location from the environment:
// $PASSAGE_DIR, then $XDG_DATA_HOME/passage, then ~/.local/share/passage.
func NewSettings() (*Settings, error) {
	baseDir, err := resolveBaseDir(os.Getenv, os.UserHomeDir)
	if err != nil {
		return nil, err
	}

	username, err := utils.GetUsername()
	if err != nil {
		return nil, fmt.Errorf("error getting username: %w", err)
	}

	return SettingsFor(baseDir, username), nil
}

// SettingsFor derives all paths from an explicit base directory.
func SettingsFor(baseDir, username string) *Settings {
	return &Settings{
		BaseDir:     baseDir,
		StorageFile: filepath.Join(baseDir, StorageFileName),
		HooksDir:    filepath.Join(baseDir, HooksDirName),
		ConfigFile:  filepath.Join(baseDir, ConfigFileName),
		Username:    username,
	}
}

func resolveBaseDir(getenv func(string) string, homeDir func() (string, error)) (string, error) {
	if dir := getenv(BaseDirEnv); dir != "" {
		return filepath.Abs(dir)
	}

	dataDir := getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, err := homeDir()
		if err != nil {
			return "", fmt.Errorf("error getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dataDir, "passage"), nil
}
