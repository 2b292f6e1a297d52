package configs

import (
	"errors"
	"fmt"
	"os"
	"time"

	kerrors "github.com/PolarWolf314/passage/internal/errors"
	"github.com/hengadev/errsx"
)

const (
	CodecAge       = "age"
	CodecSecretbox = "secretbox"

	DefaultClipboardTimeout = 10 * time.Second

	minWorkFactor = 10
	maxWorkFactor = 22
)

type Config struct {
	Clipboard ClipboardConfig `toml:"clipboard"`
	Keyring   KeyringConfig   `toml:"keyring"`
	Crypto    CryptoConfig    `toml:"crypto"`
}

type ClipboardConfig struct {
	// Timeout is how long a copied secret stays on the clipboard.
	Timeout Duration `toml:"timeout"`
}

type KeyringConfig struct {
	// Enabled controls whether the passphrase is cached in the OS keyring.
	Enabled bool `toml:"enabled"`
}

type CryptoConfig struct {
	// Codec selects the envelope used when saving: "age" or "secretbox".
	Codec string `toml:"codec"`

	// WorkFactor is the age scrypt log2(N). Zero means the age default.
	WorkFactor int `toml:"work_factor"`
}

// Duration is a time.Duration that reads and writes as a string ("10s").
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// DefaultConfig returns the configuration used when config.toml is absent.
func DefaultConfig() *Config {
	return &Config{
		Clipboard: ClipboardConfig{Timeout: Duration{DefaultClipboardTimeout}},
		Keyring:   KeyringConfig{Enabled: true},
		Crypto:    CryptoConfig{Codec: CodecAge},
	}
}

// LoadConfig reads config.toml over the defaults. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return config, nil
	}

	if err := LoadTOML(path, config); err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrInvalidConfig, err)
	}

	return config, nil
}

// SaveConfig writes the configuration to path.
func SaveConfig(path string, config *Config) error {
	if err := SaveTOML(path, config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var errs errsx.Map

	if c.Clipboard.Timeout.Duration <= 0 {
		errs.Set("clipboard.timeout", fmt.Errorf("must be positive, got %s", c.Clipboard.Timeout))
	}

	switch c.Crypto.Codec {
	case CodecAge, CodecSecretbox:
	default:
		errs.Set("crypto.codec", fmt.Errorf("unknown codec %q (want %q or %q)", c.Crypto.Codec, CodecAge, CodecSecretbox))
	}

	if wf := c.Crypto.WorkFactor; wf != 0 && (wf < minWorkFactor || wf > maxWorkFactor) {
		errs.Set("crypto.work_factor", fmt.Errorf("must be between %d and %d, got %d", minWorkFactor, maxWorkFactor, wf))
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
