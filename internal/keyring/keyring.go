// Package keyring caches the store passphrase in the OS keyring so that
// commands can skip the prompt.
package keyring

import (
	"errors"
	"fmt"
	"sync"

	ring "github.com/99designs/keyring"
	kerrors "github.com/PolarWolf314/passage/internal/errors"
	"github.com/PolarWolf314/passage/internal/secrets"
)

// ServiceName is the keyring service the passphrase is stored under.
const ServiceName = "passage"

// osBackends are the native secret stores. The file and pass backends are
// left out since they would prompt for a password of their own.
var osBackends = []ring.BackendType{
	ring.WinCredBackend,
	ring.KeychainBackend,
	ring.SecretServiceBackend,
	ring.KWalletBackend,
	ring.KeyCtlBackend,
}

// Cache stores one passphrase per OS user.
type Cache struct {
	user string
	open func() (ring.Keyring, error)

	once sync.Once
	kr   ring.Keyring
	err  error
}

// New returns a cache backed by the OS keyring. The keyring is opened on
// first use.
func New(username string) *Cache {
	return &Cache{
		user: username,
		open: func() (ring.Keyring, error) {
			return ring.Open(ring.Config{
				ServiceName:              ServiceName,
				AllowedBackends:          osBackends,
				KeychainTrustApplication: true,
				KeyCtlScope:              "user",
			})
		},
	}
}

// NewWithKeyring returns a cache backed by kr.
func NewWithKeyring(kr ring.Keyring, username string) *Cache {
	return &Cache{
		user: username,
		open: func() (ring.Keyring, error) { return kr, nil },
	}
}

func (c *Cache) keyring() (ring.Keyring, error) {
	c.once.Do(func() {
		c.kr, c.err = c.open()
		if c.err != nil {
			c.err = fmt.Errorf("%w: %v", kerrors.ErrSecretCacheUnavailable, c.err)
		}
	})
	return c.kr, c.err
}

// Get returns the cached passphrase, or ErrSecretNotCached.
func (c *Cache) Get() (*secrets.Passphrase, error) {
	kr, err := c.keyring()
	if err != nil {
		return nil, err
	}

	item, err := kr.Get(c.user)
	if err != nil {
		if errors.Is(err, ring.ErrKeyNotFound) {
			return nil, kerrors.ErrSecretNotCached
		}
		return nil, fmt.Errorf("%w: %v", kerrors.ErrSecretCacheUnavailable, err)
	}
	if len(item.Data) == 0 {
		return nil, kerrors.ErrSecretNotCached
	}

	return secrets.NewPassphrase(append([]byte(nil), item.Data...)), nil
}

// Set stores p, replacing any cached passphrase.
func (c *Cache) Set(p *secrets.Passphrase) error {
	kr, err := c.keyring()
	if err != nil {
		return err
	}

	data := append([]byte(nil), p.Bytes()...)
	err = kr.Set(ring.Item{
		Key:         c.user,
		Data:        data,
		Label:       "passage passphrase",
		Description: "Passphrase for the passage credential store",
	})
	if err != nil {
		return fmt.Errorf("%w: %v", kerrors.ErrSecretCacheUnavailable, err)
	}
	return nil
}

// Delete removes the cached passphrase. It returns ErrSecretNotCached when
// nothing was cached.
func (c *Cache) Delete() error {
	kr, err := c.keyring()
	if err != nil {
		return err
	}

	if _, err := kr.Get(c.user); err != nil {
		if errors.Is(err, ring.ErrKeyNotFound) {
			return kerrors.ErrSecretNotCached
		}
		return fmt.Errorf("%w: %v", kerrors.ErrSecretCacheUnavailable, err)
	}

	if err := kr.Remove(c.user); err != nil {
		return fmt.Errorf("%w: %v", kerrors.ErrSecretCacheUnavailable, err)
	}
	return nil
}
