package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	kerrors "github.com/PolarWolf314/passage/internal/errors"
	"github.com/PolarWolf314/passage/internal/secrets"
	"github.com/gofrs/flock"
)

const (
	dirPerm  = 0700
	filePerm = 0600

	lockRetryDelay = 100 * time.Millisecond
)

// Repository reads and writes the encrypted storage file.
type Repository struct {
	// Path is the storage file.
	Path string

	// Codec encrypts on Save. Load accepts any known codec.
	Codec secrets.Codec

	// Progress, when set, is called around key derivation. The returned
	// func is called once the work is done.
	Progress func(msg string) (stop func())
}

func NewRepository(path string, codec secrets.Codec) *Repository {
	return &Repository{Path: path, Codec: codec}
}

// Initialized reports whether the storage file exists.
func (r *Repository) Initialized() (bool, error) {
	info, err := os.Stat(r.Path)
	if err == nil {
		if info.IsDir() {
			return false, fmt.Errorf("storage path %s is a directory", r.Path)
		}
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check storage file: %w", err)
}

// Blank reports whether the store has never been written: the file is
// missing or empty.
func (r *Repository) Blank() (bool, error) {
	info, err := os.Stat(r.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return true, nil
		}
		return false, fmt.Errorf("failed to check storage file: %w", err)
	}
	return info.Size() == 0, nil
}

// Init creates the base directory and an empty storage file. An existing
// storage file is left untouched and created is false.
func (r *Repository) Init() (created bool, err error) {
	if err := os.MkdirAll(filepath.Dir(r.Path), dirPerm); err != nil {
		return false, fmt.Errorf("failed to create storage directory: %w", err)
	}

	f, err := os.OpenFile(r.Path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, filePerm)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to create storage file: %w", err)
	}
	if err := f.Close(); err != nil {
		return false, fmt.Errorf("failed to close storage file: %w", err)
	}

	return true, nil
}

// Load decrypts and parses the storage file. A missing or empty file is an
// empty Storage and p is not used.
func (r *Repository) Load(p *secrets.Passphrase) (*Storage, error) {
	blob, err := os.ReadFile(r.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewStorage(), nil
		}
		return nil, fmt.Errorf("failed to read storage file: %w", err)
	}
	if len(blob) == 0 {
		return NewStorage(), nil
	}

	codec, err := secrets.DetectCodec(blob, r.Codec)
	if err != nil {
		return nil, err
	}

	stop := r.progress("Decrypting storage...")
	plaintext, err := codec.Decrypt(blob, p)
	stop()
	if err != nil {
		return nil, err
	}
	defer wipe(plaintext)

	return Decode(plaintext)
}

// Save encrypts s and atomically replaces the storage file.
func (r *Repository) Save(s *Storage, p *secrets.Passphrase) error {
	plaintext, err := s.Encode()
	if err != nil {
		return err
	}
	defer wipe(plaintext)

	stop := r.progress("Encrypting storage...")
	blob, err := r.Codec.Encrypt(plaintext, p)
	stop()
	if err != nil {
		return fmt.Errorf("failed to encrypt storage: %w", err)
	}

	return saveAtomically(r.Path, blob, filePerm)
}

// Lock takes the advisory lock guarding the storage file, retrying until
// ctx is done.
func (r *Repository) Lock(ctx context.Context) (unlock func() error, err error) {
	lock := flock.New(r.Path+".lock", flock.SetPermissions(filePerm))

	locked, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, kerrors.ErrStorageLocked
		}
		return nil, fmt.Errorf("failed to lock storage: %w", err)
	}
	if !locked {
		return nil, kerrors.ErrStorageLocked
	}

	return lock.Unlock, nil
}

func (r *Repository) progress(msg string) func() {
	if r.Progress == nil {
		return func() {}
	}
	return r.Progress(msg)
}

// saveAtomically writes data to a temp file next to path and renames it
// into place.
func saveAtomically(path string, data []byte, perm os.FileMode) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".passage-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if tmpFile != nil {
			tmpFile.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	tmpFile = nil

	if err := os.Chmod(tmpPath, perm); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace storage file: %w", err)
	}

	return nil
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
