package store

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	kerrors "github.com/PolarWolf314/passage/internal/errors"
)

// Entry is a single stored credential.
type Entry struct {
	Password string `toml:"password"`
}

// Storage is the decrypted contents of the store, keyed by entry name.
type Storage struct {
	entries map[string]Entry
}

// NewStorage returns an empty storage.
func NewStorage() *Storage {
	return &Storage{entries: make(map[string]Entry)}
}

// NormalizeName trims an entry name and rejects empty names.
func NormalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", kerrors.ErrInvalidEntryName
	}
	return name, nil
}

// Add stores entry under name. An existing entry is replaced only when
// overwrite is set.
func (s *Storage) Add(name string, entry Entry, overwrite bool) error {
	name, err := NormalizeName(name)
	if err != nil {
		return err
	}
	if _, ok := s.entries[name]; ok && !overwrite {
		return fmt.Errorf("entry %q: %w", name, kerrors.ErrEntryAlreadyExists)
	}
	s.entries[name] = entry
	return nil
}

// Get returns the entry stored under name.
func (s *Storage) Get(name string) (Entry, error) {
	name, err := NormalizeName(name)
	if err != nil {
		return Entry{}, err
	}
	entry, ok := s.entries[name]
	if !ok {
		return Entry{}, fmt.Errorf("entry %q: %w", name, kerrors.ErrEntryNotFound)
	}
	return entry, nil
}

// Edit replaces the password of an existing entry.
func (s *Storage) Edit(name, password string) error {
	name, err := NormalizeName(name)
	if err != nil {
		return err
	}
	entry, ok := s.entries[name]
	if !ok {
		return fmt.Errorf("entry %q: %w", name, kerrors.ErrEntryNotFound)
	}
	entry.Password = password
	s.entries[name] = entry
	return nil
}

// Remove deletes the entry stored under name.
func (s *Storage) Remove(name string) error {
	name, err := NormalizeName(name)
	if err != nil {
		return err
	}
	if _, ok := s.entries[name]; !ok {
		return fmt.Errorf("entry %q: %w", name, kerrors.ErrEntryNotFound)
	}
	delete(s.entries, name)
	return nil
}

// Has reports whether name is stored.
func (s *Storage) Has(name string) bool {
	name, err := NormalizeName(name)
	if err != nil {
		return false
	}
	_, ok := s.entries[name]
	return ok
}

// Names returns the entry names in lexicographic order.
func (s *Storage) Names() []string {
	names := make([]string, 0, len(s.entries))
	for name := range s.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of entries.
func (s *Storage) Len() int {
	return len(s.entries)
}

// Encode serializes the storage to TOML.
func (s *Storage) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(s.entries); err != nil {
		return nil, fmt.Errorf("failed to encode storage: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode parses a TOML document into Storage. Anything that is not a table
// of entries with a string password is ErrCorruptStorage.
func Decode(data []byte) (*Storage, error) {
	entries := make(map[string]Entry)
	meta, err := toml.Decode(string(data), &entries)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrCorruptStorage, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown keys: %v", kerrors.ErrCorruptStorage, undecoded)
	}

	for name := range entries {
		if !meta.IsDefined(name, "password") {
			return nil, fmt.Errorf("%w: entry %q has no password", kerrors.ErrCorruptStorage, name)
		}
	}

	return &Storage{entries: entries}, nil
}
