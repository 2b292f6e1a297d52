package store

import (
	"testing"

	kerrors "github.com/PolarWolf314/passage/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorage_AddGet(t *testing.T) {
	s := NewStorage()

	require.NoError(t, s.Add("email", Entry{Password: "hunter2"}, false))

	entry, err := s.Get("email")
	require.NoError(t, err)
	assert.Equal(t, "hunter2", entry.Password)
	assert.True(t, s.Has("email"))
	assert.Equal(t, 1, s.Len())
}

func TestStorage_AddExisting(t *testing.T) {
	s := NewStorage()
	require.NoError(t, s.Add("email", Entry{Password: "one"}, false))

	err := s.Add("email", Entry{Password: "two"}, false)
	assert.ErrorIs(t, err, kerrors.ErrEntryAlreadyExists)

	require.NoError(t, s.Add("email", Entry{Password: "two"}, true))
	entry, err := s.Get("email")
	require.NoError(t, err)
	assert.Equal(t, "two", entry.Password)
}

func TestStorage_NamesAreTrimmed(t *testing.T) {
	s := NewStorage()
	require.NoError(t, s.Add("  email ", Entry{Password: "x"}, false))

	assert.True(t, s.Has("email"))
	assert.Equal(t, []string{"email"}, s.Names())
}

func TestStorage_InvalidNames(t *testing.T) {
	s := NewStorage()

	for _, name := range []string{"", "   ", "\t\n"} {
		assert.ErrorIs(t, s.Add(name, Entry{}, false), kerrors.ErrInvalidEntryName)
		_, err := s.Get(name)
		assert.ErrorIs(t, err, kerrors.ErrInvalidEntryName)
		assert.False(t, s.Has(name))
	}
}

func TestStorage_MissingEntry(t *testing.T) {
	s := NewStorage()

	_, err := s.Get("nope")
	assert.ErrorIs(t, err, kerrors.ErrEntryNotFound)
	assert.Contains(t, err.Error(), `"nope"`)

	assert.ErrorIs(t, s.Edit("nope", "x"), kerrors.ErrEntryNotFound)
	assert.ErrorIs(t, s.Remove("nope"), kerrors.ErrEntryNotFound)
}

func TestStorage_EditRemove(t *testing.T) {
	s := NewStorage()
	require.NoError(t, s.Add("email", Entry{Password: "old"}, false))

	require.NoError(t, s.Edit("email", "new"))
	entry, err := s.Get("email")
	require.NoError(t, err)
	assert.Equal(t, "new", entry.Password)

	require.NoError(t, s.Remove("email"))
	assert.False(t, s.Has("email"))
	assert.Equal(t, 0, s.Len())
}

func TestStorage_NamesSorted(t *testing.T) {
	s := NewStorage()
	for _, name := range []string{"zeta", "alpha", "work/mail", "Beta"} {
		require.NoError(t, s.Add(name, Entry{Password: name}, false))
	}

	assert.Equal(t, []string{"Beta", "alpha", "work/mail", "zeta"}, s.Names())
}

func TestStorage_EncodeDecode(t *testing.T) {
	s := NewStorage()
	require.NoError(t, s.Add("email", Entry{Password: "hunter2"}, false))
	require.NoError(t, s.Add("bank.example.com", Entry{Password: "p@ss \"quoted\""}, false))
	require.NoError(t, s.Add("with space", Entry{Password: ""}, false))

	data, err := s.Encode()
	require.NoError(t, err)
	assert.Contains(t, string(data), "[email]")

	decoded, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, s.Names(), decoded.Names())
	for _, name := range s.Names() {
		want, _ := s.Get(name)
		got, err := decoded.Get(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestDecode_Corrupt(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not toml", "this is [ not toml"},
		{"entry is not a table", `email = "hunter2"`},
		{"password is not a string", "[email]\npassword = 42\n"},
		{"missing password", "[email]\n"},
		{"unknown field", "[email]\npassword = \"x\"\nuser = \"me\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data))
			assert.ErrorIs(t, err, kerrors.ErrCorruptStorage)
		})
	}
}

func TestDecode_Empty(t *testing.T) {
	s, err := Decode(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
}
