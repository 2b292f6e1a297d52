package workflows

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	ring "github.com/99designs/keyring"
	"github.com/PolarWolf314/passage/internal/clipboard"
	"github.com/PolarWolf314/passage/internal/configs"
	"github.com/PolarWolf314/passage/internal/hooks"
	"github.com/PolarWolf314/passage/internal/keyring"
	logger "github.com/PolarWolf314/passage/internal/logging"
	"github.com/PolarWolf314/passage/internal/passphrase"
	"github.com/PolarWolf314/passage/internal/secrets"
	"github.com/PolarWolf314/passage/internal/store"
	"github.com/PolarWolf314/passage/internal/utils"
	"github.com/stretchr/testify/require"
)

type fakeClipboard struct {
	text string
}

func (c *fakeClipboard) ReadAll() (string, error) { return c.text, nil }
func (c *fakeClipboard) WriteAll(text string) error {
	c.text = text
	return nil
}

type fakeSpawner struct {
	digests []string
}

func (s *fakeSpawner) SpawnClear(digest string, after time.Duration) error {
	s.digests = append(s.digests, digest)
	return nil
}

type harness struct {
	env      *Env
	stdout   bytes.Buffer
	prompts  bytes.Buffer
	hookOut  bytes.Buffer
	clip     *fakeClipboard
	spawner  *fakeSpawner
	keyring  *ring.ArrayKeyring
	settings *configs.Settings
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	h := &harness{
		clip:     &fakeClipboard{},
		spawner:  &fakeSpawner{},
		keyring:  ring.NewArrayKeyring(nil),
		settings: configs.SettingsFor(filepath.Join(t.TempDir(), "passage"), "tester"),
	}
	log := logger.Logger{Out: io.Discard, Err: io.Discard}

	h.env = &Env{
		Settings: *h.settings,
		Repo:     store.NewRepository(h.settings.StorageFile, secrets.NewAgeCodec(10)),
		Resolver: &passphrase.Resolver{
			Cache: keyring.NewWithKeyring(h.keyring, "tester"),
			Log:   log,
		},
		Hooks: &hooks.Runner{
			Dir:         h.settings.HooksDir,
			WorkDir:     h.settings.BaseDir,
			StorageFile: h.settings.StorageFile,
			Out:         &h.hookOut,
			Log:         log,
		},
		Guard: &clipboard.Guard{
			Clipboard: h.clip,
			Out:       &h.stdout,
			Timeout:   5 * time.Second,
			Spawner:   h.spawner,
		},
		Log: log,
	}
	h.script("", false)

	return h
}

// script feeds the next workflow its input, one answer per line.
func (h *harness) script(input string, interactive bool) {
	console := utils.NewScriptedConsole(strings.NewReader(input), &h.prompts, interactive)
	h.env.Prompt = console
	h.env.Resolver.Prompter = console
}

func (h *harness) init(t *testing.T) {
	t.Helper()
	_, err := Init(context.Background(), h.env)
	require.NoError(t, err)
}

func (h *harness) addEntry(t *testing.T, name, password string) {
	t.Helper()
	blank, err := h.env.Repo.Blank()
	require.NoError(t, err)

	input := name + "\nsecret\n"
	if blank {
		input += "secret\n"
	}
	h.script(input+password+"\n", false)

	_, err = NewEntry(context.Background(), h.env, NewEntryOptions{})
	require.NoError(t, err)
}

func (h *harness) load(t *testing.T) *store.Storage {
	t.Helper()
	s, err := h.env.Repo.Load(secrets.NewPassphrase([]byte("secret")))
	require.NoError(t, err)
	return s
}

func (h *harness) writeHook(t *testing.T, kind hooks.Kind, script string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("hook tests use /bin/sh scripts")
	}
	require.NoError(t, os.MkdirAll(h.settings.HooksDir, 0700))
	path := filepath.Join(h.settings.HooksDir, string(kind))
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0700))
}
