package cmd

import (
	"io"
	"strings"
	"testing"

	"github.com/PolarWolf314/passage/internal/clipboard"
	kerrors "github.com/PolarWolf314/passage/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionFlag(t *testing.T) {
	c := newTestCLI(t)

	stdout := c.mustRun("", "--version")
	assert.Equal(t, "passage "+Version+"\n", stdout)
}

func TestBareCommandShowsBanner(t *testing.T) {
	c := newTestCLI(t)

	stdout := c.mustRun("")
	assert.Contains(t, stdout, "passage --help")
}

func TestEndToEnd(t *testing.T) {
	c := newTestCLI(t)

	stdout := c.mustRun("", "init")
	assert.Contains(t, stdout, "Store initialized at "+c.settings.StorageFile)

	stdout = c.mustRun("email\nsecret\nsecret\nhunter2\n", "new")
	assert.Contains(t, stdout, "✓ Entry 'email' added")

	stdout = c.mustRun("secret\n", "show", "email", "--on-screen")
	assert.Equal(t, "hunter2\n", stdout)

	_, stderr, err := c.run("secret\n", false, "show", "nonexistent", "--on-screen")
	assert.ErrorIs(t, err, kerrors.ErrEntryNotFound)
	assert.Contains(t, stderr, `Error: entry "nonexistent": entry not found`)
}

func TestInitTwice(t *testing.T) {
	c := newTestCLI(t)

	c.mustRun("", "init")
	stdout := c.mustRun("", "init")
	assert.Contains(t, stdout, "already initialized")
}

func TestInitDefersPassphrase(t *testing.T) {
	c := newTestCLI(t)

	help := c.mustRun("", "init", "--help")
	assert.Contains(t, help, "init does not ask for a passphrase")
	assert.Contains(t, help, "`passage new`")

	_, stderr, err := c.run("", false, "init")
	require.NoError(t, err)
	assert.NotContains(t, stderr, "passphrase")

	_, stderr, err = c.run("email\nsecret\nsecret\nhunter2\n", false, "new")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Enter passphrase: ")
	assert.Contains(t, stderr, "Confirm passphrase: ")
}

func TestProgressWritesToCommandStderr(t *testing.T) {
	c := newTestCLI(t)
	c.mustRun("", "init")

	stdout, stderr, err := c.run("email\nsecret\nsecret\nhunter2\n", false, "new")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Encrypting storage...")
	assert.NotContains(t, stdout, "Encrypting storage...")

	stdout, stderr, err = c.run("secret\n", false, "show", "email", "--on-screen")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Decrypting storage...")
	assert.Equal(t, "hunter2\n", stdout)
}

func TestUninitializedHint(t *testing.T) {
	c := newTestCLI(t)

	_, stderr, err := c.run("", false, "list")
	assert.ErrorIs(t, err, kerrors.ErrStorageUninitialized)
	assert.Contains(t, stderr, "→ Run `passage init` to create the store")
}

func TestNewOverwritePolicy(t *testing.T) {
	c := newTestCLI(t)
	c.mustRun("", "init")
	c.mustRun("email\nsecret\nsecret\nhunter2\n", "new")

	_, stderr, err := c.run("email\nsecret\nhunter3\n", false, "new")
	assert.ErrorIs(t, err, kerrors.ErrEntryAlreadyExists)
	assert.Contains(t, stderr, "--force")

	stdout, _, err := c.run("email\nsecret\nn\n", true, "new")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Kept existing entry 'email'")

	stdout = c.mustRun("email\nsecret\nhunter3\n", "new", "--force")
	assert.Contains(t, stdout, "overwritten")

	stdout = c.mustRun("secret\n", "show", "email", "--on-screen")
	assert.Equal(t, "hunter3\n", stdout)
}

func TestListCommand(t *testing.T) {
	c := newTestCLI(t)
	c.mustRun("", "init")

	assert.Empty(t, c.mustRun("", "list"))

	c.mustRun("work/mail\nsecret\nsecret\na\n", "new")
	c.mustRun("email\nsecret\nb\n", "new")

	assert.Equal(t, "email\nwork/mail\n", c.mustRun("secret\n", "list"))
	assert.Equal(t, "work/mail\n", c.mustRun("secret\n", "ls", "work/*"))
}

func TestShowToClipboard(t *testing.T) {
	c := newTestCLI(t)
	c.mustRun("", "init")
	c.mustRun("email\nsecret\nsecret\nhunter2\n", "new")

	stdout, stderr, err := c.run("secret\n", false, "show", "email")
	require.NoError(t, err)

	assert.Empty(t, stdout)
	assert.Equal(t, "hunter2", c.clip.text)
	assert.Equal(t, 1, c.spawner.calls)
	assert.Contains(t, stderr, "Copied 'email' to the clipboard, clearing in 3s")
}

func TestWrongPassphrase(t *testing.T) {
	c := newTestCLI(t)
	c.mustRun("", "init")
	c.mustRun("email\nsecret\nsecret\nhunter2\n", "new")

	stdout, stderr, err := c.run("wrong\n", false, "show", "email", "--on-screen")
	assert.ErrorIs(t, err, kerrors.ErrDecryptionFailed)
	assert.Empty(t, stdout)
	assert.NotContains(t, stderr, "wrong\n")
	assert.NotContains(t, stderr, "hunter2")
}

func TestEditAndRemove(t *testing.T) {
	c := newTestCLI(t)
	c.mustRun("", "init")
	c.mustRun("email\nsecret\nsecret\nhunter2\n", "new")

	stdout := c.mustRun("secret\nhunter3\n", "edit", "email")
	assert.Contains(t, stdout, "Entry 'email' updated")
	assert.Equal(t, "hunter3\n", c.mustRun("secret\n", "show", "email", "--on-screen"))

	_, _, err := c.run("secret\n", false, "remove", "email")
	assert.ErrorIs(t, err, kerrors.ErrNotInteractive)

	stdout = c.mustRun("secret\n", "rm", "email", "--yes")
	assert.Contains(t, stdout, "Entry 'email' removed")

	assert.Empty(t, c.mustRun("secret\n", "list"))
}

func TestInfoCommand(t *testing.T) {
	c := newTestCLI(t)

	stdout := c.mustRun("", "info")
	assert.Equal(t, "Storage file: "+c.settings.StorageFile+"\n", stdout)
}

func TestArgumentValidation(t *testing.T) {
	c := newTestCLI(t)

	_, _, err := c.run("", false, "show")
	assert.Error(t, err)

	_, _, err = c.run("", false, "edit", "a", "b")
	assert.Error(t, err)

	_, _, err = c.run("", false, "list", "a", "b")
	assert.Error(t, err)
}

func TestClipboardClearCommand(t *testing.T) {
	newTestCLI(t)
	cb := &fakeClipboard{}

	runClear := func() {
		t.Helper()
		ResetGlobalState()
		SetClipboardFactory(func() clipboard.Clipboard { return cb })
		RootCmd.SetIn(strings.NewReader(clipboard.Digest("hunter2") + "\n"))
		RootCmd.SetOut(io.Discard)
		RootCmd.SetErr(io.Discard)
		RootCmd.SetArgs([]string{"clipboard-clear", "--after", "1ms"})
		require.NoError(t, RootCmd.Execute())
	}

	cb.text = "hunter2"
	runClear()
	assert.Empty(t, cb.text)

	cb.text = "copied later"
	runClear()
	assert.Equal(t, "copied later", cb.text)
}

func TestClipboardClearIsHidden(t *testing.T) {
	c := newTestCLI(t)

	stdout := c.mustRun("", "--help")
	assert.NotContains(t, stdout, "clipboard-clear")
	assert.Contains(t, stdout, "show")
}
