package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/PolarWolf314/passage/internal/configs"
	"github.com/PolarWolf314/passage/internal/utils"
	"github.com/PolarWolf314/passage/internal/workflows"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
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
	calls int
}

func (s *fakeSpawner) SpawnClear(string, time.Duration) error {
	s.calls++
	return nil
}

// testCLI runs the real command tree against a store in a temp directory.
type testCLI struct {
	t        *testing.T
	settings *configs.Settings
	clip     *fakeClipboard
	spawner  *fakeSpawner
}

func newTestCLI(t *testing.T) *testCLI {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() {
		color.NoColor = prev
		ResetGlobalState()
	})

	return &testCLI{
		t:        t,
		settings: configs.SettingsFor(filepath.Join(t.TempDir(), "passage"), "tester"),
		clip:     &fakeClipboard{},
		spawner:  &fakeSpawner{},
	}
}

// run executes passage with args. input answers the prompts, one line
// each; interactive controls whether confirmations can be asked.
func (c *testCLI) run(input string, interactive bool, args ...string) (stdout, stderr string, err error) {
	c.t.Helper()
	ResetGlobalState()

	var outBuf, errBuf bytes.Buffer
	console := utils.NewScriptedConsole(strings.NewReader(input), &errBuf, interactive)

	SetEnvFactory(func(cmd *cobra.Command) (*workflows.Env, error) {
		config := configs.DefaultConfig()
		config.Crypto.WorkFactor = 10
		config.Clipboard.Timeout = configs.Duration{Duration: 3 * time.Second}

		env, err := workflows.NewEnv(workflows.EnvOptions{
			Settings:  *c.settings,
			Config:    config,
			Prompt:    console,
			Log:       Logger,
			NoKeyring: true,
			Stdout:    cmd.OutOrStdout(),
			Stderr:    cmd.ErrOrStderr(),
			Progress:  progressTo(cmd.ErrOrStderr()),
		})
		if err != nil {
			return nil, err
		}
		env.Guard.Clipboard = c.clip
		env.Guard.Spawner = c.spawner
		return env, nil
	})

	RootCmd.SetOut(&outBuf)
	RootCmd.SetErr(&errBuf)
	RootCmd.SetIn(strings.NewReader(input))
	RootCmd.SetArgs(args)

	err = RootCmd.Execute()
	if err != nil {
		printError(&errBuf, err)
	}

	return outBuf.String(), errBuf.String(), err
}

// mustRun fails the test if the command fails.
func (c *testCLI) mustRun(input string, args ...string) string {
	c.t.Helper()
	stdout, stderr, err := c.run(input, false, args...)
	if err != nil {
		c.t.Fatalf("passage %s failed: %v\nstderr: %s", strings.Join(args, " "), err, stderr)
	}
	return stdout
}
