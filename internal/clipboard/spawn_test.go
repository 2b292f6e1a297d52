package clipboard

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearerRecordEnv makes the test binary act as the clipboard clearer: it
// records the digest it got on stdin and its arguments to the named file.
const clearerRecordEnv = "PASSAGE_TEST_CLEARER_RECORD"

func TestMain(m *testing.M) {
	if record := os.Getenv(clearerRecordEnv); record != "" && len(os.Args) == 4 && os.Args[1] == ClearCommand {
		os.Exit(recordClearer(record))
	}
	os.Exit(m.Run())
}

func recordClearer(record string) int {
	after, err := time.ParseDuration(os.Args[3])
	if err != nil {
		return 2
	}
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return 2
	}

	tmp := record + ".tmp"
	content := fmt.Sprintf("%s %s %s", strings.TrimSpace(line), os.Args[2], os.Args[3])
	if err := os.WriteFile(tmp, []byte(content), 0600); err != nil {
		return 2
	}
	if err := os.Rename(tmp, record); err != nil {
		return 2
	}

	time.Sleep(after)
	return 0
}

func TestProcessSpawner_HandsDigestToDetachedChild(t *testing.T) {
	record := filepath.Join(t.TempDir(), "clearer")
	t.Setenv(clearerRecordEnv, record)

	digest := Digest("hunter2")
	after := 3 * time.Second

	start := time.Now()
	require.NoError(t, ProcessSpawner{}.SpawnClear(digest, after))
	assert.Less(t, time.Since(start), after, "SpawnClear must not wait for the clear delay")

	var got []byte
	require.Eventually(t, func() bool {
		b, err := os.ReadFile(record)
		got = b
		return err == nil
	}, 10*time.Second, 20*time.Millisecond)

	assert.Equal(t, digest+" --after 3s", string(got))
}

func TestProcessSpawner_MissingExecutable(t *testing.T) {
	s := ProcessSpawner{Executable: filepath.Join(t.TempDir(), "no-such-passage")}

	err := s.SpawnClear(Digest("x"), time.Second)
	assert.Error(t, err)
}
