package configs

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestSaveAndLoadTOML(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "config.toml")

	original := KeyringConfig{Enabled: true}
	if err := SaveTOML(testFile, original); err != nil {
		t.Fatalf("SaveTOML failed: %v", err)
	}

	loaded := KeyringConfig{}
	if err := LoadTOML(testFile, &loaded); err != nil {
		t.Fatalf("LoadTOML failed: %v", err)
	}

	if loaded != original {
		t.Errorf("Expected %+v, got %+v", original, loaded)
	}
}

func TestLoadTOMLNonExistent(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "nonexistent.toml")

	var data KeyringConfig
	if err := LoadTOML(testFile, &data); err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}
}

func TestLoadTOMLRejectsUnknownKeys(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(testFile, []byte("enabled = true\nenabeld = false\n"), 0600); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	var data KeyringConfig
	err := LoadTOML(testFile, &data)
	if err == nil {
		t.Fatal("Expected error for unknown key, got nil")
	}
	if !strings.Contains(err.Error(), "enabeld") {
		t.Errorf("Expected error to name the unknown key, got %v", err)
	}
}

func TestSaveTOMLCreatesPrivateFile(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "subdir", "config.toml")

	if err := SaveTOML(testFile, KeyringConfig{}); err != nil {
		t.Fatalf("SaveTOML failed: %v", err)
	}

	info, err := os.Stat(testFile)
	if err != nil {
		t.Fatalf("File was not created: %v", err)
	}
	if runtime.GOOS != "windows" && info.Mode().Perm() != 0600 {
		t.Errorf("Expected mode 0600, got %o", info.Mode().Perm())
	}
}
