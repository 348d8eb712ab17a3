package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDebugfGate(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		Debug = false
		SetOutput(nil)
	})

	Debug = false
	Debugf("hidden %d", 1)
	if buf.Len() != 0 {
		t.Fatalf("disabled log wrote %q", buf.String())
	}

	Debug = true
	Debugf("shown %d", 2)
	if !strings.Contains(buf.String(), "shown 2") {
		t.Errorf("log = %q", buf.String())
	}
}

func TestInitAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	if err := os.WriteFile(path, []byte("old\n"), 0644); err != nil {
		t.Fatal(err)
	}
	closeLog, err := Init(path)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(func() {
		Debug = false
		SetOutput(nil)
	})
	Debugf("new entry")
	if err := closeLog(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "old\n") || !strings.Contains(string(data), "new entry") {
		t.Errorf("log file = %q", data)
	}
}

func TestInitBadPath(t *testing.T) {
	if _, err := Init(filepath.Join(t.TempDir(), "missing", "debug.log")); err == nil {
		t.Error("expected error for a missing directory")
	}
}
