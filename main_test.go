package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestReportClosesDebugLog(t *testing.T) {
	closed := 0
	closeLog = func() error {
		closed++
		return nil
	}
	t.Cleanup(func() { closeLog = func() error { return nil } })

	var buf bytes.Buffer
	report(&buf, errors.New("bad config"))
	if closed != 1 {
		t.Errorf("debug log closed %d times, want 1", closed)
	}
	if got := buf.String(); got != "gomoku-local: bad config\n" {
		t.Errorf("report wrote %q", got)
	}
}

func TestReportCloseError(t *testing.T) {
	closeLog = func() error { return errors.New("disk full") }
	t.Cleanup(func() { closeLog = func() error { return nil } })

	var buf bytes.Buffer
	report(&buf, errors.New("bad config"))
	if !strings.Contains(buf.String(), "close debug log: disk full") || !strings.Contains(buf.String(), "bad config") {
		t.Errorf("report wrote %q", buf.String())
	}
}
