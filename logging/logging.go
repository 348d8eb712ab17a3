// Package logging writes debug output to a file so it never interferes with the
// terminal UI.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
)

var debugLog = log.New(io.Discard, "", log.Ltime|log.Lmicroseconds)

// Debug controls whether debug logs are written.
var Debug bool

// Init opens path for appending and enables debug logging. The returned close function
// releases the file.
func Init(path string) (func() error, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open debug log: %w", err)
	}
	SetOutput(f)
	Debug = true
	return f.Close, nil
}

// SetOutput redirects debug logs to w.
func SetOutput(w io.Writer) {
	debugLog.SetOutput(w)
}

// Debugf logs a formatted debug message when Debug is enabled.
func Debugf(format string, v ...any) {
	if Debug {
		debugLog.Printf(format, v...)
	}
}
