package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerLevelFiltering(t *testing.T) {
	buffer := &bytes.Buffer{}
	backend := NewBackend()
	backend.AddLogWriter(NopWriteCloser(buffer), LevelTrace)

	log := backend.Logger("TEST")
	if log.Level() != LevelOff {
		t.Fatalf("A fresh logger is at level %s, expected %s", log.Level(), LevelOff)
	}

	// Nothing may reach the backend before a level is set.
	log.Infof("dropped message")
	if buffer.Len() != 0 {
		t.Fatalf("A logger at level off wrote: %q", buffer.String())
	}

	log.SetLevel(LevelDebug)
	if log.Level() != LevelDebug {
		t.Fatalf("SetLevel: logger is at level %s, expected %s", log.Level(), LevelDebug)
	}

	log.Tracef("filtered message")
	if buffer.Len() != 0 {
		t.Fatalf("A trace message passed a debug-level logger: %q", buffer.String())
	}

	log.Infof("kept message %d", 42)
	written := buffer.String()
	if !strings.Contains(written, "[INF] TEST: kept message 42") {
		t.Fatalf("Unexpected log line: %q", written)
	}
}

func TestBackendWriterLevels(t *testing.T) {
	warnBuffer := &bytes.Buffer{}
	debugBuffer := &bytes.Buffer{}
	backend := NewBackend()
	backend.AddLogWriter(NopWriteCloser(warnBuffer), LevelWarn)
	backend.AddLogWriter(NopWriteCloser(debugBuffer), LevelDebug)

	log := backend.Logger("TEST")
	log.SetLevel(LevelDebug)

	log.Debugf("debug message")
	log.Warnf("warn message")

	if strings.Contains(warnBuffer.String(), "debug message") {
		t.Fatalf("A debug message reached a warn-level writer: %q", warnBuffer.String())
	}
	if !strings.Contains(warnBuffer.String(), "warn message") {
		t.Fatalf("A warn message did not reach a warn-level writer: %q", warnBuffer.String())
	}
	if !strings.Contains(debugBuffer.String(), "debug message") ||
		!strings.Contains(debugBuffer.String(), "warn message") {
		t.Fatalf("The debug-level writer is missing messages: %q", debugBuffer.String())
	}
}
