// Package logger provides a leveled, subsystem-tagged logging backend for
// the wallet. Subsystems created from one Backend share its writers, and
// writes are atomic across subsystems.
package logger

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/jrick/logrotate/rotator"
	"github.com/pkg/errors"
)

const (
	defaultThresholdKB = 10 * 1000 // 10 MB logs by default.
	defaultMaxRolls    = 8         // keep 8 last logs by default.
)

type logWriter struct {
	writer   io.WriteCloser
	logLevel Level
}

// Backend is a logging backend. Subsystems created from the backend write to
// the backend's writers. Backend provides atomic writes to the writers from
// all subsystems.
type Backend struct {
	mutex   sync.Mutex
	writers []logWriter
}

// NewBackend creates a new logger backend.
func NewBackend() *Backend {
	return &Backend{}
}

// AddLogWriter adds a writer which the log will write into on a certain log
// level.
func (b *Backend) AddLogWriter(writer io.WriteCloser, logLevel Level) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.writers = append(b.writers, logWriter{writer: writer, logLevel: logLevel})
}

// AddLogFile adds a file which the log will write into on a certain log
// level with the default log rotation settings. It'll create the file if it
// doesn't exist.
func (b *Backend) AddLogFile(logFile string, logLevel Level) error {
	logDir, _ := filepath.Split(logFile)
	// If logDir is empty then logFile is in the cwd and there's no need to
	// create any directory.
	if logDir != "" {
		err := os.MkdirAll(logDir, 0700)
		if err != nil {
			return errors.Wrapf(err, "failed to create log directory %s", logDir)
		}
	}
	r, err := rotator.New(logFile, defaultThresholdKB, false, defaultMaxRolls)
	if err != nil {
		return errors.Wrapf(err, "failed to create file rotator for %s", logFile)
	}
	b.AddLogWriter(r, logLevel)
	return nil
}

// write sends a formatted log message to every writer whose level allows it.
func (b *Backend) write(logLevel Level, log []byte) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	for _, writer := range b.writers {
		if logLevel >= writer.logLevel {
			_, _ = writer.writer.Write(log)
		}
	}
}

// Close finalizes all writers for this backend.
func (b *Backend) Close() {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	for _, writer := range b.writers {
		_ = writer.writer.Close()
	}
	b.writers = nil
}

// Logger returns a new logger for a particular subsystem that writes to the
// Backend b. A tag describes the subsystem and is included in all log
// messages. The logger is off by default until SetLevel is called.
func (b *Backend) Logger(subsystemTag string) *Logger {
	return &Logger{level: LevelOff, tag: subsystemTag, backend: b}
}

// nopWriteCloser wraps a Writer with a no-op Close, so process-wide streams
// like stderr can be registered on a Backend.
type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// NopWriteCloser returns w with a no-op Close method.
func NopWriteCloser(w io.Writer) io.WriteCloser {
	return nopWriteCloser{w}
}
