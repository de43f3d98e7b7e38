package logger

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Logger is a subsystem logger. All messages are tagged with the subsystem
// name and filtered by the logger's level before reaching the backend.
type Logger struct {
	level   Level
	tag     string
	backend *Backend
}

// SetLevel changes the logging level of the logger.
func (l *Logger) SetLevel(logLevel Level) {
	atomic.StoreUint32((*uint32)(&l.level), uint32(logLevel))
}

// Level returns the current logging level of the logger.
func (l *Logger) Level() Level {
	return Level(atomic.LoadUint32((*uint32)(&l.level)))
}

func (l *Logger) print(logLevel Level, args ...interface{}) {
	if logLevel < l.Level() {
		return
	}
	l.backend.write(logLevel, l.format(logLevel, fmt.Sprint(args...)))
}

func (l *Logger) printf(logLevel Level, format string, args ...interface{}) {
	if logLevel < l.Level() {
		return
	}
	l.backend.write(logLevel, l.format(logLevel, fmt.Sprintf(format, args...)))
}

func (l *Logger) format(logLevel Level, message string) []byte {
	timestamp := time.Now().Format("2006-01-02 15:04:05.000")
	return []byte(fmt.Sprintf("%s [%s] %s: %s\n", timestamp, logLevel, l.tag, message))
}

// Trace formats a message using the default formats for its operands and
// writes it with the trace level.
func (l *Logger) Trace(args ...interface{}) { l.print(LevelTrace, args...) }

// Tracef formats a message according to a format specifier and writes it
// with the trace level.
func (l *Logger) Tracef(format string, args ...interface{}) { l.printf(LevelTrace, format, args...) }

// Debug formats a message using the default formats for its operands and
// writes it with the debug level.
func (l *Logger) Debug(args ...interface{}) { l.print(LevelDebug, args...) }

// Debugf formats a message according to a format specifier and writes it
// with the debug level.
func (l *Logger) Debugf(format string, args ...interface{}) { l.printf(LevelDebug, format, args...) }

// Info formats a message using the default formats for its operands and
// writes it with the info level.
func (l *Logger) Info(args ...interface{}) { l.print(LevelInfo, args...) }

// Infof formats a message according to a format specifier and writes it
// with the info level.
func (l *Logger) Infof(format string, args ...interface{}) { l.printf(LevelInfo, format, args...) }

// Warn formats a message using the default formats for its operands and
// writes it with the warn level.
func (l *Logger) Warn(args ...interface{}) { l.print(LevelWarn, args...) }

// Warnf formats a message according to a format specifier and writes it
// with the warn level.
func (l *Logger) Warnf(format string, args ...interface{}) { l.printf(LevelWarn, format, args...) }

// Error formats a message using the default formats for its operands and
// writes it with the error level.
func (l *Logger) Error(args ...interface{}) { l.print(LevelError, args...) }

// Errorf formats a message according to a format specifier and writes it
// with the error level.
func (l *Logger) Errorf(format string, args ...interface{}) { l.printf(LevelError, format, args...) }

// Critical formats a message using the default formats for its operands and
// writes it with the critical level.
func (l *Logger) Critical(args ...interface{}) { l.print(LevelCritical, args...) }

// Criticalf formats a message according to a format specifier and writes it
// with the critical level.
func (l *Logger) Criticalf(format string, args ...interface{}) {
	l.printf(LevelCritical, format, args...)
}
