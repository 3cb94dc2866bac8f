// Package log is a small level based logging engine over an io.Writer
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// FTimestamp prefixes every line with the current time
const FTimestamp = 1 << iota

// Log levels, lowest to highest
const (
	DEBUG = 10 * iota
	INFO
	WARN
	ERROR
	CRIT
)

func levelToString(level int) string {
	switch level {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO "
	case WARN:
		return "WARN "
	case ERROR:
		return "ERROR"
	case CRIT:
		return "CRIT "
	}

	return "?????"
}

// Logger is a level based logging engine
type Logger struct {
	flags    int
	output   io.Writer
	prefix   string
	wMutex   sync.Mutex
	minLevel int
}

// New creates a new logger with the set options
func New(flags int, output io.Writer, prefix string, minLevel int) *Logger {
	return &Logger{flags: flags, output: output, prefix: prefix, minLevel: minLevel}
}

// SetPrefix sets the logger's prefix and returns it, for chaining onto Clone
func (l *Logger) SetPrefix(prefix string) *Logger {
	l.prefix = prefix
	return l
}

// Clone returns a copy of the logger that can be reconfigured independently
func (l *Logger) Clone() *Logger {
	return New(l.flags, l.output, l.prefix, l.minLevel)
}

func (l *Logger) writeOut(msg string, level int) {
	if level < l.minLevel {
		return
	}

	out := strings.Builder{}
	if l.flags&FTimestamp != 0 {
		out.WriteString("[" + time.Now().Format("15:04:05.000") + "] ")
	}

	out.WriteString("[" + levelToString(level) + "] ")

	if l.prefix != "" {
		out.WriteString("[" + l.prefix + "] ")
	}

	out.WriteString(strings.TrimRight(msg, "\r\n"))
	out.WriteByte('\n')

	l.wMutex.Lock()
	defer l.wMutex.Unlock()
	_, _ = io.WriteString(l.output, out.String())
}

// Debugf logs the formatted message at the Debug level
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.writeOut(fmt.Sprintf(format, args...), DEBUG)
}

// Info logs the passed data at the Info level
func (l *Logger) Info(args ...interface{}) {
	l.writeOut(fmt.Sprint(args...), INFO)
}

// Infof logs the formatted message at the Info level
func (l *Logger) Infof(format string, args ...interface{}) {
	l.writeOut(fmt.Sprintf(format, args...), INFO)
}

// Warnf logs the formatted message at the Warn level
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.writeOut(fmt.Sprintf(format, args...), WARN)
}

// Errorf logs the formatted message at the Error level
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.writeOut(fmt.Sprintf(format, args...), ERROR)
}

// Critf logs the formatted message at the Crit level and exits
func (l *Logger) Critf(format string, args ...interface{}) {
	l.writeOut(fmt.Sprintf(format, args...), CRIT)
	os.Exit(1)
}
