// Package log provides a small leveled logger for mnemo. Output goes to
// stderr (stdout belongs to the MCP stdio transport) and optionally to a
// rotating file.
package log

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Logger struct {
	mu     sync.Mutex
	writer io.Writer

	Name  string
	Level Level
}

// New creates a logger writing to stderr. If file is non-empty, output is
// duplicated into a size-rotated log file.
func New(name string, level Level, file string) *Logger {
	var w io.Writer = os.Stderr
	if file != "" {
		w = io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   file,
			MaxSize:    32, // megabytes
			MaxBackups: 3,
			MaxAge:     14, // days
			Compress:   true,
		})
	}
	return &Logger{writer: w, Name: name, Level: level}
}

func (l *Logger) Debugf(format string, args ...any) { l.logf(Debug, format, args...) }
func (l *Logger) Infof(format string, args ...any)  { l.logf(Info, format, args...) }
func (l *Logger) Warnf(format string, args ...any)  { l.logf(Warn, format, args...) }
func (l *Logger) Errorf(format string, args ...any) { l.logf(Error, format, args...) }

func (l *Logger) logf(level Level, format string, args ...any) {
	if l == nil || level < l.Level {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	ts := time.Now().Format("2006-01-02 15:04:05")
	fmt.Fprintf(l.writer, "%s %-5s %s: %s\n", ts, level, l.Name, fmt.Sprintf(format, args...))
}
