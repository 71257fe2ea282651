package log

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger writes leveled diagnostics to stderr and optionally to a
// rotating log file. Listing output itself never goes through the
// logger.
type Logger struct {
	writer io.Writer

	Name  string
	Level Level

	TimeFormat string
	NoColor    bool
}

// Rotation bounds for the optional log file.
type Rotation struct {
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
}

type Options struct {
	Level      Level
	File       string
	NoTerminal bool
	NoColor    bool
	Rotation   *Rotation
}

func New(name string, opts Options) *Logger {
	l := &Logger{
		Name:       name,
		Level:      opts.Level,
		NoColor:    opts.NoColor,
		TimeFormat: "2006-01-02 15:04:05",
	}

	var writers []io.Writer
	if !opts.NoTerminal {
		writers = append(writers, os.Stderr)
	}

	if opts.File != "" {
		rotation := opts.Rotation
		if rotation == nil {
			rotation = &Rotation{
				MaxSize:    128,
				MaxBackups: 5,
				MaxAge:     16,
			}
		}
		writers = append(writers, &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    rotation.MaxSize,
			MaxBackups: rotation.MaxBackups,
			MaxAge:     rotation.MaxAge,
			Compress:   rotation.Compress,
		})
	}

	if len(writers) == 0 {
		writers = append(writers, io.Discard)
	}

	l.writer = io.MultiWriter(writers...)
	return l
}

// Discard returns a logger that drops everything. Used as the default
// by components that accept an optional logger.
func Discard() *Logger {
	return &Logger{writer: io.Discard, Level: Fatal}
}

func (l *Logger) log(level Level, msg string, args ...any) {
	if level < l.Level {
		return
	}

	timestamp := time.Now().Format(l.TimeFormat)
	formatted := fmt.Sprintf(msg, args...)

	prefix := fmt.Sprintf("[%s] %-5s", timestamp, level)
	if l.Name != "" {
		prefix = fmt.Sprintf("%s [%s]", prefix, l.Name)
	}

	if !l.NoColor {
		fmt.Fprintf(l.writer, "%s%s %s\033[0m\n", color(level), prefix, formatted)
	} else {
		fmt.Fprintf(l.writer, "%s %s\n", prefix, formatted)
	}
}

func (l *Logger) Debug(msg string, args ...any) {
	l.log(Debug, msg, args...)
}

func (l *Logger) Info(msg string, args ...any) {
	l.log(Info, msg, args...)
}

func (l *Logger) Warn(msg string, args ...any) {
	l.log(Warn, msg, args...)
}

func (l *Logger) Error(msg string, args ...any) {
	l.log(Error, msg, args...)
}

// Named returns a child logger sharing the same writer.
func (l *Logger) Named(name string) *Logger {
	child := *l
	if l.Name != "" {
		child.Name = fmt.Sprintf("%s/%s", l.Name, name)
	} else {
		child.Name = name
	}
	return &child
}
