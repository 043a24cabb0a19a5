package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/phuslu/log"
)

// Options configures the console sink and its minimum level
type Options struct {
	Level   string
	Console io.Writer
	Color   bool
}

// New returns a logger that writes every entry to the console and to each extra sink.
// Only the console honors opts.Level and carries the fields; extra sinks receive
// the bare message of every entry, one line each.
func New(opts Options, sinks ...io.Writer) *log.Logger {
	console := opts.Console
	if console == nil {
		console = os.Stdout
	}

	writers := log.MultiEntryWriter{
		&levelWriter{
			min:    ParseLevel(opts.Level),
			writer: &log.ConsoleWriter{Writer: console, ColorOutput: opts.Color, EndWithMessage: true},
		},
	}
	for _, sink := range sinks {
		if sink == nil {
			continue
		}
		writers = append(writers, &log.ConsoleWriter{Writer: sink, Formatter: messageOnly})
	}

	return &log.Logger{
		Level:      log.TraceLevel,
		TimeFormat: "15:04:05",
		Writer:     &writers,
	}
}

// Discard returns a logger that drops everything
func Discard() *log.Logger {
	return New(Options{Console: io.Discard})
}

// ParseLevel maps a level name to a log level, defaulting to info
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// levelWriter drops entries below min
type levelWriter struct {
	min    log.Level
	writer log.Writer
}

func (w *levelWriter) WriteEntry(e *log.Entry) (int, error) {
	if e.Level < w.min {
		return 0, nil
	}
	return w.writer.WriteEntry(e)
}

func messageOnly(w io.Writer, args *log.FormatterArgs) (int, error) {
	return fmt.Fprintln(w, args.Message)
}
