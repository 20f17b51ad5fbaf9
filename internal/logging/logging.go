package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

const defaultLogFile = "nvim-ui-mirror.log"

var (
	mu           sync.Mutex
	traceEnabled bool
	logPath      = defaultLogFile
	level        = zerolog.InfoLevel
	output       io.Writer
)

// write opens the log destination, hands a logger to fn and closes the
// file again so the log can be tailed or rotated while running. Entries
// below the configured level return before the file is touched; trace
// entries use zerolog.NoLevel and always pass.
func write(entry zerolog.Level, fn func(l zerolog.Logger)) {
	mu.Lock()
	path, lvl, w := logPath, level, output
	mu.Unlock()

	if lvl == zerolog.Disabled || (entry != zerolog.NoLevel && entry < lvl) {
		return
	}
	if w == nil {
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "logging failed: %v\n", err)
			return
		}
		defer f.Close()
		w = f
	}
	fn(zerolog.New(w).Level(lvl).With().Timestamp().Logger())
}

// Error writes errors to the shared log file.
func Error(err error) {
	if err == nil {
		return
	}
	write(zerolog.ErrorLevel, func(l zerolog.Logger) {
		l.Error().Err(err).Send()
	})
}

func Errorf(format string, args ...interface{}) {
	write(zerolog.ErrorLevel, func(l zerolog.Logger) {
		l.Error().Msgf(format, args...)
	})
}

func Warnf(format string, args ...interface{}) {
	write(zerolog.WarnLevel, func(l zerolog.Logger) {
		l.Warn().Msgf(format, args...)
	})
}

func Infof(format string, args ...interface{}) {
	write(zerolog.InfoLevel, func(l zerolog.Logger) {
		l.Info().Msgf(format, args...)
	})
}

func Debugf(format string, args ...interface{}) {
	write(zerolog.DebugLevel, func(l zerolog.Logger) {
		l.Debug().Msgf(format, args...)
	})
}

// SetLevel sets the minimum level written. Accepted names are those of
// zerolog ("debug", "info", "warn", "error", ...).
func SetLevel(name string) error {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		return err
	}
	mu.Lock()
	level = lvl
	mu.Unlock()
	return nil
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	mu.Unlock()
}

// Trace appends a structured JSON entry to the shared log when tracing is
// enabled. Trace entries bypass the level filter.
func Trace(event string, payload interface{}) {
	mu.Lock()
	enabled := traceEnabled
	mu.Unlock()
	if !enabled {
		return
	}
	write(zerolog.NoLevel, func(l zerolog.Logger) {
		e := l.Log().Str("event", event)
		if payload != nil {
			e = e.Interface("payload", payload)
		}
		e.Send()
	})
}

// Configure sets the log destination. Empty values fall back to the default
// path. Directories are created automatically when missing.
func Configure(path string) {
	mu.Lock()
	defer mu.Unlock()
	if strings.TrimSpace(path) == "" {
		logPath = defaultLogFile
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		logPath = defaultLogFile
		return
	}
	logPath = path
}

// SetOutput redirects all entries to w instead of the log file. A nil
// writer restores the file.
func SetOutput(w io.Writer) {
	mu.Lock()
	output = w
	mu.Unlock()
}
