// Package output provides user-facing logging and terminal styling.
package output

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// simpleHandler is a custom slog handler that writes messages without
// timestamps or level prefixes, for console output.
type simpleHandler struct {
	writer    io.Writer
	debugMode bool
}

func (h *simpleHandler) Enabled(_ context.Context, level slog.Level) bool {
	if level == slog.LevelDebug {
		return h.debugMode
	}
	return true
}

func (h *simpleHandler) Handle(_ context.Context, record slog.Record) error {
	_, err := fmt.Fprintln(h.writer, record.Message)
	return err
}

func (h *simpleHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *simpleHandler) WithGroup(_ string) slog.Handler {
	return h
}

// multiHandler fans out log records to multiple handlers
type multiHandler struct {
	handlers []slog.Handler
}

func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *multiHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, record.Level) {
			if err := handler.Handle(ctx, record); err != nil {
				return err
			}
		}
	}
	return nil
}

func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithAttrs(attrs)
	}
	return &multiHandler{handlers: newHandlers}
}

func (h *multiHandler) WithGroup(name string) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithGroup(name)
	}
	return &multiHandler{handlers: newHandlers}
}

// Splog provides structured logging and output
type Splog struct {
	logger    *slog.Logger
	writer    io.Writer
	styles    Styles
	logWriter io.WriteCloser
}

// NewSplog creates a splog writing to stdout. Debug messages are enabled
// when the DEBUG environment variable is set; setting FUXI_DEBUG_LOG also
// mirrors everything to a rotating log file under the user cache directory.
func NewSplog() *Splog {
	return NewSplogTo(os.Stdout)
}

// NewSplogTo creates a splog writing console output to w
func NewSplogTo(w io.Writer) *Splog {
	splog := &Splog{writer: w, styles: StylesFor(w)}

	consoleHandler := &simpleHandler{
		writer:    w,
		debugMode: os.Getenv("DEBUG") != "",
	}
	handlers := []slog.Handler{consoleHandler}

	if os.Getenv("FUXI_DEBUG_LOG") != "" {
		if fileHandler, logWriter := newFileHandler(); fileHandler != nil {
			handlers = append(handlers, fileHandler)
			splog.logWriter = logWriter
		}
	}

	splog.logger = slog.New(&multiHandler{handlers: handlers})
	return splog
}

// newFileHandler builds a rotating debug log handler under the user cache
// directory. Failures are swallowed; file logging is best-effort.
func newFileHandler() (slog.Handler, io.WriteCloser) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return nil, nil
	}
	logPath := filepath.Join(cacheDir, "fuxi", "fuxi.log")
	if err := os.MkdirAll(filepath.Dir(logPath), 0o750); err != nil {
		return nil, nil
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    1,  // megabytes
		MaxBackups: 2,
		MaxAge:     30, // days
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: slog.LevelDebug, // always log everything to file
	})
	return handler, logWriter
}

func (s *Splog) logMessage(level slog.Level, msg string) {
	s.logger.Log(context.Background(), level, msg)
}

func (s *Splog) sprintf(format string, args ...interface{}) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}

// Info writes an info message
func (s *Splog) Info(format string, args ...interface{}) {
	s.logMessage(slog.LevelInfo, s.sprintf(format, args...))
}

// Warn writes a warning message
func (s *Splog) Warn(format string, args ...interface{}) {
	s.logMessage(slog.LevelWarn, s.styles.Warning(s.sprintf(format, args...)))
}

// Error writes an error message
func (s *Splog) Error(format string, args ...interface{}) {
	s.logMessage(slog.LevelError, s.styles.Error(s.sprintf(format, args...)))
}

// Debug writes a debug message
func (s *Splog) Debug(format string, args ...interface{}) {
	s.logMessage(slog.LevelDebug, s.sprintf(format, args...))
}

// Tip writes a tip message
func (s *Splog) Tip(format string, args ...interface{}) {
	s.logMessage(slog.LevelInfo, s.styles.Hint("💡 "+s.sprintf(format, args...)))
}

// Newline writes a newline
func (s *Splog) Newline() {
	_, _ = fmt.Fprintln(s.writer)
}

// Styles returns the style set used for console output
func (s *Splog) Styles() Styles {
	return s.styles
}

// Close closes the log file if one was opened
func (s *Splog) Close() error {
	if s.logWriter != nil {
		return s.logWriter.Close()
	}
	return nil
}
