// Package logger builds the application's slog logger.
package logger

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ekisa-team/voxlingo/internal/env"
)

const (
	defaultLogFile    = "logs/voxlingo.log"
	defaultMaxSizeMB  = 10
	defaultMaxBackups = 5
	defaultMaxAgeDays = 28
)

type options struct {
	writer    io.Writer
	logFile   string
	logToFile bool
}

// Option configures New.
type Option func(*options)

// WithLogToFile enables the rotating JSON file sink.
func WithLogToFile(enabled bool) Option {
	return func(o *options) {
		o.logToFile = enabled
	}
}

// WithLogFile sets the file used by the file sink.
func WithLogFile(path string) Option {
	return func(o *options) {
		o.logFile = path
	}
}

// WithWriter replaces the console writer (stderr by default).
func WithWriter(w io.Writer) Option {
	return func(o *options) {
		o.writer = w
	}
}

// New returns a logger for e. Development logs colored text at debug
// level; other environments log JSON at info level.
func New(e env.Environment, opts ...Option) *slog.Logger {
	o := &options{
		writer:  os.Stderr,
		logFile: defaultLogFile,
	}
	for _, opt := range opts {
		opt(o)
	}

	level := slog.LevelInfo
	if e == env.Development {
		level = slog.LevelDebug
	}

	var console slog.Handler
	if e == env.Development {
		console = tint.NewHandler(o.writer, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	} else {
		console = slog.NewJSONHandler(o.writer, &slog.HandlerOptions{Level: level})
	}

	if !o.logToFile {
		return slog.New(console)
	}

	file := slog.NewJSONHandler(&lumberjack.Logger{
		Filename:   o.logFile,
		MaxSize:    defaultMaxSizeMB,
		MaxBackups: defaultMaxBackups,
		MaxAge:     defaultMaxAgeDays,
		Compress:   true,
	}, &slog.HandlerOptions{Level: level})

	return slog.New(fanout{console, file})
}

// fanout sends each record to every handler that accepts it.
type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range f {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (f fanout) WithGroup(name string) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name)
	}
	return out
}
