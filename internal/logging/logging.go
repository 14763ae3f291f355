// Package logging installs the process-wide slog logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Sink string

const (
	SinkFile   Sink = "file"
	SinkStderr Sink = "stderr"
	SinkNone   Sink = "none"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

const (
	EnvLogLevel  = "FINDBAR_LOG_LEVEL"
	EnvLogFormat = "FINDBAR_LOG_FORMAT"
	EnvLogSink   = "FINDBAR_LOG_SINK"
	EnvLogFile   = "FINDBAR_LOG_FILE"
	EnvLogMaxMB  = "FINDBAR_LOG_MAX_SIZE_MB"
)

// Config selects level, format and destination. Zero values fall back to
// info level, text format and a rotating file under the user cache dir.
type Config struct {
	Level      string
	Format     string
	Sink       string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// WithEnv overlays FINDBAR_LOG_* environment variables.
func (c Config) WithEnv() Config {
	applyString := func(dst *string, env string) {
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			*dst = v
		}
	}
	applyString(&c.Level, EnvLogLevel)
	applyString(&c.Format, EnvLogFormat)
	applyString(&c.Sink, EnvLogSink)
	applyString(&c.File, EnvLogFile)
	if raw := strings.TrimSpace(os.Getenv(EnvLogMaxMB)); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			c.MaxSizeMB = n
		}
	}
	return c
}

// Init builds the logger described by cfg, installs it as the slog default
// and returns a func that releases the sink.
func Init(cfg Config, app string) (func() error, error) {
	logger, closeFn, err := New(cfg.WithEnv(), app)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)
	return closeFn, nil
}

// New builds a logger without installing it.
func New(cfg Config, app string) (*slog.Logger, func() error, error) {
	writer, closeFn, err := resolveWriter(cfg)
	if err != nil {
		return nil, nil, err
	}

	handlerOpts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}
	var handler slog.Handler
	switch Format(strings.ToLower(strings.TrimSpace(cfg.Format))) {
	case FormatJSON:
		handler = slog.NewJSONHandler(writer, handlerOpts)
	case FormatText, "":
		handler = slog.NewTextHandler(writer, handlerOpts)
	default:
		_ = closeFn()
		return nil, nil, fmt.Errorf("logging: unknown format %q", cfg.Format)
	}

	logger := slog.New(handler)
	if app != "" {
		logger = logger.With(slog.String("app", app))
	}
	return logger, closeFn, nil
}

func ParseLevel(value string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func resolveWriter(cfg Config) (io.Writer, func() error, error) {
	noop := func() error { return nil }
	sink := Sink(strings.ToLower(strings.TrimSpace(cfg.Sink)))
	switch sink {
	case SinkNone:
		return io.Discard, noop, nil
	case SinkStderr:
		return os.Stderr, noop, nil
	case SinkFile, "":
		path := strings.TrimSpace(cfg.File)
		if path == "" {
			dir, err := os.UserCacheDir()
			if err != nil {
				return nil, nil, fmt.Errorf("logging: resolve cache dir: %w", err)
			}
			path = filepath.Join(dir, "findbar", "findbar.log")
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, nil, fmt.Errorf("logging: create log dir: %w", err)
		}
		rot := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    positiveOr(cfg.MaxSizeMB, 10),
			MaxBackups: positiveOr(cfg.MaxBackups, 3),
			MaxAge:     positiveOr(cfg.MaxAgeDays, 7),
			Compress:   true,
		}
		return rot, rot.Close, nil
	default:
		return nil, nil, fmt.Errorf("logging: unknown sink %q", cfg.Sink)
	}
}

func positiveOr(v, fallback int) int {
	if v <= 0 {
		return fallback
	}
	return v
}
