// Package logging builds the zap loggers used across the module.
package logging

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Option configures New.
type Option func(*config)

type config struct {
	level       zapcore.Level
	development bool
	output      io.Writer
	fields      []zap.Field
}

// WithLevel sets the minimum level from its name. Unknown names fall back
// to info.
func WithLevel(name string) Option {
	return func(c *config) {
		c.level = ParseLevel(name)
	}
}

// WithDevelopment switches to the human-readable console encoder.
func WithDevelopment(dev bool) Option {
	return func(c *config) {
		c.development = dev
	}
}

// WithOutput redirects log lines to w. A nil writer is ignored.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithFields attaches fields to every log line.
func WithFields(fields ...zap.Field) Option {
	return func(c *config) {
		c.fields = append(c.fields, fields...)
	}
}

// New returns a logger writing JSON lines to stderr at info level unless
// configured otherwise.
func New(opts ...Option) *zap.Logger {
	cfg := config{level: zapcore.InfoLevel, output: os.Stderr}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	if cfg.development {
		encCfg = zap.NewDevelopmentEncoderConfig()
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(cfg.output), zap.NewAtomicLevelAt(cfg.level))

	zopts := []zap.Option{zap.AddCaller()}
	if cfg.development {
		zopts = append(zopts, zap.Development())
	}

	return zap.New(core, zopts...).With(cfg.fields...)
}

// ParseLevel converts a level name to a zap level. Unknown names map to
// info.
func ParseLevel(name string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// OrNop returns l, or a no-op logger when l is nil.
func OrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}
