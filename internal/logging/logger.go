// Streak Stats - GitHub Contribution Streak Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streakstats

package logging

import (
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// ServiceName is the default value of the "service" field.
const ServiceName = "streakstats"

// Config holds logging configuration.
type Config struct {
	// Level is the minimum level: trace, debug, info, warn, error, fatal,
	// panic or disabled. Unknown values mean info.
	Level string

	// Format is json (default) or console.
	Format string

	// Caller adds file:line to every entry.
	Caller bool

	// Service is written as the "service" field. Default: ServiceName.
	Service string

	// Output defaults to os.Stderr.
	Output io.Writer
}

// DefaultConfig returns JSON at info level on stderr.
func DefaultConfig() Config {
	return Config{
		Level:   "info",
		Format:  "json",
		Service: ServiceName,
		Output:  os.Stderr,
	}
}

var global atomic.Pointer[zerolog.Logger]

//nolint:gochecknoinits // logging must work before Init is called
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.TimestampFieldName = "time"
	zerolog.MessageFieldName = "message"
	Init(DefaultConfig())
}

// Init builds the global logger from cfg. It may be called again at any
// time, for example once configuration has been loaded.
func Init(cfg Config) {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}
	if cfg.Service == "" {
		cfg.Service = ServiceName
	}

	out := cfg.Output
	if strings.EqualFold(cfg.Format, "console") {
		out = zerolog.ConsoleWriter{Out: cfg.Output, TimeFormat: "15:04:05"}
	}

	zerolog.SetGlobalLevel(parseLevel(cfg.Level))
	ctx := zerolog.New(out).With().Timestamp().Str("service", cfg.Service)
	if cfg.Caller {
		ctx = ctx.Caller()
	}
	SetLogger(ctx.Logger())
}

// parseLevel maps a level name to zerolog.Level; "warning" is accepted as
// an alias of warn and anything unknown is info.
func parseLevel(level string) zerolog.Level {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "warning" {
		level = "warn"
	}
	if level == "" {
		return zerolog.InfoLevel
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// Logger returns a copy of the global logger.
func Logger() zerolog.Logger {
	return *global.Load()
}

// SetLogger replaces the global logger. It also becomes zerolog's default
// context logger, so Ctx on a bare context writes through it.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func SetLogger(l zerolog.Logger) {
	global.Store(&l)
	zerolog.DefaultContextLogger = &l
}

// With creates a child logger context.
func With() zerolog.Context {
	return global.Load().With()
}

// Debug starts a debug entry on the global logger.
func Debug() *zerolog.Event { return global.Load().Debug() }

// Info starts an info entry on the global logger.
//
//	logging.Info().Int("port", 8080).Msg("Server starting")
func Info() *zerolog.Event { return global.Load().Info() }

// Warn starts a warn entry on the global logger.
func Warn() *zerolog.Event { return global.Load().Warn() }

// Error starts an error entry on the global logger.
func Error() *zerolog.Event { return global.Load().Error() }

// Fatal starts a fatal entry; os.Exit(1) follows the write.
func Fatal() *zerolog.Event { return global.Load().Fatal() }

// Err starts an entry with err attached, at error level when err is non-nil.
func Err(err error) *zerolog.Event { return global.Load().Err(err) }

// NewTestLogger creates a JSON logger writing to w, for capturing output in tests.
func NewTestLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}
