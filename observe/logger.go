// Package observe provides the structured logging used by the CLI and,
// through the Logger.Debugf adapter, by the sampler packages' optional
// diagnostic hook.
package observe

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Level is a logging verbosity level.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Format selects the zerolog output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

var zerologLevels = map[Level]zerolog.Level{
	LevelDebug: zerolog.DebugLevel,
	LevelWarn:  zerolog.WarnLevel,
	LevelError: zerolog.ErrorLevel,
}

func zerologLevel(l Level) zerolog.Level {
	if zl, ok := zerologLevels[l]; ok {
		return zl
	}
	return zerolog.InfoLevel
}

// LoggerConfig configures a Logger.
type LoggerConfig struct {
	Level  Level
	Format Format
	Output io.Writer
}

// Logger wraps zerolog.Logger with the leveled calls this module needs and
// satisfies bct.Diagnostics/latinsquare's Diag field via Debugf.
type Logger struct {
	logger zerolog.Logger
}

// NewLogger builds a Logger from cfg, defaulting Output to os.Stdout.
func NewLogger(cfg LoggerConfig) *Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	var output io.Writer = cfg.Output
	if cfg.Format == FormatText {
		output = zerolog.ConsoleWriter{
			Out:        cfg.Output,
			TimeFormat: time.RFC3339,
		}
	}

	zlog := zerolog.New(output).With().Timestamp().Logger().Level(zerologLevel(cfg.Level))
	return &Logger{logger: zlog}
}

// Debugf satisfies bct.Diagnostics / latinsquare's Diag field.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.logger.Debug().Msgf(format, args...)
}

// Info logs at info level.
func (l *Logger) Info(msg string) { l.logger.Info().Msg(msg) }

// Warn logs at warn level.
func (l *Logger) Warn(msg string) { l.logger.Warn().Msg(msg) }

// Error logs at error level.
func (l *Logger) Error(msg string, err error) { l.logger.Error().Err(err).Msg(msg) }
