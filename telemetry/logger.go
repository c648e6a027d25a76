package telemetry

import (
	"io"
	"os"
	"sort"
	"time"

	"github.com/rs/zerolog"
)

// LoggerConfig is the level/format/output triple NewLogger consumes.
type LoggerConfig struct {
	Level  string // "debug", "info", "warn", "error"
	Format string // "text", "json"
	Output io.Writer
}

// Logger is a thin structured-logging wrapper the Cycle Driver uses for one
// event per dispatch or refuel outcome; no per-tick event is logged, and the
// Dispatch Executor itself does not log. Distinct from the human-facing
// console summary the CLI prints at run end.
type Logger struct {
	logger zerolog.Logger
}

// NewLogger builds a Logger from cfg, defaulting Output to stdout and Level
// to info for an unrecognized value.
func NewLogger(cfg LoggerConfig) *Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	var out io.Writer = cfg.Output
	if cfg.Format == "text" {
		out = zerolog.ConsoleWriter{Out: cfg.Output, TimeFormat: time.RFC3339}
	}

	zlog := zerolog.New(out).With().Timestamp().Logger().Level(levelFor(cfg.Level))

	return &Logger{logger: zlog}
}

func levelFor(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func (l *Logger) Debug(msg string) { l.logger.Debug().Msg(msg) }
func (l *Logger) Info(msg string)  { l.logger.Info().Msg(msg) }
func (l *Logger) Warn(msg string)  { l.logger.Warn().Msg(msg) }
func (l *Logger) Error(msg string) { l.logger.Error().Msg(msg) }

// WithField returns a child Logger carrying one extra structured field.
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{logger: l.logger.With().Interface(key, value).Logger()}
}

// WithFields returns a child Logger carrying several extra structured
// fields, applied in sorted key order for deterministic log line shape.
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	ctx := l.logger.With()
	for _, k := range sortedKeys(fields) {
		ctx = ctx.Interface(k, fields[k])
	}

	return &Logger{logger: ctx.Logger()}
}

func sortedKeys(fields map[string]interface{}) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
