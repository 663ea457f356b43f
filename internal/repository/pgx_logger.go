package repository

import (
	"context"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

// pgxLogger routes pgx tracing onto zerolog under component=pgx.
type pgxLogger struct {
	logger zerolog.Logger
}

func newPgxLogger(logger zerolog.Logger) *pgxLogger {
	return &pgxLogger{logger: logger.With().Str("component", "pgx").Logger()}
}

var pgxLevels = map[tracelog.LogLevel]zerolog.Level{
	tracelog.LogLevelTrace: zerolog.TraceLevel,
	tracelog.LogLevelDebug: zerolog.DebugLevel,
	tracelog.LogLevelInfo:  zerolog.InfoLevel,
	tracelog.LogLevelWarn:  zerolog.WarnLevel,
	tracelog.LogLevelError: zerolog.ErrorLevel,
}

// Log implements tracelog.Logger. SQL text and arguments get their own fields so game and shot
// queries stay greppable.
func (l *pgxLogger) Log(_ context.Context, level tracelog.LogLevel, msg string, data map[string]any) {
	if level == tracelog.LogLevelNone {
		return
	}

	zl, known := pgxLevels[level]
	if !known {
		zl = zerolog.InfoLevel
	}
	event := l.logger.WithLevel(zl)
	if !known {
		event = event.Str("pgx_log_level", level.String())
	}

	if s, ok := data["sql"].(string); ok {
		event = event.Str("sql", s)
		delete(data, "sql")
	}
	if args, ok := data["args"]; ok && zl <= zerolog.DebugLevel {
		event = event.Interface("args", args)
	}
	delete(data, "args")

	if len(data) > 0 {
		event = event.Fields(data)
	}
	event.Msg(msg)
}
