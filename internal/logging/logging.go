package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/astutecat/aoc-2024/internal/config"
)

// #region constructor
// New builds a logger from cfg. "json" selects zap's production encoder,
// "console" the development one.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	var zc zap.Config
	switch cfg.Format {
	case "json":
		zc = zap.NewProductionConfig()
	case "console", "":
		zc = zap.NewDevelopmentConfig()
		zc.DisableStacktrace = true
	default:
		return nil, fmt.Errorf("log format %q", cfg.Format)
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// Nop returns a logger that discards everything.
func Nop() *zap.Logger {
	return zap.NewNop()
}

// #endregion constructor

// #region log-run
// LogRun writes one line per solver invocation. Failed runs log at warn.
func LogRun(log *zap.Logger, e RunEntry) {
	fields := e.Fields()
	if e.Err != nil {
		log.Warn("solve failed", append(fields, zap.Error(e.Err))...)
		return
	}
	log.Info("solved", fields...)
}

// Fields renders e as zap fields.
func (e RunEntry) Fields() []zap.Field {
	fields := []zap.Field{
		zap.Int("day", e.Day),
		zap.Int("part", e.Part),
		zap.String("source", e.Source),
		zap.String("digest", shortDigest(e.Digest)),
		zap.Bool("solved", e.Solved),
		zap.Bool("cached", e.Cached),
		zap.Duration("duration", e.Duration),
	}
	if e.Solved {
		fields = append(fields, zap.String("answer", e.Answer))
	}
	if e.RunID != "" {
		fields = append(fields, zap.String("run_id", e.RunID))
	}
	return fields
}

// #endregion log-run

// #region helpers
func shortDigest(d string) string {
	if len(d) > 12 {
		return d[:12]
	}
	return d
}

// #endregion helpers
