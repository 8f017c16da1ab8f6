// Package logger builds the zap logger used by `taxdiff serve`.
package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config selects the log level and encoder.
type Config struct {
	Level string
	JSON  bool
}

// ParseLevel maps a level name to a zap level. Unknown names fall back to
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

// New builds a logger. JSON output uses the production encoder with ISO8601
// timestamps; otherwise a colored console encoder is used.
func New(cfg Config) (*zap.Logger, error) {
	level := ParseLevel(cfg.Level)

	var zc zap.Config
	if cfg.JSON {
		zc = zap.NewProductionConfig()
		zc.EncoderConfig.TimeKey = "timestamp"
		zc.EncoderConfig.MessageKey = "message"
		zc.InitialFields = map[string]interface{}{
			"service": "taxdiff",
		}
	} else {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zc.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.DisableStacktrace = level > zapcore.DebugLevel

	log, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return log, nil
}
