package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"INFO":    zapcore.InfoLevel,
		"warning": zapcore.WarnLevel,
		" error ": zapcore.ErrorLevel,
		"bogus":   zapcore.InfoLevel,
		"":        zapcore.InfoLevel,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewHonorsLevel(t *testing.T) {
	for _, json := range []bool{false, true} {
		log, err := New(Config{Level: "warn", JSON: json})
		if err != nil {
			t.Fatalf("New(json=%v): %v", json, err)
		}
		if log.Core().Enabled(zapcore.InfoLevel) {
			t.Fatalf("json=%v: info should be disabled at warn level", json)
		}
		if !log.Core().Enabled(zapcore.WarnLevel) {
			t.Fatalf("json=%v: warn should be enabled", json)
		}
	}
}
