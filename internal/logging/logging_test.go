package logging

import (
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/astutecat/aoc-2024/internal/config"
)

// #region constructor-tests
func TestNew_Formats(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		logger, err := New(config.LogConfig{Level: "debug", Format: format})
		if err != nil {
			t.Fatalf("New(%s): %v", format, err)
		}
		if !logger.Core().Enabled(zap.DebugLevel) {
			t.Errorf("%s: expected debug level enabled", format)
		}
	}
}

func TestNew_Errors(t *testing.T) {
	if _, err := New(config.LogConfig{Level: "loud", Format: "json"}); err == nil {
		t.Error("expected error for unknown level")
	}
	if _, err := New(config.LogConfig{Level: "info", Format: "xml"}); err == nil {
		t.Error("expected error for unknown format")
	}
}

// #endregion constructor-tests

// #region log-run-tests
func TestLogRun_Success(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	LogRun(zap.New(core), RunEntry{
		RunID:    "r1",
		Day:      1,
		Part:     2,
		Source:   "example",
		Digest:   "0123456789abcdef0123",
		Answer:   "31",
		Solved:   true,
		Duration: time.Millisecond,
	})

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	ctx := entries[0].ContextMap()
	if ctx["answer"] != "31" {
		t.Errorf("expected answer 31, got %v", ctx["answer"])
	}
	if ctx["digest"] != "0123456789ab" {
		t.Errorf("expected shortened digest, got %v", ctx["digest"])
	}
	if entries[0].Level != zap.InfoLevel {
		t.Errorf("expected info level, got %s", entries[0].Level)
	}
}

func TestLogRun_Failure(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	LogRun(zap.New(core), RunEntry{Day: 3, Part: 1, Err: errors.New("boom")})

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Level != zap.WarnLevel {
		t.Errorf("expected warn level, got %s", entries[0].Level)
	}
	if _, ok := entries[0].ContextMap()["answer"]; ok {
		t.Error("expected no answer field on failure")
	}
}

// #endregion log-run-tests
