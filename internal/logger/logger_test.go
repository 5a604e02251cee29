package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func newBufferLogger(level Level) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := New(Config{
		Level:  level,
		Pretty: false,
		Output: &buf,
	})
	return l, &buf
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name      string
		level     Level
		logFn     func(*Logger)
		wantWrite bool
	}{
		{
			name:      "debug suppressed at info level",
			level:     InfoLevel,
			logFn:     func(l *Logger) { l.Debug("hidden") },
			wantWrite: false,
		},
		{
			name:      "info passes at info level",
			level:     InfoLevel,
			logFn:     func(l *Logger) { l.Info("shown") },
			wantWrite: true,
		},
		{
			name:      "info suppressed at warn level",
			level:     WarnLevel,
			logFn:     func(l *Logger) { l.Infof("hidden %d", 1) },
			wantWrite: false,
		},
		{
			name:      "error always passes",
			level:     WarnLevel,
			logFn:     func(l *Logger) { l.Errorf("bad %s", "thing") },
			wantWrite: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf := newBufferLogger(tt.level)
			tt.logFn(l)

			if got := buf.Len() > 0; got != tt.wantWrite {
				t.Errorf("wrote = %v, want %v (output: %q)", got, tt.wantWrite, buf.String())
			}
		})
	}
}

func TestLogger_Component(t *testing.T) {
	l, buf := newBufferLogger(InfoLevel)
	l.WithComponent("extract").Info("hello")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["component"] != "extract" {
		t.Errorf("component = %v", entry["component"])
	}
	if entry["message"] != "hello" {
		t.Errorf("message = %v", entry["message"])
	}
}

func TestLogger_WithField(t *testing.T) {
	l, buf := newBufferLogger(InfoLevel)
	l.WithField("url", "/users/").Info("endpoint")

	if !strings.Contains(buf.String(), `"url":"/users/"`) {
		t.Errorf("missing field: %s", buf.String())
	}
}

func TestLogger_SetLevel(t *testing.T) {
	l, buf := newBufferLogger(WarnLevel)

	l.Info("hidden")
	if buf.Len() != 0 {
		t.Fatal("info should be suppressed at warn level")
	}

	l.SetLevel(DebugLevel)
	l.Info("shown")
	if buf.Len() == 0 {
		t.Error("info should pass after lowering the level")
	}
}

func TestGlobal(t *testing.T) {
	orig := Global()
	defer SetGlobal(orig)

	l, buf := newBufferLogger(InfoLevel)
	SetGlobal(l)

	Infof("via global %d", 7)
	if !strings.Contains(buf.String(), "via global 7") {
		t.Errorf("global logger not used: %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("debug")
	if err != nil {
		t.Fatalf("ParseLevel() error = %v", err)
	}
	if level != DebugLevel {
		t.Errorf("level = %v, want debug", level)
	}

	if _, err := ParseLevel("not-a-level"); err == nil {
		t.Error("expected error for bad level string")
	}
}
