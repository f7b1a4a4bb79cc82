package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	buf := &bytes.Buffer{}
	l := New(buf, slog.LevelWarn)

	l.Info("hidden")
	l.Warn("shown")

	got := buf.String()
	if strings.Contains(got, "hidden") {
		t.Errorf("New() logged below level: %q", got)
	}
	if !strings.Contains(got, "shown") {
		t.Errorf("New() did not log at level: %q", got)
	}
}

func TestNewFileLogger(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "output", "test.log")

		l, err := NewFileLogger(path, slog.LevelDebug)
		if err != nil {
			t.Fatalf("NewFileLogger() error = %v", err)
		}
		l.Debug("debug message")

		b, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read log file: %v", err)
		}
		if !strings.Contains(string(b), "debug message") {
			t.Errorf("log file = %q, want it to contain %q", b, "debug message")
		}
	})

	t.Run("directory as path", func(t *testing.T) {
		if _, err := NewFileLogger(t.TempDir(), slog.LevelDebug); err == nil {
			t.Error("NewFileLogger() error = nil, want an error")
		}
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "", want: slog.LevelInfo},
		{in: "warning", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "verbose", want: slog.LevelInfo, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}
