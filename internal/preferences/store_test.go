package preferences

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func openMemory(t *testing.T) *Store {
	t.Helper()

	s, err := Open(context.Background(), MemoryPath, newLogger())
	if err != nil {
		t.Fatalf("open preferences: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpen(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		if _, err := Open(context.Background(), "", newLogger()); err == nil {
			t.Error("Open() error = nil, want non-nil")
		}
	})

	t.Run("persists across reopen", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "preferences.db")
		ctx := context.Background()

		s, err := Open(ctx, path, newLogger())
		if err != nil {
			t.Fatalf("open preferences: %v", err)
		}
		if err := s.SetTargetLanguageCode(ctx, "ja"); err != nil {
			t.Fatalf("set target: %v", err)
		}
		if err := s.Close(); err != nil {
			t.Fatalf("close: %v", err)
		}

		s, err = Open(ctx, path, newLogger())
		if err != nil {
			t.Fatalf("reopen preferences: %v", err)
		}
		t.Cleanup(func() { _ = s.Close() })

		got, err := s.TargetLanguageCode(ctx)
		if err != nil {
			t.Fatalf("target: %v", err)
		}
		if got != "ja" {
			t.Errorf("TargetLanguageCode() = %q, want %q", got, "ja")
		}
	})
}

func TestStore_GetSetDelete(t *testing.T) {
	s := openMemory(t)
	ctx := context.Background()

	if _, err := s.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want %v", err, ErrNotFound)
	}

	if err := s.Set(ctx, "k", "v1"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := s.Set(ctx, "k", "v2"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, err := s.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "v2" {
		t.Errorf("Get() = %q, want %q", got, "v2")
	}

	if err := s.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := s.Get(ctx, "k"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after Delete() error = %v, want %v", err, ErrNotFound)
	}
	if err := s.Delete(ctx, "k"); err != nil {
		t.Errorf("Delete() of missing key error = %v", err)
	}

	if err := s.Set(ctx, "", "v"); err == nil {
		t.Error("Set() with empty key error = nil, want non-nil")
	}
}

func TestStore_All(t *testing.T) {
	s := openMemory(t)
	ctx := context.Background()

	for k, v := range map[string]string{"a": "1", "b": "2"} {
		if err := s.Set(ctx, k, v); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
	}

	got, err := s.All(ctx)
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	if diff := cmp.Diff(map[string]string{"a": "1", "b": "2"}, got); diff != "" {
		t.Errorf("All() mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_languageSettings(t *testing.T) {
	s := openMemory(t)
	ctx := context.Background()

	t.Run("defaults", func(t *testing.T) {
		source, err := s.SourceLanguageCode(ctx)
		if err != nil || source != DefaultSourceLanguageCode {
			t.Errorf("SourceLanguageCode() = %q, %v, want %q", source, err, DefaultSourceLanguageCode)
		}
		target, err := s.TargetLanguageCode(ctx)
		if err != nil || target != DefaultTargetLanguageCode {
			t.Errorf("TargetLanguageCode() = %q, %v, want %q", target, err, DefaultTargetLanguageCode)
		}
		glossary, err := s.GlossaryEnabled(ctx)
		if err != nil || glossary {
			t.Errorf("GlossaryEnabled() = %v, %v, want false", glossary, err)
		}
	})

	t.Run("updated", func(t *testing.T) {
		if err := s.SetSourceLanguageCode(ctx, "sr-Latn"); err != nil {
			t.Fatalf("SetSourceLanguageCode() error = %v", err)
		}
		if err := s.SetTargetLanguageCode(ctx, "en-US"); err != nil {
			t.Fatalf("SetTargetLanguageCode() error = %v", err)
		}
		if err := s.SetGlossaryEnabled(ctx, true); err != nil {
			t.Fatalf("SetGlossaryEnabled() error = %v", err)
		}

		source, _ := s.SourceLanguageCode(ctx)
		target, _ := s.TargetLanguageCode(ctx)
		glossary, _ := s.GlossaryEnabled(ctx)
		if source != "sr-Latn" || target != "en-US" || !glossary {
			t.Errorf("settings = (%q, %q, %v), want (%q, %q, %v)", source, target, glossary, "sr-Latn", "en-US", true)
		}
	})

	t.Run("empty target rejected", func(t *testing.T) {
		if err := s.SetTargetLanguageCode(ctx, ""); err == nil {
			t.Error("SetTargetLanguageCode() error = nil, want non-nil")
		}
	})

	t.Run("invalid glossary value", func(t *testing.T) {
		if err := s.Set(ctx, KeyGlossaryEnabled, "maybe"); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
		if _, err := s.GlossaryEnabled(ctx); err == nil {
			t.Error("GlossaryEnabled() error = nil, want non-nil")
		}
	})
}
