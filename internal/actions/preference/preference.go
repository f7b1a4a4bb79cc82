// Package preference shows and updates the stored translation preferences.
package preference

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/hekt/voice-translation/internal/preferences"
)

type SetArgs struct {
	SourceLanguageCode string
	TargetLanguageCode string
	Glossary           *bool
}

func (a SetArgs) empty() bool {
	return a.SourceLanguageCode == "" && a.TargetLanguageCode == "" && a.Glossary == nil
}

// Show writes the effective preferences, defaults included.
func Show(ctx context.Context, path string, w io.Writer) error {
	store, err := preferences.Open(ctx, path, slog.Default())
	if err != nil {
		return fmt.Errorf("failed to open preferences: %w", err)
	}
	defer closeStore(store)

	source, err := store.SourceLanguageCode(ctx)
	if err != nil {
		return err
	}
	target, err := store.TargetLanguageCode(ctx)
	if err != nil {
		return err
	}
	glossary, err := store.GlossaryEnabled(ctx)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w,
		"%s: %s\n%s: %s\n%s: %t\n",
		preferences.KeySourceLanguageCode, source,
		preferences.KeyTargetLanguageCode, target,
		preferences.KeyGlossaryEnabled, glossary,
	); err != nil {
		return fmt.Errorf("failed to write preferences: %w", err)
	}
	return nil
}

func Set(ctx context.Context, path string, args SetArgs) error {
	if args.empty() {
		return errors.New("no preference to set")
	}

	store, err := preferences.Open(ctx, path, slog.Default())
	if err != nil {
		return fmt.Errorf("failed to open preferences: %w", err)
	}
	defer closeStore(store)

	if args.SourceLanguageCode != "" {
		if err := store.SetSourceLanguageCode(ctx, args.SourceLanguageCode); err != nil {
			return fmt.Errorf("failed to set source language code: %w", err)
		}
	}
	if args.TargetLanguageCode != "" {
		if err := store.SetTargetLanguageCode(ctx, args.TargetLanguageCode); err != nil {
			return fmt.Errorf("failed to set target language code: %w", err)
		}
	}
	if args.Glossary != nil {
		if err := store.SetGlossaryEnabled(ctx, *args.Glossary); err != nil {
			return fmt.Errorf("failed to set glossary: %w", err)
		}
	}
	return nil
}

// Reset removes the stored preferences so the defaults apply again.
func Reset(ctx context.Context, path string) error {
	store, err := preferences.Open(ctx, path, slog.Default())
	if err != nil {
		return fmt.Errorf("failed to open preferences: %w", err)
	}
	defer closeStore(store)

	for _, key := range []string{
		preferences.KeySourceLanguageCode,
		preferences.KeyTargetLanguageCode,
		preferences.KeyGlossaryEnabled,
	} {
		if err := store.Delete(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

func closeStore(store *preferences.Store) {
	if err := store.Close(); err != nil {
		slog.Error(fmt.Sprintf("failed to close preferences: %v", err))
	}
}
