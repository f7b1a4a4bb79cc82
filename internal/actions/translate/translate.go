// Package translate implements the commands over the translation service:
// translating text, detecting its language and listing the supported
// languages and glossaries.
package translate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"cloud.google.com/go/translate/apiv3/translatepb"
	"google.golang.org/api/option"

	"github.com/hekt/voice-translation/internal/auth"
	"github.com/hekt/voice-translation/internal/config"
	"github.com/hekt/voice-translation/internal/preferences"
	"github.com/hekt/voice-translation/internal/translation"
	"github.com/hekt/voice-translation/internal/util"
)

type Args struct {
	Config     config.Config
	Authorizer *auth.Authorizer
	// Out receives the results. It defaults to stdout.
	Out io.Writer
	// ClientOptions are appended to the translation client options.
	ClientOptions []option.ClientOption
}

func (a Args) out() io.Writer {
	if a.Out == nil {
		return os.Stdout
	}
	return a.Out
}

// Settings overrides the stored language preferences for one translation.
type Settings struct {
	SourceLanguageCode string
	TargetLanguageCode string
	Glossary           *bool
}

// Run translates text and prints every translation on its own line.
func Run(ctx context.Context, args Args, text string, settings Settings) error {
	if text == "" {
		return errors.New("text must be specified")
	}

	store, err := preferences.Open(ctx, args.Config.Preferences.Path, slog.Default())
	if err != nil {
		return fmt.Errorf("failed to open preferences: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Error(fmt.Sprintf("failed to close preferences: %v", err))
		}
	}()

	service, err := newService(ctx, args, translation.OverrideSettings{
		Base:     store,
		Source:   settings.SourceLanguageCode,
		Target:   settings.TargetLanguageCode,
		Glossary: settings.Glossary,
	})
	if err != nil {
		return err
	}
	defer closeService(service)

	resp, err := service.TranslateText(ctx, text)
	if err != nil {
		return err
	}

	for _, t := range translation.TranslatedTexts(resp) {
		if _, err := fmt.Fprintln(args.out(), t); err != nil {
			return fmt.Errorf("failed to write translation: %w", err)
		}
	}
	return nil
}

// Detect prints the detected language codes with their confidence.
func Detect(ctx context.Context, args Args, text string) error {
	if text == "" {
		return errors.New("text must be specified")
	}

	service, err := newService(ctx, args, translation.StaticSettings{})
	if err != nil {
		return err
	}
	defer closeService(service)

	resp, err := service.DetectLanguage(ctx, text)
	if err != nil {
		return err
	}

	for _, l := range resp.GetLanguages() {
		if _, err := fmt.Fprintf(args.out(), "%s\t%.2f\n", l.GetLanguageCode(), l.GetConfidence()); err != nil {
			return fmt.Errorf("failed to write language: %w", err)
		}
	}
	return nil
}

// Languages prints the supported languages.
func Languages(ctx context.Context, args Args) error {
	service, err := newService(ctx, args, translation.StaticSettings{})
	if err != nil {
		return err
	}
	defer closeService(service)

	resp, err := service.GetLanguageCodes(ctx)
	if err != nil {
		return err
	}

	for _, l := range resp.GetLanguages() {
		if _, err := fmt.Fprintln(args.out(), formatLanguage(l)); err != nil {
			return fmt.Errorf("failed to write language: %w", err)
		}
	}
	return nil
}

func formatLanguage(l *translatepb.SupportedLanguage) string {
	if l.GetDisplayName() == "" {
		return l.GetLanguageCode()
	}
	return l.GetLanguageCode() + "\t" + l.GetDisplayName()
}

// Glossaries prints the glossaries of the configured location.
func Glossaries(ctx context.Context, args Args) error {
	service, err := newService(ctx, args, translation.StaticSettings{})
	if err != nil {
		return err
	}
	defer closeService(service)

	glossaries, err := service.ListGlossaries(ctx)
	if err != nil {
		return err
	}

	for _, g := range glossaries {
		if _, err := fmt.Fprintf(args.out(), "%s\t%d\n", g.GetName(), g.GetEntryCount()); err != nil {
			return fmt.Errorf("failed to write glossary: %w", err)
		}
	}
	return nil
}

func newService(ctx context.Context, args Args, settings translation.Settings) (*translation.Service, error) {
	cfg := args.Config
	if cfg.ProjectID == "" {
		return nil, errors.New("project ID must be specified")
	}

	client, err := util.NewTranslationClient(ctx, args.Authorizer, cfg.Translation.Endpoint, args.ClientOptions...)
	if err != nil {
		return nil, err
	}

	service, err := translation.New(client, settings, cfg.ProjectID, util.TranslationOptions(cfg)...)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to create translation service: %w", err)
	}
	return service, nil
}

func closeService(service *translation.Service) {
	if err := service.Close(); err != nil {
		slog.Error(fmt.Sprintf("failed to close translation service: %v", err))
	}
}
