package recognize

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/hekt/voice-translation/internal/auth"
	"github.com/hekt/voice-translation/internal/config"
	"github.com/hekt/voice-translation/internal/file"
	"github.com/hekt/voice-translation/internal/preferences"
	"github.com/hekt/voice-translation/internal/publisher"
	"github.com/hekt/voice-translation/internal/recognizer"
	"github.com/hekt/voice-translation/internal/speechrecognition"
	"github.com/hekt/voice-translation/internal/translation"
	"github.com/hekt/voice-translation/internal/util"
)

type Args struct {
	Config     config.Config
	Authorizer *auth.Authorizer
}

func Run(ctx context.Context, args Args, opts ...Option) error {
	options := &options{
		outputFilePath: fmt.Sprintf("output/%d.txt", time.Now().Unix()),
		bufferSize:     recognizer.MinBufferSize,
		audioReader:    os.Stdin,
		interimWriter:  os.Stdout,
	}
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return fmt.Errorf("failed to apply option: %w", err)
		}
	}
	if options.translationFilePath == "" {
		options.translationFilePath = file.WithSuffix(options.outputFilePath, "translated")
	}

	cfg := args.Config
	if options.translate && cfg.ProjectID == "" {
		return errors.New("project ID must be specified to translate")
	}

	sessionID := uuid.NewString()
	slog.Debug("recognize: session started", "session", sessionID)

	// This behavior ensures the output file is created early,
	// making it easier to use with tools like `tail -f`.
	if err := file.Touch(options.outputFilePath); err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	resultWriter := file.NewAppendWriter(options.outputFilePath)

	client, err := util.NewSpeechClient(ctx, args.Authorizer, cfg.Speech.Endpoint, options.clientOptions...)
	if err != nil {
		return err
	}
	service, err := speechrecognition.New(client, speechOptions(cfg.Speech)...)
	if err != nil {
		client.Close()
		return fmt.Errorf("failed to create speech recognition service: %w", err)
	}
	defer func() {
		if err := service.Close(); err != nil {
			slog.Error(fmt.Sprintf("failed to close speech recognition service: %v", err))
		}
	}()

	var handlers []recognizer.FinalResultHandler

	var eventPublisher recognizer.EventPublisher
	if cfg.Publisher.Enabled {
		pub, err := publisher.Connect(cfg.Publisher, slog.Default())
		if err != nil {
			return fmt.Errorf("failed to connect publisher: %w", err)
		}
		defer pub.Close()
		eventPublisher = pub

		h, err := recognizer.NewPublishHandler(pub, sessionID, cfg.Speech.LanguageCode)
		if err != nil {
			return err
		}
		handlers = append(handlers, h)
	}

	if options.translate {
		store, err := preferences.Open(ctx, cfg.Preferences.Path, slog.Default())
		if err != nil {
			return fmt.Errorf("failed to open preferences: %w", err)
		}
		defer func() {
			if err := store.Close(); err != nil {
				slog.Error(fmt.Sprintf("failed to close preferences: %v", err))
			}
		}()

		translator, err := newTranslationService(ctx, args, store, options)
		if err != nil {
			return err
		}
		defer func() {
			if err := translator.Close(); err != nil {
				slog.Error(fmt.Sprintf("failed to close translation service: %v", err))
			}
		}()

		if err := file.Touch(options.translationFilePath); err != nil {
			return fmt.Errorf("failed to create translation file: %w", err)
		}
		h, err := recognizer.NewTranslationHandler(
			translator,
			&recognizer.DecoratedResultWriter{Writer: file.NewAppendWriter(options.translationFilePath)},
			eventPublisher,
			sessionID,
		)
		if err != nil {
			return err
		}
		handlers = append(handlers, h)
	}

	r, err := recognizer.New(
		service,
		options.audioReader,
		resultWriter,
		options.interimWriter,
		options.bufferSize,
		options.inactivityTimeout,
		handlers...,
	)
	if err != nil {
		return err
	}

	if err := r.Start(ctx); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, recognizer.ErrInactive) {
			return nil
		}
		return err
	}
	return nil
}

func speechOptions(cfg config.SpeechConfig) []speechrecognition.Option {
	return []speechrecognition.Option{
		speechrecognition.WithSampleRate(cfg.SampleRate),
		speechrecognition.WithLanguageCode(cfg.LanguageCode),
		speechrecognition.WithMaxAlternatives(cfg.MaxAlternatives),
		speechrecognition.WithWordTimeOffsets(cfg.WordTimeOffsets),
		speechrecognition.WithInterimResults(cfg.InterimResults),
		speechrecognition.WithSingleUtterance(cfg.SingleUtterance),
		speechrecognition.WithMaxStreamDuration(time.Duration(cfg.MaxStreamDuration) * time.Millisecond),
	}
}

func newTranslationService(
	ctx context.Context,
	args Args,
	base translation.Settings,
	options *options,
) (*translation.Service, error) {
	cfg := args.Config

	client, err := util.NewTranslationClient(ctx, args.Authorizer, cfg.Translation.Endpoint, options.clientOptions...)
	if err != nil {
		return nil, err
	}

	settings := translation.OverrideSettings{
		Base:     base,
		Source:   options.sourceLanguageCode,
		Target:   options.targetLanguageCode,
		Glossary: options.glossary,
	}
	service, err := translation.New(client, settings, cfg.ProjectID, util.TranslationOptions(cfg)...)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to create translation service: %w", err)
	}
	return service, nil
}
