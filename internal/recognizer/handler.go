package recognizer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/translate/apiv3/translatepb"

	"github.com/hekt/voice-translation/internal/metrics"
	"github.com/hekt/voice-translation/internal/publisher"
	"github.com/hekt/voice-translation/internal/recognizer/model"
	"github.com/hekt/voice-translation/internal/translation"
)

//go:generate moq -rm -out translator_mock.go . Translator
type Translator interface {
	TranslateText(ctx context.Context, text string) (*translatepb.TranslateTextResponse, error)
}

//go:generate moq -rm -out event_publisher_mock.go . EventPublisher
type EventPublisher interface {
	Publish(ctx context.Context, evt publisher.Event) error
}

var _ FinalResultHandler = (*TranslationHandler)(nil)

// TranslationHandler translates every final transcript and writes the
// translation. Translations are published too when a publisher is set.
type TranslationHandler struct {
	translator Translator
	writer     io.Writer
	publisher  EventPublisher
	sessionID  string
}

func NewTranslationHandler(
	translator Translator,
	writer io.Writer,
	publisher EventPublisher,
	sessionID string,
) (*TranslationHandler, error) {
	if translator == nil {
		return nil, errors.New("translator must be specified")
	}
	if writer == nil {
		return nil, errors.New("writer must be specified")
	}
	return &TranslationHandler{
		translator: translator,
		writer:     writer,
		publisher:  publisher,
		sessionID:  sessionID,
	}, nil
}

func (h *TranslationHandler) HandleFinalResult(ctx context.Context, result *model.Result) error {
	if strings.TrimSpace(result.Transcript) == "" {
		return nil
	}

	resp, err := h.translator.TranslateText(ctx, result.Transcript)
	if err != nil {
		metrics.Translations.WithLabelValues("failure").Inc()
		return fmt.Errorf("failed to translate result: %w", err)
	}
	metrics.Translations.WithLabelValues("success").Inc()

	for _, text := range translation.TranslatedTexts(resp) {
		if _, err := h.writer.Write([]byte(text)); err != nil {
			return fmt.Errorf("failed to write translation: %w", err)
		}
		if h.publisher == nil {
			continue
		}
		if err := h.publisher.Publish(ctx, publisher.Event{
			SessionID: h.sessionID,
			Kind:      publisher.KindTranslation,
			Text:      text,
		}); err != nil {
			return fmt.Errorf("failed to publish translation: %w", err)
		}
	}
	return nil
}

var _ FinalResultHandler = (*PublishHandler)(nil)

// PublishHandler publishes every final transcript.
type PublishHandler struct {
	publisher    EventPublisher
	sessionID    string
	languageCode string
}

func NewPublishHandler(publisher EventPublisher, sessionID, languageCode string) (*PublishHandler, error) {
	if publisher == nil {
		return nil, errors.New("publisher must be specified")
	}
	return &PublishHandler{
		publisher:    publisher,
		sessionID:    sessionID,
		languageCode: languageCode,
	}, nil
}

func (h *PublishHandler) HandleFinalResult(ctx context.Context, result *model.Result) error {
	if err := h.publisher.Publish(ctx, publisher.Event{
		SessionID:    h.sessionID,
		Kind:         publisher.KindTranscript,
		Text:         result.Transcript,
		LanguageCode: h.languageCode,
	}); err != nil {
		return fmt.Errorf("failed to publish transcript: %w", err)
	}
	return nil
}
