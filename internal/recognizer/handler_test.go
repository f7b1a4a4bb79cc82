package recognizer

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"cloud.google.com/go/translate/apiv3/translatepb"
	"github.com/google/go-cmp/cmp"

	"github.com/hekt/voice-translation/internal/publisher"
	"github.com/hekt/voice-translation/internal/recognizer/model"
)

func TestNewTranslationHandler(t *testing.T) {
	tests := []struct {
		name       string
		translator Translator
		writer     io.Writer
		wantErr    bool
	}{
		{
			name:       "success",
			translator: &TranslatorMock{},
			writer:     &bytes.Buffer{},
		},
		{
			name:    "no translator",
			writer:  &bytes.Buffer{},
			wantErr: true,
		},
		{
			name:       "no writer",
			translator: &TranslatorMock{},
			wantErr:    true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTranslationHandler(tt.translator, tt.writer, nil, "session")
			if (err != nil) != tt.wantErr {
				t.Errorf("NewTranslationHandler() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTranslationHandler_HandleFinalResult(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		translator := &TranslatorMock{
			TranslateTextFunc: func(ctx context.Context, text string) (*translatepb.TranslateTextResponse, error) {
				return &translatepb.TranslateTextResponse{
					Translations: []*translatepb.Translation{{TranslatedText: "zdravo svete"}},
				}, nil
			},
		}
		pub := &EventPublisherMock{
			PublishFunc: func(ctx context.Context, evt publisher.Event) error { return nil },
		}
		writer := &bytes.Buffer{}
		h, err := NewTranslationHandler(translator, writer, pub, "session-1")
		if err != nil {
			t.Fatalf("NewTranslationHandler() error = %v", err)
		}

		if err := h.HandleFinalResult(context.Background(), &model.Result{Transcript: "hello world", IsFinal: true}); err != nil {
			t.Fatalf("HandleFinalResult() error = %v", err)
		}

		if got, want := writer.String(), "zdravo svete"; got != want {
			t.Errorf("written = %q, want %q", got, want)
		}
		if got := translator.TranslateTextCalls(); len(got) != 1 || got[0].Text != "hello world" {
			t.Errorf("TranslateText calls = %v", got)
		}
		calls := pub.PublishCalls()
		if len(calls) != 1 {
			t.Fatalf("Publish calls = %d, want 1", len(calls))
		}
		want := publisher.Event{
			SessionID: "session-1",
			Kind:      publisher.KindTranslation,
			Text:      "zdravo svete",
		}
		if diff := cmp.Diff(want, calls[0].Evt); diff != "" {
			t.Errorf("event mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("glossary translations are preferred", func(t *testing.T) {
		translator := &TranslatorMock{
			TranslateTextFunc: func(ctx context.Context, text string) (*translatepb.TranslateTextResponse, error) {
				return &translatepb.TranslateTextResponse{
					Translations:         []*translatepb.Translation{{TranslatedText: "plain"}},
					GlossaryTranslations: []*translatepb.Translation{{TranslatedText: "glossary"}},
				}, nil
			},
		}
		writer := &bytes.Buffer{}
		h, err := NewTranslationHandler(translator, writer, nil, "session-1")
		if err != nil {
			t.Fatalf("NewTranslationHandler() error = %v", err)
		}

		if err := h.HandleFinalResult(context.Background(), &model.Result{Transcript: "hello"}); err != nil {
			t.Fatalf("HandleFinalResult() error = %v", err)
		}
		if got, want := writer.String(), "glossary"; got != want {
			t.Errorf("written = %q, want %q", got, want)
		}
	})

	t.Run("blank transcript", func(t *testing.T) {
		translator := &TranslatorMock{}
		h, err := NewTranslationHandler(translator, &bytes.Buffer{}, nil, "session-1")
		if err != nil {
			t.Fatalf("NewTranslationHandler() error = %v", err)
		}

		if err := h.HandleFinalResult(context.Background(), &model.Result{Transcript: "  "}); err != nil {
			t.Errorf("HandleFinalResult() error = %v", err)
		}
		if got := len(translator.TranslateTextCalls()); got != 0 {
			t.Errorf("TranslateText calls = %d, want 0", got)
		}
	})

	t.Run("translate error", func(t *testing.T) {
		wantErr := errors.New("quota exceeded")
		translator := &TranslatorMock{
			TranslateTextFunc: func(ctx context.Context, text string) (*translatepb.TranslateTextResponse, error) {
				return nil, wantErr
			},
		}
		h, err := NewTranslationHandler(translator, &bytes.Buffer{}, nil, "session-1")
		if err != nil {
			t.Fatalf("NewTranslationHandler() error = %v", err)
		}

		if err := h.HandleFinalResult(context.Background(), &model.Result{Transcript: "hello"}); !errors.Is(err, wantErr) {
			t.Errorf("HandleFinalResult() error = %v, want %v", err, wantErr)
		}
	})

	t.Run("publish error", func(t *testing.T) {
		wantErr := errors.New("no responders")
		translator := &TranslatorMock{
			TranslateTextFunc: func(ctx context.Context, text string) (*translatepb.TranslateTextResponse, error) {
				return &translatepb.TranslateTextResponse{
					Translations: []*translatepb.Translation{{TranslatedText: "zdravo"}},
				}, nil
			},
		}
		pub := &EventPublisherMock{
			PublishFunc: func(ctx context.Context, evt publisher.Event) error { return wantErr },
		}
		h, err := NewTranslationHandler(translator, &bytes.Buffer{}, pub, "session-1")
		if err != nil {
			t.Fatalf("NewTranslationHandler() error = %v", err)
		}

		if err := h.HandleFinalResult(context.Background(), &model.Result{Transcript: "hello"}); !errors.Is(err, wantErr) {
			t.Errorf("HandleFinalResult() error = %v, want %v", err, wantErr)
		}
	})
}

func TestPublishHandler_HandleFinalResult(t *testing.T) {
	t.Run("no publisher", func(t *testing.T) {
		if _, err := NewPublishHandler(nil, "session-1", "en-US"); err == nil {
			t.Error("NewPublishHandler() error = nil, want an error")
		}
	})

	t.Run("success", func(t *testing.T) {
		pub := &EventPublisherMock{
			PublishFunc: func(ctx context.Context, evt publisher.Event) error { return nil },
		}
		h, err := NewPublishHandler(pub, "session-1", "en-US")
		if err != nil {
			t.Fatalf("NewPublishHandler() error = %v", err)
		}

		if err := h.HandleFinalResult(context.Background(), &model.Result{Transcript: "hello"}); err != nil {
			t.Fatalf("HandleFinalResult() error = %v", err)
		}

		calls := pub.PublishCalls()
		if len(calls) != 1 {
			t.Fatalf("Publish calls = %d, want 1", len(calls))
		}
		want := publisher.Event{
			SessionID:    "session-1",
			Kind:         publisher.KindTranscript,
			Text:         "hello",
			LanguageCode: "en-US",
		}
		if diff := cmp.Diff(want, calls[0].Evt); diff != "" {
			t.Errorf("event mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("error", func(t *testing.T) {
		wantErr := errors.New("connection closed")
		pub := &EventPublisherMock{
			PublishFunc: func(ctx context.Context, evt publisher.Event) error { return wantErr },
		}
		h, err := NewPublishHandler(pub, "session-1", "en-US")
		if err != nil {
			t.Fatalf("NewPublishHandler() error = %v", err)
		}

		if err := h.HandleFinalResult(context.Background(), &model.Result{Transcript: "hello"}); !errors.Is(err, wantErr) {
			t.Errorf("HandleFinalResult() error = %v, want %v", err, wantErr)
		}
	})
}
