// Package translation wraps the Cloud Translation v3 API calls used by the
// client: translating text, detecting languages, and listing the supported
// languages and glossaries of a project location.
package translation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"cloud.google.com/go/translate/apiv3/translatepb"
	"google.golang.org/api/iterator"

	"github.com/hekt/voice-translation/internal/interfaces/translate"
	"github.com/hekt/voice-translation/internal/resource"
)

const (
	MimeTypePlain = "text/plain"
	MimeTypeHTML  = "text/html"
)

// Settings provides the language pair and glossary switch. It is consulted on
// every TranslateText call so changes apply without rebuilding the service.
type Settings interface {
	SourceLanguageCode(ctx context.Context) (string, error)
	TargetLanguageCode(ctx context.Context) (string, error)
	GlossaryEnabled(ctx context.Context) (bool, error)
}

type Service struct {
	client     translate.Client
	settings   Settings
	projectID  string
	locationID string
	glossaryID string
	mimeType   string
}

type options struct {
	locationID string
	glossaryID string
	mimeType   string
}

type Option func(*options) error

func WithLocationID(locationID string) Option {
	return func(o *options) error {
		if locationID == "" {
			return errors.New("location ID must be specified")
		}
		o.locationID = locationID
		return nil
	}
}

func WithGlossaryID(glossaryID string) Option {
	return func(o *options) error {
		o.glossaryID = glossaryID
		return nil
	}
}

func WithMimeType(mimeType string) Option {
	return func(o *options) error {
		if mimeType != MimeTypePlain && mimeType != MimeTypeHTML {
			return fmt.Errorf("unsupported mime type: %s", mimeType)
		}
		o.mimeType = mimeType
		return nil
	}
}

func New(client translate.Client, settings Settings, projectID string, opts ...Option) (*Service, error) {
	if client == nil {
		return nil, errors.New("client must be specified")
	}
	if settings == nil {
		return nil, errors.New("settings must be specified")
	}
	if projectID == "" {
		return nil, errors.New("project ID must be specified")
	}

	o := &options{
		locationID: resource.DefaultLocationID,
		mimeType:   MimeTypePlain,
	}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	return &Service{
		client:     client,
		settings:   settings,
		projectID:  projectID,
		locationID: o.locationID,
		glossaryID: o.glossaryID,
		mimeType:   o.mimeType,
	}, nil
}

func (s *Service) parent() string {
	return resource.LocationName(s.projectID, s.locationID)
}

// TranslateText translates text with the current language settings. An empty
// source language code lets the API detect the source language.
func (s *Service) TranslateText(ctx context.Context, text string) (*translatepb.TranslateTextResponse, error) {
	req, err := s.translateTextRequest(ctx, text)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.TranslateText(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to translate text: %w", err)
	}

	slog.Debug("TextToTranslationService: text translated",
		"source", req.GetSourceLanguageCode(), "target", req.GetTargetLanguageCode())

	return resp, nil
}

func (s *Service) translateTextRequest(ctx context.Context, text string) (*translatepb.TranslateTextRequest, error) {
	source, err := s.settings.SourceLanguageCode(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get source language code: %w", err)
	}
	target, err := s.settings.TargetLanguageCode(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get target language code: %w", err)
	}
	if target == "" {
		return nil, errors.New("target language code must be specified")
	}
	useGlossary, err := s.settings.GlossaryEnabled(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get glossary setting: %w", err)
	}

	req := &translatepb.TranslateTextRequest{
		Contents:           []string{text},
		MimeType:           s.mimeType,
		SourceLanguageCode: source,
		TargetLanguageCode: target,
		Parent:             s.parent(),
	}
	if useGlossary {
		if s.glossaryID == "" {
			return nil, errors.New("glossary ID must be specified to use a glossary")
		}
		req.GlossaryConfig = &translatepb.TranslateTextGlossaryConfig{
			Glossary: resource.GlossaryName(s.projectID, s.locationID, s.glossaryID),
		}
	}

	return req, nil
}

func (s *Service) DetectLanguage(ctx context.Context, text string) (*translatepb.DetectLanguageResponse, error) {
	resp, err := s.client.DetectLanguage(ctx, &translatepb.DetectLanguageRequest{
		Parent:   s.parent(),
		Source:   &translatepb.DetectLanguageRequest_Content{Content: text},
		MimeType: s.mimeType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to detect language: %w", err)
	}
	return resp, nil
}

// GetLanguageCodes returns the languages the project location can translate.
func (s *Service) GetLanguageCodes(ctx context.Context) (*translatepb.SupportedLanguages, error) {
	resp, err := s.client.GetSupportedLanguages(ctx, &translatepb.GetSupportedLanguagesRequest{
		Parent: s.parent(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get supported languages: %w", err)
	}
	return resp, nil
}

// ListGlossaries returns every glossary of the project location, following
// page tokens until the listing is exhausted.
func (s *Service) ListGlossaries(ctx context.Context) ([]*translatepb.Glossary, error) {
	it := s.client.ListGlossaries(ctx, &translatepb.ListGlossariesRequest{
		Parent: s.parent(),
	})

	var glossaries []*translatepb.Glossary
	for {
		g, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list glossaries: %w", err)
		}
		glossaries = append(glossaries, g)
	}

	return glossaries, nil
}

// TranslatedTexts returns the translated texts of resp. The glossary
// translations win when the request used a glossary.
func TranslatedTexts(resp *translatepb.TranslateTextResponse) []string {
	translations := resp.GetTranslations()
	if len(resp.GetGlossaryTranslations()) > 0 {
		translations = resp.GetGlossaryTranslations()
	}

	texts := make([]string, 0, len(translations))
	for _, t := range translations {
		texts = append(texts, t.GetTranslatedText())
	}
	return texts
}

func (s *Service) Close() error {
	if err := s.client.Close(); err != nil {
		return fmt.Errorf("failed to close client: %w", err)
	}
	return nil
}
