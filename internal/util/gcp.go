package util

import (
	"context"
	"errors"
	"fmt"

	speech "cloud.google.com/go/speech/apiv1"
	translate "cloud.google.com/go/translate/apiv3"
	"google.golang.org/api/option"

	"github.com/hekt/voice-translation/internal/auth"
	"github.com/hekt/voice-translation/internal/config"
	"github.com/hekt/voice-translation/internal/metrics"
	"github.com/hekt/voice-translation/internal/translation"
)

// ClientOptions returns the options shared by the Cloud clients: the
// authorization headers first, then the RPC metrics.
func ClientOptions(authorizer *auth.Authorizer, endpoint string) []option.ClientOption {
	opts := authorizer.ClientOptions(endpoint)
	for _, o := range metrics.DialOptions() {
		opts = append(opts, option.WithGRPCDialOption(o))
	}
	return opts
}

func NewSpeechClient(
	ctx context.Context,
	authorizer *auth.Authorizer,
	endpoint string,
	opts ...option.ClientOption,
) (*speech.Client, error) {
	if authorizer == nil {
		return nil, errors.New("authorizer must be specified")
	}

	client, err := speech.NewClient(ctx, append(ClientOptions(authorizer, endpoint), opts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create speech client: %w", err)
	}
	return client, nil
}

func NewTranslationClient(
	ctx context.Context,
	authorizer *auth.Authorizer,
	endpoint string,
	opts ...option.ClientOption,
) (*translate.TranslationClient, error) {
	if authorizer == nil {
		return nil, errors.New("authorizer must be specified")
	}

	client, err := translate.NewTranslationClient(ctx, append(ClientOptions(authorizer, endpoint), opts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create translation client: %w", err)
	}
	return client, nil
}

// TranslationOptions maps the configuration to translation service options.
func TranslationOptions(cfg config.Config) []translation.Option {
	opts := []translation.Option{
		translation.WithGlossaryID(cfg.GlossaryID),
		translation.WithMimeType(cfg.MimeType),
	}
	if cfg.LocationID != "" {
		opts = append(opts, translation.WithLocationID(cfg.LocationID))
	}
	return opts
}
