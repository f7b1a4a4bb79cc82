package recognize

import (
	"errors"
	"io"
	"time"

	"google.golang.org/api/option"

	"github.com/hekt/voice-translation/internal/recognizer"
)

type options struct {
	outputFilePath      string
	translationFilePath string
	bufferSize          int
	inactivityTimeout   time.Duration

	translate          bool
	sourceLanguageCode string
	targetLanguageCode string
	glossary           *bool

	audioReader   io.Reader
	interimWriter io.Writer
	clientOptions []option.ClientOption
}

type Option func(*options) error

func WithOutputFilePath(outputFilePath string) Option {
	return func(o *options) error {
		if outputFilePath == "" {
			return errors.New("output file path must be 1 or more characters")
		}
		o.outputFilePath = outputFilePath
		return nil
	}
}

// WithTranslationFilePath sets where translations are written. It defaults to
// the output file path with a ".translated" suffix.
func WithTranslationFilePath(translationFilePath string) Option {
	return func(o *options) error {
		if translationFilePath == "" {
			return errors.New("translation file path must be 1 or more characters")
		}
		o.translationFilePath = translationFilePath
		return nil
	}
}

func WithBufferSize(bufferSize int) Option {
	return func(o *options) error {
		if bufferSize < recognizer.MinBufferSize {
			return errors.New("buffer size must be greater than or equal to 1024")
		}
		o.bufferSize = bufferSize
		return nil
	}
}

// WithInactivityTimeout stops recognition when no response arrives for the
// duration. Zero disables it.
func WithInactivityTimeout(inactivityTimeout time.Duration) Option {
	return func(o *options) error {
		if inactivityTimeout < 0 {
			return errors.New("inactivity timeout must not be negative")
		}
		o.inactivityTimeout = inactivityTimeout
		return nil
	}
}

// WithTranslation translates every final result.
func WithTranslation(enabled bool) Option {
	return func(o *options) error {
		o.translate = enabled
		return nil
	}
}

// WithSourceLanguageCode overrides the stored source language preference.
func WithSourceLanguageCode(languageCode string) Option {
	return func(o *options) error {
		if languageCode == "" {
			return errors.New("source language code must be 1 or more characters")
		}
		o.sourceLanguageCode = languageCode
		return nil
	}
}

// WithTargetLanguageCode overrides the stored target language preference.
func WithTargetLanguageCode(languageCode string) Option {
	return func(o *options) error {
		if languageCode == "" {
			return errors.New("target language code must be 1 or more characters")
		}
		o.targetLanguageCode = languageCode
		return nil
	}
}

// WithGlossary overrides the stored glossary preference.
func WithGlossary(enabled bool) Option {
	return func(o *options) error {
		o.glossary = &enabled
		return nil
	}
}

func WithAudioReader(audioReader io.Reader) Option {
	return func(o *options) error {
		if audioReader == nil {
			return errors.New("audio reader must be specified")
		}
		o.audioReader = audioReader
		return nil
	}
}

func WithInterimWriter(interimWriter io.Writer) Option {
	return func(o *options) error {
		if interimWriter == nil {
			return errors.New("interim writer must be specified")
		}
		o.interimWriter = interimWriter
		return nil
	}
}

// WithClientOptions appends options to both Cloud clients.
func WithClientOptions(opts ...option.ClientOption) Option {
	return func(o *options) error {
		o.clientOptions = append(o.clientOptions, opts...)
		return nil
	}
}
