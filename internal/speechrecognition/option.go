package speechrecognition

import (
	"errors"
	"time"

	"cloud.google.com/go/speech/apiv1/speechpb"
)

const (
	DefaultSampleRate      = 16000
	DefaultLanguageCode    = "en-US"
	DefaultMaxAlternatives = 30

	maxAlternativesLimit = 30
)

type options struct {
	sampleRate      int32
	languageCode    string
	maxAlternatives int32
	wordTimeOffsets bool
	interimResults  bool
	singleUtterance bool

	// maxStreamDuration is the age after which the next audio chunk opens a
	// new stream. Zero disables rotation.
	maxStreamDuration time.Duration
}

func defaultOptions() *options {
	return &options{
		sampleRate:      DefaultSampleRate,
		languageCode:    DefaultLanguageCode,
		maxAlternatives: DefaultMaxAlternatives,
		wordTimeOffsets: true,
		interimResults:  true,
		singleUtterance: false,
	}
}

type Option func(*options) error

func WithSampleRate(sampleRate int) Option {
	return func(o *options) error {
		if sampleRate <= 0 {
			return errors.New("sample rate must be positive")
		}
		o.sampleRate = int32(sampleRate)
		return nil
	}
}

func WithLanguageCode(languageCode string) Option {
	return func(o *options) error {
		if languageCode == "" {
			return errors.New("language code must be 1 or more characters")
		}
		o.languageCode = languageCode
		return nil
	}
}

func WithMaxAlternatives(maxAlternatives int) Option {
	return func(o *options) error {
		if maxAlternatives < 0 || maxAlternatives > maxAlternativesLimit {
			return errors.New("max alternatives must be between 0 and 30")
		}
		o.maxAlternatives = int32(maxAlternatives)
		return nil
	}
}

func WithWordTimeOffsets(enabled bool) Option {
	return func(o *options) error {
		o.wordTimeOffsets = enabled
		return nil
	}
}

func WithInterimResults(enabled bool) Option {
	return func(o *options) error {
		o.interimResults = enabled
		return nil
	}
}

func WithSingleUtterance(enabled bool) Option {
	return func(o *options) error {
		o.singleUtterance = enabled
		return nil
	}
}

func WithMaxStreamDuration(d time.Duration) Option {
	return func(o *options) error {
		if d < 0 {
			return errors.New("max stream duration must not be negative")
		}
		o.maxStreamDuration = d
		return nil
	}
}

// configRequest is the first message of every stream.
func (o *options) configRequest() *speechpb.StreamingRecognizeRequest {
	return &speechpb.StreamingRecognizeRequest{
		StreamingRequest: &speechpb.StreamingRecognizeRequest_StreamingConfig{
			StreamingConfig: &speechpb.StreamingRecognitionConfig{
				Config: &speechpb.RecognitionConfig{
					Encoding:              speechpb.RecognitionConfig_LINEAR16,
					SampleRateHertz:       o.sampleRate,
					LanguageCode:          o.languageCode,
					MaxAlternatives:       o.maxAlternatives,
					EnableWordTimeOffsets: o.wordTimeOffsets,
				},
				SingleUtterance: o.singleUtterance,
				InterimResults:  o.interimResults,
			},
		},
	}
}
