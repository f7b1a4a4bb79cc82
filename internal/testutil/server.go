package testutil

import (
	"context"

	"cloud.google.com/go/speech/apiv1/speechpb"
	"cloud.google.com/go/translate/apiv3/translatepb"
)

var _ speechpb.SpeechServer = (*SpeechServerFake)(nil)

// SpeechServerFake serves StreamingRecognize with StreamingRecognizeFunc.
// The other methods answer codes.Unimplemented.
type SpeechServerFake struct {
	speechpb.UnimplementedSpeechServer

	StreamingRecognizeFunc func(stream speechpb.Speech_StreamingRecognizeServer) error
}

func (f *SpeechServerFake) StreamingRecognize(stream speechpb.Speech_StreamingRecognizeServer) error {
	return f.StreamingRecognizeFunc(stream)
}

var _ translatepb.TranslationServiceServer = (*TranslationServerFake)(nil)

// TranslationServerFake serves the translation methods used by this module.
// A nil func answers codes.Unimplemented.
type TranslationServerFake struct {
	translatepb.UnimplementedTranslationServiceServer

	TranslateTextFunc         func(ctx context.Context, req *translatepb.TranslateTextRequest) (*translatepb.TranslateTextResponse, error)
	DetectLanguageFunc        func(ctx context.Context, req *translatepb.DetectLanguageRequest) (*translatepb.DetectLanguageResponse, error)
	GetSupportedLanguagesFunc func(ctx context.Context, req *translatepb.GetSupportedLanguagesRequest) (*translatepb.SupportedLanguages, error)
	ListGlossariesFunc        func(ctx context.Context, req *translatepb.ListGlossariesRequest) (*translatepb.ListGlossariesResponse, error)
}

func (f *TranslationServerFake) TranslateText(ctx context.Context, req *translatepb.TranslateTextRequest) (*translatepb.TranslateTextResponse, error) {
	if f.TranslateTextFunc == nil {
		return f.UnimplementedTranslationServiceServer.TranslateText(ctx, req)
	}
	return f.TranslateTextFunc(ctx, req)
}

func (f *TranslationServerFake) DetectLanguage(ctx context.Context, req *translatepb.DetectLanguageRequest) (*translatepb.DetectLanguageResponse, error) {
	if f.DetectLanguageFunc == nil {
		return f.UnimplementedTranslationServiceServer.DetectLanguage(ctx, req)
	}
	return f.DetectLanguageFunc(ctx, req)
}

func (f *TranslationServerFake) GetSupportedLanguages(ctx context.Context, req *translatepb.GetSupportedLanguagesRequest) (*translatepb.SupportedLanguages, error) {
	if f.GetSupportedLanguagesFunc == nil {
		return f.UnimplementedTranslationServiceServer.GetSupportedLanguages(ctx, req)
	}
	return f.GetSupportedLanguagesFunc(ctx, req)
}

func (f *TranslationServerFake) ListGlossaries(ctx context.Context, req *translatepb.ListGlossariesRequest) (*translatepb.ListGlossariesResponse, error) {
	if f.ListGlossariesFunc == nil {
		return f.UnimplementedTranslationServiceServer.ListGlossaries(ctx, req)
	}
	return f.ListGlossariesFunc(ctx, req)
}
