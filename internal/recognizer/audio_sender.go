package recognizer

import (
	"context"
	"fmt"
	"log/slog"

	"cloud.google.com/go/speech/apiv1/speechpb"

	"github.com/hekt/voice-translation/internal/speechrecognition"
)

// SpeechStreamer is the part of speechrecognition.Service the pipeline drives.
//
//go:generate moq -rm -out speech_streamer_mock.go . SpeechStreamer
type SpeechStreamer interface {
	StreamAudioData(ctx context.Context, audio []byte, completion speechrecognition.CompletionHandler) error
	StopStreaming() error
	Wait(ctx context.Context) error
}

var _ SpeechStreamer = (*speechrecognition.Service)(nil)

type AudioSender struct {
	service    SpeechStreamer
	audioCh    <-chan []byte
	responseCh chan<- *speechpb.StreamingRecognizeResponse
}

func NewAudioSender(
	service SpeechStreamer,
	audioCh <-chan []byte,
	responseCh chan<- *speechpb.StreamingRecognizeResponse,
) *AudioSender {
	return &AudioSender{
		service:    service,
		audioCh:    audioCh,
		responseCh: responseCh,
	}
}

// Start streams every audio chunk and forwards the responses. When the audio
// channel is closed it stops streaming, waits for the last responses and
// closes the response channel.
func (s *AudioSender) Start(ctx context.Context) error {
	slog.Debug("AudioSender: start")

	errCh := make(chan error, 1)
	completion := func(resp *speechpb.StreamingRecognizeResponse, err error) {
		if err != nil {
			select {
			case errCh <- err:
			default:
			}
			return
		}
		select {
		case s.responseCh <- resp:
		case <-ctx.Done():
		}
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-errCh:
			return fmt.Errorf("failed to recognize audio: %w", err)
		case audio, ok := <-s.audioCh:
			if !ok {
				return s.finish(ctx, errCh)
			}
			if err := s.service.StreamAudioData(ctx, audio, completion); err != nil {
				return fmt.Errorf("failed to stream audio data: %w", err)
			}
		}
	}
}

func (s *AudioSender) finish(ctx context.Context, errCh <-chan error) error {
	slog.Debug("AudioSender: audio channel closed")

	if err := s.service.StopStreaming(); err != nil {
		return fmt.Errorf("failed to stop streaming: %w", err)
	}
	if err := s.service.Wait(ctx); err != nil {
		return err
	}

	// no completion can run after Wait, so the channel is safe to close.
	close(s.responseCh)

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to recognize audio: %w", err)
	default:
		return nil
	}
}
