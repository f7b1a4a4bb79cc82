// Package speechrecognition streams raw LINEAR16 audio to the Speech-to-Text
// StreamingRecognize endpoint and relays every response to a handler.
package speechrecognition

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"cloud.google.com/go/speech/apiv1/speechpb"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/hekt/voice-translation/internal/interfaces/speech"
)

// CompletionHandler receives each response of a stream, or the error that
// ended it. It is called from the stream's receive goroutine.
type CompletionHandler func(resp *speechpb.StreamingRecognizeResponse, err error)

type Service struct {
	client  speech.Client
	options *options
	now     func() time.Time

	mu sync.Mutex
	// current is the stream audio is sent to; nil when not streaming.
	current *session
	// receiving holds every stream whose responses are still being read.
	receiving map[*session]struct{}
}

type session struct {
	stream    speechpb.Speech_StreamingRecognizeClient
	cancel    context.CancelFunc
	startedAt time.Time
	done      chan struct{}

	// sendMu serializes Send on the stream.
	sendMu sync.Mutex

	// mu guards sending and closeRequested.
	mu             sync.Mutex
	sending        bool
	closeRequested bool
}

// send sends req unless the stream was half-closed. It is called without
// Service.mu held so a Send blocked by flow control never blocks the service.
func (sess *session) send(req *speechpb.StreamingRecognizeRequest) error {
	sess.sendMu.Lock()
	defer sess.sendMu.Unlock()

	sess.mu.Lock()
	if sess.closeRequested {
		sess.mu.Unlock()
		slog.Debug("SpeechRecognitionService: audio dropped, stream already stopped")
		return nil
	}
	sess.sending = true
	sess.mu.Unlock()

	err := sess.stream.Send(req)

	sess.mu.Lock()
	sess.sending = false
	closePending := sess.closeRequested
	sess.mu.Unlock()

	if closePending {
		if err := sess.stream.CloseSend(); err != nil {
			slog.Error(fmt.Sprintf("failed to close send direction of stream: %v", err))
		}
	}
	return err
}

// closeSend half-closes the stream. When a Send is in flight the sender
// half-closes it once Send returns.
func (sess *session) closeSend() error {
	sess.mu.Lock()
	if sess.closeRequested {
		sess.mu.Unlock()
		return nil
	}
	sess.closeRequested = true
	sending := sess.sending
	sess.mu.Unlock()

	if sending {
		return nil
	}
	return sess.stream.CloseSend()
}

func New(client speech.Client, opts ...Option) (*Service, error) {
	if client == nil {
		return nil, errors.New("client must be specified")
	}

	options := defaultOptions()
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	return &Service{
		client:    client,
		options:   options,
		now:       time.Now,
		receiving: make(map[*session]struct{}),
	}, nil
}

// StreamAudioData sends audio on the current stream. The first call opens the
// stream with ctx, sends the recognition config and starts delivering
// responses to completion; later calls reuse that stream and ignore
// completion. The stream lives until StopStreaming, the end of ctx, or the
// server closing it.
func (s *Service) StreamAudioData(ctx context.Context, audio []byte, completion CompletionHandler) error {
	sess, err := s.currentSession(ctx, completion)
	if err != nil {
		return err
	}

	if len(audio) == 0 {
		return nil
	}

	if err := sess.send(&speechpb.StreamingRecognizeRequest{
		StreamingRequest: &speechpb.StreamingRecognizeRequest_AudioContent{
			AudioContent: audio,
		},
	}); err != nil {
		// the server ended the stream, the receive loop reports its status.
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("failed to send audio data: %w", err)
	}

	return nil
}

// currentSession returns the stream to send to, rotating it when it reached
// the max stream duration and opening one when there is none.
func (s *Service) currentSession(ctx context.Context, completion CompletionHandler) (*session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil && s.expiredLocked(s.current) {
		slog.Debug("SpeechRecognitionService: max stream duration reached")
		if err := s.stopLocked(); err != nil {
			return nil, err
		}
	}

	if s.current == nil {
		if completion == nil {
			return nil, errors.New("completion handler must be specified")
		}
		if err := s.openLocked(ctx, completion); err != nil {
			return nil, err
		}
	}
	return s.current, nil
}

// StopStreaming half-closes the current stream. Responses already in flight
// are still delivered. It does not wait for a Send in progress.
func (s *Service) StopStreaming() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}
	return s.stopLocked()
}

func (s *Service) IsStreaming() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current != nil
}

// Wait blocks until every stream opened so far has delivered its last response.
func (s *Service) Wait(ctx context.Context) error {
	s.mu.Lock()
	sessions := make([]*session, 0, len(s.receiving))
	for sess := range s.receiving {
		sessions = append(sessions, sess)
	}
	s.mu.Unlock()

	for _, sess := range sessions {
		select {
		case <-sess.done:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// Close stops streaming, abandons streams still being read and closes the
// client. Sends blocked on an abandoned stream return with an error.
func (s *Service) Close() error {
	s.mu.Lock()
	if s.current != nil {
		if err := s.stopLocked(); err != nil {
			slog.Error(fmt.Sprintf("failed to stop streaming: %v", err))
		}
	}
	sessions := make([]*session, 0, len(s.receiving))
	for sess := range s.receiving {
		sessions = append(sessions, sess)
	}
	s.mu.Unlock()

	for _, sess := range sessions {
		sess.cancel()
	}

	if err := s.client.Close(); err != nil {
		return fmt.Errorf("failed to close client: %w", err)
	}
	return nil
}

func (s *Service) openLocked(ctx context.Context, completion CompletionHandler) error {
	streamCtx, cancel := context.WithCancel(ctx)

	stream, err := s.client.StreamingRecognize(streamCtx)
	if err != nil {
		cancel()
		return fmt.Errorf("failed to create stream: %w", err)
	}

	if err := stream.Send(s.options.configRequest()); err != nil && !errors.Is(err, io.EOF) {
		cancel()
		return fmt.Errorf("failed to send initial request: %w", err)
	}

	sess := &session{
		stream:    stream,
		cancel:    cancel,
		startedAt: s.now(),
		done:      make(chan struct{}),
	}
	s.current = sess
	s.receiving[sess] = struct{}{}

	go s.receive(sess, completion)

	slog.Debug("SpeechRecognitionService: stream opened")

	return nil
}

func (s *Service) stopLocked() error {
	sess := s.current
	s.current = nil

	if err := sess.closeSend(); err != nil {
		return fmt.Errorf("failed to close send direction of stream: %w", err)
	}

	slog.Debug("SpeechRecognitionService: stream half-closed")

	return nil
}

func (s *Service) expiredLocked(sess *session) bool {
	if s.options.maxStreamDuration <= 0 {
		return false
	}
	return s.now().Sub(sess.startedAt) >= s.options.maxStreamDuration
}

func (s *Service) receive(sess *session, completion CompletionHandler) {
	defer close(sess.done)
	defer sess.cancel()
	defer s.release(sess)

	for {
		resp, err := sess.stream.Recv()
		if err == io.EOF {
			slog.Debug("SpeechRecognitionService: EOF received")
			return
		}
		if err != nil {
			// the caller's context was canceled, nothing to report.
			if status.Code(err) == codes.Canceled || errors.Is(err, context.Canceled) {
				return
			}
			completion(nil, fmt.Errorf("failed to receive response: %w", err))
			return
		}
		completion(resp, nil)
	}
}

// release forgets sess once its responses are exhausted so the next audio
// chunk opens a fresh stream.
func (s *Service) release(sess *session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == sess {
		s.current = nil
	}
	delete(s.receiving, sess)
}
