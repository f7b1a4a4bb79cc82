// Package recognizer runs the recognition pipeline: audio is read from a
// reader, streamed for recognition, and the results are written out as they
// arrive.
package recognizer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"cloud.google.com/go/speech/apiv1/speechpb"
	"golang.org/x/sync/errgroup"

	"github.com/hekt/voice-translation/internal/recognizer/model"
)

type stage interface {
	Start(ctx context.Context) error
}

type Recognizer struct {
	audioReader       stage
	audioSender       stage
	responseProcessor stage
	resultWriter      stage
	// processMonitor is nil when the inactivity timeout is disabled.
	processMonitor stage
}

func New(
	service SpeechStreamer,
	audioReader io.Reader,
	resultWriter io.Writer,
	interimWriter io.Writer,
	bufferSize int,
	inactivityTimeout time.Duration,
	handlers ...FinalResultHandler,
) (*Recognizer, error) {
	if service == nil {
		return nil, errors.New("service must be specified")
	}
	if audioReader == nil {
		return nil, errors.New("audio reader must be specified")
	}
	if resultWriter == nil {
		return nil, errors.New("result writer must be specified")
	}
	if interimWriter == nil {
		return nil, errors.New("interim writer must be specified")
	}
	if bufferSize < MinBufferSize {
		return nil, errors.New("buffer size must be greater than or equal to 1024")
	}
	if inactivityTimeout < 0 {
		return nil, errors.New("inactivity timeout must not be negative")
	}
	for _, h := range handlers {
		if h == nil {
			return nil, errors.New("final result handler must not be nil")
		}
	}

	// not sure what is the appropriate buffer size.
	audioCh := make(chan []byte, 10)
	responseCh := make(chan *speechpb.StreamingRecognizeResponse, 10)
	resultCh := make(chan []*model.Result, 10)

	r := &Recognizer{
		audioReader: NewAudioReader(audioReader, audioCh, bufferSize),
		audioSender: NewAudioSender(service, audioCh, responseCh),
		resultWriter: NewResultWriter(
			resultCh,
			&DecoratedResultWriter{Writer: resultWriter},
			&DecoratedInterimWriter{Writer: interimWriter},
			handlers...,
		),
	}

	var processCh chan struct{}
	if inactivityTimeout > 0 {
		processCh = make(chan struct{})
		r.processMonitor = NewProcessMonitor(processCh, inactivityTimeout)
	}
	r.responseProcessor = NewResponseProcessor(responseCh, resultCh, processCh)

	return r, nil
}

// Start runs the pipeline until the audio is exhausted and every result has
// been written, a stage fails, or the process is interrupted.
func (r *Recognizer) Start(ctx context.Context) error {
	slog.Debug("recognizer started")

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		if err := r.audioReader.Start(ctx); err != nil {
			return fmt.Errorf("error occured in audio reader: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		if err := r.audioSender.Start(ctx); err != nil {
			return fmt.Errorf("error occured in audio sender: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		if err := r.responseProcessor.Start(ctx); err != nil {
			return fmt.Errorf("error occured in response processor: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		if err := r.resultWriter.Start(ctx); err != nil {
			return fmt.Errorf("error occured in result writer: %w", err)
		}
		return nil
	})
	if r.processMonitor != nil {
		eg.Go(func() error {
			if err := r.processMonitor.Start(ctx); err != nil {
				return fmt.Errorf("error occured in process monitor: %w", err)
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return err
	}

	slog.Debug("recognizer stopped")

	return nil
}
