package recognizer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/hekt/voice-translation/internal/metrics"
	"github.com/hekt/voice-translation/internal/recognizer/model"
)

// FinalResultHandler is called with every final result after it has been
// written. Handler errors are logged and do not stop recognition.
type FinalResultHandler interface {
	HandleFinalResult(ctx context.Context, result *model.Result) error
}

type ResultWriter struct {
	resultCh      <-chan []*model.Result
	resultWriter  io.Writer
	interimWriter io.Writer
	handlers      []FinalResultHandler
}

func NewResultWriter(
	resultCh <-chan []*model.Result,
	resultWriter io.Writer,
	interimWriter io.Writer,
	handlers ...FinalResultHandler,
) *ResultWriter {
	return &ResultWriter{
		resultCh:      resultCh,
		resultWriter:  resultWriter,
		interimWriter: interimWriter,
		handlers:      handlers,
	}
}

// Start writes results until the result channel is closed. An interim result
// still pending at that point is written as a final one.
func (w *ResultWriter) Start(ctx context.Context) error {
	slog.Debug("ResultWriter: start")

	var buf bytes.Buffer
	var interimResult string
	defer func() {
		if interimResult == "" {
			return
		}
		// ctx may already be canceled, the pending result is still worth keeping.
		if err := w.writeFinal(context.WithoutCancel(ctx), &model.Result{
			Transcript: interimResult,
			IsFinal:    true,
		}); err != nil {
			slog.Error(fmt.Sprintf("failed to write interim result: %v", err))
		}
		slog.Debug("ResultWriter: interim result written")
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case results, ok := <-w.resultCh:
			if !ok {
				slog.Debug("ResultWriter: result channel closed")
				return nil
			}

			buf.Reset()
			for _, result := range results {
				if !result.IsFinal {
					buf.WriteString(result.Transcript)
					continue
				}

				slog.Debug("ResultWriter: final result received")

				if err := w.writeFinal(ctx, result); err != nil {
					return err
				}
				interimResult = ""
				buf.Reset()
			}

			if buf.Len() == 0 {
				continue
			}

			interimResult = buf.String()
			metrics.RecognitionResults.WithLabelValues("interim").Inc()
			if _, err := w.interimWriter.Write(buf.Bytes()); err != nil {
				return fmt.Errorf("failed to write interim result: %w", err)
			}
		}
	}
}

func (w *ResultWriter) writeFinal(ctx context.Context, result *model.Result) error {
	if _, err := w.resultWriter.Write([]byte(result.Transcript)); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	metrics.RecognitionResults.WithLabelValues("final").Inc()

	for _, h := range w.handlers {
		if err := h.HandleFinalResult(ctx, result); err != nil {
			slog.Error(fmt.Sprintf("failed to handle final result: %v", err))
		}
	}
	return nil
}
