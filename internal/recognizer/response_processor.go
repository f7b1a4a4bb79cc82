package recognizer

import (
	"context"
	"fmt"
	"log/slog"

	"cloud.google.com/go/speech/apiv1/speechpb"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/hekt/voice-translation/internal/recognizer/model"
)

type ResponseProcessor struct {
	responseCh <-chan *speechpb.StreamingRecognizeResponse
	resultCh   chan<- []*model.Result
	// processCh is notified for every response. It may be nil.
	processCh chan<- struct{}
}

func NewResponseProcessor(
	responseCh <-chan *speechpb.StreamingRecognizeResponse,
	resultCh chan<- []*model.Result,
	processCh chan<- struct{},
) *ResponseProcessor {
	return &ResponseProcessor{
		responseCh: responseCh,
		resultCh:   resultCh,
		processCh:  processCh,
	}
}

// Start converts responses into results until the response channel is
// closed. It closes the result and process channels when it returns.
func (p *ResponseProcessor) Start(ctx context.Context) error {
	slog.Debug("ResponseProcessor: start")
	defer func() {
		close(p.resultCh)
		if p.processCh != nil {
			close(p.processCh)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case resp, ok := <-p.responseCh:
			if !ok {
				slog.Debug("ResponseProcessor: response channel closed")
				return nil
			}

			if st := resp.GetError(); st != nil && codes.Code(st.GetCode()) != codes.OK {
				return fmt.Errorf("recognition failed: %w", status.ErrorProto(st))
			}
			if resp.GetSpeechEventType() == speechpb.StreamingRecognizeResponse_END_OF_SINGLE_UTTERANCE {
				slog.Debug("ResponseProcessor: end of single utterance")
			}

			if p.processCh != nil {
				select {
				case p.processCh <- struct{}{}:
				case <-ctx.Done():
					return ctx.Err()
				}
			}

			results := toResults(resp)
			if len(results) == 0 {
				continue
			}

			select {
			case p.resultCh <- results:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}

func toResults(resp *speechpb.StreamingRecognizeResponse) []*model.Result {
	results := make([]*model.Result, 0, len(resp.GetResults()))
	for _, result := range resp.GetResults() {
		if len(result.GetAlternatives()) == 0 {
			continue
		}

		results = append(results, &model.Result{
			Transcript: result.GetAlternatives()[0].GetTranscript(),
			IsFinal:    result.GetIsFinal(),
			Stability:  result.GetStability(),
		})
	}
	return results
}
