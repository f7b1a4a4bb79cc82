package recognizer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

const MinBufferSize = 1024

type AudioReader struct {
	reader     io.Reader
	audioCh    chan<- []byte
	bufferSize int
}

func NewAudioReader(
	reader io.Reader,
	audioCh chan<- []byte,
	bufferSize int,
) *AudioReader {
	return &AudioReader{
		reader:     reader,
		audioCh:    audioCh,
		bufferSize: bufferSize,
	}
}

// Start reads chunks of at most bufferSize bytes until EOF and closes the
// audio channel when it returns.
func (r *AudioReader) Start(ctx context.Context) error {
	slog.Debug("AudioReader: start")
	defer close(r.audioCh)

	buf := make([]byte, r.bufferSize)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		// Read is not interruptible. On Ctrl-C the audio source in the same
		// process group exits too, so stdin reaches EOF.
		n, err := r.reader.Read(buf)
		if n > 0 {
			// Send copied buffer to audio channel.
			select {
			case r.audioCh <- append(make([]byte, 0, n), buf[:n]...):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		if err == io.EOF {
			slog.Debug("AudioReader: EOF received")
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read audio: %w", err)
		}
	}
}
