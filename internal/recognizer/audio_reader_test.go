package recognizer

import (
	"bytes"
	"context"
	"errors"
	"io"
	"reflect"
	"testing"

	"github.com/hekt/voice-translation/internal/testutil"
)

func TestNewAudioReader(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		audioCh := make(chan []byte)
		audioReader := &bytes.Buffer{}
		got := NewAudioReader(audioReader, audioCh, 1024)

		want := &AudioReader{
			reader:     audioReader,
			audioCh:    audioCh,
			bufferSize: 1024,
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("NewAudioReader() = %v, want %v", got, want)
		}
	})
}

func TestAudioReader_Start(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		chunkSize := 16
		firstChunk := bytes.Repeat([]byte("a"), chunkSize)
		secondChunk := bytes.Repeat([]byte("b"), chunkSize)
		thirdChunk := []byte("c")
		audioReader := &testutil.ChunkReader{
			Chunks: [][]byte{firstChunk, secondChunk, thirdChunk},
		}
		audioCh := make(chan []byte, 3)

		r := NewAudioReader(audioReader, audioCh, chunkSize)
		if got := r.Start(context.Background()); got != nil {
			t.Errorf("AudioReader.Start() = %v, want nil", got)
		}

		var got [][]byte
		for chunk := range audioCh {
			got = append(got, chunk)
		}
		want := [][]byte{firstChunk, secondChunk, thirdChunk}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("audioCh = %v, want %v", got, want)
		}
	})

	t.Run("data returned with EOF", func(t *testing.T) {
		audioReader := &testutil.IOReaderMock{
			ReadFunc: func(p []byte) (int, error) {
				return copy(p, "last"), io.EOF
			},
		}
		audioCh := make(chan []byte, 1)

		r := NewAudioReader(audioReader, audioCh, 1024)
		if got := r.Start(context.Background()); got != nil {
			t.Errorf("AudioReader.Start() = %v, want nil", got)
		}
		if got := string(<-audioCh); got != "last" {
			t.Errorf("audioCh = %q, want %q", got, "last")
		}
		if _, ok := <-audioCh; ok {
			t.Error("audioCh is not closed")
		}
	})

	t.Run("read error", func(t *testing.T) {
		wantErr := errors.New("read error")
		audioReader := &testutil.IOReaderMock{
			ReadFunc: func(p []byte) (int, error) {
				return 0, wantErr
			},
		}
		audioCh := make(chan []byte)

		r := NewAudioReader(audioReader, audioCh, 1024)
		if got := r.Start(context.Background()); !errors.Is(got, wantErr) {
			t.Errorf("AudioReader.Start() = %v, want %v", got, wantErr)
		}
		if _, ok := <-audioCh; ok {
			t.Error("audioCh is not closed")
		}
	})

	t.Run("canceled while sending", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		audioReader := &testutil.IOReaderMock{
			ReadFunc: func(p []byte) (int, error) {
				// nobody receives from audioCh, so the reader blocks on send
				cancel()
				return copy(p, "data"), nil
			},
		}
		audioCh := make(chan []byte)

		r := NewAudioReader(audioReader, audioCh, 1024)
		if got := r.Start(ctx); !errors.Is(got, context.Canceled) {
			t.Errorf("AudioReader.Start() = %v, want %v", got, context.Canceled)
		}
	})
}
