package testutil

import (
	"io"
	"sync"
)

var _ io.Reader = (*IOReaderMock)(nil)

type IOReaderMock struct {
	ReadFunc func(p []byte) (n int, err error)
}

func (m *IOReaderMock) Read(p []byte) (n int, err error) {
	return m.ReadFunc(p)
}

var _ io.Reader = (*ChunkReader)(nil)

// ChunkReader returns one chunk per Read and io.EOF once the chunks run out.
type ChunkReader struct {
	Chunks [][]byte
}

func (r *ChunkReader) Read(p []byte) (int, error) {
	if len(r.Chunks) == 0 {
		return 0, io.EOF
	}
	n := copy(p, r.Chunks[0])
	if n < len(r.Chunks[0]) {
		r.Chunks[0] = r.Chunks[0][n:]
	} else {
		r.Chunks = r.Chunks[1:]
	}
	return n, nil
}

var _ io.Writer = (*SafeBuffer)(nil)

// SafeBuffer is a writer whose content can be read while other goroutines write.
type SafeBuffer struct {
	mu  sync.Mutex
	buf []byte
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buf = append(b.buf, p...)
	return len(p), nil
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return string(b.buf)
}
