package recognizer

import (
	"bytes"
	"io"
)

var (
	clearScreen = []byte("\033[H\033[2J")
	greenColor  = []byte("\033[32m")
	resetColor  = []byte("\033[0m")
	newLine     = []byte("\n")
)

var _ io.Writer = (*DecoratedInterimWriter)(nil)

// DecoratedInterimWriter redraws the terminal with the latest interim result.
type DecoratedInterimWriter struct {
	Writer io.Writer
	buf    bytes.Buffer
}

func (w *DecoratedInterimWriter) Write(p []byte) (n int, err error) {
	w.buf.Reset()
	w.buf.Write(clearScreen)
	w.buf.Write(greenColor)
	w.buf.Write(p)
	w.buf.Write(resetColor)

	if _, err := w.Writer.Write(w.buf.Bytes()); err != nil {
		return 0, err
	}
	return len(p), nil
}

var _ io.Writer = (*DecoratedResultWriter)(nil)

// DecoratedResultWriter starts every result on a new line.
type DecoratedResultWriter struct {
	Writer io.Writer
	buf    bytes.Buffer
}

func (w *DecoratedResultWriter) Write(p []byte) (n int, err error) {
	w.buf.Reset()
	w.buf.Write(newLine)
	w.buf.Write(p)

	if _, err := w.Writer.Write(w.buf.Bytes()); err != nil {
		return 0, err
	}
	return len(p), nil
}
