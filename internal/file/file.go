package file

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	AppendFlag = os.O_APPEND | os.O_CREATE | os.O_WRONLY
	Perm       = os.FileMode(0o644)
)

// OpenCloseFileWriter is an implementation of io.Writer.
// It opens the file and writes to it each time the Write() method is executed,
// so the file can be followed with tools like `tail -f` while recognizing.
type OpenCloseFileWriter struct {
	path string
	flag int
	perm os.FileMode
}

var _ io.Writer = (*OpenCloseFileWriter)(nil)

func NewOpenCloseFileWriter(path string, flag int, perm os.FileMode) *OpenCloseFileWriter {
	return &OpenCloseFileWriter{path, flag, perm}
}

// NewAppendWriter appends to path, creating it when missing.
func NewAppendWriter(path string) *OpenCloseFileWriter {
	return NewOpenCloseFileWriter(path, AppendFlag, Perm)
}

func (w *OpenCloseFileWriter) Write(p []byte) (int, error) {
	file, err := os.OpenFile(w.path, w.flag, w.perm)
	if err != nil {
		return 0, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	n, err := file.Write(p)
	if err != nil {
		return n, fmt.Errorf("failed to write to file: %w", err)
	}

	return n, nil
}

// Touch creates path and its parent directories without truncating an
// existing file.
func Touch(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE, Perm)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}
	return nil
}

// WithSuffix inserts suffix before the extension of path:
// "output/1.txt" becomes "output/1.translated.txt".
func WithSuffix(path, suffix string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "." + suffix + ext
}
