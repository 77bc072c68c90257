package seqcdc

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// ReadFile reads a whole file into memory, ready for chunking. The core
// never performs I/O itself; these helpers turn files and streams into the
// buffers it operates on.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return data, nil
}

// ReadAll drains a stream into memory, ready for chunking.
func ReadAll(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read stream: %w", err)
	}

	return data, nil
}

// WriteFile writes data to a file, creating or truncating it.
func WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

// WriteChunks writes a chunk sequence to a file in order, reconstructing the
// original data.
func WriteChunks(path string, chunks []Chunk) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	w := bufio.NewWriter(f)

	for _, chunk := range chunks {
		if _, err := w.Write(chunk.Data); err != nil {
			f.Close()

			return fmt.Errorf("write chunk at %d to %s: %w", chunk.Start, path, err)
		}
	}

	if err := w.Flush(); err != nil {
		f.Close()

		return fmt.Errorf("flush %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	return nil
}
