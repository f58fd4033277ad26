package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	vectors "github.com/cmcqueen/khazad-vectors"
)

// transpileFile converts the vector file at path, writing C source to w.
// The file is closed on every return path.
func transpileFile(path string, w io.Writer, log *vectors.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open vector file: %w", err)
	}
	defer f.Close()

	_, err = vectors.Transpile(context.Background(), f, w, vectors.Config{
		Logger: log,
		Digest: true,
		Source: filepath.Base(path),
	})
	return err
}
