package out

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// PNGFrameWriter stores rendered surface frames as numbered PNG files.
type PNGFrameWriter struct {
	dir string
}

func NewPNGFrameWriter(dir string) (*PNGFrameWriter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create frame dir: %w", err)
	}
	return &PNGFrameWriter{dir: dir}, nil
}

func (w *PNGFrameWriter) Write(index int, img image.Image) (string, error) {
	if img == nil {
		return "", fmt.Errorf("frame %d: no image", index)
	}
	path := filepath.Join(w.dir, fmt.Sprintf("frame-%04d.png", index))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create frame file: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("encode frame: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close frame file: %w", err)
	}
	return path, nil
}
