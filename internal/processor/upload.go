package processor

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	defaultSuffix  = ".mp3"
	maxSuffixChars = 10
)

// materialize copies src into a fresh file inside dir, keeping the
// uploaded extension so ffmpeg can probe the container.
func (p *implProcessor) materialize(ctx context.Context, dir, filename string, src io.Reader) (string, error) {
	f, err := os.CreateTemp(dir, "upload-*"+uploadSuffix(filename))
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer f.Close()

	n, err := io.Copy(f, src)
	if err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close upload: %w", err)
	}

	p.logger.Debug(ctx, "Saved upload %q (%d bytes) to %s", filename, n, f.Name())
	return f.Name(), nil
}

// uploadSuffix returns the lowercased extension of filename, or .mp3 when
// it is missing or does not look like an extension.
func uploadSuffix(filename string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	if len(ext) < 2 || len(ext) > maxSuffixChars {
		return defaultSuffix
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return defaultSuffix
		}
	}
	return ext
}
