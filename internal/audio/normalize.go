package audio

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/nguyentantai21042004/scribe/pkg/executor"
)

// Normalize resamples inputPath into a PCM WAV written next to it.
// The input file is left untouched; the caller owns both files.
func (n *implNormalizer) Normalize(ctx context.Context, inputPath string) (string, error) {
	if _, err := n.executor.LookPath(n.opts.BinaryPath); err != nil {
		return "", ErrToolUnavailable
	}

	outputPath := inputPath + ".wav"

	// -ar/-ac: target sample rate and channel count
	// -c:a pcm_s16le: uncompressed 16-bit little-endian
	args := []string{
		"-nostdin",
		"-hide_banner",
		"-loglevel", "error",
		"-y",
		"-i", inputPath,
		"-vn",
		"-ac", strconv.Itoa(n.opts.Channels),
		"-ar", strconv.Itoa(n.opts.SampleRate),
		"-c:a", "pcm_s16le",
		outputPath,
	}

	n.logger.Debug(ctx, "Normalizing audio: %s -> %s", inputPath, outputPath)

	if _, err := n.executor.Execute(ctx, n.opts.BinaryPath, args...); err != nil {
		if errors.Is(err, executor.ErrNotFound) {
			return "", ErrToolUnavailable
		}

		var exitErr *executor.ExitError
		if errors.As(err, &exitErr) {
			return "", &ConversionError{Output: exitErr.Stderr, Err: err}
		}
		return "", fmt.Errorf("run ffmpeg: %w", err)
	}

	n.logger.Info(ctx, "Audio normalized (%d Hz, %d ch): %s", n.opts.SampleRate, n.opts.Channels, outputPath)
	return outputPath, nil
}
