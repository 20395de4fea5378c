package transcriber

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/nguyentantai21042004/scribe/internal/logger"
	"github.com/nguyentantai21042004/scribe/pkg/executor"
)

type WhisperOptions struct {
	BinaryPath string
	ModelPath  string
	Language   string
	Prompt     string
	Threads    int
}

type whisperTranscriber struct {
	opts     WhisperOptions
	executor executor.Executor
	logger   logger.Logger
}

// NewWhisper creates a Transcriber that shells out to whisper.cpp.
func NewWhisper(opts WhisperOptions, exec executor.Executor, log logger.Logger) Transcriber {
	if opts.BinaryPath == "" {
		opts.BinaryPath = "whisper-cli"
	}
	if opts.Threads <= 0 {
		opts.Threads = 4
	}
	return &whisperTranscriber{
		opts:     opts,
		executor: exec,
		logger:   log,
	}
}

// Transcribe runs whisper.cpp on audioPath and returns the plain-text output.
func (w *whisperTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if strings.TrimSpace(audioPath) == "" {
		return "", errors.New("audio path is required")
	}

	// whisper.cpp appends .txt to the -of prefix
	outBase := strings.TrimSuffix(audioPath, filepath.Ext(audioPath)) + ".transcript"
	txtOut := outBase + ".txt"

	// -nt: no timestamps
	// -otxt: plain text output
	// -l: force language (prevents hallucination)
	args := []string{
		"-m", w.opts.ModelPath,
		"-f", audioPath,
		"-l", w.opts.Language,
		"-t", strconv.Itoa(w.opts.Threads),
		"-nt",
		"-otxt",
		"-of", outBase,
	}
	if w.opts.Prompt != "" {
		args = append(args, "--prompt", w.opts.Prompt)
	}

	w.logger.Info(ctx, "Starting transcription with %d threads: %s", w.opts.Threads, audioPath)
	started := time.Now()

	if _, err := w.executor.Execute(ctx, w.opts.BinaryPath, args...); err != nil {
		if errors.Is(err, executor.ErrNotFound) {
			return "", fmt.Errorf("%w: %s", ErrEngineUnavailable, w.opts.BinaryPath)
		}
		return "", fmt.Errorf("whisper transcribe: %w", err)
	}
	defer func() {
		if err := os.Remove(txtOut); err != nil && !errors.Is(err, os.ErrNotExist) {
			w.logger.Warn(ctx, "Failed to cleanup whisper output %s: %v", txtOut, err)
		}
	}()

	content, err := os.ReadFile(txtOut)
	if err != nil {
		return "", fmt.Errorf("read whisper output: %w", err)
	}

	w.logger.Info(ctx, "Transcription completed in %s", time.Since(started))
	return clean(string(content))
}
