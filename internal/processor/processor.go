package processor

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/nguyentantai21042004/scribe/internal/session"
)

// Process orchestrates the transcription pipeline for one upload:
// save → normalize → transcribe → create session.
// All intermediate files live in a per-request directory that is removed
// on every exit path; no session is created on failure.
func (p *implProcessor) Process(ctx context.Context, filename string, src io.Reader) (session.Session, error) {
	startTime := time.Now()

	if err := os.MkdirAll(p.tempDir, 0o755); err != nil {
		return session.Session{}, fmt.Errorf("create temp root: %w", err)
	}
	workDir, err := os.MkdirTemp(p.tempDir, "transcribe-*")
	if err != nil {
		return session.Session{}, fmt.Errorf("create temp dir: %w", err)
	}
	defer p.cleanupWorkDir(ctx, workDir)

	p.logger.Info(ctx, "Starting transcription pipeline: %s", filename)

	// Step 1: Save upload
	rawPath, err := p.materialize(ctx, workDir, filename, src)
	if err != nil {
		return session.Session{}, fmt.Errorf("save upload: %w", err)
	}

	if err := p.sem.acquire(ctx); err != nil {
		return session.Session{}, fmt.Errorf("wait for transcription slot: %w", err)
	}
	defer p.sem.release()
	p.logger.Debug(ctx, "Transcription slots in use: %d", p.sem.inUse())

	// Step 2: Normalize audio
	wavPath, err := p.normalizer.Normalize(ctx, rawPath)
	if err != nil {
		return session.Session{}, fmt.Errorf("normalize audio: %w", err)
	}

	// Step 3: Transcribe
	transcript, err := p.transcriber.Transcribe(ctx, wavPath)
	if err != nil {
		return session.Session{}, fmt.Errorf("transcribe: %w", err)
	}

	// Step 4: Create session
	sess, err := p.store.Create(transcript)
	if err != nil {
		return session.Session{}, fmt.Errorf("create session: %w", err)
	}

	p.logger.Info(ctx, "Session %s created (%d chars) in %s", sess.ID, len(transcript), time.Since(startTime))
	return sess, nil
}
