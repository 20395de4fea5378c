package processor

import (
	"os"

	"github.com/nguyentantai21042004/scribe/internal/audio"
	"github.com/nguyentantai21042004/scribe/internal/config"
	"github.com/nguyentantai21042004/scribe/internal/logger"
	"github.com/nguyentantai21042004/scribe/internal/session"
	"github.com/nguyentantai21042004/scribe/internal/transcriber"
)

type implProcessor struct {
	tempDir     string
	normalizer  audio.Normalizer
	transcriber transcriber.Transcriber
	store       session.Store
	logger      logger.Logger
	sem         *semaphore
}

// New creates a new Processor instance
func New(cfg *config.Config, norm audio.Normalizer, tr transcriber.Transcriber, store session.Store, log logger.Logger) Processor {
	tempDir := cfg.Paths.Temp
	if tempDir == "" {
		tempDir = os.TempDir()
	}

	maxConcurrent := cfg.Performance.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = 2
	}

	return &implProcessor{
		tempDir:     tempDir,
		normalizer:  norm,
		transcriber: tr,
		store:       store,
		logger:      log,
		sem:         newSemaphore(maxConcurrent),
	}
}
