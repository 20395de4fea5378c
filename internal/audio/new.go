package audio

import (
	"github.com/nguyentantai21042004/scribe/internal/logger"
	"github.com/nguyentantai21042004/scribe/pkg/executor"
)

const (
	defaultSampleRate = 16000
	defaultChannels   = 1
)

// Options tunes the output waveform. Zero values fall back to 16 kHz mono.
type Options struct {
	BinaryPath string
	SampleRate int
	Channels   int
}

type implNormalizer struct {
	opts     Options
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Normalizer backed by ffmpeg.
func New(opts Options, exec executor.Executor, log logger.Logger) Normalizer {
	if opts.BinaryPath == "" {
		opts.BinaryPath = "ffmpeg"
	}
	if opts.SampleRate <= 0 {
		opts.SampleRate = defaultSampleRate
	}
	if opts.Channels <= 0 {
		opts.Channels = defaultChannels
	}

	return &implNormalizer{
		opts:     opts,
		executor: exec,
		logger:   log,
	}
}
