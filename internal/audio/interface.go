package audio

import "context"

// Normalizer converts arbitrary audio into the canonical waveform the
// transcription engines expect.
type Normalizer interface {
	Normalize(ctx context.Context, inputPath string) (string, error)
}
