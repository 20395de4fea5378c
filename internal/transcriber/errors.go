package transcriber

import "errors"

var (
	// ErrEmptyTranscript is returned when the engine produced no usable text.
	ErrEmptyTranscript = errors.New("transcription failed or returned empty text")
	// ErrEngineUnavailable is returned when the whisper binary cannot be located.
	ErrEngineUnavailable = errors.New("whisper engine not found")
)
