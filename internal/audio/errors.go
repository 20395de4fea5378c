package audio

import (
	"errors"
	"fmt"
)

// ErrToolUnavailable is returned when the ffmpeg binary cannot be located.
var ErrToolUnavailable = errors.New("ffmpeg not found; install ffmpeg and restart the service")

// ConversionError carries ffmpeg's diagnostic output for a failed conversion.
type ConversionError struct {
	Output string
	Err    error
}

func (e *ConversionError) Error() string {
	if e.Output == "" {
		return fmt.Sprintf("ffmpeg conversion failed: %v", e.Err)
	}
	return fmt.Sprintf("ffmpeg conversion failed: %s", e.Output)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}
