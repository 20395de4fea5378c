package transcriber

import "strings"

const blankAudioToken = "[BLANK_AUDIO]"

// clean trims engine output and reports ErrEmptyTranscript for silence.
func clean(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || strings.EqualFold(trimmed, blankAudioToken) {
		return "", ErrEmptyTranscript
	}
	return trimmed, nil
}
