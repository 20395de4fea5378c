package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/nguyentantai21042004/scribe/internal/audio"
	"github.com/nguyentantai21042004/scribe/internal/session"
	"github.com/nguyentantai21042004/scribe/internal/summarizer"
	"github.com/nguyentantai21042004/scribe/internal/transcriber"
)

var (
	errMissingSessionID = errors.New("session_id is required")
	errMissingFile      = errors.New("file is required")
	errSummaryPending   = errors.New("summary not generated yet")
)

// statusFor maps a pipeline error onto the HTTP status and client-facing detail.
func statusFor(err error) (int, string) {
	var (
		convErr  *audio.ConversionError
		upErr    *summarizer.UpstreamError
		tooLarge *http.MaxBytesError
	)

	switch {
	case errors.Is(err, errMissingSessionID), errors.Is(err, errMissingFile):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, errSummaryPending):
		return http.StatusConflict, "Summary not generated yet"
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge, fmt.Sprintf("Upload exceeds %d bytes", tooLarge.Limit)
	case errors.Is(err, session.ErrNotFound):
		return http.StatusNotFound, "Session not found"
	case errors.Is(err, session.ErrMissingTranscript):
		return http.StatusBadRequest, "Transcript missing"
	case errors.Is(err, transcriber.ErrEmptyTranscript):
		return http.StatusBadRequest, "Transcription failed or returned empty text."
	case errors.Is(err, audio.ErrToolUnavailable):
		return http.StatusInternalServerError, "FFmpeg not found. Install ffmpeg and restart the service."
	case errors.As(err, &convErr):
		return http.StatusInternalServerError, convErr.Error()
	case errors.Is(err, transcriber.ErrEngineUnavailable):
		return http.StatusInternalServerError, "Whisper engine not found."
	case errors.Is(err, summarizer.ErrEmptyResult), errors.Is(err, session.ErrEmptySummary):
		return http.StatusBadGateway, "Summary generation returned empty text"
	case errors.As(err, &upErr):
		return http.StatusBadGateway, "Summary generation failed: " + upErr.Err.Error()
	case errors.Is(err, context.Canceled):
		// client went away; status is never seen
		return 499, "Request cancelled"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

func (h *handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, detail := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error(r.Context(), "%s %s failed: %v", r.Method, r.URL.Path, err)
	} else {
		h.logger.Warn(r.Context(), "%s %s rejected: %v", r.Method, r.URL.Path, err)
	}
	writeDetail(w, status, detail)
}
