package httpapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/nguyentantai21042004/scribe/internal/summarizer"
)

const (
	multipartMemory = 32 << 20
	docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

func (h *handler) transcribe(w http.ResponseWriter, r *http.Request) {
	if r.ContentLength > h.opts.MaxUploadBytes {
		h.fail(w, r, &http.MaxBytesError{Limit: h.opts.MaxUploadBytes})
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.opts.MaxUploadBytes)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.fail(w, r, err)
			return
		}
		h.fail(w, r, errMissingFile)
		return
	}
	defer func() {
		_ = r.MultipartForm.RemoveAll()
	}()

	file, header, err := r.FormFile("file")
	if err != nil {
		h.fail(w, r, errMissingFile)
		return
	}
	defer file.Close()

	sess, err := h.processor.Process(r.Context(), header.Filename, file)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, transcribeResponse{SessionID: sess.ID})
}

func (h *handler) summary(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	text, err := h.store.Summarize(r.Context(), id, h.summarizer.Summarize)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, summaryResponse{Summary: text})
}

func (h *handler) transcript(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	sess, err := h.store.Get(id)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, transcriptResponse{Transcript: sess.Transcript})
}

func (h *handler) export(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	sess, err := h.store.Get(id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if !sess.HasSummary() {
		h.fail(w, r, errSummaryPending)
		return
	}

	if err := os.MkdirAll(h.opts.TempDir, 0o755); err != nil {
		h.fail(w, r, fmt.Errorf("create temp root: %w", err))
		return
	}
	tmp, err := os.CreateTemp(h.opts.TempDir, "export-*.docx")
	if err != nil {
		h.fail(w, r, fmt.Errorf("create export file: %w", err))
		return
	}
	path := tmp.Name()
	_ = tmp.Close()
	defer os.Remove(path)

	err = summarizer.WriteDocx(summarizer.Export{
		Title:      "Session " + sess.ID,
		Summary:    sess.Summary,
		Transcript: sess.Transcript,
		CreatedAt:  sess.CreatedAt,
	}, path)
	if err != nil {
		h.fail(w, r, fmt.Errorf("render export: %w", err))
		return
	}

	f, err := os.Open(path)
	if err != nil {
		h.fail(w, r, fmt.Errorf("open export: %w", err))
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", docxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="session-%s.docx"`, sess.ID))
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, f); err != nil {
		h.logger.Warn(r.Context(), "Export stream interrupted for %s: %v", sess.ID, err)
	}
}

func (h *handler) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{OK: true, Sessions: h.store.Len()})
}

func sessionID(r *http.Request) (string, error) {
	id := strings.TrimSpace(r.URL.Query().Get("session_id"))
	if id == "" {
		return "", errMissingSessionID
	}
	return id, nil
}
