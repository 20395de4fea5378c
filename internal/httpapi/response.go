package httpapi

import (
	"encoding/json"
	"net/http"
)

type transcribeResponse struct {
	SessionID string `json:"session_id"`
}

type summaryResponse struct {
	Summary string `json:"summary"`
}

type transcriptResponse struct {
	Transcript string `json:"transcript"`
}

type healthResponse struct {
	OK       bool `json:"ok"`
	Sessions int  `json:"sessions"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}
