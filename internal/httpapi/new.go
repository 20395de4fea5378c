package httpapi

import (
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/nguyentantai21042004/scribe/internal/logger"
	"github.com/nguyentantai21042004/scribe/internal/processor"
	"github.com/nguyentantai21042004/scribe/internal/session"
	"github.com/nguyentantai21042004/scribe/internal/summarizer"
	"github.com/rs/cors"
)

// Options configures the HTTP surface.
type Options struct {
	AllowedOrigin  string
	MaxUploadBytes int64
	TempDir        string
}

type handler struct {
	processor  processor.Processor
	store      session.Store
	summarizer summarizer.Summarizer
	logger     logger.Logger
	opts       Options
}

// New builds the service's http.Handler.
func New(opts Options, proc processor.Processor, store session.Store, sum summarizer.Summarizer, log logger.Logger) http.Handler {
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = 100 << 20
	}
	if opts.TempDir == "" {
		opts.TempDir = os.TempDir()
	}

	h := &handler{
		processor:  proc,
		store:      store,
		summarizer: sum,
		logger:     log,
		opts:       opts,
	}

	r := mux.NewRouter()
	r.HandleFunc("/transcribe", h.transcribe).Methods(http.MethodPost)
	r.HandleFunc("/session/summary", h.summary).Methods(http.MethodGet)
	r.HandleFunc("/session/transcript", h.transcript).Methods(http.MethodGet)
	r.HandleFunc("/session/export", h.export).Methods(http.MethodGet)
	r.HandleFunc("/healthz", h.healthz).Methods(http.MethodGet)
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeDetail(w, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeDetail(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	var root http.Handler = r
	root = recoverPanics(log)(root)
	root = requestLog(log)(root)
	root = handlers.ProxyHeaders(root)
	root = cors.New(cors.Options{
		AllowedOrigins: []string{opts.AllowedOrigin},
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch,
			http.MethodDelete, http.MethodHead, http.MethodOptions,
		},
		AllowedHeaders: []string{"*"},
	}).Handler(root)

	return root
}
