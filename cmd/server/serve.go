package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/nguyentantai21042004/scribe/internal/audio"
	"github.com/nguyentantai21042004/scribe/internal/config"
	"github.com/nguyentantai21042004/scribe/internal/httpapi"
	"github.com/nguyentantai21042004/scribe/internal/logger"
	"github.com/nguyentantai21042004/scribe/internal/processor"
	"github.com/nguyentantai21042004/scribe/internal/session"
	"github.com/nguyentantai21042004/scribe/internal/summarizer"
	"github.com/nguyentantai21042004/scribe/internal/transcriber"
	"github.com/nguyentantai21042004/scribe/internal/watcher"
	"github.com/nguyentantai21042004/scribe/pkg/executor"
)

func serve(parent context.Context, configPath string, opts *rootOptions) error {
	if parent == nil {
		parent = context.Background()
	}

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.addr != "" {
		cfg.Server.Addr = opts.addr
	}
	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	log.Info(ctx, "Scribe %s starting on %s/%s", version, runtime.GOOS, runtime.GOARCH)
	log.Info(ctx, "Transcriber: %s, summarizer: %s", cfg.Transcriber.Provider, cfg.Summarizer.Provider)
	log.Info(ctx, "Max concurrent transcriptions: %d", cfg.Performance.MaxConcurrent)

	// Initialize dependencies
	exec := executor.New()
	norm := audio.New(audio.Options{
		BinaryPath: cfg.FFmpeg.BinaryPath,
		SampleRate: cfg.FFmpeg.SampleRate,
		Channels:   cfg.FFmpeg.Channels,
	}, exec, log)

	tr, err := transcriber.New(cfg, exec, log)
	if err != nil {
		return fmt.Errorf("create transcriber: %w", err)
	}

	prompt, err := summarizer.NewPrompt(cfg.Summarizer.PromptFile)
	if err != nil {
		return fmt.Errorf("load summary prompt: %w", err)
	}
	sum, err := summarizer.New(ctx, cfg, prompt, log)
	if err != nil {
		return fmt.Errorf("create summarizer: %w", err)
	}

	if cfg.Summarizer.PromptFile != "" {
		w, err := watcher.New(cfg.Summarizer.PromptFile, prompt.Reload, log)
		if err != nil {
			return fmt.Errorf("watch summary prompt: %w", err)
		}
		defer w.Stop()

		go func() {
			if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Error(ctx, "Prompt watcher stopped: %v", err)
			}
		}()
		log.Info(ctx, "Watching summary prompt: %s", cfg.Summarizer.PromptFile)
	}

	store := session.New()
	proc := processor.New(cfg, norm, tr, store, log)

	srv := &http.Server{
		Addr: cfg.Server.Addr,
		Handler: httpapi.New(httpapi.Options{
			AllowedOrigin:  cfg.Server.AllowedOrigin,
			MaxUploadBytes: cfg.MaxUploadBytes(),
			TempDir:        cfg.Paths.Temp,
		}, proc, store, sum, log),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info(ctx, "Listening on %s (allowed origin %s)", cfg.Server.Addr, cfg.Server.AllowedOrigin)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		log.Info(context.Background(), "Shutdown signal received")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info(shutdownCtx, "Scribe stopped")
	return nil
}
