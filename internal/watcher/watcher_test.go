package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nguyentantai21042004/scribe/internal/logger"
	"github.com/stretchr/testify/require"
)

func TestWatcherCallsHandlerOnWrite(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "prompt.txt")
	require.NoError(t, os.WriteFile(target, []byte("v1"), 0o644))

	var calls atomic.Int32
	var gotPath atomic.Value
	handler := func(_ context.Context, path string) error {
		gotPath.Store(path)
		calls.Add(1)
		return nil
	}

	w, err := New(target, handler, logger.NewNop())
	require.NoError(t, err)
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	// unrelated files in the same directory are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(target, []byte("v2"), 0o644))

	require.Eventually(t, func() bool { return calls.Load() >= 1 }, 5*time.Second, 10*time.Millisecond)
	abs, err := filepath.Abs(target)
	require.NoError(t, err)
	require.Equal(t, abs, gotPath.Load())

	cancel()
	select {
	case err := <-done:
		require.True(t, errors.Is(err, context.Canceled))
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestNewFailsForMissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing", "prompt.txt"), func(context.Context, string) error { return nil }, logger.NewNop())
	require.Error(t, err)
}

func TestStopIsIdempotent(t *testing.T) {
	w, err := New(filepath.Join(t.TempDir(), "prompt.txt"), func(context.Context, string) error { return nil }, logger.NewNop())
	require.NoError(t, err)
	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())
}
