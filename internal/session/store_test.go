package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCreateAndGetRoundTrip(t *testing.T) {
	t.Parallel()

	store := New()
	transcripts := []string{
		"I have been feeling anxious about work.",
		"  leading and trailing spaces are kept  ",
		"multi\nline\ntranscript",
	}

	for _, transcript := range transcripts {
		created, err := store.Create(transcript)
		require.NoError(t, err)
		require.Len(t, created.ID, 32)
		require.False(t, created.HasSummary())

		got, err := store.Get(created.ID)
		require.NoError(t, err)
		require.Equal(t, transcript, got.Transcript)
	}
	require.Equal(t, len(transcripts), store.Len())
}

func TestCreateGeneratesDistinctIDs(t *testing.T) {
	t.Parallel()

	store := New()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		sess, err := store.Create("text")
		require.NoError(t, err)
		require.False(t, seen[sess.ID], "duplicate id %s", sess.ID)
		seen[sess.ID] = true
	}
}

func TestGetUnknown(t *testing.T) {
	t.Parallel()

	_, err := New().Get("does-not-exist")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSetSummaryIsWriteOnce(t *testing.T) {
	t.Parallel()

	store := New()
	sess, err := store.Create("transcript")
	require.NoError(t, err)

	first, err := store.SetSummary(sess.ID, "first")
	require.NoError(t, err)
	require.Equal(t, "first", first.Summary)
	require.False(t, first.SummarizedAt.IsZero())

	second, err := store.SetSummary(sess.ID, "second")
	require.NoError(t, err)
	require.Equal(t, "first", second.Summary)

	_, err = store.SetSummary("unknown", "x")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSummarizeCachesFirstResult(t *testing.T) {
	t.Parallel()

	store := New()
	sess, err := store.Create("the client talked about sleep")
	require.NoError(t, err)

	var calls int
	fn := func(_ context.Context, transcript string) (string, error) {
		calls++
		return fmt.Sprintf("summary #%d of %q", calls, transcript), nil
	}

	first, err := store.Summarize(context.Background(), sess.ID, fn)
	require.NoError(t, err)
	second, err := store.Summarize(context.Background(), sess.ID, fn)
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Equal(t, 1, calls)
}

func TestSummarizeUnknownSession(t *testing.T) {
	t.Parallel()

	_, err := New().Summarize(context.Background(), "nope", func(context.Context, string) (string, error) {
		t.Fatal("summarize must not be called")
		return "", nil
	})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSummarizeMissingTranscript(t *testing.T) {
	t.Parallel()

	store := New()
	sess, err := store.Create("   ")
	require.NoError(t, err)

	_, err = store.Summarize(context.Background(), sess.ID, func(context.Context, string) (string, error) {
		return "never", nil
	})
	require.ErrorIs(t, err, ErrMissingTranscript)
}

func TestSummarizeDoesNotCacheFailures(t *testing.T) {
	t.Parallel()

	store := New()
	sess, err := store.Create("transcript")
	require.NoError(t, err)

	upstream := errors.New("upstream down")
	_, err = store.Summarize(context.Background(), sess.ID, func(context.Context, string) (string, error) {
		return "", upstream
	})
	require.ErrorIs(t, err, upstream)

	got, err := store.Summarize(context.Background(), sess.ID, func(context.Context, string) (string, error) {
		return "recovered", nil
	})
	require.NoError(t, err)
	require.Equal(t, "recovered", got)
}

func TestSummarizeConcurrentFirstRequestsCallUpstreamOnce(t *testing.T) {
	t.Parallel()

	store := New()
	sess, err := store.Create("transcript")
	require.NoError(t, err)

	var calls atomic.Int32
	release := make(chan struct{})
	fn := func(context.Context, string) (string, error) {
		n := calls.Add(1)
		<-release
		return fmt.Sprintf("summary-%d", n), nil
	}

	const callers = 16
	results := make([]string, callers)
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = store.Summarize(context.Background(), sess.ID, fn)
		}(i)
	}

	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	require.Equal(t, int32(1), calls.Load())
	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		require.Equal(t, "summary-1", results[i])
	}
}

func TestSummarizeSurvivesLeaderCancellation(t *testing.T) {
	t.Parallel()

	store := New()
	sess, err := store.Create("transcript")
	require.NoError(t, err)

	release := make(chan struct{})
	var calls atomic.Int32
	fn := func(ctx context.Context, _ string) (string, error) {
		calls.Add(1)
		<-release
		if err := ctx.Err(); err != nil {
			return "", err
		}
		return "done", nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	leaderErr := make(chan error, 1)
	go func() {
		_, err := store.Summarize(ctx, sess.ID, fn)
		leaderErr <- err
	}()
	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, time.Millisecond)

	follower := make(chan string, 1)
	go func() {
		got, err := store.Summarize(context.Background(), sess.ID, fn)
		if err != nil {
			got = "error: " + err.Error()
		}
		follower <- got
	}()

	cancel()
	select {
	case err := <-leaderErr:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("cancelled caller kept waiting for the summary")
	}

	close(release)
	require.Equal(t, "done", <-follower)
	require.Equal(t, int32(1), calls.Load())

	stored, err := store.Get(sess.ID)
	require.NoError(t, err)
	require.Equal(t, "done", stored.Summary)
}

func TestSummarizeCancelledFollowerStopsWaiting(t *testing.T) {
	t.Parallel()

	store := New()
	sess, err := store.Create("transcript")
	require.NoError(t, err)

	release := make(chan struct{})
	defer close(release)
	started := make(chan struct{})
	fn := func(context.Context, string) (string, error) {
		close(started)
		<-release
		return "late", nil
	}

	go func() {
		_, _ = store.Summarize(context.Background(), sess.ID, fn)
	}()
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = store.Summarize(ctx, sess.ID, fn)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSummarizeRejectsBlankSummary(t *testing.T) {
	t.Parallel()

	store := New()
	sess, err := store.Create("transcript")
	require.NoError(t, err)

	var calls atomic.Int32
	blank := func(context.Context, string) (string, error) {
		calls.Add(1)
		return "  ", nil
	}

	_, err = store.Summarize(context.Background(), sess.ID, blank)
	require.ErrorIs(t, err, ErrEmptySummary)

	stored, err := store.Get(sess.ID)
	require.NoError(t, err)
	require.False(t, stored.HasSummary())

	_, err = store.Summarize(context.Background(), sess.ID, blank)
	require.ErrorIs(t, err, ErrEmptySummary)
	require.Equal(t, int32(2), calls.Load())
}
