package transcriber

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/nguyentantai21042004/scribe/internal/config"
	"github.com/nguyentantai21042004/scribe/internal/logger"
	"github.com/nguyentantai21042004/scribe/pkg/executor"
	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeWhisperStub(t *testing.T, output string) string {
	t.Helper()

	stub := filepath.Join(t.TempDir(), "whisper-cli")
	script := `#!/bin/sh
while [ $# -gt 0 ]; do
  if [ "$1" = "-of" ]; then out="$2"; fi
  shift
done
printf '%s' '` + output + `' > "$out.txt"
`
	require.NoError(t, os.WriteFile(stub, []byte(script), 0o755))
	return stub
}

func TestWhisperTranscribe(t *testing.T) {
	stub := writeWhisperStub(t, "  Hello from the session.  \n")
	audio := filepath.Join(t.TempDir(), "clip.mp3.wav")
	require.NoError(t, os.WriteFile(audio, []byte("RIFF"), 0o644))

	w := NewWhisper(WhisperOptions{BinaryPath: stub, ModelPath: "model.bin", Language: "en"}, executor.New(), logger.NewNop())
	text, err := w.Transcribe(context.Background(), audio)
	require.NoError(t, err)
	require.Equal(t, "Hello from the session.", text)

	_, statErr := os.Stat(filepath.Join(filepath.Dir(audio), "clip.mp3.transcript.txt"))
	require.True(t, os.IsNotExist(statErr), "whisper output must be removed")
}

func TestWhisperTranscribeBlankAudio(t *testing.T) {
	tests := []struct {
		name   string
		output string
	}{
		{"empty", ""},
		{"whitespace", "   \n"},
		{"blank token", " [BLANK_AUDIO] "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := writeWhisperStub(t, tt.output)
			audio := filepath.Join(t.TempDir(), "silence.wav")

			w := NewWhisper(WhisperOptions{BinaryPath: stub, ModelPath: "model.bin", Language: "en"}, executor.New(), logger.NewNop())
			_, err := w.Transcribe(context.Background(), audio)
			require.ErrorIs(t, err, ErrEmptyTranscript)
		})
	}
}

func TestWhisperEngineUnavailable(t *testing.T) {
	w := NewWhisper(WhisperOptions{BinaryPath: "scribe-missing-whisper", ModelPath: "model.bin"}, executor.New(), logger.NewNop())
	_, err := w.Transcribe(context.Background(), filepath.Join(t.TempDir(), "a.wav"))
	require.ErrorIs(t, err, ErrEngineUnavailable)
}

func TestWhisperRequiresAudioPath(t *testing.T) {
	w := NewWhisper(WhisperOptions{ModelPath: "model.bin"}, executor.New(), logger.NewNop())
	_, err := w.Transcribe(context.Background(), " ")
	require.Error(t, err)
}

func newOpenAIServer(t *testing.T, text string) (*httptest.Server, *string) {
	t.Helper()

	var gotModel string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/audio/transcriptions", r.URL.Path)
		assert.NoError(t, r.ParseMultipartForm(1<<20))
		gotModel = r.FormValue("model")

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"text": text})
	}))
	t.Cleanup(srv.Close)
	return srv, &gotModel
}

func newOpenAIClient(baseURL string) *openai.Client {
	cfg := openai.DefaultConfig("sk-test")
	cfg.BaseURL = baseURL + "/v1"
	return openai.NewClientWithConfig(cfg)
}

func TestOpenAITranscribe(t *testing.T) {
	srv, gotModel := newOpenAIServer(t, " Client described a difficult week. ")
	audio := filepath.Join(t.TempDir(), "clip.wav")
	require.NoError(t, os.WriteFile(audio, []byte("RIFF"), 0o644))

	tr := NewOpenAI(newOpenAIClient(srv.URL), "", "en", logger.NewNop())
	text, err := tr.Transcribe(context.Background(), audio)
	require.NoError(t, err)
	require.Equal(t, "Client described a difficult week.", text)
	require.Equal(t, openai.Whisper1, *gotModel)
}

func TestOpenAITranscribeEmpty(t *testing.T) {
	srv, _ := newOpenAIServer(t, "  ")
	audio := filepath.Join(t.TempDir(), "clip.wav")
	require.NoError(t, os.WriteFile(audio, []byte("RIFF"), 0o644))

	tr := NewOpenAI(newOpenAIClient(srv.URL), "whisper-1", "en", logger.NewNop())
	_, err := tr.Transcribe(context.Background(), audio)
	require.ErrorIs(t, err, ErrEmptyTranscript)
}

func TestNewSelectsProvider(t *testing.T) {
	cfg := &config.Config{Transcriber: config.TranscriberConfig{Provider: config.TranscriberWhisper}}
	tr, err := New(cfg, executor.New(), logger.NewNop())
	require.NoError(t, err)
	require.IsType(t, &whisperTranscriber{}, tr)

	cfg.Transcriber.Provider = config.TranscriberOpenAI
	tr, err = New(cfg, executor.New(), logger.NewNop())
	require.NoError(t, err)
	require.IsType(t, &openAITranscriber{}, tr)

	cfg.Transcriber.Provider = "vosk"
	_, err = New(cfg, executor.New(), logger.NewNop())
	require.Error(t, err)
}
