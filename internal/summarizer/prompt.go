package summarizer

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync/atomic"
)

// DefaultInstruction is the system instruction used when no prompt file is configured.
const DefaultInstruction = `You are assisting a qualified therapist who is reviewing a transcript of a therapy session. Write in plain professional prose only. Do not use headings, bullet points, numbering, asterisks, markdown, emojis, or stylistic formatting of any kind. Do not label sections.

Provide a clear, concise narrative summary of what appears to be happening in the session, including the client's main concerns, emotional themes, cognitive patterns, interpersonal dynamics, and any notable changes across the conversation. Reflect the therapeutic process rather than simply repeating content.

Where appropriate, gently note potential psychological signs or patterns that may warrant further clinical exploration, such as mood disturbance, anxiety processes, self-criticism, rumination, avoidance, relational difficulties, or coping strategies. Do not diagnose or suggest specific disorders.

Include thoughtful follow-up questions or areas the therapist may wish to explore in future sessions, phrased in a neutral, exploratory manner.

If the transcript quality is poor, fragmented, or appears inaccurate, briefly acknowledge this and explain how it may limit interpretation. Otherwise, do not mention transcription quality.`

// Prompt holds the current system instruction. It is safe for concurrent
// use and can be reloaded while requests are in flight.
type Prompt struct {
	text atomic.Value
}

// NewPrompt loads the instruction from path, or uses DefaultInstruction
// when path is empty.
func NewPrompt(path string) (*Prompt, error) {
	p := &Prompt{}
	p.text.Store(DefaultInstruction)

	if path == "" {
		return p, nil
	}
	if err := p.load(path); err != nil {
		return nil, err
	}
	return p, nil
}

// Text returns the current instruction.
func (p *Prompt) Text() string {
	return p.text.Load().(string)
}

// Reload re-reads the instruction from path. A blank file keeps the
// previous instruction. Its signature matches watcher.EventHandler.
func (p *Prompt) Reload(_ context.Context, path string) error {
	return p.load(path)
}

func (p *Prompt) load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read prompt file: %w", err)
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return fmt.Errorf("prompt file %s is empty", path)
	}

	p.text.Store(text)
	return nil
}
