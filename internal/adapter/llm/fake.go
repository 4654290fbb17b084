package llm

import (
	"context"
	"strings"
	"sync"

	"github.com/heartmarshall/brandvoice-backend/internal/domain"
)

// Fake answers deterministically without network access. It backs local runs
// (LLM_PROVIDER=fake) and tests.
type Fake struct {
	mu    sync.Mutex
	calls []domain.GenerationRequest

	// Respond, when set, replaces the default echo behaviour.
	Respond func(ctx context.Context, req domain.GenerationRequest) (string, error)
}

// NewFake creates a Fake that echoes the quoted original text in upper case.
func NewFake() *Fake { return &Fake{} }

func (f *Fake) Name() string { return "fake" }
func (f *Fake) Close() error { return nil }

// Generate records the request and answers it.
func (f *Fake) Generate(ctx context.Context, req domain.GenerationRequest) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, req)
	respond := f.Respond
	f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if respond != nil {
		return respond(ctx, req)
	}
	return strings.ToUpper(quotedText(req.Prompt)), nil
}

// Calls returns a copy of every request seen so far.
func (f *Fake) Calls() []domain.GenerationRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.GenerationRequest(nil), f.calls...)
}

// quotedText extracts the text between `Original text: "` and the closing
// quote at the end of that block.
func quotedText(prompt string) string {
	const marker = `Original text: "`
	start := strings.Index(prompt, marker)
	if start < 0 {
		return prompt
	}
	rest := prompt[start+len(marker):]
	end := strings.LastIndex(rest, "\"\n\n")
	if end < 0 {
		return rest
	}
	return rest[:end]
}
