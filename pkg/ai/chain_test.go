package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeProvider struct {
	name    string
	summary string
	err     error
	calls   int
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) Summarize(ctx context.Context, transcript, instruction string) (string, error) {
	f.calls++
	return f.summary, f.err
}

func TestChainPrimarySuccessSkipsSecondary(t *testing.T) {
	primary := &fakeProvider{name: "groq", summary: "primary summary"}
	secondary := &fakeProvider{name: "openai", summary: "secondary summary"}

	result := NewChain(primary, secondary).Generate(context.Background(), "text", "")

	assert.Equal(t, TierPrimary, result.Tier)
	assert.Equal(t, "groq", result.Provider)
	assert.Equal(t, "primary summary", result.Summary)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 0, secondary.calls)
}

func TestChainFallsBackToSecondary(t *testing.T) {
	primary := &fakeProvider{name: "groq", err: &AdapterError{Provider: "groq", Reason: "request failed"}}
	secondary := &fakeProvider{name: "openai", summary: "secondary summary"}

	result := NewChain(primary, secondary).Generate(context.Background(), "text", "")

	assert.Equal(t, TierSecondary, result.Tier)
	assert.Equal(t, "openai", result.Provider)
	assert.Equal(t, "secondary summary", result.Summary)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, secondary.calls)
}

func TestChainFallsBackToRuleBased(t *testing.T) {
	primary := &fakeProvider{name: "groq", err: &AdapterError{Provider: "groq", Reason: "GROQ_API_KEY not configured"}}
	secondary := &fakeProvider{name: "openai", err: &AdapterError{Provider: "openai", Reason: "API error (500)"}}

	result := NewChain(primary, secondary).Generate(context.Background(), "Discuss roadmap.", "")

	assert.Equal(t, TierFallback, result.Tier)
	assert.Empty(t, result.Provider)
	assert.Contains(t, result.Summary, "1. Discuss roadmap.")
	assert.Contains(t, result.Summary, fallbackDisclaimer)
}

func TestChainWithoutProvidersUsesFallback(t *testing.T) {
	result := NewChain().Generate(context.Background(), "Discuss roadmap.", "")

	assert.Equal(t, TierFallback, result.Tier)
	assert.Contains(t, result.Summary, fallbackDisclaimer)
}
