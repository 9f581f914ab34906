package ai

import (
	"context"
	"fmt"
	"log"
)

// Tier identifies which strategy of the chain produced a summary.
type Tier string

const (
	TierPrimary   Tier = "primary"
	TierSecondary Tier = "secondary"
	TierFallback  Tier = "fallback"
)

// Result carries the winning summary and the tier that produced it.
type Result struct {
	Summary  string `json:"summary"`
	Tier     Tier   `json:"tier"`
	Provider string `json:"provider,omitempty"`
}

// Chain tries provider adapters strictly in priority order and falls back
// to the rule-based summarizer when every adapter fails or is unconfigured.
type Chain struct {
	providers []Summarizer
}

// NewChain creates a chain over the given providers in priority order.
// The rule-based fallback is always the terminal tier and needs no
// registration.
func NewChain(providers ...Summarizer) *Chain {
	return &Chain{providers: providers}
}

// Generate runs the tiers sequentially and short-circuits on the first
// success. Adapter failures are logged and absorbed; Generate itself
// never fails because the terminal tier always produces a summary.
func (c *Chain) Generate(ctx context.Context, transcript, instruction string) Result {
	for i, provider := range c.providers {
		summary, err := provider.Summarize(ctx, transcript, instruction)
		if err != nil {
			log.Printf("[AI] %s failed: %v, trying next tier", provider.Name(), err)
			continue
		}
		log.Printf("[AI] summary generated using %s", provider.Name())
		return Result{Summary: summary, Tier: tierForIndex(i), Provider: provider.Name()}
	}

	log.Println("[AI] all providers failed or unconfigured, using rule-based fallback")
	return Result{Summary: FallbackSummary(transcript, instruction), Tier: TierFallback}
}

func tierForIndex(i int) Tier {
	switch i {
	case 0:
		return TierPrimary
	case 1:
		return TierSecondary
	default:
		return Tier(fmt.Sprintf("tier-%d", i+1))
	}
}
