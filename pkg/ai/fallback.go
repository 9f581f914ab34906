package ai

import (
	"fmt"
	"strings"
)

const (
	fallbackHeader     = "📋 Meeting Summary (Fallback Mode):\n\n"
	fallbackDisclaimer = "\n\n⚠️ Note: This is a fallback summary. For better results, please configure an AI API key."

	maxBulletPoints   = 10
	maxNumberedPoints = 8
)

// FallbackSummary builds a deterministic rule-based summary. It is the
// terminal tier of the chain and never fails: malformed or empty input
// yields a generic message instead of an error.
//
// Lines starting with "#" are treated as non-content and skipped, e.g.
// section headers pasted along with the transcript.
func FallbackSummary(transcript, instruction string) string {
	var sentences []string
	for _, line := range strings.Split(transcript, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		sentences = append(sentences, line)
	}

	var b strings.Builder
	b.WriteString(fallbackHeader)

	switch {
	case len(sentences) == 0:
		b.WriteString("Unable to process transcript automatically.")
	case strings.Contains(strings.ToLower(instruction), "bullet"):
		if len(sentences) > maxBulletPoints {
			sentences = sentences[:maxBulletPoints]
		}
		for _, sentence := range sentences {
			fmt.Fprintf(&b, "• %s\n", sentence)
		}
	default:
		b.WriteString("Key Points:\n")
		if len(sentences) > maxNumberedPoints {
			sentences = sentences[:maxNumberedPoints]
		}
		for i, sentence := range sentences {
			fmt.Fprintf(&b, "%d. %s\n", i+1, sentence)
		}
	}

	b.WriteString(fallbackDisclaimer)
	return b.String()
}
