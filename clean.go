package main

import (
	"log"
	"strings"

	"github.com/dlclark/regexp2"
)

// cleanRules is the ordered rewrite pipeline applied to model output.
// Best-effort sanitization, not a parser: it strips markdown and
// reasoning artifacts the model emits despite the prompt instructions.
// The preamble wipes need lookahead ((?=\w): delete up to the next
// word-start), hence regexp2.
var cleanRules = []*regexp2.Regexp{
	// Numbered reasoning-step headers like "1. **Step**:".
	regexp2.MustCompile(`\d+\.\s+\*\*.*?\*\*:`, 0),
	// Remaining bold emphasis.
	regexp2.MustCompile(`\*\*.*?\*\*`, 0),
	// Reasoning preamble, wiped greedily up to the next word-start.
	regexp2.MustCompile(`Here's my reasoning and response:.*?(?=\w)`, regexp2.Singleline),
	// Self-introduction preamble, same treatment.
	regexp2.MustCompile(`As a helpful AI assistant.*?(?=\w)`, regexp2.Singleline),
	// Collapse runs of blank lines to one.
	regexp2.MustCompile(`\n\s*\n`, 0),
}

var cleanReplacements = []string{"", "", "", "", "\n"}

// cleanReply strips code fences, emphasis markup, and reasoning
// preambles from model output.
func cleanReply(text string) string {
	text = strings.ReplaceAll(text, "```", "")
	for i, rule := range cleanRules {
		cleaned, err := rule.Replace(text, cleanReplacements[i], -1, -1)
		if err != nil {
			log.Printf("[Clean] rule %d failed: %v", i, err)
			continue
		}
		text = cleaned
	}
	return strings.TrimSpace(text)
}
