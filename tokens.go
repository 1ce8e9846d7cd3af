package main

import (
	"log"

	"github.com/pkoukk/tiktoken-go"
)

// countTokens counts tokens in text for audit rows when the upstream
// API did not report usage. Models without a known tokenizer fall back
// to cl100k_base.
func countTokens(text, model string) int {
	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		enc, err = tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			log.Printf("[Tokens] No encoding available: %v", err)
			return len(text) / 4 // rough character-based estimate
		}
	}
	return len(enc.Encode(text, nil, nil))
}
