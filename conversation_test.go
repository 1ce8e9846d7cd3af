package main

import (
	"fmt"
	"sync"
	"testing"
)

func TestResolveIDSynthesis(t *testing.T) {
	store := NewConversationStore()

	if got := store.ResolveID("abc-123", "guest"); got != "abc-123" {
		t.Errorf("explicit id not echoed: %q", got)
	}

	// Two anonymous requests of the same role collapse onto one
	// conversation. Documented hazard, asserted as specified.
	first := store.ResolveID("", "guest")
	second := store.ResolveID("", "guest")
	if first != second {
		t.Errorf("synthesized ids differ: %q vs %q", first, second)
	}
	if first != "default_guest" {
		t.Errorf("synthesized id = %q, want default_guest", first)
	}
	if store.ResolveID("", "teacher") == first {
		t.Error("different roles should synthesize different ids")
	}
}

func TestSynthesizedIDSharesHistory(t *testing.T) {
	store := NewConversationStore()
	id1 := store.ResolveID("", "guest")
	store.Append(id1, Turn{Role: "user", Content: "first session"})

	id2 := store.ResolveID("", "guest")
	history := store.History(id2)
	if len(history) != 1 || history[0].Content != "first session" {
		t.Errorf("second anonymous session should observe shared history, got %v", history)
	}
}

func TestTrimKeepsFirstAndLastNine(t *testing.T) {
	store := NewConversationStore()
	const id = "conv"

	for i := 1; i <= 12; i++ {
		store.Append(id, Turn{Role: "user", Content: fmt.Sprintf("turn %d", i)})
		store.Trim(id)
	}

	history := store.History(id)
	if len(history) != 10 {
		t.Fatalf("stored %d turns, want 10", len(history))
	}
	if history[0].Content != "turn 1" {
		t.Errorf("first turn = %q, want turn 1", history[0].Content)
	}
	if history[1].Content != "turn 4" {
		t.Errorf("second stored turn = %q, want turn 4", history[1].Content)
	}
	if history[9].Content != "turn 12" {
		t.Errorf("last turn = %q, want turn 12", history[9].Content)
	}
}

func TestTrimNoopUnderCap(t *testing.T) {
	store := NewConversationStore()
	for i := 0; i < maxTurns; i++ {
		store.Append("c", Turn{Role: "user", Content: "x"})
	}
	store.Trim("c")
	if store.Len("c") != maxTurns {
		t.Errorf("trim changed a conversation at the cap: %d turns", store.Len("c"))
	}
}

func TestConcurrentAppends(t *testing.T) {
	store := NewConversationStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Append("shared", Turn{Role: "user", Content: "m"})
		}()
	}
	wg.Wait()
	if store.Len("shared") != 50 {
		t.Errorf("lost appends: %d turns, want 50", store.Len("shared"))
	}
}

func TestHistoryReturnsSnapshot(t *testing.T) {
	store := NewConversationStore()
	store.Append("c", Turn{Role: "user", Content: "original"})
	snapshot := store.History("c")
	snapshot[0].Content = "mutated"
	if store.History("c")[0].Content != "original" {
		t.Error("History should return a copy, not the underlying slice")
	}
}
