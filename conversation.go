package main

import (
	"strings"
	"sync"
)

// Turn is one conversation entry. Immutable once appended.
type Turn struct {
	Role    string // "user" or "assistant"
	Content string
}

// maxTurns caps stored history; over the cap the first turn plus the
// most recent maxTurns-1 are kept.
const maxTurns = 10

// ConversationStore holds in-memory conversation history keyed by an
// opaque id. Constructed once at startup and passed by reference;
// concurrent requests sharing an id serialize on the mutex. History
// lives for the process lifetime only.
type ConversationStore struct {
	mu            sync.Mutex
	conversations map[string][]Turn
}

func NewConversationStore() *ConversationStore {
	return &ConversationStore{
		conversations: make(map[string][]Turn),
	}
}

// ResolveID returns the conversation id for a request, synthesizing
// "default_<role>" when the caller supplied none. The synthesized id is
// deliberately not unique: all anonymous sessions of one role share it.
func (s *ConversationStore) ResolveID(conversationID, role string) string {
	if conversationID != "" {
		return conversationID
	}
	return "default_" + strings.ToLower(role)
}

// Append adds a turn, creating the conversation lazily.
func (s *ConversationStore) Append(conversationID string, turn Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conversations[conversationID] = append(s.conversations[conversationID], turn)
}

// Trim enforces maxTurns: the first turn plus the last maxTurns-1 are
// kept, everything in between is dropped.
func (s *ConversationStore) Trim(conversationID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	turns := s.conversations[conversationID]
	if len(turns) <= maxTurns {
		return
	}
	trimmed := make([]Turn, 0, maxTurns)
	trimmed = append(trimmed, turns[0])
	trimmed = append(trimmed, turns[len(turns)-(maxTurns-1):]...)
	s.conversations[conversationID] = trimmed
}

// History returns a snapshot copy of the conversation.
func (s *ConversationStore) History(conversationID string) []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	turns := s.conversations[conversationID]
	snapshot := make([]Turn, len(turns))
	copy(snapshot, turns)
	return snapshot
}

// Len returns the stored turn count for a conversation.
func (s *ConversationStore) Len(conversationID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.conversations[conversationID])
}
