package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"emis.chat/routing"
)

// ChatRequest is the /chat request body.
type ChatRequest struct {
	Message        string `json:"message"`
	UserType       string `json:"userType"`
	ConversationID string `json:"conversationId"`
}

// ChatResponse is the /chat response body. Link is omitted when no
// navigation target applies (greetings).
type ChatResponse struct {
	Message        string `json:"message"`
	UserType       string `json:"userType"`
	Response       string `json:"response"`
	Link           string `json:"link,omitempty"`
	LoginRequired  bool   `json:"loginRequired"`
	ActionText     string `json:"actionText"`
	FeatureName    string `json:"featureName"`
	LinkText       string `json:"linkText"`
	ConversationID string `json:"conversationId"`
}

// Server is the HTTP surface. Dependencies are injected once at startup.
type Server struct {
	store         *ConversationStore
	replier       *Replier
	allowedOrigin string
}

func NewServer(store *ConversationStore, replier *Replier, allowedOrigin string) *Server {
	return &Server{store: store, replier: replier, allowedOrigin: allowedOrigin}
}

// Routes registers the handlers on a fresh mux.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/chat", s.handleChat)
	mux.HandleFunc("/health", s.handleHealth)
	return mux
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	s.setCORSHeaders(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Failed to parse request body", http.StatusBadRequest)
		return
	}

	role := req.UserType
	if role == "" {
		role = "guest"
	}
	conversationID := s.store.ResolveID(req.ConversationID, role)
	requestID := uuid.NewString()
	start := time.Now()

	// Validation errors are replies, not HTTP errors.
	if req.Message == "" {
		writeJSON(w, ChatResponse{
			Message:        req.Message,
			UserType:       role,
			Response:       "Please provide a message.",
			Link:           "/help",
			ActionText:     "access this feature",
			FeatureName:    "this feature",
			LinkText:       "Click here",
			ConversationID: conversationID,
		})
		return
	}

	greeted := routing.IsGreeting(req.Message)
	cls := routing.Resolve(req.Message, role)
	reply := s.replier.Reply(r.Context(), requestID, req.Message, role, conversationID)

	featureName := routing.FeatureLabel(cls.Feature)
	linkText := "Click here"
	if cls.Feature != "" {
		linkText = "Go to " + titleWords(featureName)
	}
	actionText := "View " + featureName
	if cls.LoginRequired {
		actionText = fmt.Sprintf("Log in to access %s", featureName)
		linkText = "Log in"
	}

	resp := ChatResponse{
		Message:        req.Message,
		UserType:       role,
		Response:       reply,
		Link:           cls.Link,
		LoginRequired:  cls.LoginRequired,
		ActionText:     actionText,
		FeatureName:    featureName,
		LinkText:       linkText,
		ConversationID: conversationID,
	}
	if greeted {
		// Greetings navigate nowhere.
		resp.Link = ""
	}
	writeJSON(w, resp)

	log.Printf("[Chat] request_id=%s user_type=%s conv=%s login_required=%v duration=%s",
		requestID, role, conversationID, resp.LoginRequired, time.Since(start))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, `{"status":"ok"}`)
}

func (s *Server) setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", s.allowedOrigin)
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[Chat] Failed to encode response: %v", err)
	}
}

// titleWords uppercases the first letter of each space-separated word
// ("contact admin" -> "Contact Admin").
func titleWords(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = capitalize(word)
	}
	return strings.Join(words, " ")
}
