package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"emis.chat/config"
	"emis.chat/providers"
)

func main() {
	cfg, err := config.LoadConfig("config")
	if err != nil {
		log.Printf("Config not loaded, using defaults: %v", err)
		cfg = config.Default()
	}

	if !cfg.Audit.Enabled {
		DisableAudit()
	} else if err := InitAuditDB(cfg.Audit.Path); err != nil {
		log.Printf("Audit database unavailable, continuing without it: %v", err)
	}

	generator := providers.NewGeminiProvider(providers.GeminiConfig{
		BaseURL:           cfg.LLM.BaseURL,
		APIKey:            os.Getenv("GOOGLE_API_KEY"),
		Temperature:       cfg.LLM.Temperature,
		MaxTokens:         cfg.LLM.MaxTokens,
		MaxRetries:        cfg.LLM.MaxRetries,
		Timeout:           cfg.ParseTimeout(),
		RequestsPerSecond: cfg.LLM.RequestsPerSecond,
	})

	store := NewConversationStore()
	replier := NewReplier(store, generator, cfg.LLM.Model)
	server := NewServer(store, replier, cfg.Server.AllowedOrigin)

	addr := fmt.Sprintf(":%d", HTTP_PORT)
	log.Printf("Starting chat server on %s (model=%s, origin=%s)",
		addr, cfg.LLM.Model, cfg.Server.AllowedOrigin)
	if err := http.ListenAndServe(addr, server.Routes()); err != nil {
		log.Fatal(err)
	}
}
