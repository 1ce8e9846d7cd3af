package main

import (
	"database/sql"
	"log"
	"os"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

var (
	auditDB      *sql.DB
	auditDBOnce  sync.Once
	auditEnabled bool = true // Can be set to false to disable all logging
)

// DisableAudit turns off all audit logging
func DisableAudit() {
	auditEnabled = false
	log.Println("[AUDIT] Audit logging DISABLED")
}

// ChatAuditEntry represents a complete model interaction
type ChatAuditEntry struct {
	ID             int64
	RequestID      string
	ConversationID string
	UserType       string
	Timestamp      time.Time
	Model          string
	Prompt         string
	Reply          string
	InputTokens    int
	OutputTokens   int
	Error          string
}

// InitAuditDB initializes the SQLite database for chat audit logging
func InitAuditDB(path string) error {
	// Check if audit is enabled via environment variable (default: enabled)
	if os.Getenv("ENABLE_LLM_AUDIT") == "false" {
		DisableAudit()
		return nil
	}

	var err error
	auditDBOnce.Do(func() {
		auditDB, err = sql.Open("sqlite3", path)
		if err != nil {
			log.Printf("Failed to open audit database: %v", err)
			return
		}

		// Create tables if they don't exist
		schema := `
		CREATE TABLE IF NOT EXISTS chat_audit (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			request_id TEXT NOT NULL,
			conversation_id TEXT NOT NULL,
			user_type TEXT,
			timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
			model TEXT NOT NULL,
			prompt TEXT NOT NULL,
			reply TEXT NOT NULL,
			input_tokens INTEGER,
			output_tokens INTEGER,
			error TEXT
		);

		CREATE INDEX IF NOT EXISTS idx_conversation_id ON chat_audit(conversation_id);
		CREATE INDEX IF NOT EXISTS idx_timestamp ON chat_audit(timestamp);
		`

		_, err = auditDB.Exec(schema)
		if err != nil {
			log.Printf("Failed to create audit schema: %v", err)
			return
		}

		log.Println("[AUDIT] Chat audit database initialized")
	})

	return err
}

// LogChatInteraction logs a complete model interaction to the audit database
func LogChatInteraction(entry ChatAuditEntry) {
	// Skip if audit is disabled
	if !auditEnabled {
		return
	}

	if auditDB == nil {
		// Silently skip if DB not initialized
		return
	}

	if entry.InputTokens == 0 {
		entry.InputTokens = countTokens(entry.Prompt, entry.Model)
	}
	if entry.OutputTokens == 0 && entry.Reply != "" {
		entry.OutputTokens = countTokens(entry.Reply, entry.Model)
	}

	query := `
		INSERT INTO chat_audit (
			request_id, conversation_id, user_type, model,
			prompt, reply, input_tokens, output_tokens, error
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, dbErr := auditDB.Exec(query,
		entry.RequestID, entry.ConversationID, entry.UserType, entry.Model,
		entry.Prompt, entry.Reply, entry.InputTokens, entry.OutputTokens, entry.Error)

	if dbErr != nil {
		log.Printf("[AUDIT] Failed to log chat interaction: %v", dbErr)
		return
	}

	id, _ := result.LastInsertId()
	log.Printf("[AUDIT] Logged chat interaction ID=%d, ConvID=%s, Model=%s, PromptLen=%d, ReplyLen=%d",
		id, entry.ConversationID, entry.Model, len(entry.Prompt), len(entry.Reply))
}

// AuditHistory retrieves all interactions for a conversation, oldest first
func AuditHistory(conversationID string) ([]ChatAuditEntry, error) {
	if auditDB == nil {
		return nil, sql.ErrConnDone
	}

	query := `
		SELECT id, request_id, conversation_id, user_type, timestamp, model,
		       prompt, reply, input_tokens, output_tokens, error
		FROM chat_audit
		WHERE conversation_id = ?
		ORDER BY timestamp ASC
	`

	rows, err := auditDB.Query(query, conversationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []ChatAuditEntry
	for rows.Next() {
		var entry ChatAuditEntry
		err := rows.Scan(
			&entry.ID, &entry.RequestID, &entry.ConversationID, &entry.UserType,
			&entry.Timestamp, &entry.Model, &entry.Prompt, &entry.Reply,
			&entry.InputTokens, &entry.OutputTokens, &entry.Error,
		)
		if err != nil {
			log.Printf("[AUDIT] Error scanning row: %v", err)
			continue
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
