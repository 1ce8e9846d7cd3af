package main

import (
	"context"
	"fmt"
	"log"
	"strings"

	"emis.chat/providers"
	"emis.chat/routing"
)

// apologyReply is returned for any collaborator failure. It is never
// appended to history so a retried request is not polluted by it.
const apologyReply = "I'm having trouble processing your request. Please try again."

const loginGateBase = "You need to log in to access this feature. "

const loginGateGeneric = "Please log in to access this feature."

// loginSuffixes specialize the login-gate reply when the message names a
// role. First match wins, in declared order.
var loginSuffixes = []struct {
	Phrases []string
	Suffix  string
}{
	{[]string{"as a teacher", "teacher functions"}, "Please log in with your teacher credentials to access teacher features."},
	{[]string{"as a parent", "parent functions"}, "Please log in with your parent credentials to check your child's information."},
	{[]string{"as admin", "admin functions"}, "Please log in with your admin credentials to access administration features."},
	{[]string{"as principal", "principal functions"}, "Please log in with your principal credentials to access school management features."},
}

// Replier turns a message into an assistant reply: fixed greetings and
// login-gate replies locally, everything else through the collaborator.
type Replier struct {
	store     *ConversationStore
	generator providers.Generator
	model     string
}

func NewReplier(store *ConversationStore, generator providers.Generator, model string) *Replier {
	return &Replier{store: store, generator: generator, model: model}
}

// Reply produces the reply for message/role under conversationID.
// requestID ties the interaction to its audit row.
func (r *Replier) Reply(ctx context.Context, requestID, message, role, conversationID string) string {
	// Simple greetings never reach the model. Both turns still land in
	// history.
	if routing.IsGreeting(message) {
		reply := routing.GreetingReply(role)
		r.store.Append(conversationID, Turn{Role: "user", Content: message})
		r.store.Append(conversationID, Turn{Role: "assistant", Content: reply})
		return reply
	}

	r.store.Append(conversationID, Turn{Role: "user", Content: message})
	r.store.Trim(conversationID)

	// Anonymous users asking about restricted topics get the canned
	// login reply; the model is not consulted.
	if routing.NeedsLogin(message, role) {
		reply := loginGateReply(message)
		r.store.Append(conversationID, Turn{Role: "assistant", Content: reply})
		return reply
	}

	prompt := buildPrompt(role, r.store.History(conversationID))

	result, err := r.generator.Generate(ctx, r.model, prompt)
	if err != nil {
		log.Printf("[Replier] Generation failed for conversation %s: %v", conversationID, err)
		LogChatInteraction(ChatAuditEntry{
			RequestID:      requestID,
			ConversationID: conversationID,
			UserType:       role,
			Model:          r.model,
			Prompt:         prompt,
			Error:          err.Error(),
		})
		// Deliberately not appended: a retry of the same request must
		// not see the apology as prior context.
		return apologyReply
	}

	reply := cleanReply(result.Content)
	r.store.Append(conversationID, Turn{Role: "assistant", Content: reply})

	LogChatInteraction(ChatAuditEntry{
		RequestID:      requestID,
		ConversationID: conversationID,
		UserType:       role,
		Model:          r.model,
		Prompt:         prompt,
		Reply:          reply,
		InputTokens:    result.InputTokens,
		OutputTokens:   result.OutputTokens,
	})
	return reply
}

// loginGateReply builds the fixed login prompt, specialized by the first
// role phrase found in the message.
func loginGateReply(message string) string {
	m := strings.ToLower(message)
	for _, entry := range loginSuffixes {
		for _, phrase := range entry.Phrases {
			if strings.Contains(m, phrase) {
				return loginGateBase + entry.Suffix
			}
		}
	}
	return loginGateBase + loginGateGeneric
}

// buildPrompt renders the role-aware prompt: capability list, behavioral
// instructions, and the trimmed conversation serialized one turn per
// line.
func buildPrompt(role string, history []Turn) string {
	display := strings.ToLower(role)
	if display == "" {
		display = "guest"
	}

	var caps strings.Builder
	for _, op := range routing.Capabilities(role) {
		caps.WriteString("- ")
		caps.WriteString(op)
		caps.WriteString("\n")
	}

	var conversation strings.Builder
	for _, turn := range history {
		conversation.WriteString(capitalize(turn.Role))
		conversation.WriteString(": ")
		conversation.WriteString(turn.Content)
		conversation.WriteString("\n")
	}

	return fmt.Sprintf(`You are an AI assistant for an education management system. The user is a %s.

Here's what %s users can do in this system:
%s
IMPORTANT INSTRUCTIONS:
1. NEVER mention searching databases, fetching data, or retrieving information.
2. Instead, directly tell users what they can or cannot access based on their role.
3. If a user asks about accessing information they don't have permission for, simply state they don't have access to that information due to their role.
4. If a user asks about a specific person or data, don't say you're "fetching" or "searching" - just explain what they can see based on their permissions.
5. If a guest user asks about features requiring login, suggest they log in to access those features.

Give ONLY the direct response to the user's query without any explanation of your reasoning.
Keep responses concise (2-3 sentences maximum) and natural sounding.
DO NOT include markdown formatting, numbered steps, or reasoning steps in your response.

Conversation:
%s`, display, display, caps.String(), conversation.String())
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
