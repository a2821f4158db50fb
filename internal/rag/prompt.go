package rag

import "strings"

// Role identifies the author of a conversation turn.
type Role string

// Conversation roles. System turns are filtered out by the transport before
// history reaches the pipeline.
const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is a single conversation turn, ordered chronologically by position.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// contextSeparator delimits retrieved documents inside the CONTEXT block.
const contextSeparator = "\n\n---\n\n"

// promptInstructions is the fixed instruction block placed ahead of context,
// history, and query. The history-aware variant is authoritative: context is
// the primary source, history only resolves follow-up references.
const promptInstructions = `You are a friendly and helpful AI Support Assistant for Cimba.AI.

INSTRUCTIONS:
1. Answer the USER QUERY using primarily the information provided in the CONTEXT below.
2. Also consider the CHAT HISTORY to understand follow-up questions (e.g., "how much is it?" referring to a previously discussed item).
3. If the answer is not in the context, politely state that you cannot find that information in the current documentation.
4. Keep the tone professional but warm.
5. Do not invent information (hallucinate).
6. Do NOT use markdown bolding (e.g., **text**) in your response. Keep text plain and clean.`

// BuildPrompt assembles the generation prompt from the query, retrieved
// context documents, and conversation history. Pure function, no I/O.
//
// Section order is a behavioral contract: instructions, then CONTEXT, then
// CHAT HISTORY, then USER QUERY, with those literal labels. History must
// already be truncated by the caller; the assembler renders it as-is.
func BuildPrompt(query string, contextDocuments []string, history []Turn) string {
	contextBlock := strings.Join(contextDocuments, contextSeparator)

	lines := make([]string, len(history))
	for i, turn := range history {
		lines[i] = strings.ToUpper(string(turn.Role)) + ": " + turn.Content
	}
	historyBlock := strings.Join(lines, "\n")

	var b strings.Builder
	b.WriteString(promptInstructions)
	b.WriteString("\n\nCONTEXT (The following information is true):\n")
	b.WriteString(contextBlock)
	b.WriteString("\n\nCHAT HISTORY:\n")
	b.WriteString(historyBlock)
	b.WriteString("\n\nUSER QUERY:\n")
	b.WriteString(query)
	return b.String()
}
