package rag

import (
	"strings"
	"testing"
)

func TestBuildPromptSectionOrder(t *testing.T) {
	t.Parallel()

	prompt := BuildPrompt("What is the refund policy?",
		[]string{"Refunds are processed within 5 days."},
		[]Turn{{Role: RoleUser, Content: "hi"}})

	sections := []string{
		"CONTEXT (The following information is true):",
		"CHAT HISTORY:",
		"USER QUERY:",
	}

	pos := -1
	for _, section := range sections {
		idx := strings.Index(prompt, section)
		if idx < 0 {
			t.Fatalf("prompt missing section %q", section)
		}
		if idx <= pos {
			t.Errorf("section %q out of order (index %d, previous %d)", section, idx, pos)
		}
		pos = idx
	}

	if !strings.HasPrefix(prompt, "You are a friendly and helpful AI Support Assistant for Cimba.AI.") {
		t.Error("prompt does not start with the instruction block")
	}
	if !strings.HasSuffix(prompt, "What is the refund policy?") {
		t.Error("prompt does not end with the verbatim user query")
	}
}

func TestBuildPromptContextSeparator(t *testing.T) {
	t.Parallel()

	prompt := BuildPrompt("q", []string{"doc one", "doc two", "doc three"}, nil)

	want := "doc one\n\n---\n\ndoc two\n\n---\n\ndoc three"
	if !strings.Contains(prompt, want) {
		t.Errorf("context documents not joined with separator:\n%s", prompt)
	}
}

func TestBuildPromptHistoryRendering(t *testing.T) {
	t.Parallel()

	history := []Turn{
		{Role: RoleUser, Content: "What plans do you offer?"},
		{Role: RoleAssistant, Content: "We offer Starter and Pro."},
		{Role: RoleUser, Content: "how much is it?"},
	}

	prompt := BuildPrompt("how much is it?", nil, history)

	want := "USER: What plans do you offer?\nASSISTANT: We offer Starter and Pro.\nUSER: how much is it?"
	if !strings.Contains(prompt, want) {
		t.Errorf("history not rendered as uppercase role lines:\n%s", prompt)
	}
}

func TestBuildPromptEmptyBlocks(t *testing.T) {
	t.Parallel()

	prompt := BuildPrompt("anything in there?", nil, nil)

	// Labels stay present even when their blocks are empty so the model
	// always sees the same prompt shape.
	if !strings.Contains(prompt, "CONTEXT (The following information is true):") {
		t.Error("CONTEXT label missing for empty retrieval")
	}
	if !strings.Contains(prompt, "CHAT HISTORY:") {
		t.Error("CHAT HISTORY label missing for empty history")
	}
	if !strings.HasSuffix(prompt, "USER QUERY:\nanything in there?") {
		t.Errorf("query block malformed:\n%s", prompt)
	}
}

func TestBuildPromptQueryVerbatim(t *testing.T) {
	t.Parallel()

	query := "  Does pricing include VAT? \n(second line)"
	prompt := BuildPrompt(query, nil, nil)

	if !strings.HasSuffix(prompt, query) {
		t.Error("query was altered by prompt assembly")
	}
}

func TestBuildPromptDeterministic(t *testing.T) {
	t.Parallel()

	docs := []string{"a", "b"}
	history := []Turn{{Role: RoleUser, Content: "x"}}

	first := BuildPrompt("q", docs, history)
	second := BuildPrompt("q", docs, history)
	if first != second {
		t.Error("identical inputs produced different prompts")
	}
}
