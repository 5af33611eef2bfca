package rag

import (
	"testing"

	"github.com/waliuddin1105/crowdfund/models"
)

func TestSmallTalkReply(t *testing.T) {
	if _, ok := SmallTalkReply("hello"); !ok {
		t.Error("expected canned reply for hello")
	}
	if _, ok := SmallTalkReply("  Thanks  "); !ok {
		t.Error("small talk must be case and whitespace insensitive")
	}
	if _, ok := SmallTalkReply("how do refunds work?"); ok {
		t.Error("real questions must go through retrieval")
	}
}

func TestHistoryTurnsDropsTrailingUserMessage(t *testing.T) {
	history := []models.ChatMessage{
		{Role: "user", Message: "how do I donate?"},
		{Role: "assistant", Message: "Open a campaign page and pick an amount."},
		{Role: "user", Message: "what payment methods work?"},
	}

	turns := HistoryTurns(history)
	if len(turns) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(turns))
	}
	if turns[0].Role != "user" || turns[1].Role != "assistant" {
		t.Errorf("unexpected roles: %v", turns)
	}
}

func TestHistoryTurnsKeepsCompleteExchanges(t *testing.T) {
	history := []models.ChatMessage{
		{Role: "user", Message: "hi"},
		{Role: "assistant", Message: "Hello!"},
	}

	turns := HistoryTurns(history)
	if len(turns) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(turns))
	}
}

func TestHistoryTurnsEmpty(t *testing.T) {
	if turns := HistoryTurns(nil); len(turns) != 0 {
		t.Errorf("expected no turns, got %v", turns)
	}
}
