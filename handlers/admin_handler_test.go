package handlers

import (
	"strings"
	"testing"

	"github.com/waliuddin1105/crowdfund/models"
)

func TestReviewEmailApproved(t *testing.T) {
	subject, body, ok := reviewEmail(models.DecisionApproved, "alex", "Clean Water", nil)
	if !ok {
		t.Fatal("approved decisions must produce an email")
	}
	if subject == "" || !strings.Contains(body, "Clean Water") {
		t.Errorf("approval email missing campaign title: subject=%q body=%q", subject, body)
	}
}

func TestReviewEmailRejected(t *testing.T) {
	comments := "incomplete description"
	subject, body, ok := reviewEmail(models.DecisionRejected, "alex", "Clean Water", &comments)
	if !ok {
		t.Fatal("rejected decisions must produce an email")
	}
	if subject == "" || !strings.Contains(body, "Clean Water") {
		t.Errorf("rejection email missing campaign title: subject=%q body=%q", subject, body)
	}
}

func TestReviewEmailPendingSendsNothing(t *testing.T) {
	if _, _, ok := reviewEmail(models.DecisionPending, "alex", "Clean Water", nil); ok {
		t.Error("pending decisions must not send an email")
	}
}
