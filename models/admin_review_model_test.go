package models

import "testing"

func TestParseReviewDecision(t *testing.T) {
	for _, valid := range []string{"approved", "rejected", "pending"} {
		if _, err := ParseReviewDecision(valid); err != nil {
			t.Errorf("ParseReviewDecision(%q) unexpected error: %v", valid, err)
		}
	}
	if _, err := ParseReviewDecision("maybe"); err == nil {
		t.Error("expected error for unknown decision")
	}
}

func TestReviewDecisionCampaignStatus(t *testing.T) {
	tests := []struct {
		decision ReviewDecision
		want     CampaignStatus
	}{
		{DecisionApproved, CampaignActive},
		{DecisionRejected, CampaignRejected},
		{DecisionPending, CampaignPending},
	}
	for _, tt := range tests {
		if got := tt.decision.CampaignStatus(); got != tt.want {
			t.Errorf("%s.CampaignStatus() = %s, want %s", tt.decision, got, tt.want)
		}
	}
}
