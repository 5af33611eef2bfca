package models

import "testing"

func TestApplyFundsAccumulates(t *testing.T) {
	c := Campaign{GoalAmount: 1000, RaisedAmount: 100, Status: CampaignActive}
	c.ApplyFunds(250)

	if c.RaisedAmount != 350 {
		t.Errorf("expected raised amount 350, got %.2f", c.RaisedAmount)
	}
	if c.Status != CampaignActive {
		t.Errorf("expected campaign to stay active, got %s", c.Status)
	}
}

func TestApplyFundsExactGoalCompletes(t *testing.T) {
	c := Campaign{GoalAmount: 1000, RaisedAmount: 600, Status: CampaignActive}
	c.ApplyFunds(400)

	if c.RaisedAmount != 1000 {
		t.Errorf("expected raised amount 1000, got %.2f", c.RaisedAmount)
	}
	if c.Status != CampaignCompleted {
		t.Errorf("expected campaign completed, got %s", c.Status)
	}
}

func TestApplyFundsOvershootClampsToGoal(t *testing.T) {
	c := Campaign{GoalAmount: 1000, RaisedAmount: 900, Status: CampaignActive}
	c.ApplyFunds(500)

	if c.RaisedAmount != 1000 {
		t.Errorf("overshoot should clamp to goal, got %.2f", c.RaisedAmount)
	}
	if c.Status != CampaignCompleted {
		t.Errorf("expected campaign completed, got %s", c.Status)
	}
}

func TestRemainingCapacity(t *testing.T) {
	c := Campaign{GoalAmount: 1000}

	if got := c.RemainingCapacity(300); got != 700 {
		t.Errorf("expected 700 remaining, got %.2f", got)
	}
	if got := c.RemainingCapacity(1000); got != 0 {
		t.Errorf("expected 0 remaining at goal, got %.2f", got)
	}
	if got := c.RemainingCapacity(1200); got != 0 {
		t.Errorf("remaining capacity must floor at zero, got %.2f", got)
	}
}

func TestCanAdminTransition(t *testing.T) {
	tests := []struct {
		current CampaignStatus
		target  CampaignStatus
		want    bool
	}{
		{CampaignPending, CampaignActive, true},
		{CampaignPending, CampaignRejected, true},
		{CampaignRejected, CampaignActive, true},
		{CampaignActive, CampaignRejected, true},
		{CampaignCompleted, CampaignActive, false},
		{CampaignCompleted, CampaignRejected, false},
		{CampaignCompleted, CampaignPending, false},
		{CampaignPending, CampaignCompleted, false},
	}

	for _, tt := range tests {
		c := Campaign{Status: tt.current}
		if got := c.CanAdminTransition(tt.target); got != tt.want {
			t.Errorf("CanAdminTransition(%s -> %s) = %v, want %v", tt.current, tt.target, got, tt.want)
		}
	}
}

func TestParseCampaignStatus(t *testing.T) {
	for _, valid := range []string{"pending", "active", "completed", "rejected"} {
		if _, err := ParseCampaignStatus(valid); err != nil {
			t.Errorf("ParseCampaignStatus(%q) unexpected error: %v", valid, err)
		}
	}
	for _, invalid := range []string{"", "Active", "archived", "done"} {
		if _, err := ParseCampaignStatus(invalid); err == nil {
			t.Errorf("ParseCampaignStatus(%q) expected error", invalid)
		}
	}
}

func TestParseCampaignCategory(t *testing.T) {
	if _, err := ParseCampaignCategory("medical"); err != nil {
		t.Errorf("unexpected error for medical: %v", err)
	}
	if _, err := ParseCampaignCategory("crypto"); err == nil {
		t.Error("expected error for unknown category")
	}
}
