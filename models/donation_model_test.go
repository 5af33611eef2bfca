package models

import "testing"

func TestParseDonationStatus(t *testing.T) {
	for _, valid := range []string{"pending", "completed", "cancelled", "refunded"} {
		if _, err := ParseDonationStatus(valid); err != nil {
			t.Errorf("ParseDonationStatus(%q) unexpected error: %v", valid, err)
		}
	}
	for _, invalid := range []string{"", "canceled", "done"} {
		if _, err := ParseDonationStatus(invalid); err == nil {
			t.Errorf("ParseDonationStatus(%q) expected error", invalid)
		}
	}
}

func TestCommittedStatuses(t *testing.T) {
	committed := map[DonationStatus]bool{}
	for _, s := range CommittedStatuses {
		committed[s] = true
	}

	if !committed[DonationPending] || !committed[DonationCompleted] {
		t.Error("pending and completed donations must count against capacity")
	}
	if committed[DonationCancelled] || committed[DonationRefunded] {
		t.Error("cancelled and refunded donations must release capacity")
	}
}
