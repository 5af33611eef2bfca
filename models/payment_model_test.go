package models

import "testing"

func TestPaymentCanTransitionTo(t *testing.T) {
	tests := []struct {
		current PaymentStatus
		target  PaymentStatus
		want    bool
	}{
		{PaymentPending, PaymentSuccessful, true},
		{PaymentPending, PaymentFailed, true},
		{PaymentFailed, PaymentPending, true},
		{PaymentFailed, PaymentRefunded, true},
		{PaymentRefunded, PaymentPending, true},
		{PaymentSuccessful, PaymentPending, false},
		{PaymentSuccessful, PaymentFailed, false},
		{PaymentSuccessful, PaymentRefunded, false},
		{PaymentSuccessful, PaymentSuccessful, false},
	}

	for _, tt := range tests {
		p := Payment{Status: tt.current}
		if got := p.CanTransitionTo(tt.target); got != tt.want {
			t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", tt.current, tt.target, got, tt.want)
		}
	}
}

func TestParsePaymentStatus(t *testing.T) {
	for _, valid := range []string{"pending", "successful", "failed", "refunded"} {
		if _, err := ParsePaymentStatus(valid); err != nil {
			t.Errorf("ParsePaymentStatus(%q) unexpected error: %v", valid, err)
		}
	}
	for _, invalid := range []string{"", "success", "SUCCESSFUL", "cancelled"} {
		if _, err := ParsePaymentStatus(invalid); err == nil {
			t.Errorf("ParsePaymentStatus(%q) expected error", invalid)
		}
	}
}
