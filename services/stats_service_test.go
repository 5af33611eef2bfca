package services

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
)

func TestImpactScore(t *testing.T) {
	tests := []struct {
		name      string
		completed int64
		total     int64
		want      float64
	}{
		{"no campaigns supported", 0, 0, 0},
		{"none completed", 0, 4, 0},
		{"all completed", 4, 4, 5},
		{"half completed", 2, 4, 2.5},
		{"rounds to one decimal", 1, 3, 1.7},
		{"two of three", 2, 3, 3.3},
	}

	for _, tt := range tests {
		if got := ImpactScore(tt.completed, tt.total); got != tt.want {
			t.Errorf("%s: ImpactScore(%d, %d) = %v, want %v", tt.name, tt.completed, tt.total, got, tt.want)
		}
	}
}

// A creator with no active campaigns must get a fully-populated zeroed
// payload, never missing fields or an error.
func TestCreatorStatsZeroValueShape(t *testing.T) {
	stats := CreatorStats{CreatorID: uuid.New()}

	raw, err := json.Marshal(stats)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	for _, key := range []string{"active_campaigns", "total_raised", "total_donors"} {
		v, present := payload[key]
		if !present {
			t.Errorf("missing field %q in zeroed stats", key)
			continue
		}
		if v != float64(0) {
			t.Errorf("field %q = %v, want 0", key, v)
		}
	}
}
