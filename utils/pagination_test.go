package utils

import "testing"

func TestOffset(t *testing.T) {
	tests := []struct {
		page, perPage, want int
	}{
		{1, 10, 0},
		{2, 10, 10},
		{5, 25, 100},
	}
	for _, tt := range tests {
		if got := Offset(tt.page, tt.perPage); got != tt.want {
			t.Errorf("Offset(%d, %d) = %d, want %d", tt.page, tt.perPage, got, tt.want)
		}
	}
}
