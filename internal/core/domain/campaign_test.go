package domain

import "testing"

func TestPhaseAt(t *testing.T) {
	c := &Campaign{StartsAt: 10, EndsAt: 20}

	tests := []struct {
		tick uint64
		want Phase
	}{
		{0, PhasePending},
		{9, PhasePending},
		{10, PhaseActive},
		{19, PhaseActive},
		{20, PhaseEnded},
		{100, PhaseEnded},
	}
	for _, tt := range tests {
		if got := c.PhaseAt(tt.tick); got != tt.want {
			t.Errorf("PhaseAt(%d) = %v, want %v", tt.tick, got, tt.want)
		}
	}
}
