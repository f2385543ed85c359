package core

import "testing"

func TestSteeringFrom(t *testing.T) {
	tests := []struct {
		left, right bool
		want        Steering
	}{
		{false, false, SteerNeutral},
		{true, false, SteerLeft},
		{false, true, SteerRight},
		{true, true, SteerNeutral},
	}
	for _, tt := range tests {
		if got := SteeringFrom(tt.left, tt.right); got != tt.want {
			t.Errorf("SteeringFrom(%v, %v) = %d, want %d", tt.left, tt.right, got, tt.want)
		}
	}
}
