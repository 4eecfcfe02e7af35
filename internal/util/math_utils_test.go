package util

import "testing"

func TestPercentage(t *testing.T) {
	tests := []struct {
		name     string
		part     int
		whole    int
		expected float64
	}{
		{name: "zero whole", part: 3, whole: 0, expected: 0},
		{name: "all correct", part: 4, whole: 4, expected: 100},
		{name: "quarter", part: 1, whole: 4, expected: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Percentage(tt.part, tt.whole); got != tt.expected {
				t.Errorf("Percentage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRoundToInt(t *testing.T) {
	tests := []struct {
		in       float64
		expected int
	}{
		{62.5, 63},
		{62.4, 62},
		{40, 40},
		{0.5, 1},
	}
	for _, tt := range tests {
		if got := RoundToInt(tt.in); got != tt.expected {
			t.Errorf("RoundToInt(%v) = %v, want %v", tt.in, got, tt.expected)
		}
	}
}

func TestRoundTo(t *testing.T) {
	if got := RoundTo(2.456, 2); got != 2.46 {
		t.Errorf("RoundTo(2.456, 2) = %v, want 2.46", got)
	}
	if got := RoundTo(66.666, 1); got != 66.7 {
		t.Errorf("RoundTo(66.666, 1) = %v, want 66.7", got)
	}
}

func TestMean(t *testing.T) {
	if got := Mean(nil); got != 0 {
		t.Errorf("Mean(nil) = %v, want 0", got)
	}
	if got := Mean([]float64{100, 25}); got != 62.5 {
		t.Errorf("Mean() = %v, want 62.5", got)
	}
}
