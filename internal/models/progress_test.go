package models

import "testing"

func TestCompletionPercent(t *testing.T) {
	cases := []struct {
		completed, total, want int
	}{
		{0, 0, 0},
		{0, 4, 0},
		{1, 4, 25},
		{2, 4, 50},
		{1, 3, 33},
		{2, 3, 67},
		{3, 3, 100},
	}
	for _, tc := range cases {
		if got := CompletionPercent(tc.completed, tc.total); got != tc.want {
			t.Errorf("CompletionPercent(%d, %d) = %d, want %d", tc.completed, tc.total, got, tc.want)
		}
	}
}
