package ethics

import (
	"testing"
	"time"
)

func TestClassifyDelayBoundaries(t *testing.T) {
	tests := []struct {
		days int
		want string
	}{
		{0, StatusOnTime},
		{30, StatusOnTime},
		{31, StatusLate},
		{45, StatusLate},
		{46, StatusViolation},
		{60, StatusViolation},
		// Filed before traded: classified on-time, date ordering is not
		// validated here.
		{-3, StatusOnTime},
	}
	for _, tt := range tests {
		if got := ClassifyDelay(tt.days); got != tt.want {
			t.Fatalf("ClassifyDelay(%d) = %q, want %q", tt.days, got, tt.want)
		}
	}
}

func TestFilingDelay(t *testing.T) {
	traded := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	filed := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	if got := FilingDelay(traded, filed); got != 60 {
		t.Fatalf("FilingDelay = %d, want 60", got)
	}
	if got := FilingDelay(filed, traded); got != -60 {
		t.Fatalf("reverse FilingDelay = %d, want -60", got)
	}
	// Partial days round up.
	filedNoon := time.Date(2024, time.January, 2, 12, 0, 0, 0, time.UTC)
	if got := FilingDelay(traded, filedNoon); got != 2 {
		t.Fatalf("FilingDelay partial day = %d, want 2", got)
	}
}
