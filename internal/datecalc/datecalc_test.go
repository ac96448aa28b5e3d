package datecalc_test

import (
	"testing"
	"time"

	"piggy/internal/datecalc"
)

func TestDayKey(t *testing.T) {
	tests := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "2024-01-01"},
		{time.Date(2024, 1, 1, 23, 59, 59, 0, time.UTC), "2024-01-01"},
		{time.Date(2026, 12, 31, 12, 30, 0, 0, time.UTC), "2026-12-31"},
	}
	for _, tt := range tests {
		got := datecalc.DayKey(tt.in)
		if got != tt.want {
			t.Errorf("DayKey(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDayKeysSortChronologically(t *testing.T) {
	a := datecalc.DayKey(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))
	b := datecalc.DayKey(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))
	if !(a < b) {
		t.Errorf("expected %q < %q", a, b)
	}
}

func TestMidnight(t *testing.T) {
	in := time.Date(2024, 2, 28, 15, 4, 5, 0, time.UTC)
	got := datecalc.Midnight(in)
	want := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC) // 2024 is a leap year
	if !got.Equal(want) {
		t.Errorf("Midnight(%v) = %v, want %v", in, got, want)
	}
}

func TestMonthLabel(t *testing.T) {
	in := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	if got := datecalc.MonthLabel(in); got != "2026-08" {
		t.Errorf("MonthLabel = %q, want %q", got, "2026-08")
	}
}
