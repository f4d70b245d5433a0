package utils

import (
	"math"
	"testing"
	"time"
)

func ts(s string) *time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestHoursBetween(t *testing.T) {
	cases := []struct {
		name  string
		start *time.Time
		end   *time.Time
		want  float64
	}{
		{"full day shift", ts("2026-02-05T09:00:00Z"), ts("2026-02-05T17:00:00Z"), 8},
		{"ninety minutes", ts("2026-02-05T09:00:00Z"), ts("2026-02-05T10:30:00Z"), 1.5},
		{"zero span", ts("2026-02-05T09:00:00Z"), ts("2026-02-05T09:00:00Z"), 0},
		{"missing start", nil, ts("2026-02-05T17:00:00Z"), 0},
		{"missing end", ts("2026-02-05T09:00:00Z"), nil, 0},
	}
	for _, c := range cases {
		if got := HoursBetween(c.start, c.end); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("%s: HoursBetween = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestEffectiveHours(t *testing.T) {
	start := ts("2026-02-05T09:00:00Z")
	end := ts("2026-02-05T17:00:00Z")

	if got := EffectiveHours(start, end, nil, nil); math.Abs(got-8) > 1e-9 {
		t.Errorf("no break: got %v, want 8", got)
	}

	bs := ts("2026-02-05T13:00:00Z")
	be := ts("2026-02-05T14:00:00Z")
	if got := EffectiveHours(start, end, bs, be); math.Abs(got-7) > 1e-9 {
		t.Errorf("one hour break: got %v, want 7", got)
	}

	// Break started but never ended does not count.
	if got := EffectiveHours(start, end, bs, nil); math.Abs(got-8) > 1e-9 {
		t.Errorf("open break: got %v, want 8", got)
	}

	// Break longer than the shift floors at zero.
	longBreak := ts("2026-02-05T18:00:00Z")
	if got := EffectiveHours(start, end, start, longBreak); got != 0 {
		t.Errorf("oversized break: got %v, want 0", got)
	}
}

func TestOvertime(t *testing.T) {
	cases := []struct {
		effective, baseline, want float64
	}{
		{9.5, 8, 1.5},
		{8, 8, 0},
		{4, 8, 0},
		{10, 7.5, 2.5},
	}
	for _, c := range cases {
		if got := Overtime(c.effective, c.baseline); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("Overtime(%v, %v) = %v, want %v", c.effective, c.baseline, got, c.want)
		}
	}
}

func TestRound2(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0.125, 0.13}, // half rounds away from zero
		{-0.125, -0.13},
		{7.994, 7.99},
		{7.996, 8},
		{0, 0},
		{8.0, 8.0},
	}
	for _, c := range cases {
		if got := Round2(c.in); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("Round2(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
