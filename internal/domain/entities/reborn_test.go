package entities

import (
	"testing"
	"time"
)

func TestReborn_AgeInDays(t *testing.T) {
	birth := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	r := Reborn{BirthDate: birth}

	cases := []struct {
		name string
		now  time.Time
		want int
	}{
		{name: "exact days", now: birth.Add(10 * 24 * time.Hour), want: 10},
		{name: "partial day rounds up", now: birth.Add(10*24*time.Hour + time.Millisecond), want: 11},
		{name: "a few hours", now: birth.Add(3 * time.Hour), want: 1},
		{name: "future birth date uses absolute value", now: birth.Add(-36 * time.Hour), want: 2},
		{name: "same instant", now: birth, want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.AgeInDays(tc.now); got != tc.want {
				t.Fatalf("expected %d got %d", tc.want, got)
			}
		})
	}
}

func TestReborn_BelongsToUser(t *testing.T) {
	r := Reborn{ID: "r-1", UserID: "user-1"}
	if !r.BelongsToUser("user-1") {
		t.Fatalf("expected owner match")
	}
	if r.BelongsToUser("user-2") {
		t.Fatalf("expected owner mismatch")
	}
	if (Reborn{}).BelongsToUser("") {
		t.Fatalf("empty owner must never match")
	}
}
