package game

import (
	"testing"

	"github.com/appengine-ltd/short-order/internal/config"
)

func TestRateCriteria(t *testing.T) {
	b := config.Default()
	full := Menu{
		Burgers: []MenuItem{{ID: "burger"}},
		Sides:   []MenuItem{{ID: "fries"}},
		Drinks:  []MenuItem{{ID: "cola"}},
	}
	tests := []struct {
		name       string
		perfect    bool
		menu       Menu
		complexity float64
		want       StarBreakdown
		count      int
	}{
		{name: "bare day", perfect: false, menu: Menu{}, complexity: 0, want: StarBreakdown{}, count: 0},
		{name: "perfect burgers only", perfect: true, menu: Menu{Burgers: full.Burgers}, complexity: 5, want: StarBreakdown{true}, count: 1},
		{name: "low bar inclusive", perfect: false, menu: full, complexity: 15, want: StarBreakdown{false, true, true, true, false}, count: 3},
		{name: "five stars", perfect: true, menu: full, complexity: 30, want: StarBreakdown{true, true, true, true, true}, count: 5},
		{name: "just under high bar", perfect: true, menu: full, complexity: 29.9, want: StarBreakdown{true, true, true, true, false}, count: 4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			day := NewDayState(1, 0)
			day.PerfectDay = tc.perfect
			got := Rate(&day, tc.menu, tc.complexity, b)
			if got != tc.want || got.Count() != tc.count {
				t.Fatalf("got %v (%d) want %v (%d)", got, got.Count(), tc.want, tc.count)
			}
		})
	}
}

func TestServiceStarStandsAcrossDays(t *testing.T) {
	b := config.Default()
	day := NewDayState(1, 0)
	if stars := Rate(&day, Menu{}, 0, b); !stars[0] {
		t.Fatalf("expected perfect first day to earn the service star")
	}

	day.Day++
	day.BeginDay()
	day.PerfectDay = false
	stars := Rate(&day, Menu{Sides: []MenuItem{{ID: "fries"}}}, 0, b)
	if !stars[0] || !day.EarnedServiceStar {
		t.Fatalf("expected the service star to persist")
	}
	if !stars[1] || stars[2] {
		t.Fatalf("menu criteria must be judged fresh, got %v", stars)
	}
}

func TestSummarize(t *testing.T) {
	day := NewDayState(4, 0)
	day.Credit(42)
	day.DailyBagsSold = 5
	at := 180.0
	day.ClosingAt = &at
	sum := Summarize(&day, StarBreakdown{true, true})
	if sum.Day != 4 || sum.Earned != 42 || sum.BagsSold != 5 || sum.ClosingAt != 180 || sum.Stars.Count() != 2 {
		t.Fatalf("unexpected summary %+v", sum)
	}
}
