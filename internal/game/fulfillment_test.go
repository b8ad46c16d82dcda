package game

import (
	"testing"

	"github.com/appengine-ltd/short-order/internal/config"
)

func TestScoreTierBoundaries(t *testing.T) {
	b := config.Default()
	tests := []struct {
		diff float64
		want Tier
	}{
		{diff: 45, want: TierFast},
		{diff: 20, want: TierFast},
		{diff: 19.999, want: TierOnTime},
		{diff: 0, want: TierOnTime},
		{diff: -0.001, want: TierLate},
		{diff: -90, want: TierLate},
	}
	for _, tc := range tests {
		got, _ := ScoreTier(tc.diff, b)
		if got != tc.want {
			t.Fatalf("ScoreTier(%.3f)=%s want %s", tc.diff, got, tc.want)
		}
	}
}

func TestDeliverTwoTicketsScenario(t *testing.T) {
	a, b := parTicket("a", 30), parTicket("b", 30)
	a.ElapsedTime = 10
	b.ElapsedTime = 4
	s, day := serviceRail([]*Ticket{a, b}, nil, nil)
	start := day.Money

	d := s.Deliver(day, simpleBag())
	if !d.Matched || !d.Completed || d.Tier != TierFast {
		t.Fatalf("expected fast completion, got %+v", d)
	}
	bal := config.Default()
	if want := start + 8 + bal.FastReward; day.Money != want {
		t.Fatalf("money=%.2f want %.2f", day.Money, want)
	}
	if day.DailyEarned != 8+bal.FastReward || day.DailyBagsSold != 1 || day.DailyServed != 1 {
		t.Fatalf("unexpected day counters %+v", day)
	}
	if b.ElapsedTime != -11 {
		t.Fatalf("expected b elapsed reduced by 15 to -11, got %.2f", b.ElapsedTime)
	}
	if a.ElapsedTime != 10 {
		t.Fatalf("completed ticket must not receive its own rebate, got %.2f", a.ElapsedTime)
	}
	if len(s.Active()) != 1 || s.Active()[0] != b {
		t.Fatalf("expected only b left active")
	}
	if !day.PerfectDay {
		t.Fatalf("fast serve must keep the perfect day")
	}
}

func TestRebateReachesEveryWaitingTicket(t *testing.T) {
	done := parTicket("done", 40)
	others := []*Ticket{parTicket("x", 30), parTicket("y", 30), parTicket("z", 30)}
	for i, o := range others {
		o.ElapsedTime = float64(i)
	}
	printing := parTicket("printing", 30)
	queued := []*Ticket{parTicket("q1", 30), parTicket("q2", 30)}
	active := append([]*Ticket{others[0], done}, others[1:]...)
	s, day := serviceRail(active, printing, queued)
	s.selected = 1

	d := s.Deliver(day, simpleBag())
	if d.Rebate != 20 {
		t.Fatalf("expected rebate 20, got %.2f", d.Rebate)
	}
	for i, o := range others {
		if want := float64(i) - 20; o.ElapsedTime != want {
			t.Fatalf("%s elapsed=%.2f want %.2f", o.ID, o.ElapsedTime, want)
		}
	}
	if printing.ElapsedTime != -20 {
		t.Fatalf("printing ticket elapsed=%.2f want -20", printing.ElapsedTime)
	}
	for _, q := range queued {
		if q.ElapsedTime != -20 {
			t.Fatalf("queued %s elapsed=%.2f want -20", q.ID, q.ElapsedTime)
		}
	}
	if done.ElapsedTime != 0 {
		t.Fatalf("completed ticket elapsed changed to %.2f", done.ElapsedTime)
	}
}

func TestDeliverOnlyTargetsSelectedTicket(t *testing.T) {
	a := NewTicket("a", 1, []BagRequirement{{Drinks: []string{"cola"}, Value: 3}})
	b := NewTicket("b", 1, []BagRequirement{simpleRequirement()})
	s, day := serviceRail([]*Ticket{a, b}, nil, nil)

	d := s.Deliver(day, simpleBag())
	if d.Matched {
		t.Fatalf("bag for b must not match selected a")
	}
	if day.Money != 100 || day.DailyBagsSold != 0 || len(s.Active()) != 2 {
		t.Fatalf("non-match must have no effect")
	}

	s.CycleSelection()
	if d := s.Deliver(day, simpleBag()); !d.Matched {
		t.Fatalf("expected match once b is selected")
	}
}

func TestVerifyIsPure(t *testing.T) {
	a := parTicket("a", 30)
	active := []*Ticket{a}
	d := Verify(simpleBag(), active, 0, config.Default())
	if !d.Matched || !d.Completed {
		t.Fatalf("expected a match, got %+v", d)
	}
	if a.IsComplete() || a.BagsDelivered() != 0 {
		t.Fatalf("verify must not mutate the ticket")
	}
	if d := Verify(simpleBag(), active, 3, config.Default()); d.Matched {
		t.Fatalf("out of range target must not match")
	}
}

func TestDeliverMultiBagTicket(t *testing.T) {
	tk := NewTicket("family", 4, []BagRequirement{
		{Burgers: []BurgerSpec{{}, {Modifications: []string{"cheese"}}}, Value: 17},
		{Sides: []string{"fries"}, Drinks: []string{"cola", "cola"}, Value: 10},
	})
	tk.ParTime = 60
	other := parTicket("other", 30)
	s, day := serviceRail([]*Ticket{tk, other}, nil, nil)

	first := s.Deliver(day, Bag{Burgers: []BurgerSpec{{Modifications: []string{"cheese"}}, {}}})
	if !first.Matched || first.Completed || first.BagPayout != 17 {
		t.Fatalf("expected partial delivery paying 17, got %+v", first)
	}
	if len(s.Active()) != 2 || other.ElapsedTime != 0 {
		t.Fatalf("partial delivery must not remove the ticket or rebate")
	}

	second := s.Deliver(day, Bag{Sides: []string{"fries"}, Drinks: []string{"cola", "cola"}})
	if !second.Matched || !second.Completed {
		t.Fatalf("expected completion on the second bag, got %+v", second)
	}
	if day.DailyBagsSold != 2 || day.DailyServed != 1 {
		t.Fatalf("expected 2 bags and 1 ticket, got %d/%d", day.DailyBagsSold, day.DailyServed)
	}
	if other.ElapsedTime != -30 {
		t.Fatalf("expected rebate of 30, got %.2f", other.ElapsedTime)
	}
}

func TestDeliverLateEndsPerfectDay(t *testing.T) {
	a := parTicket("a", 30)
	a.ElapsedTime = 30.001
	s, day := serviceRail([]*Ticket{a}, nil, []*Ticket{parTicket("q", 30)})
	d := s.Deliver(day, simpleBag())
	if d.Tier != TierLate || d.TierReward != config.Default().LateReward {
		t.Fatalf("expected late tier, got %+v", d)
	}
	if day.PerfectDay || day.DailyLate != 1 {
		t.Fatalf("expected perfect day lost")
	}

	b := parTicket("b", 30)
	s.active = []*Ticket{b}
	s.Deliver(day, simpleBag())
	if day.PerfectDay {
		t.Fatalf("perfect day must stay lost for the rest of the day")
	}
}

func TestDeliverResetsSelectionPastEnd(t *testing.T) {
	s, day := serviceRail([]*Ticket{parTicket("a", 30), parTicket("b", 30), parTicket("c", 30)}, nil, nil)
	s.CycleSelection()
	s.CycleSelection()
	s.Deliver(day, simpleBag())
	if s.Selected() != 0 {
		t.Fatalf("expected selection reset to 0, got %d", s.Selected())
	}
	if s.SelectedTicket() == nil || s.SelectedTicket().ID != "a" {
		t.Fatalf("expected a selected")
	}
}

func TestDeliverKeepsSelectionInRange(t *testing.T) {
	s, day := serviceRail([]*Ticket{parTicket("a", 30), parTicket("b", 30), parTicket("c", 30)}, nil, nil)
	s.CycleSelection()
	s.Deliver(day, simpleBag())
	if s.Selected() != 1 || s.SelectedTicket().ID != "c" {
		t.Fatalf("expected c to slide under the cursor")
	}
}

func TestDeliverNeverClosesDay(t *testing.T) {
	s, day := serviceRail([]*Ticket{parTicket("a", 30)}, nil, nil)
	s.Deliver(day, simpleBag())
	if day.Closed() || s.Phase() != PhaseService {
		t.Fatalf("delivery must leave closing to the tick")
	}
	events := s.Tick(day, secs(0.016))
	if len(events) != 1 || events[0].Kind != EventClosing {
		t.Fatalf("expected closing on the next tick")
	}
}
