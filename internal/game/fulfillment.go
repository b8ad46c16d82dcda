package game

import "github.com/appengine-ltd/short-order/internal/config"

type Tier string

const (
	TierNone   Tier = ""
	TierFast   Tier = "fast"
	TierOnTime Tier = "on_time"
	TierLate   Tier = "late"
)

// Delivery describes the effect of handing one bag to one ticket.
type Delivery struct {
	Matched     bool
	TicketID    string
	Requirement int
	BagPayout   float64
	Completed   bool
	Diff        float64
	Tier        Tier
	TierReward  float64
	Rebate      float64
}

// ScoreTier maps the time left on a finished ticket to its payout tier.
func ScoreTier(diff float64, b config.Balance) (Tier, float64) {
	switch {
	case diff >= b.FastThresholdSeconds:
		return TierFast, b.FastReward
	case diff >= 0:
		return TierOnTime, b.OnTimeReward
	default:
		return TierLate, b.LateReward
	}
}

// Verify decides what delivering bag to the ticket at target would do. Only
// that ticket is considered; it mutates nothing.
func Verify(bag Bag, active []*Ticket, target int, b config.Balance) Delivery {
	if target < 0 || target >= len(active) || active[target] == nil {
		return Delivery{}
	}
	t := active[target]
	req, payout, ok := t.MatchBag(bag)
	if !ok {
		return Delivery{TicketID: t.ID}
	}
	d := Delivery{
		Matched:     true,
		TicketID:    t.ID,
		Requirement: req,
		BagPayout:   payout,
		Completed:   t.completesWith(req),
	}
	if d.Completed {
		d.Diff = t.ParTime - t.ElapsedTime
		d.Tier, d.TierReward = ScoreTier(d.Diff, b)
		d.Rebate = t.ParTime * b.RebateFraction
	}
	return d
}

// Deliver applies a bag to the selected ticket. A non-match changes
// nothing and the caller leaves the bag where it is. Deliver never closes
// the day; the next Tick does.
func (s *Scheduler) Deliver(day *DayState, bag Bag) Delivery {
	d := Verify(bag, s.active, s.selected, s.balance)
	if !d.Matched {
		return d
	}
	t := s.active[s.selected]
	t.markDelivered(d.Requirement)
	day.Credit(d.BagPayout)
	day.DailyBagsSold++

	if !d.Completed {
		return d
	}
	day.Credit(d.TierReward)
	day.DailyServed++
	if d.Tier == TierLate {
		day.PerfectDay = false
		day.DailyLate++
	}
	s.applyRebate(t, d.Rebate)
	s.removeActive(s.selected)
	return d
}

// applyRebate hands bonus time to every other ticket on the rail, including
// ones that have not started counting yet. There is no floor.
func (s *Scheduler) applyRebate(done *Ticket, rebate float64) {
	if rebate == 0 {
		return
	}
	for _, t := range s.active {
		if t != done {
			t.ElapsedTime -= rebate
		}
	}
	if s.printing != nil {
		s.printing.ElapsedTime -= rebate
	}
	for _, t := range s.queue {
		t.ElapsedTime -= rebate
	}
}

func (s *Scheduler) removeActive(idx int) {
	if idx < 0 || idx >= len(s.active) {
		return
	}
	s.active = append(s.active[:idx], s.active[idx+1:]...)
	s.clampSelection()
}
