package session

import (
	"github.com/appengine-ltd/short-order/internal/game"
)

// Snapshot is everything a client draws for one frame.
type Snapshot struct {
	Day           int
	Money         float64
	DailyEarned   float64
	Phase         game.Phase
	Clock         float64
	PrepRatio     float64
	QueueLen      int
	Printing      bool
	PrintProgress float64
	Tickets       []game.TicketView
	Selected      int
	Pulse         float64
	ReviewHeld    bool
	Capabilities  []string
	Orderable     []string
	Menu          game.Menu
	Complexity    float64
	Endgame       bool
	Summary       *game.DaySummary
	Messages      []string
	Saving        bool
}

func (s *Session) Snapshot() Snapshot {
	d := s.provider.Derivation()
	names := s.displayName
	active := s.scheduler.Active()
	tickets := make([]game.TicketView, 0, len(active))
	for _, t := range active {
		tickets = append(tickets, t.Display(names))
	}
	orderable := make([]string, 0)
	for _, id := range d.AllowedOrderItems.Sorted() {
		orderable = append(orderable, names(id))
	}
	return Snapshot{
		Day:           s.day.Day,
		Money:         s.day.Money,
		DailyEarned:   s.day.DailyEarned,
		Phase:         s.scheduler.Phase(),
		Clock:         s.scheduler.Clock(),
		PrepRatio:     s.day.PrepRatio(),
		QueueLen:      s.scheduler.QueueLen(),
		Printing:      s.scheduler.Printing() != nil,
		PrintProgress: s.scheduler.PrintProgress(),
		Tickets:       tickets,
		Selected:      s.scheduler.Selected(),
		Pulse:         s.scheduler.SelectionPulse(),
		ReviewHeld:    s.reviewHeld,
		Capabilities:  capabilityNames(d.Capabilities),
		Orderable:     orderable,
		Menu:          s.provider.Menu(),
		Complexity:    s.provider.Complexity(),
		Endgame:       d.EndgameUnlocked,
		Summary:       s.summary,
		Messages:      s.Messages(),
		Saving:        s.saveBusy,
	}
}

func (s *Session) displayName(id string) string {
	if def, ok := s.catalog.Lookup(id); ok {
		return def.DisplayName()
	}
	return id
}
