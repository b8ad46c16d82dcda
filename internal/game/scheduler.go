package game

import (
	"math"
	"sort"
	"time"

	"github.com/appengine-ltd/short-order/internal/config"
)

type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhasePrep    Phase = "prep"
	PhaseService Phase = "service"
	PhaseClosed  Phase = "closed"
)

type EventKind string

const (
	EventServiceOpened  EventKind = "service_opened"
	EventTicketPrinting EventKind = "ticket_printing"
	EventTicketActive   EventKind = "ticket_active"
	EventClosing        EventKind = "closing"
)

type Event struct {
	Kind   EventKind
	Ticket *Ticket
	At     float64
}

// Scheduler owns the ticket rail: the queued backlog, the single printing
// slot and the active tickets the player can select and serve.
type Scheduler struct {
	balance config.Balance

	phase    Phase
	queue    []*Ticket
	printing *Ticket
	active   []*Ticket
	selected int

	arrivalTimer float64
	printTimer   float64
	clock        float64
	pulse        float64
}

func NewScheduler(balance config.Balance) *Scheduler {
	return &Scheduler{balance: balance, phase: PhaseIdle}
}

func (s *Scheduler) Balance() config.Balance { return s.balance }

// Start resets the rail for a new day and loads the backlog.
func (s *Scheduler) Start(day *DayState, source TicketSource, provider MenuProvider) {
	menu := Menu{}
	complexity := 0.0
	if provider != nil {
		menu = provider.Menu()
		complexity = provider.Complexity()
	}

	prep := s.balance.PrepBaseSeconds + math.Floor(complexity)*s.balance.PrepPerComplexitySeconds
	day.PrepDuration = prep
	day.PrepRemaining = prep
	day.ClosingAt = nil

	var backlog []*Ticket
	if source != nil {
		for _, t := range source.GenerateDailyOrders(day.Day, menu) {
			if t != nil {
				backlog = append(backlog, t)
			}
		}
	}
	if len(backlog) == 0 {
		backlog = []*Ticket{s.fallbackTicket(source, menu, prep)}
	}
	sort.SliceStable(backlog, func(i, j int) bool {
		return backlog[i].ArrivalTime < backlog[j].ArrivalTime
	})

	s.phase = PhasePrep
	s.queue = backlog
	s.printing = nil
	s.active = nil
	s.selected = 0
	s.arrivalTimer = 0
	s.printTimer = 0
	s.clock = 0
	s.pulse = 0
}

// fallbackTicket guarantees every day has something to serve.
func (s *Scheduler) fallbackTicket(source TicketSource, menu Menu, prep float64) *Ticket {
	var t *Ticket
	if source != nil {
		profile := source.GenerateCustomerProfile(menu)
		t = source.CreateTicketFromCustomers([]CustomerProfile{profile}, 1)
	}
	if t == nil {
		t = NewTicket("walk-in", 1, []BagRequirement{{Burgers: []BurgerSpec{{}}}})
	}
	t.ArrivalTime = prep + s.balance.FallbackArrivalOffset
	return t
}

// Tick advances the rail by dt. Once closing has fired nothing moves until
// the next Start.
func (s *Scheduler) Tick(day *DayState, dt time.Duration) []Event {
	if s.phase != PhasePrep && s.phase != PhaseService {
		return nil
	}
	step := dt.Seconds()
	if step < 0 {
		step = 0
	}
	s.clock += step
	s.pulse += step

	var events []Event
	// carry is the part of the frame that ran past the end of prep.
	carry := 0.0
	if s.phase == PhasePrep {
		day.PrepRemaining -= step
		if day.PrepRemaining > 0 {
			return nil
		}
		carry = -day.PrepRemaining
		day.PrepRemaining = 0
		s.phase = PhaseService
		s.arrivalTimer = s.balance.ArrivalIntervalSeconds
		events = append(events, Event{Kind: EventServiceOpened, At: s.clock - carry})
		step = 0
	}

	s.arrivalTimer += step

	for _, t := range s.active {
		t.ElapsedTime += step
	}

	if s.printing != nil {
		s.printTimer += step
		if s.printTimer >= s.balance.PrintSeconds {
			t := s.printing
			s.active = append(s.active, t)
			s.printing = nil
			events = append(events, Event{Kind: EventTicketActive, Ticket: t, At: s.clock})
		}
	}

	if s.arrivalTimer >= s.balance.ArrivalIntervalSeconds && s.printing == nil && len(s.queue) > 0 {
		s.printing = s.queue[0]
		s.queue = s.queue[1:]
		s.arrivalTimer = carry
		s.printTimer = carry
		events = append(events, Event{Kind: EventTicketPrinting, Ticket: s.printing, At: s.clock - carry})
	}

	if ev, ok := s.checkClosing(day); ok {
		events = append(events, ev)
	}
	return events
}

func (s *Scheduler) checkClosing(day *DayState) (Event, bool) {
	if s.phase != PhaseService || day.ClosingAt != nil {
		return Event{}, false
	}
	if len(s.queue) > 0 || s.printing != nil || len(s.active) > 0 {
		return Event{}, false
	}
	at := s.clock
	day.ClosingAt = &at
	s.phase = PhaseClosed
	return Event{Kind: EventClosing, At: at}, true
}

// GiveUp abandons every ticket on the rail and charges the penalty for each
// ticket that was active. It returns the penalty charged.
func (s *Scheduler) GiveUp(day *DayState) float64 {
	if s.phase != PhasePrep && s.phase != PhaseService {
		return 0
	}
	abandoned := len(s.queue) + len(s.active)
	if s.printing != nil {
		abandoned++
	}
	penalty := s.balance.GiveUpPenalty * float64(len(s.active))
	day.Money -= penalty
	day.DailyGivenUp += abandoned

	s.queue = nil
	s.printing = nil
	s.active = nil
	s.selected = 0
	if s.phase == PhasePrep {
		day.PrepRemaining = 0
		s.phase = PhaseService
	}
	return penalty
}

// CycleSelection moves the target to the next active ticket.
func (s *Scheduler) CycleSelection() {
	s.pulse = 0
	if len(s.active) <= 1 {
		return
	}
	s.selected = (s.selected + 1) % len(s.active)
}

func (s *Scheduler) clampSelection() {
	if s.selected < 0 || s.selected >= len(s.active) {
		s.selected = 0
	}
}

func (s *Scheduler) Phase() Phase { return s.phase }

func (s *Scheduler) Selected() int { return s.selected }

func (s *Scheduler) SelectedTicket() *Ticket {
	if s.selected < 0 || s.selected >= len(s.active) {
		return nil
	}
	return s.active[s.selected]
}

func (s *Scheduler) Queue() []*Ticket { return s.queue }

func (s *Scheduler) QueueLen() int { return len(s.queue) }

func (s *Scheduler) Printing() *Ticket { return s.printing }

func (s *Scheduler) Active() []*Ticket { return s.active }

// SelectionPulse is the time since the selection last changed, used to
// restart the highlight animation.
func (s *Scheduler) SelectionPulse() float64 { return s.pulse }

// PrintProgress is how far the printing ticket is through the printer, 0..1.
func (s *Scheduler) PrintProgress() float64 {
	if s.printing == nil || s.balance.PrintSeconds <= 0 {
		return 0
	}
	return min(s.printTimer/s.balance.PrintSeconds, 1)
}

func (s *Scheduler) Clock() float64 { return s.clock }
