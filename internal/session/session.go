// Package session runs one kitchen: it owns the world, the day economy
// and the ticket rail, and advances them a frame at a time.
package session

import (
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/appengine-ltd/short-order/internal/config"
	"github.com/appengine-ltd/short-order/internal/game"
	"github.com/appengine-ltd/short-order/internal/kitchen"
	"github.com/appengine-ltd/short-order/internal/menu"
	"github.com/appengine-ltd/short-order/internal/orders"
	"github.com/appengine-ltd/short-order/internal/parser"
	"github.com/appengine-ltd/short-order/internal/save"
)

var (
	ErrNotForSale           = errors.New("session: not for sale")
	ErrInsufficientFunds    = errors.New("session: not enough money")
	ErrNoSpace              = errors.New("session: no free space")
	ErrOccupied             = errors.New("session: cell is occupied")
	ErrNotOnMenu            = errors.New("session: not on the menu")
	ErrToppingWithoutBurger = errors.New("session: topping needs a burger")
	ErrNoDeliveryCounter    = errors.New("session: kitchen has no delivery counter")
	ErrDayInProgress        = errors.New("session: day already running")
)

const maxMessages = 8

type Options struct {
	Catalog *kitchen.Catalog
	Balance config.Balance
	Store   *save.Store
	Slot    int
	Seed    int64
	Logger  *zerolog.Logger
}

type saveResult struct {
	day int
	err error
}

type Session struct {
	catalog   *kitchen.Catalog
	balance   config.Balance
	world     *kitchen.World
	day       game.DayState
	scheduler *game.Scheduler
	provider  *menu.Provider
	orders    *orders.Generator
	parser    *parser.Parser
	store     *save.Store
	slot      int
	log       zerolog.Logger

	intents    []parser.Intent
	dirty      bool
	reviewHeld bool
	lastEntity string
	summary    *game.DaySummary
	messages   []string
	quit       bool

	menuIDs map[string]string
	shopIDs map[string]string

	saveBusy     bool
	saveResultCh chan saveResult
}

func New(opts Options) *Session {
	catalog := opts.Catalog
	if catalog == nil {
		catalog = kitchen.DefaultCatalog()
	}
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}
	s := &Session{
		catalog:      catalog,
		balance:      opts.Balance,
		world:        StarterWorld(),
		day:          game.NewDayState(1, opts.Balance.StartingMoney),
		scheduler:    game.NewScheduler(opts.Balance),
		provider:     menu.NewProvider(catalog),
		orders:       orders.NewGenerator(opts.Seed),
		parser:       parser.New(),
		store:        opts.Store,
		slot:         max(opts.Slot, 1),
		log:          log.With().Str("component", "session").Logger(),
		dirty:        true,
		saveResultCh: make(chan saveResult, 4),
	}
	s.recompute()
	return s
}

// Update advances one frame: queued input, capability recompute when the
// kitchen changed, the delivery counter, the rail, and the rating once the
// day closes.
func (s *Session) Update(dt time.Duration) []game.Event {
	s.pollSaveResult()

	intents := s.intents
	s.intents = nil
	for _, intent := range intents {
		s.apply(intent)
	}

	if s.dirty {
		s.recompute()
	}

	s.checkDeliveryCounter()

	events := s.scheduler.Tick(&s.day, dt)
	for _, ev := range events {
		s.logEvent(ev)
		if ev.Kind == game.EventClosing {
			s.closeDay()
		}
	}
	return events
}

func (s *Session) recompute() {
	d := kitchen.Derive(s.world.Rooms, s.catalog)
	s.provider.Update(d)
	s.dirty = false

	m := s.provider.Menu()
	s.menuIDs = map[string]string{}
	for _, section := range [][]game.MenuItem{m.Burgers, m.Toppings, m.Sides, m.Drinks} {
		for _, item := range section {
			s.menuIDs[parser.Normalise(item.Name)] = item.ID
		}
	}
	s.shopIDs = map[string]string{}
	for _, def := range s.catalog.All() {
		if def.ShopPrice > 0 {
			s.shopIDs[parser.Normalise(def.DisplayName())] = def.ID
		}
	}
	s.log.Debug().
		Int("day", s.day.Day).
		Strs("capabilities", capabilityNames(d.Capabilities)).
		Float64("complexity", s.provider.Complexity()).
		Msg("capabilities derived")
}

func (s *Session) checkDeliveryCounter() {
	pos, ok := s.world.Find(s.catalog, kitchen.ApplianceDeliverySpot)
	if !ok {
		return
	}
	cell := s.world.Cell(pos)
	bag, ok := bagFromObject(cell.Object, s.catalog)
	if !ok {
		return
	}
	d := s.scheduler.Deliver(&s.day, bag)
	if !d.Matched {
		return
	}
	s.world.Rooms[pos.Room].ClearObject(pos.X, pos.Y)
	ev := s.log.Info().
		Int("day", s.day.Day).
		Str("ticket", d.TicketID).
		Float64("payout", d.BagPayout)
	if d.Completed {
		ev = ev.Str("tier", string(d.Tier)).Float64("reward", d.TierReward).Float64("rebate", d.Rebate)
		s.notify("Ticket done (%s): +$%.2f", d.Tier, d.BagPayout+d.TierReward)
	} else {
		s.notify("Bag accepted: +$%.2f", d.BagPayout)
	}
	ev.Bool("completed", d.Completed).Msg("bag delivered")
}

func (s *Session) closeDay() {
	stars := game.Rate(&s.day, s.provider.Menu(), s.provider.Complexity(), s.balance)
	summary := game.Summarize(&s.day, stars)
	s.summary = &summary
	s.reviewHeld = false
	s.log.Info().
		Int("day", s.day.Day).
		Float64("earned", summary.Earned).
		Int("served", summary.Served).
		Int("late", summary.Late).
		Int("stars", stars.Count()).
		Msg("day closed")
	s.notify("Day %d closed with %d star(s).", s.day.Day, stars.Count())
}

// StartDay opens the current day: fresh counters, a fresh menu and a new
// backlog.
func (s *Session) StartDay() error {
	switch s.scheduler.Phase() {
	case game.PhasePrep, game.PhaseService:
		return ErrDayInProgress
	}
	s.day.BeginDay()
	s.summary = nil
	s.recompute()
	s.scheduler.Start(&s.day, s.orders, s.provider)
	s.log.Info().
		Int("day", s.day.Day).
		Float64("prep", s.day.PrepDuration).
		Int("tickets", s.scheduler.QueueLen()).
		Msg("day started")
	return nil
}

// NextDay moves past a closed day, saves, and opens the next one.
func (s *Session) NextDay() error {
	if s.scheduler.Phase() != game.PhaseClosed {
		return ErrDayInProgress
	}
	s.day.Day++
	s.Save()
	return s.StartDay()
}

func (s *Session) GiveUp() bool {
	if !s.reviewHeld {
		return false
	}
	phase := s.scheduler.Phase()
	if phase != game.PhasePrep && phase != game.PhaseService {
		return false
	}
	penalty := s.scheduler.GiveUp(&s.day)
	s.log.Warn().Int("day", s.day.Day).Float64("penalty", penalty).Msg("gave up")
	s.notify("Gave up on the rail: -$%.2f", penalty)
	return true
}

func (s *Session) SetReviewHeld(held bool) { s.reviewHeld = held }

func (s *Session) ReviewHeld() bool { return s.reviewHeld }

func (s *Session) CycleSelection() { s.scheduler.CycleSelection() }

func (s *Session) Quit() bool { return s.quit }

func (s *Session) World() *kitchen.World { return s.world }

func (s *Session) Catalog() *kitchen.Catalog { return s.catalog }

func (s *Session) Day() game.DayState { return s.day }

func (s *Session) Scheduler() *game.Scheduler { return s.scheduler }

func (s *Session) Summary() *game.DaySummary { return s.summary }

// MarkDirty schedules a capability recompute for the next frame.
func (s *Session) MarkDirty() { s.dirty = true }

func (s *Session) logEvent(ev game.Event) {
	e := s.log.Debug().Int("day", s.day.Day).Str("event", string(ev.Kind)).Float64("at", ev.At)
	if ev.Ticket != nil {
		e = e.Str("ticket", ev.Ticket.ID)
	}
	e.Msg("rail")
	switch ev.Kind {
	case game.EventServiceOpened:
		s.notify("Doors open!")
	case game.EventTicketActive:
		s.notify("Order up: %d active", len(s.scheduler.Active()))
	}
}

func capabilityNames(set kitchen.CapabilitySet) []string {
	caps := set.Sorted()
	out := make([]string, 0, len(caps))
	for _, c := range caps {
		out = append(out, string(c))
	}
	return out
}
