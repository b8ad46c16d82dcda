package game

import (
	"fmt"
	"time"

	"github.com/appengine-ltd/short-order/internal/config"
)

type stubMenu struct {
	menu       Menu
	complexity float64
}

func (m stubMenu) Menu() Menu          { return m.menu }
func (m stubMenu) Complexity() float64 { return m.complexity }

type stubSource struct {
	daily    []*Ticket
	profiles int
	created  int
}

func (s *stubSource) GenerateDailyOrders(day int, menu Menu) []*Ticket {
	return s.daily
}

func (s *stubSource) CreateTicketFromCustomers(profiles []CustomerProfile, count int) *Ticket {
	s.created++
	return NewTicket(fmt.Sprintf("fallback-%d", s.created), len(profiles), []BagRequirement{simpleRequirement()})
}

func (s *stubSource) GenerateCustomerProfile(menu Menu) CustomerProfile {
	s.profiles++
	return CustomerProfile{Burger: &BurgerSpec{}, Value: 8}
}

func simpleRequirement() BagRequirement {
	return BagRequirement{Burgers: []BurgerSpec{{}}, Value: 8}
}

func simpleBag() Bag {
	return Bag{Burgers: []BurgerSpec{{}}}
}

func parTicket(id string, par float64) *Ticket {
	t := NewTicket(id, 1, []BagRequirement{simpleRequirement()})
	t.ParTime = par
	return t
}

func secs(v float64) time.Duration {
	return time.Duration(v * float64(time.Second))
}

// serviceRail puts a scheduler straight into service with the given collections.
func serviceRail(active []*Ticket, printing *Ticket, queue []*Ticket) (*Scheduler, *DayState) {
	s := NewScheduler(config.Default())
	s.phase = PhaseService
	s.active = active
	s.printing = printing
	s.queue = queue
	day := NewDayState(1, 100)
	return s, &day
}
