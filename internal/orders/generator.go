// Package orders generates the day's customer tickets from the menu.
package orders

import (
	"math/rand/v2"
	"sort"

	"github.com/google/uuid"

	"github.com/appengine-ltd/short-order/internal/game"
)

const (
	baseTicketsPerDay   = 3
	maxTicketsPerDay    = 14
	customersPerBag     = 2
	maxToppings         = 3
	walkInBurgerValue   = 5
	defaultArrivalSpace = 10
)

// Generator is the reference game.TicketSource.
type Generator struct {
	rng          *rand.Rand
	ids          rngReader
	ArrivalSpace float64
}

func NewGenerator(seed int64) *Generator {
	rng := seededRNG(seed)
	return &Generator{rng: rng, ids: rngReader{rng: rng}, ArrivalSpace: defaultArrivalSpace}
}

func (g *Generator) newID() string {
	id, err := uuid.NewRandomFromReader(g.ids)
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// GenerateDailyOrders scales the backlog and party sizes with the day. An
// empty menu yields no tickets.
func (g *Generator) GenerateDailyOrders(day int, menu game.Menu) []*game.Ticket {
	if menu.Empty() {
		return nil
	}
	if day < 1 {
		day = 1
	}
	count := min(baseTicketsPerDay+day, maxTicketsPerDay)
	maxParty := min(1+day/3, 4)

	out := make([]*game.Ticket, 0, count)
	for i := 0; i < count; i++ {
		party := 1 + g.rng.IntN(maxParty)
		profiles := make([]game.CustomerProfile, 0, party)
		for j := 0; j < party; j++ {
			profiles = append(profiles, g.GenerateCustomerProfile(menu))
		}
		bags := (party + customersPerBag - 1) / customersPerBag
		t := g.CreateTicketFromCustomers(profiles, bags)
		t.ArrivalTime = float64(i)*g.ArrivalSpace + g.rng.Float64()*g.ArrivalSpace/2
		out = append(out, t)
	}
	return out
}

// GenerateCustomerProfile picks one customer's order. Customers always
// order something the menu can serve.
func (g *Generator) GenerateCustomerProfile(menu game.Menu) game.CustomerProfile {
	p := game.CustomerProfile{}
	if len(menu.Burgers) > 0 {
		burger := menu.Burgers[g.rng.IntN(len(menu.Burgers))]
		spec := game.BurgerSpec{}
		p.Value += burger.Price
		if n := g.rng.IntN(min(len(menu.Toppings), maxToppings) + 1); n > 0 {
			for _, idx := range g.rng.Perm(len(menu.Toppings))[:n] {
				top := menu.Toppings[idx]
				spec.Modifications = append(spec.Modifications, top.ID)
				p.Value += top.Price
			}
			sort.Strings(spec.Modifications)
		}
		p.Burger = &spec
	}
	if len(menu.Sides) > 0 && g.rng.Float64() < 0.5 {
		side := menu.Sides[g.rng.IntN(len(menu.Sides))]
		p.Side = side.ID
		p.Value += side.Price
	}
	if len(menu.Drinks) > 0 && g.rng.Float64() < 0.6 {
		drink := menu.Drinks[g.rng.IntN(len(menu.Drinks))]
		p.Drink = drink.ID
		p.Value += drink.Price
	}
	if p.Burger == nil && p.Side == "" && p.Drink == "" {
		switch {
		case len(menu.Sides) > 0:
			p.Side = menu.Sides[0].ID
			p.Value += menu.Sides[0].Price
		case len(menu.Drinks) > 0:
			p.Drink = menu.Drinks[0].ID
			p.Value += menu.Drinks[0].Price
		default:
			p.Burger = &game.BurgerSpec{}
			p.Value = walkInBurgerValue
		}
	}
	return p
}

// CreateTicketFromCustomers packs the customers round-robin into count bags.
func (g *Generator) CreateTicketFromCustomers(profiles []game.CustomerProfile, count int) *game.Ticket {
	if len(profiles) == 0 {
		profiles = []game.CustomerProfile{{Burger: &game.BurgerSpec{}, Value: walkInBurgerValue}}
	}
	count = max(1, min(count, len(profiles)))
	bags := make([]game.BagRequirement, count)
	for i, p := range profiles {
		bag := &bags[i%count]
		if p.Burger != nil {
			bag.Burgers = append(bag.Burgers, *p.Burger)
		}
		if p.Side != "" {
			bag.Sides = append(bag.Sides, p.Side)
		}
		if p.Drink != "" {
			bag.Drinks = append(bag.Drinks, p.Drink)
		}
		bag.Value += p.Value
	}
	return game.NewTicket(g.newID(), len(profiles), bags)
}
