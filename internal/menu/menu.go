// Package menu builds the feasible menu from what the kitchen can make.
package menu

import (
	"github.com/appengine-ltd/short-order/internal/game"
	"github.com/appengine-ltd/short-order/internal/kitchen"
)

// Provider serves the menu for the latest capability derivation. It is a
// game.MenuProvider.
type Provider struct {
	catalog    *kitchen.Catalog
	derivation kitchen.Derivation
	menu       game.Menu
	complexity float64
}

func NewProvider(catalog *kitchen.Catalog) *Provider {
	return &Provider{catalog: catalog}
}

// Update rebuilds the menu. Items need to be orderable and have their
// required capability unlocked; toppings and the burger itself only appear
// once burgers can be made.
func (p *Provider) Update(d kitchen.Derivation) {
	p.derivation = d
	m := game.Menu{}
	complexity := 0.0
	for _, def := range p.catalog.All() {
		if def.Order == nil || !d.AllowedOrderItems.Has(def.ID) {
			continue
		}
		if def.Order.Requires != "" && !d.Capabilities.Has(def.Order.Requires) {
			continue
		}
		if def.Order.Kind == kitchen.OrderTopping && !d.Capabilities.Has(kitchen.CapBasicBurger) {
			continue
		}
		item := game.MenuItem{
			ID:         def.ID,
			Name:       def.DisplayName(),
			Price:      def.Order.Price,
			Complexity: def.Order.Complexity,
		}
		switch def.Order.Kind {
		case kitchen.OrderBurger:
			m.Burgers = append(m.Burgers, item)
		case kitchen.OrderTopping:
			m.Toppings = append(m.Toppings, item)
		case kitchen.OrderSide:
			m.Sides = append(m.Sides, item)
		case kitchen.OrderDrink:
			m.Drinks = append(m.Drinks, item)
		default:
			continue
		}
		complexity += item.Complexity
	}
	p.menu = m
	p.complexity = complexity
}

func (p *Provider) Menu() game.Menu { return p.menu }

// Complexity is the summed complexity of everything on the menu.
func (p *Provider) Complexity() float64 { return p.complexity }

func (p *Provider) Derivation() kitchen.Derivation { return p.derivation }
