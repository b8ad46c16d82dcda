package session

import (
	"fmt"
	"sort"

	"github.com/appengine-ltd/short-order/internal/kitchen"
)

// Pack puts a bag of menu items on the delivery counter. It is judged on
// the next frame against the selected ticket.
func (s *Session) Pack(ids []string) error {
	menu := s.provider.Menu()
	for _, id := range ids {
		if _, ok := menu.Price(id); !ok {
			name := id
			if def, ok := s.catalog.Lookup(id); ok {
				name = def.DisplayName()
			}
			return fmt.Errorf("%w: %s", ErrNotOnMenu, name)
		}
	}
	bag, err := packBag(ids, s.catalog)
	if err != nil {
		return err
	}
	pos, ok := s.world.Find(s.catalog, kitchen.ApplianceDeliverySpot)
	if !ok {
		return ErrNoDeliveryCounter
	}
	if !s.world.Rooms[pos.Room].PutObject(pos.X, pos.Y, bag) {
		return fmt.Errorf("%w: delivery counter", ErrOccupied)
	}
	return nil
}

// Trash clears whatever sits on the delivery counter.
func (s *Session) Trash() bool {
	pos, ok := s.world.Find(s.catalog, kitchen.ApplianceDeliverySpot)
	if !ok {
		return false
	}
	cell := s.world.Cell(pos)
	if cell.Object == nil {
		return false
	}
	s.world.Rooms[pos.Room].ClearObject(pos.X, pos.Y)
	return true
}

// Buy purchases id and installs it at x, y in the first room. Appliances
// and tiles replace bare floor; everything else goes on an empty counter.
func (s *Session) Buy(id string, x, y int) error {
	def, ok := s.catalog.Lookup(id)
	if !ok || def.ShopPrice <= 0 {
		return fmt.Errorf("%w: %s", ErrNotForSale, id)
	}
	price := float64(def.ShopPrice)
	if s.day.Money < price {
		return fmt.Errorf("%w: %s costs $%d", ErrInsufficientFunds, def.DisplayName(), def.ShopPrice)
	}
	if len(s.world.Rooms) == 0 {
		return ErrNoSpace
	}
	room := s.world.Rooms[0]
	cell := room.Cell(x, y)
	if cell == nil {
		return fmt.Errorf("%w: %d,%d", ErrNoSpace, x, y)
	}
	if cell.Object != nil {
		return fmt.Errorf("%w: %d,%d", ErrOccupied, x, y)
	}
	if placesAsTile(def) {
		if cell.Type != "floor" {
			return fmt.Errorf("%w: %d,%d", ErrOccupied, x, y)
		}
		room.SetTile(x, y, id)
	} else {
		if cell.Type != "counter" {
			return fmt.Errorf("%w: %d,%d is not a counter", ErrNoSpace, x, y)
		}
		room.PutObject(x, y, kitchen.Object{DefinitionID: id})
	}
	s.day.Money -= price
	s.dirty = true
	s.log.Info().Str("item", id).Int("price", def.ShopPrice).Int("x", x).Int("y", y).Msg("purchased")
	s.notify("Bought %s for $%d", def.DisplayName(), def.ShopPrice)
	return nil
}

// BuyAnywhere buys id into the first spot that fits it.
func (s *Session) BuyAnywhere(id string) error {
	def, ok := s.catalog.Lookup(id)
	if !ok || def.ShopPrice <= 0 {
		return fmt.Errorf("%w: %s", ErrNotForSale, id)
	}
	want := "counter"
	if placesAsTile(def) {
		want = "floor"
	}
	pos, ok := s.world.FirstFree(0, want)
	if !ok {
		return fmt.Errorf("%w for %s", ErrNoSpace, def.DisplayName())
	}
	return s.Buy(id, pos.X, pos.Y)
}

// Place moves an object between cells.
func (s *Session) Place(from, to kitchen.Position) error {
	src := s.world.Cell(from)
	dst := s.world.Cell(to)
	if src == nil || src.Object == nil || dst == nil {
		return ErrNoSpace
	}
	if dst.Object != nil {
		return fmt.Errorf("%w: %d,%d", ErrOccupied, to.X, to.Y)
	}
	obj := *src.Object
	s.world.Rooms[from.Room].ClearObject(from.X, from.Y)
	s.world.Rooms[to.Room].PutObject(to.X, to.Y, obj)
	s.dirty = true
	return nil
}

// ShopList names everything for sale with its price, cheapest first.
func (s *Session) ShopList() []string {
	defs := make([]kitchen.Definition, 0)
	for _, def := range s.catalog.All() {
		if def.ShopPrice > 0 {
			defs = append(defs, def)
		}
	}
	sort.SliceStable(defs, func(i, j int) bool { return defs[i].ShopPrice < defs[j].ShopPrice })
	out := make([]string, 0, len(defs))
	for _, def := range defs {
		out = append(out, fmt.Sprintf("%s $%d", def.DisplayName(), def.ShopPrice))
	}
	return out
}

func placesAsTile(def kitchen.Definition) bool {
	return def.Category == kitchen.CategoryTile || def.Category == kitchen.CategoryAppliance
}
