package session

import (
	"fmt"

	"github.com/appengine-ltd/short-order/internal/game"
	"github.com/appengine-ltd/short-order/internal/kitchen"
)

const (
	kitchenWidth  = 10
	kitchenHeight = 6
)

// StarterWorld is the day-one kitchen: a stove, a delivery counter and
// enough stock for plain burgers.
func StarterWorld() *kitchen.World {
	room := kitchen.NewRoom("Kitchen", kitchenWidth, kitchenHeight, "floor")
	for x := 0; x < kitchenWidth; x++ {
		room.SetTile(x, 0, "counter")
		room.SetTile(x, kitchenHeight-1, "counter")
	}
	room.SetTile(1, 0, "stove")
	room.SetTile(kitchenWidth-1, 0, "delivery_counter")
	room.PutObject(0, 0, kitchen.Object{DefinitionID: "patty_box"})
	room.PutObject(2, 0, kitchen.Object{DefinitionID: "bun_box"})
	room.PutObject(3, 0, kitchen.Object{DefinitionID: "bag_box"})
	return &kitchen.World{Rooms: []*kitchen.Room{room}}
}

// bagFromObject reads a packed bag resting on the delivery counter.
// Burgers contribute their toppings as modifications; bun and patty are
// implied.
func bagFromObject(obj *kitchen.Object, catalog *kitchen.Catalog) (game.Bag, bool) {
	if obj == nil {
		return game.Bag{}, false
	}
	def, ok := catalog.Lookup(obj.DefinitionID)
	if !ok || def.Category != kitchen.CategoryBag {
		return game.Bag{}, false
	}
	var bag game.Bag
	for _, item := range obj.Contents {
		itemDef, ok := catalog.Lookup(item.DefinitionID)
		if !ok || itemDef.Order == nil {
			continue
		}
		switch itemDef.Order.Kind {
		case kitchen.OrderBurger:
			spec := game.BurgerSpec{}
			for _, part := range item.Contents {
				if partDef, ok := catalog.Lookup(part.DefinitionID); ok && partDef.IsTopping {
					spec.Modifications = append(spec.Modifications, part.DefinitionID)
				}
			}
			bag.Burgers = append(bag.Burgers, spec)
		case kitchen.OrderSide:
			bag.Sides = append(bag.Sides, item.DefinitionID)
		case kitchen.OrderDrink:
			bag.Drinks = append(bag.Drinks, item.DefinitionID)
		}
	}
	return bag, true
}

// packBag builds the bag object for an ordered list of menu ids. Toppings
// go on the burger packed before them.
func packBag(ids []string, catalog *kitchen.Catalog) (kitchen.Object, error) {
	bag := kitchen.Object{DefinitionID: "bag"}
	lastBurger := -1
	for _, id := range ids {
		def, ok := catalog.Lookup(id)
		if !ok || def.Order == nil {
			return kitchen.Object{}, fmt.Errorf("%w: %s", ErrNotOnMenu, id)
		}
		switch def.Order.Kind {
		case kitchen.OrderBurger:
			bag.Contents = append(bag.Contents, kitchen.Object{
				DefinitionID: id,
				Contents: []kitchen.Object{
					{DefinitionID: "bun"},
					{DefinitionID: "cooked_patty"},
				},
			})
			lastBurger = len(bag.Contents) - 1
		case kitchen.OrderTopping:
			if lastBurger < 0 {
				return kitchen.Object{}, fmt.Errorf("%w: %s", ErrToppingWithoutBurger, def.DisplayName())
			}
			burger := &bag.Contents[lastBurger]
			burger.Contents = append(burger.Contents, kitchen.Object{DefinitionID: id})
		default:
			bag.Contents = append(bag.Contents, kitchen.Object{DefinitionID: id})
		}
	}
	return bag, nil
}
