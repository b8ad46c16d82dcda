package kitchen

import "testing"

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := NewCatalog([]Definition{
		{ID: "floor", Category: CategoryTile},
		{ID: "stove", Category: CategoryAppliance, Appliance: ApplianceStove},
		{ID: "board", Category: CategoryAppliance, Appliance: ApplianceCuttingBoard},
		{ID: "dispenser", Category: CategoryAppliance, Appliance: ApplianceDispenser},
		{ID: "fryer", Category: CategoryAppliance, Appliance: ApplianceFryer},
		{ID: "fountain", Category: CategoryAppliance, Appliance: ApplianceSodaFountain},

		{ID: "patty_box", Category: CategoryBox, Produces: "patty"},
		{ID: "bun_box", Category: CategoryBox, Produces: "bun"},
		{ID: "tomato_box", Category: CategoryBox, Produces: "tomato"},
		{ID: "onion_sack", Category: CategoryBox, Produces: "onion_bag"},
		{ID: "onion_bag", Category: CategoryBox, Produces: "onion"},
		{ID: "mayo_tub", Category: CategoryBox, Produces: "mayo"},
		{ID: "fries_box", Category: CategoryBox, Produces: "raw_fries"},
		{ID: "cup_box", Category: CategoryBox, Produces: "side_cup"},
		{ID: "syrup_box", Category: CategoryBox, Produces: "syrup"},
		{ID: "drink_cups", Category: CategoryBox, Produces: "drink_cup"},

		{ID: "patty", Role: RolePatty, Process: &Transform{Result: "cooked_patty"}},
		{ID: "cooked_patty"},
		{ID: "bun", Role: RoleBun},
		{ID: "tomato", Slicing: &Transform{Result: "tomato_slice"}},
		{ID: "onion", Slicing: &Transform{Result: "onion_slice"}},
		{ID: "lettuce", Role: RoleLettuce, Result: "lettuce_leaf"},
		{ID: "mayo", Role: RoleMayo, SauceID: "mayo_swirl"},
		{ID: "raw_fries", Role: RoleFries, Process: &Transform{Result: "fries"}},
		{ID: "side_cup", Role: RoleSideCup},
		{ID: "syrup", Role: RoleSyrup, Result: "cola"},
		{ID: "drink_cup", Role: RoleDrinkCup},
		{ID: "dangling", Produces: "missing_thing"},

		{ID: "burger", Order: &OrderConfig{Kind: OrderBurger, Price: 8, Complexity: 5, Requires: CapBasicBurger}},
		{ID: "tomato_slice", IsTopping: true, Order: &OrderConfig{Kind: OrderTopping, Price: 1, Complexity: 2, Requires: CapCutToppings}},
		{ID: "onion_slice", IsTopping: true, Order: &OrderConfig{Kind: OrderTopping, Price: 1, Complexity: 2, Requires: CapCutToppings}},
		{ID: "lettuce_leaf", IsTopping: true, Order: &OrderConfig{Kind: OrderTopping, Price: 1, Complexity: 2, Requires: CapAddLettuce}},
		{ID: "mayo_swirl", IsTopping: true, Order: &OrderConfig{Kind: OrderTopping, Price: 1, Complexity: 2, Requires: CapAddColdSauce}},
		{ID: "fries", Order: &OrderConfig{Kind: OrderSide, Price: 4, Complexity: 4, Requires: CapServeFries}},
		{ID: "cola", Order: &OrderConfig{Kind: OrderDrink, Price: 3, Complexity: 4, Requires: CapServeDrinks}},
	})
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	return c
}

// kitchenRoom lays tiles along the top row and objects along the bottom row.
func kitchenRoom(tiles []string, objects []string) *Room {
	width := max(len(tiles), len(objects), 1)
	r := NewRoom("kitchen", width, 2, "floor")
	for i, tile := range tiles {
		r.SetTile(i, 0, tile)
	}
	for i, id := range objects {
		r.PutObject(i, 1, Object{DefinitionID: id})
	}
	return r
}
