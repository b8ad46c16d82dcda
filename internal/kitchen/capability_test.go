package kitchen

import (
	"reflect"
	"testing"
)

func TestDeriveCapabilityRules(t *testing.T) {
	c := testCatalog(t)
	tests := []struct {
		name    string
		tiles   []string
		objects []string
		want    []Capability
		endgame bool
	}{
		{
			name:    "empty kitchen",
			tiles:   nil,
			objects: nil,
			want:    []Capability{},
		},
		{
			name:    "burger needs stove patty and bun",
			tiles:   []string{"stove"},
			objects: []string{"patty_box", "bun_box"},
			want:    []Capability{CapBasicBurger},
		},
		{
			name:    "burger without stove",
			tiles:   nil,
			objects: []string{"patty_box", "bun_box"},
			want:    []Capability{},
		},
		{
			name:    "burger from loose ingredients",
			tiles:   []string{"stove"},
			objects: []string{"patty", "bun"},
			want:    []Capability{CapBasicBurger},
		},
		{
			name:    "cut toppings through one box",
			tiles:   []string{"board"},
			objects: []string{"tomato_box"},
			want:    []Capability{CapCutToppings},
		},
		{
			name:    "cut toppings stops at one level of indirection",
			tiles:   []string{"board"},
			objects: []string{"onion_sack"},
			want:    []Capability{},
		},
		{
			name:    "cold sauce needs dispenser",
			tiles:   []string{"dispenser"},
			objects: []string{"mayo_tub"},
			want:    []Capability{CapAddColdSauce},
		},
		{
			name:    "lettuce has no appliance gate",
			tiles:   nil,
			objects: []string{"lettuce"},
			want:    []Capability{CapAddLettuce},
		},
		{
			name:    "fries need a side cup",
			tiles:   []string{"fryer"},
			objects: []string{"fries_box"},
			want:    []Capability{},
		},
		{
			name:    "fries and drinks unlock endgame",
			tiles:   []string{"fryer", "fountain"},
			objects: []string{"fries_box", "cup_box", "syrup_box", "drink_cups"},
			want:    []Capability{CapServeDrinks, CapServeFries},
			endgame: true,
		},
		{
			name:    "endgame depends on appliances only",
			tiles:   []string{"fryer", "fountain"},
			objects: nil,
			want:    []Capability{},
			endgame: true,
		},
		{
			name:    "unknown ids are ignored",
			tiles:   []string{"laser_oven"},
			objects: []string{"ghost_box", "dangling"},
			want:    []Capability{},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := Derive([]*Room{kitchenRoom(tc.tiles, tc.objects)}, c)
			got := d.Capabilities.Sorted()
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("capabilities = %v, want %v", got, tc.want)
			}
			if d.EndgameUnlocked != tc.endgame {
				t.Fatalf("endgame = %v, want %v", d.EndgameUnlocked, tc.endgame)
			}
		})
	}
}

func TestDeriveIsDeterministic(t *testing.T) {
	c := testCatalog(t)
	rooms := []*Room{
		kitchenRoom([]string{"stove", "board", "fryer"}, []string{"patty_box", "bun_box", "tomato_box", "fries_box", "cup_box"}),
		kitchenRoom([]string{"fountain"}, []string{"syrup_box", "drink_cups", "lettuce"}),
	}
	first := Derive(rooms, c)
	second := Derive(rooms, c)
	if !reflect.DeepEqual(first.Capabilities.Sorted(), second.Capabilities.Sorted()) {
		t.Fatalf("capabilities differ between runs")
	}
	if !first.AllowedOrderItems.Equal(second.AllowedOrderItems) {
		t.Fatalf("allowed items differ between runs: %v vs %v", first.AllowedOrderItems.Sorted(), second.AllowedOrderItems.Sorted())
	}
}

func TestDeriveScanIsShallow(t *testing.T) {
	c := testCatalog(t)
	room := kitchenRoom([]string{"stove"}, nil)
	room.PutObject(0, 1, Object{DefinitionID: "bag", Contents: []Object{{DefinitionID: "patty_box"}, {DefinitionID: "bun_box"}}})
	d := Derive([]*Room{room}, c)
	if d.Capabilities.Has(CapBasicBurger) {
		t.Fatalf("expected nested contents to be ignored")
	}
}

func TestDeriveAcrossRooms(t *testing.T) {
	c := testCatalog(t)
	d := Derive([]*Room{
		kitchenRoom([]string{"stove"}, nil),
		kitchenRoom(nil, []string{"patty_box", "bun_box"}),
		nil,
	}, c)
	if !d.Capabilities.Has(CapBasicBurger) {
		t.Fatalf("expected appliances and supplies in different rooms to combine")
	}
}
