package kitchen

import (
	"reflect"
	"testing"
)

func TestClosureFollowsProductionEdges(t *testing.T) {
	c := testCatalog(t)
	got := Closure(NewIDSet("onion_sack", "patty_box"), c).Sorted()
	want := []string{"cooked_patty", "onion", "onion_bag", "onion_sack", "onion_slice", "patty", "patty_box"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("closure = %v, want %v", got, want)
	}
}

func TestClosureIgnoresResultAndSauceEdges(t *testing.T) {
	c := testCatalog(t)
	got := Closure(NewIDSet("lettuce", "mayo", "syrup"), c)
	for _, id := range []string{"lettuce_leaf", "mayo_swirl", "cola"} {
		if got.Has(id) {
			t.Fatalf("did not expect %s in closure", id)
		}
	}
}

func TestClosureTerminatesOnCycles(t *testing.T) {
	c, err := NewCatalog([]Definition{
		{ID: "a", Produces: "b"},
		{ID: "b", Slicing: &Transform{Result: "c"}},
		{ID: "c", Process: &Transform{Result: "a"}},
	})
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	got := Closure(NewIDSet("a"), c).Sorted()
	if !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("closure = %v", got)
	}
}

func TestClosureKeepsDanglingIds(t *testing.T) {
	c := testCatalog(t)
	got := Closure(NewIDSet("dangling", "nope"), c)
	if !got.Has("missing_thing") || !got.Has("nope") {
		t.Fatalf("expected dangling targets to be carried without error, got %v", got.Sorted())
	}
}

func TestOrderableItemsGating(t *testing.T) {
	c := testCatalog(t)
	tests := []struct {
		name    string
		present []string
		want    []string
	}{
		{
			name:    "base items only",
			present: nil,
			want:    []string{"burger"},
		},
		{
			name:    "tomato box unlocks slices",
			present: []string{"tomato_box"},
			want:    []string{"burger", "tomato_slice"},
		},
		{
			name:    "generic result and sauce edges gate on their source",
			present: []string{"lettuce", "mayo_tub", "syrup_box"},
			want:    []string{"burger", "cola", "lettuce_leaf", "mayo_swirl"},
		},
		{
			name:    "processed side",
			present: []string{"fries_box"},
			want:    []string{"burger", "fries"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			available := Closure(NewIDSet(tc.present...), c)
			got := OrderableItems(c, available).Sorted()
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("orderable = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestOrderableItemsMonotonic(t *testing.T) {
	c := testCatalog(t)
	present := []string{}
	prev := OrderableItems(c, Closure(NewIDSet(), c))
	for _, id := range []string{"tomato_box", "fries_box", "lettuce", "onion_sack", "syrup_box", "mayo_tub", "ghost"} {
		present = append(present, id)
		next := OrderableItems(c, Closure(NewIDSet(present...), c))
		for item := range prev {
			if !next.Has(item) {
				t.Fatalf("adding %s removed %s from orderable items", id, item)
			}
		}
		prev = next
	}
}

func TestOrderableItemsAnyAncestorQualifies(t *testing.T) {
	c, err := NewCatalog([]Definition{
		{ID: "red_box", Produces: "ketchup"},
		{ID: "tomato", SauceID: "ketchup"},
		{ID: "ketchup", Order: &OrderConfig{Kind: OrderTopping}},
	})
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	if got := c.Ancestors("ketchup"); !reflect.DeepEqual(got, []string{"red_box", "tomato"}) {
		t.Fatalf("ancestors = %v", got)
	}
	for _, seed := range []string{"red_box", "tomato"} {
		if !OrderableItems(c, Closure(NewIDSet(seed), c)).Has("ketchup") {
			t.Fatalf("expected %s alone to unlock ketchup", seed)
		}
	}
}
