package game

import "testing"

func TestMatchBagAccuracy(t *testing.T) {
	req := BagRequirement{
		Burgers: []BurgerSpec{{Modifications: []string{"tomato", "mayo"}}, {}},
		Sides:   []string{"fries"},
		Drinks:  []string{"cola"},
		Value:   20,
	}
	tests := []struct {
		name    string
		bag     Bag
		matched bool
		payout  float64
	}{
		{
			name:    "exact in any order",
			bag:     Bag{Burgers: []BurgerSpec{{}, {Modifications: []string{"mayo", "tomato"}}}, Sides: []string{"fries"}, Drinks: []string{"cola"}},
			matched: true,
			payout:  20,
		},
		{
			name:    "one burger wrong",
			bag:     Bag{Burgers: []BurgerSpec{{}, {Modifications: []string{"tomato"}}}, Sides: []string{"fries"}, Drinks: []string{"cola"}},
			matched: true,
			payout:  15,
		},
		{
			name:    "missing drink",
			bag:     Bag{Burgers: []BurgerSpec{{}, {}}, Sides: []string{"fries"}},
			matched: false,
		},
		{
			name:    "extra burger",
			bag:     Bag{Burgers: []BurgerSpec{{}, {}, {}}, Sides: []string{"fries"}, Drinks: []string{"cola"}},
			matched: false,
		},
		{
			name:    "empty bag",
			bag:     Bag{},
			matched: false,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tk := NewTicket("t", 1, []BagRequirement{req})
			_, payout, ok := tk.MatchBag(tc.bag)
			if ok != tc.matched || payout != tc.payout {
				t.Fatalf("matched=%v payout=%.2f want %v/%.2f", ok, payout, tc.matched, tc.payout)
			}
		})
	}
}

func TestCalculateParTime(t *testing.T) {
	tk := NewTicket("t", 2, []BagRequirement{
		{Burgers: []BurgerSpec{{Modifications: []string{"a", "b"}}}, Sides: []string{"fries"}},
		{Drinks: []string{"cola"}},
	})
	// 20 base + 8 burger + 4 mods + 5 side + 6 extra bag + 3 drink
	if tk.ParTime != 46 {
		t.Fatalf("expected par 46, got %.2f", tk.ParTime)
	}
}

func TestCompletedTicketMatchesNothing(t *testing.T) {
	tk := NewTicket("t", 1, []BagRequirement{simpleRequirement()})
	idx, _, ok := tk.MatchBag(simpleBag())
	if !ok {
		t.Fatalf("expected match")
	}
	tk.markDelivered(idx)
	if !tk.IsComplete() {
		t.Fatalf("expected complete")
	}
	if _, _, ok := tk.MatchBag(simpleBag()); ok {
		t.Fatalf("complete ticket must not match again")
	}
}

func TestDisplayMarksMultiBagProgress(t *testing.T) {
	tk := NewTicket("t", 2, []BagRequirement{simpleRequirement(), {Sides: []string{"fries"}, Value: 4}})
	tk.markDelivered(0)
	tk.ElapsedTime = tk.ParTime + 1
	view := tk.Display(func(id string) string { return "<" + id + ">" })
	if len(view.Lines) != 2 || view.Lines[0] != "[x] bag 1: <burger>" || view.Lines[1] != "[ ] bag 2: <fries>" {
		t.Fatalf("unexpected lines %q", view.Lines)
	}
	if view.BagsDone != 1 || view.BagsTotal != 2 || !view.Late {
		t.Fatalf("unexpected view %+v", view)
	}
}
