package game

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// BurgerSpec is one burger and its modifications (toppings and sauces).
type BurgerSpec struct {
	Modifications []string `json:"modifications,omitempty"`
}

func (b BurgerSpec) key() string {
	mods := slices.Clone(b.Modifications)
	sort.Strings(mods)
	return strings.Join(mods, "+")
}

type BagRequirement struct {
	Burgers []BurgerSpec `json:"burgers,omitempty"`
	Sides   []string     `json:"sides,omitempty"`
	Drinks  []string     `json:"drinks,omitempty"`
	Value   float64      `json:"value"`
}

func (r BagRequirement) itemCount() int {
	return len(r.Burgers) + len(r.Sides) + len(r.Drinks)
}

// Bag is what the player actually packed.
type Bag struct {
	Burgers []BurgerSpec `json:"burgers,omitempty"`
	Sides   []string     `json:"sides,omitempty"`
	Drinks  []string     `json:"drinks,omitempty"`
}

type CustomerProfile struct {
	Burger *BurgerSpec `json:"burger,omitempty"`
	Side   string      `json:"side,omitempty"`
	Drink  string      `json:"drink,omitempty"`
	Value  float64     `json:"value"`
}

type Ticket struct {
	ID          string           `json:"id"`
	Customers   int              `json:"customers"`
	Bags        []BagRequirement `json:"bags"`
	Delivered   []bool           `json:"delivered"`
	ParTime     float64          `json:"par_time"`
	ElapsedTime float64          `json:"elapsed_time"`
	ArrivalTime float64          `json:"arrival_time"`
}

// NewTicket builds a ticket and fixes its par time.
func NewTicket(id string, customers int, bags []BagRequirement) *Ticket {
	t := &Ticket{
		ID:        id,
		Customers: customers,
		Bags:      bags,
		Delivered: make([]bool, len(bags)),
	}
	t.CalculateParTime()
	return t
}

const (
	parBaseSeconds         = 20.0
	parPerBurgerSeconds    = 8.0
	parPerModifierSeconds  = 2.0
	parPerSideSeconds      = 5.0
	parPerDrinkSeconds     = 3.0
	parPerExtraBagSeconds  = 6.0
	mismatchedBurgerCredit = 0.5
)

func (t *Ticket) CalculateParTime() float64 {
	par := parBaseSeconds
	for i, bag := range t.Bags {
		if i > 0 {
			par += parPerExtraBagSeconds
		}
		for _, b := range bag.Burgers {
			par += parPerBurgerSeconds + parPerModifierSeconds*float64(len(b.Modifications))
		}
		par += parPerSideSeconds * float64(len(bag.Sides))
		par += parPerDrinkSeconds * float64(len(bag.Drinks))
	}
	t.ParTime = par
	return par
}

// nextRequirement is the first bag the ticket is still waiting on.
func (t *Ticket) nextRequirement() int {
	for i := range t.Bags {
		if i >= len(t.Delivered) || !t.Delivered[i] {
			return i
		}
	}
	return -1
}

// MatchBag checks bag against the ticket's next outstanding requirement.
// Sides and drinks must match exactly and the burger count must agree;
// burgers with the wrong modifications still match but pay less.
func (t *Ticket) MatchBag(bag Bag) (requirement int, payout float64, matched bool) {
	idx := t.nextRequirement()
	if idx < 0 {
		return -1, 0, false
	}
	req := t.Bags[idx]
	if req.itemCount() == 0 {
		return -1, 0, false
	}
	if len(bag.Burgers) != len(req.Burgers) || !sameItems(bag.Sides, req.Sides) || !sameItems(bag.Drinks, req.Drinks) {
		return -1, 0, false
	}
	accuracy := 1.0
	if len(req.Burgers) > 0 {
		exact := exactBurgers(bag.Burgers, req.Burgers)
		accuracy = mismatchedBurgerCredit + (1-mismatchedBurgerCredit)*float64(exact)/float64(len(req.Burgers))
	}
	return idx, req.Value * accuracy, true
}

// markDelivered records requirement idx as satisfied.
func (t *Ticket) markDelivered(idx int) {
	if len(t.Delivered) < len(t.Bags) {
		grown := make([]bool, len(t.Bags))
		copy(grown, t.Delivered)
		t.Delivered = grown
	}
	if idx >= 0 && idx < len(t.Delivered) {
		t.Delivered[idx] = true
	}
}

func (t *Ticket) IsComplete() bool {
	return t.nextRequirement() < 0
}

// completesWith reports whether delivering requirement idx would finish the ticket.
func (t *Ticket) completesWith(idx int) bool {
	for i := range t.Bags {
		if i == idx {
			continue
		}
		if i >= len(t.Delivered) || !t.Delivered[i] {
			return false
		}
	}
	return true
}

func (t *Ticket) BagsDelivered() int {
	n := 0
	for _, d := range t.Delivered {
		if d {
			n++
		}
	}
	return n
}

type TicketView struct {
	ID        string   `json:"id"`
	Lines     []string `json:"lines"`
	ParTime   float64  `json:"par_time"`
	Elapsed   float64  `json:"elapsed"`
	Remaining float64  `json:"remaining"`
	BagsDone  int      `json:"bags_done"`
	BagsTotal int      `json:"bags_total"`
	Late      bool     `json:"late"`
}

// Display renders the ticket for the rail. names maps ids to labels; ids
// without a label are shown as-is.
func (t *Ticket) Display(names func(string) string) TicketView {
	if names == nil {
		names = func(id string) string { return id }
	}
	lines := make([]string, 0, len(t.Bags)*3)
	for i, bag := range t.Bags {
		prefix := ""
		if len(t.Bags) > 1 {
			mark := " "
			if i < len(t.Delivered) && t.Delivered[i] {
				mark = "x"
			}
			prefix = fmt.Sprintf("[%s] bag %d: ", mark, i+1)
		}
		for _, b := range bag.Burgers {
			line := names("burger")
			if len(b.Modifications) > 0 {
				mods := make([]string, 0, len(b.Modifications))
				for _, m := range b.Modifications {
					mods = append(mods, names(m))
				}
				line += " w/ " + strings.Join(mods, ", ")
			}
			lines = append(lines, prefix+line)
		}
		for _, s := range bag.Sides {
			lines = append(lines, prefix+names(s))
		}
		for _, d := range bag.Drinks {
			lines = append(lines, prefix+names(d))
		}
	}
	remaining := t.ParTime - t.ElapsedTime
	return TicketView{
		ID:        t.ID,
		Lines:     lines,
		ParTime:   t.ParTime,
		Elapsed:   t.ElapsedTime,
		Remaining: remaining,
		BagsDone:  t.BagsDelivered(),
		BagsTotal: len(t.Bags),
		Late:      remaining < 0,
	}
}

func sameItems(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	x := slices.Clone(a)
	y := slices.Clone(b)
	sort.Strings(x)
	sort.Strings(y)
	return slices.Equal(x, y)
}

func exactBurgers(have, want []BurgerSpec) int {
	pool := make(map[string]int, len(want))
	for _, w := range want {
		pool[w.key()]++
	}
	n := 0
	for _, h := range have {
		k := h.key()
		if pool[k] > 0 {
			pool[k]--
			n++
		}
	}
	return n
}
