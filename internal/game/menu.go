package game

type MenuItem struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Complexity float64 `json:"complexity"`
}

type Menu struct {
	Burgers  []MenuItem `json:"burgers,omitempty"`
	Toppings []MenuItem `json:"toppings,omitempty"`
	Sides    []MenuItem `json:"sides,omitempty"`
	Drinks   []MenuItem `json:"drinks,omitempty"`
}

func (m Menu) Empty() bool {
	return len(m.Burgers) == 0 && len(m.Sides) == 0 && len(m.Drinks) == 0
}

// Price looks up an item on any section of the menu.
func (m Menu) Price(id string) (float64, bool) {
	for _, section := range [][]MenuItem{m.Burgers, m.Toppings, m.Sides, m.Drinks} {
		for _, item := range section {
			if item.ID == id {
				return item.Price, true
			}
		}
	}
	return 0, false
}

// MenuProvider turns the current kitchen into a feasible menu.
type MenuProvider interface {
	Menu() Menu
	Complexity() float64
}

// TicketSource produces the day's backlog.
type TicketSource interface {
	GenerateDailyOrders(day int, menu Menu) []*Ticket
	CreateTicketFromCustomers(profiles []CustomerProfile, count int) *Ticket
	GenerateCustomerProfile(menu Menu) CustomerProfile
}
