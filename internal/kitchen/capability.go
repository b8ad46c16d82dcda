package kitchen

import "sort"

type Capability string

const (
	CapBasicBurger  Capability = "BASIC_BURGER"
	CapCutToppings  Capability = "CUT_TOPPINGS"
	CapAddColdSauce Capability = "ADD_COLD_SAUCE"
	CapAddLettuce   Capability = "ADD_LETTUCE"
	CapServeFries   Capability = "SERVE_FRIES"
	CapServeDrinks  Capability = "SERVE_DRINKS"
)

type CapabilitySet map[Capability]bool

func (s CapabilitySet) Has(c Capability) bool {
	return s[c]
}

func (s CapabilitySet) Sorted() []Capability {
	out := make([]Capability, 0, len(s))
	for c, ok := range s {
		if ok {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Scan is the shallow view of a world: installed appliance kinds and the
// definition ids lying directly on cells.
type Scan struct {
	Appliances map[ApplianceKind]bool
	Present    IDSet
}

func ScanWorld(rooms []*Room, catalog *Catalog) Scan {
	scan := Scan{Appliances: map[ApplianceKind]bool{}, Present: IDSet{}}
	for _, room := range rooms {
		if room == nil {
			continue
		}
		for y := 0; y < room.Height; y++ {
			for x := 0; x < room.Width; x++ {
				cell := room.Cell(x, y)
				if cell == nil {
					continue
				}
				if def, ok := catalog.Lookup(cell.Type); ok && def.Appliance != "" {
					scan.Appliances[def.Appliance] = true
				}
				if cell.Object != nil && cell.Object.DefinitionID != "" {
					if _, ok := catalog.Lookup(cell.Object.DefinitionID); ok {
						scan.Present.Add(cell.Object.DefinitionID)
					}
				}
			}
		}
	}
	return scan
}

type ingredientCheck func(scan Scan, catalog *Catalog) bool

type capabilityRule struct {
	appliance  []ApplianceKind
	ingredient ingredientCheck
	needs      string
	capability Capability
}

var capabilityRules = []capabilityRule{
	{
		appliance:  []ApplianceKind{ApplianceStove},
		ingredient: allOf(sourceOf(RolePatty), sourceOf(RoleBun)),
		needs:      "a patty source and a bun source",
		capability: CapBasicBurger,
	},
	{
		appliance:  []ApplianceKind{ApplianceCuttingBoard},
		ingredient: sliceableSource,
		needs:      "anything sliceable",
		capability: CapCutToppings,
	},
	{
		appliance:  []ApplianceKind{ApplianceDispenser},
		ingredient: sourceOf(RoleMayo),
		needs:      "a mayo source",
		capability: CapAddColdSauce,
	},
	{
		ingredient: sourceOf(RoleLettuce),
		needs:      "a lettuce source",
		capability: CapAddLettuce,
	},
	{
		appliance:  []ApplianceKind{ApplianceFryer},
		ingredient: allOf(sourceOf(RoleFries), sourceOf(RoleSideCup)),
		needs:      "a fries source and side cups",
		capability: CapServeFries,
	},
	{
		appliance:  []ApplianceKind{ApplianceSodaFountain},
		ingredient: allOf(sourceOf(RoleSyrup), sourceOf(RoleDrinkCup)),
		needs:      "a syrup source and drink cups",
		capability: CapServeDrinks,
	},
}

// RuleInfo describes one capability rule for documentation.
type RuleInfo struct {
	Capability Capability
	Appliances []ApplianceKind
	Needs      string
}

func CapabilityRules() []RuleInfo {
	out := make([]RuleInfo, 0, len(capabilityRules))
	for _, r := range capabilityRules {
		out = append(out, RuleInfo{
			Capability: r.capability,
			Appliances: append([]ApplianceKind(nil), r.appliance...),
			Needs:      r.needs,
		})
	}
	return out
}

func allOf(checks ...ingredientCheck) ingredientCheck {
	return func(scan Scan, catalog *Catalog) bool {
		for _, check := range checks {
			if !check(scan, catalog) {
				return false
			}
		}
		return true
	}
}

// sourceOf matches a present id carrying role directly, or one level away
// through what it produces or fries.
func sourceOf(role Role) ingredientCheck {
	return func(scan Scan, catalog *Catalog) bool {
		for id := range scan.Present {
			def, ok := catalog.Lookup(id)
			if !ok {
				continue
			}
			if def.Role == role {
				return true
			}
			for _, next := range []string{def.Produces, def.FryContent} {
				if next == "" {
					continue
				}
				if inner, ok := catalog.Lookup(next); ok && inner.Role == role {
					return true
				}
			}
		}
		return false
	}
}

func sliceableSource(scan Scan, catalog *Catalog) bool {
	for id := range scan.Present {
		def, ok := catalog.Lookup(id)
		if !ok {
			continue
		}
		if def.Sliceable() {
			return true
		}
		if def.Produces != "" {
			if inner, ok := catalog.Lookup(def.Produces); ok && inner.Sliceable() {
				return true
			}
		}
	}
	return false
}

type Derivation struct {
	Capabilities      CapabilitySet
	AllowedOrderItems IDSet
	Available         IDSet
	EndgameUnlocked   bool
	Scan              Scan
}

// Derive recomputes everything the kitchen can currently make. It never
// patches a previous result.
func Derive(rooms []*Room, catalog *Catalog) Derivation {
	scan := ScanWorld(rooms, catalog)
	caps := CapabilitySet{}
	for _, rule := range capabilityRules {
		if !hasAppliances(scan, rule.appliance) {
			continue
		}
		if rule.ingredient(scan, catalog) {
			caps[rule.capability] = true
		}
	}
	available := Closure(scan.Present, catalog)
	return Derivation{
		Capabilities:      caps,
		AllowedOrderItems: OrderableItems(catalog, available),
		Available:         available,
		EndgameUnlocked:   scan.Appliances[ApplianceFryer] && scan.Appliances[ApplianceSodaFountain],
		Scan:              scan,
	}
}

func hasAppliances(scan Scan, kinds []ApplianceKind) bool {
	for _, k := range kinds {
		if !scan.Appliances[k] {
			return false
		}
	}
	return true
}
