package kitchen

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

type Category string

const (
	CategoryTile       Category = "tile"
	CategoryAppliance  Category = "appliance"
	CategoryBox        Category = "box"
	CategoryIngredient Category = "ingredient"
	CategorySauce      Category = "sauce"
	CategoryContainer  Category = "container"
	CategoryBurger     Category = "burger"
	CategorySide       Category = "side"
	CategoryDrink      Category = "drink"
	CategoryBag        Category = "bag"
)

type ApplianceKind string

const (
	ApplianceStove        ApplianceKind = "stove"
	ApplianceCuttingBoard ApplianceKind = "cutting_board"
	ApplianceDispenser    ApplianceKind = "dispenser"
	ApplianceFryer        ApplianceKind = "fryer"
	ApplianceSodaFountain ApplianceKind = "soda_fountain"
	ApplianceDeliverySpot ApplianceKind = "delivery"
)

// Role marks an ingredient as the source a capability rule looks for.
type Role string

const (
	RolePatty    Role = "patty"
	RoleBun      Role = "bun"
	RoleMayo     Role = "mayo"
	RoleLettuce  Role = "lettuce"
	RoleFries    Role = "fries"
	RoleSideCup  Role = "side_cup"
	RoleSyrup    Role = "syrup"
	RoleDrinkCup Role = "drink_cup"
)

type OrderKind string

const (
	OrderBurger  OrderKind = "burger"
	OrderTopping OrderKind = "topping"
	OrderSide    OrderKind = "side"
	OrderDrink   OrderKind = "drink"
)

type Transform struct {
	Result string `yaml:"result" json:"result"`
}

// OrderConfig marks a definition as eligible to appear on a customer order.
type OrderConfig struct {
	Kind       OrderKind  `yaml:"kind" json:"kind"`
	Price      float64    `yaml:"price" json:"price"`
	Complexity float64    `yaml:"complexity" json:"complexity"`
	Requires   Capability `yaml:"requires,omitempty" json:"requires,omitempty"`
}

type Definition struct {
	ID         string        `yaml:"id" json:"id"`
	Name       string        `yaml:"name" json:"name"`
	Category   Category      `yaml:"category" json:"category"`
	Appliance  ApplianceKind `yaml:"appliance,omitempty" json:"appliance,omitempty"`
	Role       Role          `yaml:"role,omitempty" json:"role,omitempty"`
	Produces   string        `yaml:"produces,omitempty" json:"produces,omitempty"`
	Slicing    *Transform    `yaml:"slicing,omitempty" json:"slicing,omitempty"`
	Process    *Transform    `yaml:"process,omitempty" json:"process,omitempty"`
	Result     string        `yaml:"result,omitempty" json:"result,omitempty"`
	SauceID    string        `yaml:"sauce_id,omitempty" json:"sauce_id,omitempty"`
	FryContent string        `yaml:"fry_content,omitempty" json:"fry_content,omitempty"`
	IsTopping  bool          `yaml:"is_topping,omitempty" json:"is_topping,omitempty"`
	ShopPrice  int           `yaml:"shop_price,omitempty" json:"shop_price,omitempty"`
	Order      *OrderConfig  `yaml:"order,omitempty" json:"order,omitempty"`
}

// Sliceable reports whether the definition has a cutting result.
func (d Definition) Sliceable() bool {
	return d.Slicing != nil && strings.TrimSpace(d.Slicing.Result) != ""
}

func (d Definition) DisplayName() string {
	if strings.TrimSpace(d.Name) != "" {
		return d.Name
	}
	return strings.ReplaceAll(d.ID, "_", " ")
}

// closureEdges are the edges followed when expanding what can be made from
// what is physically present.
func (d Definition) closureEdges() []string {
	out := make([]string, 0, 3)
	if d.Produces != "" {
		out = append(out, d.Produces)
	}
	if d.Slicing != nil && d.Slicing.Result != "" {
		out = append(out, d.Slicing.Result)
	}
	if d.Process != nil && d.Process.Result != "" {
		out = append(out, d.Process.Result)
	}
	return out
}

// derivedEdges are every edge that makes a definition the ancestor of another.
func (d Definition) derivedEdges() []string {
	out := d.closureEdges()
	if d.Result != "" {
		out = append(out, d.Result)
	}
	if d.SauceID != "" {
		out = append(out, d.SauceID)
	}
	if d.FryContent != "" {
		out = append(out, d.FryContent)
	}
	return out
}

// Catalog is the read-only id -> definition lookup plus the reverse
// dependency index built from it.
type Catalog struct {
	defs      map[string]Definition
	ids       []string
	ancestors map[string][]string
}

type catalogFile struct {
	Definitions []Definition `yaml:"definitions"`
}

//go:embed catalog.yaml
var defaultCatalogYAML []byte

// DefaultCatalog returns the content shipped with the binary.
func DefaultCatalog() *Catalog {
	c, err := ParseCatalogYAML(defaultCatalogYAML)
	if err != nil {
		panic(fmt.Sprintf("kitchen: embedded catalog: %v", err))
	}
	return c
}

func ParseCatalogYAML(data []byte) (*Catalog, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("catalog: payload is empty")
	}
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}
	return NewCatalog(file.Definitions)
}

func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	c, err := ParseCatalogYAML(data)
	if err != nil {
		return nil, fmt.Errorf("catalog: %s: %w", filepath.Clean(path), err)
	}
	return c, nil
}

// NewCatalog indexes the definitions. Edges pointing at unknown ids are
// allowed; lookups for them simply miss.
func NewCatalog(defs []Definition) (*Catalog, error) {
	c := &Catalog{
		defs:      make(map[string]Definition, len(defs)),
		ids:       make([]string, 0, len(defs)),
		ancestors: make(map[string][]string),
	}
	for _, def := range defs {
		def.ID = strings.TrimSpace(def.ID)
		if def.ID == "" {
			return nil, fmt.Errorf("catalog: definition with empty id")
		}
		if _, dup := c.defs[def.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate definition %q", def.ID)
		}
		if def.Order != nil && def.Order.Kind == "" {
			return nil, fmt.Errorf("catalog: %s: order config without kind", def.ID)
		}
		c.defs[def.ID] = def
		c.ids = append(c.ids, def.ID)
	}
	sort.Strings(c.ids)

	for _, id := range c.ids {
		for _, derived := range c.defs[id].derivedEdges() {
			if !containsString(c.ancestors[derived], id) {
				c.ancestors[derived] = append(c.ancestors[derived], id)
			}
		}
	}
	return c, nil
}

func (c *Catalog) Lookup(id string) (Definition, bool) {
	if c == nil {
		return Definition{}, false
	}
	def, ok := c.defs[id]
	return def, ok
}

// All returns every definition ordered by id.
func (c *Catalog) All() []Definition {
	if c == nil {
		return nil
	}
	out := make([]Definition, 0, len(c.ids))
	for _, id := range c.ids {
		out = append(out, c.defs[id])
	}
	return out
}

// Ancestors lists every id with an edge into id. Base items have none.
func (c *Catalog) Ancestors(id string) []string {
	if c == nil {
		return nil
	}
	return c.ancestors[id]
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
