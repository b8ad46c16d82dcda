package ui

import (
	"strings"

	"github.com/appengine-ltd/short-order/internal/kitchen"
	"github.com/appengine-ltd/short-order/internal/session"
)

var applianceGlyph = map[kitchen.ApplianceKind]rune{
	kitchen.ApplianceStove:        'S',
	kitchen.ApplianceCuttingBoard: 'C',
	kitchen.ApplianceDispenser:    'D',
	kitchen.ApplianceFryer:        'F',
	kitchen.ApplianceSodaFountain: 'P',
	kitchen.ApplianceDeliverySpot: 'X',
}

// renderKitchen draws each room as a character grid: appliances as capitals,
// counters as '=', objects as the lower-case initial of their name.
func renderKitchen(sess *session.Session) string {
	catalog := sess.Catalog()
	var b strings.Builder
	for _, room := range sess.World().Rooms {
		if room == nil {
			continue
		}
		b.WriteString(dimGreen.Render(room.Name) + "\n")
		for y := 0; y < room.Height; y++ {
			row := make([]rune, 0, room.Width)
			for x := 0; x < room.Width; x++ {
				row = append(row, cellGlyph(room.Cell(x, y), catalog))
			}
			b.WriteString(green.Render(string(row)) + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func cellGlyph(cell *kitchen.Cell, catalog *kitchen.Catalog) rune {
	if cell == nil {
		return ' '
	}
	if cell.Object != nil {
		if def, ok := catalog.Lookup(cell.Object.DefinitionID); ok {
			if name := []rune(strings.ToLower(def.DisplayName())); len(name) > 0 {
				return name[0]
			}
		}
		return '?'
	}
	def, ok := catalog.Lookup(cell.Type)
	if !ok {
		return '?'
	}
	if g, ok := applianceGlyph[def.Appliance]; ok {
		return g
	}
	if cell.Type == "counter" {
		return '='
	}
	return '.'
}
