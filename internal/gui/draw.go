package gui

import (
	"fmt"
	"strings"

	"github.com/appengine-ltd/short-order/internal/game"
	"github.com/appengine-ltd/short-order/internal/kitchen"
	"github.com/appengine-ltd/short-order/internal/session"
	uitheme "github.com/appengine-ltd/short-order/internal/ui/theme"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	railHeight   = float32(220)
	ticketWidth  = float32(170)
	ticketGap    = float32(12)
	cellSize     = float32(44)
	sidebarWidth = float32(400)
)

func (ui *gameUI) drawMenu() {
	x := int32(spaceM * 4)
	y := int32(spaceM * 4)
	drawText("SHORT ORDER", x, y, uitheme.Type.Title, colorAccent)
	drawText(fmt.Sprintf("v%s  (%s)  %s", ui.cfg.Version, ui.cfg.Commit, ui.cfg.BuildDate), x, y+uitheme.Type.Title+8, uitheme.Type.Small, colorMuted)

	y += 120
	for i, label := range menuLabels {
		state := uitheme.ListItemNormal
		if i == ui.menuIdx {
			state = uitheme.ListItemSelected
		}
		uitheme.DrawListItem(rl.NewRectangle(float32(x), float32(y), 320, uitheme.RowHeight), state, label, "")
		y += int32(uitheme.RowHeight + spaceXS)
	}
	if ui.status != "" {
		drawText(ui.status, x, y+16, uitheme.Type.Body, colorWarn)
	}
	uitheme.DrawHintText("Up/Down to move, Enter to select", x, ui.height-40)
}

func (ui *gameUI) drawKitchen() {
	snap := ui.sess.Snapshot()
	w := float32(ui.width)
	h := float32(ui.height)

	rail := rl.NewRectangle(spaceS, spaceS, w-spaceS*2, railHeight)
	ui.drawRail(rail, snap)

	top := rail.Y + rail.Height + spaceS
	floor := rl.NewRectangle(spaceS, top, w-sidebarWidth-spaceS*3, h-top-spaceS)
	ui.drawFloor(floor)

	side := rl.NewRectangle(floor.X+floor.Width+spaceS, top, sidebarWidth, h-top-spaceS)
	ui.drawSidebar(side, snap)

	if snap.Summary != nil {
		ui.drawSummary(*snap.Summary)
	}
}

func (ui *gameUI) drawRail(rect rl.Rectangle, snap session.Snapshot) {
	area := uitheme.DrawTitledPanel(rect, railTitle(snap), snap.ReviewHeld)
	if snap.Phase == game.PhasePrep {
		bar := rl.NewRectangle(area.X, area.Y, area.Width, 14)
		uitheme.DrawProgressBar(bar, snap.PrepRatio, colorWarn)
		drawText("Prep: stock up before the doors open", int32(area.X), int32(area.Y)+22, uitheme.Type.Body, colorDim)
		return
	}
	if len(snap.Tickets) == 0 {
		drawText("No tickets on the rail.", int32(area.X), int32(area.Y), uitheme.Type.Body, colorMuted)
	}
	for i, r := range ticketSlots(area, len(snap.Tickets)) {
		t := snap.Tickets[i]
		uitheme.DrawTicketCard(r, uitheme.TicketCard{
			Title:     ticketTitle(t),
			Lines:     t.Lines,
			Remaining: t.Remaining,
			ParTime:   t.ParTime,
			Late:      t.Late,
			Selected:  i == snap.Selected,
			Pulse:     snap.Pulse,
		})
	}
	if snap.Printing {
		px := rect.X + rect.Width - 130
		uitheme.DrawProgressBar(rl.NewRectangle(px, rect.Y+spaceS, 110, 10), snap.PrintProgress, colorDim)
		drawText("printing", int32(px), int32(rect.Y+spaceS+14), uitheme.Type.Small, colorMuted)
	}
}

func railTitle(snap session.Snapshot) string {
	title := fmt.Sprintf("Day %d  ·  $%.2f  ·  queue %d", snap.Day, snap.Money, snap.QueueLen)
	if snap.ReviewHeld {
		title += "  ·  REVIEW (G gives up)"
	}
	return title
}

func ticketTitle(t game.TicketView) string {
	id := t.ID
	if len(id) > 8 {
		id = id[:8]
	}
	if t.BagsTotal > 1 {
		return fmt.Sprintf("#%s  %d/%d bags", id, t.BagsDone, t.BagsTotal)
	}
	return "#" + id
}

// ticketSlots lays n ticket cards left to right inside area, shrinking them
// when the rail is full.
func ticketSlots(area rl.Rectangle, n int) []rl.Rectangle {
	if n <= 0 {
		return nil
	}
	width := ticketWidth
	if need := float32(n)*ticketWidth + float32(n-1)*ticketGap; need > area.Width {
		width = (area.Width - float32(n-1)*ticketGap) / float32(n)
	}
	out := make([]rl.Rectangle, 0, n)
	for i := 0; i < n; i++ {
		x := area.X + float32(i)*(width+ticketGap)
		out = append(out, rl.NewRectangle(x, area.Y, width, area.Height))
	}
	return out
}

func (ui *gameUI) drawFloor(rect rl.Rectangle) {
	area := uitheme.DrawTitledPanel(rect, "Kitchen", false)
	catalog := ui.sess.Catalog()
	y := area.Y
	for _, room := range ui.sess.World().Rooms {
		if room == nil {
			continue
		}
		for cy := 0; cy < room.Height; cy++ {
			for cx := 0; cx < room.Width; cx++ {
				cell := room.Cell(cx, cy)
				r := rl.NewRectangle(area.X+float32(cx)*cellSize, y+float32(cy)*cellSize, cellSize-2, cellSize-2)
				rl.DrawRectangleRec(r, tileColor(cell, catalog))
				if cell.Object != nil {
					inner := rl.NewRectangle(r.X+6, r.Y+6, r.Width-12, r.Height-12)
					rl.DrawRectangleRec(inner, objectColor(cell.Object, catalog))
					drawText(objectLabel(cell.Object, catalog), int32(inner.X)+2, int32(inner.Y)+2, uitheme.Type.Small, uitheme.TicketInk)
				}
			}
		}
		y += float32(room.Height)*cellSize + spaceM
	}
}

func tileColor(cell *kitchen.Cell, catalog *kitchen.Catalog) rl.Color {
	def, ok := catalog.Lookup(cell.Type)
	switch {
	case !ok:
		return colorFloor
	case def.Appliance == kitchen.ApplianceDeliverySpot:
		return colorDelivery
	case def.Appliance != "":
		return colorAppliance
	case def.ID == "counter":
		return colorCounter
	default:
		return colorFloor
	}
}

func objectColor(obj *kitchen.Object, catalog *kitchen.Catalog) rl.Color {
	if def, ok := catalog.Lookup(obj.DefinitionID); ok && def.Category == kitchen.CategoryBag {
		return colorBag
	}
	return colorBox
}

func objectLabel(obj *kitchen.Object, catalog *kitchen.Catalog) string {
	name := obj.DefinitionID
	if def, ok := catalog.Lookup(obj.DefinitionID); ok {
		name = def.DisplayName()
	}
	if r := []rune(name); len(r) > 2 {
		return string(r[:2])
	}
	return name
}

func (ui *gameUI) drawSidebar(rect rl.Rectangle, snap session.Snapshot) {
	area := uitheme.DrawTitledPanel(rect, "Menu", false)
	x := int32(area.X)
	y := int32(area.Y)
	line := textLineHeight(uitheme.Type.Body)

	for _, sec := range menuSections(snap.Menu) {
		drawText(sec, x, y, uitheme.Type.Body, colorText)
		y += line
	}
	drawText(fmt.Sprintf("Complexity %.0f", snap.Complexity), x, y, uitheme.Type.Small, colorDim)
	y += line
	drawText(strings.Join(snap.Capabilities, " "), x, y, uitheme.Type.Small, colorMuted)
	y += line + 8
	uitheme.DrawDivider(area.X, float32(y), area.X+area.Width, float32(y))
	y += 10

	consoleTop := int32(area.Y+area.Height) - int32(uitheme.RowHeight)
	logLine := textLineHeight(uitheme.Type.Small)
	msgs := snap.Messages
	if room := int((consoleTop - y - 8) / logLine); room >= 0 && len(msgs) > room {
		msgs = msgs[len(msgs)-room:]
	}
	for _, msg := range msgs {
		drawText(msg, x, y, uitheme.Type.Small, colorDim)
		y += logLine
	}

	state := uitheme.ListItemNormal
	prompt := "Enter to type a command"
	if ui.consoleFocused {
		state = uitheme.ListItemSelected
		prompt = "> " + ui.console + "_"
	}
	uitheme.DrawListItem(rl.NewRectangle(area.X, float32(consoleTop), area.Width, uitheme.RowHeight), state, prompt, "")
}

func menuSections(m game.Menu) []string {
	sections := []struct {
		label string
		items []game.MenuItem
	}{
		{"Burgers", m.Burgers},
		{"Toppings", m.Toppings},
		{"Sides", m.Sides},
		{"Drinks", m.Drinks},
	}
	out := make([]string, 0, len(sections))
	for _, sec := range sections {
		if len(sec.items) == 0 {
			continue
		}
		names := make([]string, 0, len(sec.items))
		for _, it := range sec.items {
			names = append(names, it.Name)
		}
		out = append(out, sec.label+": "+strings.Join(names, ", "))
	}
	if len(out) == 0 {
		out = append(out, "Nothing on the menu yet.")
	}
	return out
}

func (ui *gameUI) drawSummary(s game.DaySummary) {
	w := float32(460)
	h := float32(340)
	rect := rl.NewRectangle((float32(ui.width)-w)/2, (float32(ui.height)-h)/2, w, h)
	rl.DrawRectangle(0, 0, ui.width, ui.height, rl.Fade(colorBG, 0.6))
	area := uitheme.DrawTitledPanel(rect, fmt.Sprintf("Day %d closed", s.Day), true)

	x := int32(area.X)
	y := int32(area.Y)
	line := textLineHeight(uitheme.Type.Body)
	drawText(fmt.Sprintf("Earned $%.2f   Bags %d", s.Earned, s.BagsSold), x, y, uitheme.Type.Body, colorText)
	y += line
	clr := colorDim
	if s.Late > 0 || s.GivenUp > 0 {
		clr = colorDanger
	}
	drawText(fmt.Sprintf("Served %d   Late %d   Given up %d", s.Served, s.Late, s.GivenUp), x, y, uitheme.Type.Body, clr)
	y += line + 6
	y = uitheme.DrawStars(x, y, s.Stars[:], game.StarLabels[:])
	uitheme.DrawHintText("N for the next day · Esc saves and leaves", x, y+8)
}
