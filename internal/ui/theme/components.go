package theme

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	PaddingXS = float32(6)
	PaddingS  = float32(10)
	PaddingM  = float32(16)
	PaddingL  = float32(22)

	CornerRadius   = float32(0.08)
	CornerSegments = int32(8)

	BorderWidth      = float32(1.2)
	BorderWidthFocus = float32(2.0)
	RowHeight        = float32(36)
	ButtonHeight     = float32(48)
	AccentStripWidth = float32(4)
)

type PanelVariant int

const (
	PanelStandard PanelVariant = iota
	PanelLifted
	PanelMuted
)

type ListItemState int

const (
	ListItemNormal ListItemState = iota
	ListItemSelected
	ListItemDisabled
)

func DrawPanel(rect rl.Rectangle, variant PanelVariant) {
	fill := Panel
	stroke := Border
	strokeWidth := BorderWidth

	switch variant {
	case PanelLifted:
		fill = PanelRaised
		stroke = mix(Border, AccentMustard, 0.35)
		strokeWidth = 1.4
	case PanelMuted:
		fill = DisabledPanel
		stroke = rl.Fade(Border, 0.75)
	}

	rl.DrawRectangleRounded(rect, CornerRadius, CornerSegments, fill)
	rl.DrawRectangleRoundedLinesEx(rect, CornerRadius, CornerSegments, strokeWidth, stroke)
}

// DrawTitledPanel draws a panel with a header inside its top edge and
// returns the content area below it.
func DrawTitledPanel(rect rl.Rectangle, title string, focused bool) rl.Rectangle {
	variant := PanelStandard
	if focused {
		variant = PanelLifted
	}
	DrawPanel(rect, variant)
	if title == "" {
		return insetRect(rect, PaddingS)
	}
	DrawHeader(title, int32(rect.X+PaddingS), int32(rect.Y+PaddingXS))
	top := PaddingXS + float32(Type.Header) + 14
	return rl.NewRectangle(rect.X+PaddingS, rect.Y+top, rect.Width-PaddingS*2, rect.Height-top-PaddingS)
}

func DrawListItem(rect rl.Rectangle, state ListItemState, leftText, rightText string) {
	fill := rl.Fade(PanelRaised, 0.45)
	stroke := rl.Fade(Border, 0.9)
	left := TextPrimary
	right := TextSecondary
	strokeWidth := BorderWidth

	switch state {
	case ListItemSelected:
		fill = PanelRaised
		stroke = AccentMustard
		strokeWidth = BorderWidthFocus
		right = AccentMustard
	case ListItemDisabled:
		fill = DisabledPanel
		stroke = rl.Fade(Border, 0.75)
		left = DisabledText
		right = DisabledText
	}

	rl.DrawRectangleRounded(rect, CornerRadius, CornerSegments, fill)
	rl.DrawRectangleRoundedLinesEx(rect, CornerRadius, CornerSegments, strokeWidth, stroke)
	if state == ListItemSelected {
		rl.DrawRectangleRec(rl.NewRectangle(rect.X+1, rect.Y+2, AccentStripWidth, rect.Height-4), AccentMustard)
	}

	textY := int32(rect.Y + (rect.Height-float32(Type.Body))/2)
	if leftText != "" {
		drawText(leftText, int32(rect.X+PaddingM), textY, Type.Body, left)
	}
	if rightText != "" {
		rightW := measureText(rightText, Type.Body)
		drawText(rightText, int32(rect.X+rect.Width-PaddingM-float32(rightW)), textY, Type.Body, right)
	}
}

// TicketCard is what the rail draws for one active ticket.
type TicketCard struct {
	Title     string
	Lines     []string
	Remaining float64
	ParTime   float64
	Late      bool
	Selected  bool
	// Pulse is seconds since the selection last changed.
	Pulse float64
}

// DrawTicketCard draws a paper ticket with a countdown strip along its foot.
func DrawTicketCard(rect rl.Rectangle, card TicketCard) {
	rl.DrawRectangleRec(rect, TicketPaper)
	if card.Selected {
		glow := float32(0.55 + 0.45*math.Cos(card.Pulse*4))
		if card.Pulse > 1 {
			glow = 1
		}
		rl.DrawRectangleLinesEx(insetRect(rect, -3), 3, rl.Fade(AccentMustard, glow))
	}

	x := int32(rect.X + PaddingXS)
	y := int32(rect.Y + PaddingXS)
	width := int32(rect.Width - PaddingXS*2)
	drawTicketText(FitText(FaceTicket, card.Title, Type.TicketTitle, width), x, y, Type.TicketTitle, TicketInk)
	y += Type.TicketTitle + 6
	rl.DrawLineEx(rl.NewVector2(rect.X+PaddingXS, float32(y)), rl.NewVector2(rect.X+rect.Width-PaddingXS, float32(y)), 1, rl.Fade(TicketInk, 0.4))
	y += 6
	for _, line := range card.Lines {
		if float32(y+Type.TicketLine) > rect.Y+rect.Height-28 {
			drawTicketText("…", x, y, Type.TicketLine, TicketInk)
			break
		}
		drawTicketText(FitText(FaceTicket, line, Type.TicketLine, width), x, y, Type.TicketLine, TicketInk)
		y += Type.TicketLine + 4
	}

	ratio := 0.0
	if card.ParTime > 0 {
		ratio = card.Remaining / card.ParTime
	}
	fill := AccentPickle
	switch {
	case card.Late:
		fill = Danger
	case ratio < 0.35:
		fill = AccentMustard
	}
	bar := rl.NewRectangle(rect.X+PaddingXS, rect.Y+rect.Height-18, rect.Width-PaddingXS*2, 10)
	DrawProgressBar(bar, ratio, fill)
	label := fmt.Sprintf("%.0fs", card.Remaining)
	labelW := textMeasureFn(FaceTicket, label, Type.TicketLine)
	drawTicketText(label, int32(bar.X+bar.Width)-labelW, int32(bar.Y)-Type.TicketLine-2, Type.TicketLine, TicketInk)
}

func DrawProgressBar(rect rl.Rectangle, ratio float64, fill rl.Color) {
	ratio = math.Max(0, math.Min(1, ratio))
	rl.DrawRectangleRec(rect, rl.Fade(Divider, 0.9))
	inner := rect
	inner.Width = float32(float64(rect.Width) * ratio)
	if inner.Width > 0 {
		rl.DrawRectangleRec(inner, fill)
	}
	rl.DrawRectangleLinesEx(rect, 1, rl.Fade(Border, 0.9))
}

// DrawStars draws one labelled row per star criterion.
func DrawStars(x, y int32, earned []bool, labels []string) int32 {
	for i, ok := range earned {
		clr := TextMuted
		mark := "o"
		if ok {
			clr = AccentMustard
			mark = "*"
		}
		label := ""
		if i < len(labels) {
			label = labels[i]
		}
		drawText(mark+"  "+label, x, y, Type.Body, clr)
		y += int32(float32(Type.Body) * Type.LineFactor)
	}
	return y
}

func DrawHeader(text string, x, y int32) {
	if text == "" {
		return
	}
	drawText(text, x, y, Type.Header, TextPrimary)
	w := measureText(text, Type.Header)
	lineW := int32(float32(w) * 0.6)
	if lineW < 44 {
		lineW = 44
	}
	drawLine(float32(x), float32(y+Type.Header+6), float32(x+lineW), float32(y+Type.Header+6), 2.0, AccentKetchup)
}

func DrawDivider(x1, y1, x2, y2 float32) {
	drawLine(x1, y1, x2, y2, 1.0, rl.Fade(Divider, 0.95))
}

func DrawHintText(text string, x, y int32) {
	if text == "" {
		return
	}
	drawText(text, x, y, Type.Small, TextMuted)
}

func insetRect(r rl.Rectangle, by float32) rl.Rectangle {
	return rl.NewRectangle(r.X+by, r.Y+by, r.Width-by*2, r.Height-by*2)
}

func drawLine(x1, y1, x2, y2, thickness float32, clr rl.Color) {
	rl.DrawLineEx(rl.NewVector2(x1, y1), rl.NewVector2(x2, y2), thickness, clr)
}

func mix(a, b rl.Color, t float32) rl.Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	inv := 1.0 - t
	return rl.NewColor(
		uint8(float32(a.R)*inv+float32(b.R)*t),
		uint8(float32(a.G)*inv+float32(b.G)*t),
		uint8(float32(a.B)*inv+float32(b.B)*t),
		uint8(float32(a.A)*inv+float32(b.A)*t),
	)
}
