package gui

import (
	uitheme "github.com/appengine-ltd/short-order/internal/ui/theme"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type Theme struct {
	Background    rl.Color
	Panel         rl.Color
	Border        rl.Color
	TextPrimary   rl.Color
	TextSecondary rl.Color
	TextMuted     rl.Color
	Accent        rl.Color
	Warning       rl.Color
	Danger        rl.Color
}

const (
	spaceXS = uitheme.PaddingXS
	spaceS  = uitheme.PaddingS
	spaceM  = uitheme.PaddingM
)

var AppTheme = Theme{
	Background:    uitheme.BG,
	Panel:         uitheme.Panel,
	Border:        uitheme.Border,
	TextPrimary:   uitheme.TextPrimary,
	TextSecondary: uitheme.TextSecondary,
	TextMuted:     uitheme.TextMuted,
	Accent:        uitheme.AccentKetchup,
	Warning:       uitheme.AccentMustard,
	Danger:        uitheme.Danger,
}

var (
	colorBG     = AppTheme.Background
	colorText   = AppTheme.TextPrimary
	colorDim    = AppTheme.TextSecondary
	colorMuted  = AppTheme.TextMuted
	colorAccent = AppTheme.Accent
	colorWarn   = AppTheme.Warning
	colorDanger = AppTheme.Danger
)

// Tile colours for the kitchen grid, keyed by what sits in the cell.
var (
	colorFloor     = rl.NewColor(0x3A, 0x33, 0x2E, 255)
	colorCounter   = rl.NewColor(0x6B, 0x5E, 0x52, 255)
	colorAppliance = rl.NewColor(0x8C, 0x95, 0x9C, 255)
	colorDelivery  = uitheme.AccentPickle
	colorBox       = rl.NewColor(0xB0, 0x85, 0x4F, 255)
	colorBag       = uitheme.TicketPaper
)
