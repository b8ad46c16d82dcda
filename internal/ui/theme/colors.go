package theme

import rl "github.com/gen2brain/raylib-go/raylib"

// Diner palette: chrome and tile neutrals with condiment accents.
var (
	BG            = rl.NewColor(0x1B, 0x17, 0x15, 255) // #1B1715
	Panel         = rl.NewColor(0x26, 0x20, 0x1D, 255) // #26201D
	PanelRaised   = rl.NewColor(0x2F, 0x28, 0x24, 255) // #2F2824
	Border        = rl.NewColor(0x45, 0x3B, 0x35, 255) // #453B35
	Divider       = rl.NewColor(0x36, 0x2E, 0x2A, 255) // #362E2A
	TextPrimary   = rl.NewColor(0xF3, 0xEC, 0xDF, 255) // #F3ECDF
	TextSecondary = rl.NewColor(0xBF, 0xB3, 0xA5, 255) // #BFB3A5
	TextMuted     = rl.NewColor(0x8A, 0x7F, 0x75, 255) // #8A7F75
	AccentKetchup = rl.NewColor(0xC8, 0x3A, 0x2C, 255) // #C83A2C
	AccentMustard = rl.NewColor(0xE5, 0xB2, 0x2E, 255) // #E5B22E
	AccentPickle  = rl.NewColor(0x5E, 0x8C, 0x3A, 255) // #5E8C3A
	Danger        = rl.NewColor(0xD9, 0x4E, 0x3F, 255) // #D94E3F
	DisabledPanel = rl.NewColor(0x1F, 0x1A, 0x18, 255)
	DisabledText  = TextMuted

	TicketPaper = rl.NewColor(0xF7, 0xF1, 0xE1, 255)
	TicketInk   = rl.NewColor(0x2A, 0x24, 0x20, 255)
)
