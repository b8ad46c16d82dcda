package gui

import (
	"math"
	"os"
	"path/filepath"

	uitheme "github.com/appengine-ltd/short-order/internal/ui/theme"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const lineFactor = 1.34

// fonts holds the loaded faces. A zero texture means raylib's default font.
type fonts struct {
	ui         rl.Font
	ticket     rl.Font
	ownsUI     bool
	ownsTicket bool
}

var loaded fonts

var (
	uiFontCandidates = []string{
		filepath.Join("assets", "fonts", "Inter-Regular.ttf"),
		filepath.Join("assets", "fonts", "NotoSans-Regular.ttf"),
	}
	ticketFontCandidates = []string{
		filepath.Join("assets", "fonts", "VT323-Regular.ttf"),
		filepath.Join("assets", "fonts", "JetBrainsMono-Regular.ttf"),
	}
)

func initTypography() {
	if f, ok := loadFontFromCandidates(uiFontCandidates, 36); ok {
		loaded.ui, loaded.ownsUI = f, true
		rl.SetTextureFilter(f.Texture, rl.FilterBilinear)
	}
	// Printer faces stay crisp.
	if f, ok := loadFontFromCandidates(ticketFontCandidates, 32); ok {
		loaded.ticket, loaded.ownsTicket = f, true
		rl.SetTextureFilter(f.Texture, rl.FilterPoint)
	}
	uitheme.SetTextRenderer(drawFace, measureFace)
}

func shutdownTypography() {
	if loaded.ownsUI {
		rl.UnloadFont(loaded.ui)
	}
	if loaded.ownsTicket {
		rl.UnloadFont(loaded.ticket)
	}
	loaded = fonts{}
}

func loadFontFromCandidates(candidates []string, fontSize int32) (rl.Font, bool) {
	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		font := rl.LoadFontEx(path, fontSize, nil, 0)
		if font.Texture.ID == 0 {
			continue
		}
		return font, true
	}
	return rl.Font{}, false
}

// fontFor falls back from the ticket face to the UI face. ok is false when
// neither is loaded.
func (f fonts) fontFor(face uitheme.Face) (rl.Font, bool) {
	if face == uitheme.FaceTicket && f.ticket.Texture.ID != 0 {
		return f.ticket, true
	}
	if f.ui.Texture.ID != 0 {
		return f.ui, true
	}
	return rl.Font{}, false
}

func drawFace(face uitheme.Face, text string, x, y, fontSize int32, clr rl.Color) {
	font, ok := loaded.fontFor(face)
	if !ok {
		rl.DrawText(text, x, y, fontSize, clr)
		return
	}
	rl.DrawTextEx(font, text, rl.Vector2{X: float32(x), Y: float32(y)}, float32(fontSize), 1, clr)
}

func measureFace(face uitheme.Face, text string, fontSize int32) int32 {
	font, ok := loaded.fontFor(face)
	if !ok {
		return int32(rl.MeasureText(text, fontSize))
	}
	return int32(math.Round(float64(rl.MeasureTextEx(font, text, float32(fontSize), 1).X)))
}

func drawText(text string, x, y, fontSize int32, clr rl.Color) {
	drawFace(uitheme.FaceUI, text, x, y, fontSize, clr)
}

func textLineHeight(size int32) int32 {
	if size < 1 {
		size = 1
	}
	return int32(math.Round(float64(size) * lineFactor))
}
