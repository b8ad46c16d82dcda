package theme

import rl "github.com/gen2brain/raylib-go/raylib"

type Typography struct {
	Title       int32
	Header      int32
	Body        int32
	Small       int32
	TicketTitle int32
	TicketLine  int32
	LineFactor  float32
}

var Type = Typography{
	Title:       32,
	Header:      21,
	Body:        19,
	Small:       15,
	TicketTitle: 16,
	TicketLine:  14,
	LineFactor:  1.4,
}

// Face picks the font a string is set in. Tickets use the printer face.
type Face int

const (
	FaceUI Face = iota
	FaceTicket
)

type TextDrawFunc func(face Face, text string, x, y, fontSize int32, clr rl.Color)

type TextMeasureFunc func(face Face, text string, fontSize int32) int32

var (
	textDrawFn TextDrawFunc = func(_ Face, text string, x, y, fontSize int32, clr rl.Color) {
		rl.DrawText(text, x, y, fontSize, clr)
	}
	textMeasureFn TextMeasureFunc = func(_ Face, text string, fontSize int32) int32 {
		return int32(rl.MeasureText(text, fontSize))
	}
)

// SetTextRenderer routes theme text through the client's loaded fonts.
// A nil func keeps the current one.
func SetTextRenderer(draw TextDrawFunc, measure TextMeasureFunc) {
	if draw != nil {
		textDrawFn = draw
	}
	if measure != nil {
		textMeasureFn = measure
	}
}

func drawText(text string, x, y, fontSize int32, clr rl.Color) {
	textDrawFn(FaceUI, text, x, y, fontSize, clr)
}

func measureText(text string, fontSize int32) int32 {
	return textMeasureFn(FaceUI, text, fontSize)
}

func drawTicketText(text string, x, y, fontSize int32, clr rl.Color) {
	textDrawFn(FaceTicket, text, x, y, fontSize, clr)
}

// FitText shortens text with a trailing ellipsis until it measures no wider
// than width in face.
func FitText(face Face, text string, fontSize, width int32) string {
	if width <= 0 {
		return ""
	}
	if textMeasureFn(face, text, fontSize) <= width {
		return text
	}
	runes := []rune(text)
	for n := len(runes) - 1; n > 0; n-- {
		cut := string(runes[:n]) + "…"
		if textMeasureFn(face, cut, fontSize) <= width {
			return cut
		}
	}
	return ""
}
