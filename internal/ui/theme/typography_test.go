package theme

import (
	"testing"
	"unicode/utf8"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// fixedWidth measures every rune as half the font size, wider on tickets.
func fixedWidth(t *testing.T) {
	t.Helper()
	prevDraw, prevMeasure := textDrawFn, textMeasureFn
	SetTextRenderer(
		func(Face, string, int32, int32, int32, rl.Color) {},
		func(face Face, text string, size int32) int32 {
			w := int32(utf8.RuneCountInString(text)) * size / 2
			if face == FaceTicket {
				w += w / 2
			}
			return w
		},
	)
	t.Cleanup(func() { textDrawFn, textMeasureFn = prevDraw, prevMeasure })
}

func TestFitText(t *testing.T) {
	fixedWidth(t)
	tests := []struct {
		face  Face
		text  string
		size  int32
		width int32
		want  string
	}{
		{face: FaceUI, text: "Burger", size: 10, width: 30, want: "Burger"},
		{face: FaceUI, text: "Burger w/ cheese", size: 10, width: 30, want: "Burge…"},
		{face: FaceTicket, text: "Burger", size: 10, width: 30, want: "Bur…"},
		{face: FaceUI, text: "Fries", size: 10, width: 4, want: ""},
		{face: FaceUI, text: "Fries", size: 10, width: 0, want: ""},
	}
	for _, tc := range tests {
		if got := FitText(tc.face, tc.text, tc.size, tc.width); got != tc.want {
			t.Fatalf("FitText(%d, %q, %d, %d) = %q, want %q", tc.face, tc.text, tc.size, tc.width, got, tc.want)
		}
	}
}

func TestSetTextRendererKeepsNilFuncs(t *testing.T) {
	fixedWidth(t)
	SetTextRenderer(nil, nil)
	if got := measureText("abcd", 10); got != 20 {
		t.Fatalf("expected the fixed-width measure to stay, got %d", got)
	}
}
