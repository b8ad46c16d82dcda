package gui

import (
	"github.com/appengine-ltd/short-order/internal/parser"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// keyState is one frame of the keys the kitchen screen reacts to.
type keyState struct {
	TabPressed  bool
	ReviewDown  bool
	GivePressed bool
	NextPressed bool
	SavePressed bool
}

func readKeys() keyState {
	return keyState{
		TabPressed:  rl.IsKeyPressed(rl.KeyTab),
		ReviewDown:  rl.IsKeyDown(rl.KeyR),
		GivePressed: rl.IsKeyPressed(rl.KeyG),
		NextPressed: rl.IsKeyPressed(rl.KeyN),
		SavePressed: ctrlDown() && rl.IsKeyPressed(rl.KeyS),
	}
}

// HotkeysEnabled is false while the console has focus so typed letters
// never double as bindings.
func HotkeysEnabled(uiState *gameUI) bool {
	if uiState == nil {
		return true
	}
	return uiState.screen == screenKitchen && !uiState.consoleFocused
}

// intentsForKeys maps a frame of keys to session intents. Give-up only
// fires while review is held.
func intentsForKeys(k keyState, closed bool) []parser.Intent {
	var out []parser.Intent
	if k.TabPressed {
		out = append(out, parser.Intent{Kind: parser.Command, Verb: "cycle"})
	}
	if k.ReviewDown && k.GivePressed {
		out = append(out, parser.Intent{Kind: parser.Command, Verb: "give up"})
	}
	if closed && k.NextPressed {
		out = append(out, parser.Intent{Kind: parser.Command, Verb: "start"})
	}
	if k.SavePressed {
		out = append(out, parser.Intent{Kind: parser.Command, Verb: "save"})
	}
	return out
}

func ctrlDown() bool {
	return rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
}
