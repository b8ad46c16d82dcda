package gui

import (
	"errors"
	"strings"
	"time"

	"github.com/appengine-ltd/short-order/internal/game"
	"github.com/appengine-ltd/short-order/internal/save"
	"github.com/appengine-ltd/short-order/internal/session"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type AppConfig struct {
	Version   string
	Commit    string
	BuildDate string
	Session   *session.Session
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

type screen int

const (
	screenMenu screen = iota
	screenKitchen
)

const (
	maxConsoleLen = 96
	// maxFrameDelta keeps a dragged or minimised window from fast-forwarding the rail.
	maxFrameDelta = 250 * time.Millisecond
)

type menuEntry int

const (
	entryNewGame menuEntry = iota
	entryContinue
	entryQuit
)

var menuLabels = []string{"New Day", "Continue", "Quit"}

type gameUI struct {
	cfg    AppConfig
	sess   *session.Session
	width  int32
	height int32
	screen screen
	quit   bool

	menuIdx int
	status  string

	console        string
	consoleFocused bool
	intents        *intentQueue

	lastTick time.Time
}

func (a *App) Run() error {
	ui := newGameUI(a.cfg)
	return ui.Run()
}

func newGameUI(cfg AppConfig) *gameUI {
	return &gameUI{
		cfg:      cfg,
		sess:     cfg.Session,
		width:    1280,
		height:   760,
		screen:   screenMenu,
		intents:  newIntentQueue(32),
		lastTick: time.Now(),
	}
}

func (ui *gameUI) Run() error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(ui.width, ui.height, "short-order")
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)
	initTypography()
	defer shutdownTypography()

	for !ui.quit && !rl.WindowShouldClose() {
		now := time.Now()
		delta := clampDelta(now.Sub(ui.lastTick))
		ui.lastTick = now

		ui.width = int32(rl.GetScreenWidth())
		ui.height = int32(rl.GetScreenHeight())

		ui.update(delta)

		rl.BeginDrawing()
		rl.ClearBackground(colorBG)
		ui.draw()
		rl.EndDrawing()
	}

	rl.CloseWindow()
	return nil
}

func clampDelta(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	if d > maxFrameDelta {
		return maxFrameDelta
	}
	return d
}

func (ui *gameUI) update(delta time.Duration) {
	switch ui.screen {
	case screenMenu:
		ui.updateMenu()
	case screenKitchen:
		ui.updateKitchen(delta)
	}
}

func (ui *gameUI) draw() {
	switch ui.screen {
	case screenMenu:
		ui.drawMenu()
	case screenKitchen:
		ui.drawKitchen()
	}
}

func (ui *gameUI) updateMenu() {
	if rl.IsKeyPressed(rl.KeyUp) {
		ui.menuIdx = (ui.menuIdx + len(menuLabels) - 1) % len(menuLabels)
	}
	if rl.IsKeyPressed(rl.KeyDown) {
		ui.menuIdx = (ui.menuIdx + 1) % len(menuLabels)
	}
	if !rl.IsKeyPressed(rl.KeyEnter) {
		return
	}
	switch menuEntry(ui.menuIdx) {
	case entryNewGame:
		ui.enterKitchen()
	case entryContinue:
		if err := ui.sess.Load(); err != nil {
			if errors.Is(err, save.ErrNoSave) {
				ui.status = "No saved kitchen yet."
			} else {
				ui.status = "Load failed: " + err.Error()
			}
			return
		}
		ui.enterKitchen()
	case entryQuit:
		ui.quit = true
	}
}

func (ui *gameUI) enterKitchen() {
	ui.status = ""
	ui.screen = screenKitchen
	if ui.sess.Scheduler().Phase() == game.PhaseIdle {
		if err := ui.sess.StartDay(); err != nil {
			ui.status = err.Error()
		}
	}
}

func (ui *gameUI) updateKitchen(delta time.Duration) {
	wasFocused := ui.consoleFocused
	ui.updateConsole()

	if !wasFocused && HotkeysEnabled(ui) {
		keys := readKeys()
		ui.sess.SetReviewHeld(keys.ReviewDown)
		closed := ui.sess.Scheduler().Phase() == game.PhaseClosed
		for _, intent := range intentsForKeys(keys, closed) {
			ui.intents.Enqueue(intent)
		}
		if rl.IsKeyPressed(rl.KeyEscape) {
			ui.sess.Save()
			ui.screen = screenMenu
			return
		}
	}

	ui.intents.drainInto(ui.sess)
	ui.sess.Update(delta)
	if ui.sess.Quit() {
		ui.quit = true
	}
}

// updateConsole gives typed text to the console while it has focus. Enter
// focuses an idle console and submits a focused one.
func (ui *gameUI) updateConsole() {
	if !ui.consoleFocused {
		if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeySlash) {
			ui.consoleFocused = true
			// Swallow the key that opened the console.
			for ch := rl.GetCharPressed(); ch > 0; ch = rl.GetCharPressed() {
			}
		}
		return
	}
	for ch := rl.GetCharPressed(); ch > 0; ch = rl.GetCharPressed() {
		if ch >= 32 && ch <= 126 && len(ui.console) < maxConsoleLen {
			ui.console += string(rune(ch))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(ui.console) > 0 {
		ui.console = ui.console[:len(ui.console)-1]
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		ui.console = ""
		ui.consoleFocused = false
		return
	}
	if rl.IsKeyPressed(rl.KeyEnter) {
		if line := strings.TrimSpace(ui.console); line != "" {
			ui.sess.Submit(line)
		}
		ui.console = ""
		ui.consoleFocused = false
	}
}
