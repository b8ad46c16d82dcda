package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/appengine-ltd/short-order/internal/game"
	"github.com/appengine-ltd/short-order/internal/parser"
	"github.com/appengine-ltd/short-order/internal/session"
)

const frameInterval = time.Second / 30

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

func (a *App) Run() error {
	m := newKitchenModel(a.cfg)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// --- Styles (retro green) ---
var (
	green       = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	brightGreen = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimGreen    = lipgloss.NewStyle().Foreground(lipgloss.Color("22"))
	warn        = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	border      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	panel       = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("2")).Padding(0, 1)
	selected    = panel.BorderForeground(lipgloss.Color("10"))
)

type frameTickMsg struct {
	at time.Time
}

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameTickMsg{at: t}
	})
}

type kitchenModel struct {
	cfg  AppConfig
	sess *session.Session

	input      string
	lastTickAt time.Time
	width      int
}

func newKitchenModel(cfg AppConfig) kitchenModel {
	return kitchenModel{cfg: cfg, sess: cfg.Session}
}

func (m kitchenModel) Init() tea.Cmd {
	return frameTick()
}

func (m kitchenModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyTab:
			m.sess.Enqueue(parser.Intent{Kind: parser.Command, Verb: "cycle"})
		case tea.KeyEnter:
			line := strings.TrimSpace(m.input)
			m.input = ""
			if line != "" {
				m.sess.Submit(line)
			}
		case tea.KeyBackspace:
			if r := []rune(m.input); len(r) > 0 {
				m.input = string(r[:len(r)-1])
			}
		case tea.KeyEsc:
			m.input = ""
		case tea.KeySpace:
			m.input += " "
		case tea.KeyRunes:
			m.input += string(msg.Runes)
		}
		return m, nil
	case frameTickMsg:
		dt := frameInterval
		if !m.lastTickAt.IsZero() {
			dt = msg.at.Sub(m.lastTickAt)
		}
		m.lastTickAt = msg.at
		// A stalled terminal must not fast-forward the rail.
		if dt > time.Second {
			dt = time.Second
		}
		if dt > 0 {
			m.sess.Update(dt)
		}
		if m.sess.Quit() {
			return m, tea.Quit
		}
		return m, frameTick()
	}
	return m, nil
}

func (m kitchenModel) View() string {
	snap := m.sess.Snapshot()
	var b strings.Builder

	title := brightGreen.Render("SHORT ORDER") + dimGreen.Render(fmt.Sprintf("  v%s", m.cfg.Version))
	b.WriteString(title + "\n")
	b.WriteString(statusLine(snap) + "\n")
	b.WriteString(border.Render(strings.Repeat("-", 48)) + "\n")

	b.WriteString(renderRail(snap) + "\n")
	b.WriteString(renderKitchen(m.sess) + "\n")
	b.WriteString(renderMenu(snap) + "\n")

	if snap.Summary != nil {
		b.WriteString(renderSummary(*snap.Summary) + "\n")
	}

	for _, msg := range snap.Messages {
		b.WriteString(dimGreen.Render("· "+msg) + "\n")
	}
	b.WriteString("\n" + brightGreen.Render("> ") + green.Render(m.input) + brightGreen.Render("_") + "\n")
	b.WriteString(dimGreen.Render("Tab cycles tickets · type help · ctrl+c quits") + "\n")
	return b.String()
}

func statusLine(snap session.Snapshot) string {
	phase := string(snap.Phase)
	switch snap.Phase {
	case game.PhasePrep:
		phase = fmt.Sprintf("prep %s", progressBar(snap.PrepRatio, 12))
	case game.PhaseService:
		phase = fmt.Sprintf("service %s", formatClock(snap.Clock))
	}
	line := fmt.Sprintf("Day %d  $%.2f (+%.2f)  %s", snap.Day, snap.Money, snap.DailyEarned, phase)
	if snap.ReviewHeld {
		line += warn.Render("  [REVIEW]")
	}
	if snap.Saving {
		line += dimGreen.Render("  saving…")
	}
	return green.Render(line)
}

func renderRail(snap session.Snapshot) string {
	header := fmt.Sprintf("Queue %d", snap.QueueLen)
	if snap.Printing {
		header += "  printing " + progressBar(snap.PrintProgress, 8)
	}
	if len(snap.Tickets) == 0 {
		return green.Render(header) + "\n" + dimGreen.Render("(no active tickets)")
	}
	cards := make([]string, 0, len(snap.Tickets))
	for i, t := range snap.Tickets {
		body := fmt.Sprintf("#%s\n%s\n%s", shortID(t.ID), strings.Join(t.Lines, "\n"), ticketClock(t))
		style := panel
		if i == snap.Selected {
			style = selected
		}
		if t.Late {
			body = warn.Render(body)
		}
		cards = append(cards, style.Render(body))
	}
	return green.Render(header) + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func ticketClock(t game.TicketView) string {
	clock := fmt.Sprintf("%.0fs left", t.Remaining)
	if t.Late {
		clock = fmt.Sprintf("%.0fs late", -t.Remaining)
	}
	if t.BagsTotal > 1 {
		clock += fmt.Sprintf("  bags %d/%d", t.BagsDone, t.BagsTotal)
	}
	return clock
}

func renderMenu(snap session.Snapshot) string {
	sections := []struct {
		label string
		items []game.MenuItem
	}{
		{"Burgers", snap.Menu.Burgers},
		{"Toppings", snap.Menu.Toppings},
		{"Sides", snap.Menu.Sides},
		{"Drinks", snap.Menu.Drinks},
	}
	lines := make([]string, 0, len(sections)+1)
	for _, sec := range sections {
		if len(sec.items) == 0 {
			continue
		}
		names := make([]string, 0, len(sec.items))
		for _, it := range sec.items {
			names = append(names, fmt.Sprintf("%s $%.0f", it.Name, it.Price))
		}
		lines = append(lines, fmt.Sprintf("%-9s %s", sec.label+":", strings.Join(names, ", ")))
	}
	if len(lines) == 0 {
		lines = append(lines, "Nothing on the menu yet.")
	}
	lines = append(lines, fmt.Sprintf("Complexity %.0f  %s", snap.Complexity, strings.Join(snap.Capabilities, " ")))
	return green.Render(strings.Join(lines, "\n"))
}

func renderSummary(s game.DaySummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Day %d closed at %s  earned $%.2f  bags %d  served %d  late %d  given up %d\n",
		s.Day, formatClock(s.ClosingAt), s.Earned, s.BagsSold, s.Served, s.Late, s.GivenUp)
	for i, ok := range s.Stars {
		mark := "☆"
		if ok {
			mark = "★"
		}
		fmt.Fprintf(&b, "%s %s\n", mark, game.StarLabels[i])
	}
	b.WriteString("Type start for the next day.")
	return panel.Render(brightGreen.Render(b.String()))
}

func progressBar(ratio float64, width int) string {
	ratio = clampFloat(ratio, 0, 1)
	filled := int(ratio*float64(width) + 0.5)
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}

func formatClock(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
