package session

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/appengine-ltd/short-order/internal/game"
	"github.com/appengine-ltd/short-order/internal/parser"
)

// Submit parses a console line and queues it for the next frame. Lines the
// parser cannot settle are answered immediately.
func (s *Session) Submit(raw string) {
	intent := s.parser.Parse(s.ParseContext(), raw)
	if intent.Clarify != nil {
		s.notify("%s", clarifyText(intent.Clarify))
		return
	}
	s.Enqueue(intent)
}

// Enqueue queues an already-built intent; key bindings use this directly.
func (s *Session) Enqueue(intent parser.Intent) {
	s.intents = append(s.intents, intent)
}

func (s *Session) ParseContext() parser.ParseContext {
	ctx := parser.ParseContext{LastEntity: s.lastEntity}
	for name := range s.menuIDs {
		ctx.Menu = append(ctx.Menu, name)
	}
	for name := range s.shopIDs {
		ctx.Shop = append(ctx.Shop, name)
	}
	sort.Strings(ctx.Menu)
	sort.Strings(ctx.Shop)
	return ctx
}

func (s *Session) apply(intent parser.Intent) {
	switch intent.Verb {
	case "help":
		names := make([]string, 0)
		for _, c := range s.parser.Commands() {
			names = append(names, c.Canonical)
		}
		s.notify("Commands: %s", strings.Join(names, ", "))
	case "status":
		s.notify("Day %d  $%.2f  %s  queue %d  active %d",
			s.day.Day, s.day.Money, s.scheduler.Phase(), s.scheduler.QueueLen(), len(s.scheduler.Active()))
	case "cycle":
		s.CycleSelection()
	case "pack":
		s.report(s.Pack(s.menuArgs(intent.Args)))
	case "trash":
		if s.Trash() {
			s.notify("Bag binned.")
		}
	case "review":
		s.reviewHeld = !s.reviewHeld
		if s.reviewHeld {
			s.notify("Reviewing the rail. Type give up to abandon it.")
		}
	case "give up":
		if !s.GiveUp() {
			s.notify("Hold review before giving up.")
		}
	case "shop":
		s.notify("Shop: %s", strings.Join(s.ShopList(), ", "))
	case "buy":
		n := 1
		if intent.Quantity != nil {
			n = intent.Quantity.N
		}
		for _, name := range intent.Args {
			id, ok := s.shopIDs[name]
			if !ok {
				s.report(fmt.Errorf("%w: %s", ErrNotForSale, name))
				continue
			}
			for i := 0; i < n; i++ {
				if err := s.BuyAnywhere(id); err != nil {
					s.report(err)
					break
				}
			}
		}
	case "start":
		var err error
		if s.scheduler.Phase() == game.PhaseClosed {
			err = s.NextDay()
		} else {
			err = s.StartDay()
		}
		s.report(err)
	case "save":
		s.Save()
	case "quit":
		s.quit = true
	default:
		s.notify("Nothing to do for %q.", intent.Raw)
	}
}

func (s *Session) menuArgs(names []string) []string {
	ids := make([]string, 0, len(names))
	for _, name := range names {
		if id, ok := s.menuIDs[name]; ok {
			ids = append(ids, id)
			s.lastEntity = name
			continue
		}
		ids = append(ids, name)
	}
	return ids
}

func (s *Session) report(err error) {
	if err == nil {
		return
	}
	msg := err.Error()
	msg = strings.TrimPrefix(msg, "session: ")
	s.notify("%s", msg)
	if !errors.Is(err, ErrNotOnMenu) && !errors.Is(err, ErrToppingWithoutBurger) {
		s.log.Debug().Err(err).Msg("command failed")
	}
}

func (s *Session) notify(format string, args ...any) {
	s.messages = append(s.messages, fmt.Sprintf(format, args...))
	if len(s.messages) > maxMessages {
		s.messages = s.messages[len(s.messages)-maxMessages:]
	}
}

func (s *Session) Messages() []string {
	return append([]string(nil), s.messages...)
}

func clarifyText(q *parser.ClarifyQuestion) string {
	if len(q.Options) == 0 {
		return q.Prompt
	}
	opts := make([]string, 0, len(q.Options))
	for _, o := range q.Options {
		opts = append(opts, parser.IntentToCommandString(o))
	}
	return q.Prompt + " " + strings.Join(opts, " | ")
}
