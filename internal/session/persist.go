package session

import (
	"fmt"
	"time"

	"github.com/appengine-ltd/short-order/internal/game"
	"github.com/appengine-ltd/short-order/internal/kitchen"
	"github.com/appengine-ltd/short-order/internal/save"
)

// Save snapshots the game now and writes it off the frame. The result is
// reported on a later Update.
func (s *Session) Save() {
	if s.store == nil {
		return
	}
	if s.saveBusy {
		s.notify("Still saving...")
		return
	}
	data, err := save.Encode(s.saveSnapshot(), time.Now())
	if err != nil {
		s.report(err)
		return
	}
	s.saveBusy = true
	store, slot, day := s.store, s.slot, s.day.Day
	go func() {
		s.saveResultCh <- saveResult{day: day, err: store.Write(slot, data)}
	}()
}

func (s *Session) pollSaveResult() {
	for {
		select {
		case result := <-s.saveResultCh:
			s.saveBusy = false
			if result.err != nil {
				s.log.Error().Err(result.err).Int("day", result.day).Msg("save failed")
				s.notify("Save failed: %v", result.err)
				continue
			}
			s.log.Info().Int("day", result.day).Int("slot", s.slot).Msg("saved")
			s.notify("Saved day %d.", result.day)
		default:
			return
		}
	}
}

// Saving reports whether a write is still in flight.
func (s *Session) Saving() bool { return s.saveBusy }

func (s *Session) saveSnapshot() save.Snapshot {
	return save.Snapshot{
		Day:               s.day.Day,
		Money:             s.day.Money,
		EarnedServiceStar: s.day.EarnedServiceStar,
		Rooms:             s.world.Rooms,
	}
}

// Load replaces the kitchen and economy with the saved game. The loaded day
// waits for StartDay.
func (s *Session) Load() error {
	if s.store == nil {
		return save.ErrNoSave
	}
	snap, err := s.store.Load(s.slot)
	if err != nil {
		return err
	}
	if len(snap.Rooms) == 0 {
		return fmt.Errorf("session: save slot %d has no rooms", s.slot)
	}
	for _, room := range snap.Rooms {
		if err := room.Validate(); err != nil {
			return fmt.Errorf("session: save slot %d: %w", s.slot, err)
		}
	}
	s.world = &kitchen.World{Rooms: snap.Rooms}
	s.day = game.NewDayState(snap.Day, snap.Money)
	s.day.EarnedServiceStar = snap.EarnedServiceStar
	s.scheduler = game.NewScheduler(s.balance)
	s.summary = nil
	s.intents = nil
	s.reviewHeld = false
	s.dirty = true
	s.log.Info().Int("day", snap.Day).Float64("money", snap.Money).Msg("loaded")
	return nil
}
