package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appengine-ltd/short-order/internal/config"
	"github.com/appengine-ltd/short-order/internal/game"
	"github.com/appengine-ltd/short-order/internal/kitchen"
	"github.com/appengine-ltd/short-order/internal/save"
)

func newTestSession(t *testing.T, store *save.Store) *Session {
	t.Helper()
	return New(Options{
		Catalog: kitchen.DefaultCatalog(),
		Balance: config.Default(),
		Store:   store,
		Seed:    7,
	})
}

func deliveryCell(t *testing.T, s *Session) *kitchen.Cell {
	t.Helper()
	pos, ok := s.World().Find(s.Catalog(), kitchen.ApplianceDeliverySpot)
	require.True(t, ok)
	return s.World().Cell(pos)
}

// runUntilActive advances whole seconds until a ticket is on the rail.
func runUntilActive(t *testing.T, s *Session) {
	t.Helper()
	for i := 0; i < 300; i++ {
		s.Update(time.Second)
		if len(s.Scheduler().Active()) > 0 {
			return
		}
	}
	t.Fatal("no ticket became active")
}

func TestStarterKitchenServesBurgers(t *testing.T) {
	s := newTestSession(t, nil)
	snap := s.Snapshot()
	assert.Contains(t, snap.Capabilities, string(kitchen.CapBasicBurger))
	require.Len(t, snap.Menu.Burgers, 1)
	assert.Empty(t, snap.Menu.Sides)
	assert.Empty(t, snap.Menu.Drinks)
	assert.Equal(t, 5.0, snap.Complexity)
	assert.Equal(t, game.PhaseIdle, snap.Phase)
}

func TestStartDaySetsPrepFromComplexity(t *testing.T) {
	s := newTestSession(t, nil)
	require.NoError(t, s.StartDay())
	day := s.Day()
	assert.Equal(t, 40.0, day.PrepDuration)
	assert.Equal(t, game.PhasePrep, s.Scheduler().Phase())
	assert.Positive(t, s.Scheduler().QueueLen())
	assert.ErrorIs(t, s.StartDay(), ErrDayInProgress)
}

func TestFullDayClosesWithSummary(t *testing.T) {
	s := newTestSession(t, nil)
	require.NoError(t, s.StartDay())
	tickets := s.Scheduler().QueueLen()

	for i := 0; i < 600 && s.Summary() == nil; i++ {
		s.Update(time.Second)
		if len(s.Scheduler().Active()) > 0 && deliveryCell(t, s).Object == nil {
			require.NoError(t, s.Pack([]string{"burger"}))
		}
	}
	summary := s.Summary()
	require.NotNil(t, summary)
	assert.Equal(t, game.PhaseClosed, s.Scheduler().Phase())
	assert.Equal(t, tickets, summary.Served)
	assert.Equal(t, tickets, summary.BagsSold)
	assert.Zero(t, summary.Late)
	assert.True(t, summary.Stars[0])
	assert.Equal(t, 1, summary.Stars.Count())
	assert.Greater(t, s.Day().Money, config.Default().StartingMoney)
	assert.True(t, s.Day().EarnedServiceStar)
}

func TestMismatchedBagStaysOnCounter(t *testing.T) {
	s := newTestSession(t, nil)
	require.NoError(t, s.StartDay())
	runUntilActive(t, s)

	require.NoError(t, s.Pack([]string{"burger", "burger"}))
	before := s.Day().Money
	s.Update(0)
	assert.NotNil(t, deliveryCell(t, s).Object)
	assert.Equal(t, before, s.Day().Money)

	assert.ErrorIs(t, s.Pack([]string{"burger"}), ErrOccupied)
	assert.True(t, s.Trash())
	assert.Nil(t, deliveryCell(t, s).Object)
}

func TestPackRejectsItemsOffMenu(t *testing.T) {
	s := newTestSession(t, nil)
	assert.ErrorIs(t, s.Pack([]string{"fries"}), ErrNotOnMenu)
	assert.ErrorIs(t, s.Pack([]string{"cheese_slice"}), ErrNotOnMenu)
}

func TestBuyUnlocksToppings(t *testing.T) {
	s := newTestSession(t, nil)
	require.NoError(t, s.BuyAnywhere("cheese_box"))
	assert.Equal(t, 240.0, s.Day().Money)

	s.Update(0)
	menu := s.Snapshot().Menu
	require.Len(t, menu.Toppings, 1)
	assert.Equal(t, "cheese_slice", menu.Toppings[0].ID)

	assert.ErrorIs(t, s.Pack([]string{"cheese_slice", "burger"}), ErrToppingWithoutBurger)
	require.NoError(t, s.Pack([]string{"burger", "cheese_slice"}))
	bag, ok := bagFromObject(deliveryCell(t, s).Object, s.Catalog())
	require.True(t, ok)
	require.Len(t, bag.Burgers, 1)
	assert.Equal(t, []string{"cheese_slice"}, bag.Burgers[0].Modifications)
}

func TestBuyChecksFundsAndSpace(t *testing.T) {
	s := newTestSession(t, nil)
	require.NoError(t, s.BuyAnywhere("fryer"))
	assert.ErrorIs(t, s.BuyAnywhere("soda_fountain"), ErrInsufficientFunds)
	assert.ErrorIs(t, s.BuyAnywhere("cooked_patty"), ErrNotForSale)
	assert.ErrorIs(t, s.Buy("cheese_box", 0, 0), ErrOccupied)
	assert.ErrorIs(t, s.Buy("cheese_box", 5, 3), ErrNoSpace)
}

func TestShopPricesAreWholeDollars(t *testing.T) {
	s := newTestSession(t, nil)
	list := s.ShopList()
	require.NotEmpty(t, list)
	assert.Equal(t, "Paper Bags $3", list[0])
	assert.Contains(t, list, "Fryer $120")

	require.NoError(t, s.BuyAnywhere("fryer"))
	assert.Equal(t, 130.0, s.Day().Money)
	assert.Contains(t, s.Messages(), "Bought Fryer for $120")

	err := s.BuyAnywhere("soda_fountain")
	require.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Contains(t, err.Error(), "Soda Fountain costs $150")
}

func TestPlaceMovesObjects(t *testing.T) {
	s := newTestSession(t, nil)
	from := kitchen.Position{X: 0, Y: 0}
	to := kitchen.Position{X: 5, Y: 0}
	require.NoError(t, s.Place(from, to))
	assert.Nil(t, s.World().Cell(from).Object)
	require.NotNil(t, s.World().Cell(to).Object)
	assert.Equal(t, "patty_box", s.World().Cell(to).Object.DefinitionID)
	assert.ErrorIs(t, s.Place(kitchen.Position{X: 2, Y: 0}, to), ErrOccupied)
}

func TestGiveUpNeedsReviewHeld(t *testing.T) {
	s := newTestSession(t, nil)
	require.NoError(t, s.StartDay())
	queued := s.Scheduler().QueueLen()

	assert.False(t, s.GiveUp())
	s.SetReviewHeld(true)
	assert.True(t, s.GiveUp())
	assert.Equal(t, queued, s.Day().DailyGivenUp)
	assert.Equal(t, config.Default().StartingMoney, s.Day().Money)

	events := s.Update(0)
	require.NotEmpty(t, events)
	assert.Equal(t, game.EventClosing, events[len(events)-1].Kind)
	assert.NotNil(t, s.Summary())
	assert.False(t, s.ReviewHeld())
}

func TestConsoleCommandsRunNextFrame(t *testing.T) {
	s := newTestSession(t, nil)
	s.Submit("buy cheese box")
	assert.Equal(t, config.Default().StartingMoney, s.Day().Money)
	s.Update(0)
	assert.Equal(t, 240.0, s.Day().Money)

	s.Submit("pack a burger")
	s.Update(0)
	assert.NotNil(t, deliveryCell(t, s).Object)

	s.Submit("trash")
	s.Update(0)
	assert.Nil(t, deliveryCell(t, s).Object)

	s.Submit("status")
	s.Update(0)
	msgs := s.Messages()
	require.NotEmpty(t, msgs)
	assert.Contains(t, msgs[len(msgs)-1], "Day 1")

	s.Submit("quit")
	s.Update(0)
	assert.True(t, s.Quit())
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	store := save.NewStore(t.TempDir())
	s := newTestSession(t, store)
	require.NoError(t, s.BuyAnywhere("cheese_box"))
	s.Save()
	require.Eventually(t, func() bool {
		s.Update(0)
		return !s.Saving()
	}, 2*time.Second, 5*time.Millisecond)

	loaded := newTestSession(t, store)
	require.NoError(t, loaded.Load())
	assert.Equal(t, 1, loaded.Day().Day)
	assert.Equal(t, 240.0, loaded.Day().Money)

	loaded.Update(0)
	require.Len(t, loaded.Snapshot().Menu.Toppings, 1)
}

func TestLoadWithoutSave(t *testing.T) {
	s := newTestSession(t, save.NewStore(t.TempDir()))
	assert.ErrorIs(t, s.Load(), save.ErrNoSave)
}

func TestLoadRejectsTruncatedRoom(t *testing.T) {
	store := save.NewStore(t.TempDir())
	require.NoError(t, store.Save(1, save.Snapshot{
		Day:   3,
		Money: 90,
		Rooms: []*kitchen.Room{{Name: "Kitchen", Width: 4, Height: 4, Cells: make([]kitchen.Cell, 3)}},
	}))

	s := newTestSession(t, store)
	err := s.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has 3 cells, want 16")

	assert.Equal(t, 1, s.Day().Day)
	assert.NotPanics(t, func() { s.Update(0) })
	_, ok := s.World().Find(s.Catalog(), kitchen.ApplianceDeliverySpot)
	assert.True(t, ok)
}

func TestNextDayAdvancesAndPersists(t *testing.T) {
	store := save.NewStore(t.TempDir())
	s := newTestSession(t, store)
	assert.ErrorIs(t, s.NextDay(), ErrDayInProgress)

	require.NoError(t, s.StartDay())
	s.SetReviewHeld(true)
	require.True(t, s.GiveUp())
	s.Update(0)
	require.Equal(t, game.PhaseClosed, s.Scheduler().Phase())

	require.NoError(t, s.NextDay())
	assert.Equal(t, 2, s.Day().Day)
	assert.Equal(t, game.PhasePrep, s.Scheduler().Phase())
	assert.Nil(t, s.Summary())
	assert.True(t, s.Day().PerfectDay)

	require.Eventually(t, func() bool {
		s.Update(0)
		return !s.Saving()
	}, 2*time.Second, 5*time.Millisecond)
	entries, err := store.List()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 2, entries[0].Day)
}

func TestPackBagRoundTrip(t *testing.T) {
	catalog := kitchen.DefaultCatalog()
	obj, err := packBag([]string{"burger", "cheese_slice", "bacon", "fries", "burger", "cola"}, catalog)
	require.NoError(t, err)
	bag, ok := bagFromObject(&obj, catalog)
	require.True(t, ok)
	require.Len(t, bag.Burgers, 2)
	assert.Equal(t, []string{"cheese_slice", "bacon"}, bag.Burgers[0].Modifications)
	assert.Empty(t, bag.Burgers[1].Modifications)
	assert.Equal(t, []string{"fries"}, bag.Sides)
	assert.Equal(t, []string{"cola"}, bag.Drinks)

	_, ok = bagFromObject(&kitchen.Object{DefinitionID: "patty_box"}, catalog)
	assert.False(t, ok)
}
