package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dechi99991/cooking-sim/internal/config"
	"github.com/dechi99991/cooking-sim/internal/event"
	"github.com/dechi99991/cooking-sim/internal/temperament"
)

func TestCookAtBreakfast(t *testing.T) {
	s := newTestSession(nil)
	require.Equal(t, PhaseBreakfast, s.Phase())

	energyBefore := s.Energy()
	dish, err := s.Cook([]string{"rice", "egg"})
	require.NoError(t, err)

	assert.Equal(t, "tamago kake gohan", dish.Name)
	assert.True(t, dish.Named)
	assert.Equal(t, energyBefore-2, s.Energy())
	assert.Positive(t, s.Fullness())
	assert.Positive(t, s.DailyNutrition().Sustain)
	assert.Equal(t, 1, s.Stock().Quantity("rice"))
	assert.Equal(t, 1, s.Stock().Quantity("egg"))
}

func TestPreviewCookSpendsNothing(t *testing.T) {
	s := newTestSession(nil)

	dish, err := s.PreviewCook([]string{"rice", "egg"})
	require.NoError(t, err)
	assert.Equal(t, "tamago kake gohan", dish.Name)

	assert.Equal(t, 2, s.Stock().Quantity("rice"))
	assert.Equal(t, 2, s.Stock().Quantity("egg"))
	assert.Equal(t, 10, s.Energy())
	assert.Zero(t, s.Fullness())
}

func TestCookFailuresCostNothing(t *testing.T) {
	s := newTestSession(nil)
	energyBefore := s.Energy()

	_, err := s.Cook([]string{"beef"})
	assert.ErrorIs(t, err, ErrMissingIngredients)
	assert.Equal(t, energyBefore, s.Energy())
	assert.Equal(t, 2, s.Stock().Quantity("rice"))

	// Cooking is a kitchen action, not a workplace one.
	advanceTo(t, s, PhaseLunch)
	_, err = s.Cook([]string{"rice", "egg"})
	assert.ErrorIs(t, err, ErrWrongPhase)
}

func TestAutoCaffeineFallback(t *testing.T) {
	s := newTestSession(nil)
	s.AdjustEnergy(-s.Energy())
	require.Zero(t, s.Energy())
	require.Equal(t, 1, s.Provisions().Quantity("green tea"))

	// The mildest caffeinated provision is drunk automatically to cover the
	// cooking cost.
	_, err := s.Cook([]string{"rice", "egg"})
	require.NoError(t, err)

	assert.Zero(t, s.Provisions().Quantity("green tea"))
	assert.Equal(t, 1, s.CaffeineToday())
	assert.Zero(t, s.Energy(), "tea covered exactly the cooking cost")
}

func TestAutoCaffeineIsNotALoop(t *testing.T) {
	s := newTestSession(func(b *config.Balance) {
		b.CookEnergyCost = 4
	})
	s.AdjustEnergy(-s.Energy())

	// One green tea restores 2, still short of 4; no second attempt.
	_, err := s.Cook([]string{"rice", "egg"})
	assert.ErrorIs(t, err, ErrNotEnoughEnergy)
	assert.Zero(t, s.Provisions().Quantity("green tea"))
	assert.Equal(t, 2, s.Stock().Quantity("rice"), "failed cook leaves stock alone")
}

func TestMakeBentoKeepsLunchForTomorrow(t *testing.T) {
	s := newTestSession(nil)

	prepared, err := s.MakeBento([]string{"rice", "egg"})
	require.NoError(t, err)
	assert.Equal(t, s.Day()+1, prepared.ExpiryDay)
	assert.Zero(t, s.Fullness(), "a boxed lunch is not eaten now")

	finishDay(t, s)
	advanceTo(t, s, PhaseLunch)
	require.Len(t, s.Provisions().Prepared(s.Day()), 1)

	fullnessBefore := s.Fullness()
	require.NoError(t, s.EatPrepared(0))
	assert.Greater(t, s.Fullness(), fullnessBefore)
	assert.Empty(t, s.Provisions().Prepared(s.Day()))
}

func TestBuyIngredientFromDailyShop(t *testing.T) {
	s := newTestSession(nil)
	advanceTo(t, s, PhaseShopping)

	items := s.ShopItems()
	require.NotEmpty(t, items)
	name := items[0].Ingredient.Name

	moneyBefore := s.Money()
	qtyBefore := s.Stock().Quantity(name)
	require.NoError(t, s.BuyIngredient(name, 2))

	assert.Equal(t, moneyBefore-items[0].Price*2, s.Money())
	assert.Equal(t, qtyBefore+2, s.Stock().Quantity(name))

	assert.ErrorIs(t, s.BuyIngredient("no such ingredient", 1), ErrNotInShop)
}

func TestShoppingTripCostsEnergyAndStamina(t *testing.T) {
	s := newTestSession(nil)
	advanceTo(t, s, PhaseLeaveWork)
	energyBefore, staminaBefore := s.Energy(), s.Stamina()

	_, _, err := s.AdvancePhase()
	require.NoError(t, err)
	require.Equal(t, PhaseShopping, s.Phase())

	assert.Equal(t, energyBefore-2, s.Energy())
	assert.Equal(t, staminaBefore-1, s.Stamina())
	assert.NoError(t, s.BuyIngredient(s.ShopItems()[0].Ingredient.Name, 1))
}

func TestShopStaysClosedWhenTooTired(t *testing.T) {
	s := newTestSession(nil)
	advanceTo(t, s, PhaseLeaveWork)
	s.AdjustEnergy(-s.Energy())

	// The tea in the cupboard is drunk on the way, but 2 energy is still
	// under the bar: no trip, no purchases this slot.
	_, _, err := s.AdvancePhase()
	require.NoError(t, err)
	require.Equal(t, PhaseShopping, s.Phase())

	assert.Zero(t, s.Provisions().Quantity("green tea"))
	assert.Equal(t, 2, s.Energy())
	assert.ErrorIs(t, s.BuyIngredient("rice", 1), ErrNotEnoughEnergy)
	assert.ErrorIs(t, s.BuyRelic("fridge"), ErrNotEnoughEnergy)
}

func TestCaffeineOpensTheShop(t *testing.T) {
	s := newTestSession(nil)
	advanceTo(t, s, PhaseLeaveWork)
	s.AdjustEnergy(-s.Energy() + 2)

	// 2 energy is short of the bar; green tea lifts it to 4, the trip
	// itself costs 2.
	_, _, err := s.AdvancePhase()
	require.NoError(t, err)
	require.Equal(t, PhaseShopping, s.Phase())

	assert.Zero(t, s.Provisions().Quantity("green tea"))
	assert.Equal(t, 2, s.Energy())
	assert.NoError(t, s.BuyIngredient(s.ShopItems()[0].Ingredient.Name, 1))
}

func TestShoppingLoverRecoversOnPurchases(t *testing.T) {
	s := newTestSession(nil)
	s.temper = temperament.ShoppingLover
	advanceTo(t, s, PhaseShopping)

	energyBefore := s.Energy()
	require.NoError(t, s.BuyIngredient(s.ShopItems()[0].Ingredient.Name, 1))
	assert.Equal(t, energyBefore+1, s.Energy())
}

func TestShoppingLoverRecoversOnOnlineOrders(t *testing.T) {
	s := newTestSession(nil)
	s.temper = temperament.ShoppingLover
	advanceTo(t, s, PhaseOnlineShopping)

	energyBefore := s.Energy()
	require.NoError(t, s.BuyOnlineProvision("retort curry", 1))
	assert.Equal(t, energyBefore+1, s.Energy())
}

func TestBuyIngredientOutsideShopPhase(t *testing.T) {
	s := newTestSession(nil)
	err := s.BuyIngredient("rice", 1)
	assert.ErrorIs(t, err, ErrWrongPhase)
}

func TestBagCapacityLimitsOneTrip(t *testing.T) {
	s := newTestSession(func(b *config.Balance) {
		b.BagCapacity = 2
	})
	advanceTo(t, s, PhaseShopping)

	name := s.ShopItems()[0].Ingredient.Name
	require.NoError(t, s.BuyIngredient(name, 2))
	assert.ErrorIs(t, s.BuyIngredient(name, 1), ErrBagFull)
}

func TestOnlineProvisionOrderRunsOnCredit(t *testing.T) {
	s := newTestSession(func(b *config.Balance) {
		b.DeliveryDelayDays = 2
	})
	advanceTo(t, s, PhaseOnlineShopping)

	moneyBefore := s.Money()
	require.NoError(t, s.BuyOnlineProvision("retort curry", 3))

	assert.Equal(t, moneyBefore, s.Money(), "card purchases touch no cash")
	assert.Equal(t, 300*3, s.CardDebt())
	assert.Zero(t, s.Provisions().Quantity("retort curry"))

	finishDay(t, s) // day 2: still in transit
	assert.Zero(t, s.Provisions().Quantity("retort curry"))
	report := finishDay(t, s) // day 3: delivered
	require.Len(t, report.Delivered, 1)
	assert.Equal(t, 3, s.Provisions().Quantity("retort curry"))
}

func TestCafeteriaNeedsOneAndCostsMoney(t *testing.T) {
	s := newTestSession(nil)
	advanceTo(t, s, PhaseLunch)

	moneyBefore := s.Money()
	require.NoError(t, s.EatCafeteria())
	assert.Equal(t, moneyBefore-500, s.Money())
	assert.Positive(t, s.Fullness())
}

func TestCafeteriaUnavailableForFreelancers(t *testing.T) {
	cfg := config.Default()
	s := NewSession(cfg, config.MonthConfig{Number: 4}, Options{
		Character: "freelance",
		Events:    []event.Event{},
	})
	advanceTo(t, s, PhaseLunch)
	assert.ErrorIs(t, s.EatCafeteria(), ErrNoCafeteria)
}

func TestHolidayFreeTime(t *testing.T) {
	s := newTestSession(nil)
	for s.Day() < 5 {
		finishDay(t, s)
	}
	require.True(t, s.IsHoliday())

	_, _, err := s.AdvancePhase()
	require.NoError(t, err)
	require.Equal(t, PhaseHolidayShopping1, s.Phase())

	s.AdjustEnergy(-s.Energy() + 3)
	require.NoError(t, s.Rest())
	assert.Equal(t, 5, s.Energy())

	require.NoError(t, s.Cleanup())
	assert.Equal(t, 1, s.DailyNutrition().Mental)
}

func TestCleanupRunsOnCaffeineFallback(t *testing.T) {
	s := newTestSession(nil)
	for s.Day() < 5 {
		finishDay(t, s)
	}
	advanceTo(t, s, PhaseHolidayShopping1)
	s.AdjustEnergy(-s.Energy())
	require.Equal(t, 1, s.Provisions().Quantity("green tea"))

	require.NoError(t, s.Cleanup())

	assert.Zero(t, s.Provisions().Quantity("green tea"))
	assert.Equal(t, 1, s.Energy(), "tea restored 2, tidying took 1")
	assert.Equal(t, 2, s.DailyNutrition().Mental, "one from the tea, one from the tidy room")
}

func TestRelicEnergySaveFloorsCost(t *testing.T) {
	s := newTestSession(func(b *config.Balance) {
		b.CookEnergyCost = 1
	})
	require.True(t, s.Relics().Add("microwave", 1))

	energyBefore := s.Energy()
	_, err := s.Cook([]string{"rice", "egg"})
	require.NoError(t, err)
	assert.Equal(t, energyBefore-1, s.Energy(), "saving never makes an action free")
}
