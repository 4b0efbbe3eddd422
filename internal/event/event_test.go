package event

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dechi99991/cooking-sim/internal/nutrition"
)

type recordingWorld struct {
	energy, stamina, money, fullness int
	maxEnergy, maxStamina            int
	ingredients, provisions          map[string]int
}

func newRecordingWorld() *recordingWorld {
	return &recordingWorld{
		ingredients: make(map[string]int),
		provisions:  make(map[string]int),
	}
}

func (w *recordingWorld) AdjustEnergy(d int)   { w.energy += d }
func (w *recordingWorld) AdjustStamina(d int)  { w.stamina += d }
func (w *recordingWorld) AdjustMoney(d int)    { w.money += d }
func (w *recordingWorld) AdjustFullness(d int) { w.fullness += d }
func (w *recordingWorld) GrantIngredient(name string, qty int) {
	w.ingredients[name] += qty
}
func (w *recordingWorld) GrantProvision(name string, qty int) {
	w.provisions[name] += qty
}
func (w *recordingWorld) GrowMaxEnergy(d int)  { w.maxEnergy += d }
func (w *recordingWorld) GrowMaxStamina(d int) { w.maxStamina += d }

func certainEvent(id string, timing Timing, effect Effect) Event {
	return Event{
		ID:          id,
		Timing:      timing,
		Probability: 1.0,
		Effect:      effect,
		OncePerDay:  true,
	}
}

func TestEngine_OncePerDay(t *testing.T) {
	eng := NewEngine()
	eng.Register(certainEvent("e1", TimingNight, Energy(-1)))
	world := newRecordingWorld()

	first := eng.CheckAndTrigger(TimingNight, Snapshot{}, world)
	second := eng.CheckAndTrigger(TimingNight, Snapshot{}, world)

	require.Len(t, first, 1)
	assert.Empty(t, second)
	assert.Equal(t, -1, world.energy)

	eng.NewDay()
	third := eng.CheckAndTrigger(TimingNight, Snapshot{}, world)
	require.Len(t, third, 1)
	assert.Equal(t, -2, world.energy)
}

func TestEngine_TimingIsolation(t *testing.T) {
	eng := NewEngine()
	eng.Register(certainEvent("morning", TimingWakeUp, Energy(1)))
	world := newRecordingWorld()

	assert.Empty(t, eng.CheckAndTrigger(TimingNight, Snapshot{}, world))
	assert.Len(t, eng.CheckAndTrigger(TimingWakeUp, Snapshot{}, world), 1)
}

func TestEngine_ConditionGating(t *testing.T) {
	eng := NewEngine()
	ev := certainEvent("broke-only", TimingNight, Money(1000))
	ev.Condition = func(s Snapshot) bool { return s.Money < 500 }
	eng.Register(ev)
	world := newRecordingWorld()

	assert.Empty(t, eng.CheckAndTrigger(TimingNight, Snapshot{Money: 10000}, world))
	assert.Len(t, eng.CheckAndTrigger(TimingNight, Snapshot{Money: 100}, world), 1)
	assert.Equal(t, 1000, world.money)
}

func TestDampedProbability(t *testing.T) {
	ev := Event{Probability: 0.40, Damping: DampEnergyNegative}

	// 4 mental points: 20% reduction.
	got := ev.dampedProbability(Snapshot{DailyNutrition: nutrition.Nutrition{Mental: 4}})
	assert.InDelta(t, 0.32, got, 1e-9)

	// 20 points would be a 100% reduction; capped at 50%.
	got = ev.dampedProbability(Snapshot{DailyNutrition: nutrition.Nutrition{Mental: 20}})
	assert.InDelta(t, 0.20, got, 1e-9)

	// Stamina-negative events key off defense instead.
	ev.Damping = DampStaminaNegative
	got = ev.dampedProbability(Snapshot{DailyNutrition: nutrition.Nutrition{Defense: 6}})
	assert.InDelta(t, 0.28, got, 1e-9)

	// Untagged events are never damped.
	ev.Damping = DampNone
	got = ev.dampedProbability(Snapshot{DailyNutrition: nutrition.Nutrition{Mental: 20, Defense: 20}})
	assert.InDelta(t, 0.40, got, 1e-9)
}

func TestEngine_SeededDrawsAreReplayable(t *testing.T) {
	run := func() []string {
		eng := NewEngine()
		eng.SetRNG(rand.New(rand.NewSource(42)))
		eng.Register(DefaultEvents()...)
		var ids []string
		for day := 1; day <= 10; day++ {
			eng.NewDay()
			snap := Snapshot{Day: day, Money: 5000, Fullness: 5}
			for _, timing := range []Timing{TimingWakeUp, TimingGoToWork, TimingAfterLunch, TimingAtShop, TimingLeaveWork, TimingAfterWork, TimingNight} {
				for _, r := range eng.CheckAndTrigger(timing, snap, newRecordingWorld()) {
					ids = append(ids, r.Event.ID)
				}
			}
		}
		return ids
	}

	assert.Equal(t, run(), run())
}

func TestEngine_DetermineWeatherStablePerDay(t *testing.T) {
	eng := NewEngine()
	first := eng.DetermineWeather(12, 4)
	second := eng.DetermineWeather(12, 4)
	assert.Equal(t, first, second)
	assert.Equal(t, first, eng.Weather())
}

func TestCompositeEffect(t *testing.T) {
	world := newRecordingWorld()
	Composite(Money(-800), GiveProvision("rice ball", 2), GiveIngredient("egg", 1)).Apply(world)

	assert.Equal(t, -800, world.money)
	assert.Equal(t, 2, world.provisions["rice ball"])
	assert.Equal(t, 1, world.ingredients["egg"])
}

func TestStreakMilestoneFiresAtExactLength(t *testing.T) {
	eng := NewEngine()
	eng.Register(DefaultEvents()...)
	world := newRecordingWorld()

	snap := Snapshot{Streaks: Streaks{Mental: 3}}
	results := eng.CheckAndTrigger(TimingWakeUp, snap, world)

	var fired bool
	for _, r := range results {
		if r.Event.ID == "mental-streak" {
			fired = true
		}
	}
	require.True(t, fired)
	assert.Equal(t, 1, world.maxEnergy)

	// Day 4 of the same streak is past the milestone; no double reward.
	eng.NewDay()
	snap.Streaks.Mental = 4
	for _, r := range eng.CheckAndTrigger(TimingWakeUp, snap, world) {
		assert.NotEqual(t, "mental-streak", r.Event.ID)
	}
}
