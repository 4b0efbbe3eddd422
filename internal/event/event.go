package event

import (
	"math/rand"

	"github.com/dechi99991/cooking-sim/internal/nutrition"
)

// Weather is the daily weather, redrawn each morning.
type Weather string

const (
	WeatherSunny  Weather = "sunny"
	WeatherCloudy Weather = "cloudy"
	WeatherRainy  Weather = "rainy"
	WeatherStormy Weather = "stormy"
)

// Timing is one of the seven fixed daily checkpoints where candidate events
// are evaluated.
type Timing string

const (
	TimingWakeUp     Timing = "wake_up"
	TimingGoToWork   Timing = "go_to_work"
	TimingAfterLunch Timing = "after_lunch"
	TimingAtShop     Timing = "at_shop"
	TimingLeaveWork  Timing = "leave_work"
	TimingAfterWork  Timing = "after_work"
	TimingNight      Timing = "night"
)

// DampingTag marks events whose probability shrinks as a protective nutrient
// rises.
type DampingTag string

const (
	DampNone            DampingTag = ""
	DampEnergyNegative  DampingTag = "energy_negative"  // damped by mental
	DampStaminaNegative DampingTag = "stamina_negative" // damped by defense
)

// Streaks counts consecutive days each nutrient stayed at or above the high
// threshold.
type Streaks struct {
	Vitality  int `json:"vitality"`
	Mental    int `json:"mental"`
	Awakening int `json:"awakening"`
	Sustain   int `json:"sustain"`
	Defense   int `json:"defense"`
}

// Snapshot is the immutable context an event condition sees. It is built
// once per timing-slot check; conditions never observe or mutate live
// session state.
type Snapshot struct {
	Day            int
	Weekday        int // 0=Monday .. 6=Sunday
	Holiday        bool
	Weather        Weather
	Money          int
	Energy         int
	Stamina        int
	Fullness       int
	DailyNutrition nutrition.Nutrition
	Streaks        Streaks
}

// Condition is a pure predicate over a context snapshot.
type Condition func(Snapshot) bool

// Event is a registered random event. Probability-1.0 events gated purely by
// a condition are the mechanism for deterministic-but-gated bonuses.
type Event struct {
	ID          string
	Name        string
	Description string
	Timing      Timing
	Probability float64
	Condition   Condition // nil means always eligible
	Effect      Effect
	OncePerDay  bool
	Damping     DampingTag
}

// dampedProbability applies nutrient damping: 5% reduction per point of the
// protective nutrient, capped at 50%. Always within [0, base].
func (e Event) dampedProbability(snap Snapshot) float64 {
	p := e.Probability

	damp := func(points int) float64 {
		reduction := float64(points) * 0.05
		if reduction > 0.5 {
			reduction = 0.5
		}
		if reduction < 0 {
			reduction = 0
		}
		return p * (1 - reduction)
	}

	switch e.Damping {
	case DampEnergyNegative:
		return damp(snap.DailyNutrition.Mental)
	case DampStaminaNegative:
		return damp(snap.DailyNutrition.Defense)
	default:
		return p
	}
}

// Result describes one triggered event.
type Result struct {
	Event   Event
	Message string
}

// Engine is the per-session event registry and daily trigger state. Not
// thread safe; the session store guarantees one caller at a time.
type Engine struct {
	events         []Event
	triggeredToday map[string]bool
	weather        Weather
	rng            *rand.Rand
}

func NewEngine() *Engine {
	return &Engine{
		triggeredToday: make(map[string]bool),
		weather:        WeatherSunny,
	}
}

// SetRNG injects a seeded generator, making event draws replayable. Without
// it draws come from the unseeded global generator.
func (e *Engine) SetRNG(rng *rand.Rand) {
	e.rng = rng
}

func (e *Engine) roll() float64 {
	if e.rng != nil {
		return e.rng.Float64()
	}
	return rand.Float64()
}

func (e *Engine) Register(events ...Event) {
	e.events = append(e.events, events...)
}

func (e *Engine) Events() []Event {
	return append([]Event(nil), e.events...)
}

func (e *Engine) Weather() Weather { return e.weather }

// weatherSeedSalt keeps the weather draw independent from other day-keyed
// draws.
const weatherSeedSalt = 311

// DetermineWeather redraws the weather for a day; seeded by (day, month) so
// a day's weather is stable however often the morning is replayed.
// Sunny 50%, cloudy 30%, rainy 15%, stormy 5%.
func (e *Engine) DetermineWeather(day, month int) Weather {
	rng := rand.New(rand.NewSource(int64(month)*1000 + int64(day) + weatherSeedSalt))
	roll := rng.Float64()
	switch {
	case roll < 0.50:
		e.weather = WeatherSunny
	case roll < 0.80:
		e.weather = WeatherCloudy
	case roll < 0.95:
		e.weather = WeatherRainy
	default:
		e.weather = WeatherStormy
	}
	return e.weather
}

func (e *Engine) IsRainy() bool {
	return e.weather == WeatherRainy || e.weather == WeatherStormy
}

// CheckAndTrigger evaluates every event registered for the timing slot.
// Events are independent Bernoulli trials; more than one may fire. Effects
// apply to the world immediately, in registration order.
func (e *Engine) CheckAndTrigger(timing Timing, snap Snapshot, world World) []Result {
	snap.Weather = e.weather

	var results []Result
	for _, ev := range e.events {
		if ev.Timing != timing {
			continue
		}
		if ev.OncePerDay && e.triggeredToday[ev.ID] {
			continue
		}
		if ev.Condition != nil && !ev.Condition(snap) {
			continue
		}
		if e.roll() >= ev.dampedProbability(snap) {
			continue
		}

		ev.Effect.Apply(world)
		results = append(results, Result{Event: ev, Message: ev.Description})
		if ev.OncePerDay {
			e.triggeredToday[ev.ID] = true
		}
	}
	return results
}

// NewDay clears the triggered-today set. Called exactly once per day
// transition.
func (e *Engine) NewDay() {
	e.triggeredToday = make(map[string]bool)
}
