package event

// DefaultEvents is the stock event table. Probability-1.0 entries at the
// bottom are streak milestones: condition-gated bonuses that read as
// guaranteed rewards rather than luck.
func DefaultEvents() []Event {
	return []Event{
		{
			ID:          "overslept",
			Name:        "Overslept",
			Description: "You hit snooze one too many times and bolt out the door.",
			Timing:      TimingWakeUp,
			Probability: 0.10,
			Effect:      Energy(-1),
			OncePerDay:  true,
			Damping:     DampEnergyNegative,
		},
		{
			ID:          "refreshing-morning",
			Name:        "Refreshing morning",
			Description: "Sunlight through the curtains. Today feels workable.",
			Timing:      TimingWakeUp,
			Probability: 0.15,
			Condition: func(s Snapshot) bool {
				return s.Weather == WeatherSunny
			},
			Effect:     Energy(1),
			OncePerDay: true,
		},
		{
			ID:          "packed-train",
			Name:        "Packed train",
			Description: "The morning train is standing room only, barely.",
			Timing:      TimingGoToWork,
			Probability: 0.20,
			Condition: func(s Snapshot) bool {
				return !s.Holiday
			},
			Effect:     Stamina(-1),
			OncePerDay: true,
			Damping:    DampStaminaNegative,
		},
		{
			ID:          "soaked-commute",
			Name:        "Soaked on the way in",
			Description: "No umbrella. The rain does not care.",
			Timing:      TimingGoToWork,
			Probability: 0.25,
			Condition: func(s Snapshot) bool {
				return (s.Weather == WeatherRainy || s.Weather == WeatherStormy) && !s.Holiday
			},
			Effect:     Composite(Stamina(-1), Energy(-1)),
			OncePerDay: true,
			Damping:    DampStaminaNegative,
		},
		{
			ID:          "found-coin",
			Name:        "Found change",
			Description: "A 500 yen coin glints on the sidewalk.",
			Timing:      TimingGoToWork,
			Probability: 0.05,
			Effect:      Money(500),
			OncePerDay:  true,
		},
		{
			ID:          "afternoon-slump",
			Name:        "Afternoon slump",
			Description: "The hour after lunch stretches forever.",
			Timing:      TimingAfterLunch,
			Probability: 0.20,
			Condition: func(s Snapshot) bool {
				return s.Fullness >= 8
			},
			Effect:     Energy(-1),
			OncePerDay: true,
			Damping:    DampEnergyNegative,
		},
		{
			ID:          "coworker-snack",
			Name:        "Souvenir snack",
			Description: "A coworker back from a trip hands out sweets.",
			Timing:      TimingAfterLunch,
			Probability: 0.10,
			Condition: func(s Snapshot) bool {
				return !s.Holiday
			},
			Effect:     Fullness(1),
			OncePerDay: true,
		},
		{
			ID:          "timed-sale",
			Name:        "Timed sale",
			Description: "The supermarket speaker crackles: eggs, half price, ten minutes.",
			Timing:      TimingAtShop,
			Probability: 0.12,
			Effect:      GiveIngredient("egg", 1),
			OncePerDay:  true,
		},
		{
			ID:          "free-sample",
			Name:        "Free sample corner",
			Description: "One toothpick of sausage becomes four.",
			Timing:      TimingAtShop,
			Probability: 0.10,
			Effect:      Fullness(1),
			OncePerDay:  true,
		},
		{
			ID:          "overtime",
			Name:        "Sudden overtime",
			Description: "A deadline moved. You stay late.",
			Timing:      TimingLeaveWork,
			Probability: 0.15,
			Condition: func(s Snapshot) bool {
				return !s.Holiday
			},
			Effect:     Composite(Energy(-1), Stamina(-1)),
			OncePerDay: true,
			Damping:    DampEnergyNegative,
		},
		{
			ID:          "early-finish",
			Name:        "Work wrapped early",
			Description: "Everything actually went to plan today.",
			Timing:      TimingLeaveWork,
			Probability: 0.08,
			Condition: func(s Snapshot) bool {
				return !s.Holiday
			},
			Effect:     Energy(1),
			OncePerDay: true,
		},
		{
			ID:          "neighbor-vegetables",
			Name:        "Neighbor's harvest",
			Description: "The neighbor grew too many tomatoes again.",
			Timing:      TimingAfterWork,
			Probability: 0.07,
			Effect:      GiveIngredient("tomato", 2),
			OncePerDay:  true,
		},
		{
			ID:          "convenience-impulse",
			Name:        "Impulse buy",
			Description: "You only went in for a drink. You leave with a bag.",
			Timing:      TimingAfterWork,
			Probability: 0.10,
			Condition: func(s Snapshot) bool {
				return s.Money >= 800
			},
			Effect:     Composite(Money(-800), GiveProvision("rice ball", 2)),
			OncePerDay: true,
		},
		{
			ID:          "late-night-hunger",
			Name:        "Late night hunger",
			Description: "The fridge light is the brightest thing in the apartment.",
			Timing:      TimingNight,
			Probability: 0.15,
			Condition: func(s Snapshot) bool {
				return s.Fullness <= 3
			},
			Effect:     Energy(-1),
			OncePerDay: true,
			Damping:    DampEnergyNegative,
		},
		{
			ID:          "good-bath",
			Name:        "A proper bath",
			Description: "You fill the tub instead of showering. Worth it.",
			Timing:      TimingNight,
			Probability: 0.12,
			Effect:      Stamina(1),
			OncePerDay:  true,
		},

		// Streak milestones. Guaranteed when the streak hits the exact
		// milestone length, so each fires once per streak.
		{
			ID:          "vitality-streak",
			Name:        "Body feels lighter",
			Description: "Days of solid meals are paying off.",
			Timing:      TimingWakeUp,
			Probability: 1.0,
			Condition: func(s Snapshot) bool {
				return s.Streaks.Vitality == 3
			},
			Effect:     GrowStaminaCap(1),
			OncePerDay: true,
		},
		{
			ID:          "mental-streak",
			Name:        "Clear head",
			Description: "A calm mind, three mornings running.",
			Timing:      TimingWakeUp,
			Probability: 1.0,
			Condition: func(s Snapshot) bool {
				return s.Streaks.Mental == 3
			},
			Effect:     GrowEnergyCap(1),
			OncePerDay: true,
		},
		{
			ID:          "defense-streak",
			Name:        "Sturdy constitution",
			Description: "Whatever is going around the office, it skipped you.",
			Timing:      TimingWakeUp,
			Probability: 1.0,
			Condition: func(s Snapshot) bool {
				return s.Streaks.Defense == 3
			},
			Effect:     GrowStaminaCap(1),
			OncePerDay: true,
		},
	}
}
