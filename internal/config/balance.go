package config

// Balance holds gameplay balance configuration
type Balance struct {
	// Starting resources
	StartingMoney   int `yaml:"starting_money" json:"starting_money" env:"STARTING_MONEY"`
	StartingEnergy  int `yaml:"starting_energy" json:"starting_energy" env:"STARTING_ENERGY"`
	StartingStamina int `yaml:"starting_stamina" json:"starting_stamina" env:"STARTING_STAMINA"`
	MaxEnergy       int `yaml:"max_energy" json:"max_energy" env:"MAX_ENERGY"`
	MaxStamina      int `yaml:"max_stamina" json:"max_stamina" env:"MAX_STAMINA"`

	// Income
	Salary        int `yaml:"salary" json:"salary" env:"SALARY"`
	Rent          int `yaml:"rent" json:"rent" env:"RENT"`
	Bonus         int `yaml:"bonus" json:"bonus" env:"BONUS"`
	PaydayOfMonth int `yaml:"payday_of_month" json:"payday_of_month" env:"PAYDAY_OF_MONTH"`

	// Nutrition penalties
	NutritionMinThreshold int `yaml:"nutrition_min_threshold" json:"nutrition_min_threshold" env:"NUTRITION_MIN_THRESHOLD"`
	PenaltyVitality       int `yaml:"penalty_vitality" json:"penalty_vitality" env:"PENALTY_VITALITY"`
	PenaltyMental         int `yaml:"penalty_mental" json:"penalty_mental" env:"PENALTY_MENTAL"`
	PenaltySustain        int `yaml:"penalty_sustain" json:"penalty_sustain" env:"PENALTY_SUSTAIN"`

	// Streaks
	StreakHighThreshold int `yaml:"streak_high_threshold" json:"streak_high_threshold" env:"STREAK_HIGH_THRESHOLD"`

	// Sleep and recovery
	SleepEnergyRecovery  int `yaml:"sleep_energy_recovery" json:"sleep_energy_recovery" env:"SLEEP_ENERGY_RECOVERY"`
	SleepStaminaRecovery int `yaml:"sleep_stamina_recovery" json:"sleep_stamina_recovery" env:"SLEEP_STAMINA_RECOVERY"`
	EarlySleepBonus      int `yaml:"early_sleep_bonus" json:"early_sleep_bonus" env:"EARLY_SLEEP_BONUS"`
	InsomniaCaffeine     int `yaml:"insomnia_caffeine" json:"insomnia_caffeine" env:"INSOMNIA_CAFFEINE"`
	InsomniaPenalty      int `yaml:"insomnia_penalty" json:"insomnia_penalty" env:"INSOMNIA_PENALTY"`

	// Action costs
	CookEnergyCost       int `yaml:"cook_energy_cost" json:"cook_energy_cost" env:"COOK_ENERGY_COST"`
	CommuteFullnessDecay int `yaml:"commute_fullness_decay" json:"commute_fullness_decay" env:"COMMUTE_FULLNESS_DECAY"`
	CafeteriaPrice       int `yaml:"cafeteria_price" json:"cafeteria_price" env:"CAFETERIA_PRICE"`
	EatOutPrice          int `yaml:"eat_out_price" json:"eat_out_price" env:"EAT_OUT_PRICE"`
	RestEnergyRecovery   int `yaml:"rest_energy_recovery" json:"rest_energy_recovery" env:"REST_ENERGY_RECOVERY"`

	// Shopping trips
	ShoppingEnergyCost  int `yaml:"shopping_energy_cost" json:"shopping_energy_cost" env:"SHOPPING_ENERGY_COST"`
	ShoppingStaminaCost int `yaml:"shopping_stamina_cost" json:"shopping_stamina_cost" env:"SHOPPING_STAMINA_COST"`
	ShoppingMinEnergy   int `yaml:"shopping_min_energy" json:"shopping_min_energy" env:"SHOPPING_MIN_ENERGY"`

	// Carrying
	BagCapacity int `yaml:"bag_capacity" json:"bag_capacity" env:"BAG_CAPACITY"`

	// Online shopping
	DeliveryDelayDays int `yaml:"delivery_delay_days" json:"delivery_delay_days" env:"DELIVERY_DELAY_DAYS"`

	// Session length
	FinalDay int `yaml:"final_day" json:"final_day" env:"FINAL_DAY"`
}

// Default returns the default balance configuration
func Default() Balance {
	return Balance{
		StartingMoney:   30000,
		StartingEnergy:  10,
		StartingStamina: 5,
		MaxEnergy:       10,
		MaxStamina:      5,

		Salary:        180000,
		Rent:          60000,
		Bonus:         50000,
		PaydayOfMonth: 25,

		NutritionMinThreshold: 5,
		PenaltyVitality:       2,
		PenaltyMental:         2,
		PenaltySustain:        2,

		StreakHighThreshold: 10,

		SleepEnergyRecovery:  8,
		SleepStaminaRecovery: 4,
		EarlySleepBonus:      1,
		InsomniaCaffeine:     6,
		InsomniaPenalty:      2,

		CookEnergyCost:       2,
		CommuteFullnessDecay: 1,
		CafeteriaPrice:       500,
		EatOutPrice:          1200,
		RestEnergyRecovery:   2,

		ShoppingEnergyCost:  2,
		ShoppingStaminaCost: 1,
		ShoppingMinEnergy:   3,

		BagCapacity: 5,

		DeliveryDelayDays: 2,

		FinalDay: 30,
	}
}

// Casual returns easier balance for casual difficulty
func Casual() Balance {
	cfg := Default()
	cfg.StartingMoney = 50000
	cfg.MaxEnergy = 12
	cfg.StartingEnergy = 12
	cfg.NutritionMinThreshold = 4
	cfg.BagCapacity = 7
	return cfg
}

// Hard returns harder balance for experienced players
func Hard() Balance {
	cfg := Default()
	cfg.StartingMoney = 20000
	cfg.Rent = 70000
	cfg.NutritionMinThreshold = 6
	cfg.PenaltyVitality = 3
	cfg.PenaltyMental = 3
	cfg.CookEnergyCost = 3
	cfg.BagCapacity = 4
	return cfg
}

// fillFrom copies preset values into every field still at zero, so a config
// file may override a handful of balance knobs and inherit the rest. A knob
// cannot be pinned to literal zero from a file; none of them make sense at
// zero.
func (b *Balance) fillFrom(preset Balance) {
	fill := func(dst *int, v int) {
		if *dst == 0 {
			*dst = v
		}
	}

	fill(&b.StartingMoney, preset.StartingMoney)
	fill(&b.StartingEnergy, preset.StartingEnergy)
	fill(&b.StartingStamina, preset.StartingStamina)
	fill(&b.MaxEnergy, preset.MaxEnergy)
	fill(&b.MaxStamina, preset.MaxStamina)

	fill(&b.Salary, preset.Salary)
	fill(&b.Rent, preset.Rent)
	fill(&b.Bonus, preset.Bonus)
	fill(&b.PaydayOfMonth, preset.PaydayOfMonth)

	fill(&b.NutritionMinThreshold, preset.NutritionMinThreshold)
	fill(&b.PenaltyVitality, preset.PenaltyVitality)
	fill(&b.PenaltyMental, preset.PenaltyMental)
	fill(&b.PenaltySustain, preset.PenaltySustain)

	fill(&b.StreakHighThreshold, preset.StreakHighThreshold)

	fill(&b.SleepEnergyRecovery, preset.SleepEnergyRecovery)
	fill(&b.SleepStaminaRecovery, preset.SleepStaminaRecovery)
	fill(&b.EarlySleepBonus, preset.EarlySleepBonus)
	fill(&b.InsomniaCaffeine, preset.InsomniaCaffeine)
	fill(&b.InsomniaPenalty, preset.InsomniaPenalty)

	fill(&b.CookEnergyCost, preset.CookEnergyCost)
	fill(&b.CommuteFullnessDecay, preset.CommuteFullnessDecay)
	fill(&b.CafeteriaPrice, preset.CafeteriaPrice)
	fill(&b.EatOutPrice, preset.EatOutPrice)
	fill(&b.RestEnergyRecovery, preset.RestEnergyRecovery)

	fill(&b.ShoppingEnergyCost, preset.ShoppingEnergyCost)
	fill(&b.ShoppingStaminaCost, preset.ShoppingStaminaCost)
	fill(&b.ShoppingMinEnergy, preset.ShoppingMinEnergy)

	fill(&b.BagCapacity, preset.BagCapacity)

	fill(&b.DeliveryDelayDays, preset.DeliveryDelayDays)

	fill(&b.FinalDay, preset.FinalDay)
}
