package character

// Character is a playable employment background. It adjusts the money loop
// and which lunch options exist; everything else plays the same.
type Character struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	SalaryFactor  float64 `json:"salary_factor"`
	BonusMonths   []int   `json:"bonus_months"`
	HasCafeteria  bool    `json:"has_cafeteria"`
	StartingBonus int     `json:"starting_bonus"`
}

func (c Character) HasBonusIn(month int) bool {
	for _, m := range c.BonusMonths {
		if m == month {
			return true
		}
	}
	return false
}

// All returns the selectable characters in fixed order.
func All() []Character {
	return []Character{
		{
			ID:           "regular",
			Name:         "Regular employee",
			Description:  "Stable salary, company cafeteria, bonuses in summer and winter.",
			SalaryFactor: 1.0,
			BonusMonths:  []int{6, 12},
			HasCafeteria: true,
		},
		{
			ID:           "contract",
			Name:         "Contract worker",
			Description:  "Slightly better pay, no bonus, no cafeteria.",
			SalaryFactor: 1.1,
			HasCafeteria: false,
		},
		{
			ID:            "freelance",
			Name:          "Freelancer",
			Description:   "Feast or famine. Lower base pay but a cushion to start with.",
			SalaryFactor:  0.85,
			HasCafeteria:  false,
			StartingBonus: 20000,
		},
	}
}

// ByID resolves a character; unknown ids fall back to the regular employee.
func ByID(id string) Character {
	for _, c := range All() {
		if c.ID == id {
			return c
		}
	}
	return All()[0]
}
