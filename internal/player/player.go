package player

// GameOverReason distinguishes the two terminal conditions.
type GameOverReason string

const (
	ReasonNone      GameOverReason = ""
	ReasonMoney     GameOverReason = "money"
	ReasonExhausted GameOverReason = "exhausted"
)

const maxFullness = 10

// Player owns the session's money, energy, stamina and fullness, their caps,
// and the pending next-day recovery penalties. Every consume operation is
// fail-closed: it either applies fully or not at all.
type Player struct {
	Money    int `json:"money"`
	Energy   int `json:"energy"`
	Stamina  int `json:"stamina"`
	Fullness int `json:"fullness"`

	// Caps can grow through streak milestone events.
	MaxEnergy  int `json:"max_energy"`
	MaxStamina int `json:"max_stamina"`

	// Next-day recovery penalties set at sleep, cleared at day start.
	EnergyRecoveryPenalty  int `json:"energy_recovery_penalty"`
	StaminaRecoveryPenalty int `json:"stamina_recovery_penalty"`
	FullnessDecayPenalty   int `json:"fullness_decay_penalty"`

	// Running unpaid card balance, settled on payday.
	CardDebt int `json:"card_debt"`

	// Set when the last stamina consumption survived on grit.
	GritUsed bool `json:"grit_used"`
}

func New(money, energy, stamina, maxEnergy, maxStamina int) *Player {
	return &Player{
		Money:      money,
		Energy:     energy,
		Stamina:    stamina,
		MaxEnergy:  maxEnergy,
		MaxStamina: maxStamina,
	}
}

// ConsumeEnergy spends energy if the full amount is available.
func (p *Player) ConsumeEnergy(amount int) bool {
	if p.Energy >= amount {
		p.Energy -= amount
		return true
	}
	return false
}

// ConsumeStamina spends stamina if available. When stamina falls short but at
// least 2 energy remains, grit recovery converts 2 energy into a flat
// stamina=1 safety net and the consumption still succeeds. The hard-set 1 is
// intentional balance, not a computed remainder. With grit exhausted too,
// stamina is zeroed and the call fails.
func (p *Player) ConsumeStamina(amount int) bool {
	p.GritUsed = false

	if p.Stamina >= amount {
		p.Stamina -= amount
		return true
	}

	if p.Energy >= 2 {
		p.Energy -= 2
		p.Stamina = 1
		p.GritUsed = true
		return true
	}

	p.Stamina = 0
	return false
}

// ConsumeMoney spends money if the full amount is available.
func (p *Player) ConsumeMoney(amount int) bool {
	if p.Money >= amount {
		p.Money -= amount
		return true
	}
	return false
}

// AddFullness raises fullness, clamped to 10, and returns the delta actually
// applied.
func (p *Player) AddFullness(amount int) int {
	before := p.Fullness
	p.Fullness += amount
	if p.Fullness > maxFullness {
		p.Fullness = maxFullness
	}
	return p.Fullness - before
}

// DecayFullness lowers fullness by amount, floored at zero.
func (p *Player) DecayFullness(amount int) {
	if amount <= 0 {
		return
	}
	p.Fullness -= amount
	if p.Fullness < 0 {
		p.Fullness = 0
	}
}

// ResetFullness zeroes fullness at the start of a meal occasion.
func (p *Player) ResetFullness() {
	p.Fullness = 0
}

// RecoverEnergy restores energy after subtracting the pending penalty, clamped
// to the current cap.
func (p *Player) RecoverEnergy(amount int) {
	actual := amount - p.EnergyRecoveryPenalty
	if actual < 0 {
		actual = 0
	}
	p.Energy += actual
	if p.Energy > p.MaxEnergy {
		p.Energy = p.MaxEnergy
	}
}

// RecoverStamina restores stamina after subtracting the pending penalty,
// clamped to the current cap.
func (p *Player) RecoverStamina(amount int) {
	actual := amount - p.StaminaRecoveryPenalty
	if actual < 0 {
		actual = 0
	}
	p.Stamina += actual
	if p.Stamina > p.MaxStamina {
		p.Stamina = p.MaxStamina
	}
}

// IncreaseMaxEnergy grows the energy cap and restores the same amount.
func (p *Player) IncreaseMaxEnergy(amount int) {
	p.MaxEnergy += amount
	p.Energy += amount
	if p.Energy > p.MaxEnergy {
		p.Energy = p.MaxEnergy
	}
}

// IncreaseMaxStamina grows the stamina cap and restores the same amount.
func (p *Player) IncreaseMaxStamina(amount int) {
	p.MaxStamina += amount
	p.Stamina += amount
	if p.Stamina > p.MaxStamina {
		p.Stamina = p.MaxStamina
	}
}

// ApplyPenalties sets the next-day recovery penalties. Called exactly once at
// sleep.
func (p *Player) ApplyPenalties(energy, stamina, fullness int) {
	p.EnergyRecoveryPenalty = energy
	p.StaminaRecoveryPenalty = stamina
	p.FullnessDecayPenalty = fullness
}

// ClearPenalties resets all pending penalties. Called exactly once at day
// start.
func (p *Player) ClearPenalties() {
	p.EnergyRecoveryPenalty = 0
	p.StaminaRecoveryPenalty = 0
	p.FullnessDecayPenalty = 0
}

// AddCardDebt records an online purchase against the unpaid card balance.
func (p *Player) AddCardDebt(amount int) {
	p.CardDebt += amount
}

// SettleCard deducts the unpaid card balance from money and returns the
// amount settled. Money may go negative here, ending the game.
func (p *Player) SettleCard() int {
	settled := p.CardDebt
	p.Money -= settled
	p.CardDebt = 0
	return settled
}

// IsGameOver reports whether a terminal condition holds.
func (p *Player) IsGameOver() bool {
	return p.GameOverReason() != ReasonNone
}

// GameOverReason returns which terminal condition holds, if any. Empty
// stamina alone is survivable while grit remains; exhaustion needs both
// gone.
func (p *Player) GameOverReason() GameOverReason {
	if p.Money <= 0 {
		return ReasonMoney
	}
	if p.Stamina <= 0 && p.Energy < 2 {
		return ReasonExhausted
	}
	return ReasonNone
}
