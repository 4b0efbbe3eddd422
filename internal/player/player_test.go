package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayer_ConsumeEnergyFailClosed(t *testing.T) {
	p := New(1000, 3, 10, 10, 10)

	assert.True(t, p.ConsumeEnergy(3))
	assert.Equal(t, 0, p.Energy)

	// No partial consumption.
	assert.False(t, p.ConsumeEnergy(1))
	assert.Equal(t, 0, p.Energy)
}

func TestPlayer_GritRecovery(t *testing.T) {
	p := New(1000, 5, 1, 10, 10)

	ok := p.ConsumeStamina(3)
	assert.True(t, ok)
	assert.Equal(t, 3, p.Energy)
	assert.Equal(t, 1, p.Stamina)
	assert.True(t, p.GritUsed)
}

func TestPlayer_GritExhausted(t *testing.T) {
	p := New(1000, 1, 1, 10, 10)

	ok := p.ConsumeStamina(3)
	assert.False(t, ok)
	assert.Equal(t, 0, p.Stamina)
	assert.False(t, p.GritUsed)
	assert.Equal(t, ReasonExhausted, p.GameOverReason())
}

func TestPlayer_GritFlagResetsOnNormalConsume(t *testing.T) {
	p := New(1000, 5, 1, 10, 10)
	assert.True(t, p.ConsumeStamina(3))
	assert.True(t, p.GritUsed)

	assert.True(t, p.ConsumeStamina(1))
	assert.False(t, p.GritUsed)
}

func TestPlayer_RecoveryClampsAndPenalties(t *testing.T) {
	p := New(1000, 2, 2, 10, 10)
	p.ApplyPenalties(3, 2, 0)

	p.RecoverEnergy(10)
	assert.Equal(t, 9, p.Energy) // 10-3 applied

	p.RecoverStamina(5)
	assert.Equal(t, 5, p.Stamina) // 5-2 applied

	p.ClearPenalties()
	p.RecoverEnergy(100)
	assert.Equal(t, p.MaxEnergy, p.Energy)
	p.RecoverStamina(100)
	assert.Equal(t, p.MaxStamina, p.Stamina)
}

func TestPlayer_RecoveryNeverNegative(t *testing.T) {
	p := New(1000, 2, 2, 10, 10)
	p.ApplyPenalties(10, 10, 0)

	p.RecoverEnergy(3)
	p.RecoverStamina(3)
	assert.Equal(t, 2, p.Energy)
	assert.Equal(t, 2, p.Stamina)
}

func TestPlayer_FullnessClamp(t *testing.T) {
	p := New(1000, 10, 10, 10, 10)

	applied := p.AddFullness(7)
	assert.Equal(t, 7, applied)

	applied = p.AddFullness(7)
	assert.Equal(t, 3, applied) // clamped at 10
	assert.Equal(t, 10, p.Fullness)

	p.DecayFullness(4)
	assert.Equal(t, 6, p.Fullness)
	p.DecayFullness(100)
	assert.Equal(t, 0, p.Fullness)
}

func TestPlayer_MaxGrowthRecoversCurrent(t *testing.T) {
	p := New(1000, 10, 10, 10, 10)
	p.IncreaseMaxEnergy(1)
	assert.Equal(t, 11, p.MaxEnergy)
	assert.Equal(t, 11, p.Energy)

	p.IncreaseMaxStamina(2)
	assert.Equal(t, 12, p.MaxStamina)
	assert.Equal(t, 12, p.Stamina)
}

func TestPlayer_CardDebtSettlement(t *testing.T) {
	p := New(5000, 10, 10, 10, 10)
	p.AddCardDebt(3000)
	p.AddCardDebt(1000)

	settled := p.SettleCard()
	assert.Equal(t, 4000, settled)
	assert.Equal(t, 1000, p.Money)
	assert.Equal(t, 0, p.CardDebt)

	// Settlement may drive money to zero or below, which ends the game.
	p.AddCardDebt(2000)
	p.SettleCard()
	assert.Equal(t, ReasonMoney, p.GameOverReason())
}
