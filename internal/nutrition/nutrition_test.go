package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNutrition_AddAndReset(t *testing.T) {
	n := New(1, 2, 3, 4, 5)
	n.Add(New(1, 1, 1, 1, 1))
	assert.Equal(t, New(2, 3, 4, 5, 6), n)

	n.Reset()
	assert.Equal(t, Nutrition{}, n)
}

func TestNutrition_CalculatePenalties(t *testing.T) {
	// Only vitality, mental and sustain map to penalties. Awakening and
	// defense shortfalls are deliberately ignored.
	n := New(4, 10, 0, 4, 0)
	p := n.CalculatePenalties(5, 2, 2, 2)
	assert.Equal(t, 2, p.Stamina)  // vitality shortfall
	assert.Equal(t, 0, p.Energy)   // mental is fine
	assert.Equal(t, 2, p.Fullness) // sustain shortfall

	full := New(5, 5, 0, 5, 0)
	assert.Equal(t, Penalties{}, full.CalculatePenalties(5, 2, 2, 2))
}

func TestNutrition_BalanceRatio(t *testing.T) {
	n := New(5, 5, 5, 0, 0)
	assert.InDelta(t, 0.6, n.BalanceRatio(5), 1e-9)
	assert.InDelta(t, 1.0, New(5, 5, 5, 5, 5).BalanceRatio(5), 1e-9)
	assert.InDelta(t, 0.0, Nutrition{}.BalanceRatio(5), 1e-9)
}

func TestNutrition_Scale(t *testing.T) {
	n := New(10, 4, 2, 6, 8)
	half := n.Scale(0.5)
	assert.Equal(t, New(5, 2, 1, 3, 4), half)
}
