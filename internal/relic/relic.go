package relic

import (
	"sort"

	"github.com/dechi99991/cooking-sim/internal/ingredient"
)

// EffectKind enumerates the passive bonuses a relic can grant.
type EffectKind string

const (
	EffectNutritionBoost  EffectKind = "nutrition_boost"
	EffectFullnessBoost   EffectKind = "fullness_boost"
	EffectEnergySave      EffectKind = "energy_save"
	EffectFreshnessExtend EffectKind = "freshness_extend"
	EffectBagCapacity     EffectKind = "bag_capacity"
)

// Relic is a persistent owned modifier. Target narrows the effect to one
// ingredient category; empty means all ingredients.
type Relic struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Price       int                 `json:"price"`
	Description string              `json:"description"`
	Effect      EffectKind          `json:"effect"`
	Target      ingredient.Category `json:"target,omitempty"`
	Value       float64             `json:"value"`
}

// Catalog is the immutable relic lookup.
type Catalog struct {
	items map[string]Relic
	ids   []string
}

func NewCatalog(items []Relic) *Catalog {
	c := &Catalog{items: make(map[string]Relic, len(items))}
	for _, r := range items {
		if _, dup := c.items[r.ID]; dup {
			continue
		}
		c.items[r.ID] = r
		c.ids = append(c.ids, r.ID)
	}
	sort.Strings(c.ids)
	return c
}

func (c *Catalog) Get(id string) (Relic, bool) {
	r, ok := c.items[id]
	return r, ok
}

func (c *Catalog) All() []Relic {
	out := make([]Relic, 0, len(c.ids))
	for _, id := range c.ids {
		out = append(out, c.items[id])
	}
	return out
}

// DefaultCatalog returns the stock relic set.
func DefaultCatalog() *Catalog {
	return NewCatalog([]Relic{
		{ID: "frying_pan", Name: "frying pan", Price: 2000, Description: "meat dishes +20% nutrition", Effect: EffectNutritionBoost, Target: ingredient.CategoryMeat, Value: 0.2},
		{ID: "rice_cooker", Name: "rice cooker", Price: 5000, Description: "grain dishes +1 fullness", Effect: EffectFullnessBoost, Target: ingredient.CategoryGrain, Value: 1},
		{ID: "microwave", Name: "microwave", Price: 8000, Description: "cooking costs 1 less energy", Effect: EffectEnergySave, Value: 1},
		{ID: "fridge", Name: "fridge", Price: 15000, Description: "all ingredients stay fresh 3 days longer", Effect: EffectFreshnessExtend, Value: 3},
		{ID: "steamer", Name: "steamer", Price: 4000, Description: "vegetable dishes +15% nutrition", Effect: EffectNutritionBoost, Target: ingredient.CategoryVegetable, Value: 0.15},
		{ID: "eco_bag", Name: "eco bag", Price: 1500, Description: "carry 2 more items per shopping trip", Effect: EffectBagCapacity, Value: 2},
	})
}
