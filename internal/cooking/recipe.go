package cooking

import (
	"sort"
	"strings"
)

// NamedRecipe upgrades an exact ingredient set into a named dish with a
// nutrition multiplier and a flat fullness bonus.
type NamedRecipe struct {
	Name                string   `json:"name"`
	RequiredIngredients []string `json:"required_ingredients"`
	NutritionMultiplier float64  `json:"nutrition_multiplier"`
	FullnessBonus       int      `json:"fullness_bonus"`
}

// setKey canonicalizes an ingredient list into its unordered distinct set.
func setKey(names []string) string {
	seen := make(map[string]bool, len(names))
	distinct := make([]string, 0, len(names))
	for _, n := range names {
		if !seen[n] {
			seen[n] = true
			distinct = append(distinct, n)
		}
	}
	sort.Strings(distinct)
	return strings.Join(distinct, "|")
}

// RecipeCatalog is the immutable named-recipe lookup. A match requires the
// cooked ingredient set to equal a registered set, never a subset.
type RecipeCatalog struct {
	bySet map[string]NamedRecipe
	order []string
}

func NewRecipeCatalog(recipes []NamedRecipe) *RecipeCatalog {
	c := &RecipeCatalog{bySet: make(map[string]NamedRecipe, len(recipes))}
	for _, r := range recipes {
		key := setKey(r.RequiredIngredients)
		if _, dup := c.bySet[key]; dup {
			continue
		}
		c.bySet[key] = r
		c.order = append(c.order, key)
	}
	sort.Strings(c.order)
	return c
}

// Find returns the recipe whose required set exactly equals the given
// ingredient set.
func (c *RecipeCatalog) Find(names []string) (NamedRecipe, bool) {
	r, ok := c.bySet[setKey(names)]
	return r, ok
}

// All returns every registered recipe in canonical key order.
func (c *RecipeCatalog) All() []NamedRecipe {
	out := make([]NamedRecipe, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, c.bySet[key])
	}
	return out
}

// Available lists recipes fully coverable by the given ingredient names.
func (c *RecipeCatalog) Available(available []string) []NamedRecipe {
	have := make(map[string]bool, len(available))
	for _, n := range available {
		have[n] = true
	}
	var out []NamedRecipe
	for _, key := range c.order {
		r := c.bySet[key]
		covered := true
		for _, need := range r.RequiredIngredients {
			if !have[need] {
				covered = false
				break
			}
		}
		if covered {
			out = append(out, r)
		}
	}
	return out
}

// DefaultRecipeCatalog returns the stock named recipes.
func DefaultRecipeCatalog() *RecipeCatalog {
	return NewRecipeCatalog([]NamedRecipe{
		{Name: "tamago kake gohan", RequiredIngredients: []string{"rice", "egg"}, NutritionMultiplier: 1.2, FullnessBonus: 1},
		{Name: "natto rice", RequiredIngredients: []string{"rice", "natto"}, NutritionMultiplier: 1.2, FullnessBonus: 1},
		{Name: "pork bowl", RequiredIngredients: []string{"rice", "pork", "onion"}, NutritionMultiplier: 1.4, FullnessBonus: 2},
		{Name: "omelet", RequiredIngredients: []string{"egg", "milk"}, NutritionMultiplier: 1.2, FullnessBonus: 1},
		{Name: "vegetable stir-fry", RequiredIngredients: []string{"cabbage", "carrot", "pork"}, NutritionMultiplier: 1.3, FullnessBonus: 1},
		{Name: "miso soup", RequiredIngredients: []string{"miso", "tofu"}, NutritionMultiplier: 1.3, FullnessBonus: 1},
		{Name: "grilled salmon set", RequiredIngredients: []string{"rice", "salmon", "miso"}, NutritionMultiplier: 1.5, FullnessBonus: 2},
		{Name: "carbonara", RequiredIngredients: []string{"pasta", "egg", "milk"}, NutritionMultiplier: 1.4, FullnessBonus: 2},
	})
}
