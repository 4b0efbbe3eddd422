package cooking

import (
	"fmt"

	"github.com/dechi99991/cooking-sim/internal/nutrition"
	"github.com/dechi99991/cooking-sim/internal/relic"
	"github.com/dechi99991/cooking-sim/internal/stock"

	"github.com/dechi99991/cooking-sim/internal/ingredient"
)

// Dish is the result of a cooking action.
type Dish struct {
	Name        string              `json:"name"`
	Nutrition   nutrition.Nutrition `json:"nutrition"`
	Fullness    int                 `json:"fullness"`
	Ingredients []string            `json:"ingredients"`
	Named       bool                `json:"is_named"`
	RecipeName  string              `json:"named_recipe_name,omitempty"`
}

// Resolver combines the ingredient and recipe catalogs into a cooking
// pipeline over a stock ledger.
type Resolver struct {
	Ingredients *ingredient.Catalog
	Recipes     *RecipeCatalog
}

func NewResolver(ingredients *ingredient.Catalog, recipes *RecipeCatalog) *Resolver {
	return &Resolver{Ingredients: ingredients, Recipes: recipes}
}

// fallbackName names an unmatched ingredient combination.
func fallbackName(names []string) string {
	if len(names) == 1 {
		return fmt.Sprintf("plain %s", names[0])
	}
	return "stir-fry medley"
}

// Cook resolves a cooking action and consumes the ingredients. Ingredients
// leave the stock only after every computation succeeded; any missing
// ingredient aborts with no mutation.
func (r *Resolver) Cook(names []string, st *stock.Stock, currentDay int, relics *relic.Inventory) (Dish, bool) {
	dish, ok := r.Preview(names, st, currentDay, relics)
	if !ok {
		return Dish{}, false
	}

	counts := make(map[string]int, len(names))
	for _, name := range names {
		counts[name]++
	}
	for ingName, qty := range counts {
		st.Remove(ingName, qty)
	}
	return dish, true
}

// Preview resolves what cooking the given ingredients would produce, without
// consuming anything. The pipeline, per distinct ingredient: compute the
// freshness modifier once from the oldest unit, scale base nutrition by it,
// add the relic nutrition boost as an independent additive bonus on the
// unscaled base, add the relic fullness boost flat. Sums across ingredients.
// A named recipe match then applies its multiplier to the adjusted total and
// adds its fullness bonus last.
func (r *Resolver) Preview(names []string, st *stock.Stock, currentDay int, relics *relic.Inventory) (Dish, bool) {
	if len(names) == 0 {
		return Dish{}, false
	}

	counts := make(map[string]int, len(names))
	for _, name := range names {
		counts[name]++
	}

	// Validate everything up front so failure leaves the stock untouched.
	for name, qty := range counts {
		if _, ok := r.Ingredients.Get(name); !ok {
			return Dish{}, false
		}
		if !st.Has(name, qty) {
			return Dish{}, false
		}
	}

	var extend stock.ExtendFunc = stock.NoExtend
	if relics != nil {
		extend = relics.FreshnessExtendFor
	}

	var total nutrition.Nutrition
	totalFullness := 0

	for name, qty := range counts {
		ing, _ := r.Ingredients.Get(name)
		modifier := st.FreshnessModifier(name, currentDay, extend)

		unit := ing.Nutrition.Scale(modifier)
		fullness := ing.Fullness
		if relics != nil {
			if boost := relics.NutritionBoost(ing.Category); boost > 0 {
				unit.Add(ing.Nutrition.Scale(boost))
			}
			fullness += relics.FullnessBoost(ing.Category)
		}

		for i := 0; i < qty; i++ {
			total.Add(unit)
			totalFullness += fullness
		}
	}

	name := fallbackName(names)
	named := false
	recipeName := ""
	if rec, ok := r.Recipes.Find(names); ok {
		total = total.Scale(rec.NutritionMultiplier)
		totalFullness += rec.FullnessBonus
		name = rec.Name
		recipeName = rec.Name
		named = true
	}

	return Dish{
		Name:        name,
		Nutrition:   total,
		Fullness:    totalFullness,
		Ingredients: append([]string(nil), names...),
		Named:       named,
		RecipeName:  recipeName,
	}, true
}
