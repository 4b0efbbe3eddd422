package ingredient

import (
	"sort"

	"github.com/dechi99991/cooking-sim/internal/nutrition"
)

// Category groups ingredients for shop rotation.
type Category string

const (
	CategoryGrain     Category = "grain"
	CategoryVegetable Category = "vegetable"
	CategoryMeat      Category = "meat"
	CategoryFish      Category = "fish"
	CategoryEggDairy  Category = "egg_dairy"
	CategoryBean      Category = "bean"
	CategoryMushroom  Category = "mushroom"
	CategoryFruit     Category = "fruit"
	CategorySeasoning Category = "seasoning"
)

// Ingredient is a perishable catalog entry. FreshnessDays is the shelf life
// with no decay; past it, nutrition decays by DecayRate per day.
type Ingredient struct {
	Name          string              `json:"name"`
	Price         int                 `json:"price"`
	Nutrition     nutrition.Nutrition `json:"nutrition"`
	Fullness      int                 `json:"fullness"`
	FreshnessDays int                 `json:"freshness_days"`
	DecayRate     float64             `json:"decay_rate"`
	Category      Category            `json:"category"`
}

// Catalog is an immutable, injected ingredient lookup. The engine never
// mutates catalog data, so sessions can share one instance.
type Catalog struct {
	items map[string]Ingredient
	names []string
}

func NewCatalog(items []Ingredient) *Catalog {
	c := &Catalog{items: make(map[string]Ingredient, len(items))}
	for _, ing := range items {
		if _, dup := c.items[ing.Name]; dup {
			continue
		}
		c.items[ing.Name] = ing
		c.names = append(c.names, ing.Name)
	}
	sort.Strings(c.names)
	return c
}

func (c *Catalog) Get(name string) (Ingredient, bool) {
	ing, ok := c.items[name]
	return ing, ok
}

func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

func (c *Catalog) ByCategory(cat Category) []Ingredient {
	var out []Ingredient
	for _, name := range c.names {
		if ing := c.items[name]; ing.Category == cat {
			out = append(out, ing)
		}
	}
	return out
}

func (c *Catalog) Len() int { return len(c.items) }

// DefaultCatalog returns the stock ingredient set.
func DefaultCatalog() *Catalog {
	n := nutrition.New
	return NewCatalog([]Ingredient{
		// Grains
		{Name: "rice", Price: 200, Nutrition: n(2, 1, 1, 3, 1), Fullness: 3, FreshnessDays: 14, DecayRate: 0.05, Category: CategoryGrain},
		{Name: "bread", Price: 150, Nutrition: n(1, 1, 2, 2, 1), Fullness: 2, FreshnessDays: 3, DecayRate: 0.15, Category: CategoryGrain},
		{Name: "udon", Price: 100, Nutrition: n(1, 1, 1, 3, 1), Fullness: 3, FreshnessDays: 5, DecayRate: 0.10, Category: CategoryGrain},
		{Name: "pasta", Price: 180, Nutrition: n(1, 1, 1, 3, 1), Fullness: 3, FreshnessDays: 30, DecayRate: 0.02, Category: CategoryGrain},
		// Vegetables
		{Name: "cabbage", Price: 150, Nutrition: n(1, 1, 1, 1, 3), Fullness: 1, FreshnessDays: 7, DecayRate: 0.10, Category: CategoryVegetable},
		{Name: "onion", Price: 100, Nutrition: n(1, 1, 1, 1, 2), Fullness: 1, FreshnessDays: 14, DecayRate: 0.05, Category: CategoryVegetable},
		{Name: "carrot", Price: 100, Nutrition: n(2, 1, 1, 1, 2), Fullness: 1, FreshnessDays: 10, DecayRate: 0.08, Category: CategoryVegetable},
		{Name: "tomato", Price: 180, Nutrition: n(1, 2, 1, 1, 3), Fullness: 1, FreshnessDays: 5, DecayRate: 0.12, Category: CategoryVegetable},
		{Name: "spinach", Price: 160, Nutrition: n(2, 1, 2, 1, 3), Fullness: 1, FreshnessDays: 4, DecayRate: 0.15, Category: CategoryVegetable},
		// Meat
		{Name: "pork", Price: 350, Nutrition: n(3, 2, 1, 2, 1), Fullness: 3, FreshnessDays: 3, DecayRate: 0.20, Category: CategoryMeat},
		{Name: "chicken", Price: 280, Nutrition: n(3, 1, 1, 2, 2), Fullness: 3, FreshnessDays: 3, DecayRate: 0.20, Category: CategoryMeat},
		{Name: "beef", Price: 500, Nutrition: n(4, 2, 1, 2, 1), Fullness: 3, FreshnessDays: 3, DecayRate: 0.20, Category: CategoryMeat},
		// Fish
		{Name: "salmon", Price: 300, Nutrition: n(3, 2, 2, 1, 2), Fullness: 2, FreshnessDays: 2, DecayRate: 0.25, Category: CategoryFish},
		{Name: "mackerel", Price: 250, Nutrition: n(3, 2, 1, 1, 2), Fullness: 2, FreshnessDays: 2, DecayRate: 0.25, Category: CategoryFish},
		// Egg, dairy, beans
		{Name: "egg", Price: 200, Nutrition: n(2, 2, 1, 1, 2), Fullness: 2, FreshnessDays: 14, DecayRate: 0.05, Category: CategoryEggDairy},
		{Name: "milk", Price: 180, Nutrition: n(1, 2, 1, 1, 2), Fullness: 1, FreshnessDays: 5, DecayRate: 0.12, Category: CategoryEggDairy},
		{Name: "tofu", Price: 100, Nutrition: n(2, 1, 1, 1, 2), Fullness: 1, FreshnessDays: 4, DecayRate: 0.15, Category: CategoryBean},
		{Name: "natto", Price: 100, Nutrition: n(2, 1, 2, 1, 3), Fullness: 1, FreshnessDays: 7, DecayRate: 0.10, Category: CategoryBean},
		// Others
		{Name: "shiitake", Price: 200, Nutrition: n(1, 2, 1, 1, 3), Fullness: 1, FreshnessDays: 5, DecayRate: 0.12, Category: CategoryMushroom},
		{Name: "banana", Price: 150, Nutrition: n(1, 1, 3, 1, 1), Fullness: 2, FreshnessDays: 4, DecayRate: 0.15, Category: CategoryFruit},
		{Name: "apple", Price: 180, Nutrition: n(1, 1, 2, 1, 2), Fullness: 1, FreshnessDays: 10, DecayRate: 0.08, Category: CategoryFruit},
		{Name: "miso", Price: 300, Nutrition: n(1, 2, 1, 2, 2), Fullness: 0, FreshnessDays: 30, DecayRate: 0.02, Category: CategorySeasoning},
	})
}
